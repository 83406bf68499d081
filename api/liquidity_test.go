package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mockdb "github.com/quickmart/supplychain/db/mock"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetInventoryLiquidityAPI(t *testing.T) {
	// 四档各一条：critical / low / optimal / overstocked
	rows := []db.ListInventoryDetailRow{
		{
			Inventory:   db.Inventory{ID: 1, StoreID: 1, ProductID: 1, CurrentStock: 5, ReorderThreshold: 15, MaxCapacity: 100},
			ProductName: "Bananas (1 lb)",
			StoreName:   "QuickMart Supercenter - Downtown",
		},
		{
			Inventory:   db.Inventory{ID: 2, StoreID: 1, ProductID: 2, CurrentStock: 12, ReorderThreshold: 15, MaxCapacity: 100},
			ProductName: "Milk (1 gallon)",
			StoreName:   "QuickMart Supercenter - Downtown",
		},
		{
			Inventory:   db.Inventory{ID: 3, StoreID: 1, ProductID: 3, CurrentStock: 50, ReorderThreshold: 15, MaxCapacity: 100},
			ProductName: "Bread (White Loaf)",
			StoreName:   "QuickMart Supercenter - Downtown",
		},
		{
			Inventory:   db.Inventory{ID: 4, StoreID: 1, ProductID: 4, CurrentStock: 95, ReorderThreshold: 15, MaxCapacity: 100},
			ProductName: "Eggs (12 count)",
			StoreName:   "QuickMart Supercenter - Downtown",
		},
	}

	testCases := []struct {
		name          string
		query         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OKAllStores",
			query: "",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListInventoryDetail(gomock.Any()).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp liquiditySummaryResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Len(t, resp.Items, 4)
				require.Equal(t, 1, resp.Critical)
				require.Equal(t, 1, resp.Low)
				require.False(t, resp.Cached)

				require.Equal(t, "critical", resp.Items[0].Status)
				require.InDelta(t, 0.2, resp.Items[0].LiquidityScore, 0.001)
				require.Equal(t, "low", resp.Items[1].Status)
				require.InDelta(t, 0.4, resp.Items[1].LiquidityScore, 0.001)
				require.Equal(t, "optimal", resp.Items[2].Status)
				require.InDelta(t, 0.8, resp.Items[2].LiquidityScore, 0.001)
				require.Equal(t, "overstocked", resp.Items[3].Status)
				require.InDelta(t, 0.6, resp.Items[3].LiquidityScore, 0.001)
			},
		},
		{
			name:  "OKSingleStore",
			query: "?store_id=1",
			buildStubs: func(store *mockdb.MockStore) {
				byStore := make([]db.ListInventoryDetailByStoreRow, 0, len(rows))
				for _, row := range rows {
					byStore = append(byStore, db.ListInventoryDetailByStoreRow(row))
				}
				store.EXPECT().
					ListInventoryDetailByStore(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(byStore, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp liquiditySummaryResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Len(t, resp.Items, 4)
			},
		},
		{
			name:  "InvalidStoreID",
			query: "?store_id=-1",
			buildStubs: func(store *mockdb.MockStore) {
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/v1/inventory/liquidity"+tc.query, nil)
			require.NoError(t, err)

			server.GetRouter().ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
