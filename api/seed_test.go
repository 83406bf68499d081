package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mockdb "github.com/quickmart/supplychain/db/mock"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeedFixturesAPI(t *testing.T) {
	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SeedFixturesTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.SeedFixturesTxParams) (db.SeedFixturesTxResult, error) {
						require.Len(t, arg.Stores, 5)
						require.Len(t, arg.Products, 15)
						require.Len(t, arg.Customers, 8)
						require.Len(t, arg.Agents, 5)
						require.Len(t, arg.Lockers, 5)
						// 每个门店-商品组合一条库存
						require.Len(t, arg.Inventory, 75)
						require.Len(t, arg.Orders, 50)
						require.NotEmpty(t, arg.Items)

						// 库存量落在随机区间内，外键按截断后的自增ID回填
						for _, inv := range arg.Inventory {
							require.GreaterOrEqual(t, inv.CurrentStock, int32(20))
							require.LessOrEqual(t, inv.CurrentStock, int32(100))
							require.GreaterOrEqual(t, inv.StoreID, int64(1))
							require.LessOrEqual(t, inv.StoreID, int64(5))
						}

						return db.SeedFixturesTxResult{
							Stores:    len(arg.Stores),
							Products:  len(arg.Products),
							Customers: len(arg.Customers),
							Agents:    len(arg.Agents),
							Lockers:   len(arg.Lockers),
							Inventory: len(arg.Inventory),
							Orders:    len(arg.Orders),
							Items:     len(arg.Items),
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp db.SeedFixturesTxResult
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, 5, resp.Stores)
				require.Equal(t, 75, resp.Inventory)
				require.Equal(t, 50, resp.Orders)
			},
		},
		{
			name: "InternalError",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SeedFixturesTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SeedFixturesTxResult{}, errors.New("connection reset"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
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

			request, err := http.NewRequest(http.MethodPost, "/v1/fixtures/seed", nil)
			require.NoError(t, err)

			server.GetRouter().ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
