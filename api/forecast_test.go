package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	mockdb "github.com/quickmart/supplychain/db/mock"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerateForecastsAPI(t *testing.T) {
	stores := []db.RetailStore{
		{ID: 1, Name: "QuickMart Supercenter - Downtown", Capacity: 2000},
	}
	products := []db.Product{
		{ID: 2, Name: "Milk (1 gallon)", Category: "Dairy", Price: 3.48},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().ListStores(gomock.Any()).Times(1).Return(stores, nil)
	store.EXPECT().ListProducts(gomock.Any()).Times(1).Return(products, nil)
	// 同日重复生成按覆盖处理：先清后写
	store.EXPECT().
		DeleteForecastsByDate(gomock.Any(), gomock.Any()).
		Times(1).
		Return(nil)
	store.EXPECT().
		SumDeliveredItemQuantity(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.SumDeliveredItemQuantityParams) (db.SumDeliveredItemQuantityRow, error) {
			require.Equal(t, int64(1), arg.StoreID)
			require.Equal(t, int64(2), arg.ProductID)
			return db.SumDeliveredItemQuantityRow{TotalQuantity: 90, SampleCount: 6}, nil
		})
	store.EXPECT().
		CreateDemandForecast(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.CreateDemandForecastParams) (db.DemandForecast, error) {
			require.Equal(t, int64(1), arg.StoreID)
			require.Equal(t, int64(2), arg.ProductID)
			// 日均3件 × Dairy 1.1 × 规模 1.0 × jitter 0.8~1.2 ∈ [2,4]
			require.GreaterOrEqual(t, arg.PredictedDemand, int32(2))
			require.LessOrEqual(t, arg.PredictedDemand, int32(4))
			// confidence = 0.5 + 6×0.05
			require.InDelta(t, 0.8, arg.ConfidenceScore, 0.001)
			require.True(t, arg.ForecastDate.Valid)

			return db.DemandForecast{
				ID:              1,
				ProductID:       arg.ProductID,
				StoreID:         arg.StoreID,
				PredictedDemand: arg.PredictedDemand,
				ConfidenceScore: arg.ConfidenceScore,
				ForecastDate:    arg.ForecastDate,
			}, nil
		})

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPost, "/v1/forecasts/generate", nil)
	require.NoError(t, err)

	server.GetRouter().ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp generateForecastsResponse
	err = json.Unmarshal(recorder.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Generated)
	require.Len(t, resp.Forecasts, 1)
	require.Equal(t, time.Now().AddDate(0, 0, 1).Format("2006-01-02"), resp.ForecastDate)
}

func TestListForecastsAPI(t *testing.T) {
	forecastDate := pgtype.Date{Time: time.Now().AddDate(0, 0, 1), Valid: true}
	rows := []db.ListDemandForecastsRow{
		{
			DemandForecast: db.DemandForecast{
				ID:              1,
				ProductID:       2,
				StoreID:         1,
				PredictedDemand: 3,
				ConfidenceScore: 0.8,
				ForecastDate:    forecastDate,
			},
			ProductName:     "Milk (1 gallon)",
			ProductCategory: "Dairy",
			StoreName:       "QuickMart Supercenter - Downtown",
		},
	}

	testCases := []struct {
		name          string
		query         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OKFilterByStore",
			query: "?store_id=1",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListDemandForecasts(gomock.Any(), gomock.Eq(db.ListDemandForecastsParams{
						StoreID: pgtype.Int8{Int64: 1, Valid: true},
					})).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp []forecastResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Len(t, resp, 1)
				require.Equal(t, "Milk (1 gallon)", resp[0].ProductName)
			},
		},
		{
			name:  "OKNoFilter",
			query: "",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListDemandForecasts(gomock.Any(), gomock.Eq(db.ListDemandForecastsParams{})).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "InvalidStoreID",
			query: "?store_id=-3",
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

			request, err := http.NewRequest(http.MethodGet, "/v1/forecasts"+tc.query, nil)
			require.NoError(t, err)

			server.GetRouter().ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
