package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	mockdb "github.com/quickmart/supplychain/db/mock"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/quickmart/supplychain/util"
	"github.com/quickmart/supplychain/worker"
	mockwk "github.com/quickmart/supplychain/worker/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 达拉斯市区的两个柜点：downtown 离测试客户更近
func testLockers() []db.SmartLocker {
	return []db.SmartLocker{
		{
			ID:                    1,
			LocationName:          "Downtown Transit Center",
			Address:               "1401 Pacific Ave, Dallas, TX 75201",
			Latitude:              32.7767,
			Longitude:             -96.8085,
			TotalCompartments:     60,
			AvailableCompartments: 45,
		},
		{
			ID:                    3,
			LocationName:          "North Dallas Mall",
			Address:               "12000 North Central Expy, Dallas, TX 75243",
			Latitude:              32.8998,
			Longitude:             -96.7587,
			TotalCompartments:     80,
			AvailableCompartments: 65,
		},
	}
}

func TestCreateLockerPickupAPI(t *testing.T) {
	orderID := util.RandomInt(1, 1000)
	order := randomOrderWithCustomer(orderID, "processing")
	lockers := testLockers()
	nearest := lockers[0]

	pickup := db.LockerPickup{
		ID:                util.RandomInt(1, 1000),
		OrderID:           orderID,
		LockerID:          nearest.ID,
		CompartmentNumber: 17,
		PickupCode:        util.RandomPickupCode(),
		ExpiresAt:         time.Now().Add(48 * time.Hour),
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OKNearestLocker",
			body: gin.H{"order_id": orderID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
					Times(1).
					Return(order, nil)
				store.EXPECT().
					ListAvailableLockers(gomock.Any()).
					Times(1).
					Return(lockers, nil)
				store.EXPECT().
					AssignLockerTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.AssignLockerTxParams) (db.AssignLockerTxResult, error) {
						require.Equal(t, orderID, arg.OrderID)
						// 就近选柜必须命中市中心柜点
						require.Equal(t, nearest.ID, arg.LockerID)
						require.WithinDuration(t, time.Now().Add(48*time.Hour), arg.ExpiresAt, time.Minute)
						return db.AssignLockerTxResult{
							Pickup: pickup,
							Locker: nearest,
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp pickupResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, nearest.ID, resp.LockerID)
				require.Equal(t, pickup.PickupCode, resp.PickupCode)
				require.Equal(t, pickup.CompartmentNumber, resp.CompartmentNumber)
			},
		},
		{
			name: "OKExplicitLockerAndExpiry",
			body: gin.H{"order_id": orderID, "locker_id": lockers[1].ID, "expiry_hours": 168},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
					Times(1).
					Return(order, nil)
				// 指定柜子时不做就近查询
				store.EXPECT().ListAvailableLockers(gomock.Any()).Times(0)
				store.EXPECT().
					AssignLockerTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.AssignLockerTxParams) (db.AssignLockerTxResult, error) {
						require.Equal(t, lockers[1].ID, arg.LockerID)
						require.WithinDuration(t, time.Now().Add(168*time.Hour), arg.ExpiresAt, time.Minute)
						longPickup := pickup
						longPickup.LockerID = lockers[1].ID
						longPickup.ExpiresAt = arg.ExpiresAt
						return db.AssignLockerTxResult{
							Pickup: longPickup,
							Locker: lockers[1],
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "OrderNotFound",
			body: gin.H{"order_id": orderID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
					Times(1).
					Return(db.GetOrderWithCustomerRow{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "OrderAlreadyDelivered",
			body: gin.H{"order_id": orderID},
			buildStubs: func(store *mockdb.MockStore) {
				delivered := randomOrderWithCustomer(orderID, "delivered")
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
					Times(1).
					Return(delivered, nil)
				store.EXPECT().AssignLockerTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "NoAvailableLockers",
			body: gin.H{"order_id": orderID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
					Times(1).
					Return(order, nil)
				store.EXPECT().
					ListAvailableLockers(gomock.Any()).
					Times(1).
					Return([]db.SmartLocker{}, nil)
				store.EXPECT().AssignLockerTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "ActivePickupExists",
			body: gin.H{"order_id": orderID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
					Times(1).
					Return(order, nil)
				store.EXPECT().
					ListAvailableLockers(gomock.Any()).
					Times(1).
					Return(lockers, nil)
				store.EXPECT().
					AssignLockerTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.AssignLockerTxResult{}, db.ErrActivePickup)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "CompartmentRace",
			body: gin.H{"order_id": orderID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
					Times(1).
					Return(order, nil)
				store.EXPECT().
					ListAvailableLockers(gomock.Any()).
					Times(1).
					Return(lockers, nil)
				// 事务内复查发现格口被抢占
				store.EXPECT().
					AssignLockerTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.AssignLockerTxResult{}, db.ErrNoCompartment)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "InvalidBody",
			body: gin.H{"order_id": 0},
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

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/lockers/pickups", bytes.NewReader(data))
			require.NoError(t, err)

			server.GetRouter().ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

// 分配成功后必须下发取件通知任务和临近过期的延迟提醒任务
func TestCreateLockerPickupEnqueuesTasks(t *testing.T) {
	orderID := util.RandomInt(1, 1000)
	order := randomOrderWithCustomer(orderID, "processing")
	lockers := testLockers()

	pickup := db.LockerPickup{
		ID:                util.RandomInt(1, 1000),
		OrderID:           orderID,
		LockerID:          lockers[0].ID,
		CompartmentNumber: 8,
		PickupCode:        util.RandomPickupCode(),
		ExpiresAt:         time.Now().Add(48 * time.Hour),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		GetOrderWithCustomer(gomock.Any(), gomock.Eq(orderID)).
		Times(1).
		Return(order, nil)
	store.EXPECT().
		ListAvailableLockers(gomock.Any()).
		Times(1).
		Return(lockers, nil)
	store.EXPECT().
		AssignLockerTx(gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.AssignLockerTxResult{Pickup: pickup, Locker: lockers[0]}, nil)

	taskDistributor := mockwk.NewMockTaskDistributor(ctrl)
	taskDistributor.EXPECT().
		DistributeTaskSendPickupNotification(gomock.Any(), gomock.Eq(&worker.PayloadSendPickupNotification{PickupID: pickup.ID}), gomock.Any(), gomock.Any()).
		Times(1).
		Return(nil)
	taskDistributor.EXPECT().
		DistributeTaskPickupExpiryReminder(gomock.Any(), gomock.Eq(&worker.PayloadPickupExpiryReminder{PickupID: pickup.ID}), gomock.Any(), gomock.Any()).
		Times(1).
		Return(nil)

	server := newTestServerWithTaskDistributor(t, store, taskDistributor)
	recorder := httptest.NewRecorder()

	data, err := json.Marshal(gin.H{"order_id": orderID})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/v1/lockers/pickups", bytes.NewReader(data))
	require.NoError(t, err)

	server.GetRouter().ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetLockerPickupAPI(t *testing.T) {
	pickup := randomPickup(util.RandomInt(1, 1000))

	testCases := []struct {
		name          string
		pickupID      int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:     "OK",
			pickupID: pickup.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(pickup, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp pickupStatusResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, pickup.ID, resp.PickupID)
				require.False(t, resp.IsPickedUp)
				require.False(t, resp.OtpVerified)
				require.False(t, resp.Expired)
			},
		},
		{
			// 过期状态按查询时刻计算，不依赖后台任务
			name:     "ExpiredComputedOnRead",
			pickupID: pickup.ID,
			buildStubs: func(store *mockdb.MockStore) {
				stale := pickup
				stale.ExpiresAt = time.Now().Add(-time.Hour)
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(stale, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp pickupStatusResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.True(t, resp.Expired)
				require.False(t, resp.IsPickedUp)
			},
		},
		{
			name:     "NotFound",
			pickupID: pickup.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(db.LockerPickup{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:     "InvalidID",
			pickupID: 0,
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

			url := fmt.Sprintf("/v1/lockers/pickups/%d", tc.pickupID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.GetRouter().ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestListLockerPickupsAPI(t *testing.T) {
	orderID := util.RandomInt(1, 1000)

	expired := randomPickup(orderID)
	expired.ExpiresAt = time.Now().Add(-time.Hour)

	rows := []db.ListLockerPickupDetailsByOrderRow{
		{
			LockerPickup:     expired,
			LockerName:       "Downtown Transit Center",
			LockerAddress:    "1401 Pacific Ave, Dallas, TX 75201",
			OrderTotalAmount: 42.50,
			CustomerName:     "Emily Wilson",
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListLockerPickupDetailsByOrder(gomock.Any(), gomock.Eq(orderID)).
		Times(1).
		Return(rows, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	url := fmt.Sprintf("/v1/lockers/pickups?order_id=%d", orderID)
	request, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	server.GetRouter().ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp []pickupDetailResponse
	err = json.Unmarshal(recorder.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	// 未取件且过了有效期，过期标记按查询时刻计算
	require.True(t, resp[0].Expired)
	require.Equal(t, "Emily Wilson", resp[0].CustomerName)
}
