package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	mockdb "github.com/quickmart/supplychain/db/mock"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/quickmart/supplychain/notification"
	mocknotify "github.com/quickmart/supplychain/notification/mock"
	"github.com/quickmart/supplychain/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func randomPickup(orderID int64) db.LockerPickup {
	return db.LockerPickup{
		ID:                util.RandomInt(1, 1000),
		OrderID:           orderID,
		LockerID:          util.RandomInt(1, 5),
		CompartmentNumber: int32(util.RandomInt(1, 60)),
		PickupCode:        util.RandomPickupCode(),
		ExpiresAt:         time.Now().Add(48 * time.Hour),
		CreatedAt:         time.Now(),
	}
}

func randomOrderWithCustomer(orderID int64, status string) db.GetOrderWithCustomerRow {
	return db.GetOrderWithCustomerRow{
		Order: db.Order{
			ID:          orderID,
			CustomerID:  util.RandomInt(1, 8),
			StoreID:     util.RandomInt(1, 5),
			TotalAmount: util.RandomFloat(10, 60),
			Status:      status,
			OrderDate:   time.Now().Add(-24 * time.Hour),
		},
		CustomerName:      "Emily Wilson",
		CustomerEmail:     "emily.w@email.com",
		CustomerPhone:     util.RandomPhone(),
		CustomerAddress:   "400 Bryan St, Dallas, TX 75201",
		CustomerLatitude:  32.7767,
		CustomerLongitude: -96.7836,
	}
}

func TestRequestPickupOtpAPI(t *testing.T) {
	pickup := randomPickup(util.RandomInt(1, 1000))
	order := randomOrderWithCustomer(pickup.OrderID, "ready_for_pickup")

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OKByPickupID",
			body: gin.H{"pickup_id": pickup.ID},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(pickup, nil)
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(pickup.OrderID)).
					Times(1).
					Return(order, nil)
				// 先发送短信，成功后验证码才落库
				sender.EXPECT().
					SendSMS(gomock.Any(), gomock.Eq(order.CustomerPhone), gomock.Any()).
					Times(1).
					Return(nil)
				store.EXPECT().
					SetPickupOtp(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.SetPickupOtpParams) (db.LockerPickup, error) {
						require.Equal(t, pickup.ID, arg.ID)
						require.True(t, arg.OtpCode.Valid)
						require.Len(t, arg.OtpCode.String, 6)
						require.True(t, arg.OtpGeneratedAt.Valid)

						updated := pickup
						updated.OtpCode = arg.OtpCode
						updated.OtpGeneratedAt = arg.OtpGeneratedAt
						return updated, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp requestOtpResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, pickup.ID, resp.PickupID)
				require.Contains(t, resp.SentTo, "****")
			},
		},
		{
			name: "OKByOrderID",
			body: gin.H{"order_id": pickup.OrderID},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
				store.EXPECT().
					GetActivePickupByOrder(gomock.Any(), gomock.Eq(pickup.OrderID)).
					Times(1).
					Return(pickup, nil)
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(pickup.OrderID)).
					Times(1).
					Return(order, nil)
				sender.EXPECT().
					SendSMS(gomock.Any(), gomock.Eq(order.CustomerPhone), gomock.Any()).
					Times(1).
					Return(nil)
				store.EXPECT().
					SetPickupOtp(gomock.Any(), gomock.Any()).
					Times(1).
					Return(pickup, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "DispatchFailedNotPersisted",
			body: gin.H{"pickup_id": pickup.ID},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(pickup, nil)
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(pickup.OrderID)).
					Times(1).
					Return(order, nil)
				sender.EXPECT().
					SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(fmt.Errorf("%w: gateway timeout", notification.ErrDispatchFailed))
				// 发送失败时验证码不得落库
				store.EXPECT().
					SetPickupOtp(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadGateway, recorder.Code)
			},
		},
		{
			name: "MissingContact",
			body: gin.H{"pickup_id": pickup.ID},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
				noPhone := order
				noPhone.CustomerPhone = ""
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(pickup, nil)
				store.EXPECT().
					GetOrderWithCustomer(gomock.Any(), gomock.Eq(pickup.OrderID)).
					Times(1).
					Return(noPhone, nil)
				sender.EXPECT().
					SendSMS(gomock.Any(), gomock.Eq(""), gomock.Any()).
					Times(1).
					Return(notification.ErrMissingContact)
				store.EXPECT().
					SetPickupOtp(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "AlreadyPickedUp",
			body: gin.H{"pickup_id": pickup.ID},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
				done := pickup
				done.IsPickedUp = true
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(done, nil)
				sender.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "Expired",
			body: gin.H{"pickup_id": pickup.ID},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
				expired := pickup
				expired.ExpiresAt = time.Now().Add(-time.Hour)
				store.EXPECT().
					GetLockerPickup(gomock.Any(), gomock.Eq(pickup.ID)).
					Times(1).
					Return(expired, nil)
				sender.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusGone, recorder.Code)
			},
		},
		{
			name: "NotFound",
			body: gin.H{"pickup_id": pickup.ID},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
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
			name: "MissingLocator",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore, sender *mocknotify.MockSMSSender) {
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
			sender := mocknotify.NewMockSMSSender(ctrl)
			tc.buildStubs(store, sender)

			server := newTestServerWithSender(t, store, sender)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/lockers/pickups/otp", bytes.NewReader(data))
			require.NoError(t, err)

			server.GetRouter().ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestVerifyPickupAPI(t *testing.T) {
	pickup := randomPickup(util.RandomInt(1, 1000))
	otp := util.RandomOTPCode()

	completed := pickup
	completed.IsPickedUp = true
	completed.OtpVerified = true
	completed.PickedUpAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	deliveredOrder := db.Order{
		ID:     pickup.OrderID,
		Status: "delivered",
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OKByPickupID",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.VerifyPickupTxParams) (db.VerifyPickupTxResult, error) {
						require.Equal(t, pickup.ID, arg.PickupID)
						require.Equal(t, pickup.PickupCode, arg.PickupCode)
						require.Equal(t, otp, arg.OtpCode)
						require.Equal(t, 10*time.Minute, arg.OtpValidity)
						return db.VerifyPickupTxResult{
							Pickup: completed,
							Order:  deliveredOrder,
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp verifyPickupResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &resp)
				require.NoError(t, err)
				require.Equal(t, pickup.ID, resp.PickupID)
				require.Equal(t, "delivered", resp.OrderStatus)
			},
		},
		{
			name: "OKByLockerAndCompartment",
			body: gin.H{
				"locker_id":          pickup.LockerID,
				"compartment_number": pickup.CompartmentNumber,
				"pickup_code":        pickup.PickupCode,
				"otp_code":           otp,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.VerifyPickupTxParams) (db.VerifyPickupTxResult, error) {
						require.Zero(t, arg.PickupID)
						require.Equal(t, pickup.LockerID, arg.LockerID)
						require.Equal(t, pickup.CompartmentNumber, arg.CompartmentNumber)
						require.Equal(t, otp, arg.OtpCode)
						return db.VerifyPickupTxResult{
							Pickup: completed,
							Order:  deliveredOrder,
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			// 仅凭取件码不能完成取件
			name: "MissingOtp",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().VerifyPickupTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			// 格口取件必须同时给出柜机，格口号跨柜机会重复
			name: "CompartmentWithoutLocker",
			body: gin.H{
				"compartment_number": pickup.CompartmentNumber,
				"pickup_code":        pickup.PickupCode,
				"otp_code":           otp,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().VerifyPickupTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NotFound",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.VerifyPickupTxResult{}, db.ErrPickupNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "AlreadyPickedUp",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.VerifyPickupTxResult{}, db.ErrAlreadyPickedUp)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "Expired",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.VerifyPickupTxResult{}, db.ErrPickupExpired)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusGone, recorder.Code)
			},
		},
		{
			name: "WrongPickupCode",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": "ZZZZZ9", "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.VerifyPickupTxResult{}, db.ErrInvalidPickup)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			},
		},
		{
			name: "WrongOtp",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": "000000"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.VerifyPickupTxResult{}, db.ErrInvalidOtp)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			},
		},
		{
			name: "StaleOtp",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.VerifyPickupTxResult{}, db.ErrOtpExpired)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusGone, recorder.Code)
			},
		},
		{
			name: "MissingLocator",
			body: gin.H{"pickup_code": pickup.PickupCode, "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().VerifyPickupTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "BadPickupCodeFormat",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": "abc", "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().VerifyPickupTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "BadOtpFormat",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": "12ab56"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().VerifyPickupTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InternalError",
			body: gin.H{"pickup_id": pickup.ID, "pickup_code": pickup.PickupCode, "otp_code": otp},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					VerifyPickupTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.VerifyPickupTxResult{}, errors.New("connection reset"))
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

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/lockers/pickups/verify", bytes.NewReader(data))
			require.NoError(t, err)

			server.GetRouter().ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
