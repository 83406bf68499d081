package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/quickmart/supplychain/notification"
	"github.com/quickmart/supplychain/util"
	"github.com/quickmart/supplychain/val"
)

// ==================== 取件验证 ====================

type requestOtpRequest struct {
	// PickupID 和 OrderID 二选一
	PickupID int64 `json:"pickup_id" binding:"omitempty,min=1"`
	OrderID  int64 `json:"order_id" binding:"omitempty,min=1"`
	// Phone 可选；为空时发送到下单客户的手机号
	Phone string `json:"phone" binding:"omitempty,e164"`
}

type requestOtpResponse struct {
	PickupID     int64     `json:"pickup_id"`
	OrderID      int64     `json:"order_id"`
	SentTo       string    `json:"sent_to"`
	OtpExpiresAt time.Time `json:"otp_expires_at"`
}

// requestPickupOtp godoc
// @Summary 下发取件验证码
// @Description 生成6位数字验证码并通过短信下发；短信发送成功后验证码才落库生效
// @Tags 取件
// @Accept json
// @Produce json
// @Param request body requestOtpRequest true "取件记录ID或订单ID"
// @Success 200 {object} requestOtpResponse "已发送"
// @Failure 400 {object} ErrorResponse "参数错误或客户缺少手机号"
// @Failure 404 {object} ErrorResponse "取件记录不存在"
// @Failure 409 {object} ErrorResponse "已完成取件"
// @Failure 410 {object} ErrorResponse "取件已过期"
// @Failure 502 {object} ErrorResponse "短信网关不可用"
// @Router /v1/lockers/pickups/otp [post]
func (server *Server) requestPickupOtp(ctx *gin.Context) {
	var req requestOtpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.PickupID == 0 && req.OrderID == 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("pickup_id or order_id is required")))
		return
	}

	var pickup db.LockerPickup
	var err error
	if req.PickupID != 0 {
		pickup, err = server.store.GetLockerPickup(ctx, req.PickupID)
	} else {
		pickup, err = server.store.GetActivePickupByOrder(ctx, req.OrderID)
	}
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(db.ErrPickupNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	now := time.Now()
	if pickup.IsPickedUp {
		ctx.JSON(http.StatusConflict, errorResponse(db.ErrAlreadyPickedUp))
		return
	}
	// 过期状态在访问时判定
	if now.After(pickup.ExpiresAt) {
		ctx.JSON(http.StatusGone, errorResponse(db.ErrPickupExpired))
		return
	}

	phone := req.Phone
	if phone == "" {
		order, err := server.store.GetOrderWithCustomer(ctx, pickup.OrderID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		phone = order.CustomerPhone
	}

	otp := util.RandomOTPCode()
	message := fmt.Sprintf(
		"QuickMart 取件验证码：%s，%d分钟内有效。请勿泄露给他人。",
		otp, int(server.config.OtpValidityDuration.Minutes()),
	)

	// 先发送后落库：发送失败时旧验证码继续有效
	if err := server.sender.SendSMS(ctx, phone, message); err != nil {
		switch {
		case errors.Is(err, notification.ErrMissingContact):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.Is(err, notification.ErrDispatchFailed):
			ctx.JSON(http.StatusBadGateway, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	updated, err := server.store.SetPickupOtp(ctx, db.SetPickupOtpParams{
		ID:             pickup.ID,
		OtpCode:        pgtype.Text{String: otp, Valid: true},
		OtpGeneratedAt: pgtype.Timestamptz{Time: now, Valid: true},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, requestOtpResponse{
		PickupID:     updated.ID,
		OrderID:      updated.OrderID,
		SentTo:       maskPhone(phone),
		OtpExpiresAt: now.Add(server.config.OtpValidityDuration),
	})
}

// maskPhone 隐去手机号中间段
func maskPhone(phone string) string {
	if len(phone) < 7 {
		return phone
	}
	return phone[:3] + "****" + phone[len(phone)-4:]
}

type verifyPickupRequest struct {
	// PickupID 和 LockerID+CompartmentNumber 二选一，对应两种取件方式
	PickupID          int64  `json:"pickup_id" binding:"omitempty,min=1"`
	LockerID          int64  `json:"locker_id" binding:"omitempty,min=1"`
	CompartmentNumber int32  `json:"compartment_number" binding:"omitempty,min=1"`
	PickupCode        string `json:"pickup_code" binding:"required"`
	OtpCode           string `json:"otp_code" binding:"required"`
}

type verifyPickupResponse struct {
	PickupID          int64     `json:"pickup_id"`
	OrderID           int64     `json:"order_id"`
	OrderStatus       string    `json:"order_status"`
	LockerID          int64     `json:"locker_id"`
	CompartmentNumber int32     `json:"compartment_number"`
	PickedUpAt        time.Time `json:"picked_up_at"`
}

// verifyPickup godoc
// @Summary 验证取件
// @Description 校验取件码和短信验证码，通过后在单个事务内完成取件、释放格口并将订单置为已送达；过期记录在此惰性释放格口
// @Tags 取件
// @Accept json
// @Produce json
// @Param request body verifyPickupRequest true "验证参数"
// @Success 200 {object} verifyPickupResponse "取件成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "取件记录不存在"
// @Failure 409 {object} ErrorResponse "已完成取件"
// @Failure 410 {object} ErrorResponse "取件或验证码已过期"
// @Failure 422 {object} ErrorResponse "取件码或验证码不正确"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/lockers/pickups/verify [post]
func (server *Server) verifyPickup(ctx *gin.Context) {
	var req verifyPickupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.PickupID == 0 && (req.LockerID == 0 || req.CompartmentNumber == 0) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("pickup_id or locker_id with compartment_number is required")))
		return
	}
	if err := val.ValidatePickupCode(req.PickupCode); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := val.ValidateOTPCode(req.OtpCode); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.VerifyPickupTx(ctx, db.VerifyPickupTxParams{
		PickupID:          req.PickupID,
		LockerID:          req.LockerID,
		CompartmentNumber: req.CompartmentNumber,
		PickupCode:        req.PickupCode,
		OtpCode:           req.OtpCode,
		OtpValidity:       server.config.OtpValidityDuration,
		Now:               time.Now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrPickupNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrAlreadyPickedUp):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		case errors.Is(err, db.ErrPickupExpired), errors.Is(err, db.ErrOtpExpired):
			ctx.JSON(http.StatusGone, errorResponse(err))
		case errors.Is(err, db.ErrInvalidPickup), errors.Is(err, db.ErrInvalidOtp):
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	ctx.JSON(http.StatusOK, verifyPickupResponse{
		PickupID:          result.Pickup.ID,
		OrderID:           result.Order.ID,
		OrderStatus:       result.Order.Status,
		LockerID:          result.Pickup.LockerID,
		CompartmentNumber: result.Pickup.CompartmentNumber,
		PickedUpAt:        result.Pickup.PickedUpAt.Time,
	})
}
