package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/quickmart/supplychain/algorithm"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/quickmart/supplychain/val"
	"github.com/quickmart/supplychain/worker"
	"github.com/rs/zerolog/log"
)

// ==================== 智能储物柜 ====================

// 到期前提醒的提前量
const expiryReminderLead = 4 * time.Hour

type createPickupRequest struct {
	OrderID int64 `json:"order_id" binding:"required,min=1"`
	// LockerID 可选；为空时自动选择离客户最近的有空格口的柜子
	LockerID int64 `json:"locker_id" binding:"omitempty,min=1"`
	// ExpiryHours 可选；为空时使用系统默认有效期（48小时）
	ExpiryHours int32 `json:"expiry_hours" binding:"omitempty,min=1,max=336"`
}

type pickupResponse struct {
	PickupID          int64      `json:"pickup_id"`
	OrderID           int64      `json:"order_id"`
	LockerID          int64      `json:"locker_id"`
	LockerName        string     `json:"locker_name,omitempty"`
	LockerAddress     string     `json:"locker_address,omitempty"`
	CompartmentNumber int32      `json:"compartment_number"`
	PickupCode        string     `json:"pickup_code"`
	IsPickedUp        bool       `json:"is_picked_up"`
	ExpiresAt         time.Time  `json:"expires_at"`
	PickedUpAt        *time.Time `json:"picked_up_at,omitempty"`
}

// createLockerPickup godoc
// @Summary 分配储物柜格口
// @Description 为订单就近分配储物柜格口并生成取件码；通知异步下发
// @Tags 储物柜
// @Accept json
// @Produce json
// @Param request body createPickupRequest true "分配参数"
// @Success 200 {object} pickupResponse "分配成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "订单或柜子不存在"
// @Failure 409 {object} ErrorResponse "订单已有取件记录或无空格口"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/lockers/pickups [post]
func (server *Server) createLockerPickup(ctx *gin.Context) {
	var req createPickupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.store.GetOrderWithCustomer(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("order not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if order.Order.Status == "delivered" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("order already delivered")))
		return
	}

	lockerID := req.LockerID
	if lockerID == 0 {
		// 坐标异常的老数据无法参与就近选柜
		if err := val.ValidateCoordinate(order.CustomerLatitude, order.CustomerLongitude); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(err))
			return
		}
		lockerID, err = server.pickNearestLocker(ctx, order.CustomerLatitude, order.CustomerLongitude)
		if err != nil {
			if errors.Is(err, db.ErrNoCompartment) {
				ctx.JSON(http.StatusConflict, errorResponse(err))
				return
			}
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
	}

	expiry := server.config.PickupExpiryDuration
	if req.ExpiryHours > 0 {
		expiry = time.Duration(req.ExpiryHours) * time.Hour
	}
	expiresAt := time.Now().Add(expiry)

	result, err := server.store.AssignLockerTx(ctx, db.AssignLockerTxParams{
		OrderID:   req.OrderID,
		LockerID:  lockerID,
		QrCode:    fmt.Sprintf("qr-order-%d", req.OrderID),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("locker not found")))
		case errors.Is(err, db.ErrNoCompartment), errors.Is(err, db.ErrActivePickup):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	// 取件通知和到期提醒都不阻塞分配流程
	server.enqueuePickupTasks(ctx, result.Pickup)

	ctx.JSON(http.StatusOK, pickupResponse{
		PickupID:          result.Pickup.ID,
		OrderID:           result.Pickup.OrderID,
		LockerID:          result.Pickup.LockerID,
		LockerName:        result.Locker.LocationName,
		LockerAddress:     result.Locker.Address,
		CompartmentNumber: result.Pickup.CompartmentNumber,
		PickupCode:        result.Pickup.PickupCode,
		ExpiresAt:         result.Pickup.ExpiresAt,
	})
}

// pickNearestLocker 选择离客户最近且有空格口的柜子
func (server *Server) pickNearestLocker(ctx *gin.Context, lat, lng float64) (int64, error) {
	lockers, err := server.store.ListAvailableLockers(ctx)
	if err != nil {
		return 0, err
	}
	if len(lockers) == 0 {
		return 0, db.ErrNoCompartment
	}

	customer := algorithm.Location{Latitude: lat, Longitude: lng}
	best := lockers[0]
	bestDistance := algorithm.HaversineMiles(customer, algorithm.Location{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	})
	for _, locker := range lockers[1:] {
		d := algorithm.HaversineMiles(customer, algorithm.Location{
			Latitude:  locker.Latitude,
			Longitude: locker.Longitude,
		})
		if d < bestDistance {
			best = locker
			bestDistance = d
		}
	}

	return best.ID, nil
}

// enqueuePickupTasks 下发取件通知任务和到期提醒任务
func (server *Server) enqueuePickupTasks(ctx *gin.Context, pickup db.LockerPickup) {
	if server.taskDistributor == nil {
		return
	}

	err := server.taskDistributor.DistributeTaskSendPickupNotification(ctx,
		&worker.PayloadSendPickupNotification{PickupID: pickup.ID},
		asynq.MaxRetry(5),
		asynq.Queue(worker.QueueCritical),
	)
	if err != nil {
		log.Error().Err(err).Int64("pickup_id", pickup.ID).Msg("enqueue pickup notification failed")
	}

	// 临近过期时提醒一次；有效期过短则跳过
	lead := time.Until(pickup.ExpiresAt.Add(-expiryReminderLead))
	if lead <= 0 {
		return
	}
	err = server.taskDistributor.DistributeTaskPickupExpiryReminder(ctx,
		&worker.PayloadPickupExpiryReminder{PickupID: pickup.ID},
		asynq.ProcessIn(lead),
		asynq.Queue(worker.QueueDefault),
	)
	if err != nil {
		log.Error().Err(err).Int64("pickup_id", pickup.ID).Msg("enqueue expiry reminder failed")
	}
}

type listPickupsRequest struct {
	OrderID int64 `form:"order_id" binding:"omitempty,min=1"`
	Limit   int32 `form:"limit" binding:"omitempty,min=1,max=100"`
}

type pickupDetailResponse struct {
	pickupResponse
	OrderTotalAmount float64 `json:"order_total_amount"`
	CustomerName     string  `json:"customer_name"`
	Expired          bool    `json:"expired"`
}

// listLockerPickups godoc
// @Summary 查询取件记录
// @Description 按订单过滤查询取件记录，过期状态按查询时刻惰性计算
// @Tags 储物柜
// @Produce json
// @Param order_id query int false "订单ID"
// @Param limit query int false "返回条数上限（默认20）"
// @Success 200 {array} pickupDetailResponse
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/lockers/pickups [get]
func (server *Server) listLockerPickups(ctx *gin.Context) {
	var req listPickupsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	now := time.Now()
	resp := []pickupDetailResponse{}

	appendRow := func(pickup db.LockerPickup, lockerName, lockerAddress string, totalAmount float64, customerName string) {
		item := pickupDetailResponse{
			pickupResponse: pickupResponse{
				PickupID:          pickup.ID,
				OrderID:           pickup.OrderID,
				LockerID:          pickup.LockerID,
				LockerName:        lockerName,
				LockerAddress:     lockerAddress,
				CompartmentNumber: pickup.CompartmentNumber,
				PickupCode:        pickup.PickupCode,
				IsPickedUp:        pickup.IsPickedUp,
				ExpiresAt:         pickup.ExpiresAt,
			},
			OrderTotalAmount: totalAmount,
			CustomerName:     customerName,
			Expired:          !pickup.IsPickedUp && now.After(pickup.ExpiresAt),
		}
		if pickup.PickedUpAt.Valid {
			t := pickup.PickedUpAt.Time
			item.PickedUpAt = &t
		}
		resp = append(resp, item)
	}

	if req.OrderID != 0 {
		rows, err := server.store.ListLockerPickupDetailsByOrder(ctx, req.OrderID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		for _, row := range rows {
			appendRow(row.LockerPickup, row.LockerName, row.LockerAddress, row.OrderTotalAmount, row.CustomerName)
		}
		ctx.JSON(http.StatusOK, resp)
		return
	}

	rows, err := server.store.ListLockerPickupDetails(ctx, req.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	for _, row := range rows {
		appendRow(row.LockerPickup, row.LockerName, row.LockerAddress, row.OrderTotalAmount, row.CustomerName)
	}
	ctx.JSON(http.StatusOK, resp)
}

type getPickupRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type pickupStatusResponse struct {
	pickupResponse
	OtpVerified bool `json:"otp_verified"`
	// Expired 按查询时刻惰性计算
	Expired bool `json:"expired"`
}

// getLockerPickup godoc
// @Summary 查询单条取件记录
// @Description 返回完整取件状态，过期状态按查询时刻惰性计算
// @Tags 储物柜
// @Produce json
// @Param id path int true "取件记录ID"
// @Success 200 {object} pickupStatusResponse
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/lockers/pickups/{id} [get]
func (server *Server) getLockerPickup(ctx *gin.Context) {
	var req getPickupRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pickup, err := server.store.GetLockerPickup(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("pickup not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := pickupStatusResponse{
		pickupResponse: pickupResponse{
			PickupID:          pickup.ID,
			OrderID:           pickup.OrderID,
			LockerID:          pickup.LockerID,
			CompartmentNumber: pickup.CompartmentNumber,
			PickupCode:        pickup.PickupCode,
			IsPickedUp:        pickup.IsPickedUp,
			ExpiresAt:         pickup.ExpiresAt,
		},
		OtpVerified: pickup.OtpVerified,
		Expired:     !pickup.IsPickedUp && time.Now().After(pickup.ExpiresAt),
	}
	if pickup.PickedUpAt.Valid {
		t := pickup.PickedUpAt.Time
		resp.PickedUpAt = &t
	}

	ctx.JSON(http.StatusOK, resp)
}
