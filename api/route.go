package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickmart/supplychain/algorithm"
	db "github.com/quickmart/supplychain/db/sqlc"
)

// ==================== 配送路线 ====================

type plannedStopResponse struct {
	OrderID          int64     `json:"order_id"`
	StopSequence     int32     `json:"stop_sequence"`
	CustomerName     string    `json:"customer_name"`
	CustomerAddress  string    `json:"customer_address"`
	DistanceMiles    float64   `json:"distance_miles"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
}

type plannedRouteResponse struct {
	RouteID           int64                 `json:"route_id,omitempty"`
	AgentID           int64                 `json:"agent_id"`
	AgentName         string                `json:"agent_name"`
	TotalDistance     float64               `json:"total_distance"`
	EstimatedDuration int32                 `json:"estimated_duration"`
	Stops             []plannedStopResponse `json:"stops"`
}

type bundleRoutesResponse struct {
	Routes           []plannedRouteResponse `json:"routes"`
	AssignedOrders   []int64                `json:"assigned_orders"`
	UnassignedOrders []int64                `json:"unassigned_orders"`
}

// bundleRoutes godoc
// @Summary 生成配送路线
// @Description 对待配送订单做贪心就近捆绑并持久化；订单通过条件更新抢占，竞争失败整体回滚
// @Tags 配送
// @Produce json
// @Success 200 {object} bundleRoutesResponse
// @Failure 409 {object} ErrorResponse "订单被其他捆绑任务抢占"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/delivery/routes/bundle [post]
func (server *Server) bundleRoutes(ctx *gin.Context) {
	agentRows, err := server.store.ListAvailableAgents(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	orderRows, err := server.store.ListPendingOrdersWithCustomers(ctx, server.config.RouteBatchSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	agents := make([]algorithm.Agent, 0, len(agentRows))
	for _, a := range agentRows {
		agents = append(agents, algorithm.Agent{
			AgentID:     a.ID,
			Name:        a.Name,
			MaxCapacity: a.MaxCapacity,
			Location: algorithm.Location{
				Latitude:  a.CurrentLatitude,
				Longitude: a.CurrentLongitude,
			},
		})
	}
	orders := make([]algorithm.PendingOrder, 0, len(orderRows))
	for _, o := range orderRows {
		orders = append(orders, algorithm.PendingOrder{
			OrderID:         o.Order.ID,
			CustomerName:    o.CustomerName,
			CustomerAddress: o.CustomerAddress,
			TotalAmount:     o.Order.TotalAmount,
			Location: algorithm.Location{
				Latitude:  o.CustomerLatitude,
				Longitude: o.CustomerLongitude,
			},
		})
	}

	now := time.Now()
	plan := algorithm.BundleRoutes(agents, orders, now)

	resp := bundleRoutesResponse{
		Routes:           []plannedRouteResponse{},
		AssignedOrders:   plan.AssignedOrders,
		UnassignedOrders: plan.UnassignedOrders,
	}

	if len(plan.Routes) == 0 {
		ctx.JSON(http.StatusOK, resp)
		return
	}

	txRoutes := make([]db.BundleRouteParams, 0, len(plan.Routes))
	for _, route := range plan.Routes {
		rp := db.BundleRouteParams{
			AgentID:           route.AgentID,
			TotalDistance:     route.TotalDistance,
			EstimatedDuration: route.EstimatedDuration,
		}
		for i, stop := range route.Stops {
			rp.Stops = append(rp.Stops, db.BundleStopParams{
				OrderID:          stop.OrderID,
				StopSequence:     int32(i + 1),
				EstimatedArrival: stop.EstimatedArrival,
			})
		}
		txRoutes = append(txRoutes, rp)
	}

	result, err := server.store.BundleRoutesTx(ctx, db.BundleRoutesTxParams{
		RouteDate: now,
		Routes:    txRoutes,
	})
	if err != nil {
		if errors.Is(err, db.ErrOrderClaimLost) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 数据库生成的路线 ID 按创建顺序与规划结果对齐
	for i, route := range plan.Routes {
		rr := plannedRouteResponse{
			AgentID:           route.AgentID,
			AgentName:         route.AgentName,
			TotalDistance:     route.TotalDistance,
			EstimatedDuration: route.EstimatedDuration,
			Stops:             []plannedStopResponse{},
		}
		if i < len(result.Routes) {
			rr.RouteID = result.Routes[i].ID
		}
		for j, stop := range route.Stops {
			rr.Stops = append(rr.Stops, plannedStopResponse{
				OrderID:          stop.OrderID,
				StopSequence:     int32(j + 1),
				CustomerName:     stop.CustomerName,
				CustomerAddress:  stop.CustomerAddress,
				DistanceMiles:    stop.DistanceFromPrevious,
				EstimatedArrival: stop.EstimatedArrival,
			})
		}
		resp.Routes = append(resp.Routes, rr)
	}

	ctx.JSON(http.StatusOK, resp)
}

type listRoutesRequest struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=100"`
}

type routeListItemResponse struct {
	RouteID           int64                 `json:"route_id"`
	AgentID           int64                 `json:"agent_id"`
	AgentName         string                `json:"agent_name"`
	RouteDate         string                `json:"route_date"`
	TotalDistance     float64               `json:"total_distance"`
	EstimatedDuration int32                 `json:"estimated_duration"`
	Status            string                `json:"status"`
	Stops             []plannedStopResponse `json:"stops"`
}

// listRoutes godoc
// @Summary 查询配送路线
// @Description 返回最近的配送路线及停靠点明细
// @Tags 配送
// @Produce json
// @Param limit query int false "返回条数上限（默认20）"
// @Success 200 {array} routeListItemResponse
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/delivery/routes [get]
func (server *Server) listRoutes(ctx *gin.Context) {
	var req listRoutesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	routes, err := server.store.ListDeliveryRoutes(ctx, req.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]routeListItemResponse, 0, len(routes))
	for _, route := range routes {
		item := routeListItemResponse{
			RouteID:           route.DeliveryRoute.ID,
			AgentID:           route.DeliveryRoute.AgentID,
			AgentName:         route.AgentName,
			RouteDate:         route.DeliveryRoute.RouteDate.Time.Format("2006-01-02"),
			TotalDistance:     route.DeliveryRoute.TotalDistance,
			EstimatedDuration: route.DeliveryRoute.EstimatedDuration,
			Status:            route.DeliveryRoute.Status,
			Stops:             []plannedStopResponse{},
		}

		stops, err := server.store.ListRouteStopsByRoute(ctx, route.DeliveryRoute.ID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		for _, stop := range stops {
			item.Stops = append(item.Stops, plannedStopResponse{
				OrderID:          stop.RouteStop.OrderID,
				StopSequence:     stop.RouteStop.StopSequence,
				CustomerName:     stop.CustomerName,
				CustomerAddress:  stop.CustomerAddress,
				EstimatedArrival: stop.RouteStop.EstimatedArrival,
			})
		}

		resp = append(resp, item)
	}

	ctx.JSON(http.StatusOK, resp)
}
