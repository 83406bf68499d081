package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 路线打包事务 ====================

// BundleStopParams describes one stop of a planned route
type BundleStopParams struct {
	OrderID          int64
	StopSequence     int32
	EstimatedArrival time.Time
}

// BundleRouteParams describes one planned route to persist
type BundleRouteParams struct {
	AgentID           int64
	TotalDistance     float64
	EstimatedDuration int32 // 分钟
	Stops             []BundleStopParams
}

// BundleRoutesTxParams contains the input parameters for persisting a bundling plan
type BundleRoutesTxParams struct {
	RouteDate time.Time
	Routes    []BundleRouteParams
}

// BundleRoutesTxResult contains the result of the bundling transaction
type BundleRoutesTxResult struct {
	Routes        []DeliveryRoute
	Stops         []RouteStop
	ClaimedOrders []Order
}

// BundleRoutesTx persists a bundling plan in a single transaction:
// 1. Create each delivery route
// 2. Claim every stop's order with a conditional update on status = 'pending'
// 3. Create the route stops in sequence
//
// A lost claim means another bundling run got there first. The whole
// transaction rolls back so no partial route survives.
func (store *SQLStore) BundleRoutesTx(ctx context.Context, arg BundleRoutesTxParams) (BundleRoutesTxResult, error) {
	var result BundleRoutesTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		routeDate := pgtype.Date{Time: arg.RouteDate, Valid: true}

		for _, rp := range arg.Routes {
			// 1. 创建配送路线
			route, err := q.CreateDeliveryRoute(ctx, CreateDeliveryRouteParams{
				AgentID:           rp.AgentID,
				RouteDate:         routeDate,
				TotalDistance:     rp.TotalDistance,
				EstimatedDuration: rp.EstimatedDuration,
				Status:            "planned",
			})
			if err != nil {
				return fmt.Errorf("create delivery route: %w", err)
			}
			result.Routes = append(result.Routes, route)

			for _, sp := range rp.Stops {
				// 2. 条件更新抢占订单（status 必须仍为 pending）
				order, err := q.ClaimPendingOrder(ctx, sp.OrderID)
				if err != nil {
					if errors.Is(err, ErrRecordNotFound) {
						return ErrOrderClaimLost
					}
					return fmt.Errorf("claim order %d: %w", sp.OrderID, err)
				}
				result.ClaimedOrders = append(result.ClaimedOrders, order)

				// 3. 创建路线停靠点
				stop, err := q.CreateRouteStop(ctx, CreateRouteStopParams{
					RouteID:          route.ID,
					OrderID:          sp.OrderID,
					StopSequence:     sp.StopSequence,
					EstimatedArrival: sp.EstimatedArrival,
					Status:           "pending",
				})
				if err != nil {
					return fmt.Errorf("create route stop: %w", err)
				}
				result.Stops = append(result.Stops, stop)
			}
		}

		return nil
	})

	return result, err
}
