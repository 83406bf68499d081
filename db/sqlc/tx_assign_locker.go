package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/quickmart/supplychain/util"
)

// ==================== 储物柜分配事务 ====================

// AssignLockerTxParams contains the input parameters for assigning a locker compartment
type AssignLockerTxParams struct {
	OrderID   int64
	LockerID  int64
	QrCode    string
	ExpiresAt time.Time // 取件截止时间
}

// AssignLockerTxResult contains the result of the locker assignment transaction
type AssignLockerTxResult struct {
	Pickup LockerPickup
	Locker SmartLocker
	Order  Order
}

// AssignLockerTx reserves a compartment for an order in a single transaction:
// 1. Lock locker row with FOR NO KEY UPDATE
// 2. Re-check compartment availability inside the transaction
// 3. Reject orders that already hold an active pickup
// 4. Pick a random free compartment from [1, total]
// 5. Create the pickup record with a fresh pickup code
// 6. Decrement available compartments
// 7. Move the order to ready_for_pickup
func (store *SQLStore) AssignLockerTx(ctx context.Context, arg AssignLockerTxParams) (AssignLockerTxResult, error) {
	var result AssignLockerTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 锁定储物柜行，获取最新格口数据
		locker, err := q.GetLockerForUpdate(ctx, arg.LockerID)
		if err != nil {
			return fmt.Errorf("get locker for update: %w", err)
		}

		// 2. 事务内再次检查可用格口（确保并发安全）
		if locker.AvailableCompartments <= 0 {
			return ErrNoCompartment
		}

		// 3. 同一订单不允许重复分配
		_, err = q.GetActivePickupByOrder(ctx, arg.OrderID)
		if err == nil {
			return ErrActivePickup
		}
		if !errors.Is(err, ErrRecordNotFound) {
			return fmt.Errorf("check active pickup: %w", err)
		}

		// 4. 从未占用的格口中随机挑选一个
		reserved, err := q.ListReservedCompartments(ctx, arg.LockerID)
		if err != nil {
			return fmt.Errorf("list reserved compartments: %w", err)
		}
		taken := make(map[int32]bool, len(reserved))
		for _, n := range reserved {
			taken[n] = true
		}
		free := make([]int32, 0, locker.TotalCompartments)
		for n := int32(1); n <= locker.TotalCompartments; n++ {
			if !taken[n] {
				free = append(free, n)
			}
		}
		if len(free) == 0 {
			return ErrNoCompartment
		}
		compartment := free[util.RandomInt(0, int64(len(free)-1))]

		// 5. 创建取件记录
		result.Pickup, err = q.CreateLockerPickup(ctx, CreateLockerPickupParams{
			OrderID:           arg.OrderID,
			LockerID:          arg.LockerID,
			CompartmentNumber: compartment,
			PickupCode:        util.RandomPickupCode(),
			QrCode:            pgtype.Text{String: arg.QrCode, Valid: arg.QrCode != ""},
			ExpiresAt:         arg.ExpiresAt,
		})
		if err != nil {
			return fmt.Errorf("create locker pickup: %w", err)
		}

		// 6. 扣减可用格口数
		result.Locker, err = q.UpdateLockerCompartments(ctx, UpdateLockerCompartmentsParams{
			ID:                    arg.LockerID,
			AvailableCompartments: locker.AvailableCompartments - 1,
		})
		if err != nil {
			return fmt.Errorf("update locker compartments: %w", err)
		}

		// 7. 订单状态流转为待取件
		result.Order, err = q.UpdateOrderStatus(ctx, UpdateOrderStatusParams{
			ID:     arg.OrderID,
			Status: "ready_for_pickup",
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		return nil
	})

	return result, err
}
