package db

import (
	"context"
	"fmt"
)

// ==================== 库存调拨事务 ====================

// TransferParams describes one inventory transfer to apply
type TransferParams struct {
	FromInventoryID int64
	ToInventoryID   int64
	Amount          int32
}

// AppliedTransfer records the outcome of one transfer
type AppliedTransfer struct {
	FromInventory Inventory
	ToInventory   Inventory
	Amount        int32 // 实际调拨数量（可能小于计划值）
}

// ApplyRebalanceTxParams contains the input parameters for applying a rebalance plan
type ApplyRebalanceTxParams struct {
	Transfers []TransferParams
}

// ApplyRebalanceTxResult contains the result of the rebalance transaction
type ApplyRebalanceTxResult struct {
	Applied []AppliedTransfer
	Skipped int32
}

// clampTransferAmount converges a planned transfer against the locked
// inventory rows: the source must keep its safety floor
// (ceil(1.5 × reorder_threshold)) and the target must stay within
// max_capacity. Returns 0 when nothing can move safely.
func clampTransferAmount(planned int32, from, to Inventory) int32 {
	amount := planned

	// 源门店不得跌破安全水位
	floor := (from.ReorderThreshold*3 + 1) / 2
	if headroom := from.CurrentStock - floor; headroom < amount {
		amount = headroom
	}

	// 目标门店不得超出最大容量
	if headroom := to.MaxCapacity - to.CurrentStock; headroom < amount {
		amount = headroom
	}

	if amount < 0 {
		return 0
	}
	return amount
}

// ApplyRebalanceTx applies a rebalance plan in a single transaction:
// 1. Lock both inventory rows in id order to avoid deadlocks
// 2. Re-check the stock guards against the locked rows and clamp
// 3. Move stock between the two rows
//
// The plan was computed from a snapshot, so stock may have moved since.
// A transfer that can no longer run safely is skipped instead of
// failing the whole plan.
func (store *SQLStore) ApplyRebalanceTx(ctx context.Context, arg ApplyRebalanceTxParams) (ApplyRebalanceTxResult, error) {
	var result ApplyRebalanceTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		for _, t := range arg.Transfers {
			// 1. 按 ID 顺序锁定两行，避免死锁
			firstID, secondID := t.FromInventoryID, t.ToInventoryID
			if secondID < firstID {
				firstID, secondID = secondID, firstID
			}
			first, err := q.GetInventoryForUpdate(ctx, firstID)
			if err != nil {
				return fmt.Errorf("lock inventory %d: %w", firstID, err)
			}
			second, err := q.GetInventoryForUpdate(ctx, secondID)
			if err != nil {
				return fmt.Errorf("lock inventory %d: %w", secondID, err)
			}
			from, to := first, second
			if from.ID != t.FromInventoryID {
				from, to = second, first
			}

			// 2. 以事务内的最新库存复核安全水位和容量上限
			amount := clampTransferAmount(t.Amount, from, to)
			if amount <= 0 {
				result.Skipped++
				continue
			}

			// 3. 双边更新库存
			updatedFrom, err := q.UpdateInventoryStock(ctx, UpdateInventoryStockParams{
				ID:           from.ID,
				CurrentStock: from.CurrentStock - amount,
			})
			if err != nil {
				return fmt.Errorf("update source inventory: %w", err)
			}
			updatedTo, err := q.UpdateInventoryStock(ctx, UpdateInventoryStockParams{
				ID:           to.ID,
				CurrentStock: to.CurrentStock + amount,
			})
			if err != nil {
				return fmt.Errorf("update target inventory: %w", err)
			}

			result.Applied = append(result.Applied, AppliedTransfer{
				FromInventory: updatedFrom,
				ToInventory:   updatedTo,
				Amount:        amount,
			})
		}

		return nil
	})

	return result, err
}
