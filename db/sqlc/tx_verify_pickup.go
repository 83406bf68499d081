package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 取件核销事务 ====================

// VerifyPickupTxParams contains the input parameters for verifying a pickup.
// Either PickupID or LockerID+CompartmentNumber identifies the pickup record.
type VerifyPickupTxParams struct {
	PickupID          int64  // 取件记录 ID（优先使用）
	LockerID          int64  // 柜机 ID（按格口取件时使用）
	CompartmentNumber int32  // 格口号（PickupID 为 0 时使用）
	PickupCode        string // 取件码
	OtpCode           string // 动态验证码
	OtpValidity       time.Duration
	Now               time.Time
}

// VerifyPickupTxResult contains the result of the pickup verification transaction
type VerifyPickupTxResult struct {
	Pickup LockerPickup
	Locker SmartLocker
	Order  Order
}

// validatePickupAttempt checks the precondition ladder for completing a
// pickup: record state, overall expiry, pickup code, then the OTP.
// The OTP must have been issued; after a reissue only the newest code
// matches, and a code older than its validity window is rejected.
func validatePickupAttempt(pickup LockerPickup, arg VerifyPickupTxParams) error {
	if pickup.IsPickedUp {
		return ErrAlreadyPickedUp
	}
	if arg.Now.After(pickup.ExpiresAt) {
		return ErrPickupExpired
	}
	if pickup.PickupCode != arg.PickupCode {
		return ErrInvalidPickup
	}
	if !pickup.OtpCode.Valid || pickup.OtpCode.String != arg.OtpCode {
		return ErrInvalidOtp
	}
	if !pickup.OtpGeneratedAt.Valid || arg.Now.After(pickup.OtpGeneratedAt.Time.Add(arg.OtpValidity)) {
		return ErrOtpExpired
	}
	return nil
}

// availableCompartments derives the free-compartment counter from the
// live reservation count. Completed and expired pickups fall out of the
// reserved set, so the derived value releases them and never exceeds
// total_compartments.
func availableCompartments(total int32, reserved int) int32 {
	available := total - int32(reserved)
	if available < 0 {
		return 0
	}
	return available
}

// reconcileLockerAvailability recomputes available_compartments from the
// locker's live reservations under lock. The recompute is idempotent.
func reconcileLockerAvailability(ctx context.Context, q *Queries, lockerID int64) (SmartLocker, error) {
	locker, err := q.GetLockerForUpdate(ctx, lockerID)
	if err != nil {
		return SmartLocker{}, fmt.Errorf("get locker for update: %w", err)
	}
	reserved, err := q.ListReservedCompartments(ctx, lockerID)
	if err != nil {
		return SmartLocker{}, fmt.Errorf("list reserved compartments: %w", err)
	}
	return q.UpdateLockerCompartments(ctx, UpdateLockerCompartmentsParams{
		ID:                    locker.ID,
		AvailableCompartments: availableCompartments(locker.TotalCompartments, len(reserved)),
	})
}

// VerifyPickupTx completes a pickup in a single transaction:
// 1. Locate and lock the pickup record by id or locker+compartment
// 2. Walk the precondition ladder (state, expiry, pickup code, OTP)
// 3. Mark the pickup complete
// 4. Release the compartment back to the locker
// 5. Move the order to delivered
//
// Expiry is evaluated here, not by a background job. When an expired
// record is detected its compartment is released in the same
// transaction (the release commits even though the caller gets
// ErrPickupExpired), so the counter never drifts.
func (store *SQLStore) VerifyPickupTx(ctx context.Context, arg VerifyPickupTxParams) (VerifyPickupTxResult, error) {
	var result VerifyPickupTxResult
	var expired bool

	err := store.execTx(ctx, func(q *Queries) error {
		var err error
		var pickup LockerPickup

		// 1. 锁定取件记录（按 ID 或柜机+格口号）
		if arg.PickupID != 0 {
			pickup, err = q.GetLockerPickupForUpdate(ctx, arg.PickupID)
		} else {
			pickup, err = q.GetActivePickupByCompartmentForUpdate(ctx, GetActivePickupByCompartmentForUpdateParams{
				LockerID:          arg.LockerID,
				CompartmentNumber: arg.CompartmentNumber,
			})
		}
		if err != nil {
			if errors.Is(err, ErrRecordNotFound) {
				return ErrPickupNotFound
			}
			return fmt.Errorf("get pickup for update: %w", err)
		}

		// 2. 核销前置校验
		if err := validatePickupAttempt(pickup, arg); err != nil {
			// 过期记录先归还格口再拒绝；归还随事务提交
			if errors.Is(err, ErrPickupExpired) {
				if _, relErr := reconcileLockerAvailability(ctx, q, pickup.LockerID); relErr != nil {
					return relErr
				}
				expired = true
				return nil
			}
			return err
		}

		// 3. 完成取件
		result.Pickup, err = q.CompletePickup(ctx, CompletePickupParams{
			ID:         pickup.ID,
			PickedUpAt: pgtype.Timestamptz{Time: arg.Now, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("complete pickup: %w", err)
		}

		// 4. 释放格口（按有效占用回算，顺带归还其他过期占用）
		result.Locker, err = reconcileLockerAvailability(ctx, q, pickup.LockerID)
		if err != nil {
			return err
		}

		// 5. 订单状态流转为已送达
		result.Order, err = q.UpdateOrderStatus(ctx, UpdateOrderStatusParams{
			ID:     pickup.OrderID,
			Status: "delivered",
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		return nil
	})
	if err == nil && expired {
		return result, ErrPickupExpired
	}

	return result, err
}
