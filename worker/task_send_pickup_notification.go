package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/quickmart/supplychain/notification"
	"github.com/rs/zerolog/log"
)

const (
	TaskSendPickupNotification = "pickup:notify"
)

// PayloadSendPickupNotification 取件通知任务载荷
type PayloadSendPickupNotification struct {
	PickupID int64 `json:"pickup_id"`
}

// DistributeTaskSendPickupNotification 分发取件通知任务
func (d *RedisTaskDistributor) DistributeTaskSendPickupNotification(
	ctx context.Context,
	payload *PayloadSendPickupNotification,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendPickupNotification, jsonPayload, opts...)
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Int64("pickup_id", payload.PickupID).
		Msg("enqueued pickup notification task")

	return nil
}

// ProcessTaskSendPickupNotification 处理取件通知任务：
// 向客户发送储物柜地址、格口号和取件码
func (p *RedisTaskProcessor) ProcessTaskSendPickupNotification(ctx context.Context, task *asynq.Task) error {
	var payload PayloadSendPickupNotification
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	// 取件记录及关联信息
	pickup, err := p.store.GetLockerPickup(ctx, payload.PickupID)
	if err != nil {
		return fmt.Errorf("get pickup: %w", err)
	}
	if pickup.IsPickedUp {
		// 已取件则无需通知
		return nil
	}

	order, err := p.store.GetOrderWithCustomer(ctx, pickup.OrderID)
	if err != nil {
		return fmt.Errorf("get order with customer: %w", err)
	}
	locker, err := p.store.GetSmartLocker(ctx, pickup.LockerID)
	if err != nil {
		return fmt.Errorf("get locker: %w", err)
	}

	message := fmt.Sprintf(
		"Your order is ready at %s (%s), compartment %d. Pickup code: %s. Expires %s.",
		locker.LocationName, locker.Address, pickup.CompartmentNumber,
		pickup.PickupCode, pickup.ExpiresAt.Format("Jan 2 15:04"),
	)

	err = p.sender.SendSMS(ctx, order.CustomerPhone, message)
	if err != nil {
		if errors.Is(err, notification.ErrMissingContact) {
			// 没有手机号，重试也无济于事
			return fmt.Errorf("send notification: %v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("send notification: %w", err)
	}

	log.Info().
		Int64("pickup_id", pickup.ID).
		Int64("order_id", pickup.OrderID).
		Msg("pickup notification sent")

	return nil
}
