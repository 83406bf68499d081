package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskPickupExpiryReminder = "pickup:expiry_reminder"
)

// PayloadPickupExpiryReminder 取件到期提醒任务载荷
type PayloadPickupExpiryReminder struct {
	PickupID int64 `json:"pickup_id"`
}

// DistributeTaskPickupExpiryReminder 分发取件到期提醒任务，
// 通常带 asynq.ProcessIn 延迟到临近过期时执行
func (d *RedisTaskDistributor) DistributeTaskPickupExpiryReminder(
	ctx context.Context,
	payload *PayloadPickupExpiryReminder,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskPickupExpiryReminder, jsonPayload, opts...)
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("pickup_id", payload.PickupID).
		Msg("enqueued pickup expiry reminder task")

	return nil
}

// ProcessTaskPickupExpiryReminder 处理取件到期提醒任务。
// 提醒是纯通知行为，过期判定始终在核销时惰性完成，
// 这里不修改任何取件记录。
func (p *RedisTaskProcessor) ProcessTaskPickupExpiryReminder(ctx context.Context, task *asynq.Task) error {
	var payload PayloadPickupExpiryReminder
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	pickup, err := p.store.GetLockerPickup(ctx, payload.PickupID)
	if err != nil {
		return fmt.Errorf("get pickup: %w", err)
	}

	// 已取件或已过期都不再提醒
	if pickup.IsPickedUp || time.Now().After(pickup.ExpiresAt) {
		log.Info().
			Int64("pickup_id", pickup.ID).
			Bool("picked_up", pickup.IsPickedUp).
			Msg("skip expiry reminder")
		return nil
	}

	order, err := p.store.GetOrderWithCustomer(ctx, pickup.OrderID)
	if err != nil {
		return fmt.Errorf("get order with customer: %w", err)
	}

	message := fmt.Sprintf(
		"Reminder: your locker pickup (code %s) expires at %s. Please collect your order soon.",
		pickup.PickupCode, pickup.ExpiresAt.Format("Jan 2 15:04"),
	)

	if err := p.sender.SendSMS(ctx, order.CustomerPhone, message); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	log.Info().
		Int64("pickup_id", pickup.ID).
		Msg("pickup expiry reminder sent")

	return nil
}
