package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskSendPickupNotification 分发取件通知任务
	DistributeTaskSendPickupNotification(
		ctx context.Context,
		payload *PayloadSendPickupNotification,
		opts ...asynq.Option,
	) error

	// DistributeTaskPickupExpiryReminder 分发取件到期提醒任务
	DistributeTaskPickupExpiryReminder(
		ctx context.Context,
		payload *PayloadPickupExpiryReminder,
		opts ...asynq.Option,
	) error
}

// RedisTaskDistributor 基于 Redis 的任务分发器
type RedisTaskDistributor struct {
	client *asynq.Client
}

// NewRedisTaskDistributor 创建任务分发器
func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
