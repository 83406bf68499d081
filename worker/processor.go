package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	db "github.com/quickmart/supplychain/db/sqlc"
	"github.com/quickmart/supplychain/notification"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor 任务处理接口
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskSendPickupNotification 处理取件通知任务
	ProcessTaskSendPickupNotification(ctx context.Context, task *asynq.Task) error
	// ProcessTaskPickupExpiryReminder 处理取件到期提醒任务
	ProcessTaskPickupExpiryReminder(ctx context.Context, task *asynq.Task) error
}

// RedisTaskProcessor 基于 Redis 的任务处理器
type RedisTaskProcessor struct {
	server *asynq.Server
	store  db.Store
	sender notification.SMSSender
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	sender notification.SMSSender,
) TaskProcessor {
	logger := NewLogger()

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	return &RedisTaskProcessor{
		server: server,
		store:  store,
		sender: sender,
	}
}

// NewTestTaskProcessor 创建用于测试的处理器实例（不需要Redis连接）
func NewTestTaskProcessor(store db.Store, sender notification.SMSSender) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store:  store,
		sender: sender,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	// 注册任务处理器
	mux.HandleFunc(TaskSendPickupNotification, processor.ProcessTaskSendPickupNotification)
	mux.HandleFunc(TaskPickupExpiryReminder, processor.ProcessTaskPickupExpiryReminder)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
