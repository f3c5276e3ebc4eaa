package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"travel-service/config"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	TypeDeleteObject = "storage:delete_object"

	MonitoringPath = "/monitoring"
)

type Scheduler struct {
	Log *otelzap.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Monitoring returns the asynqmon UI rooted at MonitoringPath.
func (s *Scheduler) Monitoring(cfg *config.RedisConfig) http.Handler {
	return asynqmon.New(asynqmon.Options{
		RootPath:     MonitoringPath,
		RedisConnOpt: redisOpt(cfg),
	})
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux.HandleFunc(taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Ctx(context.Background()).Error(fmt.Sprintf("error start handler scheduler: %v", err))
	}
}

type DeleteObjectPayload struct {
	Key string `json:"key"`
}

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AssetRetrier hands failed object deletions to the task queue.
type AssetRetrier struct {
	client Enqueuer
	delay  time.Duration
}

func NewAssetRetrier(client Enqueuer) *AssetRetrier {
	return &AssetRetrier{client: client, delay: time.Minute}
}

func (r *AssetRetrier) EnqueueDelete(ctx context.Context, key string) error {
	payload, err := json.Marshal(DeleteObjectPayload{Key: key})
	if err != nil {
		return err
	}

	_, err = r.client.EnqueueContext(ctx, asynq.NewTask(TypeDeleteObject, payload),
		asynq.MaxRetry(10),
		asynq.ProcessIn(r.delay),
	)
	return err
}

type KeyDeleter interface {
	DeleteKey(ctx context.Context, key string) error
}

// DeleteObjectHandler processes TypeDeleteObject tasks. A returned error makes
// asynq retry the task with backoff.
func DeleteObjectHandler(deleter KeyDeleter, log *otelzap.Logger) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload DeleteObjectPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := deleter.DeleteKey(ctx, payload.Key); err != nil {
			log.Ctx(ctx).Error("error delete object", zap.String("key", payload.Key), zap.Error(err))
			return err
		}
		return nil
	}
}
