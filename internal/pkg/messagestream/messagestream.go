package messagestream

import (
	"fmt"

	"travel-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

const (
	TopicBookingCreated = "booking_created"
	TopicPoisoned       = "poisoned_queue"
)

type Amqp struct {
	config amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Amqp{
		config: amqp.NewDurableQueueConfig(uri),
		logger: watermill.NewStdLogger(false, false),
	}
}

// NewSubscriber returns a nil interface on error so callers can nil-check it.
func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	sub, err := amqp.NewSubscriber(a.config, a.logger)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (a *Amqp) NewPublisher() (message.Publisher, error) {
	pub, err := amqp.NewPublisher(a.config, a.logger)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// NewRouter wires one handler for topic. Messages whose handler fails are
// moved to poisonTopic.
func NewRouter(pub message.Publisher, poisonTopic, handlerName, topic string, sub message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(pub, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.CorrelationID,
		poisonQueue,
		middleware.Recoverer,
	)

	router.AddNoPublisherHandler(handlerName, topic, sub, handlerFunc)

	return router, nil
}

// NoopPublisher drops every message. Used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, ...*message.Message) error { return nil }

func (NoopPublisher) Close() error { return nil }
