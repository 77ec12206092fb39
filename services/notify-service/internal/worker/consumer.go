package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/gh-aakash/BillionBrains/pkg/mq"
	taskv1 "github.com/gh-aakash/BillionBrains/rpc/task/v1"
	"github.com/gh-aakash/BillionBrains/services/notify-service/internal/events"
)

// Worker turns launch events into stored notifications via the core
// service.
type Worker struct {
	consumer *mq.Consumer
	tasks    taskv1.TaskServiceClient
	log      zerolog.Logger
}

func New(consumer *mq.Consumer, tasks taskv1.TaskServiceClient, log zerolog.Logger) *Worker {
	return &Worker{consumer: consumer, tasks: tasks, log: log}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.consumer.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handle(ctx, d); err != nil {
				w.log.Warn().Err(err).Str("key", d.RoutingKey).Msg("handle failed, requeueing")
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKProjectLaunched:
		ev, err := events.Unmarshal[events.ProjectLaunched](d.Body)
		if err != nil {
			return err
		}
		payload, _ := json.Marshal(map[string]string{"project_id": ev.ProjectID, "idea_id": ev.IdeaID})
		_, err = w.tasks.CreateNotification(ctx, &taskv1.CreateNotificationRequest{
			UserId:      ev.OwnerID,
			Type:        events.RKProjectLaunched,
			Content:     fmt.Sprintf("Your idea is live: project %q was launched.", ev.Name),
			PayloadJson: string(payload),
		})
		return err
	default:
		w.log.Info().Str("key", d.RoutingKey).Msg("skip unknown key")
		return nil
	}
}
