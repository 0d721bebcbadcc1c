package event

import (
	"time"

	"go.uber.org/zap"

	"focalflow/pkg/metrics"
	"focalflow/pkg/mq"
)

// Record-change actions, used as the routing-key suffix.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordChangedPayload is published on every write, routing key
// "<entity>.<action>" on the focalflow.events exchange.
type RecordChangedPayload struct {
	Entity   string    `json:"entity"`
	Action   string    `json:"action"`
	RecordID string    `json:"record_id"`
	UserID   string    `json:"user_id"`
	At       time.Time `json:"at"`
}

// Notifier publishes record-change events. Publishing is best-effort:
// a bus failure is logged and never fails the originating request.
type Notifier struct {
	publisher *mq.Publisher
	logger    *zap.Logger
}

func NewNotifier(publisher *mq.Publisher, logger *zap.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		logger:    logger,
	}
}

// Changed announces one record mutation.
func (n *Notifier) Changed(entity, action, recordID, userID string) {
	metrics.IncrementRecordMutation(entity, action)

	if n.publisher == nil {
		return
	}

	payload := RecordChangedPayload{
		Entity:   entity,
		Action:   action,
		RecordID: recordID,
		UserID:   userID,
		At:       time.Now(),
	}

	if err := n.publisher.Publish(entity+"."+action, payload); err != nil {
		n.logger.Warn("Failed to publish record change",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.String("record_id", recordID),
			zap.Error(err),
		)
	}
}
