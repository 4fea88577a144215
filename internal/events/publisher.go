package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/ekuzmina/fundgo/internal/domain"
)

const subjectPrefix = "bills."

// BillEvent is the wire envelope for a committed bill.
type BillEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	BillID     int       `json:"bill_id"`
	UserID     int       `json:"user_id"`
	Amount     float64   `json:"amount"`
	Kind       string    `json:"kind"`
	Reason     string    `json:"reason"`
	MoneyAfter float64   `json:"money_after"`
	CreatedAt  time.Time `json:"created_at"`
}

// NatsPublisher pushes committed bills to a NATS subject per bill kind.
// Publishing is best effort: failures are logged, never returned to the
// transfer that produced the bill.
type NatsPublisher struct {
	conn *nats.Conn
}

func Connect(url string) (*NatsPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{conn: conn}, nil
}

func (p *NatsPublisher) PublishBill(_ context.Context, bill *domain.Bill) {
	event := BillEvent{
		EventID:    uuid.New(),
		BillID:     bill.ID,
		UserID:     bill.UserID,
		Amount:     bill.Amount,
		Kind:       bill.Kind,
		Reason:     bill.Reason,
		MoneyAfter: bill.MoneyAfter,
		CreatedAt:  bill.CreatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal bill event", zap.Error(err))
		return
	}
	if err := p.conn.Publish(subjectPrefix+bill.Kind, data); err != nil {
		zap.L().Error("can't publish bill event",
			zap.String("kind", bill.Kind), zap.Int("billID", bill.ID), zap.Error(err))
	}
}

func (p *NatsPublisher) Close() {
	p.conn.Close()
}

// NopPublisher is used when no NATS url is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBill(context.Context, *domain.Bill) {}
