package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Producer publishes invoice lifecycle events for downstream consumers
// (accounting exports, notification fan-out). Writes are async and
// fire-and-forget: a broker outage must never fail the originating request.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type InvoiceSentEvent struct {
	Type          string    `json:"type"`
	InvoiceID     uuid.UUID `json:"invoiceId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	Recipient     string    `json:"recipient"`
	SentAt        time.Time `json:"sentAt"`
}

func (p *Producer) SendInvoiceSent(ctx context.Context, invoiceID uuid.UUID, number, recipient string) {
	p.send(ctx, invoiceID.String(), InvoiceSentEvent{
		Type:          "invoice.sent",
		InvoiceID:     invoiceID,
		InvoiceNumber: number,
		Recipient:     recipient,
		SentAt:        time.Now(),
	})
}

type PaymentRecordedEvent struct {
	Type          string          `json:"type"`
	InvoiceID     uuid.UUID       `json:"invoiceId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	Status        string          `json:"status"`
}

func (p *Producer) SendPaymentRecorded(
	ctx context.Context,
	invoiceID uuid.UUID,
	number string,
	amount, outstanding decimal.Decimal,
	status string,
) {
	p.send(ctx, invoiceID.String(), PaymentRecordedEvent{
		Type:          "payment.recorded",
		InvoiceID:     invoiceID,
		InvoiceNumber: number,
		Amount:        amount,
		Outstanding:   outstanding,
		Status:        status,
	})
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
