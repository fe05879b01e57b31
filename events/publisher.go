// Package events publishes order lifecycle events to RabbitMQ so
// downstream consumers (fulfilment, notifications) can react without
// being in the request path. Publishing is fire-and-forget; a nil
// publisher is a no-op, which keeps the broker optional in dev.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "urbannook.orders"

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

type OrderPlaced struct {
	OrderRef   string  `json:"order_ref"`
	UserID     string  `json:"user_id"`
	GrandTotal float64 `json:"grand_total"`
	CouponCode string  `json:"coupon_code,omitempty"`
	PlacedAt   string  `json:"placed_at"`
}

type PaymentFailed struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
	UserID          string `json:"user_id"`
	Reason          string `json:"reason"`
	FailedAt        string `json:"failed_at"`
}

// NewPublisher connects to the broker and declares the topic
// exchange. Returns (nil, nil) when url is empty.
func NewPublisher(url string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch}, nil
}

func (p *Publisher) Publish(routingKey string, event interface{}) {
	if p == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal %s failed: %v", routingKey, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		log.Printf("events: publish %s failed: %v", routingKey, err)
	}
}

func (p *Publisher) OrderPlaced(ev OrderPlaced) {
	p.Publish("order.placed", ev)
}

func (p *Publisher) PaymentFailed(ev PaymentFailed) {
	p.Publish("payment.failed", ev)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
