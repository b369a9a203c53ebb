package mq

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"

	"paytm-txn-api/internal/dal"
)

const Exchange = "txn_events"

type Publisher struct{}

func NewPublisher() *Publisher { return &Publisher{} }

// Publish 发布事件到 txn_events 交换机，routing key 即主题
func (p *Publisher) Publish(topic string, msg any) error {
	ch := dal.GetChannel()
	if ch == nil {
		return fmt.Errorf("mq channel unavailable")
	}
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange failed: %w", err)
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}
	err = ch.Publish(Exchange, topic, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         b,
	})
	if err != nil {
		log.Printf("❌ [EVENT] 发布失败 topic=%s: %v", topic, err)
	}
	return err
}
