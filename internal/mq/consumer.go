package mq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"

	"paytm-txn-api/internal/dal"
	"paytm-txn-api/internal/dto"
	"paytm-txn-api/internal/event"
	"paytm-txn-api/internal/notify"
)

const completedQueue = "txn_completed"

const resubscribeDelay = 5 * time.Second

// StartConsumers 启动完成事件消费者：推送运营通知。
// 通道关闭（broker 重启、网络抖动）后等 dal 自愈再重新订阅，循环不退出。
func StartConsumers() {
	for {
		msgs, err := subscribeCompleted()
		if err != nil {
			log.Printf("❌ %v，%v 后重试", err, resubscribeDelay)
			time.Sleep(resubscribeDelay)
			continue
		}
		log.Printf("✅ [EVENT] 完成事件消费者已就绪: queue=%s", completedQueue)
		for d := range msgs {
			go handleCompleted(d)
		}
		// msgs 关闭说明通道断了
		log.Printf("⚠️ [EVENT] 消费通道断开，准备重新订阅")
		time.Sleep(resubscribeDelay)
	}
}

func subscribeCompleted() (<-chan amqp.Delivery, error) {
	ch := dal.GetChannel()
	if ch == nil {
		return nil, fmt.Errorf("RabbitMQ channel not initialized")
	}
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange failed: %w", err)
	}
	if _, err := ch.QueueDeclare(completedQueue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue failed: %w", err)
	}
	if err := ch.QueueBind(completedQueue, event.TopicTxnCompleted, Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue failed: %w", err)
	}
	msgs, err := ch.Consume(completedQueue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s failed: %w", completedQueue, err)
	}
	return msgs, nil
}

func handleCompleted(d amqp.Delivery) {
	var evt dto.TxnCompletedEvent
	if err := json.Unmarshal(d.Body, &evt); err != nil {
		log.Printf("❌ completed event unmarshal err: %v", err)
		d.Nack(false, false)
		return
	}

	notify.SendOpsMessage(fmt.Sprintf(
		"✅ 交易完成\n订单号: %s\n商户号: %s\n网关流水: %s\n金额: %s %s",
		evt.OrderID, evt.MID, evt.TxnID, evt.Amount, evt.Currency))

	log.Printf("✅ [EVENT] 订单 %s 完成事件已处理, response_id=%d", evt.OrderID, evt.ResponseID)
	d.Ack(false)
}
