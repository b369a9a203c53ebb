package event

// Topic 完成事件主题
const TopicTxnCompleted = "txn.completed"

// Publisher 完成事件发布接口。
// 生命周期层只依赖此接口，订阅方通过 MQ 各自接入。
type Publisher interface {
	Publish(topic string, msg any) error
}
