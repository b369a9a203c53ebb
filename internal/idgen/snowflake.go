package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init 初始化 Snowflake 节点（nodeID 支持多实例部署）
func Init(nodeID int64) {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		panic(fmt.Sprintf("snowflake init failed: %v", err))
	}
	node = n
}

// New 生成全局唯一ID
func New() uint64 {
	if node == nil {
		panic("snowflake node not initialized")
	}
	return uint64(node.Generate().Int64())
}

// NewOrderID 为未携带订单号的创建请求生成订单号
func NewOrderID() string {
	return fmt.Sprintf("PT%d", New())
}
