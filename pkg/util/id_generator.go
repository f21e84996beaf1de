package util

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

type IDGenerator struct {
	node *snowflake.Node
	once sync.Once
	err  error
}

var generator IDGenerator

// Init 初始化 ID 生成器，nodeID 范围：0 ~ 1023，只有第一次调用生效
func Init(nodeID int64) error {
	generator.once.Do(func() {
		node, err := snowflake.NewNode(nodeID)
		if err != nil {
			generator.err = err
			return
		}
		generator.node = node
	})
	return generator.err
}

// MustNextID 返回一个全局唯一的 int64 ID
func MustNextID() int64 {
	id, err := NextID()
	if err != nil {
		panic("NextID failed: " + err.Error())
	}
	return id
}

// NextID 返回一个全局唯一的 int64 ID
func NextID() (int64, error) {
	if generator.node == nil {
		return 0, errors.New("ID generator not initialized")
	}
	return generator.node.Generate().Int64(), nil
}
