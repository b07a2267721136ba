package common

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	snowflakeNode *snowflake.Node
	nodeOnce      sync.Once
)

func getNode() *snowflake.Node {
	nodeOnce.Do(func() {
		node, err := snowflake.NewNode(int64(rand.Intn(1024)))
		if err != nil {
			panic(fmt.Sprintf("snowflake node init: %v", err))
		}
		snowflakeNode = node
	})
	return snowflakeNode
}

// NewID returns a new unique identifier rendered as a decimal string.
func NewID() string {
	return getNode().Generate().String()
}

// NewIDInt64 returns a new unique identifier as int64.
func NewIDInt64() int64 {
	return getNode().Generate().Int64()
}
