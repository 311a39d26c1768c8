package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// Only the first call has any effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new time-ordered int64 ID. Init must have been called.
func New() int64 {
	return node.Generate().Int64()
}

// Generator hands out ids. Services take one so tests can supply predictable ids.
type Generator interface {
	Next() int64
}

type snowflakeGenerator struct{}

// Snowflake returns a Generator backed by the process-wide node.
func Snowflake() Generator {
	return snowflakeGenerator{}
}

func (snowflakeGenerator) Next() int64 {
	return New()
}
