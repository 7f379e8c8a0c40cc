package snowflake

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// GeneratorType 区分不同实体的 ID 序列，避免同一毫秒内互相挤占
type GeneratorType int

const (
	GeneratorTypeTrip GeneratorType = iota
	GeneratorTypeItem
	GeneratorTypeProposal
	GeneratorTypeSuggestion
	GeneratorTypeUser
	GeneratorTypeMessage

	generatorCount
)

var (
	nodes [generatorCount]*snowflake.Node
	once  sync.Once

	errInvalidMachineID   = errors.New("invalid snowflake machine id")
	errGeneratorUninitial = errors.New("snowflake generator is not initialized")
	errUnknownGenerator   = errors.New("unknown snowflake generator type")
)

func Init(machineID, dataCenterID int64) error {
	var initErr error

	once.Do(func() {
		if machineID < 0 || machineID > 31 {
			initErr = errInvalidMachineID
			return
		}
		nodeID := (dataCenterID << 5) | machineID // datacenterID 和 machineID 都是 0~31

		for i := range nodes {
			// 每类实体偏移一个 nodeID，保证序列互不重叠
			node, err := snowflake.NewNode((nodeID + int64(i)) % 1024)
			if err != nil {
				initErr = err
				return
			}
			nodes[i] = node
		}
	})

	return initErr
}

func NextID(t GeneratorType) (int64, error) {
	if t < 0 || t >= generatorCount {
		return 0, errUnknownGenerator
	}

	node := nodes[t]
	if node == nil {
		return 0, errGeneratorUninitial
	}

	return node.Generate().Int64(), nil
}
