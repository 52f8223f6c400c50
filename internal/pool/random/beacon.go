package random

import (
	"crypto/sha256"
	"encoding/binary"
)

const genesisMsg = "genesis_msg"

// Value 一次开奖消费的随机值
type Value []byte

// Beacon 可验证随机源。每个索引的值确定且可复查。
type Beacon interface {
	Value(index uint64) (Value, error)
}

// ChainedBeacon 本地链式信标：value_n = H(n ‖ value_{n-1} ‖ seed)。
// 接口形态对齐阈值签名信标（按轮索引取值），便于替换为真实信标。
type ChainedBeacon struct {
	seed   []byte
	values []Value
}

// NewChainedBeacon 以给定种子创建链式信标
func NewChainedBeacon(seed []byte) *ChainedBeacon {
	return &ChainedBeacon{seed: seed}
}

// Value 返回第 index 个随机值，按需延展链
func (b *ChainedBeacon) Value(index uint64) (Value, error) {
	for uint64(len(b.values)) <= index {
		b.values = append(b.values, b.next())
	}
	return b.values[index], nil
}

func (b *ChainedBeacon) next() Value {
	round := uint64(len(b.values))

	var prev []byte
	if round == 0 {
		prev = []byte(genesisMsg)
	} else {
		prev = b.values[round-1]
	}

	rBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(rBuf, round)

	h := sha256.New()
	h.Write(rBuf)
	h.Write(prev)
	h.Write(b.seed)
	return h.Sum(nil)
}
