package uid

import (
	"crypto/sha256"
	"encoding/binary"
	"os"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 identifiers.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a Snowflake generator whose node number is derived
// from the hostname and pid, so replicas sharing a database are very unlikely
// to pick the same node.
func NewSnowflake() (*Snowflake, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	seed := make([]byte, 0, len(host)+8)
	seed = append(seed, host...)
	seed = binary.BigEndian.AppendUint64(seed, uint64(os.Getpid()))

	sum := sha256.Sum256(seed)
	nodeNum := int64(binary.BigEndian.Uint16(sum[:2])) % 1024

	node, err := snowflake.NewNode(nodeNum)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new int64 identifier.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
