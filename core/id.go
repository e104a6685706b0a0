package core

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator creates unique record ids.
type IDGenerator interface {
	NewID() (string, error)
}

// UUIDGenerator creates random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// SequenceGenerator creates ids by appending an increasing counter to a prefix.
//
// The first id returned is prefix + "1".
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator returns a SequenceGenerator using the given prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

func (g *SequenceGenerator) NewID() (string, error) {
	n := g.next.Add(1)
	return g.Prefix + strconv.FormatUint(n, 10), nil
}
