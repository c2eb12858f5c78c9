package state

import (
	"github.com/google/uuid"
)

// Stamp identifies a command and orders it by creation.
type Stamp struct {
	ID  string
	Seq uint64
}

// Clock hands out stamps for one board. It is not safe for concurrent use;
// a board is only ever driven from one goroutine.
type Clock struct {
	seq uint64
}

func (c *Clock) Next() Stamp {
	c.seq++
	return Stamp{ID: uuid.NewString(), Seq: c.seq}
}
