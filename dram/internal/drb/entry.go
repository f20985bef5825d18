// Package drb implements the per-bank DRAM request buffer: a fixed arena of
// entries split between a free list and an insertion-ordered pending queue.
package drb

import (
	"sync/atomic"

	"github.com/WilliamWangPeng/macsim/mem"
	"github.com/WilliamWangPeng/macsim/sim"
)

// EntryState tracks where an entry is in the bank command pipeline.
type EntryState int

// Entry states.
const (
	StateInit EntryState = iota
	StateCmd
	StateCmdWait
	StateData
	StateDataWait
	numEntryState
)

var entryStateNames = [numEntryState]string{
	"DRAM_INIT",
	"DRAM_CMD",
	"DRAM_CMD_WAIT",
	"DRAM_DATA",
	"DRAM_DATA_WAIT",
}

func (s EntryState) String() string {
	return entryStateNames[s]
}

var nextEntryID uint64

// An Entry is the controller-internal record for one pending request.
type Entry struct {
	ID    uint64
	State EntryState

	Addr     uint64
	BankID   int
	RowID    int64
	ColID    uint64
	CoreID   int
	ThreadID int
	AppID    int

	Read     bool
	Priority int
	Size     int

	InsertedAt  sim.Cycle
	ScheduledAt sim.Cycle

	Req *mem.Request
}

// Assign populates a free entry with a request. The entry id is drawn from a
// process-global counter.
func (e *Entry) Assign(
	req *mem.Request,
	bankID int,
	rowID int64,
	colID uint64,
	now sim.Cycle,
) {
	e.ID = atomic.AddUint64(&nextEntryID, 1)
	e.Addr = req.Addr
	e.BankID = bankID
	e.RowID = rowID
	e.ColID = colID
	e.CoreID = req.CoreID
	e.ThreadID = req.ThreadID
	e.AppID = req.AppID
	e.Size = req.Size
	e.InsertedAt = now
	e.Read = req.Type != mem.ReqWB
	e.Req = req
}

func (e *Entry) reset() {
	*e = Entry{}
}
