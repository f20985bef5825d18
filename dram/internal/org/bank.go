package org

import (
	"github.com/WilliamWangPeng/macsim/dram/internal/drb"
	"github.com/WilliamWangPeng/macsim/sim"
)

// A Bank owns one request buffer and the timing state of one DRAM bank.
type Bank struct {
	Buffer  *drb.Buffer
	Current *drb.Entry

	openRow int64
	rowOpen bool

	BankReady Deadline
	DataReady Deadline
	DataAvail Deadline

	LastCommandAt sim.Cycle
}

// NewBank creates a bank with a request buffer of the given capacity.
func NewBank(bufferSize int) *Bank {
	return &Bank{
		Buffer: drb.NewBuffer(bufferSize),
	}
}

// OpenRow returns the activated row, if any.
func (b *Bank) OpenRow() (int64, bool) {
	return b.openRow, b.rowOpen
}

// ActivateRow marks the given row as open.
func (b *Bank) ActivateRow(row int64) {
	b.openRow = row
	b.rowOpen = true
}

// CloseRow clears the open row after a precharge.
func (b *Bank) CloseRow() {
	b.openRow = 0
	b.rowOpen = false
}

// RowHit returns true when the given row is the open row.
func (b *Bank) RowHit(row int64) bool {
	return b.rowOpen && b.openRow == row
}

// A Channel tracks the shared data bus of a group of banks.
type Channel struct {
	BusFreeAt sim.Cycle
	ByteAvail int
}

// BusFree returns true when the data bus can start a new transfer.
func (c *Channel) BusFree(now sim.Cycle) bool {
	return c.BusFreeAt <= now
}
