// Package org holds the bank- and channel-local state of the controller.
package org

import (
	"strconv"

	"github.com/WilliamWangPeng/macsim/sim"
)

// A Deadline is a cycle at which something becomes ready. The zero value is
// "never": no deadline is armed.
type Deadline struct {
	cycle sim.Cycle
	armed bool
}

// At returns a deadline armed for the given cycle.
func At(c sim.Cycle) Deadline {
	return Deadline{cycle: c, armed: true}
}

// Never returns an unarmed deadline.
func Never() Deadline {
	return Deadline{}
}

// Armed returns true when the deadline is set.
func (d Deadline) Armed() bool {
	return d.armed
}

// Due returns true when the deadline is armed and has arrived.
func (d Deadline) Due(now sim.Cycle) bool {
	return d.armed && d.cycle <= now
}

// Cycle returns the armed cycle. Only meaningful when Armed.
func (d Deadline) Cycle() sim.Cycle {
	return d.cycle
}

func (d Deadline) String() string {
	if !d.armed {
		return "inf"
	}
	return strconv.FormatUint(uint64(d.cycle), 10)
}
