// Package sched implements the request scheduling policies of the
// controller.
package sched

import (
	"fmt"
	"sort"

	"github.com/WilliamWangPeng/macsim/dram/internal/drb"
	"github.com/WilliamWangPeng/macsim/mem"
)

// A Scheduler picks the next request a bank should issue from its pending
// queue. Implementations may reorder the slice in place. A nil return means
// no request should be scheduled this cycle.
type Scheduler interface {
	Pick(pending []*drb.Entry, openRow int64, rowOpen bool) *drb.Entry
}

// Kind names a scheduling policy.
type Kind int

// Supported policies.
const (
	KindFCFS Kind = iota
	KindFRFCFS
)

// ParseKind resolves a policy name from configuration.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "fcfs":
		return KindFCFS, nil
	case "frfcfs":
		return KindFRFCFS, nil
	}

	return 0, fmt.Errorf("unknown dram scheduling policy %q", name)
}

// New creates a scheduler for the given policy.
func New(kind Kind) Scheduler {
	switch kind {
	case KindFCFS:
		return fcfs{}
	case KindFRFCFS:
		return frfcfs{}
	}

	panic("unknown scheduler kind")
}

// fcfs serves requests strictly in arrival order.
type fcfs struct{}

func (fcfs) Pick(pending []*drb.Entry, _ int64, _ bool) *drb.Entry {
	if len(pending) == 0 {
		return nil
	}

	return pending[0]
}

// frfcfs prefers demand requests over hardware prefetches, then row-buffer
// hits, then older requests. The sort is stable so that ties keep arrival
// order.
type frfcfs struct{}

func (frfcfs) Pick(
	pending []*drb.Entry,
	openRow int64,
	rowOpen bool,
) *drb.Entry {
	if len(pending) == 0 {
		return nil
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]

		aDemand := a.Req.Type != mem.ReqDPrf
		bDemand := b.Req.Type != mem.ReqDPrf

		if aDemand != bDemand {
			return aDemand
		}

		if rowOpen {
			aHit := a.RowID == openRow
			bHit := b.RowID == openRow

			if aHit != bHit {
				return aHit
			}
		}

		return a.InsertedAt < b.InsertedAt
	})

	return pending[0]
}
