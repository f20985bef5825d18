// Package dram provides a cycle-accurate DRAM memory-controller model. The
// controller decodes physical addresses into bank coordinates, queues
// requests in per-bank buffers, walks each bank through the
// activate/column/precharge command sequence, arbitrates a shared data bus
// per channel, and hands completed requests back to the interconnect.
package dram

import (
	"github.com/WilliamWangPeng/macsim/dram/internal/addrdec"
	"github.com/WilliamWangPeng/macsim/dram/internal/drb"
	"github.com/WilliamWangPeng/macsim/dram/internal/org"
	"github.com/WilliamWangPeng/macsim/dram/internal/sched"
	"github.com/WilliamWangPeng/macsim/mem"
	"github.com/WilliamWangPeng/macsim/sim"
)

// HookPosCmdIssue is triggered when a sub-command is issued to a bank. The
// hook item is the buffer entry; the detail is the sub-command name.
var HookPosCmdIssue = &sim.HookPos{Name: "DRAMCmdIssue"}

// HookPosReqComplete is triggered when a request leaves the controller. The
// hook item is the external request.
var HookPosReqComplete = &sim.HookPos{Name: "DRAMReqComplete"}

// latency is one DRAM timing parameter pre-converted into both host clock
// domains.
type latency struct {
	cpu sim.Cycle
	gpu sim.Cycle
}

func (l latency) pick(isGPU bool) sim.Cycle {
	if isGPU {
		return l.gpu
	}

	return l.cpu
}

// Comp is a DRAM memory controller. It is driven synchronously: the host
// simulator calls RunACycle exactly once per CPU cycle.
type Comp struct {
	sim.HookableBase

	name  string
	id    int
	nocID int

	clock    sim.CycleSource
	noc      mem.Interconnect
	pool     mem.Pool
	table    mem.Table
	terminal mem.Terminal
	stats    StatSink

	decoder addrdec.Decoder
	policy  sched.Scheduler

	banks           []*org.Bank
	channels        []*org.Channel
	banksPerChannel int

	busWidth  int
	scaleCPU  float64
	scaleGPU  float64
	activate  latency
	column    latency
	precharge latency

	mergeRequests bool

	totalReq           int
	completedThisCycle int
	starvationCycles   int
}

// Name returns the name of the controller.
func (c *Comp) Name() string {
	return c.name
}

// ID returns the numeric controller id.
func (c *Comp) ID() int {
	return c.id
}

// NoCID returns the controller's node id on the interconnect.
func (c *Comp) NoCID() int {
	return c.nocID
}

// RunACycle advances the controller by one host cycle. Sub-steps run in a
// fixed order; every step either finishes or defers to the next cycle.
func (c *Comp) RunACycle() {
	now := c.clock.Now()
	c.completedThisCycle = 0

	c.channelScheduleCmd(now)
	c.channelScheduleData(now)
	c.bankScheduleComplete(now)
	c.bankScheduleNew(now)
	c.drainTerminal()
	c.progressCheck(now)
}

// InsertNewReq decodes a request's address and queues it in the target
// bank's pending buffer. A false return means the buffer is full even after
// flushing prefetches; the caller retries later.
func (c *Comp) InsertNewReq(req *mem.Request) bool {
	loc := c.decoder.Decode(req.Addr)
	bank := c.banks[loc.Bank]

	if bank.Buffer.FreeSize() == 0 {
		c.flushPrefetch(bank)
	}

	e := bank.Buffer.TryAcquire()
	if e == nil {
		return false
	}

	e.Assign(req, loc.Bank, loc.Row, loc.Col, c.clock.Now())
	bank.Buffer.Push(e)

	req.State = mem.ReqStateDRAMStart
	c.totalReq++

	c.stats.Add(StatTotalDRAM, 1)
	c.stats.Add(StatPowerMCW, 1)

	return true
}

// flushPrefetch evicts every pending hardware prefetch from a bank, handing
// the underlying requests back to the pool.
func (c *Comp) flushPrefetch(bank *org.Bank) {
	var victims []*drb.Entry

	for _, e := range bank.Buffer.Pending() {
		if e.Req.Type == mem.ReqDPrf {
			victims = append(victims, e)
		}
	}

	for _, e := range victims {
		bank.Buffer.Remove(e)
		c.pool.FreeReq(e.CoreID, e.Req)
		bank.Buffer.Release(e)
		c.totalReq--
	}
}

// drainTerminal moves at most one inbound request per cycle from the NoC
// terminal into the pending buffers. A refused request stays queued.
func (c *Comp) drainTerminal() {
	if c.terminal == nil {
		return
	}

	req := c.terminal.Peek()
	if req == nil {
		return
	}

	if c.InsertNewReq(req) {
		c.terminal.Pop()
	}
}

func (c *Comp) channelBanks(channel int) []*org.Bank {
	lo := channel * c.banksPerChannel
	return c.banks[lo : lo+c.banksPerChannel]
}
