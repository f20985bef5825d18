package dram

import (
	"math"

	"github.com/WilliamWangPeng/macsim/dram/internal/drb"
	"github.com/WilliamWangPeng/macsim/dram/internal/org"
	"github.com/WilliamWangPeng/macsim/mem"
	"github.com/WilliamWangPeng/macsim/sim"
)

// channelScheduleData hands each channel's data bus to waiting banks. While
// the bus is free, the oldest bank whose column access has finished gets
// the bus; sub-bus-width transfers may share one DRAM cycle.
func (c *Comp) channelScheduleData(now sim.Cycle) {
	for channel, ch := range c.channels {
		for ch.BusFree(now) {
			bank := c.oldestDataBank(channel, now)
			if bank == nil {
				break
			}

			e := bank.Current
			release := c.acquireDataBus(ch, e.Size, e.Req.IsGPU, now)

			e.State = drb.StateDataWait
			bank.DataReady = org.At(release)
			bank.DataAvail = org.Never()
			e.Req.State = mem.ReqStateDRAMData
		}

		if ch.BusFree(now) {
			c.stats.Add(StatChannelDBusIdle(channel), 1)
		} else {
			c.stats.Add(StatChannelBandwidthSaturated(channel), 1)
		}
	}
}

func (c *Comp) oldestDataBank(channel int, now sim.Cycle) *org.Bank {
	var best *org.Bank

	for _, bank := range c.channelBanks(channel) {
		if bank.Current == nil || bank.Current.State != drb.StateData {
			continue
		}

		if !bank.DataAvail.Due(now) {
			continue
		}

		if best == nil || bank.LastCommandAt < best.LastCommandAt {
			best = bank
		}
	}

	return best
}

// acquireDataBus reserves the channel's data bus for one transfer and
// returns the cycle at which the data is fully on the wire. A transfer
// smaller than the bytes left in the current DRAM cycle finishes
// immediately; anything larger occupies whole DRAM cycles, converted to the
// request's host clock domain.
func (c *Comp) acquireDataBus(
	ch *org.Channel,
	size int,
	isGPU bool,
	now sim.Cycle,
) sim.Cycle {
	c.stats.Add(StatBandwidthTot, float64(size))

	if size < ch.ByteAvail {
		ch.ByteAvail -= size
		ch.BusFreeAt = now

		return now
	}

	avail := ch.ByteAvail
	dramCycles := (size-avail)/c.busWidth + 1
	ch.ByteAvail = c.busWidth - (size-avail)%c.busWidth

	scale := c.scaleCPU
	if isGPU {
		scale = c.scaleGPU
	}

	release := now + sim.Cycle(math.Round(float64(dramCycles)*scale))
	ch.BusFreeAt = release

	return release
}

// bankScheduleComplete retires every bank whose data transfer has finished.
func (c *Comp) bankScheduleComplete(now sim.Cycle) {
	for _, bank := range c.banks {
		e := bank.Current
		if e == nil || e.State != drb.StateDataWait || !bank.DataReady.Due(now) {
			continue
		}

		c.completeBank(bank, now)
	}
}

func (c *Comp) completeBank(bank *org.Bank, now sim.Cycle) {
	e := bank.Current

	if c.mergeRequests && !c.mergeSiblings(bank, e) {
		return
	}

	if !c.dispatch(e) {
		return
	}

	c.stats.Add(StatDRAMAvgLatency, float64(now-e.InsertedAt))
	c.stats.Add(StatDRAMAvgLatencyBase, 1)

	if c.NumHooks() > 0 {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosReqComplete,
			Item:   e.Req,
		})
	}

	bank.Buffer.Release(e)
	bank.Current = nil
	bank.BankReady = org.Never()
	bank.DataReady = org.Never()

	c.completedThisCycle++
	c.totalReq--
}

// mergeSiblings completes every pending request whose address matches the
// finishing one. A false return means the interconnect refused a fill:
// siblings already forwarded stay completed, the refused one and everything
// after it stay pending, and the whole completion retries next cycle.
func (c *Comp) mergeSiblings(bank *org.Bank, cur *drb.Entry) bool {
	var matches []*drb.Entry

	for _, e := range bank.Buffer.Pending() {
		if e.Addr == cur.Addr {
			matches = append(matches, e)
		}
	}

	for _, e := range matches {
		if !c.dispatch(e) {
			return false
		}

		bank.Buffer.Remove(e)
		bank.Buffer.Release(e)

		c.stats.Add(StatTotalDRAMMerge, 1)
		c.totalReq--
	}

	return true
}

// dispatch hands a finished request back to its owner: writebacks return to
// the pool, everything else goes to the originating cache as a fill.
func (c *Comp) dispatch(e *drb.Entry) bool {
	req := e.Req

	if req.Type == mem.ReqWB {
		c.pool.FreeReq(e.CoreID, req)
		return true
	}

	dst := c.table.DstID(mem.L3, req.CacheID[mem.L3])
	req.MsgKind = mem.MsgFill
	req.MsgSrc = c.nocID
	req.MsgDst = dst

	if !c.noc.Insert(c.nocID, dst, mem.MsgFill, req) {
		return false
	}

	req.State = mem.ReqStateDRAMDone

	return true
}
