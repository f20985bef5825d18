package dram

import (
	"github.com/WilliamWangPeng/macsim/dram/internal/drb"
	"github.com/WilliamWangPeng/macsim/dram/internal/org"
	"github.com/WilliamWangPeng/macsim/mem"
	"github.com/WilliamWangPeng/macsim/sim"
)

// bankScheduleNew selects the next request for every idle bank and re-arms
// banks whose inter-command delay has elapsed.
func (c *Comp) bankScheduleNew(now sim.Cycle) {
	for _, bank := range c.banks {
		if bank.Current == nil {
			c.selectNext(bank, now)
			continue
		}

		if bank.Current.State == drb.StateCmdWait && bank.BankReady.Due(now) {
			bank.Current.State = drb.StateCmd
			bank.BankReady = org.Never()
			bank.LastCommandAt = now
		}
	}
}

func (c *Comp) selectNext(bank *org.Bank, now sim.Cycle) {
	if bank.Buffer.PendingEmpty() {
		return
	}

	row, open := bank.OpenRow()

	e := c.policy.Pick(bank.Buffer.Pending(), row, open)
	if e == nil {
		return
	}

	bank.Buffer.Remove(e)
	bank.Current = e
	e.State = drb.StateCmd
	e.ScheduledAt = now
	bank.LastCommandAt = now

	c.stats.Add(StatPowerMCR, 1)
}

// channelScheduleCmd issues at most one sub-command per channel per cycle,
// to the bank that has been waiting in CMD the longest.
func (c *Comp) channelScheduleCmd(now sim.Cycle) {
	for channel := 0; channel < len(c.channels); channel++ {
		bank := c.oldestCmdBank(channel)
		if bank == nil {
			continue
		}

		c.issueCommand(bank, now)
	}
}

func (c *Comp) oldestCmdBank(channel int) *org.Bank {
	var best *org.Bank

	for _, bank := range c.channelBanks(channel) {
		if bank.Current == nil || bank.Current.State != drb.StateCmd {
			continue
		}

		if best == nil || bank.LastCommandAt < best.LastCommandAt {
			best = bank
		}
	}

	return best
}

// issueCommand picks the sub-command from the open-row state: activate a
// closed bank, access the column on a row hit, precharge on a conflict.
func (c *Comp) issueCommand(bank *org.Bank, now sim.Cycle) {
	e := bank.Current
	row, open := bank.OpenRow()

	switch {
	case !open:
		bank.ActivateRow(e.RowID)
		bank.BankReady = org.At(now + c.activate.pick(e.Req.IsGPU))
		e.State = drb.StateCmdWait
		c.stats.Add(StatDRAMActivate, 1)
		c.invokeCmdHook(e, "activate")

	case row == e.RowID:
		ready := now + c.column.pick(e.Req.IsGPU)
		bank.BankReady = org.At(ready)
		bank.DataAvail = org.At(ready)
		e.State = drb.StateData
		c.stats.Add(StatDRAMColumn, 1)
		c.invokeCmdHook(e, "column")

	default:
		bank.CloseRow()
		bank.BankReady = org.At(now + c.precharge.pick(e.Req.IsGPU))
		e.State = drb.StateCmdWait
		c.stats.Add(StatDRAMPrecharge, 1)
		c.invokeCmdHook(e, "precharge")
	}

	bank.LastCommandAt = now
	e.Req.State = mem.ReqStateDRAMCmd
}

func (c *Comp) invokeCmdHook(e *drb.Entry, cmd string) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosCmdIssue,
		Item:   e,
		Detail: cmd,
	})
}
