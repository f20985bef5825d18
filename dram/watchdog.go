package dram

import (
	"fmt"
	"log"
	"os"

	"github.com/WilliamWangPeng/macsim/sim"
)

// starvationLimit is the number of consecutive cycles the controller may
// hold requests without retiring any before it is declared stuck.
const starvationLimit = 5000

// diagnosticFile receives the bank dump when the watchdog fires.
const diagnosticFile = "bug_detect_dram.out"

// progressCheck aborts the simulation when requests exist but none retired
// for starvationLimit consecutive cycles.
func (c *Comp) progressCheck(now sim.Cycle) {
	if c.totalReq > 0 && c.completedThisCycle == 0 {
		c.starvationCycles++
	} else {
		c.starvationCycles = 0
	}

	if c.starvationCycles < starvationLimit {
		return
	}

	c.dumpState(now)
	log.Panicf("%s made no progress for %d cycles",
		c.name, c.starvationCycles)
}

func (c *Comp) dumpState(now sim.Cycle) {
	f, err := os.Create(diagnosticFile)
	if err != nil {
		log.Printf("cannot write %s: %v", diagnosticFile, err)
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "current cycle:%d\n", now)
	fmt.Fprintf(f, "total pending requests:%d\n", c.totalReq)

	for i, ch := range c.channels {
		fmt.Fprintf(f, "channel:%d bus free at:%d\n", i, ch.BusFreeAt)
	}

	for i, bank := range c.banks {
		id := uint64(0)
		scheduled := sim.Cycle(0)
		state := "NULL"

		if bank.Current != nil {
			id = bank.Current.ID
			scheduled = bank.Current.ScheduledAt
			state = bank.Current.State.String()
		}

		fmt.Fprintf(f,
			"bank:%d id:%d scheduled:%d pending:%d state:%s "+
				"bank_ready:%s data_ready:%s data_avail:%s last_command:%d\n",
			i, id, scheduled, bank.Buffer.PendingSize(), state,
			bank.BankReady, bank.DataReady, bank.DataAvail,
			bank.LastCommandAt)
	}
}
