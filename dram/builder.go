package dram

import (
	"log"

	"github.com/WilliamWangPeng/macsim/dram/internal/addrdec"
	"github.com/WilliamWangPeng/macsim/dram/internal/org"
	"github.com/WilliamWangPeng/macsim/dram/internal/sched"
	"github.com/WilliamWangPeng/macsim/mem"
	"github.com/WilliamWangPeng/macsim/sim"
)

// A Builder can build DRAM memory controllers.
type Builder struct {
	clock    sim.CycleSource
	noc      mem.Interconnect
	pool     mem.Pool
	table    mem.Table
	terminal mem.Terminal
	stats    StatSink

	id    int
	nocID int

	numBanks    int
	numChannels int
	bufferSize  int

	busWidth   int
	ddrFactor  int
	rowBufSize uint64
	l3LineSize uint64

	precharge int
	activate  int
	column    int

	cpuFreq  sim.Freq
	gpuFreq  sim.Freq
	dramFreq sim.Freq

	bankXORIndex  bool
	mergeRequests bool
	policy        string
}

// MakeBuilder returns a builder with the reference configuration. The
// collaborators (clock, interconnect, pool, destination table) have no
// defaults and must be provided.
func MakeBuilder() Builder {
	return Builder{
		stats:         nopSink{},
		numBanks:      16,
		numChannels:   4,
		bufferSize:    32,
		busWidth:      8,
		ddrFactor:     2,
		rowBufSize:    2048,
		l3LineSize:    64,
		precharge:     14,
		activate:      25,
		column:        11,
		cpuFreq:       1 * sim.GHz,
		gpuFreq:       1 * sim.GHz,
		dramFreq:      1 * sim.GHz,
		mergeRequests: true,
		policy:        "frfcfs",
	}
}

// WithClock sets the shared cycle counter the controller reads time from.
func (b Builder) WithClock(clock sim.CycleSource) Builder {
	b.clock = clock
	return b
}

// WithInterconnect sets the NoC that sinks completed fills.
func (b Builder) WithInterconnect(noc mem.Interconnect) Builder {
	b.noc = noc
	return b
}

// WithPool sets the request pool that owns the request objects.
func (b Builder) WithPool(pool mem.Pool) Builder {
	b.pool = pool
	return b
}

// WithDstTable sets the lookup used to route fills back to caches.
func (b Builder) WithDstTable(table mem.Table) Builder {
	b.table = table
	return b
}

// WithTerminal sets an optional inbound queue drained one request per
// cycle.
func (b Builder) WithTerminal(terminal mem.Terminal) Builder {
	b.terminal = terminal
	return b
}

// WithStatSink sets the sink that receives statistics events.
func (b Builder) WithStatSink(stats StatSink) Builder {
	b.stats = stats
	return b
}

// WithID sets the numeric controller id.
func (b Builder) WithID(id int) Builder {
	b.id = id
	return b
}

// WithNoCID sets the controller's node id on the interconnect.
func (b Builder) WithNoCID(nocID int) Builder {
	b.nocID = nocID
	return b
}

// WithNumBanks sets the total bank count across the controller.
func (b Builder) WithNumBanks(n int) Builder {
	b.numBanks = n
	return b
}

// WithNumChannels sets the channel count. Banks divide evenly across
// channels.
func (b Builder) WithNumChannels(n int) Builder {
	b.numChannels = n
	return b
}

// WithBufferSize sets the number of request-buffer entries per bank.
func (b Builder) WithBufferSize(n int) Builder {
	b.bufferSize = n
	return b
}

// WithBusWidth sets the data-bus width in bytes per DRAM half-cycle.
func (b Builder) WithBusWidth(n int) Builder {
	b.busWidth = n
	return b
}

// WithDDRFactor sets the data-rate multiplier applied to the bus width.
func (b Builder) WithDDRFactor(n int) Builder {
	b.ddrFactor = n
	return b
}

// WithRowBufferSize sets the row-buffer size in bytes.
func (b Builder) WithRowBufferSize(n uint64) Builder {
	b.rowBufSize = n
	return b
}

// WithL3LineSize sets the last-level cache line size used by the XOR
// permutation shift.
func (b Builder) WithL3LineSize(n uint64) Builder {
	b.l3LineSize = n
	return b
}

// WithPrechargeLatency sets the precharge latency in DRAM cycles.
func (b Builder) WithPrechargeLatency(n int) Builder {
	b.precharge = n
	return b
}

// WithActivateLatency sets the activate latency in DRAM cycles.
func (b Builder) WithActivateLatency(n int) Builder {
	b.activate = n
	return b
}

// WithColumnLatency sets the column-access latency in DRAM cycles.
func (b Builder) WithColumnLatency(n int) Builder {
	b.column = n
	return b
}

// WithCPUFrequency sets the CPU clock-domain frequency.
func (b Builder) WithCPUFrequency(f sim.Freq) Builder {
	b.cpuFreq = f
	return b
}

// WithGPUFrequency sets the GPU clock-domain frequency.
func (b Builder) WithGPUFrequency(f sim.Freq) Builder {
	b.gpuFreq = f
	return b
}

// WithDRAMFrequency sets the DRAM clock-domain frequency.
func (b Builder) WithDRAMFrequency(f sim.Freq) Builder {
	b.dramFreq = f
	return b
}

// WithBankXORIndex enables the XOR bank permutation that spreads
// row-adjacent addresses across banks.
func (b Builder) WithBankXORIndex(enable bool) Builder {
	b.bankXORIndex = enable
	return b
}

// WithMergeRequests enables same-address coalescing at completion time.
func (b Builder) WithMergeRequests(enable bool) Builder {
	b.mergeRequests = enable
	return b
}

// WithScheduler sets the request scheduling policy, "fcfs" or "frfcfs".
func (b Builder) WithScheduler(name string) Builder {
	b.policy = name
	return b
}

// Build creates a controller with the given name.
func (b Builder) Build(name string) *Comp {
	b.mustBeValid()

	c := &Comp{
		name:     name,
		id:       b.id,
		nocID:    b.nocID,
		clock:    b.clock,
		noc:      b.noc,
		pool:     b.pool,
		table:    b.table,
		terminal: b.terminal,
		stats:    b.stats,

		decoder: addrdec.MakeDecoder(
			b.rowBufSize, b.numBanks, b.l3LineSize, b.bankXORIndex),
		policy: sched.New(b.mustParsePolicy()),

		banksPerChannel: b.numBanks / b.numChannels,
		busWidth:        b.busWidth * b.ddrFactor,
		scaleCPU:        b.cpuFreq.ScaleTo(b.dramFreq),
		scaleGPU:        b.gpuFreq.ScaleTo(b.dramFreq),

		mergeRequests: b.mergeRequests,
	}

	c.activate = b.hostLatency(b.activate)
	c.column = b.hostLatency(b.column)
	c.precharge = b.hostLatency(b.precharge)

	for i := 0; i < b.numBanks; i++ {
		c.banks = append(c.banks, org.NewBank(b.bufferSize))
	}

	for i := 0; i < b.numChannels; i++ {
		c.channels = append(c.channels, &org.Channel{
			ByteAvail: c.busWidth,
		})
	}

	return c
}

func (b Builder) mustParsePolicy() sched.Kind {
	kind, err := sched.ParseKind(b.policy)
	if err != nil {
		log.Panic(err)
	}

	return kind
}

func (b Builder) hostLatency(dramCycles int) latency {
	return latency{
		cpu: sim.Cycle(b.cpuFreq.CyclesIn(dramCycles, b.dramFreq)),
		gpu: sim.Cycle(b.gpuFreq.CyclesIn(dramCycles, b.dramFreq)),
	}
}

func (b Builder) mustBeValid() {
	if b.clock == nil {
		log.Panic("a clock is required")
	}

	if b.noc == nil {
		log.Panic("an interconnect is required")
	}

	if b.pool == nil {
		log.Panic("a request pool is required")
	}

	if b.table == nil {
		log.Panic("a destination table is required")
	}

	if b.numChannels <= 0 || b.numBanks%b.numChannels != 0 {
		log.Panicf("%d banks cannot divide evenly across %d channels",
			b.numBanks, b.numChannels)
	}

	if b.bufferSize <= 0 {
		log.Panic("buffer size must be positive")
	}

	if b.busWidth <= 0 || b.ddrFactor <= 0 {
		log.Panic("bus width and DDR factor must be positive")
	}

	if b.precharge <= 0 || b.activate <= 0 || b.column <= 0 {
		log.Panic("DRAM latencies must be positive")
	}
}
