package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/WilliamWangPeng/macsim/dram"
	"github.com/WilliamWangPeng/macsim/mem"
	"github.com/WilliamWangPeng/macsim/monitoring"
	"github.com/WilliamWangPeng/macsim/sim"
	"github.com/WilliamWangPeng/macsim/stats"
)

var (
	numCycles   int
	numRequests int
	seed        int64

	numBanks    int
	numChannels int
	bufferSize  int
	scheduler   string
	merge       bool
	bankXOR     bool

	record        bool
	dbPath        string
	monitorPort   int
	openDashboard bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dramsim",
	Short: "Dramsim runs the DRAM controller model on a synthetic trace.",
	Long: `Dramsim builds one DRAM memory controller, feeds it a randomly ` +
		`generated request trace, runs the controller cycle by cycle until ` +
		`the trace drains, and reports the accumulated statistics.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

// Execute runs the root command and exits through atexit, with status 1
// when the command returned an error.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	// A .env file can pre-set any DRAMSIM_* variable.
	_ = godotenv.Load()

	rootCmd.Flags().IntVar(&numCycles, "cycles", 1000000,
		"maximum number of cycles to simulate")
	rootCmd.Flags().IntVar(&numRequests, "requests", 10000,
		"number of requests in the synthetic trace")
	rootCmd.Flags().Int64Var(&seed, "seed", 1,
		"random seed of the synthetic trace")

	rootCmd.Flags().IntVar(&numBanks, "num-banks", 16,
		"total number of banks")
	rootCmd.Flags().IntVar(&numChannels, "num-channels", 4,
		"number of channels")
	rootCmd.Flags().IntVar(&bufferSize, "buffer-size", 32,
		"request-buffer entries per bank")
	rootCmd.Flags().StringVar(&scheduler,
		"scheduler", envOr("DRAMSIM_SCHEDULER", "frfcfs"),
		"scheduling policy, fcfs or frfcfs")
	rootCmd.Flags().BoolVar(&merge, "merge", true,
		"merge same-address requests at completion")
	rootCmd.Flags().BoolVar(&bankXOR, "bank-xor", false,
		"enable XOR bank permutation")

	rootCmd.Flags().BoolVar(&record, "record", false,
		"record statistics into a SQLite database")
	rootCmd.Flags().StringVar(&dbPath, "db", os.Getenv("DRAMSIM_DB"),
		"statistics database path, without extension")
	rootCmd.Flags().IntVar(&monitorPort, "monitor", 0,
		"start the monitoring server on this port, 0 disables")
	rootCmd.Flags().BoolVar(&openDashboard, "open-dashboard", false,
		"open the monitoring page in the local browser")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func run() error {
	sim.UseParallelIDGenerator()

	clock := sim.NewClock()
	registry := stats.NewRegistry()

	if record {
		if dbPath == "" {
			dbPath = "dramsim_" + sim.GetIDGenerator().Generate()
		}

		stats.NewRecorder(dbPath, registry)
	}

	pool := newRequestPool(numRequests)
	sink := &fillSink{pool: pool}
	trace := newTraceGenerator(seed, numRequests)

	ctrl := dram.MakeBuilder().
		WithClock(clock).
		WithInterconnect(sink).
		WithPool(pool).
		WithDstTable(flatTable{}).
		WithStatSink(registry).
		WithNumBanks(numBanks).
		WithNumChannels(numChannels).
		WithBufferSize(bufferSize).
		WithScheduler(scheduler).
		WithMergeRequests(merge).
		WithBankXORIndex(bankXOR).
		Build("MemCtrl")

	if monitorPort > 0 {
		monitor := monitoring.NewMonitor().WithPortNumber(monitorPort)
		monitor.RegisterClock(clock)
		monitor.RegisterRegistry(registry)
		monitor.RegisterComponent(ctrl)
		monitor.StartServer()

		if openDashboard {
			monitor.OpenDashboard()
		}
	}

	var deferred *mem.Request

	for cycle := 0; cycle < numCycles; cycle++ {
		if deferred == nil {
			deferred = trace.Next(pool)
		}

		if deferred != nil && ctrl.InsertNewReq(deferred) {
			deferred = nil
		}

		ctrl.RunACycle()
		clock.Advance()

		if trace.Exhausted() && deferred == nil && pool.AllFree() {
			break
		}
	}

	printSummary(clock, registry, sink)

	return nil
}

func printSummary(
	clock sim.CycleSource,
	registry *stats.Registry,
	sink *fillSink,
) {
	fmt.Printf("cycles simulated: %d\n", clock.Now())
	fmt.Printf("fills delivered: %d\n", sink.numFills)

	for _, c := range registry.Snapshot() {
		fmt.Printf("%-40s %.0f\n", c.Name, c.Value)
	}

	lat := registry.Get(dram.StatDRAMAvgLatency)
	base := registry.Get(dram.StatDRAMAvgLatencyBase)
	if base > 0 {
		fmt.Printf("%-40s %.2f\n", "average latency (cycles)", lat/base)
	}
}
