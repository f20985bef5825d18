// Dramsim drives the DRAM controller model standalone with a synthetic
// random trace.
package main

func main() {
	Execute()
}
