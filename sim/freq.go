package sim

import (
	"log"
	"math"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time in seconds between two consecutive ticks.
func (f Freq) Period() float64 {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}
	return 1.0 / float64(f)
}

// ScaleTo returns the number of cycles of this clock domain that elapse
// during one cycle of the reference domain.
func (f Freq) ScaleTo(ref Freq) float64 {
	if ref == 0 {
		log.Panic("reference frequency cannot be 0")
	}
	return float64(f) / float64(ref)
}

// CyclesIn converts a cycle count in the reference domain to a rounded
// cycle count in this domain.
func (f Freq) CyclesIn(refCycles int, ref Freq) int {
	return int(math.Round(float64(refCycles) * f.ScaleTo(ref)))
}
