package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * GHz
		Expect(f.Period()).To(BeNumerically("==", 1e-9))
	})

	It("should get the scale between two domains", func() {
		Expect((3 * GHz).ScaleTo(1 * GHz)).To(BeNumerically("~", 3.0, 1e-12))
		Expect((1 * GHz).ScaleTo(2 * GHz)).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("should convert cycles between equal domains unchanged", func() {
		Expect((1 * GHz).CyclesIn(25, 1*GHz)).To(Equal(25))
	})

	It("should round converted cycles to the nearest integer", func() {
		Expect((3 * GHz).CyclesIn(5, 2*GHz)).To(Equal(8))
		Expect((1 * GHz).CyclesIn(5, 2*GHz)).To(Equal(3))
	})

	It("should panic on a zero frequency", func() {
		Expect(func() { Freq(0).Period() }).To(Panic())
		Expect(func() { (1 * GHz).ScaleTo(0) }).To(Panic())
	})
})
