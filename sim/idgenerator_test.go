package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IDGenerator", func() {
	It("should generate sequential ids by default", func() {
		g := GetIDGenerator()

		Expect(g.Generate()).To(Equal("1"))
		Expect(g.Generate()).To(Equal("2"))

		Expect(GetIDGenerator()).To(BeIdenticalTo(g))
	})

	It("should refuse to switch generators after first use", func() {
		GetIDGenerator()

		Expect(UseParallelIDGenerator).To(Panic())
		Expect(UseSequentialIDGenerator).To(Panic())
	})
})
