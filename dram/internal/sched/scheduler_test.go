package sched

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/WilliamWangPeng/macsim/dram/internal/drb"
	"github.com/WilliamWangPeng/macsim/mem"
	"github.com/WilliamWangPeng/macsim/sim"
)

func entry(row int64, t sim.Cycle, reqType mem.ReqType) *drb.Entry {
	return &drb.Entry{
		RowID:      row,
		InsertedAt: t,
		Req:        &mem.Request{Type: reqType},
	}
}

var _ = Describe("ParseKind", func() {
	It("should resolve policy names", func() {
		kind, err := ParseKind("fcfs")
		Expect(err).NotTo(HaveOccurred())
		Expect(kind).To(Equal(KindFCFS))

		kind, err = ParseKind("frfcfs")
		Expect(err).NotTo(HaveOccurred())
		Expect(kind).To(Equal(KindFRFCFS))
	})

	It("should reject unknown names", func() {
		_, err := ParseKind("round-robin")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("FCFS", func() {
	var s Scheduler

	BeforeEach(func() {
		s = New(KindFCFS)
	})

	It("should return nil on an empty queue", func() {
		Expect(s.Pick(nil, 0, false)).To(BeNil())
	})

	It("should always serve the front of the queue", func() {
		miss := entry(7, 1, mem.ReqDFetch)
		hit := entry(3, 2, mem.ReqDFetch)

		picked := s.Pick([]*drb.Entry{miss, hit}, 3, true)

		Expect(picked).To(BeIdenticalTo(miss))
	})
})

var _ = Describe("FRFCFS", func() {
	var s Scheduler

	BeforeEach(func() {
		s = New(KindFRFCFS)
	})

	It("should return nil on an empty queue", func() {
		Expect(s.Pick(nil, 0, false)).To(BeNil())
	})

	It("should prefer a row hit over an older miss", func() {
		miss := entry(7, 1, mem.ReqDFetch)
		hit := entry(3, 2, mem.ReqDFetch)

		picked := s.Pick([]*drb.Entry{miss, hit}, 3, true)

		Expect(picked).To(BeIdenticalTo(hit))
	})

	It("should prefer a demand miss over a prefetch hit", func() {
		prefetchHit := entry(3, 1, mem.ReqDPrf)
		demandMiss := entry(7, 2, mem.ReqDFetch)

		picked := s.Pick([]*drb.Entry{prefetchHit, demandMiss}, 3, true)

		Expect(picked).To(BeIdenticalTo(demandMiss))
	})

	It("should fall back to the older request", func() {
		older := entry(7, 1, mem.ReqDFetch)
		newer := entry(9, 2, mem.ReqDFetch)

		picked := s.Pick([]*drb.Entry{newer, older}, 3, true)

		Expect(picked).To(BeIdenticalTo(older))
	})

	It("should ignore row hits when no row is open", func() {
		first := entry(7, 1, mem.ReqDFetch)
		second := entry(0, 2, mem.ReqDFetch)

		picked := s.Pick([]*drb.Entry{first, second}, 0, false)

		Expect(picked).To(BeIdenticalTo(first))
	})

	It("should keep arrival order between equal keys", func() {
		a := entry(3, 5, mem.ReqDFetch)
		b := entry(3, 5, mem.ReqDFetch)
		c := entry(3, 5, mem.ReqDFetch)

		pending := []*drb.Entry{a, b, c}
		s.Pick(pending, 3, true)

		Expect(pending).To(Equal([]*drb.Entry{a, b, c}))
	})
})
