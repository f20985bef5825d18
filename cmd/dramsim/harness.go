package main

import (
	"math/rand"

	"github.com/WilliamWangPeng/macsim/mem"
)

// requestPool is a fixed arena of requests standing in for the memory
// hierarchy's allocator.
type requestPool struct {
	capacity int
	free     []*mem.Request
}

func newRequestPool(capacity int) *requestPool {
	p := &requestPool{capacity: capacity}

	for i := 0; i < capacity; i++ {
		p.free = append(p.free, &mem.Request{ID: i})
	}

	return p
}

func (p *requestPool) Allocate() *mem.Request {
	if len(p.free) == 0 {
		return nil
	}

	req := p.free[0]
	p.free = p.free[1:]

	return req
}

// FreeReq returns a request to the pool.
func (p *requestPool) FreeReq(_ int, req *mem.Request) {
	p.free = append(p.free, req)
}

func (p *requestPool) AllFree() bool {
	return len(p.free) == p.capacity
}

// fillSink stands in for the NoC: it accepts every fill and retires the
// request immediately.
type fillSink struct {
	pool     *requestPool
	numFills int
}

func (s *fillSink) Insert(_, _ int, _ mem.MsgKind, req *mem.Request) bool {
	s.numFills++
	s.pool.FreeReq(req.CoreID, req)

	return true
}

// flatTable routes every fill back to the node with the cache's own id.
type flatTable struct{}

func (flatTable) DstID(_ mem.CacheLevel, cacheID int) int {
	return cacheID
}

// traceGenerator produces a random request stream with some row locality:
// most addresses land near the previous one.
type traceGenerator struct {
	rng       *rand.Rand
	remaining int
	lastAddr  uint64
}

func newTraceGenerator(seed int64, numRequests int) *traceGenerator {
	return &traceGenerator{
		rng:       rand.New(rand.NewSource(seed)),
		remaining: numRequests,
	}
}

func (g *traceGenerator) Exhausted() bool {
	return g.remaining == 0
}

// Next draws one request from the pool and populates it, or returns nil
// when the trace is exhausted or the pool is empty.
func (g *traceGenerator) Next(pool *requestPool) *mem.Request {
	if g.remaining == 0 {
		return nil
	}

	req := pool.Allocate()
	if req == nil {
		return nil
	}

	g.remaining--

	if g.rng.Intn(100) < 70 {
		g.lastAddr += 64
	} else {
		g.lastAddr = uint64(g.rng.Int63n(1 << 30)) &^ 63
	}

	req.Addr = g.lastAddr
	req.Size = 64
	req.CoreID = g.rng.Intn(8)
	req.ThreadID = g.rng.Intn(4)
	req.AppID = 0
	req.IsGPU = g.rng.Intn(100) < 20
	req.CacheID[mem.L3] = g.rng.Intn(4)

	switch r := g.rng.Intn(100); {
	case r < 70:
		req.Type = mem.ReqDFetch
	case r < 85:
		req.Type = mem.ReqWB
	default:
		req.Type = mem.ReqDPrf
	}

	return req
}
