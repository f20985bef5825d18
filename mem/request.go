// Package mem defines the vocabulary shared between the memory hierarchy and
// the DRAM controller: the request handle, request types, lifecycle states,
// and the interfaces of the external collaborators.
package mem

// ReqType describes what kind of memory access a request performs.
type ReqType int

// All request types the memory system distinguishes.
const (
	ReqIFetch ReqType = iota
	ReqDFetch
	ReqDStore
	ReqIPrf
	ReqDPrf
	ReqWB
	ReqSWDPrf
	ReqSWDPrfNTA
	ReqSWDPrfT0
	ReqSWDPrfT1
	ReqSWDPrfT2
	numReqType
)

var reqTypeNames = [numReqType]string{
	"IFETCH",
	"DFETCH",
	"DSTORE",
	"IPRF",
	"DPRF",
	"WB",
	"SW_DPRF",
	"SW_DPRF_NTA",
	"SW_DPRF_T0",
	"SW_DPRF_T1",
	"SW_DPRF_T2",
}

func (t ReqType) String() string {
	return reqTypeNames[t]
}

// ReqState tags where a request currently is in its lifecycle. Only the DRAM
// stages are modeled here; the upstream hierarchy owns the rest.
type ReqState int

// Request lifecycle states while inside the DRAM controller.
const (
	ReqStateDRAMStart ReqState = iota
	ReqStateDRAMCmd
	ReqStateDRAMData
	ReqStateDRAMDone
)

// CacheLevel identifies a level of the cache hierarchy.
type CacheLevel int

// Cache levels a request carries origin information for.
const (
	L1 CacheLevel = iota
	L2
	L3
	NumCacheLevel
)

// MsgKind is the class of a message put onto the interconnect.
type MsgKind int

// Message kinds the controller emits.
const (
	MsgFill MsgKind = iota
)

// A Request is the handle for one memory access. Requests are owned by an
// external pool; the controller reads their fields and only mutates the
// lifecycle state and the message routing fields.
type Request struct {
	ID       int
	Addr     uint64
	Size     int
	Type     ReqType
	CoreID   int
	ThreadID int
	AppID    int
	IsGPU    bool
	CacheID  [NumCacheLevel]int

	State ReqState

	MsgKind MsgKind
	MsgSrc  int
	MsgDst  int
}
