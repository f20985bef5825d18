package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHook struct {
	ctxs []HookCtx
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

var _ = Describe("HookableBase", func() {
	It("should invoke all registered hooks", func() {
		hookable := &HookableBase{}
		h1 := &recordingHook{}
		h2 := &recordingHook{}

		hookable.AcceptHook(h1)
		hookable.AcceptHook(h2)

		pos := &HookPos{Name: "SamplePos"}
		hookable.InvokeHook(HookCtx{Pos: pos, Item: 42})

		Expect(hookable.NumHooks()).To(Equal(2))
		Expect(h1.ctxs).To(HaveLen(1))
		Expect(h2.ctxs).To(HaveLen(1))
		Expect(h1.ctxs[0].Pos).To(BeIdenticalTo(pos))
		Expect(h1.ctxs[0].Item).To(Equal(42))
	})
})
