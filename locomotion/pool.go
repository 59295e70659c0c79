package locomotion

import "sync"

var ctxPool = sync.Pool{
	New: func() any {
		return &frameContext{}
	},
}

func newCtx(c *Controller, dt float32) *frameContext {
	ctx := ctxPool.Get().(*frameContext)
	ctx.c = c
	ctx.dt = dt
	return ctx
}

func putCtx(ctx *frameContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *frameContext) reset() {
	ctx.c = nil
	ctx.dt = 0
	ctx.grounded = false
	ctx.groundedChecked = false
}
