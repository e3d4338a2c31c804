package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// AllocatorOptions returns the exec-allocator options used by the
// DevTools-protocol scripts. They extend chromedp's defaults with the
// same flags the WebDriver scripts pass to Chrome.
func AllocatorOptions(headless bool) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{},
		chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	return opts
}

// NewChromedp opens a tab against a freshly launched Chrome. The
// returned context carries the deadline; the release func tears down
// the tab, the browser and the allocator in order.
func NewChromedp(parent context.Context, headless bool, timeout time.Duration) (context.Context, func()) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, AllocatorOptions(headless)...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)

	release := func() {
		cancelTimeout()
		cancelCtx()
		cancelAlloc()
	}
	return ctx, release
}
