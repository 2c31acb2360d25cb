package engine

import (
	"time"

	"github.com/opd-ai/go-darts/pkg/clock"
)

const (
	actionReset       = "reset"
	actionHighlight   = "highlight"
	toastActionPrefix = "toast:"
)

func toastAction(id string) string {
	return toastActionPrefix + id
}

// deferredActions are named one-shot timers. Scheduling a name that is
// already pending replaces it, so a stale callback can never run.
type deferredActions struct {
	sched   Scheduler
	pending map[string]clock.Handle
}

func newDeferredActions(sched Scheduler) *deferredActions {
	return &deferredActions{
		sched:   sched,
		pending: make(map[string]clock.Handle),
	}
}

func (d *deferredActions) schedule(name string, delay time.Duration, fn func()) {
	d.cancel(name)
	var h clock.Handle
	h = d.sched.AfterFunc(delay, func() {
		if d.pending[name] != h {
			return
		}
		delete(d.pending, name)
		fn()
	})
	d.pending[name] = h
}

func (d *deferredActions) cancel(name string) {
	h, ok := d.pending[name]
	if !ok {
		return
	}
	d.sched.Stop(h)
	delete(d.pending, name)
}

func (d *deferredActions) cancelAll() {
	for name := range d.pending {
		d.cancel(name)
	}
}
