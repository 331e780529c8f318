package suggest

import "context"

// Flight enforces the at-most-one-outstanding-request invariant. Beginning a
// new request cancels the previous one before the new context is handed out,
// and every request carries a sequence number so a late result from a
// superseded request can be recognized and discarded.
//
// Flight is driven entirely from the TUI's update loop, so it needs no
// locking.
type Flight struct {
	cancel context.CancelFunc
	seq    uint64
}

// Begin cancels any outstanding request and returns a context and sequence
// number for the new one.
func (f *Flight) Begin(parent context.Context) (context.Context, uint64) {
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	f.cancel = cancel
	f.seq++
	return ctx, f.seq
}

// Cancel aborts the outstanding request, if any. The request's own result
// delivery (now a cancelled outcome) is what clears the handle.
func (f *Flight) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}

// Pending reports whether a request is outstanding.
func (f *Flight) Pending() bool {
	return f.cancel != nil
}

// IsCurrent reports whether seq identifies the most recently begun request.
func (f *Flight) IsCurrent(seq uint64) bool {
	return seq == f.seq
}

// Finish clears the in-flight handle if seq is still current, releasing its
// context, and reports whether it was. Results from superseded requests
// return false and must be dropped by the caller.
func (f *Flight) Finish(seq uint64) bool {
	if seq != f.seq {
		return false
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	return true
}
