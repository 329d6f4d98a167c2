package astview

import "time"

// DebounceInterval is how long cursor movement has to settle before
// the highlight is recomputed.
const DebounceInterval = 200 * time.Millisecond

// Scheduler collapses a burst of cursor-movement events into a single
// highlight recomputation while keeping deliberate selection
// instantaneous. It is a two-state machine: idle, or holding one
// pending node with its debounce deadline.
//
// Timers themselves live with the caller (the TUI uses tea.Tick).
// Because such timers cannot be revoked once started, arming hands
// out a sequence token: a timer that fires with a token older than
// the latest arm is stale and Fire rejects it, which is what
// cancellation means here. All methods are driven from the single
// event loop; the Scheduler is not safe for concurrent use.
type Scheduler struct {
	pending  *Node
	deadline time.Time
	seq      uint64
}

// CursorMoved arms (or re-arms) the debounce for n, implicitly
// cancelling any previously pending node, and returns the token the
// caller's timer must present to Fire.
func (s *Scheduler) CursorMoved(n *Node, now time.Time) uint64 {
	s.seq++
	s.pending = n
	s.deadline = now.Add(DebounceInterval)
	return s.seq
}

// Fire resolves an elapsed debounce timer. It returns the node to
// render only when seq is the latest armed token and nothing has
// cancelled it; stale timers report false and must do no work.
func (s *Scheduler) Fire(seq uint64) (*Node, bool) {
	if s.pending == nil || seq != s.seq {
		return nil, false
	}
	n := s.pending
	s.pending = nil
	return n, true
}

// Choose handles a deliberate selection: any pending debounce is
// cancelled unconditionally and n is returned for immediate
// rendering.
func (s *Scheduler) Choose(n *Node) *Node {
	s.seq++
	s.pending = nil
	return n
}

// Reset cancels any pending debounce without supplying a replacement.
// Must be called when the display tree is replaced, since the pending
// node would otherwise outlive the tree it belongs to.
func (s *Scheduler) Reset() {
	s.seq++
	s.pending = nil
}

// Pending exposes the armed node and its deadline, if any.
func (s *Scheduler) Pending() (*Node, time.Time, bool) {
	if s.pending == nil {
		return nil, time.Time{}, false
	}
	return s.pending, s.deadline, true
}
