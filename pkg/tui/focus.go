package tui

// FocusController is handed to the search bar so it can take over the screen
// while it has focus. Acquire and Release are paired: every Acquire is
// followed by exactly one Release on blur, submit or quit.
type FocusController interface {
	Acquire()
	Release()
	Locked() bool
}

// Scrollable is anything whose scroll position can be saved and restored
type Scrollable interface {
	Offset() int
	SetOffset(offset int)
}

// ScrollLock freezes a scrollable view while the search modal is open and
// puts it back where it was on release
type ScrollLock struct {
	target Scrollable
	saved  int
	locked bool
}

// NewScrollLock creates a lock over target
func NewScrollLock(target Scrollable) *ScrollLock {
	return &ScrollLock{target: target}
}

// Acquire saves the scroll offset. Nested calls are ignored.
func (s *ScrollLock) Acquire() {
	if s.locked {
		return
	}
	s.locked = true
	if s.target != nil {
		s.saved = s.target.Offset()
	}
}

// Release restores the saved offset. Calling it without a lock is a no-op.
func (s *ScrollLock) Release() {
	if !s.locked {
		return
	}
	s.locked = false
	if s.target != nil {
		s.target.SetOffset(s.saved)
	}
}

// Locked reports whether the lock is held
func (s *ScrollLock) Locked() bool {
	return s.locked
}

// inlineFocus is used in inline mode where the page never locks
type inlineFocus struct{}

func (inlineFocus) Acquire()     {}
func (inlineFocus) Release()     {}
func (inlineFocus) Locked() bool { return false }

// NewInlineFocus returns a controller that never locks
func NewInlineFocus() FocusController {
	return inlineFocus{}
}
