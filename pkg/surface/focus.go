package surface

// FocusManager owns the single current-focus reference and a bounded
// history used to restore focus when surfaces close. History is restore
// material only; ownership is never re-derived from it.
type FocusManager struct {
	current string
	history []string
	depth   int
	holder  string // modal lock holder, "" when unlocked
}

// DefaultFocusHistoryDepth bounds the restore history when the manager's
// options leave it unset.
const DefaultFocusHistoryDepth = 16

// NewFocusManager creates a focus manager with the given history depth.
func NewFocusManager(depth int) *FocusManager {
	if depth <= 0 {
		depth = DefaultFocusHistoryDepth
	}
	return &FocusManager{depth: depth}
}

// Current returns the focused surface id, or "".
func (f *FocusManager) Current() string {
	return f.current
}

// Locked reports whether a modal lock is held.
func (f *FocusManager) Locked() bool {
	return f.holder != ""
}

// LockHolder returns the lock holder id, or "".
func (f *FocusManager) LockHolder() string {
	return f.holder
}

// SetFocus transfers focus to id, pushing the previous focus onto the
// history. While locked, only the holder may take focus.
func (f *FocusManager) SetFocus(id string) error {
	if f.holder != "" && id != f.holder {
		return &FocusLockedError{Holder: f.holder, Target: id}
	}
	if id == f.current {
		return nil
	}
	if f.current != "" {
		f.push(f.current)
	}
	f.current = id
	return nil
}

// Restore pops the history until it finds an id for which alive returns
// true, then focuses it. Several surfaces closing out of order leave stale
// entries; those are skipped and dropped. Returns the new focus, "" if the
// history is exhausted.
func (f *FocusManager) Restore(alive func(id string) bool) string {
	for len(f.history) > 0 {
		i := len(f.history) - 1
		id := f.history[i]
		f.history[i] = ""
		f.history = f.history[:i]
		if id != f.current && alive(id) {
			f.current = id
			return id
		}
	}
	f.current = ""
	return ""
}

// Lock grants holder exclusive focus. Re-locking by the same holder is a
// no-op; a competing lock fails.
func (f *FocusManager) Lock(holder string) error {
	if f.holder != "" && f.holder != holder {
		return &FocusLockedError{Holder: f.holder, Target: holder}
	}
	f.holder = holder
	return nil
}

// Unlock releases the lock. Only the holder may unlock; unlocking when no
// lock is held is also a caller mistake.
func (f *FocusManager) Unlock(holder string) error {
	if f.holder != holder {
		return &NotLockHolderError{Holder: f.holder, Caller: holder}
	}
	f.holder = ""
	return nil
}

// Drop clears any reference to a closing surface: focus, lock, and
// history entries. The caller restores focus separately.
func (f *FocusManager) Drop(id string) {
	if f.current == id {
		f.current = ""
	}
	if f.holder == id {
		f.holder = ""
	}
	kept := f.history[:0]
	for _, have := range f.history {
		if have != id {
			kept = append(kept, have)
		}
	}
	for i := len(kept); i < len(f.history); i++ {
		f.history[i] = ""
	}
	f.history = kept
}

// HistoryLen returns the number of restore entries.
func (f *FocusManager) HistoryLen() int {
	return len(f.history)
}

func (f *FocusManager) push(id string) {
	if len(f.history) >= f.depth {
		// Silently drop the oldest entry.
		copy(f.history, f.history[1:])
		f.history = f.history[:len(f.history)-1]
	}
	f.history = append(f.history, id)
}
