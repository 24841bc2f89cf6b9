package surface

import "fmt"

// The error taxonomy below covers caller mistakes only. Each is surfaced
// synchronously to the calling frame; the core never recovers silently
// because hiding them would corrupt stack/focus invariants. Closing an
// unknown id is deliberately not an error (see Manager.Close).

// DuplicateIDError reports a CreateAndShow with an id that is already
// registered and alive.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("surface id %q already registered", e.ID)
}

// InvalidVariantError reports an unknown variant tag or name.
type InvalidVariantError struct {
	Name string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("unknown surface variant %q", e.Name)
}

// FocusLockedError reports a focus transfer rejected by a modal lock.
type FocusLockedError struct {
	Holder string
	Target string
}

func (e *FocusLockedError) Error() string {
	return fmt.Sprintf("focus locked by %q; cannot focus %q", e.Holder, e.Target)
}

// NotLockHolderError reports an unlock attempt by anyone but the holder.
type NotLockHolderError struct {
	Holder string
	Caller string
}

func (e *NotLockHolderError) Error() string {
	if e.Holder == "" {
		return fmt.Sprintf("focus is not locked; %q cannot unlock", e.Caller)
	}
	return fmt.Sprintf("focus locked by %q; %q cannot unlock", e.Holder, e.Caller)
}

// DoubleReleaseError reports a second release of the same pooled instance.
type DoubleReleaseError struct {
	Tag string
}

func (e *DoubleReleaseError) Error() string {
	return fmt.Sprintf("surface instance %s released twice", e.Tag)
}
