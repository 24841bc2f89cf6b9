package surface

// Stack is the ordered collection of live surface ids. Order is push
// order, which drives back-navigation; render order additionally respects
// each surface's z-order, so a HUD can sit low in the stack yet draw on
// top.
type Stack struct {
	ids []string
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends an id. The caller guarantees uniqueness; the manager checks
// for duplicates before any id reaches the stack.
func (st *Stack) Push(id string) {
	st.ids = append(st.ids, id)
}

// Pop removes and returns the top id.
func (st *Stack) Pop() (string, bool) {
	if len(st.ids) == 0 {
		return "", false
	}
	i := len(st.ids) - 1
	id := st.ids[i]
	st.ids[i] = ""
	st.ids = st.ids[:i]
	return id, true
}

// Top returns the most recently pushed id without removing it.
func (st *Stack) Top() (string, bool) {
	if len(st.ids) == 0 {
		return "", false
	}
	return st.ids[len(st.ids)-1], true
}

// Remove deletes id wherever it sits, preserving the order of the rest.
func (st *Stack) Remove(id string) bool {
	for i, have := range st.ids {
		if have == id {
			copy(st.ids[i:], st.ids[i+1:])
			st.ids[len(st.ids)-1] = ""
			st.ids = st.ids[:len(st.ids)-1]
			return true
		}
	}
	return false
}

// Contains reports whether id is on the stack.
func (st *Stack) Contains(id string) bool {
	for _, have := range st.ids {
		if have == id {
			return true
		}
	}
	return false
}

// Len returns the stack depth.
func (st *Stack) Len() int {
	return len(st.ids)
}

// IDs returns a copy of the stack bottom-to-top.
func (st *Stack) IDs() []string {
	out := make([]string, len(st.ids))
	copy(out, st.ids)
	return out
}

// ForEach visits ids bottom-to-top.
func (st *Stack) ForEach(f func(id string)) {
	for _, id := range st.ids {
		f(id)
	}
}
