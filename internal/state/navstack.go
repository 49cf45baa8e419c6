package state

// NavEntry is one screen on the navigation stack.
type NavEntry struct {
	Screen string
	Params map[string]string
}

// NavStack is an explicit finite stack of screens with pure push/replace/pop
// operations. The bottom entry is the root screen and can never be popped.
type NavStack struct {
	entries []NavEntry
}

// NewNavStack creates a stack rooted at the given screen.
func NewNavStack(root string, params map[string]string) *NavStack {
	return &NavStack{entries: []NavEntry{{Screen: root, Params: cloneParams(params)}}}
}

// Push adds a screen on top of the stack.
func (s *NavStack) Push(screen string, params map[string]string) {
	s.entries = append(s.entries, NavEntry{Screen: screen, Params: cloneParams(params)})
}

// Replace swaps the top entry for a new screen, leaving depth unchanged.
func (s *NavStack) Replace(screen string, params map[string]string) {
	s.entries[len(s.entries)-1] = NavEntry{Screen: screen, Params: cloneParams(params)}
}

// Pop removes the top entry and returns the newly-current one. Popping the
// root is a no-op.
func (s *NavStack) Pop() NavEntry {
	if len(s.entries) > 1 {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return s.Current()
}

// Current returns the top entry.
func (s *NavStack) Current() NavEntry {
	return s.entries[len(s.entries)-1]
}

// MergeParams merges params into the current entry, overwriting existing keys
// and keeping the rest.
func (s *NavStack) MergeParams(params map[string]string) {
	top := &s.entries[len(s.entries)-1]
	if top.Params == nil {
		top.Params = make(map[string]string, len(params))
	}
	for k, v := range params {
		top.Params[k] = v
	}
}

// Depth returns the number of entries on the stack.
func (s *NavStack) Depth() int {
	return len(s.entries)
}

func cloneParams(params map[string]string) map[string]string {
	if params == nil {
		return nil
	}
	clone := make(map[string]string, len(params))
	for k, v := range params {
		clone[k] = v
	}
	return clone
}
