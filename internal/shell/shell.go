// Package shell tracks which section of the page is showing.
package shell

import "sync"

// Tab names one section of the page.
type Tab string

const (
	TabVoce     Tab = "voce"
	TabAgente   Tab = "agente"
	TabMomentos Tab = "momentos"
)

// Default is shown on first load and whenever an unknown tab is requested.
const Default = TabVoce

var all = []Tab{TabVoce, TabAgente, TabMomentos}

// Tabs lists the sections in navigation order.
func Tabs() []Tab {
	return append([]Tab(nil), all...)
}

// Parse maps a tab name to its Tab, falling back to Default.
func Parse(name string) Tab {
	for _, t := range all {
		if string(t) == name {
			return t
		}
	}
	return Default
}

// Shell holds the single active tab.
type Shell struct {
	mu sync.RWMutex
	// selectMu keeps onChange calls in the same order as the selections
	selectMu sync.Mutex
	current  Tab
	onChange func(Tab)
}

// New starts on Default.
func New() *Shell {
	return &Shell{current: Default}
}

// Current returns the active tab.
func (s *Shell) Current() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Select switches the active section and returns it.
func (s *Shell) Select(name string) Tab {
	t := Parse(name)

	s.selectMu.Lock()
	defer s.selectMu.Unlock()

	s.mu.Lock()
	changed := s.current != t
	s.current = t
	fn := s.onChange
	s.mu.Unlock()

	if changed && fn != nil {
		fn(t)
	}
	return t
}

// OnChange sets the callback run after the active tab changes.
func (s *Shell) OnChange(fn func(Tab)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}
