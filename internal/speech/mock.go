// Public API to easy create speech stubs for test code.

package speech

import "sync"

type Mock struct {
	mu        sync.Mutex
	LoadErr   error
	OutputErr error
	texts     []string
	unloaded  bool
}

var _ Outputer = &Mock{} // compile-time interface test

func (m *Mock) Load() error { return m.LoadErr }

func (m *Mock) Output(text string, interrupt bool) error {
	if m.OutputErr != nil {
		return m.OutputErr
	}
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()
	return nil
}

func (m *Mock) Unload() { m.unloaded = true }

func (m *Mock) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}

func (m *Mock) Unloaded() bool { return m.unloaded }
