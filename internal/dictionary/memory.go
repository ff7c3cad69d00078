package dictionary

import (
	"context"
	"sync"
)

var _ Oracle = (*Memory)(nil)

// Memory is a set-backed oracle.
type Memory struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{} // lang -> words
}

func NewMemory() *Memory {
	return &Memory{sets: make(map[string]map[string]struct{})}
}

// Add registers words for lang. Invalid tags are ignored.
func (m *Memory) Add(lang string, list ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range list {
		word, l, err := key(w, lang)
		if err != nil || word == "" {
			continue
		}
		set, ok := m.sets[l]
		if !ok {
			set = make(map[string]struct{}, len(list))
			m.sets[l] = set
		}
		set[word] = struct{}{}
	}
}

func (m *Memory) IsValidWord(_ context.Context, word, lang string) (bool, error) {
	word, lang, err := key(word, lang)
	if err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sets[lang][word]
	return ok, nil
}

// Len reports how many words are known for lang.
func (m *Memory) Len(lang string) int {
	_, l, err := key("", lang)
	if err != nil {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sets[l])
}
