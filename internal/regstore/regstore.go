// Package regstore reads and writes per-user registry values.
package regstore

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Norgate-AV/winutilz/internal/interfaces"
)

// ErrNotExist is returned when a key or value is missing.
var ErrNotExist = errors.New("registry value does not exist")

// Store is the subset of HKEY_CURRENT_USER access the wrappers need.
// Keys are backslash-separated paths relative to HKCU.
type Store = interfaces.Registry

// Kind identifies how a Memory value was stored.
type Kind int

const (
	KindString Kind = iota + 1
	KindExpandString
	KindDWord
)

// Value is a stored Memory entry.
type Value struct {
	Kind   Kind
	String string
	DWord  uint32
}

// Memory is an in-process Store. Key and value names are case-insensitive,
// as in the real registry.
type Memory struct {
	mu     sync.RWMutex
	values map[string]Value
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]Value)}
}

func memoryKey(key, name string) string {
	return strings.ToLower(strings.Trim(key, `\`) + `\\` + name)
}

func (m *Memory) GetString(key, name string) (string, error) {
	v, ok := m.Lookup(key, name)
	if !ok {
		return "", fmt.Errorf("%s\\%s: %w", key, name, ErrNotExist)
	}

	if v.Kind == KindDWord {
		return "", fmt.Errorf("%s\\%s: value is a DWORD", key, name)
	}

	return v.String, nil
}

func (m *Memory) SetString(key, name, value string) error {
	m.put(key, name, Value{Kind: KindString, String: value})
	return nil
}

func (m *Memory) SetExpandString(key, name, value string) error {
	m.put(key, name, Value{Kind: KindExpandString, String: value})
	return nil
}

func (m *Memory) GetInteger(key, name string) (uint64, error) {
	v, ok := m.Lookup(key, name)
	if !ok {
		return 0, fmt.Errorf("%s\\%s: %w", key, name, ErrNotExist)
	}

	if v.Kind != KindDWord {
		return 0, fmt.Errorf("%s\\%s: value is not an integer", key, name)
	}

	return uint64(v.DWord), nil
}

func (m *Memory) SetDWord(key, name string, value uint32) error {
	m.put(key, name, Value{Kind: KindDWord, DWord: value})
	return nil
}

// Lookup returns the raw stored value.
func (m *Memory) Lookup(key, name string) (Value, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[memoryKey(key, name)]
	return v, ok
}

// Len returns the number of stored values.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.values)
}

func (m *Memory) put(key, name string, v Value) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[memoryKey(key, name)] = v
}
