package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Norgate-AV/winutilz/internal/envpath"
	"github.com/Norgate-AV/winutilz/internal/regstore"
	"github.com/Norgate-AV/winutilz/internal/resource"
)

// LogEntry is one recorded MockLogger call
type LogEntry struct {
	Level string
	Msg   string
	Args  []any
}

// MockLogger records every message for verification
type MockLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

func NewMockLogger() *MockLogger {
	return &MockLogger{Entries: []LogEntry{}}
}

func (m *MockLogger) record(level, msg string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Entries = append(m.Entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (m *MockLogger) Trace(msg string, args ...any) { m.record("TRACE", msg, args) }
func (m *MockLogger) Debug(msg string, args ...any) { m.record("DEBUG", msg, args) }
func (m *MockLogger) Info(msg string, args ...any)  { m.record("INFO", msg, args) }
func (m *MockLogger) Warn(msg string, args ...any)  { m.record("WARN", msg, args) }
func (m *MockLogger) Error(msg string, args ...any) { m.record("ERROR", msg, args) }
func (m *MockLogger) Close()                        {}
func (m *MockLogger) GetLogPath() string            { return "" }

// Messages returns the recorded messages at level
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}

	return out
}

// HasMessage reports whether any entry contains substr
func (m *MockLogger) HasMessage(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.Entries {
		if strings.Contains(e.Msg, substr) {
			return true
		}
	}

	return false
}

// MockRegistry is an in-memory registry that can be told to fail writes
type MockRegistry struct {
	*regstore.Memory
	WriteError error
	Writes     []string
}

func NewMockRegistry() *MockRegistry {
	return &MockRegistry{Memory: regstore.NewMemory(), Writes: []string{}}
}

func (m *MockRegistry) WithWriteError(err error) *MockRegistry {
	m.WriteError = err
	return m
}

func (m *MockRegistry) WithString(key, name, value string) *MockRegistry {
	_ = m.Memory.SetString(key, name, value)
	return m
}

func (m *MockRegistry) SetString(key, name, value string) error {
	m.Writes = append(m.Writes, key+`\`+name)
	if m.WriteError != nil {
		return m.WriteError
	}

	return m.Memory.SetString(key, name, value)
}

func (m *MockRegistry) SetExpandString(key, name, value string) error {
	m.Writes = append(m.Writes, key+`\`+name)
	if m.WriteError != nil {
		return m.WriteError
	}

	return m.Memory.SetExpandString(key, name, value)
}

func (m *MockRegistry) SetDWord(key, name string, value uint32) error {
	m.Writes = append(m.Writes, key+`\`+name)
	if m.WriteError != nil {
		return m.WriteError
	}

	return m.Memory.SetDWord(key, name, value)
}

// DownloadCall records a MockDownloader request
type DownloadCall struct {
	URL  string
	Path string
}

// MockDownloader serves canned bodies by URL and writes them to disk
type MockDownloader struct {
	Bodies map[string][]byte
	Err    error
	Calls  []DownloadCall
}

func NewMockDownloader() *MockDownloader {
	return &MockDownloader{Bodies: map[string][]byte{}, Calls: []DownloadCall{}}
}

func (m *MockDownloader) WithBody(url string, body []byte) *MockDownloader {
	m.Bodies[url] = body
	return m
}

func (m *MockDownloader) WithError(err error) *MockDownloader {
	m.Err = err
	return m
}

func (m *MockDownloader) DownloadFile(ctx context.Context, url, path string) (int64, error) {
	path = envpath.Expand(path)
	m.Calls = append(m.Calls, DownloadCall{URL: url, Path: path})

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if m.Err != nil {
		return 0, m.Err
	}

	body, ok := m.Bodies[url]
	if !ok {
		return 0, fmt.Errorf("GET %s: unexpected status 404", url)
	}

	if err := os.WriteFile(path, body, 0o644); err != nil {
		return 0, err
	}

	return int64(len(body)), nil
}

// MockResourceLoader serves resources from a map keyed by "type/name"
type MockResourceLoader struct {
	Resources map[string][]byte
	Loads     []string
}

func NewMockResourceLoader() *MockResourceLoader {
	return &MockResourceLoader{Resources: map[string][]byte{}, Loads: []string{}}
}

func resourceKey(name, typ resource.ID) string {
	return typ.String() + "/" + name.String()
}

func (m *MockResourceLoader) WithResource(name, typ resource.ID, data []byte) *MockResourceLoader {
	m.Resources[resourceKey(name, typ)] = data
	return m
}

func (m *MockResourceLoader) Exists(name, typ resource.ID) bool {
	return len(m.Resources[resourceKey(name, typ)]) > 0
}

func (m *MockResourceLoader) Load(name, typ resource.ID) ([]byte, error) {
	key := resourceKey(name, typ)
	m.Loads = append(m.Loads, key)

	data := m.Resources[key]
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", key, resource.ErrNotFound)
	}

	return data, nil
}

// ErrMock is a generic failure for injecting errors
var ErrMock = errors.New("mock failure")
