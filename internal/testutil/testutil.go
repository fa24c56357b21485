// Package testutil provides test utilities and mock implementations.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates name under dir with data and returns its path
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	return path
}

// CursorFile returns a minimal static cursor (.cur) header with one image
func CursorFile() []byte {
	data := make([]byte, 22)
	binary.LittleEndian.PutUint16(data[0:], 0) // reserved
	binary.LittleEndian.PutUint16(data[2:], 2) // type: cursor
	binary.LittleEndian.PutUint16(data[4:], 1) // image count
	return data
}

// AnimatedCursorFile returns a minimal animated cursor (.ani) RIFF header
func AnimatedCursorFile() []byte {
	data := []byte("RIFF\x04\x00\x00\x00ACON")
	return append(data, make([]byte, 16)...)
}
