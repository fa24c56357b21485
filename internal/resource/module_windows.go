//go:build windows

package resource

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

// Module loads resources from a PE image mapped into the process.
type Module struct {
	handle windows.Handle
	owned  bool
}

// Self returns the loader for the running executable.
func Self() *Module {
	return &Module{}
}

// OpenModule maps path as a data file so its resources can be read without
// running any of its code. Close releases it.
func OpenModule(path string) (*Module, error) {
	h, err := windows.LoadLibraryEx(path, 0, windows.LOAD_LIBRARY_AS_DATAFILE|windows.LOAD_LIBRARY_AS_IMAGE_RESOURCE)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}

	return &Module{handle: h, owned: true}, nil
}

// Close unloads a module opened with OpenModule.
func (m *Module) Close() error {
	if !m.owned || m.handle == 0 {
		return nil
	}

	err := windows.FreeLibrary(m.handle)
	m.handle = 0
	return err
}

// idPtr returns the LPCWSTR form of id. The returned slice must stay
// reachable until the call using the pointer returns.
func idPtr(id ID) (uintptr, []uint16, error) {
	if !id.Valid() {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if id.IsInt() {
		return uintptr(id.num), nil, nil
	}

	s, err := windows.UTF16FromString(id.name)
	if err != nil {
		return 0, nil, err
	}

	return uintptr(unsafe.Pointer(&s[0])), s, nil
}

func (m *Module) find(name, typ ID) (uintptr, error) {
	namePtr, nameBuf, err := idPtr(name)
	if err != nil {
		return 0, err
	}

	typPtr, typBuf, err := idPtr(typ)
	if err != nil {
		return 0, err
	}

	res := win32.FindResource(m.handle, namePtr, typPtr)
	runtime.KeepAlive(nameBuf)
	runtime.KeepAlive(typBuf)

	if res == 0 {
		return 0, fmt.Errorf("%s/%s: %w", typ, name, ErrNotFound)
	}

	return res, nil
}

func (m *Module) Exists(name, typ ID) bool {
	_, err := m.Load(name, typ)
	return err == nil
}

func (m *Module) Load(name, typ ID) ([]byte, error) {
	res, err := m.find(name, typ)
	if err != nil {
		return nil, err
	}

	data, err := win32.LoadResourceBytes(m.handle, res)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w: %w", typ, name, ErrNotFound, err)
	}

	return data, nil
}
