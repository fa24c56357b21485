//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// BrandingFormatString expands branding tokens such as %WINDOWS_LONG%.
func BrandingFormatString(format string) (string, error) {
	if err := procBrandingFormatString.Find(); err != nil {
		return "", err
	}

	ptr, err := windows.UTF16PtrFromString(format)
	if err != nil {
		return "", err
	}

	ret, _, callErr := procBrandingFormatString.Call(uintptr(unsafe.Pointer(ptr)))
	if ret == 0 {
		return "", lastError("BrandingFormatString", callErr)
	}
	defer GlobalFree(ret)

	return windows.UTF16PtrToString((*uint16)(pointerAt(ret))), nil
}

// InternetGetConnectedState reports whether WinINet considers the system online.
func InternetGetConnectedState() bool {
	var flags uint32

	ret, _, _ := procInternetGetConnectedState.Call(uintptr(unsafe.Pointer(&flags)), 0)
	return ret != 0
}

// Resource loading.

// FindResource locates a resource in module. name and typ are either
// pointers to UTF-16 strings or MAKEINTRESOURCE integer values.
func FindResource(module windows.Handle, name, typ uintptr) uintptr {
	ret, _, _ := procFindResourceW.Call(uintptr(module), name, typ)
	return ret
}

// LoadResourceBytes copies the bytes of a resource located by FindResource.
func LoadResourceBytes(module windows.Handle, res uintptr) ([]byte, error) {
	size, _, err := procSizeofResource.Call(uintptr(module), res)
	if size == 0 {
		return nil, lastError("SizeofResource", err)
	}

	h, _, err := procLoadResource.Call(uintptr(module), res)
	if h == 0 {
		return nil, lastError("LoadResource", err)
	}

	ptr, _, err := procLockResource.Call(h)
	if ptr == 0 {
		return nil, lastError("LockResource", err)
	}

	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(pointerAt(ptr)), size))

	return out, nil
}
