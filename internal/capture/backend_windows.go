//go:build windows

package capture

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/win32"
)

type systemBackend struct{}

func (systemBackend) DesktopWindow() uintptr {
	return uintptr(win32.GetDesktopWindow())
}

func (systemBackend) WindowSize(hwnd uintptr) (int, int, error) {
	r, err := win32.GetWindowRect(windows.HWND(hwnd))
	if err != nil {
		return 0, 0, err
	}

	return int(r.Width()), int(r.Height()), nil
}

func (systemBackend) Render(hwnd uintptr, width, height int, strategy Strategy) (*imagedata.ImageData, error) {
	h := windows.HWND(hwnd)

	screen, err := win32.GetDC(0)
	if err != nil {
		return nil, err
	}
	defer win32.ReleaseDC(0, screen)

	mem, err := win32.CreateCompatibleDC(screen)
	if err != nil {
		return nil, err
	}
	defer win32.DeleteDC(mem)

	bmi := win32.TopDown32(int32(width), int32(height))
	bitmap, bits, err := win32.CreateDIBSection(mem, &bmi)
	if err != nil {
		return nil, err
	}
	defer win32.DeleteObject(bitmap)

	previous := win32.SelectObject(mem, bitmap)
	defer win32.SelectObject(mem, previous)

	switch strategy {
	case StrategyPrintFullContent:
		err = win32.PrintWindow(h, mem, win32.PW_RENDERFULLCONTENT)
	case StrategyPrintWindow:
		err = win32.PrintWindow(h, mem, 0)
	case StrategyBitBlt:
		err = bitBlt(h, mem, width, height)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidStrategy, strategy)
	}
	if err != nil {
		return nil, err
	}

	img, err := imagedata.New(width, height)
	if err != nil {
		return nil, err
	}

	copy(img.Pix, unsafe.Slice((*byte)(bits), len(img.Pix)))

	return img, nil
}

func bitBlt(hwnd windows.HWND, dst windows.Handle, width, height int) error {
	src, err := win32.GetWindowDC(hwnd)
	if err != nil {
		return err
	}
	defer win32.ReleaseDC(hwnd, src)

	return win32.BitBlt(dst, 0, 0, int32(width), int32(height), src, 0, 0, win32.SRCCOPY)
}
