//go:build windows

package process

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/timeouts"
	"github.com/Norgate-AV/winutilz/internal/win32"
)

type systemBackend struct{}

func (systemBackend) AdjustPrivilege(p Privilege, enable bool) (bool, error) {
	return win32.RtlAdjustPrivilege(uint32(p), enable)
}

func (systemBackend) OpenProcess(pid, access uint32) (Handle, error) {
	h, err := windows.OpenProcess(access, false, pid)
	if err != nil {
		return 0, err
	}

	return Handle(h), nil
}

func (systemBackend) CloseHandle(h Handle) error {
	return windows.CloseHandle(windows.Handle(h))
}

func (systemBackend) Suspend(h Handle) error {
	return win32.NtSuspendProcess(windows.Handle(h))
}

func (systemBackend) Resume(h Handle) error {
	return win32.NtResumeProcess(windows.Handle(h))
}

func (systemBackend) Terminate(h Handle, exitCode uint32) error {
	return windows.TerminateProcess(windows.Handle(h), exitCode)
}

func (systemBackend) Remote(h Handle) Remote {
	return remoteProcess{process: windows.Handle(h)}
}

func (systemBackend) Run(ctx context.Context, cmdline string, opts RunOptions) (uint32, error) {
	// CreateProcessW may modify the command line buffer in place.
	command, err := windows.UTF16FromString(cmdline)
	if err != nil {
		return 0, err
	}

	var dir *uint16
	if opts.Dir != "" {
		if dir, err = windows.UTF16PtrFromString(opts.Dir); err != nil {
			return 0, err
		}
	}

	si := windows.StartupInfo{Cb: uint32(unsafe.Sizeof(windows.StartupInfo{}))}

	var flags uint32
	if opts.Silent {
		si.Flags |= windows.STARTF_USESHOWWINDOW
		si.ShowWindow = windows.SW_HIDE
		flags |= windows.CREATE_NO_WINDOW
	}

	var pi windows.ProcessInformation
	if err := windows.CreateProcess(nil, &command[0], nil, nil, false, flags, nil, dir, &si, &pi); err != nil {
		return 0, err
	}
	defer windows.CloseHandle(pi.Thread)
	defer windows.CloseHandle(pi.Process)

	if err := waitProcess(ctx, pi.Process); err != nil {
		return 0, err
	}

	var code uint32
	if err := windows.GetExitCodeProcess(pi.Process, &code); err != nil {
		return 0, err
	}

	return code, nil
}

// waitProcess polls so that cancellation can terminate the child.
func waitProcess(ctx context.Context, process windows.Handle) error {
	poll := uint32(timeouts.ProcessPollInterval.Milliseconds())

	for {
		event, err := windows.WaitForSingleObject(process, poll)
		switch event {
		case windows.WAIT_OBJECT_0:
			return nil
		case uint32(windows.WAIT_TIMEOUT):
		default:
			return fmt.Errorf("WaitForSingleObject: %w", err)
		}

		select {
		case <-ctx.Done():
			_ = windows.TerminateProcess(process, ExitCodeAborted)
			_, _ = windows.WaitForSingleObject(process, uint32(timeouts.ProcessKillWait.Milliseconds()))
			return ctx.Err()
		default:
		}
	}
}

func (systemBackend) RunElevated(file, args, dir string) (uint32, error) {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return 0, err
	}

	filePtr, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return 0, err
	}

	var argsPtr, dirPtr *uint16
	if args != "" {
		if argsPtr, err = windows.UTF16PtrFromString(args); err != nil {
			return 0, err
		}
	}

	if dir != "" {
		if dirPtr, err = windows.UTF16PtrFromString(dir); err != nil {
			return 0, err
		}
	}

	sei := win32.SHELLEXECUTEINFO{
		FMask:        win32.SEE_MASK_NOCLOSEPROCESS,
		LpVerb:       verb,
		LpFile:       filePtr,
		LpParameters: argsPtr,
		LpDirectory:  dirPtr,
		NShow:        windows.SW_SHOWNORMAL,
	}

	if err := win32.ShellExecuteEx(&sei); err != nil {
		return 0, err
	}

	if sei.HProcess == 0 {
		return 0, fmt.Errorf("ShellExecuteEx returned no process handle")
	}
	defer windows.CloseHandle(sei.HProcess)

	return windows.GetProcessId(sei.HProcess)
}

func (systemBackend) Elevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}

func (systemBackend) CurrentProcessWindow() uintptr {
	return uintptr(win32.CurrentProcessWindow())
}

type remoteProcess struct {
	process windows.Handle
}

func (r remoteProcess) Alloc(size int, executable bool) (uintptr, error) {
	protect := uint32(win32.PAGE_READWRITE)
	if executable {
		protect = win32.PAGE_EXECUTE_READWRITE
	}

	return win32.VirtualAllocEx(r.process, uintptr(size), protect)
}

func (r remoteProcess) Write(addr uintptr, data []byte) (int, error) {
	var n uintptr
	err := windows.WriteProcessMemory(r.process, addr, &data[0], uintptr(len(data)), &n)
	return int(n), err
}

func (r remoteProcess) Free(addr uintptr) error {
	return win32.VirtualFreeEx(r.process, addr)
}

func (r remoteProcess) StartThread(start, param uintptr) (Thread, error) {
	h, err := win32.CreateRemoteThread(r.process, start, param)
	if err != nil {
		return nil, err
	}

	return remoteThread(h), nil
}

type remoteThread windows.Handle

func (t remoteThread) Wait() error {
	event, err := windows.WaitForSingleObject(windows.Handle(t), windows.INFINITE)
	if event != windows.WAIT_OBJECT_0 {
		return fmt.Errorf("WaitForSingleObject: %w", err)
	}

	return nil
}

func (t remoteThread) ExitCode() (uint32, error) {
	return win32.GetExitCodeThread(windows.Handle(t))
}

func (t remoteThread) Close() error {
	return windows.CloseHandle(windows.Handle(t))
}
