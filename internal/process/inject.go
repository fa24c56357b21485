package process

import (
	"errors"
	"fmt"
	"io"
)

// ErrEmptyCode is returned by Inject when there is nothing to run.
var ErrEmptyCode = errors.New("no code to inject")

// RemoteExitError reports a remote thread that finished with a non-zero code.
type RemoteExitError struct {
	Code uint32
}

func (e *RemoteExitError) Error() string {
	return fmt.Sprintf("remote thread exited with code %d (%#x)", e.Code, e.Code)
}

// Remote is the memory and thread API of another process.
type Remote interface {
	// Alloc commits size bytes, executable or read/write.
	Alloc(size int, executable bool) (uintptr, error)
	Write(addr uintptr, data []byte) (int, error)
	Free(addr uintptr) error
	StartThread(start, param uintptr) (Thread, error)
}

// Thread is a remote thread started by Remote.StartThread.
type Thread interface {
	Wait() error
	ExitCode() (uint32, error)
	Close() error
}

// inject copies code (and param when non-empty) into r, runs code on a new
// thread with the param address as its argument and waits for it. Every
// region it allocated is released before it returns.
func inject(r Remote, code, param []byte) (err error) {
	if len(code) == 0 {
		return ErrEmptyCode
	}

	codeAddr, err := allocAndWrite(r, code, true)
	if err != nil {
		return fmt.Errorf("could not copy code: %w", err)
	}
	defer func() {
		err = errors.Join(err, free(r, codeAddr))
	}()

	var paramAddr uintptr
	if len(param) > 0 {
		paramAddr, err = allocAndWrite(r, param, false)
		if err != nil {
			return fmt.Errorf("could not copy parameter: %w", err)
		}
		defer func() {
			err = errors.Join(err, free(r, paramAddr))
		}()
	}

	thread, err := r.StartThread(codeAddr, paramAddr)
	if err != nil {
		return fmt.Errorf("could not start remote thread: %w", err)
	}
	defer func() {
		if cerr := thread.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("could not close remote thread: %w", cerr))
		}
	}()

	if err = thread.Wait(); err != nil {
		return fmt.Errorf("could not wait for remote thread: %w", err)
	}

	code32, err := thread.ExitCode()
	if err != nil {
		return fmt.Errorf("could not get remote thread exit code: %w", err)
	}

	if code32 != 0 {
		return &RemoteExitError{Code: code32}
	}

	return nil
}

func allocAndWrite(r Remote, data []byte, executable bool) (uintptr, error) {
	addr, err := r.Alloc(len(data), executable)
	if err != nil {
		return 0, err
	}

	n, err := r.Write(addr, data)
	if err == nil && n < len(data) {
		err = fmt.Errorf("%w: wrote %d of %d bytes", io.ErrShortWrite, n, len(data))
	}

	if err != nil {
		return 0, errors.Join(err, free(r, addr))
	}

	return addr, nil
}

func free(r Remote, addr uintptr) error {
	if err := r.Free(addr); err != nil {
		return fmt.Errorf("could not free remote memory at %#x: %w", addr, err)
	}

	return nil
}
