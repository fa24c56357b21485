package process_test

import (
	"context"
	"fmt"

	"github.com/Norgate-AV/winutilz/internal/process"
)

type fakeBackend struct {
	calls     []string
	privErr   error
	openErr   error
	closeErr  error
	opErr     error
	remote    *fakeRemote
	exitCode  uint32
	window    uintptr
	lastOpts  process.RunOptions
	lastKill  uint32
	elevated  bool
	openedPID uint32
	access    uint32
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) AdjustPrivilege(p process.Privilege, enable bool) (bool, error) {
	f.record("privilege %s %t", p, enable)
	return false, f.privErr
}

func (f *fakeBackend) OpenProcess(pid, access uint32) (process.Handle, error) {
	f.record("open %d", pid)
	f.openedPID, f.access = pid, access
	if f.openErr != nil {
		return 0, f.openErr
	}

	return process.Handle(0x100 + pid), nil
}

func (f *fakeBackend) CloseHandle(h process.Handle) error {
	f.record("close %#x", uintptr(h))
	return f.closeErr
}

func (f *fakeBackend) Suspend(h process.Handle) error {
	f.record("suspend %#x", uintptr(h))
	return f.opErr
}

func (f *fakeBackend) Resume(h process.Handle) error {
	f.record("resume %#x", uintptr(h))
	return f.opErr
}

func (f *fakeBackend) Terminate(h process.Handle, code uint32) error {
	f.record("terminate %#x", uintptr(h))
	f.lastKill = code
	return f.opErr
}

func (f *fakeBackend) Remote(process.Handle) process.Remote {
	return f.remote
}

func (f *fakeBackend) Run(ctx context.Context, cmdline string, opts process.RunOptions) (uint32, error) {
	f.record("run %s", cmdline)
	f.lastOpts = opts

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return f.exitCode, f.opErr
}

func (f *fakeBackend) RunElevated(file, args, dir string) (uint32, error) {
	f.record("runas %s %s", file, args)
	return 4242, f.opErr
}

func (f *fakeBackend) Elevated() (bool, error) {
	return f.elevated, nil
}

func (f *fakeBackend) CurrentProcessWindow() uintptr {
	return f.window
}

// fakeRemote hands out sequential addresses and records every call.
type fakeRemote struct {
	calls      []string
	next       uintptr
	memory     map[uintptr][]byte
	allocErrAt int
	shortWrite bool
	freeErr    error
	startErr   error
	exitCode   uint32
	closeErr   error
	started    [2]uintptr
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{next: 0x1000, memory: map[uintptr][]byte{}, allocErrAt: -1}
}

func (r *fakeRemote) Alloc(size int, executable bool) (uintptr, error) {
	if r.allocErrAt == len(r.memory) {
		return 0, errRemote
	}

	addr := r.next
	r.next += 0x1000
	r.memory[addr] = make([]byte, size)
	r.calls = append(r.calls, fmt.Sprintf("alloc %d %t", size, executable))

	return addr, nil
}

func (r *fakeRemote) Write(addr uintptr, data []byte) (int, error) {
	n := copy(r.memory[addr], data)
	if r.shortWrite {
		n--
	}

	r.calls = append(r.calls, fmt.Sprintf("write %#x %d", addr, n))

	return n, nil
}

func (r *fakeRemote) Free(addr uintptr) error {
	r.calls = append(r.calls, fmt.Sprintf("free %#x", addr))
	return r.freeErr
}

func (r *fakeRemote) StartThread(start, param uintptr) (process.Thread, error) {
	if r.startErr != nil {
		return nil, r.startErr
	}

	r.started = [2]uintptr{start, param}
	r.calls = append(r.calls, "start")

	return fakeThread{r}, nil
}

type fakeThread struct{ r *fakeRemote }

func (t fakeThread) Wait() error {
	t.r.calls = append(t.r.calls, "wait")
	return nil
}

func (t fakeThread) ExitCode() (uint32, error) {
	return t.r.exitCode, nil
}

func (t fakeThread) Close() error {
	t.r.calls = append(t.r.calls, "close thread")
	return t.r.closeErr
}
