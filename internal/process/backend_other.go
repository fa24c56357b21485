//go:build !windows

package process

import (
	"context"

	"github.com/Norgate-AV/winutilz/internal/platform"
)

type systemBackend struct{}

func (systemBackend) AdjustPrivilege(Privilege, bool) (bool, error) {
	return false, platform.Unsupported("adjust privilege")
}

func (systemBackend) OpenProcess(uint32, uint32) (Handle, error) {
	return 0, platform.Unsupported("open process")
}

func (systemBackend) CloseHandle(Handle) error {
	return nil
}

func (systemBackend) Suspend(Handle) error {
	return platform.Unsupported("suspend process")
}

func (systemBackend) Resume(Handle) error {
	return platform.Unsupported("resume process")
}

func (systemBackend) Terminate(Handle, uint32) error {
	return platform.Unsupported("terminate process")
}

func (systemBackend) Remote(Handle) Remote {
	return unsupportedRemote{}
}

func (systemBackend) Run(context.Context, string, RunOptions) (uint32, error) {
	return 0, platform.Unsupported("run command")
}

func (systemBackend) RunElevated(string, string, string) (uint32, error) {
	return 0, platform.Unsupported("run elevated")
}

func (systemBackend) Elevated() (bool, error) {
	return false, platform.Unsupported("query elevation")
}

func (systemBackend) CurrentProcessWindow() uintptr {
	return 0
}

type unsupportedRemote struct{}

func (unsupportedRemote) Alloc(int, bool) (uintptr, error) {
	return 0, platform.Unsupported("allocate remote memory")
}

func (unsupportedRemote) Write(uintptr, []byte) (int, error) {
	return 0, platform.Unsupported("write remote memory")
}

func (unsupportedRemote) Free(uintptr) error {
	return nil
}

func (unsupportedRemote) StartThread(uintptr, uintptr) (Thread, error) {
	return nil, platform.Unsupported("create remote thread")
}
