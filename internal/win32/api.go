//go:build windows

// Package win32 holds the raw DLL procedure table, constants and structures
// shared by the OS wrappers, plus a few typed helpers around them.
package win32

import (
	"golang.org/x/sys/windows"
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW      = user32.NewProc("SystemParametersInfoW")
	procGetSysColor                = user32.NewProc("GetSysColor")
	procSetSysColors               = user32.NewProc("SetSysColors")
	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procEmptyClipboard             = user32.NewProc("EmptyClipboard")
	procGetClipboardData           = user32.NewProc("GetClipboardData")
	procSetClipboardData           = user32.NewProc("SetClipboardData")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procEnumWindows                = user32.NewProc("EnumWindows")
	procGetWindowThreadProcessId   = user32.NewProc("GetWindowThreadProcessId")
	procGetWindow                  = user32.NewProc("GetWindow")
	procGetParent                  = user32.NewProc("GetParent")
	procGetAncestor                = user32.NewProc("GetAncestor")
	procDestroyWindow              = user32.NewProc("DestroyWindow")
	procIsWindow                   = user32.NewProc("IsWindow")
	procGetShellWindow             = user32.NewProc("GetShellWindow")
	procGetDesktopWindow           = user32.NewProc("GetDesktopWindow")
	procFindWindowW                = user32.NewProc("FindWindowW")
	procFindWindowExW              = user32.NewProc("FindWindowExW")
	procSendMessageW               = user32.NewProc("SendMessageW")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procGetClientRect              = user32.NewProc("GetClientRect")
	procMonitorFromWindow          = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW            = user32.NewProc("GetMonitorInfoW")
	procGetDC                      = user32.NewProc("GetDC")
	procGetWindowDC                = user32.NewProc("GetWindowDC")
	procReleaseDC                  = user32.NewProc("ReleaseDC")
	procPrintWindow                = user32.NewProc("PrintWindow")
	procLockWorkStation            = user32.NewProc("LockWorkStation")
	procExitWindowsEx              = user32.NewProc("ExitWindowsEx")
	procGetClassNameW              = user32.NewProc("GetClassNameW")
	procGetWindowTextW             = user32.NewProc("GetWindowTextW")
	gdi32                          = windows.NewLazySystemDLL("gdi32.dll")
	procCreateCompatibleDC         = gdi32.NewProc("CreateCompatibleDC")
	procCreateDIBSection           = gdi32.NewProc("CreateDIBSection")
	procSelectObject               = gdi32.NewProc("SelectObject")
	procDeleteObject               = gdi32.NewProc("DeleteObject")
	procDeleteDC                   = gdi32.NewProc("DeleteDC")
	procBitBlt                     = gdi32.NewProc("BitBlt")
	procGetDIBits                  = gdi32.NewProc("GetDIBits")
	procGetObjectW                 = gdi32.NewProc("GetObjectW")
	kernel32                       = windows.NewLazySystemDLL("kernel32.dll")
	procGlobalAlloc                = kernel32.NewProc("GlobalAlloc")
	procGlobalFree                 = kernel32.NewProc("GlobalFree")
	procGlobalLock                 = kernel32.NewProc("GlobalLock")
	procGlobalUnlock               = kernel32.NewProc("GlobalUnlock")
	procGlobalSize                 = kernel32.NewProc("GlobalSize")
	procFindResourceW              = kernel32.NewProc("FindResourceW")
	procSizeofResource             = kernel32.NewProc("SizeofResource")
	procLoadResource               = kernel32.NewProc("LoadResource")
	procLockResource               = kernel32.NewProc("LockResource")
	procGetACP                     = kernel32.NewProc("GetACP")
	procVirtualAllocEx             = kernel32.NewProc("VirtualAllocEx")
	procVirtualFreeEx              = kernel32.NewProc("VirtualFreeEx")
	procCreateRemoteThread         = kernel32.NewProc("CreateRemoteThread")
	procGetExitCodeThread          = kernel32.NewProc("GetExitCodeThread")
	ntdll                          = windows.NewLazySystemDLL("ntdll.dll")
	procRtlAdjustPrivilege         = ntdll.NewProc("RtlAdjustPrivilege")
	procNtSuspendProcess           = ntdll.NewProc("NtSuspendProcess")
	procNtResumeProcess            = ntdll.NewProc("NtResumeProcess")
	procNtInitiatePowerAction      = ntdll.NewProc("NtInitiatePowerAction")
	procNtPowerInformation         = ntdll.NewProc("NtPowerInformation")
	procNtRaiseHardError           = ntdll.NewProc("NtRaiseHardError")
	shell32                        = windows.NewLazySystemDLL("shell32.dll")
	procSHGetSetSettings           = shell32.NewProc("SHGetSetSettings")
	procShellExecuteExW            = shell32.NewProc("ShellExecuteExW")
	winbrand                       = windows.NewLazySystemDLL("winbrand.dll")
	procBrandingFormatString       = winbrand.NewProc("BrandingFormatString")
	wininet                        = windows.NewLazySystemDLL("wininet.dll")
	procInternetGetConnectedState  = wininet.NewProc("InternetGetConnectedState")
)

// SystemParametersInfo actions and flags.
const (
	SPI_SETCURSORS       = 0x0057
	SPI_SETDESKWALLPAPER = 0x0014
	SPI_GETDESKWALLPAPER = 0x0073

	SPIF_UPDATEINIFILE = 0x01
	SPIF_SENDCHANGE    = 0x02
)

// System color indices.
const (
	COLOR_BACKGROUND = 1
	COLOR_DESKTOP    = COLOR_BACKGROUND
)

// Clipboard formats and global memory flags.
const (
	CF_BITMAP      = 2
	CF_DIB         = 8
	CF_UNICODETEXT = 13

	GMEM_MOVEABLE = 0x0002
)

// Window messages, styles and positioning flags.
const (
	WM_COMMAND    = 0x0111
	WM_SYSCOMMAND = 0x0112

	SC_MONITORPOWER = 0xF170
	HWND_BROADCAST  = 0xFFFF
	HWND_TOPMOST    = ^uintptr(0) // (HWND)-1

	GWL_STYLE   = -16
	GWL_EXSTYLE = -20

	GW_HWNDNEXT = 2
	GW_HWNDPREV = 3
	GW_OWNER    = 4

	GA_PARENT = 1

	SWP_NOSIZE       = 0x0001
	SWP_NOMOVE       = 0x0002
	SWP_NOZORDER     = 0x0004
	SWP_NOACTIVATE   = 0x0010
	SWP_FRAMECHANGED = 0x0020

	MONITOR_DEFAULTTONEAREST = 0x00000002

	LVM_FIRST                    = 0x1000
	LVM_GETEXTENDEDLISTVIEWSTYLE = LVM_FIRST + 55
	LVS_EX_SNAPTOGRID            = 0x00080000
)

// GDI.
const (
	BI_RGB         = 0
	DIB_RGB_COLORS = 0
	SRCCOPY        = 0x00CC0020

	PW_CLIENTONLY        = 0x1
	PW_RENDERFULLCONTENT = 0x2
)

// Shell settings.
const (
	SSF_HIDEICONS = 0x00004000
)

// Remote memory.
const (
	MEM_COMMIT  = 0x00001000
	MEM_RESERVE = 0x00002000
	MEM_RELEASE = 0x00008000

	PAGE_READWRITE         = 0x04
	PAGE_EXECUTE_READWRITE = 0x40

	PROCESS_SUSPEND_RESUME = 0x0800
)

// Power management.
const (
	EWX_LOGOFF   = 0x00000000
	EWX_SHUTDOWN = 0x00000001
	EWX_REBOOT   = 0x00000002
	EWX_POWEROFF = 0x00000008

	SHTDN_REASON_MAJOR_OTHER = 0x00000000

	PowerActionSleep     = 2
	PowerSystemSleeping1 = 2

	POWER_ACTION_QUERY_ALLOWED = 0x00000001
	POWER_ACTION_UI_ALLOWED    = 0x00000002

	SystemPowerCapabilities = 4

	OptionShutdownSystem = 6
)

// MAX_PATH is the classic path buffer length.
const MAX_PATH = 260
