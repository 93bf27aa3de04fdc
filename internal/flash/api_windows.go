//go:build windows

package flash

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// maxClassName is the longest window class name Windows allows.
const maxClassName = 256

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetActiveWindow   = user32.NewProc("GetActiveWindow")
	procEnumThreadWindows = user32.NewProc("EnumThreadWindows")
	procFlashWindowEx     = user32.NewProc("FlashWindowEx")

	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// The enumeration callback is created once: windows.NewCallback slots are a
// finite per-process resource. Each enumeration installs its visitor under
// enumMu for the duration of the synchronous EnumThreadWindows call.
var (
	enumOnce     sync.Once
	enumCallback uintptr
	enumMu       sync.Mutex
	enumVisit    func(Handle) bool
)

func enumThreadWndProc(hwnd, _ uintptr) uintptr {
	if enumVisit != nil && !enumVisit(Handle(hwnd)) {
		return 0
	}
	return 1
}

// win32API binds API to user32.dll and kernel32.dll.
type win32API struct{}

func nativeAPI() API {
	return win32API{}
}

// ConsoleWindow returns the window of the console attached to the process,
// or 0. The console window is owned by conhost, not by any of our threads.
func ConsoleWindow() Handle {
	if procGetConsoleWindow.Find() != nil {
		return 0
	}
	r, _, _ := procGetConsoleWindow.Call()
	return Handle(r)
}

func (win32API) ActiveWindow() Handle {
	if procGetActiveWindow.Find() != nil {
		return 0
	}
	r, _, _ := procGetActiveWindow.Call()
	return Handle(r)
}

func (win32API) CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

func (win32API) EnumThreadWindows(threadID uint32, visit func(Handle) bool) error {
	if err := procEnumThreadWindows.Find(); err != nil {
		return err
	}
	enumOnce.Do(func() {
		enumCallback = windows.NewCallback(enumThreadWndProc)
	})

	enumMu.Lock()
	defer enumMu.Unlock()
	enumVisit = visit
	defer func() { enumVisit = nil }()

	// The return value is FALSE both when the visitor stops early and when
	// the thread owns no windows, so it carries no error information.
	procEnumThreadWindows.Call(uintptr(threadID), enumCallback, 0)
	return nil
}

func (win32API) ClassName(h Handle) (string, error) {
	buf := make([]uint16, maxClassName)
	n, err := windows.GetClassName(windows.HWND(h), &buf[0], int32(len(buf)))
	if err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:n]), nil
}

// FlashWindow reports FlashWindowEx's return value, which is non-zero when
// the caption was drawn active before the call.
func (win32API) FlashWindow(req Request) (bool, error) {
	if err := procFlashWindowEx.Find(); err != nil {
		return false, err
	}
	info := req.native()
	r, _, _ := procFlashWindowEx.Call(uintptr(unsafe.Pointer(&info)))
	return r != 0, nil
}
