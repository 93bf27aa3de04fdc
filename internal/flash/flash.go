package flash

import (
	"fmt"
	"strings"
	"unsafe"
)

// Handle is an opaque OS window handle. The zero value means unresolved.
type Handle uintptr

// Flags selects what a flash request animates and for how long.
type Flags uint32

const (
	// FlagStop stops flashing and restores the window to its original state.
	FlagStop Flags = 0
	// FlagCaption flashes the window caption.
	FlagCaption Flags = 1
	// FlagTray flashes the taskbar button.
	FlagTray Flags = 2
	// FlagAll flashes both the caption and the taskbar button.
	FlagAll = FlagCaption | FlagTray
	// FlagTimer flashes continuously until a FlagStop request.
	FlagTimer Flags = 4
	// FlagTimerNoForeground flashes continuously until the window comes to the foreground.
	FlagTimerNoForeground Flags = 12
)

// Unbounded is the repeat count used for "flash until told otherwise".
const Unbounded = ^uint32(0)

// String renders the set bits for logs, e.g. "caption|tray|timernofg".
func (f Flags) String() string {
	if f == FlagStop {
		return "stop"
	}

	var parts []string
	if f&FlagCaption != 0 {
		parts = append(parts, "caption")
	}
	if f&FlagTray != 0 {
		parts = append(parts, "tray")
	}
	switch {
	case f&FlagTimerNoForeground == FlagTimerNoForeground:
		parts = append(parts, "timernofg")
	case f&FlagTimer != 0:
		parts = append(parts, "timer")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("0x%x", uint32(f))
	}
	return strings.Join(parts, "|")
}

// flashInfo mirrors the native FLASHWINFO structure.
type flashInfo struct {
	cbSize    uint32
	hwnd      uintptr
	dwFlags   uint32
	uCount    uint32
	dwTimeout uint32
}

// requestSize is the byte size of FLASHWINFO for the running architecture.
var requestSize = uint32(unsafe.Sizeof(flashInfo{}))

// Request describes one flash call. It is built fresh for every operation.
type Request struct {
	// Size is the native structure size expected by the OS.
	Size uint32

	// Window is the target handle. It may be zero if discovery failed.
	Window Handle

	// Flags selects the animated elements and the timer policy.
	Flags Flags

	// Count is the number of flashes. Ignored by FlagStop.
	Count uint32

	// Timeout is the delay between flashes in milliseconds (0 = cursor blink rate).
	Timeout uint32
}

// NewRequest builds a Request with Size filled in.
func NewRequest(window Handle, flags Flags, count, timeout uint32) Request {
	return Request{
		Size:    requestSize,
		Window:  window,
		Flags:   flags,
		Count:   count,
		Timeout: timeout,
	}
}

func (r Request) native() flashInfo {
	return flashInfo{
		cbSize:    r.Size,
		hwnd:      uintptr(r.Window),
		dwFlags:   uint32(r.Flags),
		uCount:    r.Count,
		dwTimeout: r.Timeout,
	}
}

// API is the set of native window primitives the resolver and controller use.
type API interface {
	// ActiveWindow returns the active window attached to the calling thread, or 0.
	ActiveWindow() Handle

	// CurrentThreadID returns the id of the calling OS thread.
	CurrentThreadID() uint32

	// EnumThreadWindows calls visit for each top-level window owned by the
	// thread until visit returns false.
	EnumThreadWindows(threadID uint32, visit func(Handle) bool) error

	// ClassName returns the window class name of h.
	ClassName(h Handle) (string, error)

	// FlashWindow issues the flash request and reports the OS result.
	FlashWindow(req Request) (bool, error)
}
