// Package flash asks the operating system to flash an application window's
// caption and taskbar button so the user notices it, and to stop flashing.
//
// The capability is auxiliary: every operation reports success as a bool and
// never returns an error or panics. Windows is the only supported platform;
// elsewhere New returns a Flasher whose operations all report false without
// touching the OS.
//
// # Window discovery
//
// The target window is found once and cached by a Resolver:
//
//  1. the active window attached to the calling thread, or
//  2. the first top-level window of the calling thread whose window class
//     name equals the configured class name.
//
// Discovery depends on the calling OS thread, so call Init from the
// goroutine that owns the window (usually one locked with
// runtime.LockOSThread).
//
// # Usage
//
//	f := flash.New(flash.WithClassName("UnityWndClass"))
//	f.Init()
//	...
//	f.FlashCount(5)
package flash
