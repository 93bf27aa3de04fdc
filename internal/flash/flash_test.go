package flash

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestFlagValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Flags(0), FlagStop)
	assert.Equal(t, Flags(1), FlagCaption)
	assert.Equal(t, Flags(2), FlagTray)
	assert.Equal(t, Flags(3), FlagAll)
	assert.Equal(t, Flags(4), FlagTimer)
	assert.Equal(t, Flags(12), FlagTimerNoForeground)
	assert.Equal(t, uint32(4294967295), Unbounded)
}

func TestFlags_String(t *testing.T) {
	t.Parallel()

	tests := map[Flags]string{
		FlagStop:                         "stop",
		FlagCaption:                      "caption",
		FlagTray:                         "tray",
		FlagAll:                          "caption|tray",
		FlagAll | FlagTimer:              "caption|tray|timer",
		FlagAll | FlagTimerNoForeground:  "caption|tray|timernofg",
		FlagTray | FlagTimerNoForeground: "tray|timernofg",
		Flags(8):                         "0x8",
		Flags(0x30):                      "0x30",
	}

	for flags, want := range tests {
		assert.Equal(t, want, flags.String())
	}
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	req := NewRequest(0x1234, FlagAll, 7, 100)

	assert.Equal(t, uint32(unsafe.Sizeof(flashInfo{})), req.Size)
	assert.Equal(t, Handle(0x1234), req.Window)
	assert.Equal(t, FlagAll, req.Flags)
	assert.Equal(t, uint32(7), req.Count)
	assert.Equal(t, uint32(100), req.Timeout)
}

func TestRequest_Native(t *testing.T) {
	t.Parallel()

	info := NewRequest(0xBEEF, FlagStop, Unbounded, 0).native()

	assert.Equal(t, requestSize, info.cbSize)
	assert.Equal(t, uintptr(0xBEEF), info.hwnd)
	assert.Equal(t, uint32(0), info.dwFlags)
	assert.Equal(t, Unbounded, info.uCount)
	assert.Equal(t, uint32(0), info.dwTimeout)
}

// FLASHWINFO is 20 bytes on 32-bit Windows and 32 on 64-bit.
func TestRequestSize_MatchesNativeLayout(t *testing.T) {
	t.Parallel()

	switch unsafe.Sizeof(uintptr(0)) {
	case 4:
		assert.Equal(t, uint32(20), requestSize)
	case 8:
		assert.Equal(t, uint32(32), requestSize)
	}
}
