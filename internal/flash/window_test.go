package flash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFallbackWindow(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		active     Handle
		fallback   Handle
		windows    []fakeWindow
		wantHandle Handle
		wantEnum   int
	}{
		"active window wins": {
			active:     0x1,
			fallback:   0x2,
			wantHandle: 0x1,
		},
		"fallback used without active window": {
			fallback:   0x2,
			windows:    []fakeWindow{{0x3, DefaultClassName}},
			wantHandle: 0x2,
		},
		"zero fallback leaves enumeration in place": {
			windows:    []fakeWindow{{0x3, DefaultClassName}},
			wantHandle: 0x3,
			wantEnum:   1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			api := newFakeAPI().withActive(tt.active).withWindows(tt.windows...)
			fallback := tt.fallback
			c := NewWithAPI(WithFallbackWindow(api, func() Handle { return fallback }))

			assert.True(t, c.FlashCount(1))
			require.Len(t, api.requests, 1)
			assert.Equal(t, tt.wantHandle, api.requests[0].Window)
			_, enum := api.discoveryCalls()
			assert.Equal(t, tt.wantEnum, enum)
		})
	}
}

func TestWithTargetWindow(t *testing.T) {
	t.Parallel()

	api := newFakeAPI().withActive(0x1).withWindows(fakeWindow{0x3, DefaultClassName})
	c := NewWithAPI(WithTargetWindow(api, 0x9))
	c.Init()

	assert.True(t, c.Stop())
	require.Len(t, api.requests, 1)
	assert.Equal(t, Handle(0x9), api.requests[0].Window)
	assert.Equal(t, FlagStop, api.requests[0].Flags)
	active, enum := api.discoveryCalls()
	assert.Zero(t, active)
	assert.Zero(t, enum)
}

func TestConsoleWindow_NoneOffWindows(t *testing.T) {
	t.Parallel()

	if Platform() == "windows" {
		t.Skip("console window depends on how the test binary was started")
	}
	assert.Equal(t, Handle(0), ConsoleWindow())
	assert.Nil(t, NativeAPI())
}
