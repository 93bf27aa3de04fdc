package flash

import (
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultClassName is the window class of the embedding host the resolver
// looks for when the process has no active window.
const DefaultClassName = "UnityWndClass"

// Flasher is the platform-neutral attention capability.
type Flasher interface {
	// Init warms the window handle cache. Safe to call more than once.
	Init()

	// Flash flashes caption and taskbar button until the window comes to the foreground.
	Flash() bool

	// FlashCount flashes caption and taskbar button exactly count times.
	FlashCount(count uint32) bool

	// Start flashes caption and taskbar button until Stop is called.
	Start() bool

	// Stop cancels flashing and restores the window's original appearance.
	Stop() bool
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	className string
	timeout   uint32
	log       logrus.FieldLogger
}

func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return options{
		className: DefaultClassName,
		log:       l,
	}
}

// WithClassName sets the window class name matched during enumeration.
func WithClassName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.className = name
		}
	}
}

// WithTimeout sets the delay between flashes. Zero uses the cursor blink rate.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d < 0 {
			d = 0
		}
		ms := d.Milliseconds()
		if ms > int64(Unbounded) {
			ms = int64(Unbounded)
		}
		o.timeout = uint32(ms)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// New returns the Flasher for the current platform: a Controller over the
// native API on Windows, and a no-op Flasher everywhere else.
func New(opts ...Option) Flasher {
	return newForPlatform(runtime.GOOS, nativeAPI(), opts...)
}

// NativeAPI returns the platform binding, or nil where flashing is unsupported.
func NativeAPI() API {
	return nativeAPI()
}

func newForPlatform(goos string, api API, opts ...Option) Flasher {
	if goos != "windows" || api == nil {
		return NewNoop()
	}
	return NewWithAPI(api, opts...)
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// Supported reports whether f talks to the OS.
func Supported(f Flasher) bool {
	_, noop := f.(*noopFlasher)
	return !noop
}

// NewNoop returns the Flasher used on unsupported platforms. Every
// operation reports false.
func NewNoop() Flasher {
	return &noopFlasher{}
}

type noopFlasher struct{}

func (n *noopFlasher) Init()                  {}
func (n *noopFlasher) Flash() bool            { return false }
func (n *noopFlasher) FlashCount(uint32) bool { return false }
func (n *noopFlasher) Start() bool            { return false }
func (n *noopFlasher) Stop() bool             { return false }
