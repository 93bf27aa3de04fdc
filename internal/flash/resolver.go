package flash

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Resolver finds the application's main window and caches its handle.
// A zero handle is never cached as a hit: Resolve keeps trying until
// discovery succeeds.
type Resolver struct {
	api       API
	className string
	log       logrus.FieldLogger

	mu     sync.Mutex
	handle Handle
}

// NewResolver creates a resolver that matches windows of the given class.
func NewResolver(api API, className string, log logrus.FieldLogger) *Resolver {
	return &Resolver{
		api:       api,
		className: className,
		log:       log,
	}
}

// ClassName returns the window class matched during enumeration.
func (r *Resolver) ClassName() string {
	return r.className
}

// Resolve returns the cached handle, running discovery if nothing is cached.
func (r *Resolver) Resolve() Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handle == 0 {
		r.handle = r.discover()
		if r.handle == 0 {
			r.log.Debug("window handle still unresolved")
		}
	}
	return r.handle
}

// Refresh runs discovery regardless of the cache and stores the result,
// including a zero handle.
func (r *Resolver) Refresh() Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handle = r.discover()
	if r.handle == 0 {
		r.log.WithField("class", r.className).Warn("no window handle found")
	} else {
		r.log.WithField("handle", uintptr(r.handle)).Info("resolved window handle")
	}
	return r.handle
}

// discover tries the active window first, then the calling thread's
// top-level windows by class name.
func (r *Resolver) discover() Handle {
	// Thread id and enumeration must refer to the same OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if h := r.api.ActiveWindow(); h != 0 {
		return h
	}

	var found Handle
	err := r.api.EnumThreadWindows(r.api.CurrentThreadID(), func(h Handle) bool {
		name, err := r.api.ClassName(h)
		if err != nil {
			r.log.WithError(err).WithField("handle", uintptr(h)).Debug("class name lookup failed")
			return true
		}
		if name != r.className {
			return true
		}
		found = h
		return false
	})
	if err != nil {
		r.log.WithError(err).Debug("thread window enumeration failed")
	}
	return found
}
