package flash

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Controller implements Flasher on top of an API. Every operation resolves
// the window handle first and then issues exactly one flash request. A zero
// handle is still sent: the OS rejects it, and a resolution bug stays visible
// in the call log instead of being masked by an early return.
type Controller struct {
	resolver *Resolver
	api      API
	timeout  uint32
	log      logrus.FieldLogger
}

var _ Flasher = (*Controller)(nil)

// NewWithAPI creates a Controller over api. Use it directly in tests or when
// the platform binding is provided by the caller.
func NewWithAPI(api API, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.log.WithField("component", "flash")
	return &Controller{
		resolver: NewResolver(api, o.className, log),
		api:      api,
		timeout:  o.timeout,
		log:      log,
	}
}

// Resolver returns the controller's handle resolver.
func (c *Controller) Resolver() *Resolver {
	return c.resolver
}

// Init refreshes the handle cache. Call it once at startup, while the
// window's thread is current.
func (c *Controller) Init() {
	defer c.recoverTo("init", nil)
	c.resolver.Refresh()
}

// Flash flashes until the window comes to the foreground.
func (c *Controller) Flash() bool {
	return c.send("flash", FlagAll|FlagTimerNoForeground, Unbounded)
}

// FlashCount flashes exactly count times.
func (c *Controller) FlashCount(count uint32) bool {
	return c.send("flash_count", FlagAll, count)
}

// Start flashes until Stop.
func (c *Controller) Start() bool {
	return c.send("start", FlagAll, Unbounded)
}

// Stop restores the window. The count is ignored by the OS for FlagStop.
func (c *Controller) Stop() bool {
	return c.send("stop", FlagStop, Unbounded)
}

func (c *Controller) send(op string, flags Flags, count uint32) (ok bool) {
	defer c.recoverTo(op, &ok)

	req := NewRequest(c.resolver.Resolve(), flags, count, c.timeout)
	log := c.log.WithFields(logrus.Fields{
		"op":     op,
		"handle": uintptr(req.Window),
		"flags":  req.Flags.String(),
		"count":  req.Count,
	})

	accepted, err := c.api.FlashWindow(req)
	if err != nil {
		log.WithError(err).Debug("flash request failed")
		return false
	}
	log.WithField("accepted", accepted).Debug("flash request sent")
	return accepted
}

// recoverTo converts a panic in a native call into a false result.
func (c *Controller) recoverTo(op string, ok *bool) {
	if r := recover(); r != nil {
		c.log.WithField("op", op).WithError(fmt.Errorf("panic: %v", r)).Debug("flash request aborted")
		if ok != nil {
			*ok = false
		}
	}
}
