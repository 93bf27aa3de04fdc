package flash

// WithFallbackWindow wraps api so that ActiveWindow reports fallback() when
// the calling thread has no active window. Processes that own no window on
// their own threads, like console programs, use it to point the resolver at
// the window they are shown in.
func WithFallbackWindow(api API, fallback func() Handle) API {
	return &overrideAPI{API: api, fallback: fallback}
}

// WithTargetWindow wraps api so that ActiveWindow always reports h. The
// resolver then never enumerates thread windows.
func WithTargetWindow(api API, h Handle) API {
	return &overrideAPI{API: api, target: h}
}

type overrideAPI struct {
	API
	target   Handle
	fallback func() Handle
}

func (o *overrideAPI) ActiveWindow() Handle {
	if o.target != 0 {
		return o.target
	}
	if h := o.API.ActiveWindow(); h != 0 {
		return h
	}
	if o.fallback != nil {
		return o.fallback()
	}
	return 0
}
