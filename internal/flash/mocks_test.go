package flash

import "sync"

type fakeWindow struct {
	handle Handle
	class  string
}

// fakeAPI is an in-memory API. It records every primitive call.
type fakeAPI struct {
	mu sync.Mutex

	// Configuration
	active      Handle
	threadID    uint32
	windows     []fakeWindow
	classErr    map[Handle]error
	enumErr     error
	flashResult bool
	flashErr    error
	flashPanic  interface{}

	// Call tracking
	activeCalls int
	enumCalls   int
	enumThreads []uint32
	visited     []Handle
	requests    []Request
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		threadID:    42,
		flashResult: true,
		classErr:    map[Handle]error{},
	}
}

func (f *fakeAPI) withActive(h Handle) *fakeAPI {
	f.active = h
	return f
}

func (f *fakeAPI) withWindows(ws ...fakeWindow) *fakeAPI {
	f.windows = ws
	return f
}

func (f *fakeAPI) ActiveWindow() Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activeCalls++
	return f.active
}

func (f *fakeAPI) CurrentThreadID() uint32 {
	return f.threadID
}

func (f *fakeAPI) EnumThreadWindows(threadID uint32, visit func(Handle) bool) error {
	f.mu.Lock()
	f.enumCalls++
	f.enumThreads = append(f.enumThreads, threadID)
	windows := append([]fakeWindow(nil), f.windows...)
	err := f.enumErr
	f.mu.Unlock()

	if err != nil {
		return err
	}
	for _, w := range windows {
		f.mu.Lock()
		f.visited = append(f.visited, w.handle)
		f.mu.Unlock()
		if !visit(w.handle) {
			break
		}
	}
	return nil
}

func (f *fakeAPI) ClassName(h Handle) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.classErr[h]; err != nil {
		return "", err
	}
	for _, w := range f.windows {
		if w.handle == h {
			return w.class, nil
		}
	}
	return "", nil
}

func (f *fakeAPI) FlashWindow(req Request) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.flashPanic != nil {
		panic(f.flashPanic)
	}
	return f.flashResult, f.flashErr
}

func (f *fakeAPI) discoveryCalls() (active, enum int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeCalls, f.enumCalls
}

// MockFlasher records Flasher calls.
type MockFlasher struct {
	mu     sync.Mutex
	result bool
	calls  []string
	counts []uint32
}

func NewMockFlasher(result bool) *MockFlasher {
	return &MockFlasher{result: result}
}

func (m *MockFlasher) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *MockFlasher) Init() { m.record("init") }

func (m *MockFlasher) Flash() bool {
	m.record("flash")
	return m.result
}

func (m *MockFlasher) FlashCount(count uint32) bool {
	m.record("flash_count")
	m.mu.Lock()
	m.counts = append(m.counts, count)
	m.mu.Unlock()
	return m.result
}

func (m *MockFlasher) Start() bool {
	m.record("start")
	return m.result
}

func (m *MockFlasher) Stop() bool {
	m.record("stop")
	return m.result
}

func (m *MockFlasher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
