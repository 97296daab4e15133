package testutil

import (
	"sync"
)

// MockWindow is one node of a MockWindowTree
type MockWindow struct {
	Hwnd      uintptr
	ClassName string
	Title     string
	Visible   bool
	Children  []uintptr
}

// MockWindowTree implements interfaces.WindowTree over an in-memory hierarchy
type MockWindowTree struct {
	Desktop           uintptr
	Windows           map[uintptr]*MockWindow
	ChildWindowsCalls []uintptr
	ClassNameCalls    []uintptr
}

func NewMockWindowTree() *MockWindowTree {
	const desktop = 0x10010

	return &MockWindowTree{
		Desktop: desktop,
		Windows: map[uintptr]*MockWindow{
			desktop: {Hwnd: desktop, ClassName: "#32769", Visible: true},
		},
	}
}

func (m *MockWindowTree) DesktopWindow() uintptr {
	return m.Desktop
}

func (m *MockWindowTree) ChildWindows(hwnd uintptr) []uintptr {
	m.ChildWindowsCalls = append(m.ChildWindowsCalls, hwnd)

	w, ok := m.Windows[hwnd]
	if !ok {
		return nil
	}

	return append([]uintptr(nil), w.Children...)
}

func (m *MockWindowTree) ClassName(hwnd uintptr) string {
	m.ClassNameCalls = append(m.ClassNameCalls, hwnd)

	if w, ok := m.Windows[hwnd]; ok {
		return w.ClassName
	}

	return ""
}

func (m *MockWindowTree) Title(hwnd uintptr) string {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Title
	}

	return ""
}

func (m *MockWindowTree) IsVisible(hwnd uintptr) bool {
	if w, ok := m.Windows[hwnd]; ok {
		return w.Visible
	}

	return false
}

// Helper methods for fluent configuration
func (m *MockWindowTree) WithWindow(parent, hwnd uintptr, className string, visible bool) *MockWindowTree {
	m.Windows[hwnd] = &MockWindow{Hwnd: hwnd, ClassName: className, Visible: visible}

	if p, ok := m.Windows[parent]; ok {
		p.Children = append(p.Children, hwnd)
	}

	return m
}

func (m *MockWindowTree) WithTitle(hwnd uintptr, title string) *MockWindowTree {
	if w, ok := m.Windows[hwnd]; ok {
		w.Title = title
	}

	return m
}

func (m *MockWindowTree) WithTopLevel(hwnd uintptr, className string, visible bool) *MockWindowTree {
	return m.WithWindow(m.Desktop, hwnd, className, visible)
}

// WithChildOrder replaces the enumeration order of a window's children
func (m *MockWindowTree) WithChildOrder(parent uintptr, children ...uintptr) *MockWindowTree {
	if p, ok := m.Windows[parent]; ok {
		p.Children = children
	}

	return m
}

// InputCall records one call made on a MockInputDriver
type InputCall struct {
	Op   string
	Hwnd uintptr
	Key  uint8
	Up   bool
	Unit uint16
	Text string
}

// MockInputDriver records all calls for verification
type MockInputDriver struct {
	mu    sync.Mutex
	calls []InputCall

	SendCharErr error
	SetTextErr  error
	ClickErr    error
	// Block, when set, makes message-sending calls wait until it is closed
	Block chan struct{}
	// PanicOn makes the named operation panic
	PanicOn string
}

func NewMockInputDriver() *MockInputDriver {
	return &MockInputDriver{}
}

func (m *MockInputDriver) record(c InputCall) {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()

	if m.PanicOn == c.Op {
		panic("mock input driver: " + c.Op)
	}
}

func (m *MockInputDriver) wait() {
	if m.Block != nil {
		<-m.Block
	}
}

func (m *MockInputDriver) SwitchToWindow(hwnd uintptr) {
	m.record(InputCall{Op: "SwitchToWindow", Hwnd: hwnd})
}

func (m *MockInputDriver) SetFocus(hwnd uintptr) {
	m.record(InputCall{Op: "SetFocus", Hwnd: hwnd})
}

func (m *MockInputDriver) KeyEvent(vk uint8, up bool) {
	m.record(InputCall{Op: "KeyEvent", Key: vk, Up: up})
}

func (m *MockInputDriver) SendChar(hwnd uintptr, unit uint16) error {
	m.wait()
	m.record(InputCall{Op: "SendChar", Hwnd: hwnd, Unit: unit})
	return m.SendCharErr
}

func (m *MockInputDriver) SetText(hwnd uintptr, text string) error {
	m.wait()
	m.record(InputCall{Op: "SetText", Hwnd: hwnd, Text: text})
	return m.SetTextErr
}

func (m *MockInputDriver) Click(hwnd uintptr) error {
	m.wait()
	m.record(InputCall{Op: "Click", Hwnd: hwnd})
	return m.ClickErr
}

// Calls returns a snapshot of the recorded calls
func (m *MockInputDriver) Calls() []InputCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]InputCall(nil), m.calls...)
}

// Ops returns the recorded operation names in order
func (m *MockInputDriver) Ops() []string {
	calls := m.Calls()

	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Op
	}

	return ops
}

// Helper methods for fluent configuration
func (m *MockInputDriver) WithSendCharErr(err error) *MockInputDriver {
	m.SendCharErr = err
	return m
}

func (m *MockInputDriver) WithSetTextErr(err error) *MockInputDriver {
	m.SetTextErr = err
	return m
}

func (m *MockInputDriver) WithClickErr(err error) *MockInputDriver {
	m.ClickErr = err
	return m
}

func (m *MockInputDriver) WithBlock(block chan struct{}) *MockInputDriver {
	m.Block = block
	return m
}

func (m *MockInputDriver) WithPanicOn(op string) *MockInputDriver {
	m.PanicOn = op
	return m
}
