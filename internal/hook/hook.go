package hook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single hook invocation.
const DefaultTimeout = 200 * time.Millisecond

// ErrTimeout reports that the script exceeded its sandbox time budget.
var ErrTimeout = errors.New("hook sandbox timeout")

// Hook rewrites greeting lines through a sandboxed Lua script. The script
// sees the current line as the global `line` and must return the replacement
// string, e.g.
//
//	return string.upper(line)
type Hook struct {
	code    string
	timeout time.Duration
}

// New builds a hook from inline Lua code.
func New(code string, timeout time.Duration) *Hook {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Hook{code: code, timeout: timeout}
}

// Load builds a hook from a script file.
func Load(path string, timeout time.Duration) (*Hook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hook script %s: %w", path, err)
	}
	return New(string(b), timeout), nil
}

// Apply runs the script against one line. Each call gets a fresh state, so
// scripts cannot accumulate hidden state between lines.
func (h *Hook) Apply(line string) (string, error) {
	L := newSandboxState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("line", lua.LString(line))

	fn, err := L.LoadString(h.code)
	if err != nil {
		return "", fmt.Errorf("invalid hook script: %v", err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeoutError(err) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("hook failed: %v", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	s, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("hook must return a string, got %s", ret.Type())
	}
	return string(s), nil
}

// newSandboxState opens only the safe libraries. No io, os, or package
// loading is reachable from hook scripts.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  4096,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
