package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopScanHooks{}
	s.OnEcosystemStart(ctx, "npm", "/tmp/package.json")
	s.OnEcosystemComplete(ctx, "npm", 3, 1, time.Second, nil)
	s.OnPackageChecked(ctx, "pypi", "requests", true, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "pypi.org", "/pypi/requests/json")
	h.OnResponse(ctx, "GET", "pypi.org", "/pypi/requests/json", 200, time.Second)
	h.OnError(ctx, "GET", "pypi.org", "/pypi/requests/json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Scan().(NoopScanHooks); !ok {
		t.Error("Scan() should return NoopScanHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customScan := &testScanHooks{}
	SetScanHooks(customScan)
	if Scan() != customScan {
		t.Error("SetScanHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Scan().(NoopScanHooks); !ok {
		t.Error("Reset() should restore NoopScanHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testScanHooks{}
	SetScanHooks(custom)
	SetScanHooks(nil)
	if Scan() != custom {
		t.Error("SetScanHooks(nil) should keep the previous hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	SetHTTPHooks(nil)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks(nil) should keep the previous hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	hooks := &testScanHooks{}
	SetScanHooks(hooks)

	ctx := context.Background()
	Scan().OnEcosystemStart(ctx, "npm", "package.json")
	Scan().OnPackageChecked(ctx, "npm", "left-pad", true, nil)
	Scan().OnPackageChecked(ctx, "npm", "express", false, errors.New("boom"))
	Scan().OnEcosystemComplete(ctx, "npm", 2, 1, time.Millisecond, nil)

	if hooks.started != 1 || hooks.completed != 1 {
		t.Errorf("started=%d completed=%d, want 1 and 1", hooks.started, hooks.completed)
	}
	if hooks.checked != 2 || hooks.failed != 1 {
		t.Errorf("checked=%d failed=%d, want 2 and 1", hooks.checked, hooks.failed)
	}
}

type testScanHooks struct {
	mu        sync.Mutex
	started   int
	completed int
	checked   int
	failed    int
}

func (h *testScanHooks) OnEcosystemStart(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
}

func (h *testScanHooks) OnEcosystemComplete(context.Context, string, int, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
}

func (h *testScanHooks) OnPackageChecked(_ context.Context, _, _ string, _ bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checked++
	if err != nil {
		h.failed++
	}
}

type testHTTPHooks struct{}

func (*testHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (*testHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (*testHTTPHooks) OnError(context.Context, string, string, string, error)                 {}
