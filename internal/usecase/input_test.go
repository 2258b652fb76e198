package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"webdesk/internal/adapters/storage/memory"
	"webdesk/internal/domain"
)

// fakeInjector records calls and can be told to fail.
type fakeInjector struct {
	calls []string
	fail  error
	w, h  int
}

func newFakeInjector() *fakeInjector { return &fakeInjector{w: 1920, h: 1080} }

func (f *fakeInjector) record(s string) error {
	f.calls = append(f.calls, s)
	return f.fail
}

func (f *fakeInjector) MoveTo(x, y int) error { return f.record(fmt.Sprintf("move %d,%d", x, y)) }
func (f *fakeInjector) Click(x, y int, b string) error {
	return f.record(fmt.Sprintf("click %d,%d %s", x, y, b))
}
func (f *fakeInjector) Drag(x, y int) error         { return f.record(fmt.Sprintf("drag %d,%d", x, y)) }
func (f *fakeInjector) Scroll(amount int) error     { return f.record(fmt.Sprintf("scroll %d", amount)) }
func (f *fakeInjector) KeyDown(symbol string) error { return f.record("keydown " + symbol) }
func (f *fakeInjector) KeyUp(symbol string) error   { return f.record("keyup " + symbol) }
func (f *fakeInjector) TypeText(text string) error  { return f.record("type " + text) }
func (f *fakeInjector) ScreenSize() (int, int, error) { return f.w, f.h, nil }

func seedSession(t *testing.T, store *memory.Store, id string) {
	t.Helper()
	now := time.Now().UTC()
	err := store.CreateSession(context.Background(), domain.Session{
		ID: id, HostLabel: "h", CreatedAt: now, LastActivityAt: now,
		Active: true, Clients: []string{}, CanvasWidth: 800, CanvasHeight: 600,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestDispatchMapsEachKindToOneCall(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	seedSession(t, store, "s")
	inj := newFakeInjector()
	svc := NewInputService(store, inj)
	ctx := context.Background()

	events := []domain.InputEvent{
		{Kind: domain.PointerMove, X: 400, Y: 300},
		{Kind: domain.PointerClick, X: 0, Y: 0, Button: "left"},
		{Kind: domain.PointerDrag, X: 800, Y: 600},
		{Kind: domain.PointerScroll, Amount: -3},
		{Kind: domain.KeyDown, Key: "shift"},
		{Kind: domain.KeyUp, Key: "shift"},
		{Kind: domain.KeyType, Key: "hello"},
	}
	for _, ev := range events {
		if err := svc.Dispatch(ctx, "s", ev); err != nil {
			t.Fatalf("%s: %v", ev.Kind, err)
		}
	}
	want := []string{
		"move 960,540",
		"click 0,0 left",
		"drag 1920,1080",
		"scroll -3",
		"keydown shift",
		"keyup shift",
		"type hello",
	}
	if len(inj.calls) != len(want) {
		t.Fatalf("want %d calls, got %d: %v", len(want), len(inj.calls), inj.calls)
	}
	for i := range want {
		if inj.calls[i] != want[i] {
			t.Errorf("call %d: got %q want %q", i, inj.calls[i], want[i])
		}
	}
}

func TestDispatchTouchesSession(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	seedSession(t, store, "s")
	before, _, _ := store.GetSession(context.Background(), "s")

	svc := NewInputService(store, newFakeInjector())
	time.Sleep(5 * time.Millisecond)
	if err := svc.Dispatch(context.Background(), "s", domain.InputEvent{Kind: domain.PointerMove, X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}
	after, _, _ := store.GetSession(context.Background(), "s")
	if !after.LastActivityAt.After(before.LastActivityAt) {
		t.Errorf("dispatch must advance lastActivityAt")
	}
}

func TestDispatchUnknownSession(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	svc := NewInputService(store, newFakeInjector())
	err := svc.Dispatch(context.Background(), "nope", domain.InputEvent{Kind: domain.PointerMove})
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}

func TestDispatchUnknownKindRejected(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	seedSession(t, store, "s")
	inj := newFakeInjector()
	svc := NewInputService(store, inj)
	err := svc.Dispatch(context.Background(), "s", domain.InputEvent{Kind: "warp", X: 1, Y: 1})
	if !errors.Is(err, domain.ErrUnsupportedAction) {
		t.Fatalf("want ErrUnsupportedAction, got %v", err)
	}
	if len(inj.calls) != 0 {
		t.Errorf("rejected event must not reach the injector: %v", inj.calls)
	}
}

func TestDispatchWrapsInjectorFailure(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	seedSession(t, store, "s")
	inj := newFakeInjector()
	inj.fail = errors.New("display gone")
	svc := NewInputService(store, inj)

	err := svc.Dispatch(context.Background(), "s", domain.InputEvent{Kind: domain.PointerClick, X: 1, Y: 1, Button: "left"})
	var ie *domain.InjectionError
	if !errors.As(err, &ie) {
		t.Fatalf("want InjectionError, got %v", err)
	}
	if ie.Reason != string(domain.PointerClick) {
		t.Errorf("reason = %q", ie.Reason)
	}
	if !errors.Is(err, inj.fail) {
		t.Errorf("wrapped error must unwrap to the injector error")
	}
}
