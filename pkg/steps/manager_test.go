package steps

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/BrandonKowalski/steps/pkg/steps/transition"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
}

func TestNewRequiresAnInitialStep(t *testing.T) {
	_, err := New(Options{Logger: quietLogger()})
	if !IsMissingConfiguration(err) {
		t.Fatalf("expected MissingConfigurationError, got %v", err)
	}
}

func TestNewRejectsInvalidInitialStep(t *testing.T) {
	_, err := New(Options{InitialStep: "nope", Steps: []string{"foo", "bar"}, Logger: quietLogger()})
	if !IsInvalidStep(err) {
		t.Fatalf("expected InvalidStepError, got %v", err)
	}
}

func TestNewRejectsDuplicateSteps(t *testing.T) {
	_, err := New(Options{Steps: []string{"foo", "foo"}, Logger: quietLogger()})
	if !IsDuplicateStep(err) {
		t.Fatalf("expected DuplicateStepError, got %v", err)
	}
}

func TestManagerDefaultsToFirstStep(t *testing.T) {
	m, err := New(Options{Steps: []string{"foo", "bar"}, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	if got := m.CurrentStep(); got != "foo" {
		t.Fatalf("current = %q, want %q", got, "foo")
	}
	if got, want := m.Steps(), []string{"foo", "bar"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("steps = %v, want %v", got, want)
	}
}

func TestManagerInitialStepBeforeRegistration(t *testing.T) {
	m, err := New(Options{InitialStep: "bar", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	if m.Len() != 0 {
		t.Fatalf("len = %d, want 0", m.Len())
	}
	for _, name := range []string{"foo", "bar", ""} {
		if _, err := m.Register(name); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}
	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}
	if got := m.CurrentStep(); got != "bar" {
		t.Fatalf("current = %q, want %q", got, "bar")
	}
	if got := m.Steps()[2]; got != "2" {
		t.Fatalf("unnamed step = %q, want %q", got, "2")
	}
}

func TestManagerRejectedValidationKeepsCurrentStep(t *testing.T) {
	notified := false
	m, err := New(Options{
		Steps: []string{"foo", "bar"},
		Validator: func(context.Context, transition.Request) *transition.Deferred {
			return transition.Resolved(false)
		},
		OnTransition: func(transition.Request) { notified = true },
		Logger:       quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	if err := m.TransitionTo("bar", "value"); err != nil {
		t.Fatalf("TransitionTo: %v", err)
	}
	if got := m.CurrentStep(); got != "foo" {
		t.Fatalf("current = %q, want %q", got, "foo")
	}
	if notified {
		t.Fatalf("notification hook should not run")
	}
	if m.Loading() {
		t.Fatalf("loading should be false afterwards")
	}
}

func TestManagerDropsRequestsWhileLoading(t *testing.T) {
	pending := transition.NewDeferred()
	var mu sync.Mutex
	var requests []transition.Request

	m, err := New(Options{
		Steps: []string{"foo", "bar", "baz"},
		Validator: func(_ context.Context, req transition.Request) *transition.Deferred {
			mu.Lock()
			requests = append(requests, req)
			mu.Unlock()
			return pending
		},
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	_ = m.TransitionToNext("first")
	if !m.Loading() {
		t.Fatalf("expected loading while validation is pending")
	}
	_ = m.TransitionTo("baz", "second")
	if got := m.CurrentStep(); got != "foo" {
		t.Fatalf("current = %q, want %q", got, "foo")
	}

	pending.Resolve(true)
	m.Wait()

	if got := m.CurrentStep(); got != "bar" {
		t.Fatalf("current = %q, want %q", got, "bar")
	}
	mu.Lock()
	defer mu.Unlock()
	if len(requests) != 1 || requests[0].Payload != "first" || requests[0].Direction != transition.DirectionNext {
		t.Fatalf("validator requests = %+v, want only the first", requests)
	}
}

func TestManagerCloseDuringValidation(t *testing.T) {
	pending := transition.NewDeferred()
	m, err := New(Options{
		Steps: []string{"foo", "bar"},
		Validator: func(context.Context, transition.Request) *transition.Deferred {
			return pending
		},
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = m.TransitionToNext(nil)
	m.Close()
	pending.Resolve(true)
	m.Wait()

	if got := m.CurrentStep(); got != "foo" {
		t.Fatalf("current = %q, want %q", got, "foo")
	}
}

func TestManagerWritesBackToMutableBinding(t *testing.T) {
	bound := NewBoundStep("bar")
	m, err := New(Options{Steps: []string{"foo", "bar", "baz"}, Binding: bound, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	if got := m.CurrentStep(); got != "bar" {
		t.Fatalf("current = %q, want bound value %q", got, "bar")
	}

	if err := m.TransitionToNext(nil); err != nil {
		t.Fatalf("TransitionToNext: %v", err)
	}
	if v, _ := bound.Value(); v != "baz" {
		t.Fatalf("binding = %q, want %q", v, "baz")
	}

	// Sync after our own write is a no-op.
	if err := m.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got := m.CurrentStep(); got != "baz" {
		t.Fatalf("current = %q, want %q", got, "baz")
	}
}

func TestManagerSyncFollowsExternalChanges(t *testing.T) {
	bound := NewBoundStep("foo")
	m, err := New(Options{Steps: []string{"foo", "bar", "baz"}, Binding: bound, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	bound.Set("baz")
	if err := m.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got := m.CurrentStep(); got != "baz" {
		t.Fatalf("current = %q, want %q", got, "baz")
	}

	bound.Unset()
	if err := m.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got := m.CurrentStep(); got != "foo" {
		t.Fatalf("current = %q, want first step %q", got, "foo")
	}

	bound.Set("missing")
	if err := m.Sync(); !IsInvalidStep(err) {
		t.Fatalf("expected InvalidStepError, got %v", err)
	}
}

type readOnlyBinding string

func (b readOnlyBinding) Value() (string, bool) { return string(b), b != "" }

func TestManagerLeavesReadOnlyBindingAlone(t *testing.T) {
	m, err := New(Options{Steps: []string{"foo", "bar"}, Binding: readOnlyBinding("foo"), Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	_ = m.TransitionToNext(nil)
	if err := m.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got := m.CurrentStep(); got != "bar" {
		t.Fatalf("current = %q, want %q", got, "bar")
	}
}

func TestManagerNotifiesAfterBindingUpdate(t *testing.T) {
	bound := NewBoundStep("foo")
	var seen string
	m, err := New(Options{
		Steps:   []string{"foo", "bar"},
		Binding: bound,
		OnTransition: func(req transition.Request) {
			seen, _ = bound.Value()
		},
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	_ = m.TransitionTo("bar", nil)
	if seen != "bar" {
		t.Fatalf("binding seen by notifier = %q, want %q", seen, "bar")
	}
}
