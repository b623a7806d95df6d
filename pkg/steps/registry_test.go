package steps

import (
	"reflect"
	"testing"
)

func TestRegistryAssignsIndexNames(t *testing.T) {
	r := NewRegistry()

	names := []string{}
	for _, in := range []string{"", "intro", ""} {
		name, err := r.Add(in)
		if err != nil {
			t.Fatalf("Add(%q): %v", in, err)
		}
		names = append(names, name)
	}

	want := []string{"0", "intro", "2"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	if !reflect.DeepEqual(r.Steps(), want) {
		t.Fatalf("steps = %v, want %v", r.Steps(), want)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("foo"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err := r.Add("foo")
	if !IsDuplicateStep(err) {
		t.Fatalf("expected DuplicateStepError, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}

	// The next fallback name is "2", so register it explicitly first.
	if _, err := r.Add("2"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := r.Add(""); !IsDuplicateStep(err) {
		t.Fatalf("expected fallback collision to be rejected, got %v", err)
	}
}

func TestRegistryStepsIsACopy(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("foo")

	steps := r.Steps()
	steps[0] = "mutated"

	if r.At(0) != "foo" {
		t.Fatalf("registry was mutated through Steps()")
	}
}

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("foo")
	_, _ = r.Add("bar")

	if r.IndexOf("bar") != 1 || r.IndexOf("nope") != -1 {
		t.Fatalf("IndexOf mismatch")
	}
	if !r.Contains("foo") || r.Contains("nope") {
		t.Fatalf("Contains mismatch")
	}
	if r.At(5) != "" || r.At(-1) != "" {
		t.Fatalf("At out of range should return empty")
	}
}

func TestRegistryClosest(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Add("account")
	_, _ = r.Add("profile")

	if got := r.Closest("acount"); got != "account" {
		t.Fatalf("Closest = %q, want %q", got, "account")
	}
	if got := r.Closest("zzzzzzzz"); got != "" {
		t.Fatalf("Closest = %q, want no suggestion", got)
	}
}
