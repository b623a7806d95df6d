package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BrandonKowalski/steps/pkg/steps"
)

func TestParseTOML(t *testing.T) {
	data := []byte(`
initial = "b"

[[step]]
name = "a"
title = "step.a"

[[step]]
name = "b"
require_value = true

[[step]]

[settings]
log_level = "debug"
locale = "es"
messages = ["active.es.toml"]
validation_delay_ms = 250
`)
	def, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := def.StepNames(), []string{"a", "b", "2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	if def.Initial != "b" {
		t.Errorf("initial = %q, want %q", def.Initial, "b")
	}
	if s, ok := def.Step("b"); !ok || !s.RequireValue {
		t.Errorf("step b should require a value")
	}
	if s, _ := def.Step("a"); s.Title != "step.a" {
		t.Errorf("title = %q, want %q", s.Title, "step.a")
	}
	if def.Settings.LogLevel != "debug" || def.Settings.Locale != "es" || def.Settings.ValidationDelayMS != 250 {
		t.Errorf("settings = %+v", def.Settings)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
steps:
  - name: intro
  - name: finish
    require_value: true
settings:
  locale: en
`)
	def, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := def.StepNames(), []string{"intro", "finish"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	if s, _ := def.Step("finish"); !s.RequireValue {
		t.Errorf("finish should require a value")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no steps", `initial = "a"`, "no steps defined"},
		{"duplicate", "[[step]]\nname = \"a\"\n[[step]]\nname = \"a\"\n", `step[1]: name "a" already used by step[0]`},
		{"bad initial", "initial = \"zz\"\n[[step]]\nname = \"a\"\n", `step name "zz" is invalid`},
		{"negative delay", "[[step]]\nname = \"a\"\n[settings]\nvalidation_delay_ms = -1\n", "must not be negative"},
		{"bad toml", "[[step]\n", "parse definition"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatTOML)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestInitialErrorIsInvalidStep(t *testing.T) {
	_, err := Parse([]byte("initial = \"zz\"\n[[step]]\nname = \"a\"\n"), FormatTOML)
	if !steps.IsInvalidStep(err) {
		t.Fatalf("expected a wrapped InvalidStepError, got %v", err)
	}
}

func TestLoadResolvesMessagePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wizard.toml")
	content := "[[step]]\nname = \"a\"\n[settings]\nmessages = [\"active.es.toml\", \"/abs/active.fr.toml\"]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	def, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{filepath.Join(dir, "active.es.toml"), "/abs/active.fr.toml"}
	if got := def.MessagePaths(); !reflect.DeepEqual(got, want) {
		t.Fatalf("message paths = %v, want %v", got, want)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("wizard.ini"); err == nil {
		t.Fatalf("expected an error for .ini files")
	}
}

func TestDefaultBuildsAManager(t *testing.T) {
	def := Default()
	m, err := steps.New(def.Options())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	if got := m.CurrentStep(); got != "welcome" {
		t.Fatalf("current = %q, want %q", got, "welcome")
	}
	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("STEPS_LOG_LEVEL", "debug")
	t.Setenv("STEPS_LOCALE", "")

	def := Default()
	def.ApplyEnv()
	if def.Settings.LogLevel != "debug" {
		t.Errorf("log level = %q, want %q", def.Settings.LogLevel, "debug")
	}
	if def.Settings.Locale != "en" {
		t.Errorf("locale = %q, want %q", def.Settings.Locale, "en")
	}
}
