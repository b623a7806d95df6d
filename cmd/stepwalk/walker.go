package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/BrandonKowalski/steps/pkg/steps"
	"github.com/BrandonKowalski/steps/pkg/steps/config"
	"github.com/BrandonKowalski/steps/pkg/steps/locale"
	"github.com/BrandonKowalski/steps/pkg/steps/transition"
)

// walker drives a Manager from line-based commands.
type walker struct {
	def     *config.Definition
	catalog *locale.Catalog
	manager *steps.Manager
	delay   time.Duration

	mu  sync.Mutex
	out io.Writer
}

func newWalker(def *config.Definition, catalog *locale.Catalog, out io.Writer) (*walker, error) {
	w := &walker{
		def:     def,
		catalog: catalog,
		delay:   time.Duration(def.Settings.ValidationDelayMS) * time.Millisecond,
		out:     out,
	}

	opts := def.Options()
	opts.Validator = w.validate
	opts.OnTransition = w.transitioned

	m, err := steps.New(opts)
	if err != nil {
		return nil, err
	}
	w.manager = m
	return w, nil
}

func (w *walker) println(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, s)
}

// validate blocks leaving a step that requires a value until one is given.
// Moving backwards is always allowed.
func (w *walker) validate(ctx context.Context, req transition.Request) *transition.Deferred {
	step, _ := w.def.Step(req.From)
	value, _ := req.Payload.(string)
	ok := !step.RequireValue || req.Direction == transition.DirectionPrevious || strings.TrimSpace(value) != ""

	report := func() (any, error) {
		if !ok {
			w.println(warnMsg("%s", w.catalog.Text(locale.MsgRejected, map[string]any{"Step": w.title(req.From)})))
		}
		return ok, nil
	}

	if w.delay == 0 {
		v, _ := report()
		return transition.Resolved(v)
	}

	w.println(infoMsg("%s", w.catalog.Text(locale.MsgLoading, nil)))
	return transition.Go(func() (any, error) {
		select {
		case <-time.After(w.delay):
			return report()
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

func (w *walker) transitioned(req transition.Request) {
	w.println(successMsg("%s → %s", w.title(req.From), w.title(req.To)))
}

func (w *walker) title(name string) string {
	step, _ := w.def.Step(name)
	return w.catalog.Title(name, step.Title)
}

func (w *walker) header() string {
	current := w.manager.CurrentStep()
	index := 0
	for i, n := range w.manager.Steps() {
		if n == current {
			index = i + 1
			break
		}
	}
	return titleStyle.Render(w.title(current)) + "  " +
		mutedStyle.Render(w.catalog.Progress(index, w.manager.Len()))
}

// run reads commands until quit or end of input.
func (w *walker) run(in io.Reader) error {
	defer w.manager.Close()

	w.println(w.header())
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, err := w.exec(line)
		if err != nil {
			w.println(errorMsg("%s", w.describe(err)))
		}
		if quit {
			return nil
		}
		w.manager.Wait()
		w.println(w.header())
	}
	return scanner.Err()
}

// describe renders err for the user, localizing unknown step names.
func (w *walker) describe(err error) string {
	var invalid *steps.InvalidStepError
	if errors.As(err, &invalid) {
		return w.catalog.Text(locale.MsgUnknown, map[string]any{"Step": invalid.Name})
	}
	return err.Error()
}

func (w *walker) exec(line string) (bool, error) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "next", "n":
		return false, w.manager.TransitionToNext(rest)
	case "prev", "p", "back", "b":
		return false, w.manager.TransitionToPrevious(rest)
	case "go", "g":
		if rest == "" {
			return false, &steps.MissingArgumentError{Arg: "name"}
		}
		target, value, _ := strings.Cut(rest, " ")
		return false, w.manager.TransitionTo(target, strings.TrimSpace(value))
	case "steps", "ls":
		w.println(stepList(w.manager.Steps(), w.manager.CurrentStep()))
		return false, nil
	case "help", "?":
		w.println(helpText)
		return false, nil
	case "quit", "q", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
}
