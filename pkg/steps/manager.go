package steps

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/steps/pkg/steps/transition"
)

// Manager presents a set of steps one at a time. It combines a Navigation
// with a transition.Controller, which is the only writer of the current step.
type Manager struct {
	nav     *Navigation
	ctrl    *transition.Controller
	binding Binding
	logger  *slog.Logger

	mu        sync.Mutex
	lastBound string
}

// New creates a Manager.
//
// The initial step comes from the binding, then Options.InitialStep, then
// the first entry of Options.Steps. If none of these is available New
// returns a MissingConfigurationError.
func New(opts Options) (*Manager, error) {
	initial, bound := opts.initialStep()
	if initial == "" && len(opts.Steps) == 0 {
		return nil, &MissingConfigurationError{Field: "initial step"}
	}

	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}

	nav := NewNavigation(initial)
	for _, name := range opts.Steps {
		if _, err := nav.AddStep(name); err != nil {
			return nil, err
		}
	}
	if initial != "" && len(opts.Steps) > 0 {
		if err := nav.Activate(initial); err != nil {
			return nil, err
		}
	}

	m := &Manager{
		nav:     nav,
		binding: opts.Binding,
		logger:  logger,
	}
	if bound {
		m.lastBound = initial
	}

	m.ctrl = transition.New(nav).
		WithLogger(logger).
		OnValidate(opts.Validator).
		OnTransition(m.syncBinding).
		OnTransition(opts.OnTransition)

	return m, nil
}

// Register adds a step and returns its name. Steps are navigated in the
// order they are registered. An empty name is replaced by the step's index.
func (m *Manager) Register(name string) (string, error) {
	added, err := m.nav.AddStep(name)
	if err != nil {
		return "", err
	}
	m.logger.Debug("step registered", "step", added, "index", m.nav.Len()-1)
	return added, nil
}

// CurrentStep returns the name of the current step.
func (m *Manager) CurrentStep() string {
	return m.nav.Current()
}

// Steps returns all registered step names in order.
func (m *Manager) Steps() []string {
	return m.nav.Steps()
}

// Len returns the number of registered steps.
func (m *Manager) Len() int {
	return m.nav.Len()
}

// Loading reports whether a validation is in progress.
func (m *Manager) Loading() bool {
	return m.ctrl.Loading()
}

// TransitionTo requests a transition to the named step.
func (m *Manager) TransitionTo(name string, payload any) error {
	return m.ctrl.TransitionTo(name, payload, transition.DirectionUnspecified)
}

// TransitionToNext requests a transition to the next step, wrapping from
// the last step to the first.
func (m *Manager) TransitionToNext(payload any) error {
	return m.ctrl.TransitionToNext(payload)
}

// TransitionToPrevious requests a transition to the previous step in
// declared order, wrapping from the first step to the last.
func (m *Manager) TransitionToPrevious(payload any) error {
	return m.ctrl.TransitionToPrevious(payload)
}

// Sync reconciles the current step with the binding after the binding was
// changed from outside. An undefined value activates the first step; a
// changed value activates that step.
func (m *Manager) Sync() error {
	if m.binding == nil {
		return nil
	}

	value, defined := m.binding.Value()

	m.mu.Lock()
	previous := m.lastBound
	m.lastBound = value
	m.mu.Unlock()

	if !defined {
		return m.ctrl.Activate(m.nav.FirstStep())
	}
	if value != "" && value != previous {
		return m.ctrl.Activate(value)
	}
	return nil
}

// Wait blocks until any pending validation has settled.
func (m *Manager) Wait() {
	m.ctrl.Wait()
}

// Close tears the manager down. Pending validations settle without effect.
func (m *Manager) Close() {
	m.ctrl.Dispose()
}

func (m *Manager) syncBinding(req transition.Request) {
	mb, ok := m.binding.(MutableBinding)
	if !ok {
		return
	}
	if value, defined := mb.Value(); !defined || value == "" {
		return
	}
	mb.Set(req.To)

	m.mu.Lock()
	m.lastBound = req.To
	m.mu.Unlock()
}
