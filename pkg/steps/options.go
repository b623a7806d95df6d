package steps

import (
	"log/slog"

	"github.com/BrandonKowalski/steps/pkg/steps/transition"
)

// Options configures a Manager.
type Options struct {
	InitialStep  string               // Explicit initial step; ignored when Binding holds a value
	Steps        []string             // Steps registered at construction, in order ("" assigns the index)
	Binding      Binding              // Externally owned current-step value, kept in sync after commits
	Validator    transition.Validator // Called before each transition; nil commits immediately
	OnTransition transition.Notifier  // Called after each committed transition
	Logger       *slog.Logger         // Defaults to GetLogger()
}

// initialStep resolves the starting step from the binding or InitialStep.
func (o Options) initialStep() (string, bool) {
	if o.Binding != nil {
		if v, ok := o.Binding.Value(); ok && v != "" {
			return v, true
		}
	}
	return o.InitialStep, false
}
