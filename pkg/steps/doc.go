// Package steps manages a sequence of named steps, such as the panes of a
// setup wizard, where exactly one step is current at a time.
//
// Steps are registered in order and navigated cyclically: the step after the
// last is the first, and the step before the first is the last. Moving
// between steps goes through a transition.Controller, which can ask a
// validation hook for approval and notifies observers once a move is made.
//
// # Basic Usage
//
//	m, err := steps.New(steps.Options{
//	    Steps: []string{"account", "profile", "confirm"},
//	    Validator: transition.Sync(func(req transition.Request) bool {
//	        return req.Payload != nil
//	    }),
//	    OnTransition: func(req transition.Request) {
//	        fmt.Printf("%s -> %s\n", req.From, req.To)
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	_ = m.TransitionToNext(form)
//
// # Bindings
//
// A Binding supplies the initial step from outside the Manager. When it is a
// MutableBinding holding a value, each committed transition is written back
// to it. Call Sync after changing it externally.
//
// Rendering step content is left to the host; the Manager only answers
// which step is current and which steps exist.
package steps
