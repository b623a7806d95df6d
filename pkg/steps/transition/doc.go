// Package transition provides the controller that moves a step sequence from
// one step to another.
//
// A Controller drives a Navigator. Each request names a target step and may
// carry a payload. An optional validation hook decides whether the move is
// committed, and notifiers observe every committed move.
//
// # Basic Usage
//
//	c := transition.New(nav).
//	    OnValidate(func(ctx context.Context, req transition.Request) *transition.Deferred {
//	        return transition.Go(func() (any, error) {
//	            ok, err := saveForm(ctx, req.Payload)
//	            return ok, err
//	        })
//	    }).
//	    OnTransition(func(req transition.Request) {
//	        log.Printf("moved %s -> %s", req.From, req.To)
//	    })
//
//	_ = c.TransitionToNext(formValues)
//
// # Validation
//
// The validator returns a Deferred. Resolving it with exactly false prevents
// the transition; any other value, including nil, allows it. Rejecting it
// with an error also prevents the transition, and the error is logged rather
// than returned. Use Sync to wrap a plain boolean check.
//
// While a validation is pending, Loading reports true and any further
// request is dropped. Nothing is queued.
//
// # Teardown
//
// Dispose stops the controller. Validations that settle afterwards neither
// commit nor clear the loading state. There is no timeout: a Deferred that
// never settles keeps the controller loading until it is disposed.
package transition
