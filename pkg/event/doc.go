// Package event provides a small synchronous, in-process event dispatcher.
//
// A Dispatcher is parameterised by the payload type it carries. Listeners are
// registered per event name and invoked in registration order on the calling
// goroutine. Payloads are usually pointers so listeners can mutate them and the
// dispatching code can read the changes back once Dispatch returns.
//
//	d := event.NewDispatcher[*Signup]()
//	remove := d.AddListener("user.signup", func(ctx context.Context, s *Signup) error {
//	    s.Email = strings.ToLower(s.Email)
//	    return nil
//	})
//	defer remove()
//
//	if err := d.Dispatch(ctx, signup, "user.signup"); err != nil {
//	    return err
//	}
//
// Dispatch stops at the first listener returning an error and returns that
// error wrapped with the event name. Registration and dispatch are safe for
// concurrent use; the listener list is snapshotted before invocation, so a
// listener may add or remove listeners without deadlocking.
package event
