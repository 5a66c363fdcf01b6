package fury

import "fmt"

// ClassResolver is the notification target a ClassChecker fires on every
// allow/deny mutation, so that a resolver caching per-class permission
// decisions knows to invalidate them. Implementations must tolerate a
// notification for a pattern they have never seen before.
type ClassResolver interface {
	// OnPolicyChange is called with the mutated pattern and its
	// direction (true = allow, false = deny) once per mutation, in
	// listener-registration order.
	OnPolicyChange(pattern string, allow bool)
}

// AddListener registers resolver to receive future policy-change
// notifications. Registration order determines delivery order.
func (c *ClassChecker) AddListener(resolver ClassResolver) error {
	return c.withMutationLock(func() error {
		c.listeners = append(c.listeners, resolver)
		return nil
	})
}

// RemoveListener unregisters resolver. It is a no-op if resolver was
// never registered.
func (c *ClassChecker) RemoveListener(resolver ClassResolver) error {
	return c.withMutationLock(func() error {
		for i, l := range c.listeners {
			if l == resolver {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// notifyListeners calls every registered listener, in registration
// order, isolating panics: a panicking listener doesn't stop the
// remaining listeners from being notified, but the first panic is
// reported back to the caller as a ProgrammerError once notification
// completes.
func (c *ClassChecker) notifyListeners(pattern string, allow bool) error {
	var firstErr error
	for _, l := range c.listeners {
		if err := notifyOne(l, pattern, allow); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func notifyOne(l ClassResolver, pattern string, allow bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = wrapError(ProgrammerError, "listener callback panicked", fmt.Errorf("%v", r))
		}
	}()
	l.OnPolicyChange(pattern, allow)
	return nil
}
