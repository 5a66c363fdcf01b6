package fury

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fury-go/fury/internal/testutil"
)

func TestPatternMatchesExact(t *testing.T) {
	require.True(t, patternMatches("io.example.A", "io.example.A"))
	require.False(t, patternMatches("io.example.A", "io.example.B"))
}

func TestPatternMatchesWildcard(t *testing.T) {
	require.True(t, patternMatches("org.example.*", "org.example.A"))
	require.True(t, patternMatches("org.example.*", "org.example.sub.B"))
	require.False(t, patternMatches("org.example.*", "org.exampleX.A"))
	require.False(t, patternMatches("org.example.*", "org.other.A"))
}

// TestStrictNoPatternsDenies checks that a fresh Strict checker with no
// allow patterns denies everything.
func TestStrictNoPatternsDenies(t *testing.T) {
	c := NewClassChecker(Strict)
	require.False(t, c.Check("io.example.A"))
}

// TestStrictAllowThenDisallow checks that allowing then disallowing an
// exact class name flips Check's verdict and notifies listeners in order.
func TestStrictAllowThenDisallow(t *testing.T) {
	c := NewClassChecker(Strict)
	resolver := testutil.NewRecordingResolver()
	require.NoError(t, c.AddListener(resolver))

	require.NoError(t, c.Allow("io.example.A"))
	require.True(t, c.Check("io.example.A"))

	require.NoError(t, c.Disallow("io.example.A"))
	require.False(t, c.Check("io.example.A"))

	events := resolver.Events()
	require.Len(t, events, 2)
	require.Equal(t, testutil.PolicyEvent{Pattern: "io.example.A", Allow: true}, events[0])
	require.Equal(t, testutil.PolicyEvent{Pattern: "io.example.A", Allow: false}, events[1])
}

// TestStrictWildcardAllowThenDisallow checks that once a
// previously-allowed wildcard is disallowed, a class
// under it is denied — modeling an already-produced payload failing to
// deserialize after the policy tightens.
func TestStrictWildcardAllowThenDisallow(t *testing.T) {
	c := NewClassChecker(Strict)
	require.NoError(t, c.Allow("io.fury.*"))
	require.True(t, c.Check("io.fury.SomeType"))

	require.NoError(t, c.Disallow("io.fury.*"))
	require.False(t, c.Check("io.fury.SomeType"))
}

// TestWarnModeDefaultsToAllow checks that Warn mode allows any class not
// explicitly denied.
func TestWarnModeDefaultsToAllow(t *testing.T) {
	c := NewClassChecker(Warn)
	require.True(t, c.Check("io.example.A"))
	require.True(t, c.Check("io.example.B"))

	require.NoError(t, c.Disallow("io.example.A"))
	require.False(t, c.Check("io.example.A"))
	require.True(t, c.Check("io.example.B"))
}

func TestDenyOverridesAllow(t *testing.T) {
	c := NewClassChecker(Strict)
	require.NoError(t, c.Allow("io.example.*"))
	require.NoError(t, c.Disallow("io.example.Bad"))

	require.True(t, c.Check("io.example.Good"))
	require.False(t, c.Check("io.example.Bad"))
}

// TestConcurrentCheckAndMutate checks that N goroutines calling Check in
// parallel with one goroutine mutating
// observe only permitted states and never crash or race.
func TestConcurrentCheckAndMutate(t *testing.T) {
	c := NewClassChecker(Warn)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = c.Check("io.example.A")
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		require.NoError(t, c.Disallow("io.example.A"))
	}

	close(stop)
	wg.Wait()

	require.False(t, c.Check("io.example.A"))
}

func TestListenerRegistrationOrder(t *testing.T) {
	c := NewClassChecker(Strict)

	var mu sync.Mutex
	var order []string

	makeListener := func(name string) *recordingOrderResolver {
		return &recordingOrderResolver{name: name, mu: &mu, order: &order}
	}

	first := makeListener("first")
	second := makeListener("second")
	require.NoError(t, c.AddListener(first))
	require.NoError(t, c.AddListener(second))

	require.NoError(t, c.Allow("io.example.A"))
	require.Equal(t, []string{"first", "second"}, order)
}

type recordingOrderResolver struct {
	name  string
	mu    *sync.Mutex
	order *[]string
}

func (r *recordingOrderResolver) OnPolicyChange(_ string, _ bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
}

func TestRemoveListenerStopsNotifications(t *testing.T) {
	c := NewClassChecker(Strict)
	resolver := testutil.NewRecordingResolver()
	require.NoError(t, c.AddListener(resolver))
	require.NoError(t, c.RemoveListener(resolver))

	require.NoError(t, c.Allow("io.example.A"))
	require.Empty(t, resolver.Events())
}

func TestListenerPanicIsIsolatedAndReported(t *testing.T) {
	c := NewClassChecker(Strict)
	good := testutil.NewRecordingResolver()

	require.NoError(t, c.AddListener(&testutil.PanickingResolver{Message: "boom"}))
	require.NoError(t, c.AddListener(good))

	err := c.Allow("io.example.A")
	require.ErrorIs(t, err, ErrProgrammerError)
	// The panicking listener didn't stop the remaining one from firing.
	require.Len(t, good.Events(), 1)
}

type recursiveResolver struct {
	checker *ClassChecker
	err     error
}

func (r *recursiveResolver) OnPolicyChange(_ string, _ bool) {
	r.err = r.checker.Allow("io.example.Other")
}

func TestRecursiveMutationFromListenerIsProgrammerError(t *testing.T) {
	c := NewClassChecker(Strict)
	rr := &recursiveResolver{checker: c}
	require.NoError(t, c.AddListener(rr))

	require.NoError(t, c.Allow("io.example.A"))
	require.ErrorIs(t, rr.err, ErrProgrammerError)

	// The checker itself must still be usable afterwards.
	require.NoError(t, c.Allow("io.example.B"))
	require.True(t, c.Check("io.example.B"))
}
