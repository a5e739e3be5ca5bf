package testutil

import "testing"

// step runs fn as a named subtest. The prefix keeps `go test -run` paths
// readable as a scenario ("Given_.../When_.../Then_...").
func step(t *testing.T, prefix, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return t.Run(prefix+" "+desc, fn)
}

// Given sets up a scenario.
func Given(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "Given", desc, fn)
}

// When performs the action under test inside a Given.
func When(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "When", desc, fn)
}

// Then asserts on the outcome of a When.
func Then(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "Then", desc, fn)
}

// And chains a further assertion onto a Then.
func And(t *testing.T, desc string, fn func(t *testing.T)) bool {
	t.Helper()
	return step(t, "And", desc, fn)
}
