package testutil

import "testing"

// Given, When, and Then label nested subtests so scenario tests read like
// their descriptions. Each runs fn as a t.Run subtest.
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}

// Scenario groups a Given/When/Then chain under a single named subtest.
func Scenario(t *testing.T, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Scenario: "+name, fn)
}
