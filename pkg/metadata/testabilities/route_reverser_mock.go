package testabilities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RouteReverserMockExpectations defines the expected behavior of the RouteReverserMock during a test.
type RouteReverserMockExpectations struct {
	Routes            map[string]string // concrete path -> declared route name
	ReversalRouteCall bool
}

// RouteReverserMock is a mock implementation of a route reverser, used for
// testing route-based metadata selection without a running router.
type RouteReverserMock struct {
	t            *testing.T
	expectations RouteReverserMockExpectations
	called       bool
}

// ReversalRoute returns the predefined route name for the path, or false when unmapped.
func (m *RouteReverserMock) ReversalRoute(path string) (string, bool) {
	m.t.Helper()
	m.called = true
	name, ok := m.expectations.Routes[path]
	return name, ok
}

// AssertCalled verifies that the ReversalRoute method was called if it was expected to be.
func (m *RouteReverserMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.ReversalRouteCall, m.called, "Discrepancy between expected and actual ReversalRoute call")
}

// NewRouteReverserMock creates a new instance of RouteReverserMock with the given expectations.
func NewRouteReverserMock(t *testing.T, expectations RouteReverserMockExpectations) *RouteReverserMock {
	return &RouteReverserMock{
		t:            t,
		expectations: expectations,
	}
}
