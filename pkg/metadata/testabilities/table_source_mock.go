package testabilities

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

// Standard tables that can be used for testing
var (
	// EmptyTable carries only the required default entry.
	EmptyTable = metadata.Table{
		"default": metadata.Template{"title": "Home"},
	}

	// DefaultTable contains standard table entries for testing.
	DefaultTable = metadata.Table{
		"default": metadata.Template{
			"title":       "Home",
			"description": "Welcome to %brand%",
		},
		"test": metadata.Template{
			"title": "%name% - %section%. Brand",
		},
		"user_profile": metadata.Template{
			"title":    "%name% | Profiles",
			"keywords": "profile, %name%",
		},
	}
)

// TableSourceMockExpectations defines the expected behavior of the TableSourceMock during a test.
type TableSourceMockExpectations struct {
	Table     metadata.Table
	Error     error
	Language  string
	TableCall bool
}

// TableSourceMock is a mock implementation of a metadata table source,
// used for testing the behavior of components that depend on table loading.
type TableSourceMock struct {
	t            *testing.T
	expectations TableSourceMockExpectations
	calls        int
}

// Table returns the predefined table or error after verifying the requested language.
func (m *TableSourceMock) Table(language string) (metadata.Table, error) {
	m.t.Helper()
	m.calls++
	if m.expectations.Language != "" {
		require.Equal(m.t, m.expectations.Language, language, "Discrepancy between expected and actual table language")
	}
	if m.expectations.Error != nil {
		return nil, m.expectations.Error
	}
	return m.expectations.Table, nil
}

// Calls returns the number of Table invocations observed so far.
func (m *TableSourceMock) Calls() int { return m.calls }

// AssertCalled verifies that the Table method was called if it was expected to be.
func (m *TableSourceMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.TableCall, m.calls > 0, "Discrepancy between expected and actual Table call")
}

// NewTableSourceMock creates a new instance of TableSourceMock with the given expectations.
func NewTableSourceMock(t *testing.T, expectations TableSourceMockExpectations) *TableSourceMock {
	return &TableSourceMock{
		t:            t,
		expectations: expectations,
	}
}
