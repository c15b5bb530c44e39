package metadata_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p0lemic/SIFO/pkg/metadata"
	"github.com/p0lemic/SIFO/pkg/metadata/testabilities"
)

func TestResolver_NoStateAndNoRouteMatchFallsBackToDefault(t *testing.T) {
	// given:
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{
		Table:     testabilities.DefaultTable,
		Language:  "en",
		TableCall: true,
	})
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{
		Routes:            nil,
		ReversalRouteCall: true,
	})
	resolver := metadata.NewResolver(source, reverser)
	sess := metadata.NewSession(metadata.NewMemoryRegistry())

	// when: resolved repeatedly with nothing recorded
	for range 3 {
		fields, err := resolver.Get(sess, "en", "/nowhere")

		// then: exactly the default entry, no substitution applied
		require.NoError(t, err)
		require.Equal(t, metadata.Fields{
			"title":       "Home",
			"description": "Welcome to %brand%",
		}, fields)
	}

	source.AssertCalled()
	reverser.AssertCalled()
}

func TestResolver_ExplicitKeyTakesPrecedenceOverMatchingRoute(t *testing.T) {
	// given: both a valid key and a matching reversed route
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{
		Table:     testabilities.DefaultTable,
		TableCall: true,
	})
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{
		Routes:            map[string]string{"/users/alice": "user_profile"},
		ReversalRouteCall: false,
	})
	resolver := metadata.NewResolver(source, reverser)
	sess := metadata.NewSession(metadata.NewMemoryRegistry())
	sess.SetKey("test")

	// when:
	fields, err := resolver.Get(sess, "en", "/users/alice")

	// then: the key's entry wins and the reverser is never consulted
	require.NoError(t, err)
	require.Equal(t, metadata.Fields{"title": "%name% - %section%. Brand"}, fields)
	reverser.AssertCalled()
}

func TestResolver_ReversedRouteSelectsTableEntry(t *testing.T) {
	// given:
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{
		Table:     testabilities.DefaultTable,
		TableCall: true,
	})
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{
		Routes:            map[string]string{"/users/alice": "user_profile"},
		ReversalRouteCall: true,
	})
	resolver := metadata.NewResolver(source, reverser)
	sess := metadata.NewSession(metadata.NewMemoryRegistry())
	sess.SetValue("name", "Alice")

	// when:
	fields, err := resolver.Get(sess, "en", "/users/alice")

	// then:
	require.NoError(t, err)
	require.Equal(t, metadata.Fields{
		"title":    "Alice | Profiles",
		"keywords": "profile, Alice",
	}, fields)
}

func TestResolver_RouteNameWithoutTableEntryFallsBackToDefault(t *testing.T) {
	// given: the path reverses to a route the table does not mention
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{
		Table:     testabilities.DefaultTable,
		TableCall: true,
	})
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{
		Routes:            map[string]string{"/cart": "cart"},
		ReversalRouteCall: true,
	})
	resolver := metadata.NewResolver(source, reverser)

	// when:
	fields, err := resolver.Get(nil, "en", "/cart")

	// then:
	require.NoError(t, err)
	require.Equal(t, metadata.Fields{
		"title":       "Home",
		"description": "Welcome to %brand%",
	}, fields)
}

func TestResolver_ExplicitKeyAbsentFromTableFails(t *testing.T) {
	// given:
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{
		Table:     testabilities.DefaultTable,
		TableCall: true,
	})
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{})
	resolver := metadata.NewResolver(source, reverser)
	sess := metadata.NewSession(metadata.NewMemoryRegistry())
	sess.SetKey("missing")

	// when:
	fields, err := resolver.Get(sess, "en", "/")

	// then:
	require.Nil(t, fields)
	var appErr metadata.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, metadata.ErrorTypeNotFound, appErr.ErrorType())
	reverser.AssertCalled()
}

func TestResolver_TableSourceFailurePropagates(t *testing.T) {
	// given:
	sourceErr := metadata.NewTableResourceError("lang/metadata_en", errors.New("no such resource"))
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{
		Error:     sourceErr,
		TableCall: true,
	})
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{})
	resolver := metadata.NewResolver(source, reverser)

	// when:
	fields, err := resolver.Get(nil, "en", "/")

	// then:
	require.Nil(t, fields)
	var appErr metadata.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, metadata.ErrorTypeConfigurationFailure, appErr.ErrorType())
	reverser.AssertCalled()
}

func TestResolver_EndToEndExample(t *testing.T) {
	// given: the canonical controller-then-render flow
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{
		Table: metadata.Table{
			"default": metadata.Template{"title": "Home"},
			"test":    metadata.Template{"title": "%name% - %section%. Brand"},
		},
		TableCall: true,
	})
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{})
	resolver := metadata.NewResolver(source, reverser)
	sess := metadata.NewSession(metadata.NewMemoryRegistry())

	// when:
	sess.SetKey("test")
	sess.SetValue("name", "Test name")
	sess.SetValue("section", "Test section")
	fields, err := resolver.Get(sess, "en", "/")

	// then:
	require.NoError(t, err)
	require.Equal(t, metadata.Fields{"title": "Test name - Test section. Brand"}, fields)
}

func TestNewResolver_NilCollaboratorsPanic(t *testing.T) {
	reverser := testabilities.NewRouteReverserMock(t, testabilities.RouteReverserMockExpectations{})
	source := testabilities.NewTableSourceMock(t, testabilities.TableSourceMockExpectations{})

	require.Panics(t, func() { metadata.NewResolver(nil, reverser) })
	require.Panics(t, func() { metadata.NewResolver(source, nil) })
}
