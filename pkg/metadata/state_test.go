package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

func TestSession_StateAbsentUntilFirstMutation(t *testing.T) {
	// given:
	registry := metadata.NewMemoryRegistry()
	sess := metadata.NewSession(registry)

	// then:
	require.False(t, registry.Exists(metadata.StateSlot))
	require.Equal(t, metadata.State{}, sess.State())

	// when:
	sess.SetKey("test")

	// then:
	require.True(t, registry.Exists(metadata.StateSlot))
}

func TestSession_VarsAccumulateAcrossCalls(t *testing.T) {
	// given:
	sess := metadata.NewSession(metadata.NewMemoryRegistry())

	// when:
	sess.SetValue("name", "A")
	sess.SetValue("section", "B")

	// then:
	require.Equal(t, map[string]string{"%name%": "A", "%section%": "B"}, sess.State().Vars)
}

func TestSession_LastWriteWinsOnDuplicateVar(t *testing.T) {
	// given:
	sess := metadata.NewSession(metadata.NewMemoryRegistry())

	// when:
	sess.SetValue("name", "A")
	sess.SetValue("name", "B")

	// then:
	require.Equal(t, map[string]string{"%name%": "B"}, sess.State().Vars)
}

func TestSession_BatchFormMatchesSingleForm(t *testing.T) {
	// given:
	batch := metadata.NewSession(metadata.NewMemoryRegistry())
	single := metadata.NewSession(metadata.NewMemoryRegistry())

	// when:
	batch.SetValues(map[string]string{"x": "1", "y": "2"})
	single.SetValue("x", "1")
	single.SetValue("y", "2")

	// then:
	require.Equal(t, single.State().Vars, batch.State().Vars)
}

func TestSession_KeySurvivesVariableMutations(t *testing.T) {
	// given:
	sess := metadata.NewSession(metadata.NewMemoryRegistry())

	// when:
	sess.SetKey("test")
	sess.SetValues(map[string]string{"name": "A"})
	sess.SetValue("section", "B")

	// then:
	st := sess.State()
	require.Equal(t, "test", st.Key)
	require.Equal(t, map[string]string{"%name%": "A", "%section%": "B"}, st.Vars)
}

func TestSession_LaterKeyOverwritesEarlierOne(t *testing.T) {
	// given:
	sess := metadata.NewSession(metadata.NewMemoryRegistry())

	// when:
	sess.SetKey("first")
	sess.SetKey("second")

	// then:
	require.Equal(t, "second", sess.State().Key)
}

func TestSession_ApplyMutationsInOrder(t *testing.T) {
	// given:
	sess := metadata.NewSession(metadata.NewMemoryRegistry())

	// when:
	sess.Apply(
		metadata.SetKey("test"),
		metadata.SetVar{Name: "name", Value: "A"},
		metadata.SetVars{"name": "B", "section": "C"},
	)

	// then:
	st := sess.State()
	require.Equal(t, "test", st.Key)
	require.Equal(t, map[string]string{"%name%": "B", "%section%": "C"}, st.Vars)
}

func TestNewSession_NilRegistryPanics(t *testing.T) {
	require.Panics(t, func() { metadata.NewSession(nil) })
}
