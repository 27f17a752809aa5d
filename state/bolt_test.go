package state

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoltManager(t *testing.T, namespace string) *BoltStateManager {
	mgr := &BoltStateManager{Path: filepath.Join(t.TempDir(), "state.db"), Namespace: namespace}
	require.Nil(t, mgr.Initialize(context.TODO()))
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func TestBoltRequiresInitialize(t *testing.T) {
	mgr := &BoltStateManager{Path: filepath.Join(t.TempDir(), "state.db")}

	err := mgr.Save(context.TODO(), "type", "key", nil)

	assert.NotNil(t, err)
}

func TestBoltSaveAndGet(t *testing.T) {
	mgr := newBoltManager(t, "")

	require.Nil(t, mgr.Save(context.TODO(), "cloudformation-stack", "my-stack", []byte(`{"stackName":"my-stack"}`)))

	state, err := mgr.GetState(context.TODO(), "cloudformation-stack", "my-stack")
	require.Nil(t, err)
	assert.Equal(t, "default", state.Namespace)
	assert.Equal(t, "/default/cloudformation-stack/my-stack", state.Key)
	assert.Equal(t, []byte(`{"stackName":"my-stack"}`), state.State)
}

func TestBoltSaveShouldNotOverrideExistingKeys(t *testing.T) {
	mgr := newBoltManager(t, "test")
	require.Nil(t, mgr.Save(context.TODO(), "type", "key", []byte("first")))

	err := mgr.Save(context.TODO(), "type", "key", []byte("second"))

	assert.True(t, errors.Is(err, ErrStateExists))
	state, err := mgr.GetState(context.TODO(), "type", "key")
	require.Nil(t, err)
	assert.Equal(t, []byte("first"), state.State)
}

func TestBoltGetUnknownKey(t *testing.T) {
	mgr := newBoltManager(t, "test")

	_, err := mgr.GetState(context.TODO(), "type", "missing")

	assert.True(t, errors.Is(err, ErrStateNotFound))
}

func TestBoltQueryAndRemove(t *testing.T) {
	mgr := newBoltManager(t, "test")
	require.Nil(t, mgr.Save(context.TODO(), "stack", "b", nil))
	require.Nil(t, mgr.Save(context.TODO(), "stack", "a", nil))
	require.Nil(t, mgr.Save(context.TODO(), "image-set", "a", nil))

	stacks, err := mgr.QueryStates(context.TODO(), &QueryStatesInput{ResourceType: "stack"})
	require.Nil(t, err)
	require.Len(t, stacks, 2)
	assert.Equal(t, "b", stacks[0].ResourceKey)
	assert.Equal(t, "a", stacks[1].ResourceKey)

	byKey, err := mgr.QueryStates(context.TODO(), &QueryStatesInput{ResourceKey: "a"})
	require.Nil(t, err)
	assert.Len(t, byKey, 2)

	require.Nil(t, mgr.RemoveState(context.TODO(), stacks[0]))
	all, err := mgr.QueryStates(context.TODO(), nil)
	require.Nil(t, err)
	assert.Len(t, all, 2)
}

func TestBoltNamespacesAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	first := &BoltStateManager{Path: path, Namespace: "one"}
	require.Nil(t, first.Initialize(context.TODO()))
	require.Nil(t, first.Save(context.TODO(), "stack", "a", nil))
	require.Nil(t, first.Close())

	second := &BoltStateManager{Path: path, Namespace: "two"}
	require.Nil(t, second.Initialize(context.TODO()))
	defer second.Close()

	states, err := second.QueryStates(context.TODO(), nil)
	require.Nil(t, err)
	assert.Empty(t, states)
}
