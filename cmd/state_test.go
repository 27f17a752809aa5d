package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndReadEntries(t *testing.T) {
	env := newTestEnvironment(t)
	ctx := context.TODO()

	save := &SaveEntry{
		Env:          env,
		ResourceType: domain.ResourceTypeCloudFormationStack,
		ResourceKey:  "my-stack",
		Payload:      `{"stackName":"my-stack"}`,
	}
	require.Nil(t, save.Run(ctx))

	fromStdin := &SaveEntry{
		Env:           env,
		ResourceType:  domain.ResourceTypeImageSet,
		ResourceKey:   "job-1",
		ReadFromStdin: true,
		Stdin:         strings.NewReader(`{"datastoreId":"ds-1"}`),
	}
	require.Nil(t, fromStdin.Run(ctx))

	out := &bytes.Buffer{}
	read := &ReadEntries{Env: env, ResourceType: domain.ResourceTypeCloudFormationStack, Out: out}
	require.Nil(t, read.Run(ctx))

	var entries []LedgerEntry
	require.Nil(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, LedgerEntry{
		Namespace:    "test",
		ResourceType: domain.ResourceTypeCloudFormationStack,
		ResourceKey:  "my-stack",
		State:        `{"stackName":"my-stack"}`,
	}, entries[0])
}

func TestReadEntriesEmpty(t *testing.T) {
	env := newTestEnvironment(t)
	out := &bytes.Buffer{}

	err := (&ReadEntries{Env: env, Out: out}).Run(context.TODO())

	require.Nil(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestSaveEntryRejectsInvalidPayloads(t *testing.T) {
	env := newTestEnvironment(t)

	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "not json", data: "stack=my-stack"},
		{name: "wrong shape", data: `["my-stack"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			save := &SaveEntry{Env: env, ResourceType: domain.ResourceTypeCloudFormationStack,
				ResourceKey: "key", Payload: tt.data}
			assert.NotNil(t, save.Run(context.TODO()))
		})
	}
}

func TestSaveEntryRejectsUnknownResourceType(t *testing.T) {
	env := newTestEnvironment(t)

	err := (&SaveEntry{Env: env, ResourceType: "ec2-instance", ResourceKey: "i-1", Payload: `{}`}).
		Run(context.TODO())

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), `unknown resource type "ec2-instance"`)
	assert.Contains(t, err.Error(), domain.ResourceTypeCloudFormationStack)
	assert.Contains(t, err.Error(), domain.ResourceTypeCopiedObjects)

	states, qerr := env.State.QueryStates(context.TODO(), &state.QueryStatesInput{})
	require.Nil(t, qerr)
	assert.Empty(t, states)
}

func TestDeleteEntry(t *testing.T) {
	env := newTestEnvironment(t)
	ctx := context.TODO()
	require.Nil(t, env.State.Save(ctx, domain.ResourceTypeCloudFormationStack, "my-stack", []byte(`{}`)))

	del := &DeleteEntry{Env: env, ResourceType: domain.ResourceTypeCloudFormationStack, ResourceKey: "my-stack"}
	require.Nil(t, del.Run(ctx))

	_, err := env.State.GetState(ctx, domain.ResourceTypeCloudFormationStack, "my-stack")
	assert.ErrorIs(t, err, state.ErrStateNotFound)

	err = del.Run(ctx)
	assert.ErrorIs(t, err, state.ErrStateNotFound)
}
