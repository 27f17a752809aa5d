package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/mcastellin/aws-scenarios/config"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestEnvironment returns an environment backed by a bolt ledger in a
// temporary directory. The provider is left nil so every AWS client must be
// injected by the test.
func newTestEnvironment(t *testing.T) *Environment {
	cfg := config.DefaultConfig()
	cfg.State = config.StateConfig{
		Backend:   config.StateBackendBolt,
		Namespace: "test",
		File:      filepath.Join(t.TempDir(), "state.db"),
	}

	mgr := &state.BoltStateManager{Path: cfg.State.File, Namespace: cfg.State.Namespace}
	require.Nil(t, mgr.Initialize(context.TODO()))

	env := &Environment{Config: cfg, State: mgr}
	t.Cleanup(func() { env.Close() })
	return env
}

func objectsPager(ctrl *gomock.Controller, keys ...string) *mock_awsapis.MockListObjectsV2Pager {
	pager := mock_awsapis.NewMockListObjectsV2Pager(ctrl)
	out := &s3.ListObjectsV2Output{}
	for _, k := range keys {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	gomock.InOrder(
		pager.EXPECT().HasMorePages().Return(true),
		pager.EXPECT().NextPage(gomock.Any()).Return(out, nil),
		pager.EXPECT().HasMorePages().Return(false),
	)
	return pager
}
