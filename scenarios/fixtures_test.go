package scenarios

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAccountId = "111122223333"
	sandboxOuArn  = "arn:aws:organizations::111122223333:ou/o-example/ou-sandbox"
)

var fastPoll = awsutils.PollPolicy{
	InitialInterval: time.Millisecond,
	MaxInterval:     time.Millisecond,
	Multiplier:      1,
	Timeout:         time.Second,
}

func newBoltState(t *testing.T) state.StateManager {
	mgr := &state.BoltStateManager{Path: filepath.Join(t.TempDir(), "state.db"), Namespace: "test"}
	require.Nil(t, mgr.Initialize(context.TODO()))
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func expectCallerIdentity(ctrl *gomock.Controller) *mock_awsapis.MockStsApi {
	mockSts := mock_awsapis.NewMockStsApi(ctrl)
	mockSts.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).Times(1).
		Return(&sts.GetCallerIdentityOutput{Account: aws.String(testAccountId)}, nil)
	return mockSts
}

// expectSandboxOu sets up an organization whose root already holds the
// Sandbox OU
func expectSandboxOu(ctrl *gomock.Controller) *mock_awsapis.MockOrganizationsApi {
	mockOrgs := mock_awsapis.NewMockOrganizationsApi(ctrl)
	mockPager := mock_awsapis.NewMockListOrganizationalUnitsForParentPager(ctrl)

	mockOrgs.EXPECT().DescribeOrganization(gomock.Any(), gomock.Any()).Times(1).
		Return(&organizations.DescribeOrganizationOutput{
			Organization: &orgtypes.Organization{Id: aws.String("o-example"), MasterAccountId: aws.String(testAccountId)},
		}, nil)
	mockOrgs.EXPECT().ListRoots(gomock.Any(), gomock.Any()).Times(1).
		Return(&organizations.ListRootsOutput{Roots: []orgtypes.Root{{Id: aws.String("r-root")}}}, nil)
	mockOrgs.EXPECT().NewListOrganizationalUnitsForParentPaginator(gomock.Any()).Times(1).Return(mockPager)
	gomock.InOrder(
		mockPager.EXPECT().HasMorePages().Return(true),
		mockPager.EXPECT().NextPage(gomock.Any()).Return(&organizations.ListOrganizationalUnitsForParentOutput{
			OrganizationalUnits: []orgtypes.OrganizationalUnit{{
				Id:   aws.String("ou-sandbox"),
				Arn:  aws.String(sandboxOuArn),
				Name: aws.String("Sandbox"),
			}},
		}, nil),
		mockPager.EXPECT().HasMorePages().Return(false),
	)
	return mockOrgs
}
