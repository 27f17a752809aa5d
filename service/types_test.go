package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdkmi "github.com/aws/aws-sdk-go-v2/service/medicalimaging"
	"github.com/aws/aws-sdk-go-v2/service/medicalimaging/types"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/mcastellin/aws-scenarios/service/medicalimaging"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResourceTypesAreRegistered(t *testing.T) {
	cleaners := InitCleaners()

	assert.ElementsMatch(t, []string{
		domain.ResourceTypeCloudFormationStack,
		domain.ResourceTypeLandingZone,
		domain.ResourceTypeEnabledBaseline,
		domain.ResourceTypeEnabledControl,
		domain.ResourceTypeImageSet,
		domain.ResourceTypeCopiedObjects,
	}, cleaners.ResourceTypes())
}

func TestRecordAndDescribeState(t *testing.T) {
	mgr := &state.BoltStateManager{Path: filepath.Join(t.TempDir(), "state.db")}
	require.Nil(t, mgr.Initialize(context.TODO()))
	defer mgr.Close()

	err := Record(context.TODO(), mgr, domain.ResourceTypeCloudFormationStack, "my-stack",
		domain.StackState{StackName: "my-stack"})
	require.Nil(t, err)

	s, err := mgr.GetState(context.TODO(), domain.ResourceTypeCloudFormationStack, "my-stack")
	require.Nil(t, err)

	description, err := InitCleaners().DescribeState(*s)
	require.Nil(t, err)
	assert.Equal(t, "CloudFormation stack: my-stack", description)
}

func TestDescribeUnknownState(t *testing.T) {
	_, err := InitCleaners().DescribeState(state.ResourceState{ResourceType: "ecs-service", Key: "/default/ecs-service/x"})

	assert.NotNil(t, err)
}

func TestDescribeCorruptState(t *testing.T) {
	_, err := InitCleaners().DescribeState(state.ResourceState{
		ResourceType: domain.ResourceTypeLandingZone,
		State:        []byte("{"),
	})

	assert.NotNil(t, err)
}

func TestCleanupImageSets(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	deleted := []string{}
	mockApi.EXPECT().DeleteImageSet(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, params *sdkmi.DeleteImageSetInput,
			f ...func(*sdkmi.Options)) (*sdkmi.DeleteImageSetOutput, error) {

			assert.Equal(t, "ds-1", aws.ToString(params.DatastoreId))
			deleted = append(deleted, aws.ToString(params.ImageSetId))
			if aws.ToString(params.ImageSetId) == "is-2" {
				return nil, &types.ResourceNotFoundException{Message: aws.String("gone")}
			}
			return &sdkmi.DeleteImageSetOutput{}, nil
		})

	clients := &Clients{MedicalImaging: &medicalimaging.MedicalImaging{Api: mockApi}}
	err := InitCleaners().CleanupState(context.TODO(), state.ResourceState{
		ResourceType: domain.ResourceTypeImageSet,
		State:        []byte(`{"datastoreId":"ds-1","importJobId":"job-1","imageSetIds":["is-1","is-2"]}`),
	}, clients)

	assert.Nil(t, err)
	assert.Equal(t, []string{"is-1", "is-2"}, deleted)
}
