package stacks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateThenWaitReturnsOutputs(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockCloudFormationApi(ctrl)
	mockWaiter := mock_awsapis.NewMockStackCreateCompleteWaiter(ctrl)

	mockApi.EXPECT().CreateStack(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *cloudformation.CreateStackInput,
			f ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {

			assert.Equal(t, "my-stack", aws.ToString(params.StackName))
			assert.Equal(t, []types.Capability{types.CapabilityCapabilityNamedIam}, params.Capabilities)
			require.Len(t, params.Parameters, 2)
			assert.Equal(t, "LoggingAccountEmail", aws.ToString(params.Parameters[0].ParameterKey))
			assert.Equal(t, "SecurityAccountEmail", aws.ToString(params.Parameters[1].ParameterKey))
			return &cloudformation.CreateStackOutput{StackId: aws.String("stack-id")}, nil
		})
	mockApi.EXPECT().NewStackCreateCompleteWaiter().Return(mockWaiter)
	mockWaiter.EXPECT().Wait(gomock.Any(), gomock.Any(), 5*time.Minute).Return(nil)
	mockApi.EXPECT().DescribeStacks(gomock.Any(), gomock.Any()).Times(1).
		Return(&cloudformation.DescribeStacksOutput{
			Stacks: []types.Stack{{
				Outputs: []types.Output{
					{OutputKey: aws.String("LogAccountId"), OutputValue: aws.String("111111111111")},
					{OutputKey: aws.String("SecurityAccountId"), OutputValue: aws.String("222222222222")},
				},
			}},
		}, nil)

	s := &Stacks{Api: mockApi, MaxWait: 5 * time.Minute}
	stackId, err := s.Create(context.TODO(), "my-stack", "template", map[string]string{
		"SecurityAccountEmail": "sec@example.com",
		"LoggingAccountEmail":  "log@example.com",
	})
	require.Nil(t, err)
	assert.Equal(t, "stack-id", stackId)

	outputs, err := s.WaitForCreate(context.TODO(), "my-stack")
	require.Nil(t, err)
	assert.Equal(t, "111111111111", outputs["LogAccountId"])
	assert.Nil(t, RequireOutputs("my-stack", outputs, "LogAccountId", "SecurityAccountId"))
	assert.NotNil(t, RequireOutputs("my-stack", outputs, "DatastoreID"))
}

func TestCreateStackError(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockCloudFormationApi(ctrl)
	mockApi.EXPECT().CreateStack(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"})

	_, err := (&Stacks{Api: mockApi}).Create(context.TODO(), "my-stack", "template", nil)

	assert.Equal(t, domain.KindPermission, domain.Classify(err))
}

func TestWaitForCreateError(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockCloudFormationApi(ctrl)
	mockWaiter := mock_awsapis.NewMockStackCreateCompleteWaiter(ctrl)
	mockApi.EXPECT().NewStackCreateCompleteWaiter().Return(mockWaiter)
	mockWaiter.EXPECT().Wait(gomock.Any(), gomock.Any(), defaultMaxWait).
		Return(errors.New("waiter state transitioned to Failure"))

	_, err := (&Stacks{Api: mockApi}).WaitForCreate(context.TODO(), "my-stack")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "CREATE_COMPLETE")
}

func TestDestroy(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockCloudFormationApi(ctrl)
	mockWaiter := mock_awsapis.NewMockStackDeleteCompleteWaiter(ctrl)
	mockApi.EXPECT().DeleteStack(gomock.Any(), gomock.Any()).Times(1).Return(&cloudformation.DeleteStackOutput{}, nil)
	mockApi.EXPECT().NewStackDeleteCompleteWaiter().Return(mockWaiter)
	mockWaiter.EXPECT().Wait(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := (&Stacks{Api: mockApi}).Destroy(context.TODO(), "my-stack")

	assert.Nil(t, err)
}

func TestReadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.Nil(t, os.WriteFile(path, []byte("Resources: {}"), 0644))

	body, err := ReadTemplate(path)
	require.Nil(t, err)
	assert.Equal(t, "Resources: {}", body)

	_, err = ReadTemplate(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}
