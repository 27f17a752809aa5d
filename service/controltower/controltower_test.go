package controltower

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/controlcatalog"
	cctypes "github.com/aws/aws-sdk-go-v2/service/controlcatalog/types"
	"github.com/aws/aws-sdk-go-v2/service/controltower"
	"github.com/aws/aws-sdk-go-v2/service/controltower/types"
	"github.com/aws/smithy-go"
	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fastPoll = awsutils.PollPolicy{
	InitialInterval: time.Millisecond,
	MaxInterval:     time.Millisecond,
	Multiplier:      1,
	Timeout:         time.Second,
}

const (
	targetArn   = "arn:aws:organizations::111122223333:ou/o-example/ou-sandbox"
	baselineArn = "arn:aws:controltower:us-east-1::baseline/17BSJV3IGJ2QSGA2"
	controlArn  = "arn:aws:controlcatalog:::control/example"
)

func alreadyEnabledError() error {
	return &smithy.GenericAPIError{
		Code:    "ValidationException",
		Message: "Target is already enabled with this baseline",
	}
}

func TestEnableBaselineReturnsOperation(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().EnableBaseline(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *controltower.EnableBaselineInput,
			f ...func(*controltower.Options)) (*controltower.EnableBaselineOutput, error) {

			assert.Equal(t, "4.0", aws.ToString(params.BaselineVersion))
			assert.Equal(t, targetArn, aws.ToString(params.TargetIdentifier))
			require.Len(t, params.Parameters, 1)
			assert.Equal(t, "IdentityCenterEnabledBaselineArn", aws.ToString(params.Parameters[0].Key))
			return &controltower.EnableBaselineOutput{
				Arn:                 aws.String("arn:enabled-baseline"),
				OperationIdentifier: aws.String("op-1"),
			}, nil
		})

	ct := &ControlTower{Api: mockApi, Poll: fastPoll}
	result, err := ct.EnableBaseline(context.TODO(), targetArn, baselineArn, "4.0",
		map[string]any{"IdentityCenterEnabledBaselineArn": "arn:identity-center"})

	require.Nil(t, err)
	assert.Equal(t, domain.EnableResult{Arn: "arn:enabled-baseline", OperationIdentifier: "op-1"}, result)
}

func TestEnableBaselineAlreadyEnabledLooksUpExistingArn(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockPager := mock_awsapis.NewMockListEnabledBaselinesPager(ctrl)

	mockApi.EXPECT().EnableBaseline(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, alreadyEnabledError())
	mockApi.EXPECT().NewListEnabledBaselinesPaginator(gomock.Any()).Times(1).
		DoAndReturn(func(params *controltower.ListEnabledBaselinesInput) *mock_awsapis.MockListEnabledBaselinesPager {
			assert.Equal(t, []string{targetArn}, params.Filter.TargetIdentifiers)
			return mockPager
		})
	gomock.InOrder(
		mockPager.EXPECT().HasMorePages().Return(true),
		mockPager.EXPECT().NextPage(gomock.Any()).Return(&controltower.ListEnabledBaselinesOutput{
			EnabledBaselines: []types.EnabledBaselineSummary{
				{Arn: aws.String("arn:other"), BaselineIdentifier: aws.String("arn:other-baseline")},
				{Arn: aws.String("arn:existing"), BaselineIdentifier: aws.String(baselineArn)},
			},
		}, nil),
		mockPager.EXPECT().HasMorePages().Return(false),
	)

	ct := &ControlTower{Api: mockApi, Poll: fastPoll}
	result, err := ct.EnableBaseline(context.TODO(), targetArn, baselineArn, "4.0", nil)

	require.Nil(t, err)
	assert.True(t, result.AlreadyEnabled)
	assert.Equal(t, "arn:existing", result.Arn)
	assert.Empty(t, result.OperationIdentifier)
}

func TestEnableBaselineOtherValidationErrorIsReturned(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().EnableBaseline(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, &smithy.GenericAPIError{Code: "ValidationException", Message: "bad version"})

	_, err := (&ControlTower{Api: mockApi}).EnableBaseline(context.TODO(), targetArn, baselineArn, "9.9", nil)

	var svcErr *domain.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, domain.KindValidation, svcErr.Kind)
	assert.Equal(t, "EnableBaseline", svcErr.Operation)
}

func TestEnableControlAlreadyEnabledIsSuccess(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().EnableControl(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, &smithy.GenericAPIError{
			Code:    "ValidationException",
			Message: "The control is already enabled on the target",
		})

	result, err := (&ControlTower{Api: mockApi}).EnableControl(context.TODO(), controlArn, targetArn)

	require.Nil(t, err)
	assert.True(t, result.AlreadyEnabled)
}

func TestEnableControlPermissionError(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().EnableControl(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"})

	_, err := (&ControlTower{Api: mockApi}).EnableControl(context.TODO(), controlArn, targetArn)

	assert.Equal(t, domain.KindPermission, domain.Classify(err))
}

func TestDisableControlNotFoundIsSuccess(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().DisableControl(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, &types.ResourceNotFoundException{Message: aws.String("not enabled")})

	opId, err := (&ControlTower{Api: mockApi}).DisableControl(context.TODO(), controlArn, targetArn)

	assert.Nil(t, err)
	assert.Empty(t, opId)
}

func TestWaitForControlOperationSucceeds(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	gomock.InOrder(
		mockApi.EXPECT().GetControlOperation(gomock.Any(), gomock.Any()).Times(2).
			Return(&controltower.GetControlOperationOutput{
				ControlOperation: &types.ControlOperation{Status: types.ControlOperationStatusInProgress},
			}, nil),
		mockApi.EXPECT().GetControlOperation(gomock.Any(), gomock.Any()).Times(1).
			Return(&controltower.GetControlOperationOutput{
				ControlOperation: &types.ControlOperation{Status: types.ControlOperationStatusSucceeded},
			}, nil),
	)

	err := (&ControlTower{Api: mockApi, Poll: fastPoll}).WaitForControlOperation(context.TODO(), "op-1")

	assert.Nil(t, err)
}

// captureLogs routes seelog output to a buffer for the rest of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	captured, err := seelog.LoggerFromWriterWithMinLevelAndFormat(buf, seelog.DebugLvl, "%Msg%n")
	require.Nil(t, err)
	previous := seelog.Current
	require.Nil(t, seelog.UseLogger(captured))
	t.Cleanup(func() {
		seelog.UseLogger(previous)
		captured.Close()
	})
	return buf
}

func TestLogLinesUseNamePrefix(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()
	logs := captureLogs(t)

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().EnableControl(gomock.Any(), gomock.Any()).Times(1).
		Return(&controltower.EnableControlOutput{
			Arn:                 aws.String("arn:enabled-control"),
			OperationIdentifier: aws.String("op-1"),
		}, nil)
	mockApi.EXPECT().GetControlOperation(gomock.Any(), gomock.Any()).Times(1).
		Return(&controltower.GetControlOperationOutput{
			ControlOperation: &types.ControlOperation{Status: types.ControlOperationStatusSucceeded},
		}, nil)

	c := &ControlTower{Api: mockApi, Poll: fastPoll}
	result, err := c.EnableControl(context.TODO(), controlArn, targetArn)
	require.Nil(t, err)
	require.Nil(t, c.WaitForControlOperation(context.TODO(), result.OperationIdentifier))
	seelog.Flush()

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	prefix := regexp.MustCompile(`^[a-z-]+ name=\S+: `)
	for _, line := range lines {
		assert.Regexp(t, prefix, line)
	}
	assert.Contains(t, logs.String(), domain.ResourceTypeEnabledControl+" name="+targetArn+": enabling control")
	assert.Contains(t, logs.String(), resourceTypeOperation+" name=op-1: ")
}

func TestWaitForBaselineOperationFailed(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().GetBaselineOperation(gomock.Any(), gomock.Any()).Times(1).
		Return(&controltower.GetBaselineOperationOutput{
			BaselineOperation: &types.BaselineOperation{
				Status:        types.BaselineOperationStatusFailed,
				StatusMessage: aws.String("drifted"),
			},
		}, nil)

	err := (&ControlTower{Api: mockApi, Poll: fastPoll}).WaitForBaselineOperation(context.TODO(), "op-2")

	var opErr domain.OperationFailedError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "op-2", opErr.OperationIdentifier)
	assert.Equal(t, "FAILED", opErr.Status)
	assert.Equal(t, "drifted", opErr.Message)
}

func TestWaitForLandingZoneOperationTimesOut(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().GetLandingZoneOperation(gomock.Any(), gomock.Any()).MinTimes(1).
		Return(&controltower.GetLandingZoneOperationOutput{
			OperationDetails: &types.LandingZoneOperationDetail{Status: types.LandingZoneOperationStatusInProgress},
		}, nil)

	poll := fastPoll
	poll.Timeout = 20 * time.Millisecond
	err := (&ControlTower{Api: mockApi, Poll: poll}).WaitForLandingZoneOperation(context.TODO(), "op-3")

	assert.True(t, errors.Is(err, awsutils.ErrPollTimeout))
}

func TestWaitWithoutOperationReturnsImmediately(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)

	assert.Nil(t, (&ControlTower{Api: mockApi, Poll: fastPoll}).WaitForControlOperation(context.TODO(), ""))
}

func TestCreateLandingZoneSendsManifest(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	manifest, err := NewManifest(ManifestInput{
		GovernedRegions:        []string{"us-east-1"},
		SecurityOuName:         "Security",
		SandboxOuName:          "Sandbox",
		LogAccountId:           "111111111111",
		SecurityAccountId:      "222222222222",
		LogRetentionDays:       365,
		AccessLogRetentionDays: 3650,
	})
	require.Nil(t, err)

	mockApi := mock_awsapis.NewMockControlTowerApi(ctrl)
	mockApi.EXPECT().CreateLandingZone(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *controltower.CreateLandingZoneInput,
			f ...func(*controltower.Options)) (*controltower.CreateLandingZoneOutput, error) {

			assert.Equal(t, "3.3", aws.ToString(params.Version))
			decoded, err := ManifestFromDocument(params.Manifest)
			require.Nil(t, err)
			assert.Equal(t, manifest, decoded)
			return &controltower.CreateLandingZoneOutput{
				Arn:                 aws.String("arn:landing-zone"),
				OperationIdentifier: aws.String("op-lz"),
			}, nil
		})

	result, err := (&ControlTower{Api: mockApi}).CreateLandingZone(context.TODO(), manifest, "3.3")

	require.Nil(t, err)
	assert.Equal(t, domain.OperationResult{Arn: "arn:landing-zone", OperationIdentifier: "op-lz"}, result)
}

func TestListControlsPaginates(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockCatalog := mock_awsapis.NewMockControlCatalogApi(ctrl)
	mockPager := mock_awsapis.NewMockListControlsPager(ctrl)
	mockCatalog.EXPECT().NewListControlsPaginator(gomock.Any()).Return(mockPager)
	gomock.InOrder(
		mockPager.EXPECT().HasMorePages().Return(true),
		mockPager.EXPECT().NextPage(gomock.Any()).Return(&controlcatalog.ListControlsOutput{
			Controls: []cctypes.ControlSummary{{Arn: aws.String("arn:c1"), Name: aws.String("c1")}},
		}, nil),
		mockPager.EXPECT().HasMorePages().Return(true),
		mockPager.EXPECT().NextPage(gomock.Any()).Return(&controlcatalog.ListControlsOutput{
			Controls: []cctypes.ControlSummary{{Arn: aws.String("arn:c2"), Name: aws.String("c2")}},
		}, nil),
		mockPager.EXPECT().HasMorePages().Return(false),
	)

	controls, err := (&ControlTower{Catalog: mockCatalog}).ListControls(context.TODO())

	require.Nil(t, err)
	require.Len(t, controls, 2)
	assert.Equal(t, "arn:c2", aws.ToString(controls[1].Arn))
}
