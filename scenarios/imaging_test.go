package scenarios

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	sdkmi "github.com/aws/aws-sdk-go-v2/service/medicalimaging"
	mitypes "github.com/aws/aws-sdk-go-v2/service/medicalimaging/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/goccy/go-json"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/config"
	"github.com/mcastellin/aws-scenarios/demotools"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/mcastellin/aws-scenarios/service/bucket"
	"github.com/mcastellin/aws-scenarios/service/imaging"
	"github.com/mcastellin/aws-scenarios/service/medicalimaging"
	"github.com/mcastellin/aws-scenarios/service/stacks"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chestPrefix = "00029d25-fb18-4d42-aaa5-a0897d1ac8f7"

// 2x1 8-bit raster with samples 1 and 2
type fixedCodec struct{}

func (fixedCodec) Decode(codestream []byte) (*imaging.Image, error) {
	return &imaging.Image{Width: 2, Height: 1, Components: 1, BitDepth: 8, Planes: [][]int32{{1, 2}}}, nil
}

var fixedChecksum = crc32.ChecksumIEEE([]byte{1, 2})

func frameMetadata(checksum uint32) string {
	return fmt.Sprintf(`{"DatastoreID": "ds-1", "ImageSetID": "is-1", "Study": {"Series": {"1.1": {"Instances": {"1.1.1": {
  "StoredTransferSyntaxUID": "1.2.840.10008.1.2.4.201",
  "ImageFrames": [{"ID": "frame-1",
    "PixelDataChecksumFromBaseToFullResolution": [{"Width": 2, "Height": 1, "Checksum": %d}]}]
}}}}}}`, checksum)
}

func objectsPager(ctrl *gomock.Controller, keys ...string) *mock_awsapis.MockListObjectsV2Pager {
	pager := mock_awsapis.NewMockListObjectsV2Pager(ctrl)
	out := &s3.ListObjectsV2Output{}
	for _, k := range keys {
		out.Contents = append(out.Contents, s3types.Object{Key: aws.String(k)})
	}
	gomock.InOrder(
		pager.EXPECT().HasMorePages().Return(true),
		pager.EXPECT().NextPage(gomock.Any()).Return(out, nil),
		pager.EXPECT().HasMorePages().Return(false),
	)
	return pager
}

type imagingFixture struct {
	cfn      *mock_awsapis.MockCloudFormationApi
	mi       *mock_awsapis.MockMedicalImagingApi
	s3       *mock_awsapis.MockS3Api
	state    state.StateManager
	out      *bytes.Buffer
	scenario *ImagingScenario
}

func newImagingFixture(t *testing.T, ctrl *gomock.Controller, answers ...string) *imagingFixture {
	f := &imagingFixture{
		cfn:   mock_awsapis.NewMockCloudFormationApi(ctrl),
		mi:    mock_awsapis.NewMockMedicalImagingApi(ctrl),
		s3:    mock_awsapis.NewMockS3Api(ctrl),
		state: newBoltState(t),
		out:   &bytes.Buffer{},
	}

	stk := &stacks.Stacks{Api: f.cfn, MaxWait: time.Minute}
	mi := &medicalimaging.MedicalImaging{Api: f.mi, S3: f.s3, Poll: fastPoll}
	bkt := &bucket.Bucket{Api: f.s3, Workers: 2}

	cfg := config.DefaultConfig().Imaging
	cfg.OutputDir = t.TempDir()
	cfg.TemplateFile = filepath.Join(t.TempDir(), "workflow.yaml")
	require.Nil(t, os.WriteFile(cfg.TemplateFile, []byte("Resources: {}\n"), 0644))

	f.scenario = &ImagingScenario{
		Stacks:         stk,
		MedicalImaging: mi,
		Bucket:         bkt,
		Sts:            expectCallerIdentity(ctrl),
		Ledger:         NewLedger(f.state, &service.Clients{Stacks: stk, MedicalImaging: mi, Bucket: bkt}),
		Questioner:     &demotools.MockQuestioner{Answers: answers},
		Config:         cfg,
		FrameWorkers:   2,
		Codec:          fixedCodec{},
		Out:            f.out,
	}
	return f
}

func (f *imagingFixture) expectStack(t *testing.T, ctrl *gomock.Controller) {
	waiter := mock_awsapis.NewMockStackCreateCompleteWaiter(ctrl)
	f.cfn.EXPECT().CreateStack(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *cloudformation.CreateStackInput,
			opts ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {

			require.Len(t, params.Parameters, 2)
			assert.Equal(t, "my-datastore", aws.ToString(params.Parameters[0].ParameterValue))
			assert.Equal(t, "userAccountID", aws.ToString(params.Parameters[1].ParameterKey))
			assert.Equal(t, testAccountId, aws.ToString(params.Parameters[1].ParameterValue))
			return &cloudformation.CreateStackOutput{StackId: aws.String("stack-id")}, nil
		})
	f.cfn.EXPECT().NewStackCreateCompleteWaiter().Return(waiter)
	waiter.EXPECT().Wait(gomock.Any(), gomock.Any(), time.Minute).Return(nil)
	f.cfn.EXPECT().DescribeStacks(gomock.Any(), gomock.Any()).Times(1).
		Return(&cloudformation.DescribeStacksOutput{
			Stacks: []cfntypes.Stack{{
				Outputs: []cfntypes.Output{
					{OutputKey: aws.String("RoleArn"), OutputValue: aws.String("arn:aws:iam::111122223333:role/import")},
					{OutputKey: aws.String("InputBucketName"), OutputValue: aws.String("input-bucket")},
					{OutputKey: aws.String("OutputBucketName"), OutputValue: aws.String("output-bucket")},
					{OutputKey: aws.String("DatastoreID"), OutputValue: aws.String("ds-1")},
				},
			}},
		}, nil)
	f.mi.EXPECT().GetDatastore(gomock.Any(), gomock.Any()).Times(1).
		Return(&sdkmi.GetDatastoreOutput{
			DatastoreProperties: &mitypes.DatastoreProperties{DatastoreStatus: mitypes.DatastoreStatusActive},
		}, nil)
}

func TestImagingScenarioVerifiesAndCleansUp(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	// data store name, chest CT, start copy, start verification, clean up
	f := newImagingFixture(t, ctrl, "my-datastore", "1", "", "", "y")
	f.expectStack(t, ctrl)

	pagers := map[string]awsapis.ListObjectsV2Pager{
		"idc-open-data/" + chestPrefix + "/": objectsPager(ctrl, chestPrefix+"/a.dcm", chestPrefix+"/b.dcm"),
		"input-bucket/input/" + chestPrefix + "/": objectsPager(ctrl,
			"input/"+chestPrefix+"/a.dcm", "input/"+chestPrefix+"/b.dcm"),
		"output-bucket/output/": objectsPager(ctrl, "output/import_job_job-1/report.json"),
	}
	f.s3.EXPECT().NewListObjectsV2Paginator(gomock.Any()).Times(3).
		DoAndReturn(func(params *s3.ListObjectsV2Input) awsapis.ListObjectsV2Pager {
			pager, ok := pagers[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Prefix)]
			assert.True(t, ok, "unexpected listing of %s/%s", aws.ToString(params.Bucket), aws.ToString(params.Prefix))
			return pager
		})

	var mu sync.Mutex
	copied := []string{}
	f.s3.EXPECT().CopyObject(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, params *s3.CopyObjectInput,
			opts ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {

			assert.Equal(t, "input-bucket", aws.ToString(params.Bucket))
			mu.Lock()
			copied = append(copied, aws.ToString(params.Key))
			mu.Unlock()
			return &s3.CopyObjectOutput{}, nil
		})

	f.mi.EXPECT().StartDICOMImportJob(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *sdkmi.StartDICOMImportJobInput,
			opts ...func(*sdkmi.Options)) (*sdkmi.StartDICOMImportJobOutput, error) {

			assert.Equal(t, "s3://input-bucket/input/"+chestPrefix+"/", aws.ToString(params.InputS3Uri))
			assert.Equal(t, "s3://output-bucket/output/", aws.ToString(params.OutputS3Uri))
			assert.Equal(t, "arn:aws:iam::111122223333:role/import", aws.ToString(params.DataAccessRoleArn))
			return &sdkmi.StartDICOMImportJobOutput{JobId: aws.String("job-1")}, nil
		})
	f.mi.EXPECT().GetDICOMImportJob(gomock.Any(), gomock.Any()).Times(2).
		Return(&sdkmi.GetDICOMImportJobOutput{
			JobProperties: &mitypes.DICOMImportJobProperties{
				JobId:       aws.String("job-1"),
				JobStatus:   mitypes.JobStatusCompleted,
				OutputS3Uri: aws.String("s3://output-bucket/output/ds-1-DicomImport-job-1/"),
			},
		}, nil)
	f.s3.EXPECT().GetObject(gomock.Any(), gomock.Any()).Times(1).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(
			`{"jobSummary": {"imageSetsSummary": [{"imageSetId": "is-1"}]}}`))}, nil)

	f.mi.EXPECT().GetImageSetMetadata(gomock.Any(), gomock.Any()).Times(1).
		Return(&sdkmi.GetImageSetMetadataOutput{
			ImageSetMetadataBlob: io.NopCloser(strings.NewReader(frameMetadata(fixedChecksum))),
		}, nil)
	f.mi.EXPECT().GetImageFrame(gomock.Any(), gomock.Any()).Times(1).
		Return(&sdkmi.GetImageFrameOutput{ImageFrameBlob: io.NopCloser(bytes.NewReader([]byte{0xff, 0x4f, 0xff, 0x51}))}, nil)

	upload := f.s3.EXPECT().Upload(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, input *s3.PutObjectInput,
			opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {

			assert.Equal(t, "output-bucket", aws.ToString(input.Bucket))
			assert.Equal(t, "output/import_job_job-1/report.json", aws.ToString(input.Key))
			return &manager.UploadOutput{}, nil
		})

	// cleanup runs newest first: image sets, import output, copied input, stack
	deleteImageSet := f.mi.EXPECT().DeleteImageSet(gomock.Any(), gomock.Any()).Times(1).
		Return(&sdkmi.DeleteImageSetOutput{}, nil).After(upload)
	f.s3.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).Times(3).
		Return(&s3.DeleteObjectOutput{}, nil).After(deleteImageSet)
	deleteWaiter := mock_awsapis.NewMockStackDeleteCompleteWaiter(ctrl)
	f.cfn.EXPECT().DeleteStack(gomock.Any(), gomock.Any()).Times(1).
		Return(&cloudformation.DeleteStackOutput{}, nil).After(deleteImageSet)
	f.cfn.EXPECT().NewStackDeleteCompleteWaiter().Return(deleteWaiter)
	deleteWaiter.EXPECT().Wait(gomock.Any(), gomock.Any(), time.Minute).Return(nil)

	err := f.scenario.Run(context.TODO())

	require.Nil(t, err)
	assert.ElementsMatch(t, []string{"input/" + chestPrefix + "/a.dcm", "input/" + chestPrefix + "/b.dcm"}, copied)
	assert.Contains(t, f.out.String(), "1 image frames passed and 0 failed verification")
	assert.Contains(t, f.out.String(), "Removed resources created by the workflow.")
	assert.Equal(t, 0, f.scenario.Ledger.Len())

	reportPath := filepath.Join(f.scenario.Config.OutputDir, "import_job_job-1", "report.json")
	data, err := os.ReadFile(reportPath)
	require.Nil(t, err)
	var report WorkflowReport
	require.Nil(t, json.Unmarshal(data, &report))
	assert.Equal(t, "job-1", report.ImportJobId)
	assert.Equal(t, 1, report.Passed)
	require.Len(t, report.ImageSets, 1)
	assert.Equal(t, "is-1", report.ImageSets[0].ImageSetId)
}

func TestImagingScenarioStopsWhenNothingIsCopied(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	// data store name, MRI of head, start copy, keep resources
	f := newImagingFixture(t, ctrl, "my-datastore", "3", "", "n")
	f.expectStack(t, ctrl)
	f.s3.EXPECT().NewListObjectsV2Paginator(gomock.Any()).Times(1).Return(objectsPager(ctrl))
	f.mi.EXPECT().StartDICOMImportJob(gomock.Any(), gomock.Any()).Times(0)

	err := f.scenario.Run(context.TODO())

	assert.NotNil(t, err)
	assert.Contains(t, f.out.String(), "The workflow stopped")
	assert.Contains(t, f.out.String(), "Thanks for watching!")

	states, qerr := f.state.QueryStates(context.TODO(), &state.QueryStatesInput{})
	require.Nil(t, qerr)
	assert.Len(t, states, 2)
}

func TestImagingScenarioInterruptedCreateStillCleansUp(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	// data store name, clean up
	f := newImagingFixture(t, ctrl, "my-datastore", "y")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	createWaiter := mock_awsapis.NewMockStackCreateCompleteWaiter(ctrl)
	f.cfn.EXPECT().CreateStack(gomock.Any(), gomock.Any()).Times(1).
		Return(&cloudformation.CreateStackOutput{StackId: aws.String("stack-id")}, nil)
	f.cfn.EXPECT().NewStackCreateCompleteWaiter().Return(createWaiter)
	createWaiter.EXPECT().Wait(gomock.Any(), gomock.Any(), time.Minute).
		DoAndReturn(func(ctx context.Context, params *cloudformation.DescribeStacksInput, maxDur time.Duration,
			opts ...func(*cloudformation.StackCreateCompleteWaiterOptions)) error {

			cancel()
			return ctx.Err()
		})
	f.s3.EXPECT().NewListObjectsV2Paginator(gomock.Any()).Times(0)

	deleteWaiter := mock_awsapis.NewMockStackDeleteCompleteWaiter(ctrl)
	f.cfn.EXPECT().DeleteStack(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *cloudformation.DeleteStackInput,
			opts ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {

			assert.Nil(t, ctx.Err())
			return &cloudformation.DeleteStackOutput{}, nil
		})
	f.cfn.EXPECT().NewStackDeleteCompleteWaiter().Return(deleteWaiter)
	deleteWaiter.EXPECT().Wait(gomock.Any(), gomock.Any(), time.Minute).
		DoAndReturn(func(ctx context.Context, params *cloudformation.DescribeStacksInput, maxDur time.Duration,
			opts ...func(*cloudformation.StackDeleteCompleteWaiterOptions)) error {

			return ctx.Err()
		})

	err := f.scenario.Run(ctx)

	require.NotNil(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, f.out.String(), "Removed resources created by the workflow.")
	assert.Equal(t, 0, f.scenario.Ledger.Len())
}
