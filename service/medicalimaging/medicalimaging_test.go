package medicalimaging

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/medicalimaging"
	"github.com/aws/aws-sdk-go-v2/service/medicalimaging/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
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

const testManifest = `{
  "jobSummary": {
    "jobId": "job-1",
    "datastoreId": "ds-1",
    "imageSetsSummary": [
      {"imageSetId": "is-1", "numberOfMatchedSOPInstances": 1},
      {"imageSetId": "is-2", "numberOfMatchedSOPInstances": 1}
    ]
  }
}`

func TestImageSetIdsFromManifest(t *testing.T) {
	ids, err := ImageSetIdsFromManifest([]byte(testManifest))

	require.Nil(t, err)
	assert.Equal(t, []string{"is-1", "is-2"}, ids)
}

func TestImageSetIdsFromManifestWithoutImageSets(t *testing.T) {
	ids, err := ImageSetIdsFromManifest([]byte(`{"jobSummary": {}}`))

	require.Nil(t, err)
	assert.Empty(t, ids)
}

func TestImageSetIdsFromManifestInvalidJson(t *testing.T) {
	_, err := ImageSetIdsFromManifest([]byte(`{not json`))

	assert.NotNil(t, err)
}

func TestGetImageSetsForImportJobRetriesMissingManifest(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockS3 := mock_awsapis.NewMockS3ObjectGetter(ctrl)

	mockApi.EXPECT().GetDICOMImportJob(gomock.Any(), gomock.Any()).Times(1).
		Return(&medicalimaging.GetDICOMImportJobOutput{
			JobProperties: &types.DICOMImportJobProperties{
				JobId:       aws.String("job-1"),
				OutputS3Uri: aws.String("s3://output-bucket/output/ds-1-DicomImport-job-1/"),
			},
		}, nil)

	gomock.InOrder(
		mockS3.EXPECT().GetObject(gomock.Any(), gomock.Any()).Times(1).
			Return(nil, &s3types.NoSuchKey{Message: aws.String("missing")}),
		mockS3.EXPECT().GetObject(gomock.Any(), gomock.Any()).Times(1).
			DoAndReturn(func(ctx context.Context, params *s3.GetObjectInput,
				f ...func(*s3.Options)) (*s3.GetObjectOutput, error) {

				assert.Equal(t, "output-bucket", aws.ToString(params.Bucket))
				assert.Equal(t, "output/ds-1-DicomImport-job-1/job-output-manifest.json", aws.ToString(params.Key))
				return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(testManifest))}, nil
			}),
	)

	mi := &MedicalImaging{Api: mockApi, S3: mockS3, Poll: fastPoll}
	ids, err := mi.GetImageSetsForImportJob(context.TODO(), "ds-1", "job-1")

	require.Nil(t, err)
	assert.Equal(t, []string{"is-1", "is-2"}, ids)
}

func TestGetImageSetsForImportJobGivesUpAfterMaxAttempts(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockS3 := mock_awsapis.NewMockS3ObjectGetter(ctrl)

	mockApi.EXPECT().GetDICOMImportJob(gomock.Any(), gomock.Any()).Times(1).
		Return(&medicalimaging.GetDICOMImportJobOutput{
			JobProperties: &types.DICOMImportJobProperties{OutputS3Uri: aws.String("s3://output-bucket/out/")},
		}, nil)
	mockS3.EXPECT().GetObject(gomock.Any(), gomock.Any()).Times(manifestMaxAttempts).
		Return(nil, &s3types.NoSuchKey{Message: aws.String("missing")})

	mi := &MedicalImaging{Api: mockApi, S3: mockS3, Poll: fastPoll}
	_, err := mi.GetImageSetsForImportJob(context.TODO(), "ds-1", "job-1")

	assert.True(t, domain.IsNotFound(err))
}

func TestWaitForImportJobCompleted(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	gomock.InOrder(
		mockApi.EXPECT().GetDICOMImportJob(gomock.Any(), gomock.Any()).
			Return(&medicalimaging.GetDICOMImportJobOutput{
				JobProperties: &types.DICOMImportJobProperties{JobStatus: types.JobStatusSubmitted},
			}, nil),
		mockApi.EXPECT().GetDICOMImportJob(gomock.Any(), gomock.Any()).
			Return(&medicalimaging.GetDICOMImportJobOutput{
				JobProperties: &types.DICOMImportJobProperties{JobStatus: types.JobStatusInProgress},
			}, nil),
		mockApi.EXPECT().GetDICOMImportJob(gomock.Any(), gomock.Any()).
			Return(&medicalimaging.GetDICOMImportJobOutput{
				JobProperties: &types.DICOMImportJobProperties{JobStatus: types.JobStatusCompleted},
			}, nil),
	)

	props, err := (&MedicalImaging{Api: mockApi, Poll: fastPoll}).WaitForImportJob(context.TODO(), "ds-1", "job-1")

	require.Nil(t, err)
	assert.Equal(t, types.JobStatusCompleted, props.JobStatus)
}

func TestWaitForImportJobFailed(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockApi.EXPECT().GetDICOMImportJob(gomock.Any(), gomock.Any()).
		Return(&medicalimaging.GetDICOMImportJobOutput{
			JobProperties: &types.DICOMImportJobProperties{
				JobStatus: types.JobStatusFailed,
				Message:   aws.String("no DICOM files found"),
			},
		}, nil)

	_, err := (&MedicalImaging{Api: mockApi, Poll: fastPoll}).WaitForImportJob(context.TODO(), "ds-1", "job-1")

	var opErr domain.OperationFailedError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "no DICOM files found", opErr.Message)
}

func TestWaitForDatastoreActiveHonoursCancellation(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockApi.EXPECT().GetDatastore(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *medicalimaging.GetDatastoreInput,
			f ...func(*medicalimaging.Options)) (*medicalimaging.GetDatastoreOutput, error) {

			cancel()
			return &medicalimaging.GetDatastoreOutput{
				DatastoreProperties: &types.DatastoreProperties{DatastoreStatus: types.DatastoreStatusCreating},
			}, nil
		})

	poll := fastPoll
	poll.InitialInterval = time.Second
	poll.MaxInterval = time.Second
	err := (&MedicalImaging{Api: mockApi, Poll: poll}).WaitForDatastoreActive(ctx, "ds-1")

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDeleteImageSetNotFoundIsSuccess(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockApi.EXPECT().DeleteImageSet(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, &types.ResourceNotFoundException{Message: aws.String("gone")})

	err := (&MedicalImaging{Api: mockApi}).DeleteImageSet(context.TODO(), "ds-1", "is-1")

	assert.Nil(t, err)
}

func TestSearchImageSetsPaginates(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockPager := mock_awsapis.NewMockSearchImageSetsPager(ctrl)
	mockApi.EXPECT().NewSearchImageSetsPaginator(gomock.Any()).Return(mockPager)
	gomock.InOrder(
		mockPager.EXPECT().HasMorePages().Return(true),
		mockPager.EXPECT().NextPage(gomock.Any()).Return(&medicalimaging.SearchImageSetsOutput{
			ImageSetsMetadataSummaries: []types.ImageSetsMetadataSummary{{ImageSetId: aws.String("is-1")}},
		}, nil),
		mockPager.EXPECT().HasMorePages().Return(true),
		mockPager.EXPECT().NextPage(gomock.Any()).Return(&medicalimaging.SearchImageSetsOutput{
			ImageSetsMetadataSummaries: []types.ImageSetsMetadataSummary{{ImageSetId: aws.String("is-2")}},
		}, nil),
		mockPager.EXPECT().HasMorePages().Return(false),
	)

	now := time.Now()
	summaries, err := (&MedicalImaging{Api: mockApi}).SearchImageSets(context.TODO(), "ds-1",
		CreatedBetween(now.Add(-time.Hour), now))

	require.Nil(t, err)
	assert.Len(t, summaries, 2)
}

func TestCreatedBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	criteria := CreatedBetween(from, to)

	require.Len(t, criteria.Filters, 1)
	assert.Equal(t, types.OperatorBetween, criteria.Filters[0].Operator)
	require.Len(t, criteria.Filters[0].Values, 2)
	assert.Equal(t, from, criteria.Filters[0].Values[0].(*types.SearchByAttributeValueMemberCreatedAt).Value)
}
