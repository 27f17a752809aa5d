package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdkmi "github.com/aws/aws-sdk-go-v2/service/medicalimaging"
	"github.com/aws/aws-sdk-go-v2/service/medicalimaging/types"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/mcastellin/aws-scenarios/service/medicalimaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func twoFrameMetadata(first uint32, second uint32) string {
	return fmt.Sprintf(`{
  "DatastoreID": "ds-1",
  "ImageSetID": "is-1",
  "Study": {"Series": {"1.1": {"Instances": {"1.1.1": {
    "StoredTransferSyntaxUID": "1.2.840.10008.1.2.4.90",
    "ImageFrames": [
      {"ID": "frame-1", "MinPixelValue": 0, "MaxPixelValue": 30,
       "PixelDataChecksumFromBaseToFullResolution": [{"Width": 8, "Height": 8, "Checksum": 1}, {"Width": 16, "Height": 16, "Checksum": %d}]},
      {"ID": "frame-2",
       "PixelDataChecksumFromBaseToFullResolution": [{"Width": 16, "Height": 16, "Checksum": %d}]}
    ]
  }}}}}
}`, first, second)
}

func TestVerifyImageSetReportsCorruptFrame(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	encoded, checksum := encodeGradient(t, 16)
	blob := gzipBytes(t, []byte(twoFrameMetadata(checksum, checksum^0xdeadbeef)))

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockApi.EXPECT().GetImageSetMetadata(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, params *sdkmi.GetImageSetMetadataInput,
			f ...func(*sdkmi.Options)) (*sdkmi.GetImageSetMetadataOutput, error) {

			assert.Equal(t, "ds-1", aws.ToString(params.DatastoreId))
			assert.Equal(t, "is-1", aws.ToString(params.ImageSetId))
			return &sdkmi.GetImageSetMetadataOutput{ImageSetMetadataBlob: io.NopCloser(bytes.NewReader(blob))}, nil
		})
	mockApi.EXPECT().GetImageFrame(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, params *sdkmi.GetImageFrameInput,
			f ...func(*sdkmi.Options)) (*sdkmi.GetImageFrameOutput, error) {

			return &sdkmi.GetImageFrameOutput{ImageFrameBlob: io.NopCloser(bytes.NewReader(encoded))}, nil
		})

	src := &medicalimaging.MedicalImaging{Api: mockApi}
	outputDir := t.TempDir()
	report, err := NewVerifier(src, 2, outputDir).VerifyImageSet(context.TODO(), "ds-1", "is-1", "")

	require.Nil(t, err)
	assert.Equal(t, []Status{StatusPass, StatusFail}, report.Statuses())
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)

	pass := report.Frames[0]
	assert.Equal(t, StageVerified, pass.Stage)
	assert.Equal(t, checksum, pass.ActualChecksum)
	require.NotNil(t, pass.Stats)
	assert.Equal(t, 0.0, pass.Stats.Min)
	assert.Equal(t, 30.0, pass.Stats.Max)
	assert.Empty(t, pass.Warning)

	fail := report.Frames[1]
	assert.Equal(t, StageDecoded, fail.Stage)
	assert.True(t, errors.Is(fail.Err, ErrChecksumMismatch))
	assert.Equal(t, checksum, fail.ActualChecksum)

	assert.True(t, errors.Is(report.Err(), ErrChecksumMismatch))
	assert.FileExists(t, filepath.Join(outputDir, "is-1.json.gz"))
	assert.FileExists(t, FramePath(outputDir, "frame-1"))
	assert.FileExists(t, FramePath(outputDir, "frame-2"))
}

func TestVerifyImageSetMetadataError(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockApi.EXPECT().GetImageSetMetadata(gomock.Any(), gomock.Any()).Times(1).
		Return(nil, &types.ResourceNotFoundException{Message: aws.String("no such image set")})

	src := &medicalimaging.MedicalImaging{Api: mockApi}
	_, err := NewVerifier(src, 2, "").VerifyImageSet(context.TODO(), "ds-1", "is-1", "")

	assert.True(t, domain.IsNotFound(err))
}

func TestVerifyFramesStagesOfFailure(t *testing.T) {
	encoded, checksum := encodeGradient(t, 16)
	src := &fakeSource{frames: map[string][]byte{
		"ok":       encoded,
		"garbage":  []byte("this is not a codestream"),
		"nosum":    encoded,
		"wrong-ts": encoded,
	}}
	frames := []FrameDescriptor{
		{ImageSetID: "is-1", ImageFrameID: "ok", ExpectedChecksum: checksum, HasChecksum: true, RescaleSlope: 1},
		{ImageSetID: "is-1", ImageFrameID: "garbage", ExpectedChecksum: checksum, HasChecksum: true, RescaleSlope: 1},
		{ImageSetID: "is-1", ImageFrameID: "nosum", RescaleSlope: 1},
		{ImageSetID: "is-1", ImageFrameID: "wrong-ts", TransferSyntaxUID: "1.2.840.10008.1.2.1", HasChecksum: true},
	}

	results := NewVerifier(src, 3, "").VerifyFrames(context.TODO(), "ds-1", frames)

	require.Len(t, results, 4)
	assert.Equal(t, StatusPass, results[0].Status)

	assert.Equal(t, StatusFail, results[1].Status)
	assert.Equal(t, StageFetched, results[1].Stage)
	assert.True(t, errors.Is(results[1].Err, ErrUnsupportedFormat))

	assert.Equal(t, StatusFail, results[2].Status)
	assert.Equal(t, StageDecoded, results[2].Stage)
	assert.True(t, errors.Is(results[2].Err, ErrNoChecksum))

	assert.Equal(t, StatusFail, results[3].Status)
	assert.Equal(t, StagePending, results[3].Stage)
	assert.True(t, errors.Is(results[3].Err, ErrUnsupportedFormat))
}

func TestVerifyFramesDownloadError(t *testing.T) {
	src := &fakeSource{err: errors.New("connection reset")}
	frames := []FrameDescriptor{{ImageSetID: "is-1", ImageFrameID: "f1", HasChecksum: true}}

	results := NewVerifier(src, 1, "").VerifyFrames(context.TODO(), "ds-1", frames)

	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Equal(t, StagePending, results[0].Stage)
	assert.Equal(t, "connection reset", results[0].Error)
}

func TestVerifyFramesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames := []FrameDescriptor{{ImageFrameID: "f1"}, {ImageFrameID: "f2"}}

	results := NewVerifier(&fakeSource{}, 1, "").VerifyFrames(ctx, "ds-1", frames)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, StatusFail, r.Status)
		assert.Equal(t, StagePending, r.Stage)
		assert.True(t, errors.Is(r.Err, context.Canceled))
	}
}

func TestVerifyFramesWarnsOnRangeMismatch(t *testing.T) {
	encoded, checksum := encodeGradient(t, 16)
	maxValue := 100.0
	src := &fakeSource{frames: map[string][]byte{"f1": encoded}}
	frames := []FrameDescriptor{{ImageFrameID: "f1", ExpectedChecksum: checksum, HasChecksum: true,
		RescaleSlope: 1, MaxPixelValue: &maxValue}}

	results := NewVerifier(src, 1, "").VerifyFrames(context.TODO(), "ds-1", frames)

	assert.Equal(t, StatusPass, results[0].Status)
	assert.Contains(t, results[0].Warning, "maximum")
}

func TestVerifyFramesRangeUsesStoredValues(t *testing.T) {
	encoded, checksum := encodeGradient(t, 16)
	minValue, maxValue := 0.0, 30.0
	src := &fakeSource{frames: map[string][]byte{"f1": encoded}}
	// CT style rescale: stored 0..30 becomes -1024..-994
	frames := []FrameDescriptor{{ImageFrameID: "f1", ExpectedChecksum: checksum, HasChecksum: true,
		RescaleSlope: 1, RescaleIntercept: -1024, MinPixelValue: &minValue, MaxPixelValue: &maxValue}}

	results := NewVerifier(src, 1, "").VerifyFrames(context.TODO(), "ds-1", frames)

	assert.Equal(t, StatusPass, results[0].Status)
	require.NotNil(t, results[0].Stats)
	assert.Equal(t, -1024.0, results[0].Stats.Min)
	assert.Equal(t, -994.0, results[0].Stats.Max)
	assert.Empty(t, results[0].Warning)
}

func TestVerifyImageSetReportsFrameWithDifferentPixels(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	encoded, checksum := encodeGradient(t, 16)
	inverted := gradientPlane(16)
	for i, v := range inverted {
		inverted[i] = 255 - v
	}
	other, otherChecksum := encodePlane(t, 16, inverted)
	require.NotEqual(t, checksum, otherChecksum)
	blob := gzipBytes(t, []byte(twoFrameMetadata(checksum, checksum)))

	mockApi := mock_awsapis.NewMockMedicalImagingApi(ctrl)
	mockApi.EXPECT().GetImageSetMetadata(gomock.Any(), gomock.Any()).Times(1).
		Return(&sdkmi.GetImageSetMetadataOutput{ImageSetMetadataBlob: io.NopCloser(bytes.NewReader(blob))}, nil)
	mockApi.EXPECT().GetImageFrame(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, params *sdkmi.GetImageFrameInput,
			f ...func(*sdkmi.Options)) (*sdkmi.GetImageFrameOutput, error) {

			payload := encoded
			if aws.ToString(params.ImageFrameInformation.ImageFrameId) == "frame-2" {
				payload = other
			}
			return &sdkmi.GetImageFrameOutput{ImageFrameBlob: io.NopCloser(bytes.NewReader(payload))}, nil
		})

	src := &medicalimaging.MedicalImaging{Api: mockApi}
	report, err := NewVerifier(src, 2, "").VerifyImageSet(context.TODO(), "ds-1", "is-1", "")

	require.Nil(t, err)
	assert.Equal(t, []Status{StatusPass, StatusFail}, report.Statuses())

	fail := report.Frames[1]
	assert.Equal(t, StageDecoded, fail.Stage)
	assert.Equal(t, checksum, fail.ExpectedChecksum)
	assert.Equal(t, otherChecksum, fail.ActualChecksum)
	var mismatch *ChecksumMismatchError
	require.True(t, errors.As(fail.Err, &mismatch))
	assert.Equal(t, otherChecksum, mismatch.Actual)
}

func TestReport(t *testing.T) {
	report := NewReport("ds-1", "is-1", "1", timeZero())
	report.Add(
		FrameResult{Frame: FrameDescriptor{ImageFrameID: "a"}, Status: StatusPass, Stage: StageVerified,
			Stats: &PixelStats{Min: 0, Max: 1, Mean: 0.5}},
		FrameResult{Frame: FrameDescriptor{ImageFrameID: "b"}, Status: StatusFail, Stage: StageFetched,
			Error: "unsupported format"},
	)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.String(), "fail b [fetched]: unsupported format")
	require.NotNil(t, report.Err())
	assert.Contains(t, report.Err().Error(), "frame b")

	path := filepath.Join(t.TempDir(), "reports", "is-1.json")
	require.Nil(t, report.WriteFile(path))
	data, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Contains(t, string(data), `"imageSetId": "is-1"`)
	assert.Contains(t, string(data), `"status": "fail"`)
}

func TestReportAllPassed(t *testing.T) {
	report := NewReport("ds-1", "is-1", "", timeZero())
	report.Add(FrameResult{Status: StatusPass})

	assert.Nil(t, report.Err())
}
