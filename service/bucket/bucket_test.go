package bucket

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/mcastellin/aws-scenarios/mock_awsapis"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectPages(ctrl *gomock.Controller, mockApi *mock_awsapis.MockS3Api, pages ...[]string) {
	pager := mock_awsapis.NewMockListObjectsV2Pager(ctrl)
	mockApi.EXPECT().NewListObjectsV2Paginator(gomock.Any()).Return(pager)

	var prev *gomock.Call
	for _, keys := range pages {
		out := &s3.ListObjectsV2Output{}
		for _, k := range keys {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
		}
		more := pager.EXPECT().HasMorePages().Return(true)
		if prev != nil {
			more.After(prev)
		}
		prev = pager.EXPECT().NextPage(gomock.Any()).Return(out, nil).After(more)
	}
	last := pager.EXPECT().HasMorePages().Return(false)
	if prev != nil {
		last.After(prev)
	}
}

func TestListKeysSkipsFolders(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockS3Api(ctrl)
	expectPages(ctrl, mockApi, []string{"cptac/", "cptac/a.dcm"}, []string{"cptac/b.dcm"})

	keys, err := (&Bucket{Api: mockApi}).ListKeys(context.TODO(), awsutils.S3Location{Bucket: "src", Prefix: "cptac/"})

	require.Nil(t, err)
	assert.Equal(t, []string{"cptac/a.dcm", "cptac/b.dcm"}, keys)
}

func TestCopyPrefixCollectsFailures(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockS3Api(ctrl)
	expectPages(ctrl, mockApi, []string{"cptac/s1/a.dcm", "cptac/s1/b c.dcm", "cptac/s2/bad.dcm"})

	var mu sync.Mutex
	sources := []string{}
	mockApi.EXPECT().CopyObject(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(ctx context.Context, params *s3.CopyObjectInput,
			f ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {

			mu.Lock()
			sources = append(sources, aws.ToString(params.CopySource))
			mu.Unlock()
			assert.Equal(t, "dest", aws.ToString(params.Bucket))
			if aws.ToString(params.Key) == "input/s2/bad.dcm" {
				return nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
			}
			return &s3.CopyObjectOutput{}, nil
		})

	b := &Bucket{Api: mockApi, Workers: 2}
	res, err := b.CopyPrefix(context.TODO(),
		awsutils.S3Location{Bucket: "idc-open-data", Prefix: "cptac/"},
		awsutils.S3Location{Bucket: "dest", Prefix: "input/"})

	require.Nil(t, err)
	assert.Equal(t, []string{"input/s1/a.dcm", "input/s1/b c.dcm"}, res.Keys)
	assert.Equal(t, 1, res.Failed)
	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Error(), "s3://idc-open-data/cptac/s2/bad.dcm")

	sort.Strings(sources)
	assert.Contains(t, sources, "idc-open-data/cptac/s1/b%20c.dcm")
}

func TestEmptyPrefixIgnoresMissingObjects(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	mockApi := mock_awsapis.NewMockS3Api(ctrl)
	expectPages(ctrl, mockApi, []string{"a", "b"})
	mockApi.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, params *s3.DeleteObjectInput,
			f ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {

			if aws.ToString(params.Key) == "b" {
				return nil, &types.NoSuchKey{Message: aws.String("gone")}
			}
			return &s3.DeleteObjectOutput{}, nil
		})

	deleted, err := (&Bucket{Api: mockApi, Workers: 1}).EmptyPrefix(context.TODO(), awsutils.S3Location{Bucket: "out"})

	require.Nil(t, err)
	assert.Equal(t, 2, deleted)
}

func TestUploadFile(t *testing.T) {
	ctrl, _ := gomock.WithContext(context.Background(), t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "report.json")
	require.Nil(t, os.WriteFile(path, []byte("{}"), 0644))

	mockApi := mock_awsapis.NewMockS3Api(ctrl)
	mockApi.EXPECT().Upload(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, input *s3.PutObjectInput,
			opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {

			assert.Equal(t, "out", aws.ToString(input.Bucket))
			assert.Equal(t, "reports/report.json", aws.ToString(input.Key))
			return &manager.UploadOutput{}, nil
		})

	err := (&Bucket{Api: mockApi}).UploadFile(context.TODO(), path, "out", "reports/report.json")

	assert.Nil(t, err)
}

func TestUploadFileMissing(t *testing.T) {
	err := (&Bucket{}).UploadFile(context.TODO(), filepath.Join(t.TempDir(), "missing"), "out", "k")

	assert.NotNil(t, err)
}

func TestCopySource(t *testing.T) {
	assert.Equal(t, "bucket/dir/file+name%20x.dcm", CopySource("bucket", "dir/file+name x.dcm"))
}
