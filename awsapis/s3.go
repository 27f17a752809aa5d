package awsapis

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Interfaces
type S3Api interface {
	S3ObjectCopier
	S3ObjectGetter
	S3ObjectDeleter
	S3Uploader
	ListObjectsV2Paginator
}

type S3ObjectCopier interface {
	CopyObject(ctx context.Context,
		params *s3.CopyObjectInput,
		optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

type S3ObjectGetter interface {
	GetObject(ctx context.Context,
		params *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3ObjectDeleter interface {
	DeleteObject(ctx context.Context,
		params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Uploader interface {
	Upload(ctx context.Context,
		input *s3.PutObjectInput,
		opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type ListObjectsV2Paginator interface {
	NewListObjectsV2Paginator(params *s3.ListObjectsV2Input) ListObjectsV2Pager
}

type ListObjectsV2Pager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Implementation
type AwsS3Api struct {
	client   *s3.Client
	uploader *manager.Uploader
}

func (a *AwsS3Api) CopyObject(ctx context.Context,
	params *s3.CopyObjectInput,
	optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	return a.client.CopyObject(ctx, params, optFns...)
}

func (a *AwsS3Api) GetObject(ctx context.Context,
	params *s3.GetObjectInput,
	optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return a.client.GetObject(ctx, params, optFns...)
}

func (a *AwsS3Api) DeleteObject(ctx context.Context,
	params *s3.DeleteObjectInput,
	optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	return a.client.DeleteObject(ctx, params, optFns...)
}

func (a *AwsS3Api) Upload(ctx context.Context,
	input *s3.PutObjectInput,
	opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	return a.uploader.Upload(ctx, input, opts...)
}

func (a *AwsS3Api) NewListObjectsV2Paginator(params *s3.ListObjectsV2Input) ListObjectsV2Pager {
	return s3.NewListObjectsV2Paginator(a.client, params)
}
