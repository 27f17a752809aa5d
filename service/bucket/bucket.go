package bucket

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cihub/seelog"
	"github.com/hashicorp/go-multierror"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/mcastellin/aws-scenarios/service/coordinator"
	"github.com/pkg/errors"
)

const resourceType = domain.ResourceTypeCopiedObjects

// Bucket runs bulk object operations on a bounded worker pool
type Bucket struct {
	Api     awsapis.S3Api
	Workers int
}

func NewFromProvider(provider awsapis.AWSProvider, workers int) *Bucket {
	return &Bucket{Api: provider.NewS3Api(), Workers: workers}
}

// CopyResult lists the destination keys written by CopyPrefix. Err combines
// the failures of individual objects.
type CopyResult struct {
	Keys   []string
	Failed int
	Err    error
}

// ListKeys returns every object key under the location prefix
func (b *Bucket) ListKeys(ctx context.Context, loc awsutils.S3Location) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(loc.Bucket)}
	if loc.Prefix != "" {
		input.Prefix = aws.String(loc.Prefix)
	}

	keys := []string{}
	paginator := b.Api.NewListObjectsV2Paginator(input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListObjectsV2", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, "/") {
				continue
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// CopyPrefix copies every object under src to dst, keeping key names relative
// to the prefix. A failed object does not stop the others.
func (b *Bucket) CopyPrefix(ctx context.Context, src awsutils.S3Location, dst awsutils.S3Location) (*CopyResult, error) {
	keys, err := b.ListKeys(ctx, src)
	if err != nil {
		return nil, err
	}
	seelog.Infof("%s name=%s: copying %d objects from %s", resourceType, dst, len(keys), src)

	pool := coordinator.NewPool("s3-copy", b.Workers)
	results := coordinator.Run(ctx, pool, keys, func(ctx context.Context, key string) (string, error) {
		destKey := dst.Key(relativeKey(src.Prefix, key))
		_, err := b.Api.CopyObject(ctx, &s3.CopyObjectInput{
			Bucket:     aws.String(dst.Bucket),
			Key:        aws.String(destKey),
			CopySource: aws.String(CopySource(src.Bucket, key)),
		})
		if err != nil {
			return "", errors.Wrapf(domain.NewServiceError("CopyObject", err), "s3://%s/%s", src.Bucket, key)
		}
		return destKey, nil
	})

	res := &CopyResult{Keys: []string{}}
	var merr *multierror.Error
	for _, r := range results {
		if r.Err != nil {
			res.Failed++
			merr = multierror.Append(merr, r.Err)
			continue
		}
		res.Keys = append(res.Keys, r.Value)
	}
	res.Err = merr.ErrorOrNil()
	if res.Err != nil {
		seelog.Errorf("%s name=%s: %d of %d objects failed to copy from %s", resourceType, dst, res.Failed, len(keys), src)
	}
	return res, nil
}

// EmptyPrefix deletes every object under the location prefix and returns the
// number of objects deleted
func (b *Bucket) EmptyPrefix(ctx context.Context, loc awsutils.S3Location) (int, error) {
	keys, err := b.ListKeys(ctx, loc)
	if err != nil {
		return 0, err
	}

	pool := coordinator.NewPool("s3-delete", b.Workers)
	results := coordinator.Run(ctx, pool, keys, func(ctx context.Context, key string) (struct{}, error) {
		_, err := b.Api.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(loc.Bucket),
			Key:    aws.String(key),
		})
		if err != nil && !domain.IsNotFound(err) {
			return struct{}{}, errors.Wrapf(domain.NewServiceError("DeleteObject", err), "s3://%s/%s", loc.Bucket, key)
		}
		return struct{}{}, nil
	})

	deleted := 0
	var merr *multierror.Error
	for _, r := range results {
		if r.Err != nil {
			merr = multierror.Append(merr, r.Err)
			continue
		}
		deleted++
	}
	seelog.Infof("%s name=%s: deleted %d objects", resourceType, loc, deleted)
	return deleted, merr.ErrorOrNil()
}

// UploadFile stores a local file at s3://bucket/key
func (b *Bucket) UploadFile(ctx context.Context, path string, bucket string, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", path)
	}
	defer f.Close()

	_, err = b.Api.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return domain.ReportServiceError("Upload", err)
	}
	seelog.Infof("%s name=s3://%s/%s: uploaded %s", resourceType, bucket, key, path)
	return nil
}

// CopySource formats the URL-encoded source of a CopyObject request
func CopySource(bucket string, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return bucket + "/" + strings.Join(segments, "/")
}

func relativeKey(prefix string, key string) string {
	if prefix == "" {
		return key
	}
	rel := strings.TrimPrefix(key, prefix)
	return strings.TrimPrefix(rel, "/")
}
