package medicalimaging

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cihub/seelog"
	"github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/pkg/errors"
)

const (
	importManifestName  = "job-output-manifest.json"
	imageSetIdsQuery    = "jobSummary.imageSetsSummary[].imageSetId"
	manifestMaxAttempts = 3
)

var imageSetIdsExpr = jmespath.MustCompile(imageSetIdsQuery)

// GetImageSetsForImportJob reads the output manifest of a completed import
// job and returns the IDs of the image sets it created. The manifest can
// appear shortly after the job completes so a missing manifest is retried.
func (m *MedicalImaging) GetImageSetsForImportJob(ctx context.Context, datastoreId string, jobId string) ([]string, error) {
	job, err := m.GetDicomImportJob(ctx, datastoreId, jobId)
	if err != nil {
		return nil, err
	}
	location, err := awsutils.ParseS3Uri(aws.ToString(job.OutputS3Uri))
	if err != nil {
		return nil, err
	}
	key := location.Key(importManifestName)

	var data []byte
	attempts := 0
	backoff := m.Poll.NewBackoff()
	err = awsutils.Poll(ctx, backoff, m.Poll.Timeout, func(ctx context.Context) (bool, error) {
		attempts++
		out, err := m.S3.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(location.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			if domain.IsNotFound(err) && attempts < manifestMaxAttempts {
				seelog.Debugf("%s name=%s: manifest s3://%s/%s not available yet, attempt %d",
					resourceTypeImportJob, jobId, location.Bucket, key, attempts)
				return false, nil
			}
			return false, domain.ReportServiceError("GetObject", err)
		}
		defer out.Body.Close()
		data, err = io.ReadAll(out.Body)
		if err != nil {
			return false, errors.Wrapf(err, "could not read import manifest s3://%s/%s", location.Bucket, key)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return ImageSetIdsFromManifest(data)
}

// ImageSetIdsFromManifest extracts image set IDs from an import job output
// manifest
func ImageSetIdsFromManifest(data []byte) ([]string, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "could not parse import manifest")
	}

	result, err := imageSetIdsExpr.Search(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "could not query import manifest with %s", imageSetIdsQuery)
	}

	ids := []string{}
	values, _ := result.([]interface{})
	for _, v := range values {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
