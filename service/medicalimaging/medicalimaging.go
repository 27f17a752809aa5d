package medicalimaging

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/medicalimaging"
	"github.com/aws/aws-sdk-go-v2/service/medicalimaging/types"
	"github.com/cihub/seelog"
	"github.com/google/uuid"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
)

const resourceTypeDatastore = "medicalimaging-datastore"
const resourceTypeImportJob = "medicalimaging-import-job"

// MedicalImaging wraps the AWS HealthImaging operations used by scenarios.
// S3 is only used to read import job manifests.
type MedicalImaging struct {
	Api  awsapis.MedicalImagingApi
	S3   awsapis.S3ObjectGetter
	Poll awsutils.PollPolicy
}

func NewFromProvider(provider awsapis.AWSProvider, poll awsutils.PollPolicy) *MedicalImaging {
	return &MedicalImaging{
		Api:  provider.NewMedicalImagingApi(),
		S3:   provider.NewS3Api(),
		Poll: poll,
	}
}

// Data stores

func (m *MedicalImaging) CreateDatastore(ctx context.Context, name string) (string, error) {
	out, err := m.Api.CreateDatastore(ctx, &medicalimaging.CreateDatastoreInput{
		DatastoreName: aws.String(name),
		ClientToken:   aws.String(uuid.NewString()),
	})
	if err != nil {
		return "", domain.ReportServiceError("CreateDatastore", err)
	}
	datastoreId := aws.ToString(out.DatastoreId)
	seelog.Infof("%s name=%s: data store %s created with status %s",
		resourceTypeDatastore, datastoreId, name, out.DatastoreStatus)
	return datastoreId, nil
}

func (m *MedicalImaging) GetDatastore(ctx context.Context, datastoreId string) (*types.DatastoreProperties, error) {
	out, err := m.Api.GetDatastore(ctx, &medicalimaging.GetDatastoreInput{
		DatastoreId: aws.String(datastoreId),
	})
	if err != nil {
		return nil, domain.ReportServiceError("GetDatastore", err)
	}
	return out.DatastoreProperties, nil
}

func (m *MedicalImaging) ListDatastores(ctx context.Context) ([]types.DatastoreSummary, error) {
	summaries := []types.DatastoreSummary{}
	paginator := m.Api.NewListDatastoresPaginator(&medicalimaging.ListDatastoresInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListDatastores", err)
		}
		summaries = append(summaries, page.DatastoreSummaries...)
	}
	return summaries, nil
}

func (m *MedicalImaging) DeleteDatastore(ctx context.Context, datastoreId string) error {
	_, err := m.Api.DeleteDatastore(ctx, &medicalimaging.DeleteDatastoreInput{
		DatastoreId: aws.String(datastoreId),
	})
	if err != nil {
		if domain.IsNotFound(err) {
			seelog.Infof("%s name=%s: data store already deleted", resourceTypeDatastore, datastoreId)
			return nil
		}
		return domain.ReportServiceError("DeleteDatastore", err)
	}
	seelog.Infof("%s name=%s: data store deletion started", resourceTypeDatastore, datastoreId)
	return nil
}

// WaitForDatastoreActive polls the data store until it is ACTIVE
func (m *MedicalImaging) WaitForDatastoreActive(ctx context.Context, datastoreId string) error {
	var status types.DatastoreStatus
	err := awsutils.PollWithPolicy(ctx, m.Poll, func(ctx context.Context) (bool, error) {
		props, err := m.GetDatastore(ctx, datastoreId)
		if err != nil {
			return false, err
		}
		status = props.DatastoreStatus
		seelog.Debugf("%s name=%s: status %s", resourceTypeDatastore, datastoreId, status)
		return status == types.DatastoreStatusActive || status == types.DatastoreStatusCreateFailed, nil
	})
	if err != nil {
		return err
	}
	if status == types.DatastoreStatusCreateFailed {
		return domain.OperationFailedError{OperationIdentifier: datastoreId, Status: string(status)}
	}
	return nil
}

// Import jobs

// ImportJobInput describes a DICOM import from S3
type ImportJobInput struct {
	JobName     string
	DatastoreId string
	RoleArn     string
	InputS3Uri  string
	OutputS3Uri string
}

func (m *MedicalImaging) StartDicomImportJob(ctx context.Context, in ImportJobInput) (string, error) {
	out, err := m.Api.StartDICOMImportJob(ctx, &medicalimaging.StartDICOMImportJobInput{
		JobName:           aws.String(in.JobName),
		DatastoreId:       aws.String(in.DatastoreId),
		DataAccessRoleArn: aws.String(in.RoleArn),
		InputS3Uri:        aws.String(in.InputS3Uri),
		OutputS3Uri:       aws.String(in.OutputS3Uri),
		ClientToken:       aws.String(uuid.NewString()),
	})
	if err != nil {
		return "", domain.ReportServiceError("StartDICOMImportJob", err)
	}
	jobId := aws.ToString(out.JobId)
	seelog.Infof("%s name=%s: import job started from %s", resourceTypeImportJob, jobId, in.InputS3Uri)
	return jobId, nil
}

func (m *MedicalImaging) GetDicomImportJob(ctx context.Context, datastoreId string, jobId string) (*types.DICOMImportJobProperties, error) {
	out, err := m.Api.GetDICOMImportJob(ctx, &medicalimaging.GetDICOMImportJobInput{
		DatastoreId: aws.String(datastoreId),
		JobId:       aws.String(jobId),
	})
	if err != nil {
		return nil, domain.ReportServiceError("GetDICOMImportJob", err)
	}
	return out.JobProperties, nil
}

// ListDicomImportJobs lists the import jobs of a data store. An empty status
// lists jobs in every status.
func (m *MedicalImaging) ListDicomImportJobs(ctx context.Context, datastoreId string, status types.JobStatus) ([]types.DICOMImportJobSummary, error) {
	input := &medicalimaging.ListDICOMImportJobsInput{DatastoreId: aws.String(datastoreId)}
	if status != "" {
		input.JobStatus = status
	}

	summaries := []types.DICOMImportJobSummary{}
	paginator := m.Api.NewListDICOMImportJobsPaginator(input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListDICOMImportJobs", err)
		}
		summaries = append(summaries, page.JobSummaries...)
	}
	return summaries, nil
}

// WaitForImportJob polls the job until it is COMPLETED and returns its final
// properties. A FAILED job returns an OperationFailedError.
func (m *MedicalImaging) WaitForImportJob(ctx context.Context, datastoreId string, jobId string) (*types.DICOMImportJobProperties, error) {
	var props *types.DICOMImportJobProperties
	err := awsutils.PollWithPolicy(ctx, m.Poll, func(ctx context.Context) (bool, error) {
		var err error
		props, err = m.GetDicomImportJob(ctx, datastoreId, jobId)
		if err != nil {
			return false, err
		}
		seelog.Debugf("%s name=%s: status %s", resourceTypeImportJob, jobId, props.JobStatus)
		return props.JobStatus == types.JobStatusCompleted || props.JobStatus == types.JobStatusFailed, nil
	})
	if err != nil {
		return nil, err
	}
	if props.JobStatus == types.JobStatusFailed {
		return props, domain.OperationFailedError{
			OperationIdentifier: jobId,
			Status:              string(props.JobStatus),
			Message:             aws.ToString(props.Message),
		}
	}
	seelog.Infof("%s name=%s: import job completed", resourceTypeImportJob, jobId)
	return props, nil
}

// Image sets

// CreatedBetween builds search criteria matching image sets created in the
// given time range
func CreatedBetween(from time.Time, to time.Time) *types.SearchCriteria {
	return &types.SearchCriteria{
		Filters: []types.SearchFilter{{
			Operator: types.OperatorBetween,
			Values: []types.SearchByAttributeValue{
				&types.SearchByAttributeValueMemberCreatedAt{Value: from},
				&types.SearchByAttributeValueMemberCreatedAt{Value: to},
			},
		}},
	}
}

// SearchImageSets returns the image sets of a data store matching criteria.
// Nil criteria match every image set.
func (m *MedicalImaging) SearchImageSets(ctx context.Context, datastoreId string, criteria *types.SearchCriteria) ([]types.ImageSetsMetadataSummary, error) {
	summaries := []types.ImageSetsMetadataSummary{}
	paginator := m.Api.NewSearchImageSetsPaginator(&medicalimaging.SearchImageSetsInput{
		DatastoreId:    aws.String(datastoreId),
		SearchCriteria: criteria,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("SearchImageSets", err)
		}
		summaries = append(summaries, page.ImageSetsMetadataSummaries...)
	}
	return summaries, nil
}

func (m *MedicalImaging) GetImageSet(ctx context.Context, datastoreId string, imageSetId string, versionId string) (*medicalimaging.GetImageSetOutput, error) {
	input := &medicalimaging.GetImageSetInput{
		DatastoreId: aws.String(datastoreId),
		ImageSetId:  aws.String(imageSetId),
	}
	if versionId != "" {
		input.VersionId = aws.String(versionId)
	}
	out, err := m.Api.GetImageSet(ctx, input)
	if err != nil {
		return nil, domain.ReportServiceError("GetImageSet", err)
	}
	return out, nil
}

// GetImageSetMetadata returns the gzip-compressed metadata document of an
// image set. The caller closes the reader.
func (m *MedicalImaging) GetImageSetMetadata(ctx context.Context, datastoreId string, imageSetId string, versionId string) (io.ReadCloser, error) {
	input := &medicalimaging.GetImageSetMetadataInput{
		DatastoreId: aws.String(datastoreId),
		ImageSetId:  aws.String(imageSetId),
	}
	if versionId != "" {
		input.VersionId = aws.String(versionId)
	}
	out, err := m.Api.GetImageSetMetadata(ctx, input)
	if err != nil {
		return nil, domain.ReportServiceError("GetImageSetMetadata", err)
	}
	return out.ImageSetMetadataBlob, nil
}

// GetImageFrame returns the HTJ2K payload of a frame. The caller closes the
// reader.
func (m *MedicalImaging) GetImageFrame(ctx context.Context, datastoreId string, imageSetId string, imageFrameId string) (io.ReadCloser, error) {
	out, err := m.Api.GetImageFrame(ctx, &medicalimaging.GetImageFrameInput{
		DatastoreId: aws.String(datastoreId),
		ImageSetId:  aws.String(imageSetId),
		ImageFrameInformation: &types.ImageFrameInformation{
			ImageFrameId: aws.String(imageFrameId),
		},
	})
	if err != nil {
		return nil, domain.ReportServiceError("GetImageFrame", err)
	}
	return out.ImageFrameBlob, nil
}

func (m *MedicalImaging) DeleteImageSet(ctx context.Context, datastoreId string, imageSetId string) error {
	_, err := m.Api.DeleteImageSet(ctx, &medicalimaging.DeleteImageSetInput{
		DatastoreId: aws.String(datastoreId),
		ImageSetId:  aws.String(imageSetId),
	})
	if err != nil {
		if domain.IsNotFound(err) {
			seelog.Infof("%s name=%s: image set already deleted", domain.ResourceTypeImageSet, imageSetId)
			return nil
		}
		return domain.ReportServiceError("DeleteImageSet", err)
	}
	seelog.Infof("%s name=%s: image set deleted", domain.ResourceTypeImageSet, imageSetId)
	return nil
}
