package awsapis

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/medicalimaging"
)

// Interfaces
type MedicalImagingApi interface {
	DatastoreCreator
	DatastoreGetter
	DatastoreDeleter
	DicomImportJobStarter
	DicomImportJobGetter
	ImageSetGetter
	ImageSetMetadataGetter
	ImageFrameGetter
	ImageSetDeleter
	ListDatastoresPaginator
	ListDICOMImportJobsPaginator
	SearchImageSetsPaginator
}

type DatastoreCreator interface {
	CreateDatastore(ctx context.Context,
		params *medicalimaging.CreateDatastoreInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.CreateDatastoreOutput, error)
}

type DatastoreGetter interface {
	GetDatastore(ctx context.Context,
		params *medicalimaging.GetDatastoreInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetDatastoreOutput, error)
}

type DatastoreDeleter interface {
	DeleteDatastore(ctx context.Context,
		params *medicalimaging.DeleteDatastoreInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.DeleteDatastoreOutput, error)
}

type DicomImportJobStarter interface {
	StartDICOMImportJob(ctx context.Context,
		params *medicalimaging.StartDICOMImportJobInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.StartDICOMImportJobOutput, error)
}

type DicomImportJobGetter interface {
	GetDICOMImportJob(ctx context.Context,
		params *medicalimaging.GetDICOMImportJobInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetDICOMImportJobOutput, error)
}

type ImageSetGetter interface {
	GetImageSet(ctx context.Context,
		params *medicalimaging.GetImageSetInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetImageSetOutput, error)
}

type ImageSetMetadataGetter interface {
	GetImageSetMetadata(ctx context.Context,
		params *medicalimaging.GetImageSetMetadataInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetImageSetMetadataOutput, error)
}

type ImageFrameGetter interface {
	GetImageFrame(ctx context.Context,
		params *medicalimaging.GetImageFrameInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetImageFrameOutput, error)
}

type ImageSetDeleter interface {
	DeleteImageSet(ctx context.Context,
		params *medicalimaging.DeleteImageSetInput,
		optFns ...func(*medicalimaging.Options)) (*medicalimaging.DeleteImageSetOutput, error)
}

type ListDatastoresPaginator interface {
	NewListDatastoresPaginator(params *medicalimaging.ListDatastoresInput) ListDatastoresPager
}

type ListDatastoresPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*medicalimaging.Options)) (*medicalimaging.ListDatastoresOutput, error)
}

type ListDICOMImportJobsPaginator interface {
	NewListDICOMImportJobsPaginator(params *medicalimaging.ListDICOMImportJobsInput) ListDICOMImportJobsPager
}

type ListDICOMImportJobsPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*medicalimaging.Options)) (*medicalimaging.ListDICOMImportJobsOutput, error)
}

type SearchImageSetsPaginator interface {
	NewSearchImageSetsPaginator(params *medicalimaging.SearchImageSetsInput) SearchImageSetsPager
}

type SearchImageSetsPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*medicalimaging.Options)) (*medicalimaging.SearchImageSetsOutput, error)
}

// Implementation
type AwsMedicalImagingApi struct {
	client *medicalimaging.Client
}

func (a *AwsMedicalImagingApi) CreateDatastore(ctx context.Context,
	params *medicalimaging.CreateDatastoreInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.CreateDatastoreOutput, error) {
	return a.client.CreateDatastore(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) GetDatastore(ctx context.Context,
	params *medicalimaging.GetDatastoreInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetDatastoreOutput, error) {
	return a.client.GetDatastore(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) DeleteDatastore(ctx context.Context,
	params *medicalimaging.DeleteDatastoreInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.DeleteDatastoreOutput, error) {
	return a.client.DeleteDatastore(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) StartDICOMImportJob(ctx context.Context,
	params *medicalimaging.StartDICOMImportJobInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.StartDICOMImportJobOutput, error) {
	return a.client.StartDICOMImportJob(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) GetDICOMImportJob(ctx context.Context,
	params *medicalimaging.GetDICOMImportJobInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetDICOMImportJobOutput, error) {
	return a.client.GetDICOMImportJob(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) GetImageSet(ctx context.Context,
	params *medicalimaging.GetImageSetInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetImageSetOutput, error) {
	return a.client.GetImageSet(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) GetImageSetMetadata(ctx context.Context,
	params *medicalimaging.GetImageSetMetadataInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetImageSetMetadataOutput, error) {
	return a.client.GetImageSetMetadata(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) GetImageFrame(ctx context.Context,
	params *medicalimaging.GetImageFrameInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.GetImageFrameOutput, error) {
	return a.client.GetImageFrame(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) DeleteImageSet(ctx context.Context,
	params *medicalimaging.DeleteImageSetInput,
	optFns ...func(*medicalimaging.Options)) (*medicalimaging.DeleteImageSetOutput, error) {
	return a.client.DeleteImageSet(ctx, params, optFns...)
}

func (a *AwsMedicalImagingApi) NewListDatastoresPaginator(params *medicalimaging.ListDatastoresInput) ListDatastoresPager {
	return medicalimaging.NewListDatastoresPaginator(a.client, params)
}

func (a *AwsMedicalImagingApi) NewListDICOMImportJobsPaginator(params *medicalimaging.ListDICOMImportJobsInput) ListDICOMImportJobsPager {
	return medicalimaging.NewListDICOMImportJobsPaginator(a.client, params)
}

func (a *AwsMedicalImagingApi) NewSearchImageSetsPaginator(params *medicalimaging.SearchImageSetsInput) SearchImageSetsPager {
	return medicalimaging.NewSearchImageSetsPaginator(a.client, params)
}
