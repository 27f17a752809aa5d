package awsapis

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/controlcatalog"
	"github.com/aws/aws-sdk-go-v2/service/controltower"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/medicalimaging"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Creates a new provider from AWS configuration
func NewProviderFromConfig(cfg *aws.Config) AWSProvider {
	return awsProviderImpl{
		awsConfig: cfg,
	}
}

type AWSProvider interface {
	NewDynamodbApi() DynamodbApi
	NewOrganizationsApi() OrganizationsApi
	NewControlTowerApi() ControlTowerApi
	NewControlCatalogApi() ControlCatalogApi
	NewMedicalImagingApi() MedicalImagingApi
	NewS3Api() S3Api
	NewCloudFormationApi() CloudFormationApi
	NewStsApi() StsApi
	Region() string
}

type awsProviderImpl struct {
	awsConfig *aws.Config
}

func (p awsProviderImpl) Region() string {
	return p.awsConfig.Region
}

func (p awsProviderImpl) NewDynamodbApi() DynamodbApi {
	return &AwsDynamodbApi{
		client: dynamodb.NewFromConfig(*p.awsConfig),
	}
}

func (p awsProviderImpl) NewOrganizationsApi() OrganizationsApi {
	return &AwsOrganizationsApi{
		client: organizations.NewFromConfig(*p.awsConfig),
	}
}

func (p awsProviderImpl) NewControlTowerApi() ControlTowerApi {
	return &AwsControlTowerApi{
		client: controltower.NewFromConfig(*p.awsConfig),
	}
}

func (p awsProviderImpl) NewControlCatalogApi() ControlCatalogApi {
	return &AwsControlCatalogApi{
		client: controlcatalog.NewFromConfig(*p.awsConfig),
	}
}

func (p awsProviderImpl) NewMedicalImagingApi() MedicalImagingApi {
	return &AwsMedicalImagingApi{
		client: medicalimaging.NewFromConfig(*p.awsConfig),
	}
}

func (p awsProviderImpl) NewS3Api() S3Api {
	client := s3.NewFromConfig(*p.awsConfig)
	return &AwsS3Api{
		client:   client,
		uploader: manager.NewUploader(client),
	}
}

func (p awsProviderImpl) NewCloudFormationApi() CloudFormationApi {
	return &AwsCloudFormationApi{
		client: cloudformation.NewFromConfig(*p.awsConfig),
	}
}

func (p awsProviderImpl) NewStsApi() StsApi {
	return &AwsStsApi{
		client: sts.NewFromConfig(*p.awsConfig),
	}
}
