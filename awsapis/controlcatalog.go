package awsapis

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/controlcatalog"
)

// Interfaces
type ControlCatalogApi interface {
	ListControlsPaginator
}

type ListControlsPaginator interface {
	NewListControlsPaginator(params *controlcatalog.ListControlsInput) ListControlsPager
}

type ListControlsPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*controlcatalog.Options)) (*controlcatalog.ListControlsOutput, error)
}

// Implementation
type AwsControlCatalogApi struct {
	client *controlcatalog.Client
}

func (a *AwsControlCatalogApi) NewListControlsPaginator(params *controlcatalog.ListControlsInput) ListControlsPager {
	return controlcatalog.NewListControlsPaginator(a.client, params)
}
