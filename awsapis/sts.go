package awsapis

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Interfaces
type StsApi interface {
	CallerIdentityGetter
}

type CallerIdentityGetter interface {
	GetCallerIdentity(ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Implementation
type AwsStsApi struct {
	client *sts.Client
}

func (a *AwsStsApi) GetCallerIdentity(ctx context.Context,
	params *sts.GetCallerIdentityInput,
	optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return a.client.GetCallerIdentity(ctx, params, optFns...)
}
