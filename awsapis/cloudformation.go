package awsapis

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// Interfaces
type CloudFormationApi interface {
	StackCreator
	StacksDescriber
	StackDeleter
	StackCreateCompleteWaiterIface
	StackDeleteCompleteWaiterIface
}

type StackCreator interface {
	CreateStack(ctx context.Context,
		params *cloudformation.CreateStackInput,
		optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
}

type StacksDescriber interface {
	DescribeStacks(ctx context.Context,
		params *cloudformation.DescribeStacksInput,
		optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

type StackDeleter interface {
	DeleteStack(ctx context.Context,
		params *cloudformation.DeleteStackInput,
		optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

type StackCreateCompleteWaiterIface interface {
	NewStackCreateCompleteWaiter() StackCreateCompleteWaiter
}

type StackCreateCompleteWaiter interface {
	Wait(ctx context.Context, params *cloudformation.DescribeStacksInput,
		maxWaitDur time.Duration, optFns ...func(*cloudformation.StackCreateCompleteWaiterOptions)) error
}

type StackDeleteCompleteWaiterIface interface {
	NewStackDeleteCompleteWaiter() StackDeleteCompleteWaiter
}

type StackDeleteCompleteWaiter interface {
	Wait(ctx context.Context, params *cloudformation.DescribeStacksInput,
		maxWaitDur time.Duration, optFns ...func(*cloudformation.StackDeleteCompleteWaiterOptions)) error
}

// Implementation
type AwsCloudFormationApi struct {
	client *cloudformation.Client
}

func (a *AwsCloudFormationApi) CreateStack(ctx context.Context,
	params *cloudformation.CreateStackInput,
	optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {
	return a.client.CreateStack(ctx, params, optFns...)
}

func (a *AwsCloudFormationApi) DescribeStacks(ctx context.Context,
	params *cloudformation.DescribeStacksInput,
	optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	return a.client.DescribeStacks(ctx, params, optFns...)
}

func (a *AwsCloudFormationApi) DeleteStack(ctx context.Context,
	params *cloudformation.DeleteStackInput,
	optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	return a.client.DeleteStack(ctx, params, optFns...)
}

func (a *AwsCloudFormationApi) NewStackCreateCompleteWaiter() StackCreateCompleteWaiter {
	return cloudformation.NewStackCreateCompleteWaiter(a.client)
}

func (a *AwsCloudFormationApi) NewStackDeleteCompleteWaiter() StackDeleteCompleteWaiter {
	return cloudformation.NewStackDeleteCompleteWaiter(a.client)
}
