package stacks

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const resourceType = domain.ResourceTypeCloudFormationStack

const defaultMaxWait = 30 * time.Minute

// Stacks deploys and destroys the CloudFormation stacks that hold scenario
// prerequisites
type Stacks struct {
	Api awsapis.CloudFormationApi
	// MaxWait bounds each create or delete waiter
	MaxWait time.Duration
}

func NewFromProvider(provider awsapis.AWSProvider, maxWait time.Duration) *Stacks {
	return &Stacks{Api: provider.NewCloudFormationApi(), MaxWait: maxWait}
}

func (s *Stacks) maxWait() time.Duration {
	if s.MaxWait <= 0 {
		return defaultMaxWait
	}
	return s.MaxWait
}

// ReadTemplate loads a template body from disk
func ReadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read stack template %s", path)
	}
	return string(data), nil
}

// Create starts the creation of a stack with named IAM capabilities and
// returns its stack id without waiting. Callers record the stack before
// calling WaitForCreate so a failed or interrupted create can be cleaned up.
func (s *Stacks) Create(ctx context.Context, stackName string, templateBody string,
	parameters map[string]string) (string, error) {

	keys := maps.Keys(parameters)
	slices.Sort(keys)
	params := make([]types.Parameter, 0, len(keys))
	for _, k := range keys {
		params = append(params, types.Parameter{
			ParameterKey:   aws.String(k),
			ParameterValue: aws.String(parameters[k]),
		})
	}

	out, err := s.Api.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(stackName),
		TemplateBody: aws.String(templateBody),
		Capabilities: []types.Capability{types.CapabilityCapabilityNamedIam},
		Parameters:   params,
	})
	if err != nil {
		return "", domain.ReportServiceError("CreateStack", err)
	}
	stackId := aws.ToString(out.StackId)
	seelog.Infof("%s name=%s: stack creation started, id %s", resourceType, stackName, stackId)
	return stackId, nil
}

// WaitForCreate waits for CREATE_COMPLETE and returns the stack outputs
func (s *Stacks) WaitForCreate(ctx context.Context, stackName string) (map[string]string, error) {
	waiter := s.Api.NewStackCreateCompleteWaiter()
	err := waiter.Wait(ctx, &cloudformation.DescribeStacksInput{StackName: aws.String(stackName)}, s.maxWait())
	if err != nil {
		return nil, errors.Wrapf(err, "stack %s did not reach CREATE_COMPLETE", stackName)
	}
	seelog.Infof("%s name=%s: stack created", resourceType, stackName)

	return s.Outputs(ctx, stackName)
}

// Outputs returns the outputs of a stack keyed by OutputKey
func (s *Stacks) Outputs(ctx context.Context, stackName string) (map[string]string, error) {
	out, err := s.Api.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{StackName: aws.String(stackName)})
	if err != nil {
		return nil, domain.ReportServiceError("DescribeStacks", err)
	}
	if len(out.Stacks) == 0 {
		return nil, errors.Errorf("stack %s not found", stackName)
	}

	outputs := map[string]string{}
	for _, o := range out.Stacks[0].Outputs {
		outputs[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}
	return outputs, nil
}

// Destroy deletes a stack and waits for DELETE_COMPLETE
func (s *Stacks) Destroy(ctx context.Context, stackName string) error {
	_, err := s.Api.DeleteStack(ctx, &cloudformation.DeleteStackInput{StackName: aws.String(stackName)})
	if err != nil {
		return domain.ReportServiceError("DeleteStack", err)
	}

	waiter := s.Api.NewStackDeleteCompleteWaiter()
	err = waiter.Wait(ctx, &cloudformation.DescribeStacksInput{StackName: aws.String(stackName)}, s.maxWait())
	if err != nil {
		return errors.Wrapf(err, "stack %s did not reach DELETE_COMPLETE", stackName)
	}
	seelog.Infof("%s name=%s: stack deleted", resourceType, stackName)
	return nil
}

// RequireOutputs checks that every key is present in outputs
func RequireOutputs(stackName string, outputs map[string]string, keys ...string) error {
	for _, k := range keys {
		if outputs[k] == "" {
			return errors.Errorf("stack %s has no output %s", stackName, k)
		}
	}
	return nil
}
