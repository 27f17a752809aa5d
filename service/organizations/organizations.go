package organizations

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/organizations/types"
	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
)

const (
	resourceType        = "organizations"
	resourceTypeOu      = "organizations-ou"
	resourceTypeAccount = "organizations-account"
)

// Organizations wraps the AWS Organizations operations used by scenarios
type Organizations struct {
	Api  awsapis.OrganizationsApi
	Poll awsutils.PollPolicy
}

func NewFromProvider(provider awsapis.AWSProvider, poll awsutils.PollPolicy) *Organizations {
	return &Organizations{Api: provider.NewOrganizationsApi(), Poll: poll}
}

// DescribeOrganization returns the organization of the caller's account, or
// nil when the account is not a member of any organization
func (o *Organizations) DescribeOrganization(ctx context.Context) (*types.Organization, error) {
	out, err := o.Api.DescribeOrganization(ctx, &organizations.DescribeOrganizationInput{})
	if err != nil {
		var notInUse *types.AWSOrganizationsNotInUseException
		if errors.As(err, &notInUse) {
			seelog.Infof("%s: account is not a member of an organization", resourceType)
			return nil, nil
		}
		return nil, domain.ReportServiceError("DescribeOrganization", err)
	}
	return out.Organization, nil
}

// CreateOrganization creates an organization with all features enabled
func (o *Organizations) CreateOrganization(ctx context.Context) (*types.Organization, error) {
	out, err := o.Api.CreateOrganization(ctx, &organizations.CreateOrganizationInput{
		FeatureSet: types.OrganizationFeatureSetAll,
	})
	if err != nil {
		return nil, domain.ReportServiceError("CreateOrganization", err)
	}
	seelog.Infof("%s name=%s: organization created", resourceType, aws.ToString(out.Organization.Id))
	return out.Organization, nil
}

// ListRoots returns the roots of the organization
func (o *Organizations) ListRoots(ctx context.Context) ([]types.Root, error) {
	out, err := o.Api.ListRoots(ctx, &organizations.ListRootsInput{})
	if err != nil {
		return nil, domain.ReportServiceError("ListRoots", err)
	}
	return out.Roots, nil
}

// ListOrganizationalUnitsForParent returns every OU directly under parentId
func (o *Organizations) ListOrganizationalUnitsForParent(ctx context.Context, parentId string) ([]types.OrganizationalUnit, error) {
	units := []types.OrganizationalUnit{}
	paginator := o.Api.NewListOrganizationalUnitsForParentPaginator(&organizations.ListOrganizationalUnitsForParentInput{
		ParentId: aws.String(parentId),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListOrganizationalUnitsForParent", err)
		}
		units = append(units, page.OrganizationalUnits...)
	}
	return units, nil
}

func (o *Organizations) CreateOrganizationalUnit(ctx context.Context, parentId string, name string) (*types.OrganizationalUnit, error) {
	out, err := o.Api.CreateOrganizationalUnit(ctx, &organizations.CreateOrganizationalUnitInput{
		ParentId: aws.String(parentId),
		Name:     aws.String(name),
	})
	if err != nil {
		return nil, domain.ReportServiceError("CreateOrganizationalUnit", err)
	}
	seelog.Infof("%s name=%s: organizational unit created with id %s",
		resourceTypeOu, name, aws.ToString(out.OrganizationalUnit.Id))
	return out.OrganizationalUnit, nil
}

// FindOrCreateOrganizationalUnit returns the OU named name under parentId,
// creating it when missing. The boolean is true when the OU was created.
func (o *Organizations) FindOrCreateOrganizationalUnit(ctx context.Context, parentId string, name string) (*types.OrganizationalUnit, bool, error) {
	units, err := o.ListOrganizationalUnitsForParent(ctx, parentId)
	if err != nil {
		return nil, false, err
	}
	for _, ou := range units {
		if aws.ToString(ou.Name) == name {
			seelog.Infof("%s name=%s: found existing organizational unit %s", resourceTypeOu, name, aws.ToString(ou.Id))
			return &ou, false, nil
		}
	}

	ou, err := o.CreateOrganizationalUnit(ctx, parentId, name)
	if err != nil {
		return nil, false, err
	}
	return ou, true, nil
}

// CreateAccount requests a new member account and waits for the request to
// complete. The returned status carries the new account ID.
func (o *Organizations) CreateAccount(ctx context.Context, email string, name string) (*types.CreateAccountStatus, error) {
	out, err := o.Api.CreateAccount(ctx, &organizations.CreateAccountInput{
		Email:       aws.String(email),
		AccountName: aws.String(name),
	})
	if err != nil {
		return nil, domain.ReportServiceError("CreateAccount", err)
	}
	return o.WaitForAccount(ctx, aws.ToString(out.CreateAccountStatus.Id))
}

// WaitForAccount polls an account creation request until it succeeds or fails
func (o *Organizations) WaitForAccount(ctx context.Context, requestId string) (*types.CreateAccountStatus, error) {
	var status *types.CreateAccountStatus
	err := awsutils.PollWithPolicy(ctx, o.Poll, func(ctx context.Context) (bool, error) {
		out, err := o.Api.DescribeCreateAccountStatus(ctx, &organizations.DescribeCreateAccountStatusInput{
			CreateAccountRequestId: aws.String(requestId),
		})
		if err != nil {
			return false, domain.ReportServiceError("DescribeCreateAccountStatus", err)
		}
		status = out.CreateAccountStatus
		seelog.Debugf("%s name=%s: account creation status %s", resourceTypeAccount, requestId, status.State)
		return status.State != types.CreateAccountStateInProgress, nil
	})
	if err != nil {
		return nil, err
	}

	if status.State == types.CreateAccountStateFailed {
		return status, domain.OperationFailedError{
			OperationIdentifier: requestId,
			Status:              string(status.State),
			Message:             string(status.FailureReason),
		}
	}
	seelog.Infof("%s name=%s: account %s created", resourceTypeAccount, requestId, aws.ToString(status.AccountId))
	return status, nil
}

// ListAccounts returns every account of the organization
func (o *Organizations) ListAccounts(ctx context.Context) ([]types.Account, error) {
	accounts := []types.Account{}
	paginator := o.Api.NewListAccountsPaginator(&organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListAccounts", err)
		}
		accounts = append(accounts, page.Accounts...)
	}
	return accounts, nil
}
