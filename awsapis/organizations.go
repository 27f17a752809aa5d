package awsapis

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/organizations"
)

// Interfaces
type OrganizationsApi interface {
	OrganizationDescriber
	OrganizationCreator
	OrganizationRootsLister
	OrganizationalUnitCreator
	OrganizationsAccountCreator
	OrganizationsCreateAccountStatusDescriber
	ListOrganizationalUnitsForParentPaginator
	ListAccountsPaginator
}

type OrganizationDescriber interface {
	DescribeOrganization(ctx context.Context,
		params *organizations.DescribeOrganizationInput,
		optFns ...func(*organizations.Options)) (*organizations.DescribeOrganizationOutput, error)
}

type OrganizationCreator interface {
	CreateOrganization(ctx context.Context,
		params *organizations.CreateOrganizationInput,
		optFns ...func(*organizations.Options)) (*organizations.CreateOrganizationOutput, error)
}

type OrganizationRootsLister interface {
	ListRoots(ctx context.Context,
		params *organizations.ListRootsInput,
		optFns ...func(*organizations.Options)) (*organizations.ListRootsOutput, error)
}

type OrganizationalUnitCreator interface {
	CreateOrganizationalUnit(ctx context.Context,
		params *organizations.CreateOrganizationalUnitInput,
		optFns ...func(*organizations.Options)) (*organizations.CreateOrganizationalUnitOutput, error)
}

type OrganizationsAccountCreator interface {
	CreateAccount(ctx context.Context,
		params *organizations.CreateAccountInput,
		optFns ...func(*organizations.Options)) (*organizations.CreateAccountOutput, error)
}

type OrganizationsCreateAccountStatusDescriber interface {
	DescribeCreateAccountStatus(ctx context.Context,
		params *organizations.DescribeCreateAccountStatusInput,
		optFns ...func(*organizations.Options)) (*organizations.DescribeCreateAccountStatusOutput, error)
}

type ListOrganizationalUnitsForParentPaginator interface {
	NewListOrganizationalUnitsForParentPaginator(params *organizations.ListOrganizationalUnitsForParentInput) ListOrganizationalUnitsForParentPager
}

type ListOrganizationalUnitsForParentPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*organizations.Options)) (*organizations.ListOrganizationalUnitsForParentOutput, error)
}

type ListAccountsPaginator interface {
	NewListAccountsPaginator(params *organizations.ListAccountsInput) ListAccountsPager
}

type ListAccountsPager interface {
	HasMorePages() bool
	NextPage(context.Context, ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error)
}

// Implementation
type AwsOrganizationsApi struct {
	client *organizations.Client
}

func (a *AwsOrganizationsApi) DescribeOrganization(ctx context.Context,
	params *organizations.DescribeOrganizationInput,
	optFns ...func(*organizations.Options)) (*organizations.DescribeOrganizationOutput, error) {
	return a.client.DescribeOrganization(ctx, params, optFns...)
}

func (a *AwsOrganizationsApi) CreateOrganization(ctx context.Context,
	params *organizations.CreateOrganizationInput,
	optFns ...func(*organizations.Options)) (*organizations.CreateOrganizationOutput, error) {
	return a.client.CreateOrganization(ctx, params, optFns...)
}

func (a *AwsOrganizationsApi) ListRoots(ctx context.Context,
	params *organizations.ListRootsInput,
	optFns ...func(*organizations.Options)) (*organizations.ListRootsOutput, error) {
	return a.client.ListRoots(ctx, params, optFns...)
}

func (a *AwsOrganizationsApi) CreateOrganizationalUnit(ctx context.Context,
	params *organizations.CreateOrganizationalUnitInput,
	optFns ...func(*organizations.Options)) (*organizations.CreateOrganizationalUnitOutput, error) {
	return a.client.CreateOrganizationalUnit(ctx, params, optFns...)
}

func (a *AwsOrganizationsApi) CreateAccount(ctx context.Context,
	params *organizations.CreateAccountInput,
	optFns ...func(*organizations.Options)) (*organizations.CreateAccountOutput, error) {
	return a.client.CreateAccount(ctx, params, optFns...)
}

func (a *AwsOrganizationsApi) DescribeCreateAccountStatus(ctx context.Context,
	params *organizations.DescribeCreateAccountStatusInput,
	optFns ...func(*organizations.Options)) (*organizations.DescribeCreateAccountStatusOutput, error) {
	return a.client.DescribeCreateAccountStatus(ctx, params, optFns...)
}

func (a *AwsOrganizationsApi) NewListOrganizationalUnitsForParentPaginator(params *organizations.ListOrganizationalUnitsForParentInput) ListOrganizationalUnitsForParentPager {
	return organizations.NewListOrganizationalUnitsForParentPaginator(a.client, params)
}

func (a *AwsOrganizationsApi) NewListAccountsPaginator(params *organizations.ListAccountsInput) ListAccountsPager {
	return organizations.NewListAccountsPaginator(a.client, params)
}
