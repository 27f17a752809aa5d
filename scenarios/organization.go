package scenarios

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/organizations"
	"github.com/pkg/errors"
)

var separator = strings.Repeat("-", 88)

// CallerAccountId returns the account of the credentials in use
func CallerAccountId(ctx context.Context, api awsapis.CallerIdentityGetter) (string, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", domain.ReportServiceError("GetCallerIdentity", err)
	}
	return aws.ToString(out.Account), nil
}

// SetupOrganization returns the organizational unit named ouName under the
// organization root, creating it when missing. The caller must be a member of
// an organization; organizations are never created here.
func SetupOrganization(ctx context.Context, orgs *organizations.Organizations, ouName string,
	out io.Writer) (*types.OrganizationalUnit, error) {

	org, err := orgs.DescribeOrganization(ctx)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, errors.New("this account is not part of an organization, create one from the AWS Organizations console first")
	}
	fmt.Fprintf(out, "Organization %s is managed by account %s.\n",
		aws.ToString(org.Id), aws.ToString(org.MasterAccountId))

	roots, err := orgs.ListRoots(ctx)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, errors.Errorf("organization %s has no root", aws.ToString(org.Id))
	}
	rootId := aws.ToString(roots[0].Id)

	ou, created, err := orgs.FindOrCreateOrganizationalUnit(ctx, rootId, ouName)
	if err != nil {
		return nil, err
	}
	if created {
		fmt.Fprintf(out, "Created organizational unit %s (%s) under root %s.\n", ouName, aws.ToString(ou.Id), rootId)
	} else {
		fmt.Fprintf(out, "Using existing organizational unit %s (%s).\n", ouName, aws.ToString(ou.Id))
	}
	return ou, nil
}
