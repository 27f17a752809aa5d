package controltower

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/controlcatalog"
	cctypes "github.com/aws/aws-sdk-go-v2/service/controlcatalog/types"
	"github.com/aws/aws-sdk-go-v2/service/controltower"
	"github.com/aws/aws-sdk-go-v2/service/controltower/document"
	"github.com/aws/aws-sdk-go-v2/service/controltower/types"
	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
)

// Long running operations are logged under their own resource type, named
// by operation identifier
const resourceTypeOperation = "controltower-operation"

// ControlTower wraps landing zone, baseline and control operations. Controls
// are discovered through the Control Catalog.
type ControlTower struct {
	Api     awsapis.ControlTowerApi
	Catalog awsapis.ControlCatalogApi
	Poll    awsutils.PollPolicy
}

func NewFromProvider(provider awsapis.AWSProvider, poll awsutils.PollPolicy) *ControlTower {
	return &ControlTower{
		Api:     provider.NewControlTowerApi(),
		Catalog: provider.NewControlCatalogApi(),
		Poll:    poll,
	}
}

// Landing zones

func (c *ControlTower) ListLandingZones(ctx context.Context) ([]types.LandingZoneSummary, error) {
	zones := []types.LandingZoneSummary{}
	paginator := c.Api.NewListLandingZonesPaginator(&controltower.ListLandingZonesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListLandingZones", err)
		}
		zones = append(zones, page.LandingZones...)
	}
	return zones, nil
}

func (c *ControlTower) GetLandingZone(ctx context.Context, arn string) (*types.LandingZoneDetail, error) {
	out, err := c.Api.GetLandingZone(ctx, &controltower.GetLandingZoneInput{
		LandingZoneIdentifier: aws.String(arn),
	})
	if err != nil {
		return nil, domain.ReportServiceError("GetLandingZone", err)
	}
	return out.LandingZone, nil
}

// CreateLandingZone starts the landing zone setup. The returned operation must
// be waited on with WaitForLandingZoneOperation.
func (c *ControlTower) CreateLandingZone(ctx context.Context, manifest LandingZoneManifest, version string) (domain.OperationResult, error) {
	out, err := c.Api.CreateLandingZone(ctx, &controltower.CreateLandingZoneInput{
		Manifest: manifest.Document(),
		Version:  aws.String(version),
	})
	if err != nil {
		return domain.OperationResult{}, domain.ReportServiceError("CreateLandingZone", err)
	}
	result := domain.OperationResult{
		Arn:                 aws.ToString(out.Arn),
		OperationIdentifier: aws.ToString(out.OperationIdentifier),
	}
	seelog.Infof("%s name=%s: landing zone setup started, operation %s",
		domain.ResourceTypeLandingZone, result.Arn, result.OperationIdentifier)
	return result, nil
}

func (c *ControlTower) UpdateLandingZone(ctx context.Context, arn string, manifest LandingZoneManifest, version string) (string, error) {
	out, err := c.Api.UpdateLandingZone(ctx, &controltower.UpdateLandingZoneInput{
		LandingZoneIdentifier: aws.String(arn),
		Manifest:              manifest.Document(),
		Version:               aws.String(version),
	})
	if err != nil {
		return "", domain.ReportServiceError("UpdateLandingZone", err)
	}
	return aws.ToString(out.OperationIdentifier), nil
}

func (c *ControlTower) ResetLandingZone(ctx context.Context, arn string) (string, error) {
	out, err := c.Api.ResetLandingZone(ctx, &controltower.ResetLandingZoneInput{
		LandingZoneIdentifier: aws.String(arn),
	})
	if err != nil {
		return "", domain.ReportServiceError("ResetLandingZone", err)
	}
	return aws.ToString(out.OperationIdentifier), nil
}

func (c *ControlTower) DeleteLandingZone(ctx context.Context, arn string) (string, error) {
	out, err := c.Api.DeleteLandingZone(ctx, &controltower.DeleteLandingZoneInput{
		LandingZoneIdentifier: aws.String(arn),
	})
	if err != nil {
		return "", domain.ReportServiceError("DeleteLandingZone", err)
	}
	seelog.Infof("%s name=%s: landing zone deletion started", domain.ResourceTypeLandingZone, arn)
	return aws.ToString(out.OperationIdentifier), nil
}

func (c *ControlTower) WaitForLandingZoneOperation(ctx context.Context, operationId string) error {
	return c.waitForOperation(ctx, domain.ResourceTypeLandingZone, operationId, func(ctx context.Context) (string, string, error) {
		out, err := c.Api.GetLandingZoneOperation(ctx, &controltower.GetLandingZoneOperationInput{
			OperationIdentifier: aws.String(operationId),
		})
		if err != nil {
			return "", "", domain.ReportServiceError("GetLandingZoneOperation", err)
		}
		return string(out.OperationDetails.Status), aws.ToString(out.OperationDetails.StatusMessage), nil
	}, string(types.LandingZoneOperationStatusSucceeded), string(types.LandingZoneOperationStatusFailed))
}

// Baselines

func (c *ControlTower) ListBaselines(ctx context.Context) ([]types.BaselineSummary, error) {
	baselines := []types.BaselineSummary{}
	paginator := c.Api.NewListBaselinesPaginator(&controltower.ListBaselinesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListBaselines", err)
		}
		baselines = append(baselines, page.Baselines...)
	}
	return baselines, nil
}

// ListEnabledBaselines returns the enabled baselines on targetId, or on every
// target when targetId is empty
func (c *ControlTower) ListEnabledBaselines(ctx context.Context, targetId string) ([]types.EnabledBaselineSummary, error) {
	input := &controltower.ListEnabledBaselinesInput{}
	if targetId != "" {
		input.Filter = &types.EnabledBaselineFilter{TargetIdentifiers: []string{targetId}}
	}

	enabled := []types.EnabledBaselineSummary{}
	paginator := c.Api.NewListEnabledBaselinesPaginator(input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListEnabledBaselines", err)
		}
		enabled = append(enabled, page.EnabledBaselines...)
	}
	return enabled, nil
}

// EnableBaseline enables baselineArn on targetId. Enabling a baseline that is
// already enabled succeeds with the ARN of the existing enabled baseline.
func (c *ControlTower) EnableBaseline(ctx context.Context, targetId string, baselineArn string,
	version string, parameters map[string]any) (domain.EnableResult, error) {

	input := &controltower.EnableBaselineInput{
		BaselineIdentifier: aws.String(baselineArn),
		BaselineVersion:    aws.String(version),
		TargetIdentifier:   aws.String(targetId),
	}
	for key, value := range parameters {
		input.Parameters = append(input.Parameters, types.EnabledBaselineParameter{
			Key:   aws.String(key),
			Value: document.NewLazyDocument(value),
		})
	}

	out, err := c.Api.EnableBaseline(ctx, input)
	if err != nil {
		if domain.IsAlreadyEnabled(err) {
			seelog.Infof("%s name=%s: baseline %s is already enabled",
				domain.ResourceTypeEnabledBaseline, targetId, baselineArn)
			existing, lookupErr := c.findEnabledBaseline(ctx, targetId, baselineArn)
			if lookupErr != nil {
				return domain.EnableResult{}, lookupErr
			}
			return domain.EnableResult{Arn: existing, AlreadyEnabled: true}, nil
		}
		return domain.EnableResult{}, domain.ReportServiceError("EnableBaseline", err)
	}

	result := domain.EnableResult{
		Arn:                 aws.ToString(out.Arn),
		OperationIdentifier: aws.ToString(out.OperationIdentifier),
	}
	seelog.Infof("%s name=%s: enabling baseline %s, operation %s",
		domain.ResourceTypeEnabledBaseline, targetId, baselineArn, result.OperationIdentifier)
	return result, nil
}

func (c *ControlTower) findEnabledBaseline(ctx context.Context, targetId string, baselineArn string) (string, error) {
	enabled, err := c.ListEnabledBaselines(ctx, targetId)
	if err != nil {
		return "", err
	}
	for _, eb := range enabled {
		if aws.ToString(eb.BaselineIdentifier) == baselineArn {
			return aws.ToString(eb.Arn), nil
		}
	}
	seelog.Warnf("%s name=%s: baseline %s reported as enabled but not found in enabled baselines",
		domain.ResourceTypeEnabledBaseline, targetId, baselineArn)
	return "", nil
}

// DisableBaseline disables an enabled baseline. A baseline that no longer
// exists is treated as disabled and yields an empty operation identifier.
func (c *ControlTower) DisableBaseline(ctx context.Context, enabledBaselineArn string) (string, error) {
	out, err := c.Api.DisableBaseline(ctx, &controltower.DisableBaselineInput{
		EnabledBaselineIdentifier: aws.String(enabledBaselineArn),
	})
	if err != nil {
		if domain.IsNotFound(err) {
			seelog.Infof("DisableBaseline: enabled baseline %s not found, nothing to disable", enabledBaselineArn)
			return "", nil
		}
		return "", domain.ReportServiceError("DisableBaseline", err)
	}
	return aws.ToString(out.OperationIdentifier), nil
}

func (c *ControlTower) ResetEnabledBaseline(ctx context.Context, enabledBaselineArn string) (string, error) {
	out, err := c.Api.ResetEnabledBaseline(ctx, &controltower.ResetEnabledBaselineInput{
		EnabledBaselineIdentifier: aws.String(enabledBaselineArn),
	})
	if err != nil {
		return "", domain.ReportServiceError("ResetEnabledBaseline", err)
	}
	return aws.ToString(out.OperationIdentifier), nil
}

func (c *ControlTower) WaitForBaselineOperation(ctx context.Context, operationId string) error {
	return c.waitForOperation(ctx, domain.ResourceTypeEnabledBaseline, operationId, func(ctx context.Context) (string, string, error) {
		out, err := c.Api.GetBaselineOperation(ctx, &controltower.GetBaselineOperationInput{
			OperationIdentifier: aws.String(operationId),
		})
		if err != nil {
			return "", "", domain.ReportServiceError("GetBaselineOperation", err)
		}
		return string(out.BaselineOperation.Status), aws.ToString(out.BaselineOperation.StatusMessage), nil
	}, string(types.BaselineOperationStatusSucceeded), string(types.BaselineOperationStatusFailed))
}

// Controls

// ListControls returns the controls of the Control Catalog
func (c *ControlTower) ListControls(ctx context.Context) ([]cctypes.ControlSummary, error) {
	controls := []cctypes.ControlSummary{}
	paginator := c.Catalog.NewListControlsPaginator(&controlcatalog.ListControlsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListControls", err)
		}
		controls = append(controls, page.Controls...)
	}
	return controls, nil
}

func (c *ControlTower) ListEnabledControls(ctx context.Context, targetId string) ([]types.EnabledControlSummary, error) {
	enabled := []types.EnabledControlSummary{}
	paginator := c.Api.NewListEnabledControlsPaginator(&controltower.ListEnabledControlsInput{
		TargetIdentifier: aws.String(targetId),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.ReportServiceError("ListEnabledControls", err)
		}
		enabled = append(enabled, page.EnabledControls...)
	}
	return enabled, nil
}

// EnableControl enables controlArn on targetId. A control that is already
// enabled is reported with AlreadyEnabled set and no operation to wait on.
func (c *ControlTower) EnableControl(ctx context.Context, controlArn string, targetId string) (domain.EnableResult, error) {
	out, err := c.Api.EnableControl(ctx, &controltower.EnableControlInput{
		ControlIdentifier: aws.String(controlArn),
		TargetIdentifier:  aws.String(targetId),
	})
	if err != nil {
		if domain.IsAlreadyEnabled(err) {
			seelog.Infof("%s name=%s: control %s is already enabled",
				domain.ResourceTypeEnabledControl, targetId, controlArn)
			return domain.EnableResult{AlreadyEnabled: true}, nil
		}
		return domain.EnableResult{}, domain.ReportServiceError("EnableControl", err)
	}

	result := domain.EnableResult{
		Arn:                 aws.ToString(out.Arn),
		OperationIdentifier: aws.ToString(out.OperationIdentifier),
	}
	seelog.Infof("%s name=%s: enabling control %s, operation %s",
		domain.ResourceTypeEnabledControl, targetId, controlArn, result.OperationIdentifier)
	return result, nil
}

// DisableControl disables controlArn on targetId. A control that is not
// enabled yields an empty operation identifier.
func (c *ControlTower) DisableControl(ctx context.Context, controlArn string, targetId string) (string, error) {
	out, err := c.Api.DisableControl(ctx, &controltower.DisableControlInput{
		ControlIdentifier: aws.String(controlArn),
		TargetIdentifier:  aws.String(targetId),
	})
	if err != nil {
		if domain.IsNotFound(err) {
			seelog.Infof("%s name=%s: control %s is not enabled, nothing to disable",
				domain.ResourceTypeEnabledControl, targetId, controlArn)
			return "", nil
		}
		return "", domain.ReportServiceError("DisableControl", err)
	}
	return aws.ToString(out.OperationIdentifier), nil
}

func (c *ControlTower) WaitForControlOperation(ctx context.Context, operationId string) error {
	return c.waitForOperation(ctx, domain.ResourceTypeEnabledControl, operationId, func(ctx context.Context) (string, string, error) {
		out, err := c.Api.GetControlOperation(ctx, &controltower.GetControlOperationInput{
			OperationIdentifier: aws.String(operationId),
		})
		if err != nil {
			return "", "", domain.ReportServiceError("GetControlOperation", err)
		}
		return string(out.ControlOperation.Status), aws.ToString(out.ControlOperation.StatusMessage), nil
	}, string(types.ControlOperationStatusSucceeded), string(types.ControlOperationStatusFailed))
}

// waitForOperation polls getStatus until it returns succeeded or failed
func (c *ControlTower) waitForOperation(ctx context.Context, kind string, operationId string,
	getStatus func(context.Context) (string, string, error), succeeded string, failed string) error {

	if operationId == "" {
		return nil
	}

	var status, message string
	err := awsutils.PollWithPolicy(ctx, c.Poll, func(ctx context.Context) (bool, error) {
		var err error
		status, message, err = getStatus(ctx)
		if err != nil {
			return false, err
		}
		seelog.Debugf("%s name=%s: %s status %s", resourceTypeOperation, operationId, kind, status)
		return status == succeeded || status == failed, nil
	})
	if err != nil {
		seelog.Errorf("%s name=%s: stopped waiting for %s: %v", resourceTypeOperation, operationId, kind, err)
		return err
	}

	if status == failed {
		return domain.OperationFailedError{
			OperationIdentifier: operationId,
			Status:              status,
			Message:             message,
		}
	}
	seelog.Infof("%s name=%s: %s %s", resourceTypeOperation, operationId, kind, status)
	return nil
}
