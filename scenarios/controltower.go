package scenarios

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	cctypes "github.com/aws/aws-sdk-go-v2/service/controlcatalog/types"
	cttypes "github.com/aws/aws-sdk-go-v2/service/controltower/types"
	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/config"
	"github.com/mcastellin/aws-scenarios/demotools"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/controltower"
	"github.com/mcastellin/aws-scenarios/service/organizations"
	"github.com/mcastellin/aws-scenarios/service/stacks"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	outputLogAccountId      = "LogAccountId"
	outputSecurityAccountId = "SecurityAccountId"
)

// accountParameters are the account stack parameters, asked in this order
var accountParameters = []struct {
	key      string
	question string
}{
	{"LoggingAccountEmail", "Enter an email address for the logging account: "},
	{"LoggingAccountName", "Enter a name for the logging account: "},
	{"SecurityAccountEmail", "Enter an email address for the security account: "},
	{"SecurityAccountName", "Enter a name for the security account: "},
}

// AccountParameterKeys lists the account stack parameters that can be passed
// in ControlTowerScenario.AccountParameters
func AccountParameterKeys() []string {
	keys := make([]string, 0, len(accountParameters))
	for _, p := range accountParameters {
		keys = append(keys, p.key)
	}
	return keys
}

// ControlTowerScenario sets up a landing zone, enables a baseline on the
// sandbox OU and toggles one control from the Control Catalog
type ControlTowerScenario struct {
	Organizations     *organizations.Organizations
	ControlTower      *controltower.ControlTower
	Stacks            *stacks.Stacks
	Sts               awsapis.CallerIdentityGetter
	Ledger            *Ledger
	Questioner        demotools.IQuestioner
	Config            config.ControlTowerConfig
	Region            string
	// AccountParameters skips the prompt for every account stack
	// parameter it sets
	AccountParameters map[string]string
	Out               io.Writer
}

func (s *ControlTowerScenario) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func (s *ControlTowerScenario) Run(ctx context.Context) error {
	s.printf("%s\n", separator)
	s.printf("Welcome to the AWS Control Tower with Control Catalog example scenario.\n")
	s.printf("%s\n", separator)

	accountId, err := CallerAccountId(ctx, s.Sts)
	if err != nil {
		return err
	}
	s.printf("Running in account %s, region %s.\n", accountId, s.Region)

	ou, err := SetupOrganization(ctx, s.Organizations, s.Config.SandboxOuName, s.Out)
	if err != nil {
		return err
	}
	targetId := aws.ToString(ou.Arn)

	landingZoneArn, err := s.landingZone(ctx)
	if err != nil {
		return s.finish(ctx, err)
	}
	if landingZoneArn == "" {
		s.printf("A landing zone is required to manage baselines and controls.\n")
		return s.finish(ctx, nil)
	}

	if err := s.enableBaseline(ctx, targetId); err != nil {
		return s.finish(ctx, err)
	}
	if err := s.toggleControl(ctx, targetId); err != nil {
		return s.finish(ctx, err)
	}
	return s.finish(ctx, nil)
}

// landingZone returns the ARN of an existing landing zone or of the one the
// user agrees to create. An empty ARN means no landing zone is available.
func (s *ControlTowerScenario) landingZone(ctx context.Context) (string, error) {
	s.printf("%s\n", separator)
	zones, err := s.ControlTower.ListLandingZones(ctx)
	if err != nil {
		return "", err
	}
	if len(zones) > 0 {
		arn := aws.ToString(zones[0].Arn)
		s.printf("Found existing landing zone %s.\n", arn)
		return arn, nil
	}

	s.printf("No landing zone found. Setting one up creates a logging and a security account.\n")
	if !s.Questioner.AskBool("Do you want to create a landing zone? (y/n) ", "y") {
		return "", nil
	}

	outputs, err := s.deployAccounts(ctx)
	if err != nil {
		return "", err
	}

	regions := s.Config.GovernedRegions
	if len(regions) == 0 {
		regions = []string{s.Region}
	}
	manifest, err := controltower.NewManifest(controltower.ManifestInput{
		GovernedRegions:        regions,
		SecurityOuName:         s.Config.SecurityOuName,
		SandboxOuName:          s.Config.SandboxOuName,
		LogAccountId:           outputs[outputLogAccountId],
		SecurityAccountId:      outputs[outputSecurityAccountId],
		LogRetentionDays:       s.Config.LogRetentionDays,
		AccessLogRetentionDays: s.Config.AccessLogRetentionDays,
	})
	if err != nil {
		return "", err
	}

	s.printf("Creating landing zone version %s governing %v. This can take up to an hour.\n",
		s.Config.LandingZoneVersion, regions)
	op, err := s.ControlTower.CreateLandingZone(ctx, manifest, s.Config.LandingZoneVersion)
	if err != nil {
		return "", err
	}
	if err := s.Ledger.Record(ctx, domain.ResourceTypeLandingZone, op.Arn,
		domain.LandingZoneState{Arn: op.Arn}); err != nil {
		return "", err
	}
	if err := s.ControlTower.WaitForLandingZoneOperation(ctx, op.OperationIdentifier); err != nil {
		return "", err
	}
	s.printf("Landing zone %s is ready.\n", op.Arn)
	return op.Arn, nil
}

func (s *ControlTowerScenario) deployAccounts(ctx context.Context) (map[string]string, error) {
	body, err := stacks.ReadTemplate(s.Config.TemplateFile)
	if err != nil {
		return nil, err
	}

	params := map[string]string{}
	for _, p := range accountParameters {
		if v := s.AccountParameters[p.key]; v != "" {
			params[p.key] = v
			continue
		}
		params[p.key] = s.Questioner.Ask(p.question, demotools.NotEmpty)
	}

	s.printf("Creating stack %s. Waiting for the accounts to be created.\n", s.Config.StackName)
	stackId, err := s.Stacks.Create(ctx, s.Config.StackName, body, params)
	if err != nil {
		return nil, err
	}
	if err := s.Ledger.Record(ctx, domain.ResourceTypeCloudFormationStack, s.Config.StackName,
		domain.StackState{StackName: s.Config.StackName, StackId: stackId}); err != nil {
		return nil, err
	}
	outputs, err := s.Stacks.WaitForCreate(ctx, s.Config.StackName)
	if err != nil {
		return nil, err
	}
	if err := stacks.RequireOutputs(s.Config.StackName, outputs, outputLogAccountId, outputSecurityAccountId); err != nil {
		return nil, err
	}
	s.printf("Logging account %s and security account %s are ready.\n",
		outputs[outputLogAccountId], outputs[outputSecurityAccountId])
	return outputs, nil
}

func (s *ControlTowerScenario) enableBaseline(ctx context.Context, targetId string) error {
	s.printf("%s\n", separator)
	baselines, err := s.ControlTower.ListBaselines(ctx)
	if err != nil {
		return err
	}
	s.printf("Found %d baselines.\n", len(baselines))

	idx := slices.IndexFunc(baselines, func(b cttypes.BaselineSummary) bool {
		return aws.ToString(b.Name) == s.Config.BaselineName
	})
	if idx < 0 {
		return errors.Errorf("baseline %s is not available", s.Config.BaselineName)
	}
	baselineArn := aws.ToString(baselines[idx].Arn)

	s.printf("Enabling baseline %s version %s on %s.\n", s.Config.BaselineName, s.Config.BaselineVersion, targetId)
	result, err := s.ControlTower.EnableBaseline(ctx, targetId, baselineArn, s.Config.BaselineVersion, nil)
	if err != nil {
		return err
	}
	if result.AlreadyEnabled {
		s.printf("Baseline is already enabled as %s.\n", result.Arn)
		return nil
	}

	if err := s.Ledger.Record(ctx, domain.ResourceTypeEnabledBaseline, result.Arn, domain.EnabledBaselineState{
		Arn:              result.Arn,
		BaselineArn:      baselineArn,
		TargetIdentifier: targetId,
	}); err != nil {
		return err
	}
	if err := s.ControlTower.WaitForBaselineOperation(ctx, result.OperationIdentifier); err != nil {
		return err
	}
	s.printf("Baseline enabled as %s.\n", result.Arn)
	return nil
}

func (s *ControlTowerScenario) toggleControl(ctx context.Context, targetId string) error {
	s.printf("%s\n", separator)
	controls, err := s.ControlTower.ListControls(ctx)
	if err != nil {
		return err
	}
	enabled, err := s.ControlTower.ListEnabledControls(ctx, targetId)
	if err != nil {
		return err
	}
	s.printf("The Control Catalog lists %d controls, %d are enabled on %s.\n", len(controls), len(enabled), targetId)

	enabledArns := make([]string, 0, len(enabled))
	for _, ec := range enabled {
		enabledArns = append(enabledArns, aws.ToString(ec.ControlIdentifier))
	}
	control, ok := firstDisabledControl(controls, enabledArns)
	if !ok {
		s.printf("Every control is already enabled on %s.\n", targetId)
		return nil
	}
	controlArn := aws.ToString(control.Arn)

	if !s.Questioner.AskBool(fmt.Sprintf("Enable control %s (%s)? (y/n) ", aws.ToString(control.Name), controlArn), "y") {
		return nil
	}
	result, err := s.ControlTower.EnableControl(ctx, controlArn, targetId)
	if err != nil {
		return err
	}
	if result.AlreadyEnabled {
		s.printf("Control %s is already enabled.\n", controlArn)
		return nil
	}

	key := controlKey(controlArn, targetId)
	if err := s.Ledger.Record(ctx, domain.ResourceTypeEnabledControl, key, domain.EnabledControlState{
		ControlArn:       controlArn,
		TargetIdentifier: targetId,
	}); err != nil {
		return err
	}
	if err := s.ControlTower.WaitForControlOperation(ctx, result.OperationIdentifier); err != nil {
		return err
	}
	s.printf("Control %s enabled.\n", controlArn)

	s.printf("Disabling control %s.\n", controlArn)
	opId, err := s.ControlTower.DisableControl(ctx, controlArn, targetId)
	if err != nil {
		return err
	}
	if err := s.ControlTower.WaitForControlOperation(ctx, opId); err != nil {
		return err
	}
	s.printf("Control %s disabled.\n", controlArn)
	return s.Ledger.Forget(ctx, domain.ResourceTypeEnabledControl, key)
}

// finish offers to clean up recorded resources and closes the scenario. A
// scenario error is returned after cleanup.
func (s *ControlTowerScenario) finish(ctx context.Context, scenarioErr error) error {
	if scenarioErr != nil {
		seelog.Errorf("controltower scenario stopped: %v", scenarioErr)
		s.printf("The scenario stopped: %v\n", scenarioErr)
	}

	s.printf("%s\n", separator)
	if s.Ledger.Len() > 0 &&
		s.Questioner.AskBool("Clean up resources created by the scenario? (y/n) ", "y") {
		// an interrupted run still cleans up
		if err := s.Ledger.Cleanup(context.WithoutCancel(ctx)); err != nil {
			s.printf("Some resources could not be removed, run the cleanup command to retry.\n")
			if scenarioErr == nil {
				scenarioErr = err
			}
		} else {
			s.printf("Removed resources created by the scenario.\n")
		}
	}
	s.printf("This concludes the scenario.\n")
	s.printf("%s\n", separator)
	return scenarioErr
}

func firstDisabledControl(controls []cctypes.ControlSummary, enabledArns []string) (cctypes.ControlSummary, bool) {
	for _, c := range controls {
		if !slices.Contains(enabledArns, aws.ToString(c.Arn)) {
			return c, true
		}
	}
	return cctypes.ControlSummary{}, false
}

func controlKey(controlArn string, targetId string) string {
	return controlArn + "@" + targetId
}
