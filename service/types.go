package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/config"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/mcastellin/aws-scenarios/service/bucket"
	"github.com/mcastellin/aws-scenarios/service/controltower"
	"github.com/mcastellin/aws-scenarios/service/medicalimaging"
	"github.com/mcastellin/aws-scenarios/service/stacks"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Clients groups the service wrappers used by cleanup functions
type Clients struct {
	Stacks         *stacks.Stacks
	ControlTower   *controltower.ControlTower
	MedicalImaging *medicalimaging.MedicalImaging
	Bucket         *bucket.Bucket
}

func NewClients(provider awsapis.AWSProvider, cfg *config.Config) *Clients {
	return &Clients{
		Stacks:         stacks.NewFromProvider(provider, cfg.Poll.Timeout),
		ControlTower:   controltower.NewFromProvider(provider, cfg.Poll),
		MedicalImaging: medicalimaging.NewFromProvider(provider, cfg.Poll),
		Bucket:         bucket.NewFromProvider(provider, cfg.Workers.Copy),
	}
}

// Cleaner tears down one type of recorded resource
type Cleaner struct {
	// Description names the resource type in listings
	Description string
	Describe    func(payload []byte) (string, error)
	Cleanup     func(ctx context.Context, payload []byte, clients *Clients) error
}

// Cleaners maps ledger resource types to their cleaner
type Cleaners struct {
	cleaners map[string]Cleaner
}

// Initialize the cleaners of every resource type scenarios record
func InitCleaners() *Cleaners {
	return &Cleaners{
		cleaners: map[string]Cleaner{

			// Register cleaners for new resource types in this structure

			domain.ResourceTypeCloudFormationStack: {
				Description: "CloudFormation stack",
				Describe: describeAs(func(s domain.StackState) string {
					return s.StackName
				}),
				Cleanup: cleanupAs(func(ctx context.Context, s domain.StackState, c *Clients) error {
					return c.Stacks.Destroy(ctx, s.StackName)
				}),
			},
			domain.ResourceTypeLandingZone: {
				Description: "Control Tower landing zone",
				Describe: describeAs(func(s domain.LandingZoneState) string {
					return s.Arn
				}),
				Cleanup: cleanupAs(func(ctx context.Context, s domain.LandingZoneState, c *Clients) error {
					opId, err := c.ControlTower.DeleteLandingZone(ctx, s.Arn)
					if err != nil {
						return err
					}
					return c.ControlTower.WaitForLandingZoneOperation(ctx, opId)
				}),
			},
			domain.ResourceTypeEnabledBaseline: {
				Description: "Control Tower enabled baseline",
				Describe: describeAs(func(s domain.EnabledBaselineState) string {
					return fmt.Sprintf("%s on %s", s.BaselineArn, s.TargetIdentifier)
				}),
				Cleanup: cleanupAs(func(ctx context.Context, s domain.EnabledBaselineState, c *Clients) error {
					opId, err := c.ControlTower.DisableBaseline(ctx, s.Arn)
					if err != nil {
						return err
					}
					return c.ControlTower.WaitForBaselineOperation(ctx, opId)
				}),
			},
			domain.ResourceTypeEnabledControl: {
				Description: "Control Tower enabled control",
				Describe: describeAs(func(s domain.EnabledControlState) string {
					return fmt.Sprintf("%s on %s", s.ControlArn, s.TargetIdentifier)
				}),
				Cleanup: cleanupAs(func(ctx context.Context, s domain.EnabledControlState, c *Clients) error {
					opId, err := c.ControlTower.DisableControl(ctx, s.ControlArn, s.TargetIdentifier)
					if err != nil {
						return err
					}
					return c.ControlTower.WaitForControlOperation(ctx, opId)
				}),
			},
			domain.ResourceTypeImageSet: {
				Description: "HealthImaging image sets",
				Describe: describeAs(func(s domain.ImageSetState) string {
					return fmt.Sprintf("%d image sets of import job %s in %s", len(s.ImageSetIds), s.ImportJobId, s.DatastoreId)
				}),
				Cleanup: cleanupAs(func(ctx context.Context, s domain.ImageSetState, c *Clients) error {
					for _, id := range s.ImageSetIds {
						if err := c.MedicalImaging.DeleteImageSet(ctx, s.DatastoreId, id); err != nil {
							return err
						}
					}
					return nil
				}),
			},
			domain.ResourceTypeCopiedObjects: {
				Description: "S3 copied objects",
				Describe: describeAs(func(s domain.CopiedObjectsState) string {
					return awsutils.S3Location{Bucket: s.Bucket, Prefix: s.Prefix}.String()
				}),
				Cleanup: cleanupAs(func(ctx context.Context, s domain.CopiedObjectsState, c *Clients) error {
					_, err := c.Bucket.EmptyPrefix(ctx, awsutils.S3Location{Bucket: s.Bucket, Prefix: s.Prefix})
					return err
				}),
			},
		},
	}
}

func describeAs[T any](fn func(T) string) func([]byte) (string, error) {
	return func(payload []byte) (string, error) {
		var s T
		if err := json.Unmarshal(payload, &s); err != nil {
			return "", errors.Wrap(err, "could not decode resource state")
		}
		return fn(s), nil
	}
}

func cleanupAs[T any](fn func(context.Context, T, *Clients) error) func(context.Context, []byte, *Clients) error {
	return func(ctx context.Context, payload []byte, clients *Clients) error {
		var s T
		if err := json.Unmarshal(payload, &s); err != nil {
			return errors.Wrap(err, "could not decode resource state")
		}
		return fn(ctx, s, clients)
	}
}

func (obj *Cleaners) lookup(s state.ResourceState) (Cleaner, error) {
	cleaner, ok := obj.cleaners[s.ResourceType]
	if !ok {
		return Cleaner{}, fmt.Errorf("unknown resource of type %s found in state with key %s. Object will be ignored",
			s.ResourceType,
			s.Key,
		)
	}
	return cleaner, nil
}

// ResourceTypes lists the registered resource types
func (obj *Cleaners) ResourceTypes() []string {
	keys := maps.Keys(obj.cleaners)
	slices.Sort(keys)
	return keys
}

// DescribeState returns a one line description of a ledger entry
func (obj *Cleaners) DescribeState(s state.ResourceState) (string, error) {
	cleaner, err := obj.lookup(s)
	if err != nil {
		return "", err
	}
	description, err := cleaner.Describe(s.State)
	if err != nil {
		return "", errors.Wrapf(err, "state %s", s.Key)
	}
	return strings.Join([]string{cleaner.Description, description}, ": "), nil
}

// CleanupState tears down the resource recorded in a ledger entry
func (obj *Cleaners) CleanupState(ctx context.Context, s state.ResourceState, clients *Clients) error {
	cleaner, err := obj.lookup(s)
	if err != nil {
		return err
	}
	return cleaner.Cleanup(ctx, s.State, clients)
}

// Record marshals payload and saves it in the ledger
func Record(ctx context.Context, mgr state.StateManager, resourceType string, resourceKey string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "could not encode %s state", resourceType)
	}
	return mgr.Save(ctx, resourceType, resourceKey, data)
}
