// Package cmd implements the operations behind the aws-scenarios command
// line. Every command runs against an Environment that holds the loaded
// configuration, the AWS provider and the resource ledger.
package cmd

import (
	"context"
	"io"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/config"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/pkg/errors"
)

type Environment struct {
	Config   *config.Config
	Provider awsapis.AWSProvider
	State    state.StateManager
}

// NewEnvironment loads the configuration file, the AWS configuration and
// initializes the state ledger. A non-empty namespace overrides the one in
// the configuration file.
func NewEnvironment(ctx context.Context, configFile string, namespace string) (*Environment, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if namespace != "" {
		cfg.State.Namespace = namespace
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}
	provider := awsapis.NewProviderFromConfig(&awsCfg)

	stateManager, err := state.NewStateManager(provider, cfg.State)
	if err != nil {
		seelog.Error("Failed to create state manager")
		return nil, err
	}
	if err := stateManager.Initialize(ctx); err != nil {
		return nil, err
	}

	return &Environment{Config: cfg, Provider: provider, State: stateManager}, nil
}

func (e *Environment) Close() error {
	return e.State.Close()
}

func (e *Environment) namespace() string {
	if e.Config.State.Namespace == "" {
		return "default"
	}
	return e.Config.State.Namespace
}

func (e *Environment) region() string {
	if e.Config.Region != "" {
		return e.Config.Region
	}
	return e.Provider.Region()
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
