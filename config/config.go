// Package config loads the scenario configuration from a YAML file.
// Every value has a default so the file only needs to list overrides.
package config

import (
	"os"
	"time"

	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	StateBackendDynamodb = "dynamodb"
	StateBackendBolt     = "bolt"
)

// IdcChoice is a folder of the IDC open data bucket offered for import
type IdcChoice struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
	Images int    `yaml:"images"`
}

type StateConfig struct {
	Backend   string `yaml:"backend"`
	Namespace string `yaml:"namespace"`
	TableName string `yaml:"tableName"`
	File      string `yaml:"file"`
}

type WorkersConfig struct {
	Copy   int `yaml:"copy"`
	Frames int `yaml:"frames"`
}

type ControlTowerConfig struct {
	LandingZoneVersion string   `yaml:"landingZoneVersion"`
	BaselineName       string   `yaml:"baselineName"`
	BaselineVersion    string   `yaml:"baselineVersion"`
	SandboxOuName      string   `yaml:"sandboxOuName"`
	SecurityOuName     string   `yaml:"securityOuName"`
	GovernedRegions    []string `yaml:"governedRegions,omitempty"`
	StackName          string   `yaml:"stackName"`
	TemplateFile       string   `yaml:"templateFile"`
	LogRetentionDays   int      `yaml:"logRetentionDays"`
	// retention of the access logging bucket
	AccessLogRetentionDays int `yaml:"accessLogRetentionDays"`
}

type ImagingConfig struct {
	OutputDir    string      `yaml:"outputDir"`
	StackName    string      `yaml:"stackName"`
	TemplateFile string      `yaml:"templateFile"`
	SourceBucket string      `yaml:"sourceBucket"`
	Choices      []IdcChoice `yaml:"choices"`
}

// Config is the full scenario configuration
type Config struct {
	Region       string              `yaml:"region"`
	State        StateConfig         `yaml:"state"`
	Poll         awsutils.PollPolicy `yaml:"poll"`
	Workers      WorkersConfig       `yaml:"workers"`
	ControlTower ControlTowerConfig  `yaml:"controlTower"`
	Imaging      ImagingConfig       `yaml:"imaging"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		State: StateConfig{
			Backend:   StateBackendDynamodb,
			Namespace: "default",
			File:      "aws-scenarios.db",
		},
		Poll: awsutils.DefaultPollPolicy(),
		Workers: WorkersConfig{
			Copy:   8,
			Frames: 4,
		},
		ControlTower: ControlTowerConfig{
			LandingZoneVersion:     "3.3",
			BaselineName:           "AWSControlTowerBaseline",
			BaselineVersion:        "4.0",
			SandboxOuName:          "Sandbox",
			SecurityOuName:         "Security",
			StackName:              "controltower-log-security-accounts",
			TemplateFile:           "resources/controltower_accounts.yaml",
			LogRetentionDays:       365,
			AccessLogRetentionDays: 3650,
		},
		Imaging: ImagingConfig{
			OutputDir:    "output",
			StackName:    "healthimaging-workflow",
			TemplateFile: "resources/healthimaging_workflow.yaml",
			SourceBucket: "idc-open-data",
			Choices: []IdcChoice{
				{Name: "CT of chest", Prefix: "00029d25-fb18-4d42-aaa5-a0897d1ac8f7", Images: 2},
				{Name: "CT of pelvis", Prefix: "00025d30-ef8f-4135-a35a-d83eff264fc1", Images: 57},
				{Name: "MRI of head", Prefix: "0002d261-8a5d-4e63-8e2e-0cbfac87b904", Images: 192},
				{Name: "MRI of breast", Prefix: "0002dd07-0b7f-4a68-a655-44461ca34096", Images: 92},
			},
		},
	}
}

// Load reads the configuration at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "error parsing config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "error writing config file %s", path)
}

// Validate checks values are usable
func (c *Config) Validate() error {
	if !slices.Contains([]string{StateBackendDynamodb, StateBackendBolt}, c.State.Backend) {
		return errors.Errorf("unknown state backend %q", c.State.Backend)
	}
	if c.State.Backend == StateBackendBolt && c.State.File == "" {
		return errors.New("state file is required with the bolt backend")
	}
	if c.Workers.Copy <= 0 || c.Workers.Frames <= 0 {
		return errors.Errorf("worker counts must be positive, found copy=%d frames=%d",
			c.Workers.Copy, c.Workers.Frames)
	}
	if err := validatePoll(c.Poll); err != nil {
		return err
	}
	if len(c.Imaging.Choices) == 0 {
		return errors.New("imaging needs at least one choice")
	}
	for _, choice := range c.Imaging.Choices {
		if choice.Prefix == "" {
			return errors.Errorf("imaging choice %q has an empty prefix", choice.Name)
		}
		if _, err := awsutils.ParseS3Uri(awsutils.S3Uri(c.Imaging.SourceBucket, choice.Prefix)); err != nil {
			return err
		}
	}
	return nil
}

func validatePoll(p awsutils.PollPolicy) error {
	switch {
	case p.InitialInterval <= 0:
		return errors.New("poll initialInterval must be positive")
	case p.MaxInterval < p.InitialInterval:
		return errors.New("poll maxInterval must not be lower than initialInterval")
	case p.Multiplier < 1:
		return errors.New("poll multiplier must be at least 1")
	case p.Jitter < 0 || p.Jitter > 1:
		return errors.New("poll jitter must be between 0 and 1")
	case p.Timeout < 0 || p.Timeout > 24*time.Hour:
		return errors.New("poll timeout must be between 0 and 24h")
	}
	return nil
}
