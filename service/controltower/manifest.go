package controltower

import (
	"github.com/aws/aws-sdk-go-v2/service/controltower/document"
	"github.com/pkg/errors"
)

// LandingZoneManifest is the landing zone configuration document. Field tags
// are read by the smithy document encoder.
type LandingZoneManifest struct {
	GovernedRegions       []string              `document:"governedRegions" json:"governedRegions"`
	OrganizationStructure OrganizationStructure `document:"organizationStructure" json:"organizationStructure"`
	CentralizedLogging    CentralizedLogging    `document:"centralizedLogging" json:"centralizedLogging"`
	SecurityRoles         SecurityRoles         `document:"securityRoles" json:"securityRoles"`
	AccessManagement      AccessManagement      `document:"accessManagement" json:"accessManagement"`
}

type OrganizationStructure struct {
	Security OrganizationalUnitRef `document:"security" json:"security"`
	Sandbox  OrganizationalUnitRef `document:"sandbox" json:"sandbox"`
}

type OrganizationalUnitRef struct {
	Name string `document:"name" json:"name"`
}

type CentralizedLogging struct {
	AccountId      string            `document:"accountId" json:"accountId"`
	Configurations LoggingBucketsCfg `document:"configurations" json:"configurations"`
	Enabled        bool              `document:"enabled" json:"enabled"`
}

type LoggingBucketsCfg struct {
	LoggingBucket       RetentionCfg `document:"loggingBucket" json:"loggingBucket"`
	AccessLoggingBucket RetentionCfg `document:"accessLoggingBucket" json:"accessLoggingBucket"`
}

type RetentionCfg struct {
	RetentionDays int `document:"retentionDays" json:"retentionDays"`
}

type SecurityRoles struct {
	AccountId string `document:"accountId" json:"accountId"`
}

type AccessManagement struct {
	Enabled bool `document:"enabled" json:"enabled"`
}

// ManifestInput collects the values that vary between landing zones
type ManifestInput struct {
	GovernedRegions        []string
	SecurityOuName         string
	SandboxOuName          string
	LogAccountId           string
	SecurityAccountId      string
	LogRetentionDays       int
	AccessLogRetentionDays int
}

// NewManifest builds a landing zone manifest with centralized logging
// enabled and IAM Identity Center access management disabled
func NewManifest(in ManifestInput) (LandingZoneManifest, error) {
	if len(in.GovernedRegions) == 0 {
		return LandingZoneManifest{}, errors.New("landing zone manifest needs at least one governed region")
	}
	if in.LogAccountId == "" || in.SecurityAccountId == "" {
		return LandingZoneManifest{}, errors.New("landing zone manifest needs both log and security account IDs")
	}

	return LandingZoneManifest{
		GovernedRegions: in.GovernedRegions,
		OrganizationStructure: OrganizationStructure{
			Security: OrganizationalUnitRef{Name: in.SecurityOuName},
			Sandbox:  OrganizationalUnitRef{Name: in.SandboxOuName},
		},
		CentralizedLogging: CentralizedLogging{
			AccountId: in.LogAccountId,
			Configurations: LoggingBucketsCfg{
				LoggingBucket:       RetentionCfg{RetentionDays: in.LogRetentionDays},
				AccessLoggingBucket: RetentionCfg{RetentionDays: in.AccessLogRetentionDays},
			},
			Enabled: true,
		},
		SecurityRoles:    SecurityRoles{AccountId: in.SecurityAccountId},
		AccessManagement: AccessManagement{Enabled: false},
	}, nil
}

// Document wraps the manifest for the Control Tower API
func (m LandingZoneManifest) Document() document.Interface {
	return document.NewLazyDocument(m)
}

// ManifestFromDocument decodes a manifest returned by GetLandingZone
func ManifestFromDocument(doc document.Interface) (LandingZoneManifest, error) {
	var m LandingZoneManifest
	if doc == nil {
		return m, errors.New("landing zone has no manifest")
	}
	if err := doc.UnmarshalSmithyDocument(&m); err != nil {
		return m, errors.Wrap(err, "could not decode landing zone manifest")
	}
	return m, nil
}
