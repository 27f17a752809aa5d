package domain

// Resource types recorded in the resource ledger
const (
	ResourceTypeCloudFormationStack = "cloudformation-stack"
	ResourceTypeLandingZone         = "controltower-landing-zone"
	ResourceTypeEnabledBaseline     = "controltower-enabled-baseline"
	ResourceTypeEnabledControl      = "controltower-enabled-control"
	ResourceTypeImageSet            = "medicalimaging-image-set"
	ResourceTypeCopiedObjects       = "s3-copied-objects"
)

// StackState is the ledger payload for a CloudFormation stack. It is
// recorded as soon as creation starts.
type StackState struct {
	StackName string `json:"stackName"`
	StackId   string `json:"stackId,omitempty"`
}

// LandingZoneState is the ledger payload for a landing zone created by a scenario
type LandingZoneState struct {
	Arn string `json:"arn"`
}

// EnabledBaselineState is the ledger payload for a baseline enabled on a target
type EnabledBaselineState struct {
	Arn              string `json:"arn"`
	BaselineArn      string `json:"baselineArn"`
	TargetIdentifier string `json:"targetIdentifier"`
}

// EnabledControlState is the ledger payload for a control enabled on a target
type EnabledControlState struct {
	ControlArn       string `json:"controlArn"`
	TargetIdentifier string `json:"targetIdentifier"`
}

// ImageSetState is the ledger payload for image sets created by an import job
type ImageSetState struct {
	DatastoreId string   `json:"datastoreId"`
	ImportJobId string   `json:"importJobId"`
	ImageSetIds []string `json:"imageSetIds"`
}

// CopiedObjectsState is the ledger payload for a bucket prefix that
// receives copied objects. Cleanup empties the whole prefix.
type CopiedObjectsState struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix"`
}

// EnableResult is returned by enable operations on baselines and controls.
// When the target was already enabled OperationIdentifier is empty and
// AlreadyEnabled is true.
type EnableResult struct {
	Arn                 string `json:"arn,omitempty"`
	OperationIdentifier string `json:"operationIdentifier,omitempty"`
	AlreadyEnabled      bool   `json:"alreadyEnabled"`
}

// OperationResult identifies a resource and the long-running operation
// started on it
type OperationResult struct {
	Arn                 string `json:"arn,omitempty"`
	OperationIdentifier string `json:"operationIdentifier,omitempty"`
}
