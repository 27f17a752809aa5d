package state

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/mcastellin/aws-scenarios/awsapis"
	"github.com/mcastellin/aws-scenarios/config"
	"github.com/pkg/errors"
)

const defaultNamespace = "default"

var (
	// ErrStateNotFound is returned by GetState for unknown keys
	ErrStateNotFound = errors.New("resource state not found")
	// ErrStateExists is returned by Save when the key is already recorded
	ErrStateExists = errors.New("resource state already exists")
)

var errNotInitialized = errors.New("state manager has not been initialized, call Initialize() first")

// NewStateManager returns the ledger backend selected in cfg
func NewStateManager(provider awsapis.AWSProvider, cfg config.StateConfig) (StateManager, error) {
	switch cfg.Backend {
	case "", config.StateBackendDynamodb:
		return &DynamodbStateManager{
			Api:       provider.NewDynamodbApi(),
			TableName: cfg.TableName,
			Namespace: cfg.Namespace,
		}, nil
	case config.StateBackendBolt:
		return &BoltStateManager{Path: cfg.File, Namespace: cfg.Namespace}, nil
	}
	return nil, fmt.Errorf("unknown state backend %q", cfg.Backend)
}

// StateManager records the resources created by scenarios so they can be
// cleaned up by a later run
type StateManager interface {

	// Initialize prepares the storage. It must be called once before any
	// other method.
	Initialize(ctx context.Context) error

	// Save records a new state. Existing keys are never overwritten.
	Save(ctx context.Context, resourceType string, resourceKey string, state []byte) error

	// GetState reads a single state object. Unknown keys return ErrStateNotFound.
	GetState(ctx context.Context, resourceType string, resourceKey string) (*ResourceState, error)

	// QueryStates finds states by resourceType or resourceKey, oldest first
	QueryStates(ctx context.Context, params *QueryStatesInput) ([]ResourceState, error)

	// RemoveState deletes a single state object
	RemoveState(ctx context.Context, stateObj ResourceState) error

	Close() error
}

// QueryStatesInput filters a QueryStates operation. Empty fields match
// everything.
type QueryStatesInput struct {
	ResourceType string
	ResourceKey  string
}

func (q QueryStatesInput) matches(s ResourceState) bool {
	return (q.ResourceType == "" || q.ResourceType == s.ResourceType) &&
		(q.ResourceKey == "" || q.ResourceKey == s.ResourceKey)
}

// appends filter conditions to expression builder for building state query
func (q QueryStatesInput) filterExpression(builder expression.Builder) expression.Builder {
	exprList := []expression.ConditionBuilder{}
	if q.ResourceKey != "" {
		exprList = append(exprList, expression.Name("resourceKey").Equal(expression.Value(q.ResourceKey)))
	}
	if q.ResourceType != "" {
		exprList = append(exprList, expression.Name("resourceType").Equal(expression.Value(q.ResourceType)))
	}

	if len(exprList) > 1 {
		builder = builder.WithFilter(expression.And(exprList[0], exprList[1]))
	} else if len(exprList) > 0 {
		builder = builder.WithFilter(exprList[0])
	}
	return builder
}

// ResourceState is one ledger entry
type ResourceState struct {
	Namespace    string `dynamodbav:"namespace" json:"namespace"`
	Key          string `dynamodbav:"key" json:"key"`
	ResourceKey  string `dynamodbav:"resourceKey" json:"resourceKey"`
	ResourceType string `dynamodbav:"resourceType" json:"resourceType"`
	CreatedTime  int64  `dynamodbav:"createdTime" json:"createdTime"`
	State        []byte `dynamodbav:"state" json:"state"`
}

func formatStateKey(namespace string, resourceType string, resourceKey string) string {
	return fmt.Sprintf("/%s/%s/%s", namespace, resourceType, resourceKey)
}

func namespaceOrDefault(namespace string) string {
	if namespace == "" {
		return defaultNamespace
	}
	return namespace
}
