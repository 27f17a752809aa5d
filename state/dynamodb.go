package state

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/awsapis"
	pkgerrors "github.com/pkg/errors"
)

// The current schema version of the state table
const StateTableSchemaVersion string = "2024-05-21"

// The default table name to store resource states
const FallbackStateTableName string = "aws-scenarios-state-table"

// StateTableEnvVar overrides the configured table name
const StateTableEnvVar = "AWS_SCENARIOS_STATE_TABLE"

const (
	namespaceIndexName = "LSINamespace"
	systemNamespace    = "_system"
	schemaVersionKey   = "/schema/version"
	tableWaitTimeout   = 5 * time.Minute
)

// DynamodbStateManager stores resource states in a DynamoDB table with a
// local secondary index ordering each namespace by creation time
type DynamodbStateManager struct {
	Api           awsapis.DynamodbApi
	TableName     string
	Namespace     string
	isInitialized bool
}

// key returns the primary key of a state item
func (m *DynamodbStateManager) key(stateObj ResourceState) (map[string]types.AttributeValue, error) {
	namespace, err := attributevalue.Marshal(stateObj.Namespace)
	if err != nil {
		return nil, err
	}
	key, err := attributevalue.Marshal(stateObj.Key)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{"namespace": namespace, "key": key}, nil
}

func (m *DynamodbStateManager) Initialize(ctx context.Context) error {
	if tableName := os.Getenv(StateTableEnvVar); tableName != "" {
		m.TableName = tableName
	} else if m.TableName == "" {
		seelog.Infof("%s variable is not set. Using default %s", StateTableEnvVar, FallbackStateTableName)
		m.TableName = FallbackStateTableName
	}
	m.Namespace = namespaceOrDefault(m.Namespace)

	exists, err := m.tableExists(ctx)
	if err != nil {
		return pkgerrors.Wrapf(err, "could not describe state table %s", m.TableName)
	}

	if !exists {
		seelog.Infof("State table with name %s not found. Creating...", m.TableName)
		if err := m.createTable(ctx); err != nil {
			return pkgerrors.Wrap(err, "could not create state table in Dynamodb")
		}
		if err := m.writeSchemaVersion(ctx); err != nil {
			return pkgerrors.Wrap(err, "could not write state table version in Dynamodb")
		}
	}

	if err := m.checkSchemaVersion(ctx); err != nil {
		return pkgerrors.Wrap(err, "state table version check failed")
	}

	m.isInitialized = true
	return nil
}

func (m *DynamodbStateManager) Save(ctx context.Context, resourceType string, resourceKey string, state []byte) error {
	if err := m.checkInitialized(); err != nil {
		return err
	}
	stateObj := ResourceState{
		Namespace:    m.Namespace,
		Key:          formatStateKey(m.Namespace, resourceType, resourceKey),
		ResourceKey:  resourceKey,
		ResourceType: resourceType,
		CreatedTime:  time.Now().UnixNano(),
		State:        state,
	}

	exists, err := m.itemExists(ctx, stateObj)
	if err != nil {
		return err
	}
	if exists {
		return pkgerrors.Wrapf(ErrStateExists, "key %s", stateObj.Key)
	}

	item, err := attributevalue.MarshalMap(stateObj)
	if err != nil {
		return err
	}
	_, err = m.Api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(m.TableName),
		Item:      item,
	})
	if err != nil {
		return pkgerrors.Wrapf(err, "could not save state %s", stateObj.Key)
	}
	seelog.Debugf("state name=%s: saved", stateObj.Key)
	return nil
}

func (m *DynamodbStateManager) GetState(ctx context.Context, resourceType string, resourceKey string) (*ResourceState, error) {
	if err := m.checkInitialized(); err != nil {
		return nil, err
	}

	stateObj := ResourceState{
		Namespace: m.Namespace,
		Key:       formatStateKey(m.Namespace, resourceType, resourceKey),
	}
	item, err := m.getItem(ctx, stateObj)
	if err != nil {
		return nil, err
	}
	if len(item) == 0 {
		return nil, pkgerrors.Wrapf(ErrStateNotFound, "key %s", stateObj.Key)
	}

	var out ResourceState
	if err := attributevalue.UnmarshalMap(item, &out); err != nil {
		return nil, pkgerrors.Wrap(err, "could not unmarshal resource state")
	}
	return &out, nil
}

func (m *DynamodbStateManager) QueryStates(ctx context.Context, params *QueryStatesInput) ([]ResourceState, error) {
	if err := m.checkInitialized(); err != nil {
		return nil, err
	}
	if params == nil {
		params = &QueryStatesInput{}
	}

	keyExpr := expression.Key("namespace").Equal(expression.Value(m.Namespace))
	builder := expression.NewBuilder().WithKeyCondition(keyExpr)
	builder = params.filterExpression(builder)

	expr, err := builder.Build()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "could not build query expression to fetch resource states")
	}

	resourceStates := []ResourceState{}
	paginator := m.Api.NewQueryPaginator(&dynamodb.QueryInput{
		TableName:                 aws.String(m.TableName),
		IndexName:                 aws.String(namespaceIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "could not query resource states")
		}

		var states []ResourceState
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &states); err != nil {
			return nil, pkgerrors.Wrap(err, "could not unmarshal resource states")
		}
		resourceStates = append(resourceStates, states...)
	}
	return resourceStates, nil
}

func (m *DynamodbStateManager) RemoveState(ctx context.Context, stateObj ResourceState) error {
	if err := m.checkInitialized(); err != nil {
		return err
	}
	key, err := m.key(stateObj)
	if err != nil {
		return err
	}
	_, err = m.Api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(m.TableName),
		Key:       key,
	})
	if err != nil {
		return pkgerrors.Wrapf(err, "could not remove state %s", stateObj.Key)
	}
	return nil
}

func (m *DynamodbStateManager) Close() error {
	return nil
}

func (m *DynamodbStateManager) checkInitialized() error {
	if !m.isInitialized {
		return errNotInitialized
	}
	return nil
}

func (m *DynamodbStateManager) getItem(ctx context.Context, stateObj ResourceState) (map[string]types.AttributeValue, error) {
	key, err := m.key(stateObj)
	if err != nil {
		return nil, err
	}
	response, err := m.Api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(m.TableName),
		Key:       key,
	})
	if err != nil {
		return nil, err
	}
	return response.Item, nil
}

func (m *DynamodbStateManager) itemExists(ctx context.Context, stateObj ResourceState) (bool, error) {
	item, err := m.getItem(ctx, stateObj)
	if err != nil {
		return false, err
	}
	return len(item) > 0, nil
}

// Check if the state table already exists for the current AWS Account/Region
func (m *DynamodbStateManager) tableExists(ctx context.Context) (bool, error) {
	_, err := m.Api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(m.TableName),
	})
	if err != nil {
		var t *types.ResourceNotFoundException
		if errors.As(err, &t) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Creates the resource state table and waits until it exists
func (m *DynamodbStateManager) createTable(ctx context.Context) error {
	input := &dynamodb.CreateTableInput{
		TableName: aws.String(m.TableName),
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String("namespace"),
				KeyType:       types.KeyTypeHash,
			}, {
				AttributeName: aws.String("key"),
				KeyType:       types.KeyTypeRange,
			},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String("namespace"),
				AttributeType: types.ScalarAttributeTypeS,
			}, {
				AttributeName: aws.String("key"),
				AttributeType: types.ScalarAttributeTypeS,
			}, {
				AttributeName: aws.String("createdTime"),
				AttributeType: types.ScalarAttributeTypeN,
			},
		},
		LocalSecondaryIndexes: []types.LocalSecondaryIndex{
			{
				IndexName: aws.String(namespaceIndexName),
				KeySchema: []types.KeySchemaElement{
					{
						AttributeName: aws.String("namespace"),
						KeyType:       types.KeyTypeHash,
					}, {
						AttributeName: aws.String("createdTime"),
						KeyType:       types.KeyTypeRange,
					},
				},
				Projection: &types.Projection{
					ProjectionType: types.ProjectionTypeAll,
				},
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	}

	if _, err := m.Api.CreateTable(ctx, input); err != nil {
		return err
	}

	seelog.Infof("Wait for table exists: %s", m.TableName)
	waiter := m.Api.NewTableExistsWaiter()
	err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(m.TableName)}, tableWaitTimeout)
	if err != nil {
		return pkgerrors.Wrap(err, "wait for table exists failed, it is not safe to continue")
	}
	return nil
}

// Writes the current schema version into the state table
func (m *DynamodbStateManager) writeSchemaVersion(ctx context.Context) error {
	versionObj := ResourceState{
		Namespace:    systemNamespace,
		Key:          schemaVersionKey,
		ResourceKey:  StateTableSchemaVersion,
		ResourceType: "nil",
	}

	exists, err := m.itemExists(ctx, versionObj)
	if err != nil {
		return err
	}
	if exists {
		return pkgerrors.Errorf("schema version already exists for table %s", m.TableName)
	}

	item, err := attributevalue.MarshalMap(versionObj)
	if err != nil {
		return err
	}
	_, err = m.Api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(m.TableName),
		Item:      item,
	})
	return err
}

// Checks the state table version is the same as the required version
func (m *DynamodbStateManager) checkSchemaVersion(ctx context.Context) error {
	versionObj := ResourceState{
		Namespace: systemNamespace,
		Key:       schemaVersionKey,
	}

	item, err := m.getItem(ctx, versionObj)
	if err != nil {
		return err
	}
	if len(item) == 0 {
		return pkgerrors.Errorf("could not find table schema version for [%s] state table."+
			" To fix this error, use a different state table or manually migrate to a newer schema version.",
			m.TableName)
	}

	if err := attributevalue.UnmarshalMap(item, &versionObj); err != nil {
		return err
	}
	if versionObj.ResourceKey != StateTableSchemaVersion {
		return pkgerrors.Errorf("schema version for state table [%s] does not match current version %s."+
			" To fix this error, use a different state table or manually migrate to a newer schema version.",
			m.TableName, StateTableSchemaVersion)
	}
	return nil
}
