package state

import (
	"context"
	"sort"
	"time"

	"github.com/cihub/seelog"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// BoltStateManager stores resource states in a local bbolt file, one bucket
// per namespace. It suits runs without DynamoDB access.
type BoltStateManager struct {
	Path      string
	Namespace string
	db        *bolt.DB
}

func (m *BoltStateManager) Initialize(ctx context.Context) error {
	if m.db != nil {
		return nil
	}
	m.Namespace = namespaceOrDefault(m.Namespace)

	db, err := bolt.Open(m.Path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return errors.Wrapf(err, "could not open state file %s", m.Path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(m.Namespace))
		return err
	})
	if err != nil {
		db.Close()
		return errors.Wrapf(err, "could not create namespace %s in %s", m.Namespace, m.Path)
	}
	seelog.Debugf("state name=%s: using state file %s", m.Namespace, m.Path)
	m.db = db
	return nil
}

func (m *BoltStateManager) Save(ctx context.Context, resourceType string, resourceKey string, state []byte) error {
	if m.db == nil {
		return errNotInitialized
	}
	stateObj := ResourceState{
		Namespace:    m.Namespace,
		Key:          formatStateKey(m.Namespace, resourceType, resourceKey),
		ResourceKey:  resourceKey,
		ResourceType: resourceType,
		CreatedTime:  time.Now().UnixNano(),
		State:        state,
	}
	data, err := json.Marshal(stateObj)
	if err != nil {
		return err
	}

	return m.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(m.Namespace))
		if b.Get([]byte(stateObj.Key)) != nil {
			return errors.Wrapf(ErrStateExists, "key %s", stateObj.Key)
		}
		return b.Put([]byte(stateObj.Key), data)
	})
}

func (m *BoltStateManager) GetState(ctx context.Context, resourceType string, resourceKey string) (*ResourceState, error) {
	if m.db == nil {
		return nil, errNotInitialized
	}
	key := formatStateKey(m.Namespace, resourceType, resourceKey)

	var out ResourceState
	err := m.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(m.Namespace)).Get([]byte(key))
		if data == nil {
			return errors.Wrapf(ErrStateNotFound, "key %s", key)
		}
		return json.Unmarshal(data, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *BoltStateManager) QueryStates(ctx context.Context, params *QueryStatesInput) ([]ResourceState, error) {
	if m.db == nil {
		return nil, errNotInitialized
	}
	if params == nil {
		params = &QueryStatesInput{}
	}

	states := []ResourceState{}
	err := m.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(m.Namespace)).ForEach(func(k, v []byte) error {
			var s ResourceState
			if err := json.Unmarshal(v, &s); err != nil {
				return errors.Wrapf(err, "could not decode state %s", string(k))
			}
			if params.matches(s) {
				states = append(states, s)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(states, func(i, j int) bool {
		return states[i].CreatedTime < states[j].CreatedTime
	})
	return states, nil
}

func (m *BoltStateManager) RemoveState(ctx context.Context, stateObj ResourceState) error {
	if m.db == nil {
		return errNotInitialized
	}
	namespace := namespaceOrDefault(stateObj.Namespace)
	return m.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(namespace))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(stateObj.Key))
	})
}

func (m *BoltStateManager) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
