// Package scenarios runs the interactive walkthroughs. Every resource a
// scenario creates is recorded in the state ledger before the scenario
// continues, so an interrupted run can still be cleaned up later.
package scenarios

import (
	"context"

	"github.com/cihub/seelog"
	"github.com/hashicorp/go-multierror"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/pkg/errors"
)

type ledgerEntry struct {
	resourceType string
	key          string
}

// Ledger tracks the resources created during one scenario run
type Ledger struct {
	State    state.StateManager
	Cleaners *service.Cleaners
	Clients  *service.Clients

	entries []ledgerEntry
}

func NewLedger(mgr state.StateManager, clients *service.Clients) *Ledger {
	return &Ledger{State: mgr, Cleaners: service.InitCleaners(), Clients: clients}
}

// Record saves payload in the state ledger and remembers it for Cleanup
func (l *Ledger) Record(ctx context.Context, resourceType string, key string, payload any) error {
	if err := service.Record(ctx, l.State, resourceType, key, payload); err != nil {
		return errors.Wrapf(err, "could not record %s %s", resourceType, key)
	}
	l.entries = append(l.entries, ledgerEntry{resourceType: resourceType, key: key})
	seelog.Debugf("%s name=%s: recorded in state", resourceType, key)
	return nil
}

// Forget removes a resource that the scenario already tore down
func (l *Ledger) Forget(ctx context.Context, resourceType string, key string) error {
	s, err := l.State.GetState(ctx, resourceType, key)
	if err != nil {
		return err
	}
	if err := l.State.RemoveState(ctx, *s); err != nil {
		return err
	}
	for i, e := range l.entries {
		if e.resourceType == resourceType && e.key == key {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			break
		}
	}
	return nil
}

// Len is the number of resources still recorded by this run
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Cleanup tears down the recorded resources, newest first. A resource that
// fails to clean up stays in the ledger and the others are still attempted.
func (l *Ledger) Cleanup(ctx context.Context) error {
	var result *multierror.Error
	remaining := []ledgerEntry{}

	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if err := l.cleanupEntry(ctx, e); err != nil {
			seelog.Errorf("%s name=%s: cleanup failed: %v", e.resourceType, e.key, err)
			result = multierror.Append(result, err)
			remaining = append([]ledgerEntry{e}, remaining...)
			continue
		}
		seelog.Infof("%s name=%s: cleaned up", e.resourceType, e.key)
	}

	l.entries = remaining
	return result.ErrorOrNil()
}

func (l *Ledger) cleanupEntry(ctx context.Context, e ledgerEntry) error {
	s, err := l.State.GetState(ctx, e.resourceType, e.key)
	if err != nil {
		return err
	}
	if err := l.Cleaners.CleanupState(ctx, *s, l.Clients); err != nil {
		return err
	}
	if err := l.State.RemoveState(ctx, *s); err != nil {
		return errors.Wrapf(err, "error removing state with key %s", s.Key)
	}
	return nil
}
