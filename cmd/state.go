package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cihub/seelog"
	"github.com/goccy/go-json"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// LedgerEntry is one recorded resource as printed by the state read command
type LedgerEntry struct {
	Namespace    string `json:"namespace"`
	ResourceType string `json:"type"`
	ResourceKey  string `json:"key"`
	State        string `json:"state"`
}

// SaveEntry records a resource by hand, for example a stack created outside
// a scenario that the cleanup command should remove. The payload must decode
// as the ledger payload of the resource type.
type SaveEntry struct {
	Env           *Environment
	ResourceType  string
	ResourceKey   string
	ReadFromStdin bool
	Payload       string
	// Stdin defaults to os.Stdin
	Stdin io.Reader
}

func (cmd *SaveEntry) Run(ctx context.Context) error {
	cleaners := service.InitCleaners()
	if !slices.Contains(cleaners.ResourceTypes(), cmd.ResourceType) {
		return errors.Errorf("unknown resource type %q, expected one of %s",
			cmd.ResourceType, strings.Join(cleaners.ResourceTypes(), ", "))
	}

	var payload []byte
	if cmd.ReadFromStdin {
		in := cmd.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return errors.Wrap(err, "error reading ledger payload from stdin")
		}
		payload = data
	} else {
		payload = []byte(cmd.Payload)
	}

	if len(payload) == 0 {
		return errors.Errorf("no payload was provided for %s %s", cmd.ResourceType, cmd.ResourceKey)
	}
	if !json.Valid(payload) {
		return errors.Errorf("payload for %s %s is not valid JSON", cmd.ResourceType, cmd.ResourceKey)
	}
	entry := state.ResourceState{ResourceType: cmd.ResourceType, ResourceKey: cmd.ResourceKey, State: payload}
	if _, err := cleaners.DescribeState(entry); err != nil {
		return errors.Wrapf(err, "payload does not match resource type %s", cmd.ResourceType)
	}

	if err := cmd.Env.State.Save(ctx, cmd.ResourceType, cmd.ResourceKey, payload); err != nil {
		return err
	}
	seelog.Infof("%s name=%s: recorded in namespace %s", cmd.ResourceType, cmd.ResourceKey, cmd.Env.namespace())
	return nil
}

// ReadEntries prints the ledger entries of the namespace as a JSON array,
// optionally filtered by resource type and key
type ReadEntries struct {
	Env          *Environment
	ResourceType string
	ResourceKey  string
	Out          io.Writer
}

func (cmd *ReadEntries) Run(ctx context.Context) error {
	recorded, err := cmd.Env.State.QueryStates(ctx, &state.QueryStatesInput{
		ResourceType: cmd.ResourceType,
		ResourceKey:  cmd.ResourceKey,
	})
	if err != nil {
		return err
	}

	entries := make([]LedgerEntry, 0, len(recorded))
	for _, s := range recorded {
		entries = append(entries, LedgerEntry{
			Namespace:    s.Namespace,
			ResourceType: s.ResourceType,
			ResourceKey:  s.ResourceKey,
			State:        string(s.State),
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "error encoding ledger entries")
	}
	fmt.Fprintln(stdout(cmd.Out), string(data))
	return nil
}

// DeleteEntry forgets a recorded resource without touching the resource
// itself
type DeleteEntry struct {
	Env          *Environment
	ResourceType string
	ResourceKey  string
}

func (cmd *DeleteEntry) Run(ctx context.Context) error {
	entry, err := cmd.Env.State.GetState(ctx, cmd.ResourceType, cmd.ResourceKey)
	if err != nil {
		return err
	}

	if err := cmd.Env.State.RemoveState(ctx, *entry); err != nil {
		seelog.Errorf("%s name=%s: could not remove ledger entry", cmd.ResourceType, cmd.ResourceKey)
		return err
	}
	seelog.Infof("%s name=%s: removed from the ledger, the resource itself was left in place",
		cmd.ResourceType, cmd.ResourceKey)
	return nil
}
