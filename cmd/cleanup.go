package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/cihub/seelog"
	"github.com/hashicorp/go-multierror"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/mcastellin/aws-scenarios/state"
)

// CleanupCommand deletes every resource recorded in the ledger namespace,
// newest first, and removes the states that were cleaned up
type CleanupCommand struct {
	Env *Environment
	// Clients defaults to clients built from the environment provider
	Clients *service.Clients
	Out     io.Writer
}

func (cmd *CleanupCommand) Run(ctx context.Context) error {
	out := stdout(cmd.Out)
	clients := cmd.Clients
	if clients == nil {
		clients = service.NewClients(cmd.Env.Provider, cmd.Env.Config)
	}

	states, err := cmd.Env.State.QueryStates(ctx, &state.QueryStatesInput{})
	if err != nil {
		return err
	}
	if len(states) == 0 {
		fmt.Fprintf(out, "Nothing to clean up in namespace '%s'\n", cmd.Env.namespace())
		return nil
	}

	cleaners := service.InitCleaners()
	var result *multierror.Error
	removed := 0
	for i := len(states) - 1; i >= 0; i-- {
		s := states[i]
		if err := cleaners.CleanupState(ctx, s, clients); err != nil {
			seelog.Errorf("%s name=%s: cleanup failed: %v", s.ResourceType, s.ResourceKey, err)
			result = multierror.Append(result, err)
			continue
		}
		if err := cmd.Env.State.RemoveState(ctx, s); err != nil {
			seelog.Errorf("%s name=%s: could not remove ledger entry: %v", s.ResourceType, s.ResourceKey, err)
			result = multierror.Append(result, err)
			continue
		}
		removed++
	}

	fmt.Fprintf(out, "Cleaned up %d of %d recorded resources\n", removed, len(states))
	return result.ErrorOrNil()
}
