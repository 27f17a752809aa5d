package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/mcastellin/aws-scenarios/state"
)

type ListCommand struct {
	Env *Environment
	Out io.Writer
}

func (cmd *ListCommand) Run(ctx context.Context) error {
	out := stdout(cmd.Out)
	states, err := cmd.Env.State.QueryStates(ctx, &state.QueryStatesInput{})
	if err != nil {
		return err
	}

	ns := cmd.Env.namespace()
	if len(states) == 0 {
		fmt.Fprintf(out, "No recorded resources found for namespace '%s'\n", ns)
		return nil
	}

	fmt.Fprintf(out, "Recorded resources for namespace '%s':\n", ns)
	cleaners := service.InitCleaners()
	for _, s := range states {
		description, err := cleaners.DescribeState(s)
		if err != nil {
			seelog.Warn(err)
		} else {
			fmt.Fprintln(out, description)
		}
	}
	return nil
}
