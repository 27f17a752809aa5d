package cmd

import (
	"context"
	"io"

	"github.com/mcastellin/aws-scenarios/scenarios"
	"github.com/mcastellin/aws-scenarios/service/organizations"
)

type OrgSetupCommand struct {
	Env           *Environment
	OuName        string
	Organizations *organizations.Organizations
	Out           io.Writer
}

func (cmd *OrgSetupCommand) Run(ctx context.Context) error {
	orgs := cmd.Organizations
	if orgs == nil {
		orgs = organizations.NewFromProvider(cmd.Env.Provider, cmd.Env.Config.Poll)
	}
	ouName := cmd.OuName
	if ouName == "" {
		ouName = cmd.Env.Config.ControlTower.SandboxOuName
	}

	_, err := scenarios.SetupOrganization(ctx, orgs, ouName, stdout(cmd.Out))
	return err
}
