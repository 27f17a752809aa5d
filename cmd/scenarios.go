package cmd

import (
	"context"
	"io"

	"github.com/mcastellin/aws-scenarios/demotools"
	"github.com/mcastellin/aws-scenarios/scenarios"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/mcastellin/aws-scenarios/service/organizations"
)

type ControlTowerCommand struct {
	Env        *Environment
	Questioner demotools.IQuestioner
	// AccountParameters is a `key=value;key=value` list of account stack
	// parameters that are not prompted for
	AccountParameters string
	Out               io.Writer
}

func (cmd *ControlTowerCommand) Run(ctx context.Context) error {
	accountParams, err := awsutils.TokenizeParameters(cmd.AccountParameters, scenarios.AccountParameterKeys())
	if err != nil {
		return err
	}

	cfg := cmd.Env.Config
	clients := service.NewClients(cmd.Env.Provider, cfg)

	scenario := &scenarios.ControlTowerScenario{
		Organizations:     organizations.NewFromProvider(cmd.Env.Provider, cfg.Poll),
		ControlTower:      clients.ControlTower,
		Stacks:            clients.Stacks,
		Sts:               cmd.Env.Provider.NewStsApi(),
		Ledger:            scenarios.NewLedger(cmd.Env.State, clients),
		Questioner:        questionerOrDefault(cmd.Questioner),
		Config:            cfg.ControlTower,
		Region:            cmd.Env.region(),
		AccountParameters: accountParams,
		Out:               stdout(cmd.Out),
	}
	return scenario.Run(ctx)
}

type ImagingWorkflowCommand struct {
	Env        *Environment
	Questioner demotools.IQuestioner
	Out        io.Writer
}

func (cmd *ImagingWorkflowCommand) Run(ctx context.Context) error {
	cfg := cmd.Env.Config
	clients := service.NewClients(cmd.Env.Provider, cfg)

	scenario := &scenarios.ImagingScenario{
		Stacks:         clients.Stacks,
		MedicalImaging: clients.MedicalImaging,
		Bucket:         clients.Bucket,
		Sts:            cmd.Env.Provider.NewStsApi(),
		Ledger:         scenarios.NewLedger(cmd.Env.State, clients),
		Questioner:     questionerOrDefault(cmd.Questioner),
		Config:         cfg.Imaging,
		FrameWorkers:   cfg.Workers.Frames,
		Out:            stdout(cmd.Out),
	}
	return scenario.Run(ctx)
}

func questionerOrDefault(q demotools.IQuestioner) demotools.IQuestioner {
	if q == nil {
		return demotools.NewQuestioner()
	}
	return q
}
