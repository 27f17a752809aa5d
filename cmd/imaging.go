package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mcastellin/aws-scenarios/service/imaging"
	"github.com/mcastellin/aws-scenarios/service/medicalimaging"
)

// ImagingVerifyCommand runs the frame verification pipeline on a single
// image set
type ImagingVerifyCommand struct {
	Env         *Environment
	DatastoreId string
	ImageSetId  string
	VersionId   string
	Workers     int
	OutputDir   string
	ReportFile  string
	// Source defaults to the HealthImaging API
	Source imaging.ImageSource
	Out    io.Writer
}

func (cmd *ImagingVerifyCommand) Run(ctx context.Context) error {
	if cmd.DatastoreId == "" || cmd.ImageSetId == "" {
		return fmt.Errorf("datastore and image set identifiers are required")
	}

	src := cmd.Source
	if src == nil {
		src = medicalimaging.NewFromProvider(cmd.Env.Provider, cmd.Env.Config.Poll)
	}
	workers := cmd.Workers
	if workers <= 0 {
		workers = cmd.Env.Config.Workers.Frames
	}

	verifier := imaging.NewVerifier(src, workers, cmd.OutputDir)
	report, err := verifier.VerifyImageSet(ctx, cmd.DatastoreId, cmd.ImageSetId, cmd.VersionId)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout(cmd.Out), report.String())
	if cmd.ReportFile != "" {
		if err := report.WriteFile(cmd.ReportFile); err != nil {
			return err
		}
	}
	return report.Err()
}
