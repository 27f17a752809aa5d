package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service"
	"github.com/mcastellin/aws-scenarios/service/awsutils"
	"github.com/mcastellin/aws-scenarios/service/bucket"
	"github.com/mcastellin/aws-scenarios/state"
	"github.com/pkg/errors"
)

// S3CopyCommand copies every object under a source prefix to a destination
// prefix. Copied objects are recorded so the cleanup command can remove them.
type S3CopyCommand struct {
	Env     *Environment
	Source  string
	Dest    string
	Workers int
	// Bucket defaults to the S3 API with the configured worker count
	Bucket *bucket.Bucket
	Out    io.Writer
}

func (cmd *S3CopyCommand) Run(ctx context.Context) error {
	src, err := awsutils.ParseS3Uri(cmd.Source)
	if err != nil {
		return err
	}
	dst, err := awsutils.ParseS3Uri(cmd.Dest)
	if err != nil {
		return err
	}

	b := cmd.Bucket
	if b == nil {
		b = bucket.NewFromProvider(cmd.Env.Provider, cmd.Env.Config.Workers.Copy)
	}
	if cmd.Workers > 0 {
		b.Workers = cmd.Workers
	}

	if err := recordCopyDestination(ctx, cmd.Env, dst); err != nil {
		return err
	}
	res, err := b.CopyPrefix(ctx, src, dst)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout(cmd.Out), "Copied %d objects from %s to %s\n", len(res.Keys), src, dst)
	if res.Failed > 0 {
		fmt.Fprintf(stdout(cmd.Out), "%d objects could not be copied\n", res.Failed)
	}
	return res.Err
}

// recordCopyDestination records dst before any object is copied. A prefix
// recorded by an earlier copy is kept as is.
func recordCopyDestination(ctx context.Context, env *Environment, dst awsutils.S3Location) error {
	err := service.Record(ctx, env.State, domain.ResourceTypeCopiedObjects, dst.String(),
		domain.CopiedObjectsState{Bucket: dst.Bucket, Prefix: dst.Prefix})
	if errors.Is(err, state.ErrStateExists) {
		return nil
	}
	return err
}
