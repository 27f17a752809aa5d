package imaging

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cihub/seelog"
	"github.com/mcastellin/aws-scenarios/domain"
	"github.com/mcastellin/aws-scenarios/service/coordinator"
	"github.com/pkg/errors"
)

const resourceType = domain.ResourceTypeImageSet

// ErrNoChecksum is reported for frames whose metadata carries no checksum
var ErrNoChecksum = errors.New("frame metadata has no pixel data checksum")

// Stage is the last pipeline stage a frame completed
type Stage string

const (
	StagePending  Stage = "pending"
	StageFetched  Stage = "fetched"
	StageDecoded  Stage = "decoded"
	StageVerified Stage = "verified"
)

type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// FrameResult is the outcome of verifying one frame
type FrameResult struct {
	Frame            FrameDescriptor `json:"frame"`
	Stage            Stage           `json:"stage"`
	Status           Status          `json:"status"`
	Err              error           `json:"-"`
	Error            string          `json:"error,omitempty"`
	ExpectedChecksum uint32          `json:"expectedChecksum"`
	ActualChecksum   uint32          `json:"actualChecksum,omitempty"`
	Width            int             `json:"width,omitempty"`
	Height           int             `json:"height,omitempty"`
	BitDepth         int             `json:"bitDepth,omitempty"`
	Stats            *PixelStats     `json:"stats,omitempty"`
	Warning          string          `json:"warning,omitempty"`
	Elapsed          time.Duration   `json:"elapsed"`
}

func (r *FrameResult) fail(err error) FrameResult {
	r.Status = StatusFail
	r.Err = err
	r.Error = err.Error()
	return *r
}

// Verifier downloads, decodes and checks the frames of an image set
type Verifier struct {
	Source ImageSource
	Codec  Codec
	// Workers bounds the number of frames processed at the same time
	Workers int
	// OutputDir receives the metadata blob and frame payloads. Nothing is
	// written when empty.
	OutputDir string
}

func NewVerifier(src ImageSource, workers int, outputDir string) *Verifier {
	return &Verifier{Source: src, Codec: J2KCodec{}, Workers: workers, OutputDir: outputDir}
}

// VerifyImageSet fetches the metadata of an image set and verifies every frame
// it lists. The returned error covers metadata retrieval only; frame failures
// are recorded in the report.
func (v *Verifier) VerifyImageSet(ctx context.Context, datastoreId string, imageSetId string,
	versionId string) (*Report, error) {

	started := time.Now()
	meta, err := v.fetchMetadata(ctx, datastoreId, imageSetId, versionId)
	if err != nil {
		return nil, err
	}

	frames := ExtractFrames(meta)
	seelog.Infof("%s name=%s: verifying %d frames", resourceType, imageSetId, len(frames))

	report := NewReport(datastoreId, imageSetId, versionId, started)
	report.Add(v.VerifyFrames(ctx, datastoreId, frames)...)
	report.Elapsed = time.Since(started)

	seelog.Infof("%s name=%s: %d passed, %d failed", resourceType, imageSetId, report.Passed, report.Failed)
	return report, nil
}

func (v *Verifier) fetchMetadata(ctx context.Context, datastoreId string, imageSetId string,
	versionId string) (*ImageSetMetadata, error) {

	if v.OutputDir != "" {
		dest := filepath.Join(v.OutputDir, imageSetId+".json.gz")
		if err := FetchMetadata(ctx, v.Source, datastoreId, imageSetId, versionId, dest); err != nil {
			return nil, err
		}
		return LoadMetadata(dest)
	}

	blob, err := v.Source.GetImageSetMetadata(ctx, datastoreId, imageSetId, versionId)
	if err != nil {
		return nil, err
	}
	defer blob.Close()
	return ParseMetadata(blob)
}

// VerifyFrames runs every frame through the pipeline on a bounded pool and
// returns one result per frame in input order. Frames not started before ctx
// is cancelled fail at the pending stage.
func (v *Verifier) VerifyFrames(ctx context.Context, datastoreId string, frames []FrameDescriptor) []FrameResult {
	pool := coordinator.NewPool("frames", v.Workers)
	outcomes := coordinator.Run(ctx, pool, frames, func(ctx context.Context, frame FrameDescriptor) (FrameResult, error) {
		res := v.verifyFrame(ctx, datastoreId, frame)
		return res, res.Err
	})

	results := make([]FrameResult, len(frames))
	for i, o := range outcomes {
		if o.Value.Status == "" {
			pending := FrameResult{Frame: frames[i], Stage: StagePending, ExpectedChecksum: frames[i].ExpectedChecksum}
			results[i] = pending.fail(o.Err)
			continue
		}
		results[i] = o.Value
	}
	return results
}

func (v *Verifier) verifyFrame(ctx context.Context, datastoreId string, frame FrameDescriptor) FrameResult {
	started := time.Now()
	res := v.runStages(ctx, datastoreId, frame)
	res.Elapsed = time.Since(started)
	return res
}

func (v *Verifier) runStages(ctx context.Context, datastoreId string, frame FrameDescriptor) FrameResult {
	res := &FrameResult{Frame: frame, Stage: StagePending, ExpectedChecksum: frame.ExpectedChecksum}

	if !IsSupportedTransferSyntax(frame.TransferSyntaxUID) {
		return res.fail(errors.Wrapf(ErrUnsupportedFormat, "transfer syntax %s", frame.TransferSyntaxUID))
	}

	payload, err := DownloadFrame(ctx, v.Source, datastoreId, frame, v.OutputDir)
	if err != nil {
		return res.fail(err)
	}
	res.Stage = StageFetched

	decoded, err := DecodeFrame(v.Codec, payload)
	if err != nil {
		seelog.Warnf("%s name=%s: frame %s: %v", resourceType, frame.ImageSetID, frame.ImageFrameID, err)
		return res.fail(err)
	}
	res.Stage = StageDecoded
	res.Width = decoded.Width
	res.Height = decoded.Height
	res.BitDepth = decoded.BitDepth
	res.Stats = ComputeStats(decoded, frame.RescaleSlope, frame.RescaleIntercept)
	if warning := rangeWarning(res.Stats, frame); warning != "" {
		res.Warning = warning
		seelog.Warnf("%s name=%s: frame %s: %s", resourceType, frame.ImageSetID, frame.ImageFrameID, warning)
	}

	res.ActualChecksum = PixelChecksum(decoded)
	if !frame.HasChecksum {
		return res.fail(ErrNoChecksum)
	}
	if _, err := VerifyChecksum(decoded, frame.ExpectedChecksum); err != nil {
		seelog.Warnf("%s name=%s: frame %s: %v", resourceType, frame.ImageSetID, frame.ImageFrameID, err)
		return res.fail(err)
	}

	res.Stage = StageVerified
	res.Status = StatusPass
	seelog.Debugf("%s name=%s: frame %s verified", resourceType, frame.ImageSetID, frame.ImageFrameID)
	return *res
}
