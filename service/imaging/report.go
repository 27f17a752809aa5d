package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Report aggregates the frame results of one image set verification
type Report struct {
	DatastoreId string        `json:"datastoreId"`
	ImageSetId  string        `json:"imageSetId"`
	VersionId   string        `json:"versionId,omitempty"`
	StartedAt   time.Time     `json:"startedAt"`
	Elapsed     time.Duration `json:"elapsed"`
	Total       int           `json:"total"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	Frames      []FrameResult `json:"frames"`
}

func NewReport(datastoreId string, imageSetId string, versionId string, startedAt time.Time) *Report {
	return &Report{
		DatastoreId: datastoreId,
		ImageSetId:  imageSetId,
		VersionId:   versionId,
		StartedAt:   startedAt,
		Frames:      []FrameResult{},
	}
}

func (r *Report) Add(results ...FrameResult) {
	for _, res := range results {
		r.Frames = append(r.Frames, res)
		r.Total++
		if res.Status == StatusPass {
			r.Passed++
		} else {
			r.Failed++
		}
	}
}

// Statuses lists the frame statuses in frame order
func (r *Report) Statuses() []Status {
	statuses := make([]Status, 0, len(r.Frames))
	for _, f := range r.Frames {
		statuses = append(statuses, f.Status)
	}
	return statuses
}

// Err combines the errors of all failed frames. It is nil when every frame
// passed.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, f := range r.Frames {
		if f.Status == StatusPass {
			continue
		}
		err := f.Err
		if err == nil {
			err = errors.New(f.Error)
		}
		result = multierror.Append(result, errors.Wrapf(err, "frame %s", f.Frame.ImageFrameID))
	}
	return result.ErrorOrNil()
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Image set %s (datastore %s): %d frames, %d passed, %d failed in %s\n",
		r.ImageSetId, r.DatastoreId, r.Total, r.Passed, r.Failed, r.Elapsed.Round(time.Millisecond))
	for _, f := range r.Frames {
		line := fmt.Sprintf("  %-4s %s [%s]", f.Status, f.Frame.ImageFrameID, f.Stage)
		if f.Status == StatusFail {
			line += ": " + f.Error
		} else if f.Stats != nil {
			line += fmt.Sprintf(" min=%g max=%g mean=%.2f", f.Stats.Min, f.Stats.Max, f.Stats.Mean)
		}
		if f.Warning != "" {
			line += " (warning: " + f.Warning + ")"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// WriteFile stores the report as indented JSON
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode verification report")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "could not create report directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "could not write report %s", path)
}
