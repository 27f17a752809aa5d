package imaging

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PixelStats summarises the rescaled sample values of a decoded frame.
// StoredMin and StoredMax are the samples before the modality rescale.
type PixelStats struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Mean      float64 `json:"mean"`
	StoredMin float64 `json:"storedMin"`
	StoredMax float64 `json:"storedMax"`
}

// ComputeStats applies the modality rescale to every sample of the frame.
// It returns nil for an empty frame.
func ComputeStats(frame *DecodedFrame, slope float64, intercept float64) *PixelStats {
	stored := make([]float64, 0, frame.Width*frame.Height*frame.Channels)
	for _, plane := range frame.planes {
		for _, v := range plane {
			stored = append(stored, float64(v))
		}
	}
	if len(stored) == 0 {
		return nil
	}
	values := make([]float64, len(stored))
	copy(values, stored)
	floats.Scale(slope, values)
	floats.AddConst(intercept, values)

	return &PixelStats{
		Min:       floats.Min(values),
		Max:       floats.Max(values),
		Mean:      stat.Mean(values, nil),
		StoredMin: floats.Min(stored),
		StoredMax: floats.Max(stored),
	}
}

// rangeWarning compares the stored sample range with the values recorded in
// the metadata, which describe samples before the modality rescale. Metadata
// ranges are informational so a difference is only a warning.
func rangeWarning(stats *PixelStats, frame FrameDescriptor) string {
	if stats == nil {
		return ""
	}
	if frame.MinPixelValue != nil && *frame.MinPixelValue != stats.StoredMin {
		return fmt.Sprintf("decoded minimum %g differs from metadata minimum %g", stats.StoredMin, *frame.MinPixelValue)
	}
	if frame.MaxPixelValue != nil && *frame.MaxPixelValue != stats.StoredMax {
		return fmt.Sprintf("decoded maximum %g differs from metadata maximum %g", stats.StoredMax, *frame.MaxPixelValue)
	}
	return ""
}
