package imaging

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FrameDescriptor identifies one frame of an image set and carries what is
// needed to verify it
type FrameDescriptor struct {
	ImageSetID        string   `json:"imageSetId"`
	ImageFrameID      string   `json:"imageFrameId"`
	SeriesUID         string   `json:"seriesUid"`
	SOPInstanceUID    string   `json:"sopInstanceUid"`
	TransferSyntaxUID string   `json:"transferSyntaxUid,omitempty"`
	RescaleSlope      float64  `json:"rescaleSlope"`
	RescaleIntercept  float64  `json:"rescaleIntercept"`
	MinPixelValue     *float64 `json:"minPixelValue,omitempty"`
	MaxPixelValue     *float64 `json:"maxPixelValue,omitempty"`
	ExpectedChecksum  uint32   `json:"expectedChecksum"`
	HasChecksum       bool     `json:"hasChecksum"`
}

// SelectChecksum returns the entry with the largest width. When several
// entries share that width the first one wins.
func SelectChecksum(entries []ChecksumEntry) (ChecksumEntry, bool) {
	if len(entries) == 0 {
		return ChecksumEntry{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Width > best.Width {
			best = e
		}
	}
	return best, true
}

// ExtractFrames flattens the metadata into frame descriptors. Series and
// instances are visited in lexicographic UID order, frames in document order.
func ExtractFrames(meta *ImageSetMetadata) []FrameDescriptor {
	frames := []FrameDescriptor{}

	seriesUIDs := maps.Keys(meta.Study.Series)
	slices.Sort(seriesUIDs)
	for _, seriesUID := range seriesUIDs {
		series := meta.Study.Series[seriesUID]

		instanceUIDs := maps.Keys(series.Instances)
		slices.Sort(instanceUIDs)
		for _, sopUID := range instanceUIDs {
			instance := series.Instances[sopUID]
			for _, frame := range instance.ImageFrames {
				desc := FrameDescriptor{
					ImageSetID:        meta.ImageSetID,
					ImageFrameID:      frame.ID,
					SeriesUID:         seriesUID,
					SOPInstanceUID:    sopUID,
					TransferSyntaxUID: instance.StoredTransferSyntaxUID,
					RescaleSlope:      instance.DICOM.RescaleSlope.Or(1),
					RescaleIntercept:  instance.DICOM.RescaleIntercept.Or(0),
					MinPixelValue:     frame.MinPixelValue,
					MaxPixelValue:     frame.MaxPixelValue,
				}
				if entry, ok := SelectChecksum(frame.PixelDataChecksumFromBaseToFullResolution); ok {
					desc.ExpectedChecksum = entry.Checksum
					desc.HasChecksum = true
				}
				frames = append(frames, desc)
			}
		}
	}
	return frames
}
