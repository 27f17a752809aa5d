package imaging

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cihub/seelog"
	"github.com/pkg/errors"
)

const frameExtension = ".jph"

// FramePath is where a downloaded frame payload is stored
func FramePath(outputDir string, imageFrameId string) string {
	return filepath.Join(outputDir, imageFrameId+frameExtension)
}

// DownloadFrame fetches the payload of one frame. When outputDir is not
// empty the payload is also written to disk.
func DownloadFrame(ctx context.Context, src ImageSource, datastoreId string,
	frame FrameDescriptor, outputDir string) ([]byte, error) {

	body, err := src.GetImageFrame(ctx, datastoreId, frame.ImageSetID, frame.ImageFrameID)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read frame %s", frame.ImageFrameID)
	}
	if len(payload) == 0 {
		return nil, errors.Errorf("frame %s has an empty payload", frame.ImageFrameID)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, errors.Wrapf(err, "could not create output directory %s", outputDir)
		}
		path := FramePath(outputDir, frame.ImageFrameID)
		if err := os.WriteFile(path, payload, 0644); err != nil {
			return nil, errors.Wrapf(err, "could not write frame %s", path)
		}
		seelog.Debugf("%s name=%s: frame %s saved to %s", resourceType, frame.ImageSetID, frame.ImageFrameID, path)
	}
	return payload, nil
}
