package imaging

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMetadata = `{
  "SchemaVersion": "1.1",
  "DatastoreID": "ds-1",
  "ImageSetID": "is-1",
  "Study": {
    "Series": {
      "1.2.2": {
        "Instances": {
          "1.2.2.1": {
            "DICOM": {"RescaleSlope": "2\\3", "RescaleIntercept": -1024, "BitsStored": 12, "Rows": 4, "Columns": 4},
            "StoredTransferSyntaxUID": "1.2.840.10008.1.2.4.202",
            "ImageFrames": [
              {"ID": "frame-c", "MinPixelValue": 0, "MaxPixelValue": 4095, "FrameSizeInBytes": 32,
               "PixelDataChecksumFromBaseToFullResolution": [{"Width": 2, "Height": 2, "Checksum": 11}, {"Width": 4, "Height": 4, "Checksum": 22}]}
            ]
          }
        }
      },
      "1.2.1": {
        "Instances": {
          "1.2.1.2": {
            "DICOM": {"RescaleSlope": null},
            "ImageFrames": [{"ID": "frame-b"}]
          },
          "1.2.1.1": {
            "DICOM": {},
            "ImageFrames": [
              {"ID": "frame-a1", "PixelDataChecksumFromBaseToFullResolution": [{"Width": 8, "Height": 8, "Checksum": 7}]},
              {"ID": "frame-a2", "PixelDataChecksumFromBaseToFullResolution": [{"Width": 8, "Height": 8, "Checksum": 8}]}
            ]
          }
        }
      }
    }
  }
}`

func gzipBytes(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.Nil(t, err)
	require.Nil(t, gz.Close())
	return buf.Bytes()
}

type fakeSource struct {
	metadata []byte
	frames   map[string][]byte
	err      error
}

func (s *fakeSource) GetImageSetMetadata(ctx context.Context, datastoreId string, imageSetId string,
	versionId string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(bytes.NewReader(s.metadata)), nil
}

func (s *fakeSource) GetImageFrame(ctx context.Context, datastoreId string, imageSetId string,
	imageFrameId string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(bytes.NewReader(s.frames[imageFrameId])), nil
}

func TestParseMetadataPlainJson(t *testing.T) {
	meta, err := ParseMetadata(strings.NewReader(sampleMetadata))

	require.Nil(t, err)
	assert.Equal(t, "is-1", meta.ImageSetID)
	assert.Len(t, meta.Study.Series, 2)
	instance := meta.Study.Series["1.2.2"].Instances["1.2.2.1"]
	assert.Equal(t, 2.0, instance.DICOM.RescaleSlope.Or(1))
	assert.Equal(t, -1024.0, instance.DICOM.RescaleIntercept.Or(0))
	assert.Equal(t, 12, instance.DICOM.BitsStored)
}

func TestParseMetadataGzip(t *testing.T) {
	meta, err := ParseMetadata(bytes.NewReader(gzipBytes(t, []byte(sampleMetadata))))

	require.Nil(t, err)
	assert.Equal(t, "ds-1", meta.DatastoreID)
}

func TestParseMetadataInvalid(t *testing.T) {
	_, err := ParseMetadata(strings.NewReader("{"))

	assert.NotNil(t, err)
}

func TestDecimalValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		isNil    bool
	}{
		{`{"v": 1.5}`, 1.5, false},
		{`{"v": "0.25"}`, 0.25, false},
		{`{"v": " -3 \\ 4"}`, -3, false},
		{`{"v": null}`, 0, true},
		{`{}`, 0, true},
	}

	for _, test := range tests {
		var doc struct {
			V DecimalValue `json:"v"`
		}
		require.Nil(t, json.Unmarshal([]byte(test.input), &doc), test.input)
		if test.isNil {
			assert.Equal(t, 42.0, doc.V.Or(42), test.input)
		} else {
			assert.Equal(t, test.expected, doc.V.Or(42), test.input)
		}
	}
}

func TestDecimalValueInvalid(t *testing.T) {
	var doc struct {
		V DecimalValue `json:"v"`
	}

	err := json.Unmarshal([]byte(`{"v": "abc"}`), &doc)

	assert.NotNil(t, err)
}

func TestFetchMetadataWritesBlob(t *testing.T) {
	blob := gzipBytes(t, []byte(sampleMetadata))
	dest := filepath.Join(t.TempDir(), "meta", "is-1.json.gz")

	err := FetchMetadata(context.TODO(), &fakeSource{metadata: blob}, "ds-1", "is-1", "", dest)
	require.Nil(t, err)

	written, err := os.ReadFile(dest)
	require.Nil(t, err)
	assert.Equal(t, blob, written)

	meta, err := LoadMetadata(dest)
	require.Nil(t, err)
	assert.Equal(t, "is-1", meta.ImageSetID)
}

type closeErrorFile struct {
	bytes.Buffer
}

func (f *closeErrorFile) Close() error {
	return errors.New("input/output error")
}

func TestFetchMetadataReportsCloseError(t *testing.T) {
	written := &closeErrorFile{}
	defaultCreate := createFile
	createFile = func(name string) (io.WriteCloser, error) { return written, nil }
	t.Cleanup(func() { createFile = defaultCreate })
	blob := gzipBytes(t, []byte(sampleMetadata))
	dest := filepath.Join(t.TempDir(), "is-1.json.gz")

	err := FetchMetadata(context.TODO(), &fakeSource{metadata: blob}, "ds-1", "is-1", "", dest)

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "could not close metadata file")
	assert.Contains(t, err.Error(), "input/output error")
	assert.Equal(t, blob, written.Bytes())
}

func TestLoadMetadataMissingFile(t *testing.T) {
	_, err := LoadMetadata(filepath.Join(t.TempDir(), "missing.json"))

	assert.NotNil(t, err)
}

func timeZero() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}
