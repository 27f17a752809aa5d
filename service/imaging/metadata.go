package imaging

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cihub/seelog"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ImageSource reads image set metadata and frames from HealthImaging
type ImageSource interface {
	GetImageSetMetadata(ctx context.Context, datastoreId string, imageSetId string, versionId string) (io.ReadCloser, error)
	GetImageFrame(ctx context.Context, datastoreId string, imageSetId string, imageFrameId string) (io.ReadCloser, error)
}

// ImageSetMetadata is the part of the image set metadata document the
// pipeline reads
type ImageSetMetadata struct {
	SchemaVersion string `json:"SchemaVersion"`
	DatastoreID   string `json:"DatastoreID"`
	ImageSetID    string `json:"ImageSetID"`
	Study         Study  `json:"Study"`
}

type Study struct {
	Series map[string]Series `json:"Series"`
}

type Series struct {
	Instances map[string]Instance `json:"Instances"`
}

type Instance struct {
	DICOM                   InstanceAttributes `json:"DICOM"`
	StoredTransferSyntaxUID string             `json:"StoredTransferSyntaxUID"`
	ImageFrames             []ImageFrame       `json:"ImageFrames"`
}

type InstanceAttributes struct {
	RescaleSlope     DecimalValue `json:"RescaleSlope"`
	RescaleIntercept DecimalValue `json:"RescaleIntercept"`
	BitsStored       int           `json:"BitsStored"`
	Rows             int           `json:"Rows"`
	Columns          int           `json:"Columns"`
}

type ImageFrame struct {
	ID                                        string          `json:"ID"`
	MinPixelValue                             *float64        `json:"MinPixelValue"`
	MaxPixelValue                             *float64        `json:"MaxPixelValue"`
	FrameSizeInBytes                          int64           `json:"FrameSizeInBytes"`
	PixelDataChecksumFromBaseToFullResolution []ChecksumEntry `json:"PixelDataChecksumFromBaseToFullResolution"`
}

// ChecksumEntry is the CRC32 of the decoded frame at one resolution tier
type ChecksumEntry struct {
	Width    int    `json:"Width"`
	Height   int    `json:"Height"`
	Checksum uint32 `json:"Checksum"`
}

// DecimalValue holds a DICOM decimal string attribute. The metadata encodes
// it either as a JSON number or as a string; multi-valued strings keep the
// first value.
type DecimalValue struct {
	Value float64
	Valid bool
}

func (d *DecimalValue) UnmarshalJSON(data []byte) error {
	*d = DecimalValue{}
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(strings.Split(s, `\`)[0])
		if raw == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid decimal value %s", string(data))
	}
	*d = DecimalValue{Value: v, Valid: true}
	return nil
}

func (d DecimalValue) Or(fallback float64) float64 {
	if !d.Valid {
		return fallback
	}
	return d.Value
}

// createFile opens metadata files for writing
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// FetchMetadata streams the metadata blob of an image set to dest. The blob
// is stored as returned by the service, gzip-compressed.
func FetchMetadata(ctx context.Context, src ImageSource, datastoreId string, imageSetId string,
	versionId string, dest string) error {

	blob, err := src.GetImageSetMetadata(ctx, datastoreId, imageSetId, versionId)
	if err != nil {
		return err
	}
	defer blob.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, "could not create metadata directory for %s", dest)
	}
	f, err := createFile(dest)
	if err != nil {
		return errors.Wrapf(err, "could not create metadata file %s", dest)
	}

	n, err := io.Copy(f, blob)
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "could not write metadata file %s", dest)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "could not close metadata file %s", dest)
	}
	seelog.Debugf("%s name=%s: wrote %d bytes of metadata to %s", resourceType, imageSetId, n, dest)
	return nil
}

// LoadMetadata parses a metadata file. Both the gzip-compressed blob and
// plain JSON are accepted.
func LoadMetadata(path string) (*ImageSetMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open metadata file %s", path)
	}
	defer f.Close()

	return ParseMetadata(f)
}

func ParseMetadata(r io.Reader) (*ImageSetMetadata, error) {
	br := bufio.NewReader(r)
	var reader io.Reader = br
	if magic, err := br.Peek(2); err == nil && bytes.Equal(magic, gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "could not decompress metadata")
		}
		defer gz.Close()
		reader = gz
	}

	var meta ImageSetMetadata
	if err := json.NewDecoder(reader).Decode(&meta); err != nil {
		return nil, errors.Wrap(err, "could not parse metadata document")
	}
	return &meta, nil
}
