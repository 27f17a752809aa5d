package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-dicom-codec/jpeg2000"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned for payloads or sample layouts the
// decoder cannot turn into a raster
var ErrUnsupportedFormat = errors.New("unsupported format")

var (
	jp2Signature = []byte{0x00, 0x00, 0x00, 0x0c, 'j', 'P', ' ', ' ', 0x0d, 0x0a, 0x87, 0x0a}
	socMarker    = []byte{0xff, 0x4f}
)

// Image is a decoded raster with one plane per component
type Image struct {
	Width      int
	Height     int
	Components int
	BitDepth   int
	Signed     bool
	Planes     [][]int32
}

// Codec decodes a JPEG 2000 family codestream
type Codec interface {
	Decode(codestream []byte) (*Image, error)
}

// J2KCodec decodes with the pure Go JPEG 2000 decoder
type J2KCodec struct{}

func (J2KCodec) Decode(codestream []byte) (*Image, error) {
	d := jpeg2000.NewDecoder()
	if err := d.Decode(codestream); err != nil {
		return nil, err
	}
	return &Image{
		Width:      d.Width(),
		Height:     d.Height(),
		Components: d.Components(),
		BitDepth:   d.BitDepth(),
		Signed:     d.IsSigned(),
		Planes:     d.GetImageData(),
	}, nil
}

// DecodedFrame is a frame raster with components interleaved per pixel and
// each sample stored little-endian in LaneSize bytes
type DecodedFrame struct {
	Width    int
	Height   int
	Channels int
	BitDepth int
	Signed   bool
	LaneSize int
	Pixels   []byte
	planes   [][]int32
}

// LaneSize returns the bytes used to store one sample of the given bit depth
func LaneSize(bitDepth int) (int, error) {
	switch {
	case bitDepth >= 1 && bitDepth <= 8:
		return 1, nil
	case bitDepth >= 9 && bitDepth <= 16:
		return 2, nil
	case bitDepth >= 17 && bitDepth <= 32:
		return 4, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "bit depth %d", bitDepth)
}

// Codestream returns the JPEG 2000 codestream of payload. A JP2 file is
// unwrapped to the content of its jp2c box; a raw codestream is returned as is.
func Codestream(payload []byte) ([]byte, error) {
	if bytes.HasPrefix(payload, socMarker) {
		return payload, nil
	}
	if !bytes.HasPrefix(payload, jp2Signature) {
		return nil, errors.Wrap(ErrUnsupportedFormat, "payload is neither a JPEG 2000 codestream nor a JP2 file")
	}

	rest := payload
	for len(rest) >= 8 {
		boxLen := uint64(binary.BigEndian.Uint32(rest[0:4]))
		boxType := string(rest[4:8])
		header := uint64(8)
		switch boxLen {
		case 0:
			boxLen = uint64(len(rest))
		case 1:
			if len(rest) < 16 {
				return nil, errors.Wrap(ErrUnsupportedFormat, "truncated JP2 box header")
			}
			boxLen = binary.BigEndian.Uint64(rest[8:16])
			header = 16
		}
		if boxLen < header || boxLen > uint64(len(rest)) {
			return nil, errors.Wrapf(ErrUnsupportedFormat, "invalid length %d for JP2 box %q", boxLen, boxType)
		}
		if boxType == "jp2c" {
			return rest[header:boxLen], nil
		}
		rest = rest[boxLen:]
	}
	return nil, errors.Wrap(ErrUnsupportedFormat, "JP2 file has no jp2c box")
}

// Interleave converts planar samples to a little-endian interleaved buffer.
// Samples are truncated to laneSize bytes, so negative values keep their two's
// complement encoding.
func Interleave(planes [][]int32, pixels int, laneSize int) ([]byte, error) {
	if laneSize != 1 && laneSize != 2 && laneSize != 4 {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "lane size %d", laneSize)
	}
	for c, plane := range planes {
		if len(plane) != pixels {
			return nil, fmt.Errorf("component %d has %d samples, expected %d", c, len(plane), pixels)
		}
	}

	channels := len(planes)
	out := make([]byte, pixels*channels*laneSize)
	offset := 0
	for i := 0; i < pixels; i++ {
		for c := 0; c < channels; c++ {
			v := uint32(planes[c][i])
			switch laneSize {
			case 1:
				out[offset] = byte(v)
			case 2:
				binary.LittleEndian.PutUint16(out[offset:], uint16(v))
			case 4:
				binary.LittleEndian.PutUint32(out[offset:], v)
			}
			offset += laneSize
		}
	}
	return out, nil
}

// DecodeFrame decodes an image frame payload with codec
func DecodeFrame(codec Codec, payload []byte) (*DecodedFrame, error) {
	codestream, err := Codestream(payload)
	if err != nil {
		return nil, err
	}
	img, err := codec.Decode(codestream)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode frame")
	}

	laneSize, err := LaneSize(img.BitDepth)
	if err != nil {
		return nil, err
	}
	if len(img.Planes) != img.Components {
		return nil, fmt.Errorf("decoder returned %d planes for %d components", len(img.Planes), img.Components)
	}
	pixels, err := Interleave(img.Planes, img.Width*img.Height, laneSize)
	if err != nil {
		return nil, err
	}

	return &DecodedFrame{
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Components,
		BitDepth: img.BitDepth,
		Signed:   img.Signed,
		LaneSize: laneSize,
		Pixels:   pixels,
		planes:   img.Planes,
	}, nil
}
