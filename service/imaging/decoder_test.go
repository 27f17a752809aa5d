package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"testing"

	"github.com/cocosip/go-dicom-codec/jpeg2000"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientPlane(size int) []int32 {
	plane := make([]int32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			plane[y*size+x] = int32((x + y) % 256)
		}
	}
	return plane
}

// encodeGradient returns a lossless 8-bit codestream and the CRC32 of its
// interleaved pixels
func encodeGradient(t *testing.T, size int) ([]byte, uint32) {
	return encodePlane(t, size, gradientPlane(size))
}

func encodePlane(t *testing.T, size int, plane []int32) ([]byte, uint32) {
	params := jpeg2000.DefaultEncodeParams(size, size, 1, 8, false)
	params.NumLevels = 0

	encoded, err := jpeg2000.NewEncoder(params).EncodeComponents([][]int32{plane})
	require.Nil(t, err)

	pixels, err := Interleave([][]int32{plane}, size*size, 1)
	require.Nil(t, err)
	return encoded, crc32.ChecksumIEEE(pixels)
}

func wrapJP2(codestream []byte) []byte {
	var buf bytes.Buffer
	buf.Write(jp2Signature)
	// ftyp
	binary.Write(&buf, binary.BigEndian, uint32(20))
	buf.WriteString("ftypjp2 ")
	binary.Write(&buf, binary.BigEndian, uint32(0))
	buf.WriteString("jp2 ")
	binary.Write(&buf, binary.BigEndian, uint32(8+len(codestream)))
	buf.WriteString("jp2c")
	buf.Write(codestream)
	return buf.Bytes()
}

func TestLaneSize(t *testing.T) {
	tests := []struct {
		bitDepth int
		expected int
	}{
		{1, 1}, {8, 1}, {9, 2}, {12, 2}, {16, 2}, {17, 4}, {32, 4},
	}
	for _, test := range tests {
		lane, err := LaneSize(test.bitDepth)
		require.Nil(t, err)
		assert.Equal(t, test.expected, lane, "bit depth %d", test.bitDepth)
	}
}

func TestLaneSizeUnsupported(t *testing.T) {
	for _, bitDepth := range []int{0, -1, 33, 64} {
		_, err := LaneSize(bitDepth)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "bit depth %d", bitDepth)
	}
}

func TestInterleave(t *testing.T) {
	planes := [][]int32{{1, 2}, {-1, 300}}

	out, err := Interleave(planes, 2, 2)

	require.Nil(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0xff, 0xff, 0x02, 0x00, 0x2c, 0x01}, out)
}

func TestInterleaveFourByteLanes(t *testing.T) {
	out, err := Interleave([][]int32{{0x01020304}}, 1, 4)

	require.Nil(t, err)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, out)
}

func TestInterleaveRejectsBadInput(t *testing.T) {
	_, err := Interleave([][]int32{{1}}, 1, 3)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Interleave([][]int32{{1, 2, 3}}, 2, 1)
	assert.NotNil(t, err)
}

func TestCodestreamPassesRawCodestream(t *testing.T) {
	raw := []byte{0xff, 0x4f, 0xff, 0x51}

	out, err := Codestream(raw)

	require.Nil(t, err)
	assert.Equal(t, raw, out)
}

func TestCodestreamUnwrapsJP2(t *testing.T) {
	raw := []byte{0xff, 0x4f, 0xff, 0x51, 0x00}

	out, err := Codestream(wrapJP2(raw))

	require.Nil(t, err)
	assert.Equal(t, raw, out)
}

func TestCodestreamJP2BoxExtendsToEnd(t *testing.T) {
	raw := []byte{0xff, 0x4f, 0xff, 0x51}
	payload := append([]byte{}, jp2Signature...)
	payload = append(payload, 0, 0, 0, 0, 'j', 'p', '2', 'c')
	payload = append(payload, raw...)

	out, err := Codestream(payload)

	require.Nil(t, err)
	assert.Equal(t, raw, out)
}

func TestCodestreamRejectsUnknownPayload(t *testing.T) {
	tests := [][]byte{
		nil,
		[]byte("not an image"),
		append(append([]byte{}, jp2Signature...), 0, 0, 0, 8, 'f', 't', 'y', 'p'),
		append(append([]byte{}, jp2Signature...), 0, 0, 1, 0, 'j', 'p', '2', 'c'),
	}
	for _, payload := range tests {
		_, err := Codestream(payload)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "%x", payload)
	}
}

func TestDecodeFrameIsDeterministic(t *testing.T) {
	encoded, expected := encodeGradient(t, 16)

	first, err := DecodeFrame(J2KCodec{}, encoded)
	require.Nil(t, err)
	second, err := DecodeFrame(J2KCodec{}, encoded)
	require.Nil(t, err)

	assert.Equal(t, first.Pixels, second.Pixels)
	assert.Equal(t, 16, first.Width)
	assert.Equal(t, 16, first.Height)
	assert.Equal(t, 1, first.Channels)
	assert.Equal(t, 1, first.LaneSize)
	assert.Equal(t, expected, PixelChecksum(first))
}

func TestDecodeFrameFromJP2(t *testing.T) {
	encoded, expected := encodeGradient(t, 16)

	frame, err := DecodeFrame(J2KCodec{}, wrapJP2(encoded))

	require.Nil(t, err)
	assert.Equal(t, expected, PixelChecksum(frame))
}

type stubCodec struct {
	img *Image
	err error
}

func (c stubCodec) Decode(codestream []byte) (*Image, error) {
	return c.img, c.err
}

func TestDecodeFrameUnsupportedBitDepth(t *testing.T) {
	codec := stubCodec{img: &Image{Width: 1, Height: 1, Components: 1, BitDepth: 40, Planes: [][]int32{{1}}}}

	_, err := DecodeFrame(codec, []byte{0xff, 0x4f})

	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestDecodeFrameCodecError(t *testing.T) {
	_, err := DecodeFrame(stubCodec{err: errors.New("bad marker")}, []byte{0xff, 0x4f})

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "bad marker")
}

func TestVerifyChecksumDetectsMismatch(t *testing.T) {
	frame := &DecodedFrame{Pixels: []byte{1, 2, 3, 4}}
	good := crc32.ChecksumIEEE(frame.Pixels)

	actual, err := VerifyChecksum(frame, good)
	require.Nil(t, err)
	assert.Equal(t, good, actual)

	actual, err = VerifyChecksum(frame, good+1)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
	var mismatch *ChecksumMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, good+1, mismatch.Expected)
	assert.Equal(t, good, mismatch.Actual)
	assert.Equal(t, good, actual)
}

func TestComputeStats(t *testing.T) {
	frame := &DecodedFrame{Width: 2, Height: 2, Channels: 1, planes: [][]int32{{0, 1, 2, 5}}}

	stats := ComputeStats(frame, 2, -1)

	require.NotNil(t, stats)
	assert.Equal(t, -1.0, stats.Min)
	assert.Equal(t, 9.0, stats.Max)
	assert.Equal(t, 3.0, stats.Mean)
	assert.Equal(t, 0.0, stats.StoredMin)
	assert.Equal(t, 5.0, stats.StoredMax)
}

func TestComputeStatsEmptyFrame(t *testing.T) {
	assert.Nil(t, ComputeStats(&DecodedFrame{}, 1, 0))
}

func TestSupportedTransferSyntax(t *testing.T) {
	assert.True(t, IsSupportedTransferSyntax(""))
	assert.True(t, IsSupportedTransferSyntax("1.2.840.10008.1.2.4.201"))
	assert.True(t, IsSupportedTransferSyntax("1.2.840.10008.1.2.4.90"))
	assert.False(t, IsSupportedTransferSyntax("1.2.840.10008.1.2.1"))
}
