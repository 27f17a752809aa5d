package imaging

import (
	"fmt"
	"hash/crc32"

	"github.com/pkg/errors"
)

var ErrChecksumMismatch = errors.New("checksum mismatch")

// ChecksumMismatchError carries both sides of a failed comparison
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrChecksumMismatch, e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// PixelChecksum returns the CRC32 (IEEE) of the interleaved pixel buffer
func PixelChecksum(frame *DecodedFrame) uint32 {
	return crc32.ChecksumIEEE(frame.Pixels)
}

// VerifyChecksum compares the CRC32 of the decoded pixels with expected and
// returns the computed value
func VerifyChecksum(frame *DecodedFrame, expected uint32) (uint32, error) {
	actual := PixelChecksum(frame)
	if actual != expected {
		return actual, &ChecksumMismatchError{Expected: expected, Actual: actual}
	}
	return actual, nil
}
