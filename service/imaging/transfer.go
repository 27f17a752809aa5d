package imaging

import (
	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"golang.org/x/exp/slices"
)

// HealthImaging stores frames either as HTJ2K or as the original JPEG 2000
// encoding, so these are the transfer syntaxes a frame payload can carry
var supportedTransferSyntaxes = []*transfer.Syntax{
	transfer.HTJ2KLossless,
	transfer.HTJ2KLosslessRPCL,
	transfer.HTJ2K,
	transfer.JPEG2000Lossless,
	transfer.JPEG2000,
}

// SupportedTransferSyntaxUIDs lists the stored transfer syntax UIDs the
// decoder accepts
func SupportedTransferSyntaxUIDs() []string {
	uids := make([]string, 0, len(supportedTransferSyntaxes))
	for _, ts := range supportedTransferSyntaxes {
		uids = append(uids, ts.UID().UID())
	}
	return uids
}

// IsSupportedTransferSyntax reports whether frames stored with uid can be
// decoded. An empty uid is accepted since older metadata omits it.
func IsSupportedTransferSyntax(uid string) bool {
	return uid == "" || slices.Contains(SupportedTransferSyntaxUIDs(), uid)
}
