package frame

import "github.com/ausocean/utils/sliceutils"

// Format tags the wire encoding of an incoming subtitle event stream, the
// way the dispatcher (§4.F) groups init/postInit/work/close behaviour.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatVOBSUB
	FormatPGS
	FormatDVB
	FormatSSA
	FormatSRT
	FormatTX3G
	FormatCC608
	FormatUTF8
)

// bitmapFormats lists the formats handled by the bitmap track (§4.D):
// pre-rasterised overlay bitmaps arriving with each event.
var bitmapFormats = []uint8{uint8(FormatVOBSUB), uint8(FormatPGS), uint8(FormatDVB)}

// textFormats lists the formats handled by the text track (§4.E): events
// carry styled or plain text that must be rendered via the external
// styled-text-renderer collaborator.
var textFormats = []uint8{uint8(FormatSSA), uint8(FormatSRT), uint8(FormatTX3G), uint8(FormatCC608), uint8(FormatUTF8)}

// needsHeaderFormats lists the text formats whose events carry no script
// header of their own and therefore need one synthesized at postInit
// time (§4.E, §4.G font constants).
var needsHeaderFormats = []uint8{uint8(FormatSRT), uint8(FormatTX3G), uint8(FormatCC608), uint8(FormatUTF8)}

// IsBitmap reports whether f is handled by the bitmap track.
func IsBitmap(f Format) bool { return sliceutils.ContainsUint8(bitmapFormats, uint8(f)) }

// IsText reports whether f is handled by the text track.
func IsText(f Format) bool { return sliceutils.ContainsUint8(textFormats, uint8(f)) }

// NeedsSynthesizedHeader reports whether f requires a synthesized script
// header (default font/size) rather than carrying its own.
func NeedsSynthesizedHeader(f Format) bool { return sliceutils.ContainsUint8(needsHeaderFormats, uint8(f)) }

func (f Format) String() string {
	switch f {
	case FormatVOBSUB:
		return "vobsub"
	case FormatPGS:
		return "pgs"
	case FormatDVB:
		return "dvb"
	case FormatSSA:
		return "ssa"
	case FormatSRT:
		return "srt"
	case FormatTX3G:
		return "tx3g"
	case FormatCC608:
		return "cc608"
	case FormatUTF8:
		return "utf8"
	default:
		return "unknown"
	}
}
