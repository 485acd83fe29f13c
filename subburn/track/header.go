package track

import (
	"fmt"

	"github.com/ausocean/av/subburn/frame"
)

// SynthesizedHeader builds a minimal ASS-style script header for text
// formats that don't carry their own (frame.NeedsSynthesizedHeader):
// a monospace face sized to 0.08 * (0.8 * frameHeight) for CC608 (its
// fixed-pitch character-cell convention), a general sans face sized to
// 0.066 * frameHeight for everything else.
func SynthesizedHeader(f frame.Format, frameHeight int) []byte {
	family := "sans-serif"
	size := 0.066 * float64(frameHeight)
	if f == frame.FormatCC608 {
		family = "monospace"
		size = 0.08 * (0.8 * float64(frameHeight))
	}

	return []byte(fmt.Sprintf(
		"[Script Info]\nPlayResY: %d\n\n[V4+ Styles]\nFormat: Name, Fontname, Fontsize\nStyle: Default,%s,%d\n\n[Events]\n",
		frameHeight, family, int(size+0.5),
	))
}
