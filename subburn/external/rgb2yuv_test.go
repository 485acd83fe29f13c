package external

import "testing"

func TestRGBToYUVBT709(t *testing.T) {
	cases := []struct {
		name          string
		rgb           uint32
		y, u, v       uint8
		tolerance     uint8
	}{
		{"white", 0xffffff, 255, 128, 128, 1},
		{"black", 0x000000, 0, 128, 128, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			y, u, v := RGBToYUVBT709(c.rgb)
			if absDiff(y, c.y) > c.tolerance || absDiff(u, c.u) > c.tolerance || absDiff(v, c.v) > c.tolerance {
				t.Errorf("RGBToYUVBT709(%06x) = (%d,%d,%d), want approx (%d,%d,%d)", c.rgb, y, u, v, c.y, c.u, c.v)
			}
		})
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
