package frame

import "testing"

func TestOverlayFormat(t *testing.T) {
	cases := []struct {
		name string
		d    Desc
		want PixFmt
	}{
		{"420", Desc{WShift: 1, HShift: 1}, PixFmtYUVA420P},
		{"422", Desc{WShift: 1, HShift: 0}, PixFmtYUVA422P},
		{"444", Desc{WShift: 0, HShift: 0}, PixFmtYUVA444P},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := OverlayFormat(c.d); got != c.want {
				t.Errorf("OverlayFormat(%+v) = %v, want %v", c.d, got, c.want)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	d, ok := PixFmtYUV420P10.Descriptor()
	if !ok {
		t.Fatal("expected PixFmtYUV420P10 to be known")
	}
	if d.Depth != 10 || d.WShift != 1 || d.HShift != 1 || d.PlaneCount != 3 {
		t.Errorf("got %+v, want {10 1 1 3}", d)
	}

	if _, ok := PixFmtNone.Descriptor(); ok {
		t.Error("expected PixFmtNone to be unknown")
	}
}

func TestCropRectValidate(t *testing.T) {
	cases := []struct {
		name    string
		c       CropRect
		w, h    int
		wantErr bool
	}{
		{"ok", CropRect{Top: 2, Bottom: 2, Left: 2, Right: 2}, 100, 100, false},
		{"vertical overflow", CropRect{Top: 50, Bottom: 50}, 100, 100, true},
		{"horizontal overflow", CropRect{Left: 50, Right: 50}, 100, 100, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.c.Validate(c.w, c.h)
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestFormatMembership(t *testing.T) {
	if !IsBitmap(FormatVOBSUB) || !IsBitmap(FormatPGS) || !IsBitmap(FormatDVB) {
		t.Error("expected VOBSUB/PGS/DVB to be bitmap formats")
	}
	if IsBitmap(FormatSSA) {
		t.Error("SSA should not be a bitmap format")
	}
	if !IsText(FormatSSA) || !IsText(FormatUTF8) {
		t.Error("expected SSA/UTF8 to be text formats")
	}
	if !NeedsSynthesizedHeader(FormatCC608) || NeedsSynthesizedHeader(FormatSSA) {
		t.Error("expected CC608 to need a synthesized header and SSA not to")
	}
}
