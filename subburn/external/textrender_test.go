package external

import "testing"

func TestBasicTextRendererRenderFrame(t *testing.T) {
	r := NewBasicTextRenderer()
	r.SetFrameSize(320, 240)
	track := r.NewTrack()

	if err := track.ProcessChunk([]byte("hello"), 1000, 2000); err != nil {
		t.Fatal(err)
	}

	frags, changed := track.RenderFrame(500)
	if len(frags) != 0 {
		t.Errorf("expected no fragments before event start, got %d", len(frags))
	}
	if !changed {
		t.Error("expected first call to report changed")
	}

	frags, changed = track.RenderFrame(1500)
	if len(frags) != 1 {
		t.Fatalf("expected one fragment during event, got %d", len(frags))
	}
	if !changed {
		t.Error("expected transition into the event to report changed")
	}
	if frags[0].W == 0 || frags[0].H == 0 {
		t.Error("expected non-empty fragment bitmap dimensions")
	}

	_, changed = track.RenderFrame(1600)
	if changed {
		t.Error("expected repeated render of the same active event to report unchanged")
	}

	frags, changed = track.RenderFrame(4000)
	if len(frags) != 0 || !changed {
		t.Errorf("expected event end to clear fragments and report changed, got frags=%d changed=%v", len(frags), changed)
	}
}
