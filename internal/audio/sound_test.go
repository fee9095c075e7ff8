package audio

import (
	"testing"

	"github.com/vovakirdan/procroids/internal/core"
)

func TestCueStreamersAreFinite(t *testing.T) {
	for _, c := range []core.Cue{core.CueFire, core.CueExplosion, core.CueProcessKilled, core.CuePlayerHit} {
		s, err := cueStreamer(c, 0.5)
		if err != nil {
			t.Fatalf("cue %d: %v", c, err)
		}

		buf := make([][2]float64, 512)
		total := 0
		for i := 0; i < 1000; i++ {
			n, ok := s.Stream(buf)
			for j := 0; j < n; j++ {
				if buf[j][0] < -1 || buf[j][0] > 1 {
					t.Fatalf("cue %d: sample %f out of range", c, buf[j][0])
				}
			}
			total += n
			if !ok {
				break
			}
		}
		if total == 0 {
			t.Errorf("cue %d produced no samples", c)
		}
		if total >= 1000*512 {
			t.Errorf("cue %d never ended", c)
		}
	}
}

func TestUnknownCue(t *testing.T) {
	if _, err := cueStreamer(core.Cue(99), 1); err == nil {
		t.Error("expected error for unknown cue")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(0.5, nil)
	p.Play(core.CueFire) // must not touch the speaker
	p.Close()
}

func TestCloseReleasesSpeakerOnce(t *testing.T) {
	calls := 0
	orig := closeSpeaker
	closeSpeaker = func() { calls++ }
	t.Cleanup(func() { closeSpeaker = orig })

	p := NewPlayer(0.5, nil)
	p.Close()
	if calls != 0 {
		t.Fatalf("closed an unopened speaker %d times", calls)
	}

	p.initialized = true
	p.Close()
	p.Close()
	if calls != 1 {
		t.Errorf("speaker closed %d times, want 1", calls)
	}
}
