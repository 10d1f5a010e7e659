package out_test

import (
	"context"
	"reflect"
	"testing"

	timelineout "trackline/internal/modules/timeline/adapter/out"
)

func TestDemoProjectIsValidAndSeeded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, err := timelineout.NewDemoProjectSource(7).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("demo project invalid: %v", err)
	}
	if len(a.Tracks) != 4 || a.ClipCount() != 6 || a.Metadata.Duration != 30 {
		t.Fatalf("unexpected demo shape: %d tracks, %d clips, %gs", len(a.Tracks), a.ClipCount(), a.Metadata.Duration)
	}

	clip, _, err := a.Clip("clip-3")
	if err != nil {
		t.Fatalf("clip-3: %v", err)
	}
	if len(clip.Waveform) != int(clip.Duration*50) {
		t.Fatalf("expected %d samples, got %d", int(clip.Duration*50), len(clip.Waveform))
	}
	for _, v := range clip.Waveform {
		if v < 0.2 || v > 0.8 {
			t.Fatalf("sample %g outside [0.2, 0.8]", v)
		}
	}

	b, _ := timelineout.NewDemoProjectSource(7).Load(ctx)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different projects")
	}
	c, _ := timelineout.NewDemoProjectSource(8).Load(ctx)
	cc, _, _ := c.Clip("clip-3")
	if reflect.DeepEqual(clip.Waveform, cc.Waveform) {
		t.Fatalf("different seeds produced identical waveforms")
	}
}
