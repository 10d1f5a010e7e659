package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	timelineout "trackline/internal/modules/timeline/adapter/out"
	"trackline/internal/modules/timeline/domain"
)

const projectYAML = `
metadata:
  name: Launch Trailer
  duration: 45
  frame_rate: 24
  resolution: {width: 3840, height: 2160}
tracks:
  - id: v1
    type: video
    name: Picture
    clips:
      - id: intro
        type: video
        name: Intro
        start_time: 0
        duration: 6.5
        metadata:
          in_point: 0
          out_point: 6.5
  - id: a1
    type: audio
    name: Score
    height: 60
    muted: true
    clips:
      - id: theme
        type: audio
        name: Theme
        start_time: 2
        duration: 30
        volume: 0.4
        color: "#123456"
        waveform: [0.1, 0.9, 0.5]
`

func TestFileProjectSourceLoadsDocument(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(projectYAML), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}

	project, err := timelineout.NewFileProjectSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := project.Validate(); err != nil {
		t.Fatalf("decoded project invalid: %v", err)
	}
	if project.Metadata.Name != "Launch Trailer" || project.Metadata.Duration != 45 || project.Metadata.Resolution.Width != 3840 {
		t.Fatalf("metadata = %+v", project.Metadata)
	}

	video, _ := project.Track("v1")
	if video.Height != 70 {
		t.Fatalf("video track should default to 70px, got %g", video.Height)
	}
	intro := video.Clips[0]
	if intro.Color != domain.StyleForClip(domain.ClipTypeVideo).DefaultColor || intro.Volume != 1 {
		t.Fatalf("intro defaults not applied: %+v", intro)
	}
	if intro.Extra["out_point"] != 6.5 {
		t.Fatalf("clip metadata lost: %+v", intro.Extra)
	}

	audio, _ := project.Track("a1")
	theme := audio.Clips[0]
	if !audio.Muted || audio.Height != 60 || theme.Volume != 0.4 || theme.Color != "#123456" || len(theme.Waveform) != 3 {
		t.Fatalf("audio track decoded wrong: %+v", audio)
	}
}

func TestDecodeProjectRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	_, err := timelineout.DecodeProject([]byte("metadata: {name: x, duration: 1}\ntrackz: []\n"))
	if err == nil || !strings.Contains(err.Error(), "trackz") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestFileProjectSourceMissingFile(t *testing.T) {
	t.Parallel()
	_, err := timelineout.NewFileProjectSource(filepath.Join(t.TempDir(), "none.yaml")).Load(context.Background())
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
