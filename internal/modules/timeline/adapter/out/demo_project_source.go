package out

import (
	"context"
	"math/rand/v2"

	"trackline/internal/modules/timeline/domain"
	timelineout "trackline/internal/modules/timeline/port/out"
)

const waveformSamplesPerSecond = 50

// DemoProjectSource builds the four-track sample project. Waveforms are mock
// data drawn from a PCG source seeded with Seed, so equal seeds give equal
// projects.
type DemoProjectSource struct {
	Seed uint64
}

func NewDemoProjectSource(seed uint64) timelineout.ProjectSource {
	return DemoProjectSource{Seed: seed}
}

func (s DemoProjectSource) Load(_ context.Context) (domain.Project, error) {
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	return domain.Project{
		Metadata: domain.Metadata{
			Name:       "Untitled project",
			Duration:   30,
			FrameRate:  30,
			Resolution: domain.Resolution{Width: 1920, Height: 1080},
		},
		Tracks: []domain.Track{
			{
				ID: "track-1", Type: domain.TrackTypeVideo, Name: "Video 1", Height: 70,
				Clips: []domain.Clip{
					{ID: "clip-1", Type: domain.ClipTypeVideo, Name: "Video 1", StartTime: 0, Duration: 4, Color: "#FF6B6B", Volume: 1,
						Extra: map[string]any{"source": "video1.mp4", "in_point": 0.0, "out_point": 4.0}},
					{ID: "clip-2", Type: domain.ClipTypeVideo, Name: "Video 2", StartTime: 5, Duration: 3, Color: "#4ECDC4", Volume: 1,
						Extra: map[string]any{"source": "video2.mp4", "in_point": 0.0, "out_point": 3.0}},
				},
			},
			{
				ID: "track-2", Type: domain.TrackTypeAudio, Name: "Audio 1", Height: 50,
				Clips: []domain.Clip{
					{ID: "clip-3", Type: domain.ClipTypeAudio, Name: "Audio 1", StartTime: 1, Duration: 6, Color: "#95E77E", Volume: 1,
						Waveform: mockWaveform(rng, 6),
						Extra:    map[string]any{"source": "audio1.mp3", "in_point": 0.0, "out_point": 6.0}},
					{ID: "clip-4", Type: domain.ClipTypeAudio, Name: "Audio 2", StartTime: 8, Duration: 4, Color: "#FFE66D", Volume: 1,
						Waveform: mockWaveform(rng, 4),
						Extra:    map[string]any{"source": "audio2.mp3", "in_point": 0.0, "out_point": 4.0}},
				},
			},
			{
				ID: "track-3", Type: domain.TrackTypeText, Name: "Text 1", Height: 50,
				Clips: []domain.Clip{
					{ID: "clip-5", Type: domain.ClipTypeText, Name: "Title", StartTime: 2, Duration: 5, Color: "#A8E6CF", Volume: 1,
						Extra: map[string]any{
							"text": "Title", "font_size": 48, "font_family": "Arial", "color": "#FFFFFF",
							"position": map[string]any{"x": 100, "y": 200},
						}},
				},
			},
			{
				ID: "track-4", Type: domain.TrackTypeEffects, Name: "Effects 1", Height: 50,
				Clips: []domain.Clip{
					{ID: "clip-6", Type: domain.ClipTypeEffect, Name: "Fade in", StartTime: 3, Duration: 2, Color: "#C7B3E5", Volume: 1,
						Extra: map[string]any{
							"effect_type": "fadeIn",
							"parameters":  map[string]any{"duration": 1.0, "ease": "ease-in-out"},
						}},
				},
			},
		},
	}, nil
}

func mockWaveform(rng *rand.Rand, duration float64) []float64 {
	n := int(duration * waveformSamplesPerSecond)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.Float64()*0.6 + 0.2
	}
	return samples
}
