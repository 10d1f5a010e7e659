package dto

import "time"

type ClipOutput struct {
	ID        string
	Type      string
	Name      string
	Icon      string
	StartTime float64
	Duration  float64
	Color     string
	Volume    float64
	Waveform  []float64
	Extra     map[string]any
}

type TrackOutput struct {
	ID     string
	Type   string
	Name   string
	Icon   string
	Height float64
	Muted  bool
	Locked bool
	Clips  []ClipOutput
}

type ProjectOutput struct {
	Name      string
	Duration  float64
	FrameRate float64
	Width     int
	Height    int
	Tracks    []TrackOutput
}

func (p ProjectOutput) Track(trackID string) (TrackOutput, bool) {
	for _, t := range p.Tracks {
		if t.ID == trackID {
			return t, true
		}
	}
	return TrackOutput{}, false
}

func (p ProjectOutput) HasTrack(trackID string) bool {
	_, ok := p.Track(trackID)
	return ok
}

// Clip finds clipID and the track that currently holds it.
func (p ProjectOutput) Clip(clipID string) (ClipOutput, string, bool) {
	for _, t := range p.Tracks {
		for _, c := range t.Clips {
			if c.ID == clipID {
				return c, t.ID, true
			}
		}
	}
	return ClipOutput{}, "", false
}

func (p ProjectOutput) ClipCount() int {
	n := 0
	for _, t := range p.Tracks {
		n += len(t.Clips)
	}
	return n
}

type MoveClipInput struct {
	ClipID       string
	FromTrackID  string
	ToTrackID    string
	NewStartTime float64
}

type MoveClipOutput struct {
	ClipID      string
	FromTrackID string
	ToTrackID   string
	FromStart   float64
	StartTime   float64
}

type LocateOutput struct {
	TrackID string
	Found   bool
}

type MoveRecordOutput struct {
	ID          string
	ClipID      string
	FromTrackID string
	ToTrackID   string
	FromStart   float64
	ToStart     float64
	MovedAt     time.Time
}
