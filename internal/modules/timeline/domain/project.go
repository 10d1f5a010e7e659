package domain

import (
	"fmt"
	"math"
	"strings"

	apperrors "trackline/internal/platform/errors"
)

type TrackType string

const (
	TrackTypeVideo   TrackType = "video"
	TrackTypeAudio   TrackType = "audio"
	TrackTypeText    TrackType = "text"
	TrackTypeEffects TrackType = "effects"
)

type ClipType string

const (
	ClipTypeVideo  ClipType = "video"
	ClipTypeAudio  ClipType = "audio"
	ClipTypeText   ClipType = "text"
	ClipTypeImage  ClipType = "image"
	ClipTypeEffect ClipType = "effect"
)

func (t TrackType) Validate() error {
	switch t {
	case TrackTypeVideo, TrackTypeAudio, TrackTypeText, TrackTypeEffects:
		return nil
	default:
		return fmt.Errorf("unsupported track type %q: %w", string(t), apperrors.ErrInvalidArgument)
	}
}

func (t ClipType) Validate() error {
	switch t {
	case ClipTypeVideo, ClipTypeAudio, ClipTypeText, ClipTypeImage, ClipTypeEffect:
		return nil
	default:
		return fmt.Errorf("unsupported clip type %q: %w", string(t), apperrors.ErrInvalidArgument)
	}
}

type Resolution struct {
	Width  int
	Height int
}

type Metadata struct {
	Name       string
	Duration   float64
	FrameRate  float64
	Resolution Resolution
}

// Clip is a time-positioned piece of media. Extra carries the type-specific
// attributes (in/out points, text styling, effect parameters) verbatim.
type Clip struct {
	ID        string
	Type      ClipType
	Name      string
	StartTime float64
	Duration  float64
	Color     string
	Volume    float64
	Waveform  []float64
	Extra     map[string]any
}

func (c Clip) End() float64 {
	return c.StartTime + c.Duration
}

// MaxTime is the largest start, length or project duration accepted, in
// seconds (one week).
const MaxTime = 7 * 24 * 3600

func finiteTime(t float64) bool {
	return t >= 0 && t <= MaxTime
}

func (c Clip) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("clip id is required: %w", apperrors.ErrInvalidArgument)
	}
	if err := c.Type.Validate(); err != nil {
		return fmt.Errorf("clip %q: %w", c.ID, err)
	}
	if !finiteTime(c.StartTime) {
		return fmt.Errorf("clip %q start time %g: %w", c.ID, c.StartTime, apperrors.ErrInvalidArgument)
	}
	if !(c.Duration > 0) || !finiteTime(c.Duration) {
		return fmt.Errorf("clip %q duration %g: %w", c.ID, c.Duration, apperrors.ErrInvalidArgument)
	}
	for i, v := range c.Waveform {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("clip %q waveform sample %d = %g: %w", c.ID, i, v, apperrors.ErrInvalidArgument)
		}
	}
	return nil
}

type Track struct {
	ID     string
	Type   TrackType
	Name   string
	Height float64
	Muted  bool
	Locked bool
	Clips  []Clip
}

func (t Track) IndexOf(clipID string) int {
	for i := range t.Clips {
		if t.Clips[i].ID == clipID {
			return i
		}
	}
	return -1
}

func (t Track) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("track id is required: %w", apperrors.ErrInvalidArgument)
	}
	if err := t.Type.Validate(); err != nil {
		return fmt.Errorf("track %q: %w", t.ID, err)
	}
	if !(t.Height > 0) {
		return fmt.Errorf("track %q height %g: %w", t.ID, t.Height, apperrors.ErrInvalidArgument)
	}
	for _, c := range t.Clips {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Project owns the ordered tracks. Tracks own their clips exclusively.
type Project struct {
	Metadata Metadata
	Tracks   []Track
}

// Validate checks every field invariant plus global id uniqueness of tracks
// and clips.
func (p Project) Validate() error {
	if !(p.Metadata.Duration > 0) || !finiteTime(p.Metadata.Duration) {
		return fmt.Errorf("project duration %g: %w", p.Metadata.Duration, apperrors.ErrInvalidArgument)
	}
	tracks := make(map[string]struct{}, len(p.Tracks))
	clips := map[string]string{}
	for _, t := range p.Tracks {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := tracks[t.ID]; dup {
			return fmt.Errorf("duplicate track id %q: %w", t.ID, apperrors.ErrInvalidArgument)
		}
		tracks[t.ID] = struct{}{}
		for _, c := range t.Clips {
			if owner, dup := clips[c.ID]; dup {
				return fmt.Errorf("clip id %q appears in tracks %q and %q: %w", c.ID, owner, t.ID, apperrors.ErrInvalidArgument)
			}
			clips[c.ID] = t.ID
		}
	}
	return nil
}

func (p Project) TrackIndex(trackID string) int {
	for i := range p.Tracks {
		if p.Tracks[i].ID == trackID {
			return i
		}
	}
	return -1
}

func (p Project) Track(trackID string) (Track, error) {
	idx := p.TrackIndex(trackID)
	if idx < 0 {
		return Track{}, fmt.Errorf("track %q: %w", trackID, apperrors.ErrNotFound)
	}
	return p.Tracks[idx], nil
}

func (p Project) FindTrackContainingClip(clipID string) (string, error) {
	for _, t := range p.Tracks {
		if t.IndexOf(clipID) >= 0 {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("clip %q: %w", clipID, apperrors.ErrNotFound)
}

func (p Project) Clip(clipID string) (Clip, string, error) {
	for _, t := range p.Tracks {
		if idx := t.IndexOf(clipID); idx >= 0 {
			return t.Clips[idx], t.ID, nil
		}
	}
	return Clip{}, "", fmt.Errorf("clip %q: %w", clipID, apperrors.ErrNotFound)
}

func (p Project) ClipCount() int {
	n := 0
	for _, t := range p.Tracks {
		n += len(t.Clips)
	}
	return n
}

// MoveClip takes clipID out of fromTrackID and appends it to toTrackID with
// newStartTime. Every check runs before the first write, so on error the
// project is unchanged. Moving within one track repositions the clip at the
// end of that track's sequence.
func (p *Project) MoveClip(clipID, fromTrackID, toTrackID string, newStartTime float64) (Clip, error) {
	if !finiteTime(newStartTime) {
		return Clip{}, fmt.Errorf("start time %g: %w", newStartTime, apperrors.ErrInvalidArgument)
	}
	from := p.TrackIndex(fromTrackID)
	if from < 0 {
		return Clip{}, fmt.Errorf("source track %q: %w", fromTrackID, apperrors.ErrNotFound)
	}
	to := p.TrackIndex(toTrackID)
	if to < 0 {
		return Clip{}, fmt.Errorf("target track %q: %w", toTrackID, apperrors.ErrNotFound)
	}
	idx := p.Tracks[from].IndexOf(clipID)
	if idx < 0 {
		return Clip{}, fmt.Errorf("clip %q in track %q: %w", clipID, fromTrackID, apperrors.ErrNotFound)
	}

	clip := p.Tracks[from].Clips[idx]
	clip.StartTime = newStartTime

	src := p.Tracks[from].Clips
	remaining := make([]Clip, 0, len(src)-1)
	remaining = append(remaining, src[:idx]...)
	remaining = append(remaining, src[idx+1:]...)
	p.Tracks[from].Clips = remaining
	p.Tracks[to].Clips = append(p.Tracks[to].Clips, clip)
	return clip, nil
}

// Clone returns a deep copy; snapshots handed to renderers never alias the
// live project.
func (p Project) Clone() Project {
	out := Project{Metadata: p.Metadata, Tracks: make([]Track, len(p.Tracks))}
	for i, t := range p.Tracks {
		ct := t
		ct.Clips = make([]Clip, len(t.Clips))
		for j, c := range t.Clips {
			cc := c
			if c.Waveform != nil {
				cc.Waveform = append([]float64(nil), c.Waveform...)
			}
			if c.Extra != nil {
				cc.Extra = cloneMap(c.Extra)
			}
			ct.Clips[j] = cc
		}
		out.Tracks[i] = ct
	}
	return out
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
