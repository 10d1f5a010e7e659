package out

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trackline/internal/modules/timeline/domain"
	timelineout "trackline/internal/modules/timeline/port/out"
)

// projectDocument is the on-disk shape of a project. JSON documents decode
// too, since YAML is a superset.
type projectDocument struct {
	Metadata struct {
		Name       string  `yaml:"name"`
		Duration   float64 `yaml:"duration"`
		FrameRate  float64 `yaml:"frame_rate"`
		Resolution struct {
			Width  int `yaml:"width"`
			Height int `yaml:"height"`
		} `yaml:"resolution"`
	} `yaml:"metadata"`
	Tracks []trackDocument `yaml:"tracks"`
}

type trackDocument struct {
	ID     string         `yaml:"id"`
	Type   string         `yaml:"type"`
	Name   string         `yaml:"name"`
	Height float64        `yaml:"height"`
	Muted  bool           `yaml:"muted"`
	Locked bool           `yaml:"locked"`
	Clips  []clipDocument `yaml:"clips"`
}

type clipDocument struct {
	ID        string         `yaml:"id"`
	Type      string         `yaml:"type"`
	Name      string         `yaml:"name"`
	StartTime float64        `yaml:"start_time"`
	Duration  float64        `yaml:"duration"`
	Color     string         `yaml:"color"`
	Volume    *float64       `yaml:"volume"`
	Waveform  []float64      `yaml:"waveform"`
	Metadata  map[string]any `yaml:"metadata"`
}

type FileProjectSource struct {
	path string
}

func NewFileProjectSource(path string) timelineout.ProjectSource {
	return &FileProjectSource{path: path}
}

func (s *FileProjectSource) Load(_ context.Context) (domain.Project, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Project{}, fmt.Errorf("read project %s: %w", s.path, err)
	}
	return DecodeProject(b)
}

// DecodeProject parses a project document, filling track heights and clip
// colors left empty from the type catalogs. Unknown fields are rejected.
func DecodeProject(b []byte) (domain.Project, error) {
	var doc projectDocument
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return domain.Project{}, fmt.Errorf("decode project: %w", err)
	}

	project := domain.Project{
		Metadata: domain.Metadata{
			Name:      doc.Metadata.Name,
			Duration:  doc.Metadata.Duration,
			FrameRate: doc.Metadata.FrameRate,
			Resolution: domain.Resolution{
				Width:  doc.Metadata.Resolution.Width,
				Height: doc.Metadata.Resolution.Height,
			},
		},
		Tracks: make([]domain.Track, 0, len(doc.Tracks)),
	}
	for _, td := range doc.Tracks {
		track := domain.Track{
			ID:     td.ID,
			Type:   domain.TrackType(td.Type),
			Name:   td.Name,
			Height: td.Height,
			Muted:  td.Muted,
			Locked: td.Locked,
			Clips:  make([]domain.Clip, 0, len(td.Clips)),
		}
		if track.Height == 0 {
			track.Height = domain.StyleForTrack(track.Type).DefaultHeight
		}
		for _, cd := range td.Clips {
			clip := domain.Clip{
				ID:        cd.ID,
				Type:      domain.ClipType(cd.Type),
				Name:      cd.Name,
				StartTime: cd.StartTime,
				Duration:  cd.Duration,
				Color:     cd.Color,
				Volume:    1,
				Waveform:  cd.Waveform,
				Extra:     cd.Metadata,
			}
			if cd.Volume != nil {
				clip.Volume = *cd.Volume
			}
			if clip.Color == "" {
				clip.Color = domain.StyleForClip(clip.Type).DefaultColor
			}
			track.Clips = append(track.Clips, clip)
		}
		project.Tracks = append(project.Tracks, track)
	}
	return project, nil
}
