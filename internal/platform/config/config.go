package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "trackline/internal/platform/errors"
)

const (
	stateDirName   = ".trackline"
	configFileName = "config.yaml"
	envPrefix      = "TRACKLINE_"
)

// Editor holds the geometry and timing constants shared by the timeline core
// and the terminal host.
type Editor struct {
	BaseScale      float64       `yaml:"base_scale"`
	MinZoom        float64       `yaml:"min_zoom"`
	MaxZoom        float64       `yaml:"max_zoom"`
	ZoomStep       float64       `yaml:"zoom_step"`
	InitialZoom    float64       `yaml:"initial_zoom"`
	RulerHeight    float64       `yaml:"ruler_height"`
	ClipInset      float64       `yaml:"clip_inset"`
	MinClipWidth   float64       `yaml:"min_clip_width"`
	PlayheadMargin float64       `yaml:"playhead_margin"`
	FrameInterval  time.Duration `yaml:"frame_interval"`
	CellWidth      float64       `yaml:"cell_width"`
	CellHeight     float64       `yaml:"cell_height"`
}

type Log struct {
	Level      string `yaml:"level"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type Config struct {
	WorkDir  string `yaml:"-"`
	StateDir string `yaml:"-"`
	DBPath   string `yaml:"db_path"`
	Log      Log    `yaml:"log"`
	Editor   Editor `yaml:"editor"`
}

func DefaultEditor() Editor {
	return Editor{
		BaseScale:      30,
		MinZoom:        0.1,
		MaxZoom:        3.0,
		ZoomStep:       1.2,
		InitialZoom:    1.0,
		RulerHeight:    30,
		ClipInset:      3,
		MinClipWidth:   40,
		PlayheadMargin: 100,
		FrameInterval:  16 * time.Millisecond,
		CellWidth:      6,
		CellHeight:     10,
	}
}

// New derives paths and defaults for workDir without touching the
// filesystem or the environment.
func New(workDir string) (Config, error) {
	if workDir == "" {
		return Config{}, fmt.Errorf("work dir is required: %w", apperrors.ErrInvalidArgument)
	}
	stateDir := filepath.Join(workDir, stateDirName)
	return Config{
		WorkDir:  workDir,
		StateDir: stateDir,
		DBPath:   filepath.Join(stateDir, "trackline.db"),
		Log: Log{
			Level:      "info",
			Path:       filepath.Join(stateDir, "logs", "trackline.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
		Editor: DefaultEditor(),
	}, nil
}

// Load starts from New and overlays, in order, .trackline/config.yaml and
// TRACKLINE_* variables (a .env file in workDir is read first and never
// overrides variables already set).
func Load(workDir string) (Config, error) {
	cfg, err := New(workDir)
	if err != nil {
		return Config{}, err
	}
	_ = godotenv.Load(filepath.Join(workDir, ".env"))

	b, err := os.ReadFile(filepath.Join(cfg.StateDir, configFileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", configFileName, err)
		}
	case os.IsNotExist(err):
	default:
		return Config{}, fmt.Errorf("read %s: %w", configFileName, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Editor.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("LOG_PATH"); ok {
		cfg.Log.Path = v
	}
	if v, ok := lookup("DB_PATH"); ok {
		cfg.DBPath = v
	}
	floats := map[string]*float64{
		"BASE_SCALE":   &cfg.Editor.BaseScale,
		"MIN_ZOOM":     &cfg.Editor.MinZoom,
		"MAX_ZOOM":     &cfg.Editor.MaxZoom,
		"INITIAL_ZOOM": &cfg.Editor.InitialZoom,
	}
	for key, dst := range floats {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", envPrefix, key, v, apperrors.ErrInvalidArgument)
		}
		*dst = f
	}
	if v, ok := lookup("FRAME_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sFRAME_INTERVAL=%q: %w", envPrefix, v, apperrors.ErrInvalidArgument)
		}
		cfg.Editor.FrameInterval = d
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (e Editor) Validate() error {
	switch {
	case e.BaseScale <= 0:
		return fmt.Errorf("base scale must be positive: %w", apperrors.ErrInvalidArgument)
	case e.MinZoom <= 0 || e.MinZoom >= e.MaxZoom:
		return fmt.Errorf("zoom bounds [%g, %g] are invalid: %w", e.MinZoom, e.MaxZoom, apperrors.ErrInvalidArgument)
	case e.ZoomStep <= 1:
		return fmt.Errorf("zoom step must exceed 1: %w", apperrors.ErrInvalidArgument)
	case e.RulerHeight < 0 || e.ClipInset < 0 || e.MinClipWidth < 0 || e.PlayheadMargin < 0:
		return fmt.Errorf("geometry constants must be non-negative: %w", apperrors.ErrInvalidArgument)
	case e.FrameInterval <= 0:
		return fmt.Errorf("frame interval must be positive: %w", apperrors.ErrInvalidArgument)
	case e.CellWidth <= 0 || e.CellHeight <= 0:
		return fmt.Errorf("cell size must be positive: %w", apperrors.ErrInvalidArgument)
	}
	return nil
}
