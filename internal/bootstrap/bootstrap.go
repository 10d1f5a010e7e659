package bootstrap

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	dragoutadapter "trackline/internal/modules/drag/adapter/out"
	dragservice "trackline/internal/modules/drag/service"
	dragusecase "trackline/internal/modules/drag/usecase"
	editorinadapter "trackline/internal/modules/editor/adapter/in"
	editorservice "trackline/internal/modules/editor/service"
	editorusecase "trackline/internal/modules/editor/usecase"
	playbackservice "trackline/internal/modules/playback/service"
	playbackusecase "trackline/internal/modules/playback/usecase"
	timelineinadapter "trackline/internal/modules/timeline/adapter/in"
	timelineoutadapter "trackline/internal/modules/timeline/adapter/out"
	timelinedomain "trackline/internal/modules/timeline/domain"
	timelineservice "trackline/internal/modules/timeline/service"
	timelineusecase "trackline/internal/modules/timeline/usecase"
	viewportinadapter "trackline/internal/modules/viewport/adapter/in"
	viewportdomain "trackline/internal/modules/viewport/domain"
	viewportservice "trackline/internal/modules/viewport/service"
	viewportusecase "trackline/internal/modules/viewport/usecase"
	"trackline/internal/platform/clock"
	"trackline/internal/platform/config"
	"trackline/internal/platform/id"
	"trackline/internal/platform/tx"
	uiapp "trackline/internal/ui/app"
)

// Options picks the initial project: a YAML document when ProjectPath is
// set, the generated demo project otherwise.
type Options struct {
	ProjectPath string
	Seed        uint64
}

type App struct {
	TimelineCLI timelineinadapter.CLIHandler
	ViewportCLI viewportinadapter.CLIHandler
	EditorTUI   editorinadapter.TUIHandler

	cfg     config.Config
	log     *zap.Logger
	closers []io.Closer
}

func New(ctx context.Context, cfg config.Config, opts Options, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	editor := cfg.Editor

	source := timelineoutadapter.NewDemoProjectSource(opts.Seed)
	if opts.ProjectPath != "" {
		source = timelineoutadapter.NewFileProjectSource(opts.ProjectPath)
	}
	journal, err := timelineoutadapter.NewSQLiteMoveJournal(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new move journal: %w", err)
	}
	app := &App{cfg: cfg, log: log}
	if c, ok := journal.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}

	timelineSvc := timelineservice.NewTimelineService(
		source,
		journal,
		&tx.LockManager{},
		clock.SystemClock{},
		id.UUID{},
		timelinedomain.Layout{RulerHeight: editor.RulerHeight, ClipInset: editor.ClipInset},
		log.Named("timeline"),
	)
	if err := timelineSvc.Load(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	project, err := timelineSvc.Snapshot(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	timelineUC := timelineusecase.NewInteractor(timelineSvc)

	viewportSvc, err := viewportservice.NewViewportService(viewportservice.Settings{
		BaseScale:   editor.BaseScale,
		InitialZoom: editor.InitialZoom,
		Bounds: viewportdomain.ZoomBounds{
			Min:  editor.MinZoom,
			Max:  editor.MaxZoom,
			Step: editor.ZoomStep,
		},
		MinClipWidth:   editor.MinClipWidth,
		PlayheadMargin: editor.PlayheadMargin,
	}, log.Named("viewport"))
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new viewport: %w", err)
	}
	viewportUC := viewportusecase.NewInteractor(viewportSvc)

	playbackSvc, err := playbackservice.NewPlaybackService(project.Metadata.Duration, log.Named("playback"))
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new playback clock: %w", err)
	}
	playbackUC := playbackusecase.NewInteractor(playbackSvc)

	dragUC := dragusecase.NewInteractor(dragservice.NewDragService(
		dragoutadapter.NewTimelineAdapter(timelineUC),
		dragoutadapter.NewViewportAdapter(viewportUC),
		log.Named("drag"),
	))

	editorUC := editorusecase.NewInteractor(editorservice.NewEditorService(
		timelineUC,
		playbackUC,
		viewportUC,
		dragUC,
		editorservice.Settings{RulerHeight: editor.RulerHeight, ClipInset: editor.ClipInset},
		log.Named("editor"),
	))

	app.TimelineCLI = timelineinadapter.NewCLIHandler(timelineUC)
	app.ViewportCLI = viewportinadapter.NewCLIHandler(viewportUC)
	app.EditorTUI = editorinadapter.NewTUIHandler(editorUC)
	return app, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func RunTUI(ctx context.Context, app *App) error {
	model := uiapp.NewModel(ctx, app.EditorTUI, uiapp.Options{
		CellWidth:     app.cfg.Editor.CellWidth,
		CellHeight:    app.cfg.Editor.CellHeight,
		FrameInterval: app.cfg.Editor.FrameInterval,
	}, app.log.Named("ui"))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
