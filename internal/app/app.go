// Package app implements the application layer for testbridge.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/testbridge/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/testbridge/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports"
	"go.trai.ch/testbridge/internal/engine/bridge"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// LogControl changes how the logger renders. It is implemented by the slog
// adapter.
type LogControl interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	engine       *bridge.Engine
	store        ports.BuildRecordStore
	watcher      ports.Watcher
	logger       ports.Logger
	logControl   LogControl

	// ensureMu serializes ensure cycles so at most one rebuild runs at a time.
	ensureMu sync.Mutex
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	engine *bridge.Engine,
	store ports.BuildRecordStore,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		store:        store,
		watcher:      w,
		logger:       log,
	}
}

// WithLogControl lets ConfigureLogging switch the logger mode and level.
func (a *App) WithLogControl(c LogControl) *App {
	a.logControl = c
	return a
}

// LogOptions configures the logger for one invocation.
type LogOptions struct {
	Format string
	Trace  bool
}

// ConfigureLogging applies the requested log format and level.
func (a *App) ConfigureLogging(opts LogOptions) error {
	requested, err := detector.ParseLogFormat(opts.Format)
	if err != nil {
		return err
	}
	if a.logControl == nil {
		return nil
	}

	format := detector.Resolve(detector.DetectEnvironment(), requested)
	a.logControl.SetJSON(format == detector.FormatJSON)
	if opts.Trace {
		a.logControl.SetLevel(slog.LevelDebug)
	}
	return nil
}

// WorkspaceOptions selects the configuration for one invocation.
type WorkspaceOptions struct {
	// ConfigPath names a config file explicitly; discovery is skipped.
	ConfigPath string
	// Dir is where config discovery starts. Empty means the working directory.
	Dir string
}

// Workspace loads the configuration and binds it to the project root on disk.
func (a *App) Workspace(opts WorkspaceOptions) (domain.Workspace, error) {
	var (
		root string
		cfg  domain.Config
		err  error
	)
	if opts.ConfigPath != "" {
		root, cfg, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		root, cfg, err = a.configLoader.Load(dir)
	}
	if err != nil {
		return domain.Workspace{}, zerr.Wrap(err, "failed to load configuration")
	}

	return domain.Workspace{
		Root:   root,
		FS:     os.DirFS(root),
		Config: cfg,
	}, nil
}

// Locate returns the compiled test output directory.
func (a *App) Locate(ctx context.Context, ws domain.Workspace) (domain.OutputLocation, error) {
	loc, found := a.engine.Locate(ctx, ws)
	if !found {
		return domain.OutputLocation{}, zerr.With(domain.ErrOutputNotFound, "cache_root", ws.Config.CacheRoot)
	}
	return loc, nil
}

// Check reports whether the compiled test output is stale.
func (a *App) Check(ctx context.Context, ws domain.Workspace) bridge.Status {
	return a.engine.Check(ctx, ws)
}

// Ensure rebuilds the test output when it is absent or stale. With force the
// rebuild runs unconditionally.
func (a *App) Ensure(ctx context.Context, ws domain.Workspace, force bool) bridge.Result {
	a.ensureMu.Lock()
	defer a.ensureMu.Unlock()

	if force {
		return a.engine.EnsureForced(ctx, ws)
	}
	return a.engine.Ensure(ctx, ws)
}

// Resolve maps each id onto the absolute path of its compiled artifact.
// Unresolved ids are joined into one error; resolved paths are still returned.
func (a *App) Resolve(ctx context.Context, ws domain.Workspace, ids []string) ([]string, error) {
	loc, err := a.Locate(ctx, ws)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(ids))
	var errs error
	for _, id := range ids {
		artifact, ok := a.engine.Resolve(ctx, ws, loc, id)
		if !ok {
			errs = errors.Join(errs, zerr.With(domain.ErrArtifactNotFound, "id", id))
			continue
		}
		paths = append(paths, ws.Abs(artifact))
	}
	return paths, errs
}

// Load ensures the output is fresh and returns the compiled artifact for id.
func (a *App) Load(ctx context.Context, ws domain.Workspace, id string) ([]byte, error) {
	a.ensureMu.Lock()
	defer a.ensureMu.Unlock()

	_, data, err := a.engine.Load(ctx, ws, id)
	return data, err
}

// Status returns the record of the last rebuild.
func (a *App) Status(ws domain.Workspace) (*domain.BuildRecord, error) {
	record, err := a.store.Get(ws.Root)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, zerr.With(domain.ErrNoBuildRecord, "root", ws.Root)
	}
	return record, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Output also removes the located compiled test output directory.
	Output bool
}

// Clean removes the build record store and optionally the test output.
func (a *App) Clean(ctx context.Context, ws domain.Workspace, options CleanOptions) error {
	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(filepath.Join(ws.Root, domain.DefaultStorePath()), "build record store")

	if options.Output {
		if loc, found := a.engine.Locate(ctx, ws); found {
			remove(ws.Abs(loc.Dir), "test output "+loc.Dir)
		} else {
			a.logger.Info("no test output to remove")
		}
	}

	return errs
}

// Watch runs an ensure cycle at start and again after every debounced batch of
// source changes, until ctx is canceled.
func (a *App) Watch(ctx context.Context, ws domain.Workspace) error {
	a.Ensure(ctx, ws, false)

	sourceDir := ws.Abs(ws.Config.SourceRoot)
	if err := a.watcher.Start(ctx, sourceDir); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info("watching " + sourceDir + " for changes")

	batches := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(ws.Config.Debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	// Event Routine
	g.Go(func() error {
		for event := range a.watcher.Events() {
			if isRelevant(sourceDir, event.Path, ws.Config.Extensions) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	// Shutdown Routine
	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})

	// Ensure Routine
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-batches:
				a.logger.Info(describeBatch(sourceDir, paths))
				a.Ensure(ctx, ws, false)
			}
		}
	})

	return g.Wait()
}

// isRelevant reports whether a change to path can affect the test output.
func isRelevant(sourceDir, path string, extensions []string) bool {
	if !domain.HasWatchedExtension(filepath.Base(path), extensions) {
		return false
	}

	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		return false
	}
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if domain.IsSkippedDir(segment) {
			return false
		}
	}
	return true
}

func describeBatch(sourceDir string, paths []string) string {
	if len(paths) == 1 {
		rel, err := filepath.Rel(sourceDir, paths[0])
		if err != nil {
			rel = paths[0]
		}
		return "changed: " + filepath.ToSlash(rel)
	}
	return fmt.Sprintf("%d source files changed", len(paths))
}
