// Package bridge orchestrates locating, checking, rebuilding and resolving
// compiled test output for one project root.
package bridge

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

// AdvisoryNotFound is logged when ensure ends without an output directory.
const AdvisoryNotFound = "test build not found, run the rebuild command first"

// Status is the result of locating and checking the output directory.
type Status struct {
	Location domain.OutputLocation
	Found    bool
	Verdict  domain.Verdict
}

// Result is the outcome of an ensure cycle.
type Result struct {
	Status
	Rebuilt bool
	Outcome domain.RebuildOutcome
}

// Engine drives the locate, check, rebuild and re-locate cycle.
type Engine struct {
	locator   ports.OutputLocator
	checker   ports.StalenessChecker
	resolver  ports.ArtifactResolver
	hasher    ports.Hasher
	store     ports.BuildRecordStore
	rebuilder ports.Rebuilder
	tracer    ports.Tracer
	logger    ports.Logger
	now       func() time.Time
}

// NewEngine creates a new Engine.
func NewEngine(
	locator ports.OutputLocator,
	checker ports.StalenessChecker,
	resolver ports.ArtifactResolver,
	hasher ports.Hasher,
	store ports.BuildRecordStore,
	rebuilder ports.Rebuilder,
	tracer ports.Tracer,
	logger ports.Logger,
) *Engine {
	return &Engine{
		locator:   locator,
		checker:   checker,
		resolver:  resolver,
		hasher:    hasher,
		store:     store,
		rebuilder: rebuilder,
		tracer:    tracer,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the clock used to timestamp build records.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Locate finds the compiled test output directory. It never caches a result.
func (e *Engine) Locate(ctx context.Context, ws domain.Workspace) (domain.OutputLocation, bool) {
	return e.locate(ctx, ws, false)
}

func (e *Engine) locate(ctx context.Context, ws domain.Workspace, quiet bool) (domain.OutputLocation, bool) {
	_, span := e.tracer.Start(ctx, "locate")
	defer span.End()

	loc, found := e.locator.Locate(ws.FS, ports.LocateQuery{
		CacheRoot: ws.Config.CacheRoot,
		Project:   ws.Config.Project,
		Order:     ws.Config.VersionOrder,
		Quiet:     quiet,
	})
	span.SetAttribute("found", found)
	if found {
		span.SetAttribute("dir", loc.Dir)
	}
	return loc, found
}

// Check locates the output directory and decides whether it is stale under
// the configured strategy. Check failures are logged and reported as stale.
func (e *Engine) Check(ctx context.Context, ws domain.Workspace) Status {
	loc, found := e.Locate(ctx, ws)
	if !found {
		return Status{Verdict: domain.StaleBecause(domain.ReasonOutputMissing)}
	}

	_, span := e.tracer.Start(ctx, "check")
	defer span.End()
	span.SetAttribute("strategy", string(ws.Config.Strategy))

	verdict, err := e.verdict(ws, loc)
	if err != nil {
		span.RecordError(err)
		e.logger.Warn(fmt.Sprintf("staleness check failed, treating output as stale: %v", err))
		verdict = domain.StaleBecause(domain.ReasonCheckFailed)
	}

	span.SetAttribute("stale", verdict.Stale)
	span.SetAttribute("reason", string(verdict.Reason))
	return Status{Location: loc, Found: true, Verdict: verdict}
}

func (e *Engine) verdict(ws domain.Workspace, loc domain.OutputLocation) (domain.Verdict, error) {
	cfg := ws.Config

	switch cfg.Strategy {
	case domain.StrategyAlways:
		return domain.StaleBecause(domain.ReasonForced), nil
	case domain.StrategyHash:
		return e.hashVerdict(ws, loc)
	default:
		return e.checker.Check(ws.FS, ports.CheckQuery{
			OutputDir:  loc.Dir,
			SourceRoot: cfg.SourceRoot,
			Marker:     cfg.Marker,
			Extensions: cfg.Extensions,
		})
	}
}

func (e *Engine) hashVerdict(ws domain.Workspace, loc domain.OutputLocation) (domain.Verdict, error) {
	if _, err := iofs.Stat(ws.FS, loc.MarkerPath(ws.Config.Marker)); err != nil {
		return domain.StaleBecause(domain.ReasonMarkerMissing), nil
	}

	record, err := e.store.Get(ws.Root)
	if err != nil {
		return domain.Verdict{}, zerr.Wrap(err, domain.ErrStalenessCheckFailed.Error())
	}
	if record == nil || record.Fingerprint == "" {
		return domain.StaleBecause(domain.ReasonNoRecord), nil
	}

	fingerprint, err := e.hasher.Fingerprint(ws.FS, ws.Config.SourceRoot, ws.Config.Extensions)
	if err != nil {
		return domain.Verdict{}, zerr.Wrap(err, domain.ErrStalenessCheckFailed.Error())
	}
	if fingerprint != record.Fingerprint {
		return domain.StaleBecause(domain.ReasonFingerprintChanged), nil
	}
	return domain.Fresh(), nil
}

// Ensure rebuilds when the output is absent or stale, then locates again
// regardless of the rebuild outcome. An absent output after the cycle is
// logged as an advisory warning and is not an error.
func (e *Engine) Ensure(ctx context.Context, ws domain.Workspace) Result {
	return e.ensure(ctx, ws, false)
}

// EnsureForced runs the ensure cycle with an unconditional rebuild.
func (e *Engine) EnsureForced(ctx context.Context, ws domain.Workspace) Result {
	return e.ensure(ctx, ws, true)
}

func (e *Engine) ensure(ctx context.Context, ws domain.Workspace, force bool) Result {
	var status Status
	if force {
		loc, found := e.Locate(ctx, ws)
		status = Status{Location: loc, Found: found, Verdict: domain.StaleBecause(domain.ReasonForced)}
	} else {
		status = e.Check(ctx, ws)
	}

	result := Result{Status: status}
	if !status.Verdict.Stale {
		e.logger.Debug("test output is fresh: " + status.Location.Dir)
		return result
	}

	e.logger.Info(describeStale(status))
	result.Outcome = e.rebuild(ctx, ws)
	result.Rebuilt = true

	// The first lookup already reported an ambiguous project choice.
	result.Location, result.Found = e.locate(ctx, ws, status.Found)
	e.record(ws, result)

	if !result.Found {
		e.logger.Warn(AdvisoryNotFound)
	}
	return result
}

func (e *Engine) rebuild(ctx context.Context, ws domain.Workspace) domain.RebuildOutcome {
	ctx, span := e.tracer.Start(ctx, "rebuild")
	defer span.End()

	outcome := e.rebuilder.Rebuild(ctx, ws.Config.Rebuild)
	span.SetAttribute("exit_code", outcome.ExitCode)
	span.SetAttribute("timed_out", outcome.TimedOut)

	switch {
	case outcome.Err != nil:
		span.RecordError(outcome.Err)
	case !outcome.Succeeded():
		span.RecordError(zerr.With(domain.ErrRebuildFailed, "exit_code", outcome.ExitCode))
	}
	return outcome
}

// record persists the rebuild so the hash strategy and status can read it.
// Failing tests exit non-zero but still produce output, so the fingerprint is
// stored whenever the marker exists. A timed-out run stores none.
func (e *Engine) record(ws domain.Workspace, result Result) {
	rec := domain.BuildRecord{
		Root:      ws.Root,
		OutputDir: result.Location.Dir,
		ExitCode:  result.Outcome.ExitCode,
		TimedOut:  result.Outcome.TimedOut,
		Duration:  result.Outcome.Duration,
		Timestamp: e.now(),
	}

	if e.producedOutput(ws, result) {
		fingerprint, err := e.hasher.Fingerprint(ws.FS, ws.Config.SourceRoot, ws.Config.Extensions)
		if err != nil {
			e.logger.Warn(fmt.Sprintf("failed to fingerprint sources: %v", err))
		}
		rec.Fingerprint = fingerprint
	}

	if err := e.store.Put(ws.Root, rec); err != nil {
		e.logger.Warn(fmt.Sprintf("failed to save build record: %v", err))
	}
}

func (e *Engine) producedOutput(ws domain.Workspace, result Result) bool {
	if !result.Found || result.Outcome.TimedOut || result.Outcome.Err != nil {
		return false
	}
	_, err := iofs.Stat(ws.FS, result.Location.MarkerPath(ws.Config.Marker))
	return err == nil
}

// Resolve maps a source spec path or a ./chunk-*.js import onto a
// slash-separated artifact path inside the output directory. Absolute spec
// paths under the workspace root are made root-relative first.
func (e *Engine) Resolve(ctx context.Context, ws domain.Workspace, loc domain.OutputLocation, id string) (string, bool) {
	_, span := e.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("id", id)

	var (
		artifact string
		ok       bool
	)
	if _, isChunk := domain.ChunkName(id); isChunk {
		artifact, ok = e.resolver.ResolveChunk(ws.FS, loc.Dir, id)
	} else {
		spec := rootRelative(ws.Root, id)
		artifact, ok = e.resolver.ResolveSpec(ws.FS, loc.Dir, spec, ws.Config.SourceRoot, ws.Config.Fallbacks)
	}

	span.SetAttribute("found", ok)
	return artifact, ok
}

// Load ensures the output is fresh, then returns the compiled artifact for id.
func (e *Engine) Load(ctx context.Context, ws domain.Workspace, id string) (string, []byte, error) {
	result := e.Ensure(ctx, ws)
	if !result.Found {
		return "", nil, zerr.With(domain.ErrOutputNotFound, "cache_root", ws.Config.CacheRoot)
	}

	artifact, ok := e.Resolve(ctx, ws, result.Location, id)
	if !ok {
		return "", nil, zerr.With(domain.ErrArtifactNotFound, "id", id)
	}

	data, err := iofs.ReadFile(ws.FS, artifact)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", artifact)
	}
	return artifact, data, nil
}

// rootRelative strips root from an absolute id. Ids outside root are returned
// unchanged.
func rootRelative(root, id string) string {
	if root == "" || !filepath.IsAbs(id) {
		return id
	}
	rel, err := filepath.Rel(root, id)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return id
	}
	return filepath.ToSlash(rel)
}

func describeStale(s Status) string {
	switch s.Verdict.Reason {
	case domain.ReasonOutputMissing:
		return "test output not found, rebuilding"
	case domain.ReasonSourceNewer:
		return fmt.Sprintf("test output is stale (%s changed), rebuilding", s.Verdict.Trigger)
	case domain.ReasonForced:
		return "rebuilding test output"
	default:
		return fmt.Sprintf("test output is stale (%s), rebuilding", s.Verdict.Reason)
	}
}
