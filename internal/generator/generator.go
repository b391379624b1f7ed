package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"contentindex/internal/config"
	"contentindex/internal/content"
	"contentindex/internal/dataset"
	"contentindex/internal/failure"
	"contentindex/internal/logging"
	"contentindex/internal/readme"
)

// Summary describes the outcome of a run.
type Summary struct {
	RunID         string
	Items         []content.Item
	Counts        map[content.Platform]int
	Total         int
	Tags          []string
	DataFile      string
	ReadmeFile    string
	ReadmeChanged bool
	DryRun        bool
}

// Generator produces the data file and README updates for one project.
type Generator struct {
	cfg     *config.Config
	logger  *slog.Logger
	scanner *content.Scanner
	catalog *readme.Catalog
}

// New returns a generator for cfg.
func New(cfg *config.Config, logger *slog.Logger) *Generator {
	logger = logging.NewComponentLogger(logger, "generator")
	return &Generator{
		cfg:     cfg,
		logger:  logger,
		scanner: content.NewScannerFromConfig(cfg, logger),
		catalog: readme.CatalogFromConfig(cfg),
	}
}

// Collect scans every platform and validates the result.
func (g *Generator) Collect(ctx context.Context) ([]content.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items, err := g.scanner.Scan(content.SourcesFromConfig(g.cfg))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		logging.WarnWithContext(g.logger, "no content items found", "content_empty",
			logging.String(logging.FieldPath, g.cfg.ContentRoot()),
			logging.String(logging.FieldErrorHint, "check paths.content_dir and the platform directories"),
			logging.String(logging.FieldImpact, "data file will contain an empty list"))
	}
	if err := content.ValidateItems(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Run performs a full generation.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	summary := g.newSummary(false)
	logger := g.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	lock := flock.New(g.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return summary, fmt.Errorf("acquire run lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return summary, failure.Wrap(failure.ErrConflict, "generator", "lock",
			"another generation holds "+lock.Path(), nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release run lock failed", logging.Error(err))
		}
	}()

	logger.Info("starting content index generation",
		logging.String(logging.FieldPath, g.cfg.ContentRoot()))

	items, doc, err := g.prepare(ctx, &summary)
	if err != nil {
		return summary, err
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if err := dataset.Write(summary.DataFile, g.cfg.Content.DataVariable, items); err != nil {
		return summary, err
	}
	if summary.ReadmeChanged {
		if err := readme.Write(summary.ReadmeFile, doc); err != nil {
			return summary, err
		}
		logger.Info("updated readme", logging.String(logging.FieldPath, summary.ReadmeFile))
	} else {
		logger.Debug("readme already up to date", logging.String(logging.FieldPath, summary.ReadmeFile))
	}

	logger.Info("generated data file",
		logging.String(logging.FieldPath, summary.DataFile),
		logging.Int("item_count", summary.Total),
		logging.Int("linkedin_count", summary.Counts[content.PlatformLinkedIn]),
		logging.Int("youtube_count", summary.Counts[content.PlatformYouTube]))
	return summary, nil
}

// Check runs scan, validation, and README rendering without writing files.
func (g *Generator) Check(ctx context.Context) (Summary, error) {
	summary := g.newSummary(true)
	if _, _, err := g.prepare(ctx, &summary); err != nil {
		return summary, err
	}
	g.logger.Info("content index check passed",
		logging.String(logging.FieldRunID, summary.RunID),
		logging.Int("item_count", summary.Total),
		logging.Bool("readme_stale", summary.ReadmeChanged))
	return summary, nil
}

// prepare collects items and renders the README, filling summary. It fails
// before any output is written.
func (g *Generator) prepare(ctx context.Context, summary *Summary) ([]content.Item, string, error) {
	items, err := g.Collect(ctx)
	if err != nil {
		return nil, "", err
	}
	stats := readme.StatsFor(items)
	summary.Items = items
	summary.Counts = content.CountByPlatform(items)
	summary.Total = stats.Total
	summary.Tags = g.catalog.Sort(stats.Tags)

	current, err := readme.Read(summary.ReadmeFile)
	if err != nil {
		return nil, "", err
	}
	doc, err := readme.Apply(current, stats, g.catalog)
	if err != nil {
		return nil, "", err
	}
	summary.ReadmeChanged = doc != current
	return items, doc, nil
}

func (g *Generator) newSummary(dryRun bool) Summary {
	return Summary{
		RunID:      uuid.NewString(),
		Counts:     content.CountByPlatform(nil),
		DataFile:   g.cfg.DataFilePath(),
		ReadmeFile: g.cfg.ReadmePath(),
		DryRun:     dryRun,
	}
}
