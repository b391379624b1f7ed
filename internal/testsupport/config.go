package testsupport

import (
	"path/filepath"
	"testing"

	"contentindex/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t          testing.TB
	cfg        *config.Config
	seedReadme bool
}

// NewConfig produces a config rooted at a fresh temp directory. The README is
// seeded with every auto marker unless WithoutReadme is given.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Paths.Root = t.TempDir()

	builder := &configBuilder{t: t, cfg: &cfgVal, seedReadme: true}
	for _, opt := range opts {
		opt(builder)
	}
	if builder.seedReadme {
		WriteText(t, cfgVal.ReadmePath(), Readme)
	}
	return builder.cfg
}

// WithoutReadme skips seeding the README.
func WithoutReadme() ConfigOption {
	return func(b *configBuilder) {
		b.seedReadme = false
	}
}

// WithLinkedIn writes content folders into the LinkedIn platform directory.
func WithLinkedIn(folders ...Folder) ConfigOption {
	return func(b *configBuilder) {
		WriteFolders(b.t, b.cfg.PlatformDir(b.cfg.Content.LinkedInDir), folders...)
	}
}

// WithYouTube writes content folders into the YouTube platform directory.
func WithYouTube(folders ...Folder) ConfigOption {
	return func(b *configBuilder) {
		WriteFolders(b.t, b.cfg.PlatformDir(b.cfg.Content.YouTubeDir), folders...)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Clean(cfg.Paths.Root)
}
