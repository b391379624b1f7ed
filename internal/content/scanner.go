package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"contentindex/internal/config"
	"contentindex/internal/fileutil"
	"contentindex/internal/logging"
)

// Layout names the files expected inside a content folder.
type Layout struct {
	NameFile          string
	URLFile           string
	TagsFile          string
	ArchiveFile       string
	PlaceholderPrefix string
}

// Source pairs a platform with the directory holding its content folders.
type Source struct {
	Platform Platform
	Dir      string
}

// Scanner extracts Items from content folders.
type Scanner struct {
	root   string
	layout Layout
	logger *slog.Logger
}

// NewScanner returns a scanner. Download paths are reported relative to root.
func NewScanner(root string, layout Layout, logger *slog.Logger) *Scanner {
	return &Scanner{
		root:   root,
		layout: layout,
		logger: logging.NewComponentLogger(logger, "scanner"),
	}
}

// NewScannerFromConfig builds a scanner using the configured folder layout.
func NewScannerFromConfig(cfg *config.Config, logger *slog.Logger) *Scanner {
	return NewScanner(cfg.Paths.Root, Layout{
		NameFile:          cfg.Content.NameFile,
		URLFile:           cfg.Content.URLFile,
		TagsFile:          cfg.Content.TagsFile,
		ArchiveFile:       cfg.Content.ArchiveFile,
		PlaceholderPrefix: cfg.Content.URLPlaceholderPrefix,
	}, logger)
}

// SourcesFromConfig returns the platform directories in scan order.
func SourcesFromConfig(cfg *config.Config) []Source {
	return []Source{
		{Platform: PlatformLinkedIn, Dir: cfg.PlatformDir(cfg.Content.LinkedInDir)},
		{Platform: PlatformYouTube, Dir: cfg.PlatformDir(cfg.Content.YouTubeDir)},
	}
}

// Scan scans every source in order and concatenates the results.
func (s *Scanner) Scan(sources []Source) ([]Item, error) {
	var items []Item
	for _, src := range sources {
		found, err := s.ScanPlatform(src.Dir, src.Platform)
		if err != nil {
			return nil, err
		}
		items = append(items, found...)
	}
	return items, nil
}

// ScanPlatform returns the items of one platform directory sorted by folder
// name. A missing directory yields no items.
func (s *Scanner) ScanPlatform(dir string, platform Platform) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("platform directory not found, skipping",
				logging.String(logging.FieldPlatform, string(platform)),
				logging.String(logging.FieldPath, s.relative(dir)))
			return nil, nil
		}
		return nil, fmt.Errorf("read platform directory %s: %w", dir, err)
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		folder := filepath.Join(dir, entry.Name())
		if !isDir(entry, folder) {
			continue
		}
		if !fileutil.IsFile(filepath.Join(folder, s.layout.NameFile)) {
			logging.WarnWithContext(s.logger, "content folder has no title file, skipping", "content_title_missing",
				logging.String(logging.FieldPath, s.relative(folder)),
				logging.String(logging.FieldErrorHint, "add "+s.layout.NameFile+" to include the folder"),
				logging.String(logging.FieldImpact, "folder is left out of the generated index"))
			continue
		}
		folders = append(folders, entry.Name())
	}
	sort.Strings(folders)

	items := make([]Item, 0, len(folders))
	for _, name := range folders {
		item, ok, err := s.Extract(filepath.Join(dir, name), platform)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}

	s.logger.Info("scanned platform directory",
		logging.String(logging.FieldPlatform, string(platform)),
		logging.String(logging.FieldPath, s.relative(dir)),
		logging.Int("item_count", len(items)))
	return items, nil
}

// Extract reads one content folder. ok is false when the title is empty.
func (s *Scanner) Extract(folder string, platform Platform) (Item, bool, error) {
	title, err := readText(filepath.Join(folder, s.layout.NameFile))
	if err != nil {
		return Item{}, false, err
	}
	if title == "" {
		logging.WarnWithContext(s.logger, "empty title file, skipping", "content_title_empty",
			logging.String(logging.FieldPath, s.relative(folder)),
			logging.String(logging.FieldErrorHint, "write the post title into "+s.layout.NameFile),
			logging.String(logging.FieldImpact, "folder is left out of the generated index"))
		return Item{}, false, nil
	}

	url, err := readText(filepath.Join(folder, s.layout.URLFile))
	if err != nil {
		return Item{}, false, err
	}
	if strings.HasPrefix(url, s.layout.PlaceholderPrefix) {
		url = ""
	}

	tags, err := readTags(filepath.Join(folder, s.layout.TagsFile))
	if err != nil {
		return Item{}, false, err
	}

	item := Item{
		ID:       filepath.Base(folder),
		Platform: platform,
		Title:    title,
		URL:      url,
		Tags:     tags,
	}

	archive := filepath.Join(folder, s.layout.ArchiveFile)
	if fileutil.IsFile(archive) {
		download := s.relative(archive)
		item.DownloadURL = &download
	}

	s.logger.Debug("extracted content folder",
		logging.String("id", item.ID),
		logging.String(logging.FieldPlatform, string(platform)),
		logging.Int("tag_count", len(tags)),
		logging.Bool("has_download", item.HasDownload()))
	return item, true, nil
}

// relative returns path relative to the scanner root using forward slashes.
func (s *Scanner) relative(path string) string {
	if s.root != "" {
		if rel, err := filepath.Rel(s.root, path); err == nil && !outsideRoot(rel) {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(path)
}

// isDir reports whether entry is a directory, following symlinks.
func isDir(entry os.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func outsideRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

var lineBreaks = regexp.MustCompile(`\r\n|\r|\n`)

func readText(path string) (string, error) {
	data, ok, err := fileutil.ReadOptional(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !ok {
		return "", nil
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	return strings.TrimSpace(text), nil
}

func readTags(path string) ([]string, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	tags := []string{}
	if text == "" {
		return tags, nil
	}
	for _, line := range lineBreaks.Split(text, -1) {
		if tag := strings.TrimSpace(line); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
