package readme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"contentindex/internal/content"
	"contentindex/internal/failure"
	"contentindex/internal/fileutil"
)

// Marker keys managed in the README.
const (
	KeyLinkedInCount = "LINKEDIN_COUNT"
	KeyYouTubeCount  = "YOUTUBE_COUNT"
	KeyTotalBadge    = "TOTAL_BADGE"
	KeyTotalCount    = "TOTAL_COUNT"
	KeyTopicBadges   = "TOPIC_BADGES"
)

// Stats are the values written into the README.
type Stats struct {
	LinkedIn int
	YouTube  int
	Total    int
	Tags     map[string]struct{}
}

// StatsFor computes README stats from items.
func StatsFor(items []content.Item) Stats {
	counts := content.CountByPlatform(items)
	return Stats{
		LinkedIn: counts[content.PlatformLinkedIn],
		YouTube:  counts[content.PlatformYouTube],
		Total:    len(items),
		Tags:     content.TagSet(items),
	}
}

// Apply substitutes every managed marker in doc.
func Apply(doc string, stats Stats, catalog *Catalog) (string, error) {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	inline := []struct {
		key   string
		value string
	}{
		{KeyLinkedInCount, strconv.Itoa(stats.LinkedIn)},
		{KeyYouTubeCount, strconv.Itoa(stats.YouTube)},
		{KeyTotalBadge, TotalBadge(stats.Total)},
		{KeyTotalCount, strconv.Itoa(stats.Total)},
	}
	var err error
	for _, m := range inline {
		if doc, err = ReplaceInline(doc, m.key, m.value); err != nil {
			return "", err
		}
	}
	return ReplaceBlock(doc, KeyTopicBadges, catalog.TopicBadges(stats.Tags))
}

// Read returns the README at path. A missing file is a
// failure.ErrMissingFile error.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", failure.Wrap(failure.ErrMissingFile, "readme", "read", "README file not found: "+path, nil)
		}
		return "", fmt.Errorf("read readme: %w", err)
	}
	return string(data), nil
}

// Write replaces the README at path with doc.
func Write(path, doc string) error {
	if err := fileutil.WriteFileAtomic(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write readme %s: %w", path, err)
	}
	return nil
}
