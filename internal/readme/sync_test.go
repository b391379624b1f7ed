package readme_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"contentindex/internal/content"
	"contentindex/internal/failure"
	"contentindex/internal/readme"
	"contentindex/internal/testsupport"
)

func sampleItems() []content.Item {
	return []content.Item{
		{ID: "0001", Platform: content.PlatformLinkedIn, Title: "A", Tags: []string{"excel", "charts"}},
		{ID: "0002", Platform: content.PlatformLinkedIn, Title: "B", Tags: []string{"lambda"}},
		{ID: "s01", Platform: content.PlatformYouTube, Title: "C", Tags: []string{"excel"}},
	}
}

func TestStatsFor(t *testing.T) {
	stats := readme.StatsFor(sampleItems())
	if stats.LinkedIn != 2 || stats.YouTube != 1 || stats.Total != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.LinkedIn+stats.YouTube != stats.Total {
		t.Fatal("expected platform counts to add up to total")
	}
	if len(stats.Tags) != 3 {
		t.Fatalf("expected 3 distinct tags, got %v", stats.Tags)
	}
}

func TestApplyUpdatesEveryMarker(t *testing.T) {
	got, err := readme.Apply(testsupport.Readme, readme.StatsFor(sampleItems()), nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, fragment := range []string{
		"<!-- AUTO:LINKEDIN_COUNT -->2<!-- /AUTO:LINKEDIN_COUNT -->",
		"<!-- AUTO:YOUTUBE_COUNT -->1<!-- /AUTO:YOUTUBE_COUNT -->",
		"<!-- AUTO:TOTAL_COUNT -->3<!-- /AUTO:TOTAL_COUNT -->",
		"badge/Total-3-FFD100",
		"<!-- AUTO:TOPIC_BADGES_START -->\n<img src=\"https://img.shields.io/badge/Excel-",
		"alt=\"Lambda\">\n<!-- AUTO:TOPIC_BADGES_END -->",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, got)
		}
	}
	if !strings.HasPrefix(got, "# Portfolio\n") || !strings.HasSuffix(got, "<!-- AUTO:TOPIC_BADGES_END -->\n") {
		t.Fatalf("expected surrounding text to be preserved:\n%s", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	stats := readme.StatsFor(sampleItems())
	once, err := readme.Apply(testsupport.Readme, stats, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	twice, err := readme.Apply(once, stats, nil)
	if err != nil {
		t.Fatalf("Apply second pass: %v", err)
	}
	if once != twice {
		t.Fatalf("expected identical output:\n%s\n---\n%s", once, twice)
	}
}

func TestApplyEmptyTagsLeavesBlankBlock(t *testing.T) {
	got, err := readme.Apply(testsupport.Readme, readme.StatsFor(nil), nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !strings.Contains(got, "<!-- AUTO:TOPIC_BADGES_START -->\n\n<!-- AUTO:TOPIC_BADGES_END -->") {
		t.Fatalf("unexpected badge block:\n%s", got)
	}
}

func TestReadMissingReadme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	_, err := readme.Read(path)
	if !errors.Is(err, failure.ErrMissingFile) {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func TestWriteThenApplyIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	testsupport.WriteText(t, path, testsupport.Readme)
	stats := readme.StatsFor(sampleItems())
	catalog := readme.DefaultCatalog()

	doc, err := readme.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	updated, err := readme.Apply(doc, stats, catalog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if updated == doc {
		t.Fatal("expected first apply to change the README")
	}
	if err := readme.Write(path, updated); err != nil {
		t.Fatalf("Write: %v", err)
	}

	reread, err := readme.Read(path)
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if reread != updated {
		t.Fatal("expected written README to match the applied document")
	}
	again, err := readme.Apply(reread, stats, catalog)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if again != reread {
		t.Fatal("expected second apply to be a no-op")
	}
}

func TestApplyRejectsMissingMarker(t *testing.T) {
	doc := strings.Replace(testsupport.Readme, "<!-- AUTO:TOTAL_COUNT -->0<!-- /AUTO:TOTAL_COUNT -->", "", 1)

	_, err := readme.Apply(doc, readme.StatsFor(sampleItems()), readme.DefaultCatalog())
	if !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
