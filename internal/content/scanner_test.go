package content_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"contentindex/internal/content"
	"contentindex/internal/logging"
	"contentindex/internal/testsupport"
)

func newScanner(t *testing.T, root string) (*content.Scanner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return content.NewScanner(root, content.Layout{
		NameFile:          "name.txt",
		URLFile:           "url.txt",
		TagsFile:          "tags.txt",
		ArchiveFile:       "Files.zip",
		PlaceholderPrefix: "TODO",
	}, logger), &buf
}

func TestScanPlatformExtractsSortedItems(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "content", "linkedin")
	testsupport.WriteFolders(t, dir,
		testsupport.Folder{Name: "0002", Title: "Benford's Law", WriteTitle: true, URL: "https://example.com/p/2", Tags: []string{"excel", "data-analysis"}, Archive: true},
		testsupport.Post("0001", "  Nested IFs in Power Query \n", "power-query", "m-code"),
	)

	scanner, _ := newScanner(t, root)
	items, err := scanner.ScanPlatform(dir, content.PlatformLinkedIn)
	if err != nil {
		t.Fatalf("ScanPlatform: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "0001" || items[1].ID != "0002" {
		t.Fatalf("expected items sorted by folder name, got %s, %s", items[0].ID, items[1].ID)
	}

	first := items[0]
	if first.Title != "Nested IFs in Power Query" {
		t.Fatalf("expected trimmed title, got %q", first.Title)
	}
	if first.URL != "" {
		t.Fatalf("expected empty url, got %q", first.URL)
	}
	if first.DownloadURL != nil {
		t.Fatalf("expected no download url, got %q", *first.DownloadURL)
	}
	if !reflect.DeepEqual(first.Tags, []string{"power-query", "m-code"}) {
		t.Fatalf("unexpected tags %v", first.Tags)
	}

	second := items[1]
	if second.Platform != content.PlatformLinkedIn {
		t.Fatalf("unexpected platform %q", second.Platform)
	}
	if second.URL != "https://example.com/p/2" {
		t.Fatalf("unexpected url %q", second.URL)
	}
	if !second.HasDownload() || *second.DownloadURL != "content/linkedin/0002/Files.zip" {
		t.Fatalf("unexpected download url %v", second.DownloadURL)
	}
}

func TestScanPlatformSkipsFoldersWithoutTitle(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "youtube")
	testsupport.WriteFolders(t, dir,
		testsupport.Folder{Name: "no-title", URL: "https://example.com", Tags: []string{"excel"}},
		testsupport.Folder{Name: "blank-title", Title: "  \n\t", WriteTitle: true},
		testsupport.Post("ok", "Session"),
	)
	testsupport.WriteText(t, filepath.Join(dir, "stray.txt"), "not a folder")

	scanner, logs := newScanner(t, root)
	items, err := scanner.ScanPlatform(dir, content.PlatformYouTube)
	if err != nil {
		t.Fatalf("ScanPlatform: %v", err)
	}
	if len(items) != 1 || items[0].ID != "ok" {
		t.Fatalf("expected only the titled folder, got %+v", items)
	}
	out := logs.String()
	for _, fragment := range []string{"content_title_missing", "youtube/no-title", "content_title_empty", "youtube/blank-title"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in logs %q", fragment, out)
		}
	}
}

func TestScanPlatformMissingDirectoryIsEmpty(t *testing.T) {
	root := t.TempDir()
	scanner, logs := newScanner(t, root)
	items, err := scanner.ScanPlatform(filepath.Join(root, "absent"), content.PlatformYouTube)
	if err != nil {
		t.Fatalf("ScanPlatform: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
	if !strings.Contains(logs.String(), "platform directory not found") {
		t.Fatalf("expected info log, got %q", logs.String())
	}
}

func TestExtractPlaceholderURLAndTags(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		tagsFile string
		wantURL  string
		wantTags []string
	}{
		{"placeholder", "TODO: add link", "", "", []string{}},
		{"placeholder exact", "TODO", "excel", "", []string{"excel"}},
		{"real url", " https://youtu.be/x \n", "excel\r\n\r\n  charts  \n", "https://youtu.be/x", []string{"excel", "charts"}},
		{"carriage return only", "", "excel\rcharts\r\rpower-query", "", []string{"excel", "charts", "power-query"}},
		{"todo later in value", "https://example.com/TODO", "", "https://example.com/TODO", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			folder := filepath.Join(root, "item")
			testsupport.WriteText(t, filepath.Join(folder, "name.txt"), "Title")
			testsupport.WriteText(t, filepath.Join(folder, "url.txt"), tc.url)
			if tc.tagsFile != "" {
				testsupport.WriteText(t, filepath.Join(folder, "tags.txt"), tc.tagsFile)
			}

			scanner, _ := newScanner(t, root)
			item, ok, err := scanner.Extract(folder, content.PlatformYouTube)
			if err != nil || !ok {
				t.Fatalf("Extract: ok=%v err=%v", ok, err)
			}
			if item.URL != tc.wantURL {
				t.Fatalf("url = %q, want %q", item.URL, tc.wantURL)
			}
			if item.Tags == nil {
				t.Fatal("expected non-nil tags")
			}
			if !reflect.DeepEqual(item.Tags, tc.wantTags) {
				t.Fatalf("tags = %v, want %v", item.Tags, tc.wantTags)
			}
		})
	}
}

func TestScanPlatformFollowsSymlinkedFolders(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "content", "linkedin")
	testsupport.WriteFolders(t, dir, testsupport.Post("0001", "Local"))
	elsewhere := filepath.Join(t.TempDir(), "shared")
	testsupport.WriteFolders(t, elsewhere, testsupport.Post("0002", "Linked"))
	if err := os.Symlink(filepath.Join(elsewhere, "0002"), filepath.Join(dir, "0002")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	testsupport.WriteText(t, filepath.Join(root, "notes.txt"), "not a folder")
	if err := os.Symlink(filepath.Join(root, "notes.txt"), filepath.Join(dir, "notes")); err != nil {
		t.Fatalf("symlink file: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(dir, "dangling")); err != nil {
		t.Fatalf("symlink dangling: %v", err)
	}

	scanner, logs := newScanner(t, root)
	items, err := scanner.ScanPlatform(dir, content.PlatformLinkedIn)
	if err != nil {
		t.Fatalf("ScanPlatform: %v", err)
	}
	var ids []string
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	if want := []string{"0001", "0002"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	if strings.Contains(logs.String(), "content_title_missing") {
		t.Fatalf("symlinked file entries should be ignored without warnings:\n%s", logs.String())
	}
}

func TestExtractDownloadPathForDotPrefixedFolder(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "..drafts")
	testsupport.WriteFolders(t, dir, testsupport.Folder{Name: "0001", Title: "Draft", WriteTitle: true, Archive: true})

	scanner, _ := newScanner(t, root)
	item, ok, err := scanner.Extract(filepath.Join(dir, "0001"), content.PlatformLinkedIn)
	if err != nil || !ok {
		t.Fatalf("Extract: ok=%v err=%v", ok, err)
	}
	if item.DownloadURL == nil || *item.DownloadURL != "..drafts/0001/Files.zip" {
		t.Fatalf("unexpected download url %v", item.DownloadURL)
	}
}

func TestExtractStripsByteOrderMark(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "bom")
	testsupport.WriteText(t, filepath.Join(folder, "name.txt"), "\ufeffXLOOKUP Deep Dive")

	scanner, _ := newScanner(t, root)
	item, ok, err := scanner.Extract(folder, content.PlatformLinkedIn)
	if err != nil || !ok {
		t.Fatalf("Extract: ok=%v err=%v", ok, err)
	}
	if item.Title != "XLOOKUP Deep Dive" {
		t.Fatalf("unexpected title %q", item.Title)
	}
}

func TestScanConcatenatesPlatformsInOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithYouTube(testsupport.Post("s01", "Session")),
		testsupport.WithLinkedIn(testsupport.Post("0002", "B"), testsupport.Post("0001", "A")),
	)
	scanner := content.NewScannerFromConfig(cfg, logging.NewNop())
	items, err := scanner.Scan(content.SourcesFromConfig(cfg))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	var got []string
	for _, item := range items {
		got = append(got, string(item.Platform)+"/"+item.ID)
	}
	want := []string{"linkedin/0001", "linkedin/0002", "youtube/s01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	counts := content.CountByPlatform(items)
	if counts[content.PlatformLinkedIn]+counts[content.PlatformYouTube] != len(items) {
		t.Fatalf("platform counts %v do not add up to %d", counts, len(items))
	}
}
