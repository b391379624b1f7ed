package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"contentindex/internal/content"
	"contentindex/internal/dataset"
)

func TestRenderMatchesSiteFormat(t *testing.T) {
	download := "content/linkedin/0001/Files.zip"
	items := []content.Item{
		{
			ID:          "0001",
			Platform:    content.PlatformLinkedIn,
			Title:       "Benford's Law & <Charts> – Café",
			URL:         "",
			Tags:        []string{"excel", "charts"},
			DownloadURL: &download,
		},
		{
			ID:       "s01",
			Platform: content.PlatformYouTube,
			Title:    "Session",
			URL:      "https://youtu.be/abc?t=1&x=2",
		},
	}

	got, err := dataset.Render("", items)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `window.CONTENT_DATA = [
  {
    "id": "0001",
    "platform": "linkedin",
    "title": "Benford's Law & <Charts> – Café",
    "url": "",
    "tags": [
      "excel",
      "charts"
    ],
    "download_url": "content/linkedin/0001/Files.zip"
  },
  {
    "id": "s01",
    "platform": "youtube",
    "title": "Session",
    "url": "https://youtu.be/abc?t=1&x=2",
    "tags": [],
    "download_url": null
  }
];`
	if string(got) != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
	if items[1].Tags != nil {
		t.Fatal("expected Render not to mutate input items")
	}
}

func TestRenderEmptyList(t *testing.T) {
	got, err := dataset.Render("ITEMS", nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(got) != "window.ITEMS = [];" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWriteCreatesOutputDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "js", "data.js")
	if err := dataset.Write(path, dataset.DefaultVariable, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "window.CONTENT_DATA = [];" {
		t.Fatalf("unexpected file contents %q", data)
	}
}
