package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Folder describes a content folder to materialize on disk. Empty fields are
// not written, except Title which is written when WriteTitle is true.
type Folder struct {
	Name       string
	Title      string
	WriteTitle bool
	URL        string
	Tags       []string
	Archive    bool
}

// Post is shorthand for a folder with a title file and optional tags.
func Post(name, title string, tags ...string) Folder {
	return Folder{Name: name, Title: title, WriteTitle: true, Tags: tags}
}

// WriteFolders creates each folder under dir using the default file names.
func WriteFolders(t testing.TB, dir string, folders ...Folder) {
	t.Helper()

	for _, f := range folders {
		folder := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(folder, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", folder, err)
		}
		if f.WriteTitle {
			WriteText(t, filepath.Join(folder, "name.txt"), f.Title)
		}
		if f.URL != "" {
			WriteText(t, filepath.Join(folder, "url.txt"), f.URL)
		}
		if len(f.Tags) > 0 {
			WriteText(t, filepath.Join(folder, "tags.txt"), strings.Join(f.Tags, "\n")+"\n")
		}
		if f.Archive {
			WriteText(t, filepath.Join(folder, "Files.zip"), "PK")
		}
	}
}

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadText returns the contents of path or fails the test.
func ReadText(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Readme is a README containing every auto marker the generator manages.
const Readme = `# Portfolio

LinkedIn posts: <!-- AUTO:LINKEDIN_COUNT -->0<!-- /AUTO:LINKEDIN_COUNT -->
YouTube sessions: <!-- AUTO:YOUTUBE_COUNT -->0<!-- /AUTO:YOUTUBE_COUNT -->

<!-- AUTO:TOTAL_BADGE --><!-- /AUTO:TOTAL_BADGE -->
Total: <!-- AUTO:TOTAL_COUNT -->0<!-- /AUTO:TOTAL_COUNT -->

## Topics
<!-- AUTO:TOPIC_BADGES_START -->
<!-- AUTO:TOPIC_BADGES_END -->
`
