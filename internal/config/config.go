package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the project layout. Every entry except Root is relative to
// Root unless given as an absolute path.
type Paths struct {
	Root       string `toml:"root"`
	ContentDir string `toml:"content_dir"`
	DataFile   string `toml:"data_file"`
	ReadmeFile string `toml:"readme_file"`
	LockFile   string `toml:"lock_file"`
}

// Content describes the content folder convention.
type Content struct {
	LinkedInDir          string `toml:"linkedin_dir"`
	YouTubeDir           string `toml:"youtube_dir"`
	NameFile             string `toml:"name_file"`
	URLFile              string `toml:"url_file"`
	TagsFile             string `toml:"tags_file"`
	ArchiveFile          string `toml:"archive_file"`
	URLPlaceholderPrefix string `toml:"url_placeholder_prefix"`
	DataVariable         string `toml:"data_variable"`
}

// Badge overrides how a tag is rendered in the README topic badges.
type Badge struct {
	Label     string `toml:"label"`
	Color     string `toml:"color"`
	Alt       string `toml:"alt"`
	Logo      string `toml:"logo"`
	LogoColor string `toml:"logo_color"`
}

// Readme contains README badge settings. Entries extend the built-in badge
// table; TagOrder, when set, replaces the built-in priority order.
type Readme struct {
	TagOrder []string         `toml:"tag_order"`
	Badges   map[string]Badge `toml:"badges"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for contentindex.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Content Content `toml:"content"`
	Readme  Readme  `toml:"readme"`
	Logging Logging `toml:"logging"`
}

// Load locates, parses, and validates a configuration file. An explicit path
// that does not exist is an error; without one, ProjectConfigName in the
// working directory is used when present and defaults otherwise.
func Load(path string) (*Config, string, bool, error) {
	if err := loadEnvFile(); err != nil {
		return nil, "", false, err
	}

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func loadEnvFile() error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s not found", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs(ProjectConfigName)
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return projectPath, false, nil
}

// ContentRoot returns the absolute directory holding the platform folders.
func (c *Config) ContentRoot() string {
	return c.resolve(c.Paths.ContentDir)
}

// PlatformDir returns the absolute directory for a platform sub-folder name.
func (c *Config) PlatformDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ContentRoot(), dir)
}

// DataFilePath returns the absolute path of the generated data file.
func (c *Config) DataFilePath() string {
	return c.resolve(c.Paths.DataFile)
}

// ReadmePath returns the absolute path of the README to synchronize.
func (c *Config) ReadmePath() string {
	return c.resolve(c.Paths.ReadmeFile)
}

// LockPath returns the absolute path of the run lock file.
func (c *Config) LockPath() string {
	return c.resolve(c.Paths.LockFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Paths.Root, p)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
