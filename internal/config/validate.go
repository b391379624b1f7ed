package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"contentindex/internal/failure"
)

// Validate ensures the configuration is usable. Failures carry
// failure.ErrConfiguration.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return failure.Wrap(failure.ErrConfiguration, "config", "validate", "", err)
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.validateContent(); err != nil {
		return err
	}
	if err := c.validateReadme(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateContent() error {
	for key, name := range map[string]string{
		"content.name_file":    c.Content.NameFile,
		"content.url_file":     c.Content.URLFile,
		"content.tags_file":    c.Content.TagsFile,
		"content.archive_file": c.Content.ArchiveFile,
	} {
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return fmt.Errorf("%s must be a plain file name, got %q", key, name)
		}
	}
	if filepath.Clean(c.PlatformDir(c.Content.LinkedInDir)) == filepath.Clean(c.PlatformDir(c.Content.YouTubeDir)) {
		return errors.New("content.linkedin_dir and content.youtube_dir must differ")
	}
	if !isIdentifier(c.Content.DataVariable) {
		return fmt.Errorf("content.data_variable must be a JavaScript identifier, got %q", c.Content.DataVariable)
	}
	return nil
}

func (c *Config) validateReadme() error {
	for tag, badge := range c.Readme.Badges {
		if badge.Label == "" {
			return fmt.Errorf("readme.badges.%s.label must be set", tag)
		}
		if badge.Color == "" {
			return fmt.Errorf("readme.badges.%s.color must be set", tag)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func isIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
