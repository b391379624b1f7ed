package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeContent()
	c.normalizeReadme()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("CONTENTINDEX_ROOT"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Root = value
	}
	root := strings.TrimSpace(c.Paths.Root)
	if root == "" {
		root = defaultRoot
	}
	var err error
	if c.Paths.Root, err = expandPath(root); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	c.Paths.ContentDir = fallback(c.Paths.ContentDir, defaultContentDir)
	c.Paths.DataFile = fallback(c.Paths.DataFile, defaultDataFile)
	c.Paths.ReadmeFile = fallback(c.Paths.ReadmeFile, defaultReadmeFile)
	c.Paths.LockFile = fallback(c.Paths.LockFile, defaultLockFile)
	return nil
}

func (c *Config) normalizeContent() {
	c.Content.LinkedInDir = fallback(c.Content.LinkedInDir, defaultLinkedInDir)
	c.Content.YouTubeDir = fallback(c.Content.YouTubeDir, defaultYouTubeDir)
	c.Content.NameFile = fallback(c.Content.NameFile, defaultNameFile)
	c.Content.URLFile = fallback(c.Content.URLFile, defaultURLFile)
	c.Content.TagsFile = fallback(c.Content.TagsFile, defaultTagsFile)
	c.Content.ArchiveFile = fallback(c.Content.ArchiveFile, defaultArchiveFile)
	c.Content.DataVariable = fallback(c.Content.DataVariable, defaultDataVariable)
	// An explicitly empty prefix would mark every url as a placeholder.
	c.Content.URLPlaceholderPrefix = fallback(c.Content.URLPlaceholderPrefix, defaultURLPlaceholderPrefix)
}

func (c *Config) normalizeReadme() {
	if len(c.Readme.TagOrder) > 0 {
		order := make([]string, 0, len(c.Readme.TagOrder))
		seen := make(map[string]struct{}, len(c.Readme.TagOrder))
		for _, tag := range c.Readme.TagOrder {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, exists := seen[tag]; exists {
				continue
			}
			seen[tag] = struct{}{}
			order = append(order, tag)
		}
		c.Readme.TagOrder = order
	}
	if len(c.Readme.Badges) == 0 {
		return
	}
	badges := make(map[string]Badge, len(c.Readme.Badges))
	for tag, badge := range c.Readme.Badges {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		badge.Label = strings.TrimSpace(badge.Label)
		badge.Color = strings.TrimPrefix(strings.TrimSpace(badge.Color), "#")
		badge.Alt = strings.TrimSpace(badge.Alt)
		badge.Logo = strings.TrimSpace(badge.Logo)
		badge.LogoColor = strings.TrimSpace(badge.LogoColor)
		badges[tag] = badge
	}
	c.Readme.Badges = badges
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("CONTENTINDEX_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	if value, ok := os.LookupEnv("CONTENTINDEX_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}
