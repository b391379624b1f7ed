package config

const (
	defaultRoot                 = "."
	defaultContentDir           = "content"
	defaultDataFile             = "js/data.js"
	defaultReadmeFile           = "README.md"
	defaultLockFile             = ".contentindex.lock"
	defaultLinkedInDir          = "linkedin"
	defaultYouTubeDir           = "youtube"
	defaultNameFile             = "name.txt"
	defaultURLFile              = "url.txt"
	defaultTagsFile             = "tags.txt"
	defaultArchiveFile          = "Files.zip"
	defaultURLPlaceholderPrefix = "TODO"
	defaultDataVariable         = "CONTENT_DATA"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"

	// ProjectConfigName is the config file picked up from the working
	// directory when no explicit path is given.
	ProjectConfigName = "contentindex.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:       defaultRoot,
			ContentDir: defaultContentDir,
			DataFile:   defaultDataFile,
			ReadmeFile: defaultReadmeFile,
			LockFile:   defaultLockFile,
		},
		Content: Content{
			LinkedInDir:          defaultLinkedInDir,
			YouTubeDir:           defaultYouTubeDir,
			NameFile:             defaultNameFile,
			URLFile:              defaultURLFile,
			TagsFile:             defaultTagsFile,
			ArchiveFile:          defaultArchiveFile,
			URLPlaceholderPrefix: defaultURLPlaceholderPrefix,
			DataVariable:         defaultDataVariable,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
