package content

import "fmt"

// Platform identifies where a content item was published.
type Platform string

const (
	PlatformLinkedIn Platform = "linkedin"
	PlatformYouTube  Platform = "youtube"
)

// Platforms lists every platform in scan order.
var Platforms = []Platform{PlatformLinkedIn, PlatformYouTube}

// ParsePlatform converts a string into a known Platform.
func ParsePlatform(value string) (Platform, error) {
	for _, p := range Platforms {
		if string(p) == value {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", value)
}

// Label returns the display name of the platform.
func (p Platform) Label() string {
	switch p {
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformYouTube:
		return "YouTube"
	default:
		return string(p)
	}
}

// Item is one post or session extracted from a content folder. Field order
// determines the key order of the emitted JSON.
type Item struct {
	ID          string   `json:"id" validate:"required"`
	Platform    Platform `json:"platform" validate:"required,oneof=linkedin youtube"`
	Title       string   `json:"title" validate:"required"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags" validate:"dive,required"`
	DownloadURL *string  `json:"download_url"`
}

// HasDownload reports whether the item ships a downloadable archive.
func (i Item) HasDownload() bool {
	return i.DownloadURL != nil && *i.DownloadURL != ""
}

// CountByPlatform returns the number of items per platform.
func CountByPlatform(items []Item) map[Platform]int {
	counts := make(map[Platform]int, len(Platforms))
	for _, p := range Platforms {
		counts[p] = 0
	}
	for _, item := range items {
		counts[item.Platform]++
	}
	return counts
}

// TagSet returns every distinct tag across items.
func TagSet(items []Item) map[string]struct{} {
	tags := make(map[string]struct{})
	for _, item := range items {
		for _, tag := range item.Tags {
			tags[tag] = struct{}{}
		}
	}
	return tags
}
