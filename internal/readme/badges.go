package readme

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"contentindex/internal/config"
)

const fallbackBadgeColor = "6C757D"

// Badge describes a shields.io badge for a tag.
type Badge struct {
	Label     string
	Color     string
	Alt       string
	Logo      string
	LogoColor string
}

// DefaultTagOrder is the priority order of known tags in the topic badges.
var DefaultTagOrder = []string{
	"excel",
	"power-query",
	"m-code",
	"formulas",
	"dynamic-arrays",
	"charts",
	"data-analysis",
	"data-cleaning",
}

// DefaultBadges is the built-in badge table keyed by tag.
var DefaultBadges = map[string]Badge{
	"excel":          {Label: "Excel", Color: "217346", Alt: "Excel", Logo: "microsoftexcel", LogoColor: "white"},
	"power-query":    {Label: "Power_Query", Color: "F2C811", Alt: "Power Query", LogoColor: "black"},
	"m-code":         {Label: "M_Code", Color: "8E44AD", Alt: "M Code", LogoColor: "white"},
	"formulas":       {Label: "Formulas", Color: "27AE60", Alt: "Formulas", LogoColor: "white"},
	"dynamic-arrays": {Label: "Dynamic_Arrays", Color: "4472C4", Alt: "Dynamic Arrays", LogoColor: "white"},
	"charts":         {Label: "Charts", Color: "E67E22", Alt: "Charts", LogoColor: "white"},
	"data-analysis":  {Label: "Data_Analysis", Color: "2E86C1", Alt: "Data Analysis", LogoColor: "white"},
	"data-cleaning":  {Label: "Data_Cleaning", Color: "1ABC9C", Alt: "Data Cleaning", LogoColor: "white"},
}

// Catalog resolves tags to badges and orders them for display.
type Catalog struct {
	order  []string
	rank   map[string]int
	badges map[string]Badge
	upper  cases.Caser
	lower  cases.Caser
}

// NewCatalog builds a catalog from a priority order and badge table.
func NewCatalog(order []string, badges map[string]Badge) *Catalog {
	rank := make(map[string]int, len(order))
	for i, tag := range order {
		if _, exists := rank[tag]; !exists {
			rank[tag] = i
		}
	}
	return &Catalog{
		order:  order,
		rank:   rank,
		badges: badges,
		upper:  cases.Upper(language.Und),
		lower:  cases.Lower(language.Und),
	}
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultTagOrder, DefaultBadges)
}

// CatalogFromConfig layers configured badges over the built-in table. A
// configured tag order replaces the built-in one.
func CatalogFromConfig(cfg *config.Config) *Catalog {
	order := DefaultTagOrder
	if len(cfg.Readme.TagOrder) > 0 {
		order = cfg.Readme.TagOrder
	}
	badges := make(map[string]Badge, len(DefaultBadges)+len(cfg.Readme.Badges))
	for tag, badge := range DefaultBadges {
		badges[tag] = badge
	}
	for tag, b := range cfg.Readme.Badges {
		alt := b.Alt
		if alt == "" {
			alt = strings.ReplaceAll(b.Label, "_", " ")
		}
		badges[tag] = Badge{Label: b.Label, Color: b.Color, Alt: alt, Logo: b.Logo, LogoColor: b.LogoColor}
	}
	return NewCatalog(order, badges)
}

// Sort returns known tags in priority order followed by the remaining tags
// alphabetically.
func (c *Catalog) Sort(tags map[string]struct{}) []string {
	known := make([]string, 0, len(tags))
	unknown := make([]string, 0, len(tags))
	for tag := range tags {
		if _, ok := c.rank[tag]; ok {
			known = append(known, tag)
		} else {
			unknown = append(unknown, tag)
		}
	}
	sort.Slice(known, func(i, j int) bool { return c.rank[known[i]] < c.rank[known[j]] })
	sort.Strings(unknown)
	return append(known, unknown...)
}

// Badge returns the badge for tag, deriving one for unknown tags.
func (c *Catalog) Badge(tag string) Badge {
	if badge, ok := c.badges[tag]; ok {
		return badge
	}
	words := strings.Split(tag, "-")
	for i, word := range words {
		words[i] = c.capitalize(word)
	}
	return Badge{
		Label: strings.Join(words, "_"),
		Color: fallbackBadgeColor,
		Alt:   strings.Join(words, " "),
	}
}

// capitalize uppercases the first rune of word and lowercases the rest.
func (c *Catalog) capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return c.upper.String(word[:size]) + c.lower.String(word[size:])
}

// BadgeHTML renders one <img> badge for tag.
func (c *Catalog) BadgeHTML(tag string) string {
	badge := c.Badge(tag)
	src := fmt.Sprintf("https://img.shields.io/badge/%s-%s?style=flat-square", badge.Label, badge.Color)
	if badge.Logo != "" {
		src += "&logo=" + badge.Logo
	}
	if badge.LogoColor != "" {
		src += "&logoColor=" + badge.LogoColor
	}
	return fmt.Sprintf(`<img src="%s" alt="%s">`, src, badge.Alt)
}

// TopicBadges renders the topic badge block: one badge per line, each but the
// last followed by &nbsp;. No tags yields an empty string.
func (c *Catalog) TopicBadges(tags map[string]struct{}) string {
	sorted := c.Sort(tags)
	lines := make([]string, len(sorted))
	for i, tag := range sorted {
		lines[i] = c.BadgeHTML(tag)
		if i < len(sorted)-1 {
			lines[i] += "&nbsp;"
		}
	}
	return strings.Join(lines, "\n")
}

// TotalBadge renders the large total-count badge.
func TotalBadge(total int) string {
	return fmt.Sprintf(`<img src="https://img.shields.io/badge/Total-%d-FFD100?style=for-the-badge" alt="Total">`, total)
}
