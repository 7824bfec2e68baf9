package page

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/showcase/asset"
)

var (
	// ErrNoSections reports a page without any section
	ErrNoSections = errors.New("page has no sections")
	// ErrDuplicateID reports two sections sharing an id
	ErrDuplicateID = errors.New("duplicate section id")
	// ErrUnknownTarget reports a link to a section that does not exist
	ErrUnknownTarget = errors.New("link target does not exist")
)

// Content is the YAML page description
type Content struct {
	Title    string    `yaml:"title"`
	Logo     string    `yaml:"logo"`
	Nav      []Link    `yaml:"nav"`
	Hero     Hero      `yaml:"hero"`
	Sections []Section `yaml:"sections"`
	Footer   string    `yaml:"footer"`
}

// Link is an in-page anchor
type Link struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Hero is the top banner
type Hero struct {
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
	CTA      Link   `yaml:"cta"`
}

// Section is one scrollable page section
type Section struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	FadeIn bool     `yaml:"fade_in"`
	Body   []string `yaml:"body"`
	Cards  []Card   `yaml:"cards"`
}

// Card is a project card inside a section grid
type Card struct {
	Title string   `yaml:"title"`
	Body  string   `yaml:"body"`
	Tags  []string `yaml:"tags"`
}

// Parse decodes and validates a page description
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the page at path, the built-in page when path is empty
func Load(path string) (*Content, error) {
	if path == "" {
		return Parse([]byte(asset.DefaultPage))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", path, err)
	}
	return c, nil
}

// Validate checks section ids and link targets
func (c *Content) Validate() error {
	if len(c.Sections) == 0 {
		return ErrNoSections
	}
	ids := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: missing id", i)
		}
		if ids[s.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, s.ID)
		}
		ids[s.ID] = true
	}
	links := append([]Link{}, c.Nav...)
	if c.Hero.CTA.Label != "" {
		links = append(links, c.Hero.CTA)
	}
	for _, l := range links {
		if !ids[l.Target] {
			return fmt.Errorf("%w: %q (%s)", ErrUnknownTarget, l.Target, l.Label)
		}
	}
	return nil
}
