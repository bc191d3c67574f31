package aurora

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSection is returned when a section id is not one of Sections.
var ErrUnknownSection = errors.New("aurora: unknown section")

// Layout describes the page's sections from top to bottom.
type Layout struct {
	Sections []SectionLayout `yaml:"sections"`
}

// SectionLayout describes one section panel.
type SectionLayout struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title,omitempty"`
	// Height in pixels. Zero means one viewport height.
	Height float64 `yaml:"height,omitempty"`
	// Items is the number of staggered child cards.
	Items int `yaml:"items,omitempty"`
	// Hidden sections are not mounted: they take no space and never
	// resolve as active.
	Hidden bool `yaml:"hidden,omitempty"`
}

// DefaultLayout returns every section at one viewport height.
func DefaultLayout() Layout {
	items := map[SectionID]int{
		SectionHome:       2,
		SectionAbout:      3,
		SectionSkills:     6,
		SectionProjects:   4,
		SectionExperience: 3,
		SectionContact:    4,
	}
	l := Layout{Sections: make([]SectionLayout, 0, len(Sections))}
	for _, id := range Sections {
		l.Sections = append(l.Sections, SectionLayout{ID: string(id), Title: id.Title(), Items: items[id]})
	}
	return l
}

// ParseLayout decodes a YAML layout. Sections with unknown ids are dropped
// and logged; duplicates keep their first occurrence.
func ParseLayout(data []byte) (Layout, error) {
	var raw Layout
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	out := Layout{Sections: make([]SectionLayout, 0, len(raw.Sections))}
	seen := make(map[string]bool, len(raw.Sections))
	for _, s := range raw.Sections {
		id, ok := ParseSectionID(s.ID)
		if !ok {
			logger.Warn("skipping layout section", "id", s.ID, "err", ErrUnknownSection)
			continue
		}
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		if s.Title == "" {
			s.Title = id.Title()
		}
		if s.Height < 0 {
			s.Height = 0
		}
		if s.Items < 0 {
			s.Items = 0
		}
		out.Sections = append(out.Sections, s)
	}
	if len(out.Sections) == 0 {
		return Layout{}, errors.New("parse layout: no known sections")
	}
	return out, nil
}

// ReadLayout reads a YAML layout from path.
func ReadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	return ParseLayout(data)
}

// WriteLayout writes l to path as YAML.
func WriteLayout(l Layout, path string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Boundaries stacks the mounted sections for a viewport of the given height.
func (l Layout) Boundaries(viewportHeight float64) []SectionBoundary {
	out := make([]SectionBoundary, 0, len(l.Sections))
	y := 0.0
	for _, s := range l.Sections {
		if s.Hidden {
			continue
		}
		h := s.Height
		if h <= 0 {
			h = viewportHeight
		}
		out = append(out, SectionBoundary{ID: SectionID(s.ID), Start: y, End: y + h})
		y += h
	}
	return out
}

// ContentHeight returns the total height of the mounted sections.
func (l Layout) ContentHeight(viewportHeight float64) float64 {
	b := l.Boundaries(viewportHeight)
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1].End
}
