package aurora

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex builds an opaque Color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
// An empty rectangle intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether r has a negative extent on either axis.
func (r Rect) Empty() bool {
	return r.Width < 0 || r.Height < 0
}

// Grow expands r by m on every side. A negative m shrinks it; a rectangle
// shrunk past zero collapses to a point at its center.
func (r Rect) Grow(m float64) Rect {
	g := Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
	if g.Width < 0 {
		g.X = r.X + r.Width/2
		g.Width = 0
	}
	if g.Height < 0 {
		g.Y = r.Y + r.Height/2
		g.Height = 0
	}
	return g
}

// Direction is the scroll direction derived from consecutive samples.
type Direction uint8

const (
	DirectionNone Direction = iota // no sample compared yet
	DirectionUp                    // offset strictly decreased
	DirectionDown                  // offset strictly increased
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// SectionID names one of the page's navigable sections.
type SectionID string

const (
	SectionHome       SectionID = "home"
	SectionAbout      SectionID = "about"
	SectionSkills     SectionID = "skills"
	SectionProjects   SectionID = "projects"
	SectionExperience SectionID = "experience"
	SectionContact    SectionID = "contact"
)

// Sections lists every section in declaration order. Navigation items map
// 1:1 onto this list.
var Sections = []SectionID{
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionContact,
}

// ParseSectionID returns the SectionID for s, or false when s is not one of
// the known sections.
func ParseSectionID(s string) (SectionID, bool) {
	id := SectionID(s)
	return id, id.Valid()
}

// Valid reports whether id is one of the known sections.
func (id SectionID) Valid() bool {
	return id.Index() >= 0
}

// Index returns the declaration index of id, or -1 if unknown.
func (id SectionID) Index() int {
	for i, s := range Sections {
		if s == id {
			return i
		}
	}
	return -1
}

// Title returns the display label used by the navigation menu.
func (id SectionID) Title() string {
	switch id {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionExperience:
		return "Experience"
	case SectionContact:
		return "Contact"
	default:
		return ""
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
