package view

import (
	"maps"
	"slices"
)

// State is the visible pipeline state. Exactly one applies at a time.
type State int

const (
	StateIdle State = iota
	StateWaiting
	StateFound
	StateNotFound
	StateError
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateFound:
		return "FOUND"
	case StateNotFound:
		return "NOT_FOUND"
	case StateError:
		return "ERROR"
	default:
		return "IDLE"
	}
}

// Banner is a message block cloned into the banner container.
type Banner string

const (
	BannerNotFound Banner = "not-found"
	BannerError    Banner = "error"
)

// Model is the widget's visible surface.
type Model struct {
	State State

	WaitingVisible  bool
	MovieVisible    bool
	ExtendedVisible bool
	PlotExpanded    bool

	ImageSrc string
	// Text holds the displayed text of text elements.
	Text map[string]string
	// Href holds the target of link elements.
	Href map[string]string
	// Banners is the banner container in insertion order.
	Banners []Banner
}

func newModel() Model {
	return Model{
		State: StateIdle,
		Text:  make(map[string]string),
		Href:  make(map[string]string),
	}
}

// clone returns a deep copy safe to hand to a renderer
func (m Model) clone() Model {
	c := m
	c.Text = maps.Clone(m.Text)
	c.Href = maps.Clone(m.Href)
	c.Banners = slices.Clone(m.Banners)
	return c
}

// BannerCount returns how many instances of b are in the container.
func (m Model) BannerCount(b Banner) int {
	n := 0
	for _, v := range m.Banners {
		if v == b {
			n++
		}
	}
	return n
}

func (m *Model) removeBanner(b Banner) {
	m.Banners = slices.DeleteFunc(m.Banners, func(v Banner) bool { return v == b })
}

// insertBanner clones a fresh banner in after removing the previous one.
func (m *Model) insertBanner(b Banner) {
	m.removeBanner(b)
	m.Banners = append(m.Banners, b)
}

// Snapshot is a copy of the model paired with its layout.
type Snapshot struct {
	Model
	Layout Layout
}
