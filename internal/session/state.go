// Package session holds the per-session navigation and selection state.
//
// State is the single source of truth for what the user is looking at: the
// active category, media type and search text, and the current route. It is
// owned by exactly one UI loop and is not goroutine-safe; every mutation goes
// through a named operation so the route transitions stay consistent.
package session

import (
	"fmt"
	"strings"

	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/filter"
)

// View identifies which logical route is active.
type View int

const (
	ViewListing View = iota
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewListing:
		return "listing"
	case ViewDetail:
		return "detail"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Activation identifies one visit to a detail view. Results of async work
// started for an activation must only be applied while it is still current.
type Activation uint64

// State is the mutable selection for one session.
type State struct {
	category string
	typ      string
	query    string

	view       View
	itemID     string
	activation Activation

	// onScrollReset runs before any route change caused by a filter change.
	onScrollReset func()
}

// New returns the default state: all categories, all types, empty search,
// listing view.
func New() *State {
	return &State{
		category: catalog.AllCategory,
		typ:      filter.AllTypes,
		view:     ViewListing,
	}
}

// OnScrollReset registers the hook that resets the listing scroll position.
func (s *State) OnScrollReset(fn func()) {
	s.onScrollReset = fn
}

func (s *State) Category() string { return s.category }
func (s *State) Type() string { return s.typ }
func (s *State) Query() string { return s.query }
func (s *State) View() View { return s.view }
func (s *State) ItemID() string { return s.itemID }
func (s *State) Activation() Activation { return s.activation }

// SetSearch updates the search text. Searching always shows results, so a
// detail view is left for the listing.
func (s *State) SetSearch(query string) {
	s.query = query
	s.showListing()
}

// SetCategory updates the category filter, resets scroll, then routes to
// the listing.
func (s *State) SetCategory(id string) {
	s.category = id
	s.resetScroll()
	s.showListing()
}

// PickCategory is the sidebar action: select the category and drop any
// media-type filter.
func (s *State) PickCategory(id string) {
	s.SetCategory(id)
	s.typ = filter.AllTypes
}

// SetType toggles the media-type filter. Selecting the active type again
// returns to all types. Scroll resets before the route changes.
func (s *State) SetType(typ string) {
	if typ == s.typ {
		s.typ = filter.AllTypes
	} else {
		s.typ = typ
	}
	s.resetScroll()
	s.showListing()
}

// ClearFilters restores the default category, type and search text.
func (s *State) ClearFilters() {
	s.query = ""
	s.category = catalog.AllCategory
	s.typ = filter.AllTypes
}

// SelectItem routes to the detail view for id and starts a new activation.
// The id is not validated here; Resolve reports unknown ids as not found.
func (s *State) SelectItem(id string) Activation {
	s.view = ViewDetail
	s.itemID = id
	s.activation++
	return s.activation
}

// Back returns to the listing, ending the current activation.
func (s *State) Back() {
	s.showListing()
}

// IsCurrent reports whether a detail activation is still the one on screen.
func (s *State) IsCurrent(a Activation) bool {
	return s.view == ViewDetail && s.activation == a
}

func (s *State) showListing() {
	if s.view == ViewListing {
		return
	}
	s.view = ViewListing
	s.itemID = ""
	// Leaving detail supersedes its activation.
	s.activation++
}

func (s *State) resetScroll() {
	if s.onScrollReset != nil {
		s.onScrollReset()
	}
}

// Visible applies the current filters to items.
func (s *State) Visible(items []catalog.Item) []catalog.Item {
	return filter.Apply(items, s.category, s.typ, s.query)
}

// Detail is the outcome of resolving the detail route.
type Detail struct {
	Item     catalog.Item
	NotFound bool
}

// Resolve looks up the routed item. An unknown identifier yields the
// not-found terminal state rather than an error. Resolve on the listing view
// returns NotFound as well.
func (s *State) Resolve(c *catalog.Catalog) Detail {
	if s.view != ViewDetail {
		return Detail{NotFound: true}
	}
	item, err := c.Lookup(s.itemID)
	if err != nil {
		return Detail{NotFound: true}
	}
	return Detail{Item: item}
}

// Heading is the listing title: "All Content" or "Category: Dev".
func (s *State) Heading() string {
	if s.category == catalog.AllCategory {
		return "All Content"
	}
	r := []rune(s.category)
	if len(r) == 0 {
		return "Category: "
	}
	return "Category: " + strings.ToUpper(string(r[0])) + string(r[1:])
}

// Subheading describes the search, if any.
func (s *State) Subheading() string {
	if s.query != "" {
		return `Showing results for "` + s.query + `"`
	}
	return "Explore our latest tutorials and resources"
}

// ResultLabel formats a result count: "1 Result", "3 Results".
func ResultLabel(n int) string {
	if n == 1 {
		return "1 Result"
	}
	return fmt.Sprintf("%d Results", n)
}
