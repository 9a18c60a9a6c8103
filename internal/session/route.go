package session

import (
	"net/url"
	"strings"
)

const detailPrefix = "/tutorial/"

// Path renders the current route: "/" or "/tutorial/<id>".
func (s *State) Path() string {
	if s.view == ViewDetail {
		return detailPrefix + url.PathEscape(s.itemID)
	}
	return "/"
}

// Navigate routes to path. "/" (or "") shows the listing; "/tutorial/<id>"
// selects an item. Any other path is treated as a detail route with an
// unresolvable id so it lands on the not-found state.
func (s *State) Navigate(path string) {
	if path == "" || path == "/" {
		s.Back()
		return
	}

	id, ok := strings.CutPrefix(path, detailPrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		s.SelectItem("")
		return
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	s.SelectItem(id)
}
