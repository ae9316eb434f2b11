package tui

import (
	"strings"
	"sync"
)

// Route is a parsed editor location: "/<palette>" or
// "/<palette>/scale/<scale>".
type Route struct {
	PaletteID string
	ScaleID   string
}

// ParseRoute splits a navigation path. Unknown shapes yield a zero Route.
func ParseRoute(path string) Route {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return Route{PaletteID: parts[0]}
	case len(parts) == 3 && parts[1] == "scale" && parts[0] != "" && parts[2] != "":
		return Route{PaletteID: parts[0], ScaleID: parts[2]}
	default:
		return Route{}
	}
}

// String formats the route as a navigation path.
func (r Route) String() string {
	switch {
	case r.PaletteID == "":
		return "/"
	case r.ScaleID == "":
		return "/" + r.PaletteID
	default:
		return "/" + r.PaletteID + "/scale/" + r.ScaleID
	}
}

// Router records navigation requests from the history manager until the
// editor picks them up.
type Router struct {
	mu      sync.Mutex
	pending *Route
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Navigate implements history.Navigator.
func (r *Router) Navigate(path string) {
	route := ParseRoute(path)
	r.mu.Lock()
	r.pending = &route
	r.mu.Unlock()
}

// Take returns the most recent route and clears it.
func (r *Router) Take() (Route, bool) {
	if r == nil {
		return Route{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return Route{}, false
	}
	route := *r.pending
	r.pending = nil
	return route, true
}
