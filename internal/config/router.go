package config

import (
	"errors"
	"fmt"
	"strings"
)

// Router identifies the navigation library a generated project uses.
// The zero value means the caller did not specify one.
type Router string

const (
	RouterUnspecified     Router = ""
	RouterExpo            Router = "expo-router"
	RouterReactNavigation Router = "react-navigation"
)

// Routers lists the valid routers in presentation order.
var Routers = []Router{RouterExpo, RouterReactNavigation}

// ErrUnknownRouter is returned by ParseRouter for names outside Routers.
var ErrUnknownRouter = errors.New("unknown router")

// ParseRouter maps a user-supplied name to a Router. An empty string is
// RouterUnspecified, not an error.
func ParseRouter(s string) (Router, error) {
	switch r := Router(strings.TrimSpace(strings.ToLower(s))); r {
	case RouterUnspecified, RouterExpo, RouterReactNavigation:
		return r, nil
	default:
		return RouterUnspecified, fmt.Errorf("%w: %q (valid: %s, %s)", ErrUnknownRouter, s, RouterExpo, RouterReactNavigation)
	}
}

// OrDefault resolves an unspecified router to expo-router.
func (r Router) OrDefault() Router {
	if r == RouterUnspecified {
		return RouterExpo
	}
	return r
}

func (r Router) String() string { return string(r) }

// RouterNames returns Routers as plain strings, for schema enums.
func RouterNames() []string {
	names := make([]string, len(Routers))
	for i, r := range Routers {
		names[i] = string(r)
	}
	return names
}
