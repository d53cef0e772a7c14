// Package backend locates and drives the external fetch tools that render
// the final, already-colored ascii output.
package backend

import (
	"fmt"
	"strings"
)

// Backend identifies a supported fetch tool.
type Backend string

const (
	Neofetch     Backend = "neofetch"
	Fastfetch    Backend = "fastfetch"
	FastfetchOld Backend = "fastfetch-old"
)

// Parse parses a user-facing backend name.
func Parse(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case Neofetch:
		return Neofetch, nil
	case Fastfetch:
		return Fastfetch, nil
	case FastfetchOld:
		return FastfetchOld, nil
	}
	return "", fmt.Errorf("unknown backend %q (want neofetch, fastfetch or fastfetch-old)", s)
}

// Run hands finished ascii output to the backend for display, appending any
// pass-through arguments. The art must already be fully colored; the
// backend only prints it alongside the system info.
func Run(asc string, b Backend, extraArgs []string) error {
	switch b {
	case Neofetch:
		return runNeofetch(asc, extraArgs)
	case Fastfetch:
		return runFastfetch(asc, extraArgs, false)
	case FastfetchOld:
		return runFastfetch(asc, extraArgs, true)
	}
	return fmt.Errorf("unknown backend %q", b)
}

// DistroName asks the backend which distro it detected.
func DistroName(b Backend) (string, error) {
	switch b {
	case Neofetch:
		return neofetchDistroName()
	case Fastfetch, FastfetchOld:
		return fastfetchDistroName()
	}
	return "", fmt.Errorf("unknown backend %q", b)
}
