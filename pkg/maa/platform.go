package maa

import (
	"strings"
)

// Platform identifies the board variant the process runs on.
//
// Values are part of the external contract. Add new boards as new
// constants; never renumber existing ones.
type Platform int

const (
	// IntelGalileoGen1 is the Generation 1 Galileo (Rev D).
	IntelGalileoGen1 Platform = 0
	// IntelGalileoGen2 is the Generation 2 Galileo (Rev G/H).
	IntelGalileoGen2 Platform = 1

	// UnknownPlatform means detection failed or the board was not
	// recognised; the Gen1 mapping typically loads.
	UnknownPlatform Platform = 99
)

// Board describes a supported board variant and how to recognise it.
type Board struct {
	// Platform is the identity this descriptor belongs to.
	Platform Platform `json:"platform" yaml:"platform"`

	// Name is the short identifier (galileo-gen1, galileo-gen2, unknown).
	Name string `json:"name" yaml:"name"`

	// Description is the human-readable board revision.
	Description string `json:"description" yaml:"description"`

	// Identifiers are DMI board names or device-tree models that classify
	// as this board. Matching is by case-insensitive prefix after removing
	// spaces.
	Identifiers []string `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
}

// boards is ordered so that more specific identifiers are tried first.
var boards = []Board{
	{
		Platform:    IntelGalileoGen2,
		Name:        "galileo-gen2",
		Description: "Intel Galileo Generation 2 (Rev G/H)",
		Identifiers: []string{"GalileoGen2", "Intel Galileo Gen2"},
	},
	{
		Platform:    IntelGalileoGen1,
		Name:        "galileo-gen1",
		Description: "Intel Galileo Generation 1 (Rev D)",
		Identifiers: []string{"Galileo", "Intel Galileo"},
	},
	{
		Platform:    UnknownPlatform,
		Name:        "unknown",
		Description: "detection failed or board not recognised; Gen1 mapping typically loads",
	},
}

// Platforms returns every known identity in numeric order, ending with
// UnknownPlatform.
func Platforms() []Platform {
	return []Platform{IntelGalileoGen1, IntelGalileoGen2, UnknownPlatform}
}

// Boards returns a copy of the registry in numeric platform order.
func Boards() []Board {
	out := make([]Board, 0, len(boards))
	for _, p := range Platforms() {
		b, _ := LookupBoard(p)
		out = append(out, b)
	}
	return out
}

// LookupBoard returns the descriptor for p.
func LookupBoard(p Platform) (Board, bool) {
	for _, b := range boards {
		if b.Platform == p {
			b.Identifiers = append([]string(nil), b.Identifiers...)
			return b, true
		}
	}
	return Board{}, false
}

// Classify maps a raw board identifier (DMI board_name or device-tree
// model) to a Platform. Unrecognised or empty input yields UnknownPlatform.
func Classify(ident string) Platform {
	norm := normalizeIdent(ident)
	if norm == "" {
		return UnknownPlatform
	}
	for _, b := range boards {
		for _, id := range b.Identifiers {
			if strings.HasPrefix(norm, normalizeIdent(id)) {
				return b.Platform
			}
		}
	}
	return UnknownPlatform
}

func normalizeIdent(s string) string {
	s = strings.TrimRight(s, "\x00\n\r\t ")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToLower(s)
}

// Valid reports whether p is a registered identity.
func (p Platform) Valid() bool {
	_, ok := LookupBoard(p)
	return ok
}

// Known reports whether p is a concrete board rather than the sentinel.
func (p Platform) Known() bool {
	return p != UnknownPlatform && p.Valid()
}

// Fallback returns the identity whose pin mapping should load for p.
// Unknown and unregistered values fall back to Gen1.
func (p Platform) Fallback() Platform {
	if p.Known() {
		return p
	}
	return IntelGalileoGen1
}

// String returns the short board name.
func (p Platform) String() string {
	if b, ok := LookupBoard(p); ok {
		return b.Name
	}
	return "unknown"
}
