package profile

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Builtin profiles. Piece identifiers follow the style-letter scheme used
// throughout this repository's examples: a style abbreviation, a colon,
// then the piece letter, with case carrying side (C:K white chess king,
// c:k black).
var builtins = map[string]*Profile{
	"permissive": mustNew("permissive", `[^,;.]+`, `[^,;.]+`),
	"chess":      mustNew("chess", `[a-h][1-8]`, `[A-Za-z]+:[A-Za-z]['!]?`),
	"shogi":      mustNew("shogi", `[1-9][a-i]`, `[A-Za-z]+:\+?[A-Za-z]`),
	"go":         mustNew("go", `[1-9][0-9]?-[1-9][0-9]?`, `[A-Za-z]+:[A-Za-z]`),
}

func mustNew(name, locationPattern, piecePattern string) *Profile {
	p, err := New(name, locationPattern, piecePattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns the builtin profile names, sorted.
func Names() []string {
	names := maps.Keys(builtins)
	slices.Sort(names)
	return names
}

// Builtin returns the named builtin profile.
func Builtin(name string) (*Profile, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (builtins: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Permissive returns the profile that accepts any token free of wire
// separator characters.
func Permissive() *Profile { return builtins["permissive"] }

// Chess returns the builtin chess coordinate profile.
func Chess() *Profile { return builtins["chess"] }

// Shogi returns the builtin shogi coordinate profile.
func Shogi() *Profile { return builtins["shogi"] }
