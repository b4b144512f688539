// Package profile provides concrete token validators for the move codec.
// A profile pairs a board coordinate pattern with a piece identifier
// pattern; builtins cover common game traditions and further profiles load
// from YAML files.
package profile

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"notation/move"
)

// Profile validates token shape against compiled patterns. It implements
// move.Validator. The reserve sentinel is always a valid location,
// independent of the location pattern.
type Profile struct {
	name     string
	location *regexp.Regexp
	piece    *regexp.Regexp
}

func (p *Profile) Name() string { return p.name }

func (p *Profile) IsValidLocation(token string) bool {
	return token == move.Reserve || p.location.MatchString(token)
}

func (p *Profile) IsValidPiece(token string) bool {
	return p.piece.MatchString(token)
}

// New compiles a profile from raw patterns. Patterns are anchored so a
// partial match never passes.
func New(name, locationPattern, piecePattern string) (*Profile, error) {
	location, err := regexp.Compile("^(?:" + locationPattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("failed to compile location pattern for profile %q: %w", name, err)
	}
	piece, err := regexp.Compile("^(?:" + piecePattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("failed to compile piece pattern for profile %q: %w", name, err)
	}
	return &Profile{name: name, location: location, piece: piece}, nil
}

type fileSpec struct {
	Profiles []struct {
		Name     string `yaml:"name"`
		Location string `yaml:"location"`
		Piece    string `yaml:"piece"`
	} `yaml:"profiles"`
}

// Parse reads profiles from YAML of the form:
//
//	profiles:
//	  - name: chess
//	    location: "[a-h][1-8]"
//	    piece: "[A-Z]:[A-Z]"
func Parse(data []byte) ([]*Profile, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}
	if len(spec.Profiles) == 0 {
		return nil, fmt.Errorf("profile file defines no profiles")
	}
	profiles := make([]*Profile, 0, len(spec.Profiles))
	for _, entry := range spec.Profiles {
		if entry.Name == "" {
			return nil, fmt.Errorf("profile entry is missing a name")
		}
		p, err := New(entry.Name, entry.Location, entry.Piece)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// LoadFile reads profiles from a YAML file on disk.
func LoadFile(path string) ([]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return Parse(data)
}
