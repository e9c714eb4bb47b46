// Package config loads the optional YAML file that overrides the
// reserved symbols and label prefixes of a conversion.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/lviana15/tapeconv/pkg/domain"
)

// File is the on-disk configuration shape. Every field is optional;
// unset fields keep their defaults.
type File struct {
	Alphabet AlphabetConfig `yaml:"alphabet"`
	Prefixes PrefixConfig   `yaml:"prefixes"`
}

// AlphabetConfig overrides reserved symbols. Each value must be
// exactly one character.
type AlphabetConfig struct {
	LeftWall  string `yaml:"left_wall"`
	RightWall string `yaml:"right_wall"`
	Blank     string `yaml:"blank"`
	Wildcard  string `yaml:"wildcard"`
}

// PrefixConfig overrides reserved label prefixes and the generated
// start state.
type PrefixConfig struct {
	Halt  string `yaml:"halt"`
	Sim   string `yaml:"sim"`
	Start string `yaml:"start"`
}

// Load reads path and applies it over the default alphabet. An empty
// path or a missing file yields the defaults unchanged.
func Load(path string) (domain.Alphabet, error) {
	alpha := domain.DefaultAlphabet()
	if path == "" {
		return alpha, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return alpha, nil
		}
		return alpha, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return alpha, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.apply(alpha)
}

func (f File) apply(alpha domain.Alphabet) (domain.Alphabet, error) {
	symbols := []struct {
		name  string
		value string
		dst   *rune
	}{
		{"alphabet.left_wall", f.Alphabet.LeftWall, &alpha.LeftWall},
		{"alphabet.right_wall", f.Alphabet.RightWall, &alpha.RightWall},
		{"alphabet.blank", f.Alphabet.Blank, &alpha.Blank},
		{"alphabet.wildcard", f.Alphabet.Wildcard, &alpha.Wildcard},
	}
	for _, s := range symbols {
		if s.value == "" {
			continue
		}
		if utf8.RuneCountInString(s.value) != 1 {
			return alpha, fmt.Errorf("config %s: must be a single character, got %q", s.name, s.value)
		}
		r, _ := utf8.DecodeRuneInString(s.value)
		*s.dst = r
	}

	if f.Prefixes.Halt != "" {
		alpha.HaltPrefix = f.Prefixes.Halt
	}
	if f.Prefixes.Sim != "" {
		alpha.SimPrefix = f.Prefixes.Sim
	}
	if f.Prefixes.Start != "" {
		alpha.StartState = f.Prefixes.Start
	}
	return alpha, nil
}
