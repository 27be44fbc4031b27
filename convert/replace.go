package convert

import (
	"bytes"
	"fmt"
	"regexp"
)

type ReplaceType string

const (
	ReplaceTypeSimple ReplaceType = ""
	ReplaceTypeRegex  ReplaceType = "regex"
)

// Replacement rewrites occurrences of From with To. Count limits simple
// replacements, zero meaning all of them.
type Replacement struct {
	From  string      `json:"from,omitempty" yaml:"from,omitempty"`
	To    string      `json:"to,omitempty" yaml:"to,omitempty"`
	Count int         `json:"count,omitempty" yaml:"count,omitempty"`
	Type  ReplaceType `json:"type,omitempty" yaml:"type,omitempty"`

	compiled *regexp.Regexp
}

// NewReplacement validates r and compiles its pattern.
func NewReplacement(r Replacement) (*Replacement, error) {
	switch r.Type {
	case ReplaceTypeSimple:
	case ReplaceTypeRegex:
		re, err := regexp.Compile(r.From)
		if err != nil {
			return nil, conversionError("replace", err)
		}
		r.compiled = re
	default:
		return nil, conversionError("replace", fmt.Errorf("unknown replace type %q", r.Type))
	}
	return &r, nil
}

func (r *Replacement) Convert(content []byte) ([]byte, error) {
	if r.Type == ReplaceTypeRegex {
		if r.compiled == nil {
			return nil, conversionError("replace", fmt.Errorf("pattern %q not compiled", r.From))
		}
		return r.compiled.ReplaceAll(content, []byte(r.To)), nil
	}
	if r.From == "" {
		return append([]byte{}, content...), nil
	}
	count := r.Count
	if count == 0 {
		count = -1
	}
	return bytes.Replace(content, []byte(r.From), []byte(r.To), count), nil
}
