package pipeline

import (
	"strings"

	"toolapps/convert"
	"toolapps/decode"
	"toolapps/encode"
)

// StageDefinition names a converter and its parameters.
type StageDefinition struct {
	Name   string            `json:"name" yaml:"name"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Definition describes a pipeline by registry names.
type Definition struct {
	Decode  string            `json:"decode" yaml:"decode"`
	Convert []StageDefinition `json:"convert" yaml:"convert"`
	Encode  string            `json:"encode" yaml:"encode"`
}

// ParseStages turns "gzip,sha256" into stage definitions without params.
func ParseStages(list string) []StageDefinition {
	var stages []StageDefinition
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		stages = append(stages, StageDefinition{Name: name})
	}
	return stages
}

// Build resolves every name of def. Empty decode means utf8, empty encode
// means hex.
func Build(name string, def Definition) (*Pipeline, error) {
	p := &Pipeline{
		Name:        name,
		DecoderName: def.Decode,
		EncoderName: def.Encode,
	}
	if p.DecoderName == "" {
		p.DecoderName = "utf8"
	}
	if p.EncoderName == "" {
		p.EncoderName = "hex"
	}

	var err error
	p.Decoder, err = decode.New(p.DecoderName)
	if err != nil {
		return nil, &StageError{Pipeline: name, Stage: "decode", Name: p.DecoderName, Err: err}
	}
	for i, s := range def.Convert {
		c, err := convert.New(s.Name, s.Params)
		if err != nil {
			return nil, &StageError{Pipeline: name, Stage: stageLabel(i), Name: s.Name, Err: err}
		}
		p.Stages = append(p.Stages, Stage{Name: s.Name, Converter: c})
	}
	p.Encoder, err = encode.New(p.EncoderName)
	if err != nil {
		return nil, &StageError{Pipeline: name, Stage: "encode", Name: p.EncoderName, Err: err}
	}
	return p, nil
}

// Digest hashes target read as UTF-8 and renders it as hex.
func Digest(target, algorithm string) (string, error) {
	if algorithm == "" {
		algorithm = "sha256"
	}
	p := &Pipeline{
		Name:        "digest",
		DecoderName: "utf8",
		Stages:      []Stage{{Name: algorithm, Converter: convert.Digest{Algorithm: algorithm}}},
		EncoderName: "hex",
	}
	return p.Run(target)
}
