// Package pipeline chains a decoder, converters and an encoder:
// text -> decode -> bytes -> convert... -> bytes -> encode -> text.
package pipeline

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"toolapps/convert"
	"toolapps/decode"
	"toolapps/encode"
)

var ErrUnknownPipeline = errors.New("unknown pipeline")

// StageError names the stage of a pipeline that failed.
type StageError struct {
	Pipeline string
	Stage    string
	Name     string
	Err      error
}

func (e *StageError) Error() string {
	if e.Pipeline == "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Name, e.Err)
	}
	return fmt.Sprintf("pipeline %s: %s %s: %v", e.Pipeline, e.Stage, e.Name, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Stage is one named converter of a pipeline.
type Stage struct {
	Name      string
	Converter convert.ByteArrayConverter
}

// Pipeline is immutable once built and safe for concurrent use.
type Pipeline struct {
	Name        string
	DecoderName string
	Decoder     decode.StringDecoder
	Stages      []Stage
	EncoderName string
	Encoder     encode.ByteArrayEncoder
}

func (p *Pipeline) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"pipeline": p.Name,
		"decode":   p.DecoderName,
		"convert":  strings.Join(p.StageNames(), ","),
		"encode":   p.EncoderName,
	}
}

func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.Stages))
	for i, s := range p.Stages {
		names[i] = s.Name
	}
	return names
}

// Run decodes input, applies every stage and encodes the result.
// A nil Decoder reads input as UTF-8, a nil Encoder writes lowercase hex.
func (p *Pipeline) Run(input string) (string, error) {
	var (
		data []byte
		err  error
	)
	if p.Decoder == nil {
		data = []byte(input)
	} else {
		data, err = p.Decoder.Decode(input)
		if err != nil {
			return "", &StageError{Pipeline: p.Name, Stage: "decode", Name: p.DecoderName, Err: err}
		}
	}
	return p.RunBytes(data)
}

// RunBytes skips the decode stage.
func (p *Pipeline) RunBytes(data []byte) (string, error) {
	data, err := p.Convert(data)
	if err != nil {
		return "", err
	}
	if p.Encoder == nil {
		return hex.EncodeToString(data), nil
	}
	return p.Encoder.Encode(data), nil
}

// Convert applies only the converter stages.
func (p *Pipeline) Convert(data []byte) ([]byte, error) {
	if len(p.Stages) == 0 {
		return convert.Identity{}.Convert(data)
	}
	var err error
	for i, stage := range p.Stages {
		data, err = stage.Converter.Convert(data)
		if err != nil {
			return nil, &StageError{Pipeline: p.Name, Stage: stageLabel(i), Name: stage.Name, Err: err}
		}
	}
	return data, nil
}

func stageLabel(i int) string {
	return fmt.Sprintf("convert[%d]", i)
}
