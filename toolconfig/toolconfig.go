// Package toolconfig loads named pipelines from a config directory.
//
// The directory holds a config.json or config.yaml with shared vars and
// inline pipelines, and optionally a pipelines/ subdirectory with one file
// per pipeline named after it.
package toolconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"toolapps/pipeline"
)

const DefaultConfigDir = "configs"

var configFileNames = []string{"config.json", "config.yaml", "config.yml"}

type ToolConfig struct {
	Vars      map[string]string          `json:"vars" yaml:"vars"`
	Pipelines map[string]*PipelineConfig `json:"pipelines" yaml:"pipelines"`
}

type PipelineConfig struct {
	Name string `json:"-" yaml:"-"`

	pipeline.Definition `yaml:",inline"`
	NoCache             bool `json:"no_cache" yaml:"no_cache"`
	Deactivated         bool `json:"deactivated" yaml:"deactivated"`

	LoadedAt time.Time `json:"-" yaml:"-"`
	pipeline *pipeline.Pipeline
	cache    map[string]*ResultCacheEntry
	cacheMu  sync.Mutex
}

func (p *PipelineConfig) LogrusFields() logrus.Fields {
	fields := p.pipeline.LogrusFields()
	fields["no_cache"] = p.NoCache
	fields["loaded_at"] = p.LoadedAt
	return fields
}

func (p *PipelineConfig) LogrusFieldsWithAction(action string) logrus.Fields {
	fields := p.LogrusFields()
	fields["action"] = action
	return fields
}

// Run executes the pipeline, answering from the result cache when possible.
func (p *PipelineConfig) Run(input string) (output string, cached bool, err error) {
	if entry, ok := p.ProbeCache(input); ok {
		return entry.Output, true, nil
	}
	output, err = p.pipeline.Run(input)
	if err != nil {
		return "", false, err
	}
	p.MbSaveToCache(input, output)
	return output, false, nil
}

// init formats the definition with vars and builds the pipeline.
func (p *PipelineConfig) init(vars map[string]string) error {
	var err error
	def := pipeline.Definition{Convert: make([]pipeline.StageDefinition, len(p.Convert))}
	if def.Decode, err = formatString(p.Decode, vars); err != nil {
		return fmt.Errorf("error formatting decode %s: %w", p.Decode, err)
	}
	if def.Encode, err = formatString(p.Encode, vars); err != nil {
		return fmt.Errorf("error formatting encode %s: %w", p.Encode, err)
	}
	for i, stage := range p.Convert {
		if def.Convert[i].Name, err = formatString(stage.Name, vars); err != nil {
			return fmt.Errorf("error formatting stage %s: %w", stage.Name, err)
		}
		if def.Convert[i].Params, err = formatParams(stage.Params, vars); err != nil {
			return fmt.Errorf("error formatting params of stage %s: %w", stage.Name, err)
		}
	}

	p.Definition = def
	p.pipeline, err = pipeline.Build(p.Name, def)
	if err != nil {
		return err
	}
	p.LoadedAt = time.Now()
	p.cache = make(map[string]*ResultCacheEntry)
	return nil
}

// Store holds the loaded pipelines of one config directory.
type Store struct {
	Dir string

	mu        sync.RWMutex
	vars      map[string]string
	pipelines map[string]*PipelineConfig
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultConfigDir
	}
	return &Store{
		Dir:       dir,
		pipelines: make(map[string]*PipelineConfig),
	}
}

// Load reads the config directory and swaps in the new pipelines. Caches of
// pipelines whose definition did not change survive the reload. On error the
// previous pipelines stay active.
func (s *Store) Load() error {
	base, err := readBaseConfig(s.Dir)
	if err != nil {
		return err
	}
	if base.Pipelines == nil {
		base.Pipelines = make(map[string]*PipelineConfig)
	}

	extra, err := readPipelineDir(filepath.Join(s.Dir, "pipelines"))
	if err != nil {
		return err
	}
	for name, p := range extra {
		if _, ok := base.Pipelines[name]; ok {
			return fmt.Errorf("pipeline %s defined twice", name)
		}
		base.Pipelines[name] = p
	}

	errs := make([]error, 0)
	loaded := make(map[string]*PipelineConfig, len(base.Pipelines))
	for name, p := range base.Pipelines {
		if p == nil {
			continue
		}
		p.Name = name
		if err := p.init(base.Vars); err != nil {
			errs = append(errs, fmt.Errorf("error loading pipeline %s: %w", name, err))
			continue
		}
		loaded[name] = p
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.mu.Lock()
	for name, p := range loaded {
		if previous, ok := s.pipelines[name]; ok && reflect.DeepEqual(previous.Definition, p.Definition) {
			previous.cacheMu.Lock()
			maps.Copy(p.cache, previous.cache)
			previous.cacheMu.Unlock()
		}
	}
	s.vars = base.Vars
	s.pipelines = loaded
	s.mu.Unlock()

	for _, p := range loaded {
		logrus.WithFields(p.LogrusFields()).Info("Loaded pipeline")
	}
	return nil
}

// Get returns an active pipeline by name.
func (s *Store) Get(name string) (*PipelineConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pipelines[name]
	if !ok || p.Deactivated {
		return nil, false
	}
	return p, true
}

// Names lists active pipelines, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.pipelines))
	for name, p := range s.pipelines {
		if !p.Deactivated {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Var returns a configured variable.
func (s *Store) Var(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vars[name]
	return v, ok
}

func readBaseConfig(dir string) (*ToolConfig, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		config := &ToolConfig{}
		if err := unmarshal(path, data, config); err != nil {
			return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
		}
		return config, nil
	}
	return nil, fmt.Errorf("no config file in %s: %w", dir, os.ErrNotExist)
}

func readPipelineDir(dir string) (map[string]*PipelineConfig, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pipelines := make(map[string]*PipelineConfig, len(entries))
	errs := make([]error, 0)
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".json" && ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p := &PipelineConfig{}
		if err := unmarshal(path, data, p); err != nil {
			errs = append(errs, fmt.Errorf("error decoding pipeline file %s: %w", path, err))
			continue
		}
		pipelines[strings.TrimSuffix(entry.Name(), ext)] = p
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return pipelines, nil
}

func unmarshal(path string, data []byte, v any) error {
	if filepath.Ext(path) == ".json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}
