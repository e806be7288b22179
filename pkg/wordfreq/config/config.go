package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordfreq/pkg/wordfreq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/source"
)

// Config is the YAML run configuration.
//
//	source:
//	  kind: ngram        # ngram | lemma | csv
//	  paths: [a.gz, b.gz]
//	top_n: 1000
//	output: wordlist.txt # empty → stdout
//	snapshot_db: run.db  # optional sqlite snapshot
//	exclude: [word, ...] # dropped from the final list
type Config struct {
	Source struct {
		Kind  string   `yaml:"kind"`
		Paths []string `yaml:"paths"`
	} `yaml:"source"`
	TopN       int      `yaml:"top_n"`
	Output     string   `yaml:"output"`
	SnapshotDB string   `yaml:"snapshot_db"`
	Exclude    []string `yaml:"exclude"`
}

// Load reads and validates a run configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if _, err := cfg.kind(); err != nil {
		return nil, err
	}
	if len(cfg.Source.Paths) == 0 {
		return nil, fmt.Errorf("%w: source.paths is empty", internalerr.ErrInvalidConfig)
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 1000
	}
	return &cfg, nil
}

// Options builds pipeline options from the configuration.
func (c *Config) Options(obs source.Observer) (wordfreq.Options, error) {
	kind, err := c.kind()
	if err != nil {
		return wordfreq.Options{}, err
	}
	return wordfreq.Options{
		Source:   wordfreq.Source{Kind: kind, Paths: c.Source.Paths},
		TopN:     c.TopN,
		Exclude:  c.Exclude,
		Observer: obs,
	}, nil
}

func (c *Config) kind() (source.Kind, error) {
	switch c.Source.Kind {
	case "ngram":
		return source.KindNgram, nil
	case "lemma":
		return source.KindLemma, nil
	case "csv":
		return source.KindCSV, nil
	}
	return 0, fmt.Errorf("%w: unknown source kind %q", internalerr.ErrInvalidConfig, c.Source.Kind)
}
