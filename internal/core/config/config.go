// Package config handles configuration loading and validation for report.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bmountain/report/internal/core/validate"
)

// Config holds the application configuration.
type Config struct {
	// NoteDir is the directory holding daily notes.
	NoteDir string `yaml:"note_dir"`
	// NotePattern is a Go time layout rendered with today's date and then
	// glob-matched against NoteDir, so notes may live in nested
	// directories (e.g. "2006/01/2006-01-02.md" or "**/2006-01-02.md").
	NotePattern string `yaml:"note_pattern"`
	// MaxDepth bounds accepted child indentation. 0 falls back to the
	// default of 1; a negative value accepts any depth.
	MaxDepth int `yaml:"max_depth"`

	Header string `yaml:"header"`
	Footer string `yaml:"footer"`

	States  States  `yaml:"states"`
	Columns Columns `yaml:"columns"`
	Tags    Tags    `yaml:"tags"`
}

// States maps lifecycle states to their display strings.
type States struct {
	Todo      string `yaml:"todo"`
	Ongoing   string `yaml:"ongoing"`
	Done      string `yaml:"done"`
	Cancelled string `yaml:"cancelled"`
}

// Columns holds the display names for the task table columns.
type Columns struct {
	Title     string `yaml:"title"`
	State     string `yaml:"state"`
	StartDate string `yaml:"start_date"`
	DoneDate  string `yaml:"done_date"`
}

// TagEntry classifies one raw tag: a display name and the order key used
// for grouping.
type TagEntry struct {
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

// TagLevel is the taxonomy for one tag level: known tags plus the
// fallback entry used for unknown or absent tags.
type TagLevel struct {
	Entries map[string]TagEntry `yaml:"entries"`
	Default TagEntry            `yaml:"default"`
}

// Tags holds the taxonomies for the parent and child tag levels.
type Tags struct {
	Parent TagLevel `yaml:"parent"`
	Child  TagLevel `yaml:"child"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NotePattern: "2006-01-02.md",
		MaxDepth:    1,
		Header:      "# Today's Tasks",
		States: States{
			Todo:      "TODO",
			Ongoing:   "WIP",
			Done:      "DONE",
			Cancelled: "DROP",
		},
		Columns: Columns{
			Title:     "Task",
			State:     "State",
			StartDate: "Start",
			DoneDate:  "Done",
		},
		Tags: Tags{
			Parent: TagLevel{Default: TagEntry{Name: "other", Order: 999}},
			Child:  TagLevel{Default: TagEntry{Name: "misc", Order: 999}},
		},
	}
}

// Load reads configuration from the given path.
// Missing file is not an error: defaults apply, and Validate will reject
// the config only if a required field (like note_dir) is still unset.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.NotePattern == "" {
		c.NotePattern = defaults.NotePattern
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = defaults.MaxDepth
	}
	if c.Header == "" {
		c.Header = defaults.Header
	}
	if c.States.Todo == "" {
		c.States.Todo = defaults.States.Todo
	}
	if c.States.Ongoing == "" {
		c.States.Ongoing = defaults.States.Ongoing
	}
	if c.States.Done == "" {
		c.States.Done = defaults.States.Done
	}
	if c.States.Cancelled == "" {
		c.States.Cancelled = defaults.States.Cancelled
	}
	if c.Columns.Title == "" {
		c.Columns.Title = defaults.Columns.Title
	}
	if c.Columns.State == "" {
		c.Columns.State = defaults.Columns.State
	}
	if c.Columns.StartDate == "" {
		c.Columns.StartDate = defaults.Columns.StartDate
	}
	if c.Columns.DoneDate == "" {
		c.Columns.DoneDate = defaults.Columns.DoneDate
	}
	if c.Tags.Parent.Default.Name == "" {
		c.Tags.Parent.Default = defaults.Tags.Parent.Default
	}
	if c.Tags.Child.Default.Name == "" {
		c.Tags.Child.Default = defaults.Tags.Child.Default
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Field("note_dir", c.NoteDir); err != nil {
		return err
	}
	if err := validate.Field("note_pattern", c.NotePattern); err != nil {
		return err
	}

	required := []struct {
		field string
		value string
	}{
		{"states.todo", c.States.Todo},
		{"states.ongoing", c.States.Ongoing},
		{"states.done", c.States.Done},
		{"states.cancelled", c.States.Cancelled},
		{"columns.title", c.Columns.Title},
		{"columns.state", c.Columns.State},
		{"columns.start_date", c.Columns.StartDate},
		{"columns.done_date", c.Columns.DoneDate},
	}
	for _, r := range required {
		if err := validate.Field(r.field, r.value); err != nil {
			return err
		}
	}

	if err := c.Tags.Parent.validate("tags.parent"); err != nil {
		return err
	}
	if err := c.Tags.Child.validate("tags.child"); err != nil {
		return err
	}

	return nil
}

func (l *TagLevel) validate(prefix string) error {
	if l.Default.Name == "" {
		return fmt.Errorf("%s.default.name cannot be empty", prefix)
	}
	for tag, entry := range l.Entries {
		if entry.Name == "" {
			return fmt.Errorf("%s.entries.%s: name cannot be empty", prefix, tag)
		}
	}
	return nil
}
