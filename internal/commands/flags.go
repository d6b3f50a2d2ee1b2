package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmountain/report/internal/core/config"
	"github.com/bmountain/report/internal/core/task"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Date       string
	Plain      bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Today is resolved in the Before hook: the --date override when
	// given, the wall clock otherwise. Commands never read time.Now
	// directly; this keeps every run reproducible.
	Today time.Time
}

// ResolveToday sets Today from the --date flag or the current date.
func (f *Flags) ResolveToday() error {
	if f.Date == "" {
		f.Today = time.Now()
		return nil
	}

	t, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", f.Date)
	}
	f.Today = t
	return nil
}

// Taxonomy converts the configured tag tables into the classifier used
// by the grouping pass.
func (f *Flags) Taxonomy() task.Taxonomy {
	return task.Taxonomy{
		Parents:       classMap(f.Config.Tags.Parent.Entries),
		Children:      classMap(f.Config.Tags.Child.Entries),
		ParentDefault: task.Class{ID: f.Config.Tags.Parent.Default.Order, Name: f.Config.Tags.Parent.Default.Name},
		ChildDefault:  task.Class{ID: f.Config.Tags.Child.Default.Order, Name: f.Config.Tags.Child.Default.Name},
	}
}

func classMap(entries map[string]config.TagEntry) map[string]task.Class {
	m := make(map[string]task.Class, len(entries))
	for tag, e := range entries {
		m[tag] = task.Class{ID: e.Order, Name: e.Name}
	}
	return m
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "report", "config.yaml")
}
