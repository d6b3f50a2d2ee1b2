package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
note_dir: /home/me/notes
header: "# My Tasks"
footer: "fin"
states:
  todo: "todo"
  done: "shipped"
tags:
  parent:
    default:
      name: other
      order: 99
    entries:
      work:
        name: Work
        order: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/home/me/notes", cfg.NoteDir)
	assert.Equal(t, "# My Tasks", cfg.Header)
	assert.Equal(t, "fin", cfg.Footer)
	assert.Equal(t, "todo", cfg.States.Todo)
	assert.Equal(t, "shipped", cfg.States.Done)
	assert.Equal(t, TagEntry{Name: "Work", Order: 0}, cfg.Tags.Parent.Entries["work"])

	// Unset fields fall back to defaults.
	assert.Equal(t, "WIP", cfg.States.Ongoing)
	assert.Equal(t, "2006-01-02.md", cfg.NotePattern)
	assert.Equal(t, 1, cfg.MaxDepth)
	assert.Equal(t, "Task", cfg.Columns.Title)
	assert.Equal(t, "misc", cfg.Tags.Child.Default.Name)
}

func TestLoadMissingNoteDir(t *testing.T) {
	path := writeConfig(t, `header: "# My Tasks"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "note_dir")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "note_dir: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoadUnboundedDepth(t *testing.T) {
	path := writeConfig(t, "note_dir: /notes\nmax_depth: -1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.MaxDepth)
}

func TestValidateTagEntries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoteDir = "/notes"
	cfg.Tags.Parent.Entries = map[string]TagEntry{"work": {Order: 1}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tags.parent.entries.work")
}

func TestDefaultConfigIsValidWithNoteDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoteDir = "/notes"
	assert.NoError(t, cfg.Validate())
}
