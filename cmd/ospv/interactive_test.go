package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ospv"
	"github.com/wippyai/ospv/codec"
)

func loadedBrowser(t *testing.T) *browserModel {
	t.Helper()
	a, err := ospv.Convert("frag.spv", module("main"))
	require.NoError(t, err)

	m := newBrowserModel("frag.spv")
	_, cmd := m.Update(loadedMsg{artifact: a})
	assert.Nil(t, cmd)
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestBrowserRows(t *testing.T) {
	m := loadedBrowser(t)

	require.Len(t, m.types, 4)
	assert.Equal(t, "0 float", m.types[0].key)
	assert.Equal(t, "3 variable color", m.types[3].key)
	assert.Contains(t, m.types[3].detail, "-> 2 pointer")
	assert.Contains(t, m.types[3].detail, `"location": 0`)

	require.Len(t, m.entries, 1)
	assert.Equal(t, "fragment main", m.entries[0].key)
	assert.Contains(t, m.entries[0].detail, "-> 3 variable color")
	assert.Equal(t, []int{0, 1, 2, 3}, m.visible)
}

func TestBrowserNavigation(t *testing.T) {
	m := loadedBrowser(t)

	m.Update(key(tea.KeyUp))
	assert.Equal(t, 0, m.selected)
	for i := 0; i < 10; i++ {
		m.Update(key(tea.KeyDown))
	}
	assert.Equal(t, 3, m.selected)

	m.Update(key(tea.KeyTab))
	assert.Equal(t, paneEntries, m.pane)
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, []int{0}, m.visible)
	assert.Contains(t, m.View(), "main")

	m.Update(key(tea.KeyTab))
	assert.Equal(t, paneTypes, m.pane)
}

func TestBrowserFilter(t *testing.T) {
	m := loadedBrowser(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("COL")})
	assert.Equal(t, "COL", m.filter.Value())
	assert.Equal(t, []int{3}, m.visible)
	assert.Equal(t, 0, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, m.visible)
	assert.Contains(t, m.View(), "no matches")

	_, cmd := m.Update(key(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.filter.Value())
	assert.Len(t, m.visible, 4)

	_, cmd = m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowserLoadError(t *testing.T) {
	m := newBrowserModel("missing.spv")
	m.Update(m.load())
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
}

func TestLoadArtifactByExtension(t *testing.T) {
	dir := t.TempDir()
	spv := filepath.Join(dir, "frag.spv")
	require.NoError(t, os.WriteFile(spv, module("main"), 0o644))

	a, err := loadArtifact(spv)
	require.NoError(t, err)

	yml := filepath.Join(dir, "frag.yml")
	require.NoError(t, ospv.WriteArtifact(yml, a, codec.Options{Format: codec.FormatYAML}))

	got, err := loadArtifact(yml)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}
