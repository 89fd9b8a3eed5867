package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	err := WriteConfigOrdered(DefaultConfig(), configPath)
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	sections := sectionHeaders(string(content))
	require.NotEmpty(t, sections)
	assert.True(t, strings.HasPrefix(sections[0], "[workbench"), sections[0])
	assert.Equal(t, "[logging]", sections[len(sections)-1])
	assert.Less(t, slices.Index(sections, "[zenMode]"), slices.Index(sections, "[layout]"))

	// Legacy and runtime-only fields are not written.
	assert.NotContains(t, string(content), "visible = false")
	assert.NotContains(t, string(content), "AuxiliaryBarConfigured")
	assert.Contains(t, string(content), "defaultVisibility = 'visibleInWorkspace'")
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	err := WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}

func TestWriteRawConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	raw := map[string]any{
		"zenMode": map[string]any{"hideStatusBar": false},
		"workbench": map[string]any{
			"sideBar": map[string]any{"location": "right"},
		},
	}

	require.NoError(t, writeRawConfig(raw, configPath))

	back, err := readRawConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "right", back["workbench"].(map[string]any)["sideBar"].(map[string]any)["location"])
	assert.Equal(t, false, back["zenMode"].(map[string]any)["hideStatusBar"])
}

func TestSortTOMLSections(t *testing.T) {
	input := `[zenMode]
restore = true

[layout]
panel_height_divisor = 3

[workbench.sideBar]
location = 'left'

[workbench]

[database]
path = ''
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"[workbench]",
		"[workbench.sideBar]",
		"[zenMode]",
		"[layout]",
		"[database]",
	}, sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}

func TestSortTOMLSections_UnknownTablesLast(t *testing.T) {
	input := "title = 'x'\n\n[extra]\na = 1\n\n[logging]\nlevel = 'info'\n\n[aaa]\nb = 2\n"

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[logging]", "[aaa]", "[extra]"}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n\n[logging]"))
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "workbench.panel", tableName("  [workbench.panel]"))
	assert.Empty(t, tableName("[[entries]]"))
	assert.Empty(t, tableName("location = 'left'"))
}
