package config

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// sectionRank orders the top-level tables of config.toml. Tables missing from
// the list are written after these, by name.
var sectionRank = map[string]int{
	"workbench": 0,
	"zenMode":   1,
	"layout":    2,
	"storage":   3,
	"database":  4,
	"logging":   5,
}

// WriteConfigOrdered encodes cfg and writes it to path. Tables follow the
// layout-first order of sectionRank and nested tables stay under their parent.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return encodeOrdered(cfg, path)
}

// writeRawConfig writes a generic TOML tree, as edited by UpdateSetting and
// the migrator.
func writeRawConfig(raw map[string]any, path string) error {
	return encodeOrdered(raw, path)
}

func encodeOrdered(v any, path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sortTOMLSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// tomlBlock is one table header and the lines up to the next header.
type tomlBlock struct {
	name  string
	lines []string
}

// root returns the top-level table a block belongs to.
func (b tomlBlock) root() string {
	name, _, _ := strings.Cut(b.name, ".")
	return name
}

// tableName returns the name of a "[a.b]" header line, or "" for other lines.
// Array tables ("[[a]]") are not headers for this purpose.
func tableName(line string) string {
	s := strings.TrimSpace(line)
	if len(s) < 3 || s[0] != '[' || s[1] == '[' || s[len(s)-1] != ']' {
		return ""
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}

// sortTOMLSections reorders the tables of an encoded document. Keys before the
// first table stay on top.
func sortTOMLSections(content string) string {
	var head []string
	var blocks []tomlBlock

	for _, line := range strings.Split(content, "\n") {
		if name := tableName(line); name != "" {
			blocks = append(blocks, tomlBlock{name: name, lines: []string{line}})
			continue
		}
		if len(blocks) == 0 {
			head = append(head, line)
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(blocks, func(a, b tomlBlock) int {
		if c := compareRoots(a.root(), b.root()); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	parts := make([]string, 0, len(blocks)+1)
	if h := strings.TrimSpace(strings.Join(head, "\n")); h != "" {
		parts = append(parts, strings.TrimRight(strings.Join(head, "\n"), "\n"))
	}
	for _, b := range blocks {
		parts = append(parts, strings.TrimRight(strings.Join(b.lines, "\n"), "\n"))
	}

	out := strings.Join(parts, "\n\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func compareRoots(a, b string) int {
	ra, okA := sectionRank[a]
	rb, okB := sectionRank[b]
	switch {
	case okA && okB:
		return cmp.Compare(ra, rb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
