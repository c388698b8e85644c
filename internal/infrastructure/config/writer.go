package config

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg to path as TOML. Keys keep their struct
// order and tables are sorted by name, so the output is stable.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := encodeOrdered(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func encodeOrdered(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

type tomlTable struct {
	name  string
	lines []string
}

// sortTOMLSections reorders the tables of a TOML document alphabetically.
// Top-level keys stay in front and blank lines between tables are collapsed
// to one.
func sortTOMLSections(content string) string {
	var preamble []string
	var tables []tomlTable

	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, tomlTable{name: m[1], lines: []string{line}})
			continue
		}
		if len(tables) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(tables, func(a, b tomlTable) int {
		return cmp.Compare(a.name, b.name)
	})

	var out strings.Builder
	writeBlock(&out, preamble)
	for _, table := range tables {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		writeBlock(&out, table.lines)
	}

	result := strings.TrimRight(out.String(), "\n")
	if result == "" {
		return ""
	}
	return result + "\n"
}

// writeBlock writes lines without their trailing blank lines.
func writeBlock(out *strings.Builder, lines []string) {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	for _, line := range lines[:end] {
		out.WriteString(line)
		out.WriteString("\n")
	}
}
