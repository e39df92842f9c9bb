// Package output renders command lists and shell details in the formats
// accepted by --format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
	"gopkg.in/yaml.v3"
)

// Format is an output format name.
type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be plain, table, json, or yaml)", s)
	}
}

// ShellInfo describes the detected shell and where its history lives.
type ShellInfo struct {
	Shell       string `json:"shell" yaml:"shell"`
	ShellPath   string `json:"shell_path" yaml:"shell_path"`
	HistoryPath string `json:"history_path" yaml:"history_path"`
	Exists      bool   `json:"exists" yaml:"exists"`
}

// WriteCommands writes cmds, newest first, in the given format.
// Plain output is one command per line so it can be piped.
func WriteCommands(w io.Writer, f Format, cmds []string) error {
	if cmds == nil {
		cmds = []string{}
	}

	switch f {
	case FormatPlain:
		for _, cmd := range cmds {
			if _, err := fmt.Fprintln(w, cmd); err != nil {
				return err
			}
		}
		return nil
	case FormatTable:
		if len(cmds) == 0 {
			_, err := fmt.Fprintln(w, "No commands found.")
			return err
		}
		tbl := table.New("#", "COMMAND").WithWriter(w)
		for i, cmd := range cmds {
			tbl.AddRow(i+1, cmd)
		}
		tbl.Print()
		return nil
	case FormatJSON:
		return writeJSON(w, cmds)
	case FormatYAML:
		return writeYAML(w, cmds)
	default:
		return fmt.Errorf("invalid format: %s", f)
	}
}

// WriteShellInfo writes info in the given format.
func WriteShellInfo(w io.Writer, f Format, info ShellInfo) error {
	switch f {
	case FormatPlain:
		_, err := fmt.Fprintf(w, "shell: %s\nshell path: %s\nhistory: %s\n",
			info.Shell, info.ShellPath, historyLabel(info))
		return err
	case FormatTable:
		tbl := table.New("FIELD", "VALUE").WithWriter(w)
		tbl.AddRow("shell", info.Shell)
		tbl.AddRow("shell path", info.ShellPath)
		tbl.AddRow("history", historyLabel(info))
		tbl.Print()
		return nil
	case FormatJSON:
		return writeJSON(w, info)
	case FormatYAML:
		return writeYAML(w, info)
	default:
		return fmt.Errorf("invalid format: %s", f)
	}
}

func historyLabel(info ShellInfo) string {
	switch {
	case info.HistoryPath == "":
		return "(none)"
	case !info.Exists:
		return info.HistoryPath + " (missing)"
	default:
		return info.HistoryPath
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
