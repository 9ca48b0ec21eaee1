package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"text/template"

	"github.com/spf13/afero"

	"github.com/defikit-labs/defikit/internal/branding"
	"github.com/defikit-labs/defikit/internal/protocol"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Data holds the template variables available to starter templates.
type Data struct {
	ProjectName string
	DisplayName string
	CLIName     string
	ConfigFile  string
	SolVersion  string
	DefaultNet  protocol.Network
}

// Result holds the outcome of writing starter files.
type Result struct {
	Dir   string
	Files []string
}

// NewData returns template data with defaults for a project directory.
func NewData(dir string) *Data {
	return &Data{
		ProjectName: filepath.Base(dir),
		DisplayName: branding.DisplayName(),
		CLIName:     branding.CLIName(),
		ConfigFile:  branding.ConfigFile(),
		SolVersion:  "0.8.24",
		DefaultNet:  protocol.Mainnet,
	}
}

// WriteStarter renders the starter files into dir. The config file is
// overwritten unconditionally (no merge); README and .gitignore are only
// written when absent so re-running init never clobbers user edits.
func WriteStarter(fsys afero.Fs, dir string, data *Data) (*Result, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	targets := []struct {
		template  string
		out       string
		overwrite bool
	}{
		{"defikitconfig.tmpl", branding.ConfigFile(), true},
		{"README.md.tmpl", "README.md", false},
		{"gitignore.tmpl", ".gitignore", false},
	}

	result := &Result{Dir: dir}
	for _, t := range targets {
		outPath := filepath.Join(dir, t.out)
		if !t.overwrite {
			if exists, _ := afero.Exists(fsys, outPath); exists {
				continue
			}
		}

		rendered, err := render(t.template, data)
		if err != nil {
			return nil, err
		}
		if err := afero.WriteFile(fsys, outPath, rendered, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, t.out)
	}

	return result, nil
}

func render(name string, data *Data) ([]byte, error) {
	raw, err := fs.ReadFile(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
