package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/defikit-labs/defikit/internal/branding"
	"github.com/defikit-labs/defikit/internal/protocol"
)

// Config is the parsed, validated project configuration.
type Config struct {
	ContractImports []protocol.ImportSpec
	SolVersion      string
	DefaultNet      protocol.Network
}

// Path returns the config file path for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, branding.ConfigFile())
}

// Load reads, validates, and parses the project config. The DEFIKIT_SOLVERSION
// and DEFIKIT_DEFAULTNET environment variables override the file values.
func Load(fsys afero.Fs, dir string) (*Config, error) {
	path := Path(dir)

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s found in %s; run '%s init' first",
				branding.ConfigFile(), dir, branding.CLIName())
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("invalid %s:\n  %s", branding.ConfigFile(), strings.Join(msgs, "\n  "))
	}

	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(branding.EnvPrefix())
	_ = v.BindEnv("solversion")
	_ = v.BindEnv("defaultNet")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var imports []protocol.ImportSpec
	if err := v.UnmarshalKey("contractImports", &imports); err != nil {
		return nil, fmt.Errorf("parsing contractImports: %w", err)
	}

	cfg := &Config{
		ContractImports: imports,
		SolVersion:      v.GetString("solversion"),
	}

	if _, err := semver.NewVersion(cfg.SolVersion); err != nil {
		return nil, fmt.Errorf("solversion %q is not a valid semantic version: %w", cfg.SolVersion, err)
	}

	defaultNet, ok := protocol.ParseNetwork(v.GetString("defaultNet"))
	if !ok {
		return nil, fmt.Errorf("defaultNet %q is not a known network (use %s or %q)",
			v.GetString("defaultNet"), networkList(), protocol.AllNetworks)
	}
	cfg.DefaultNet = defaultNet

	// Normalize per-import networks up front so dispatch only ever sees
	// canonical identifiers. Empty stays empty: dispatch falls back to
	// DefaultNet.
	for i, spec := range cfg.ContractImports {
		if spec.Network == "" {
			continue
		}
		net, ok := protocol.ParseNetwork(string(spec.Network))
		if !ok {
			return nil, fmt.Errorf("contractImports[%d]: network %q is not a known network", i, spec.Network)
		}
		cfg.ContractImports[i].Network = net
	}

	return cfg, nil
}

func networkList() string {
	var names []string
	for _, n := range protocol.Networks() {
		names = append(names, string(n))
	}
	return strings.Join(names, ", ")
}
