// Package config loads logger settings (output file and module levels) from
// YAML or TOML files and applies them through the modlgr programmatic API.
//
// Example YAML:
//
//	file: /var/log/app.log
//	modules:
//	  ALL:
//	    ALL: MIN
//	  NET:
//	    ALL: NRM
//	    ERR: LOW
//
// The same in TOML:
//
//	file = "/var/log/app.log"
//	[modules.ALL]
//	ALL = "MIN"
//	[modules.NET]
//	ALL = "NRM"
//	ERR = "LOW"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/abyssdigger/modlgr"
)

// Format is the configuration file format
type Format int

const (
	FormatAuto Format = iota // detect from file extension
	FormatYAML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat converts "yaml", "yml", "toml" or "auto" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "", "auto":
		return FormatAuto, nil
	}
	return FormatAuto, fmt.Errorf("unsupported config format: %s", s)
}

// FileConfig is the structure of a configuration file. Modules maps a module
// name to (type name -> severity name).
type FileConfig struct {
	File    string                       `yaml:"file,omitempty" toml:"file,omitempty"`
	Modules map[string]map[string]string `yaml:"modules" toml:"modules"`
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// LoadFile reads and parses a configuration file, the format is taken from
// its extension.
func LoadFile(path string) (*FileConfig, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes configuration content in the given format and validates it.
func Parse(data []byte, format Format) (*FileConfig, error) {
	var cfg FileConfig
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
	if _, err := cfg.Table(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Table converts the module section into a level table. Every type and
// severity name must be known; values are stored as given (clamping happens
// when the table is applied to a logger).
func (c *FileConfig) Table() (modlgr.LevelTable, error) {
	table := modlgr.LevelTable{}
	for module, levels := range c.Modules {
		m := modlgr.ModuleLevels{}
		for typname, sevname := range levels {
			typ, err := modlgr.ParseLogType(typname)
			if err != nil {
				return nil, fmt.Errorf("module %q: %w", module, err)
			}
			sev, err := modlgr.ParseSeverity(sevname)
			if err != nil {
				return nil, fmt.Errorf("module %q, type %s: %w", module, typname, err)
			}
			m[typ] = sev
		}
		table[module] = m
	}
	return table, nil
}

// Apply opens the configured file (if any) on l and sets every configured
// level with SetLogLevel. Modules not mentioned keep their current levels.
func (c *FileConfig) Apply(l *modlgr.Logger) error {
	table, err := c.Table()
	if err != nil {
		return err
	}
	if c.File != "" {
		if err := l.SetFile(c.File); err != nil {
			return fmt.Errorf("failed to apply config: %w", err)
		}
	}
	for module, levels := range table {
		for typ, sev := range levels {
			l.SetLogLevel(module, sev, typ)
		}
	}
	return nil
}

// FromLogger captures the current file and level table of l.
func FromLogger(l *modlgr.Logger) *FileConfig {
	cfg := &FileConfig{File: l.File(), Modules: map[string]map[string]string{}}
	for module, levels := range l.LogLevels() {
		m := map[string]string{}
		for typ, sev := range levels {
			m[typ.String()] = sev.String()
		}
		cfg.Modules[module] = m
	}
	return cfg
}

// Marshal renders the configuration in the given format (FormatAuto means
// YAML). Map keys are written sorted.
func (c *FileConfig) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatAuto, FormatYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported config format: %s", format)
}
