// Package config provides INI-based configuration loading for dmux.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Keys that hold a service's shell invocation. The first one present wins.
var commandKeys = []string{"incantation", "command"}

// Service is a named shell invocation run inside its own tmux window.
type Service struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// Config is the set of services loaded from config.ini, in file order.
type Config struct {
	Path     string
	Services []Service
}

// Error reports a config file that could not be parsed or is missing a
// required field.
type Error struct {
	Path    string
	Section string
	Err     error
}

func (e *Error) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("config: %s: [%s]: %v", e.Path, e.Section, e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load reads the config file at path. A missing file (and its directory) is
// created empty, yielding a Config with no services.
func Load(path string) (*Config, error) {
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		if cerr, ok := err.(*Error); ok {
			cerr.Path = path
		}
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes INI bytes into a Config. Every section other than DEFAULT is a
// service; keys in DEFAULT are inherited by all services. A service defined
// twice, or a key repeated within one section, is an error.
func Parse(data []byte) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:         true,
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
		AllowNonUniqueSections:  true,
		AllowShadows:            true,
		// Keep repeated identical values so checkDuplicateKeys sees them.
		AllowDuplicateShadowValues: true,
	}, data)
	if err != nil {
		return nil, &Error{Err: err}
	}

	var defaults []*ini.Section
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			defaults = append(defaults, sec)
		}
	}

	cfg := &Config{}
	seen := make(map[string]bool)
	for _, sec := range f.Sections() {
		if err := checkDuplicateKeys(sec); err != nil {
			return nil, err
		}
		name := sec.Name()
		if name == ini.DefaultSection {
			continue
		}
		if seen[name] {
			return nil, &Error{Section: name, Err: fmt.Errorf("section defined more than once")}
		}
		seen[name] = true

		cmd, ok := lookupCommand(sec, defaults)
		if !ok {
			return nil, &Error{Section: name, Err: fmt.Errorf("missing required field %q", commandKeys[0])}
		}
		cfg.Services = append(cfg.Services, Service{Name: name, Command: cmd})
	}
	return cfg, nil
}

func checkDuplicateKeys(sec *ini.Section) error {
	for _, k := range sec.Keys() {
		if len(k.ValueWithShadows()) > 1 {
			return &Error{Section: sec.Name(), Err: fmt.Errorf("key %q set more than once", k.Name())}
		}
	}
	return nil
}

// lookupCommand checks the section first, then DEFAULT sections with later
// ones taking precedence.
func lookupCommand(sec *ini.Section, defaults []*ini.Section) (string, bool) {
	chain := []*ini.Section{sec}
	for i := len(defaults) - 1; i >= 0; i-- {
		chain = append(chain, defaults[i])
	}
	for _, s := range chain {
		for _, k := range commandKeys {
			if s.HasKey(k) {
				return s.Key(k).String(), true
			}
		}
	}
	return "", false
}

// Lookup returns the service with the given name.
func (c *Config) Lookup(name string) (Service, bool) {
	for _, s := range c.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// Names returns service names in file order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Services))
	for _, s := range c.Services {
		names = append(names, s.Name)
	}
	return names
}

func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	return f.Close()
}
