package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed environments.yaml
var defaultEnvironments []byte

// Credentials are the demo account used to log in to the shop.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// Account is the name shown in the account page welcome heading.
	Account string `yaml:"account"`
}

// Environment describes one deployment of the FashionHub site.
type Environment struct {
	Name        string      `yaml:"-"`
	BaseURL     string      `yaml:"base_url"`
	HomeURL     string      `yaml:"home_url"`
	Credentials Credentials `yaml:"credentials"`
}

// Environments maps environment names (local, stage, production) to targets.
type Environments map[string]Environment

// ParseEnvironments decodes a YAML environment table.
func ParseEnvironments(data []byte) (Environments, error) {
	var envs Environments
	if err := yaml.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("config: decode environments: %w", err)
	}
	for name, env := range envs {
		env.Name = name
		envs[name] = env
	}
	return envs, nil
}

// LoadEnvironments reads the table from path, or the built-in one when path
// is empty.
func LoadEnvironments(path string) (Environments, error) {
	if path == "" {
		return ParseEnvironments(defaultEnvironments)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read environments: %w", err)
	}
	return ParseEnvironments(data)
}

// Lookup returns the named environment.
func (e Environments) Lookup(name string) (Environment, error) {
	env, ok := e[name]
	if !ok {
		return Environment{}, fmt.Errorf("%w: %q (known: %v)", errUnknownEnvironment, name, e.names())
	}
	return env, nil
}

func (e Environments) names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
