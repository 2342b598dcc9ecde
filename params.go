package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/launchdarkly/synonym-registry/framework"

	"github.com/alessio/shellescape"
	"go.yaml.in/yaml/v3"
)

// Config is the optional YAML configuration file. Command line flags override it.
type Config struct {
	// Regex patterns selecting the tests to run. A test runs if it matches any of them.
	Run []string `yaml:"run"`
	// Regex patterns selecting tests not to run.
	Skip []string `yaml:"skip"`
	// Show debug output of failed tests.
	Debug bool `yaml:"debug"`
	// Show debug output of all tests.
	DebugAll bool `yaml:"debug_all"`
	// Disable colored output.
	NoColor bool `yaml:"no_color"`
}

type commandParams struct {
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
	noColor  bool
}

func loadConfig(path string) (Config, error) {
	var config Config
	configFile, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer configFile.Close()
	configDecoder := yaml.NewDecoder(configFile)
	configDecoder.KnownFields(true)
	if err := configDecoder.Decode(&config); err != nil {
		return config, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

func (c Config) params() (commandParams, error) {
	p := commandParams{
		debug:    c.Debug,
		debugAll: c.DebugAll,
		noColor:  c.NoColor,
	}
	if err := p.filters.MustMatch.SetAll(c.Run); err != nil {
		return p, err
	}
	if err := p.filters.MustNotMatch.SetAll(c.Skip); err != nil {
		return p, err
	}
	return p, nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that runs only the given tests. A subtest is only
// reached if its parents also pass the filter, so every parent ID is included too.
func rerunCommand(program string, ids []framework.TestID) string {
	seen := make(map[string]bool)
	var alternatives []string
	for _, id := range ids {
		for i := range id.Path {
			name := framework.TestID{Path: id.Path[:i+1]}.String()
			if !seen[name] {
				seen[name] = true
				alternatives = append(alternatives, regexp.QuoteMeta(name))
			}
		}
	}
	var b commandBuilder
	b.add(program, "--run", "^("+strings.Join(alternatives, "|")+")$")
	return b.String()
}
