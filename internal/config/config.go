// Package config holds the command line configuration of uml-generator.
//
// Every flag defaults to an environment variable, read from the process
// environment first and then from optional dotenv files:
//
//	UMLGEN_MODEL      model file to read
//	UMLGEN_OUT        generated file, "-" for standard output
//	UMLGEN_OVERRIDES  override YAML file
//	UMLGEN_PACKAGE    generated package name
//	UMLGEN_RUNTIME    import path of the properties runtime
//	UMLGEN_STRICT     fail on resolution warnings
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"uml-generator/internal/gen"
	"uml-generator/internal/resolve"
)

// Stdout is the output path meaning standard output.
const Stdout = "-"

// Config is the command line configuration.
type Config struct {
	ModelPath     string
	OutputPath    string
	OverridesPath string
	PackageName   string
	RuntimeImport string
	Strict        bool
	// Dump writes the resolved association ends to standard output.
	Dump bool
	// Verbose also prints info diagnostics.
	Verbose bool
}

// Load builds the configuration from the environment. Missing dotenv files
// are ignored; a boolean variable that does not parse is an error.
func Load(envFiles ...string) (Config, error) {
	dotenv := make(map[string]string)

	for _, name := range envFiles {
		values, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return Config{}, err
		}

		maps.Copy(dotenv, values)
	}

	env := environment(dotenv)
	defaults := gen.DefaultConfig()

	strict, err := env.getBool("UMLGEN_STRICT", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ModelPath:     env.get("UMLGEN_MODEL", ""),
		OutputPath:    env.get("UMLGEN_OUT", Stdout),
		OverridesPath: env.get("UMLGEN_OVERRIDES", ""),
		PackageName:   env.get("UMLGEN_PACKAGE", defaults.PackageName),
		RuntimeImport: env.get("UMLGEN_RUNTIME", defaults.RuntimeImport),
		Strict:        strict,
	}, nil
}

type environment map[string]string

func (e environment) get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	if value := e[key]; value != "" {
		return value
	}

	return defaultValue
}

func (e environment) getBool(key string, defaultValue bool) (bool, error) {
	value := e.get(key, "")
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}

	return b, nil
}

// RegisterFlags binds the configuration to flags, using the current values as
// defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.ModelPath, "model", c.ModelPath, "model file to read (or first argument)")
	flags.StringVar(&c.OutputPath, "out", c.OutputPath, `generated file, "-" for stdout`)
	flags.StringVar(&c.OverridesPath, "overrides", c.OverridesPath, "override YAML file")
	flags.StringVar(&c.PackageName, "package", c.PackageName, "generated package name")
	flags.StringVar(&c.RuntimeImport, "runtime", c.RuntimeImport, "import path of the properties runtime")
	flags.BoolVar(&c.Strict, "strict", c.Strict, "fail when resolution records warnings")
	flags.BoolVar(&c.Dump, "dump", c.Dump, "dump the resolved association ends")
	flags.BoolVar(&c.Verbose, "v", c.Verbose, "print info diagnostics")
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.ModelPath == "" {
		return errors.New("a model file is required")
	}

	if c.PackageName == "" {
		return errors.New("package name must not be empty")
	}

	if c.RuntimeImport == "" {
		return errors.New("runtime import path must not be empty")
	}

	return nil
}

// Resolve returns the resolution configuration.
func (c Config) Resolve() resolve.Config {
	cfg := resolve.DefaultConfig()
	cfg.StrictMode = c.Strict

	return cfg
}

// Gen returns the generator configuration.
func (c Config) Gen() gen.Config {
	cfg := gen.DefaultConfig()
	cfg.PackageName = c.PackageName
	cfg.RuntimeImport = c.RuntimeImport

	return cfg
}

// ToStdout reports whether the generated code goes to standard output.
func (c Config) ToStdout() bool {
	return c.OutputPath == "" || c.OutputPath == Stdout
}
