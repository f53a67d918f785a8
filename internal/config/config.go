package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec      string         `koanf:"spec"`
	Client    ClientConfig   `koanf:"client"`
	Go        GoConfig       `koanf:"go"`
	Templates TemplateConfig `koanf:"templates"`
}

type ClientConfig struct {
	// Name overrides the client name derived from the spec title.
	Name         string   `koanf:"name"`
	ParamStructs bool     `koanf:"param-structs"`
	Annotations  []string `koanf:"annotations"`
	Middleware   bool     `koanf:"middleware"`
}

type GoConfig struct {
	OutputDir string `koanf:"output-dir"`
	Package   string `koanf:"package"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

// BindFlags binds the generate command's flags.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "Config file path (default: wilbur.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path or URL")
	flags.String("client-name", "", "Client name override")
	flags.Bool("param-structs", false, "Group operation parameters into structs")
	flags.StringSlice("annotations", nil, "Annotations attached to every generated struct")
	flags.Bool("middleware", false, "Enable transport middleware support")
	flags.StringP("output-dir", "o", "", "Output directory for generated code")
	flags.StringP("package", "p", "", "Package name for generated code")
	flags.String("templates", "", "Custom templates directory")
	flags.Bool("dry-run", false, "Print output without writing files")
}

// Load merges the config file (when present) with changed flags, flags
// winning.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat("wilbur.yaml"); err == nil {
			configFile = "wilbur.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)
	flags := cmd.Flags()

	getString := func(name string) string {
		v, err := flags.GetString(name)
		if err != nil {
			return ""
		}
		return v
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("client-name"); v != "" {
		m["client.name"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["go.output-dir"] = v
	}
	if v := getString("package"); v != "" {
		m["go.package"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if v, err := flags.GetStringSlice("annotations"); err == nil && len(v) > 0 {
		m["client.annotations"] = v
	}
	if flags.Changed("param-structs") {
		v, _ := flags.GetBool("param-structs")
		m["client.param-structs"] = v
	}
	if flags.Changed("middleware") {
		v, _ := flags.GetBool("middleware")
		m["client.middleware"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Go.Package == "" {
		return fmt.Errorf("package name is required")
	}
	if c.Go.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
