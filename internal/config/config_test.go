package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "generate", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	BindFlags(cmd)
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wilbur.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Spec: "spec.yaml",
				Go:   GoConfig{OutputDir: "output", Package: "gen"},
			},
			wantErr: false,
		},
		{
			name: "missing spec",
			config: Config{
				Go: GoConfig{OutputDir: "output", Package: "gen"},
			},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name: "missing package",
			config: Config{
				Spec: "spec.yaml",
				Go:   GoConfig{OutputDir: "output"},
			},
			wantErr:     true,
			errContains: "package name is required",
		},
		{
			name: "missing output dir",
			config: Config{
				Spec: "spec.yaml",
				Go:   GoConfig{Package: "gen"},
			},
			wantErr:     true,
			errContains: "output directory is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
spec: petstore.yaml
client:
  name: PetClient
  param-structs: true
  middleware: true
  annotations:
    - "//easyjson:json"
go:
  output-dir: ./gen
  package: petstore
templates:
  dir: ./tmpl
`)

	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("config", path))

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "petstore.yaml", cfg.Spec)
	require.Equal(t, "PetClient", cfg.Client.Name)
	require.True(t, cfg.Client.ParamStructs)
	require.True(t, cfg.Client.Middleware)
	require.Equal(t, []string{"//easyjson:json"}, cfg.Client.Annotations)
	require.Equal(t, "./gen", cfg.Go.OutputDir)
	require.Equal(t, "petstore", cfg.Go.Package)
	require.Equal(t, "./tmpl", cfg.Templates.Dir)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
spec: petstore.yaml
client:
  name: FromFile
go:
  output-dir: ./gen
  package: petstore
`)

	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("client-name", "FromFlag"))
	require.NoError(t, cmd.Flags().Set("package", "override"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "FromFlag", cfg.Client.Name)
	require.Equal(t, "override", cfg.Go.Package)
	require.Equal(t, "./gen", cfg.Go.OutputDir)
}

func TestLoadFlagsOnly(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("spec", "petstore.yaml"))
	require.NoError(t, cmd.Flags().Set("output-dir", "./gen"))
	require.NoError(t, cmd.Flags().Set("package", "petstore"))
	require.NoError(t, cmd.Flags().Set("param-structs", "true"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "petstore.yaml", cfg.Spec)
	require.True(t, cfg.Client.ParamStructs)
	require.False(t, cfg.Client.Middleware)
}

func TestLoadIncompleteFails(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("spec", "petstore.yaml"))

	_, err := Load(cmd)
	require.Error(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")))

	_, err := Load(cmd)
	require.Error(t, err)
}
