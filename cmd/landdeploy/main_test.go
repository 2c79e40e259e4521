package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         func(tmpDir string) []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         func(string) []string { return []string{"version"} },
			expectedExit: 0,
		},
		{
			name:         "list tasks",
			args:         func(string) []string { return []string{"tasks"} },
			expectedExit: 0,
		},
		{
			name: "missing config",
			args: func(tmpDir string) []string {
				return []string{"deploy", "-c", filepath.Join(tmpDir, "missing.yaml")}
			},
			expectedExit: 1,
		},
		{
			name: "unknown network",
			args: func(tmpDir string) []string {
				configPath := filepath.Join(tmpDir, "landdeploy.yaml")
				content := `version: "1"
networks:
  localhost:
    url: http://127.0.0.1:8545
`
				if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
				return []string{"deploy", "-c", configPath, "--network", "mainnet"}
			},
			expectedExit: 1,
		},
		{
			name: "no deployments recorded",
			args: func(tmpDir string) []string {
				configPath := filepath.Join(tmpDir, "landdeploy.yaml")
				if err := os.WriteFile(configPath, []byte("version: \"1\"\n"), 0o600); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
				return []string{"deployments", "-c", configPath}
			},
			expectedExit: 0,
		},
		{
			name:         "json logs",
			args:         func(string) []string { return []string{"--log-format", "json", "version"} },
			expectedExit: 0,
		},
		{
			name:         "unsupported log format",
			args:         func(string) []string { return []string{"--log-format", "xml", "tasks"} },
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         func(string) []string { return []string{"destroy"} },
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode := run(tt.args(t.TempDir()))
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
