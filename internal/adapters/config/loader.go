// Package config provides the configuration loader for landdeploy.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// envRef matches ${NAME}. A bare $ is left as is.
var envRef = regexp.MustCompile(`\$\{(\w+)\}`)

const (
	// DefaultFilename is the configuration file looked up when none is given.
	DefaultFilename = "landdeploy.yaml"

	defaultArtifactsDir   = "artifacts"
	defaultDeploymentsDir = "deployments"
	supportedVersion      = "1"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and returns the project.
// ${VAR} references in the file are expanded from the environment before parsing.
func (l *Loader) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Projectfile
	if err := yaml.Unmarshal(expandEnv(data), &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve config directory")
	}

	return l.toProject(&file, root)
}

func (l *Loader) toProject(file *Projectfile, root string) (*domain.Project, error) {
	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(zerr.New("unsupported config version"), "version", file.Version)
	}

	project := &domain.Project{
		Version:        supportedVersion,
		Root:           root,
		ArtifactsDir:   resolveDir(root, file.Paths.Artifacts, defaultArtifactsDir),
		DeploymentsDir: resolveDir(root, file.Paths.Deployments, defaultDeploymentsDir),
		Networks:       make(map[string]domain.Network, len(file.Networks)),
	}

	for name, dto := range file.Networks {
		network, err := l.toNetwork(name, dto)
		if err != nil {
			return nil, err
		}
		project.Networks[name] = network
	}

	return project, nil
}

func (l *Loader) toNetwork(name string, dto NetworkDTO) (domain.Network, error) {
	if strings.TrimSpace(dto.URL) == "" {
		return domain.Network{}, zerr.With(zerr.New("network url is required"), "network", name)
	}

	timeout := domain.DefaultNetworkTimeout
	if dto.Timeout != "" {
		d, err := time.ParseDuration(dto.Timeout)
		if err != nil || d <= 0 {
			return domain.Network{}, zerr.With(zerr.With(zerr.New("invalid network timeout"), "network", name), "timeout", dto.Timeout)
		}
		timeout = d
	}

	accounts := make([]string, 0, len(dto.Accounts))
	for i, acc := range dto.Accounts {
		acc = strings.TrimSpace(acc)
		if acc == "" {
			// Usually an unset environment variable.
			l.logger.Warn(fmt.Sprintf("network %s: account #%d is empty, ignoring it", name, i))
			continue
		}
		accounts = append(accounts, acc)
	}

	return domain.Network{
		Name:     name,
		URL:      dto.URL,
		ChainID:  dto.ChainID,
		Accounts: accounts,
		Timeout:  timeout,
	}, nil
}

func resolveDir(root, dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}

func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		return []byte(os.Getenv(string(ref[2 : len(ref)-1])))
	})
}
