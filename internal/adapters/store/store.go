// Package store persists deployment records per network.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofrs/flock"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	lockFile = ".lock"
	ext      = ".json"
)

var _ ports.DeploymentStore = (*Store)(nil)

// Store implements ports.DeploymentStore with one JSON file per contract under
// <dir>/<network>/<Name>.json.
type Store struct{}

// NewStore creates a new deployment store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the deployment record of a contract on a network.
func (s *Store) Get(dir, network, name string) (*domain.Deployment, error) {
	if err := validateNames(network, name); err != nil {
		return nil, err
	}
	path := recordPath(dir, network, name)

	//nolint:gosec // Path is built from the configured deployments directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read deployment record"), "path", path)
	}

	var d domain.Deployment
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal deployment record"), "path", path)
	}
	return &d, nil
}

// List returns all records of a network sorted by contract name.
func (s *Store) List(dir, network string) ([]domain.Deployment, error) {
	if err := validateNames(network); err != nil {
		return nil, err
	}
	networkDir := filepath.Join(dir, network)

	entries, err := os.ReadDir(networkDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list deployments"), "path", networkDir)
	}

	var out []domain.Deployment
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		d, err := s.Get(dir, network, strings.TrimSuffix(entry.Name(), ext))
		if err != nil {
			return nil, err
		}
		if d != nil {
			out = append(out, *d)
		}
	}

	slices.SortFunc(out, func(a, b domain.Deployment) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

// Put stores the record, holding the network's file lock while writing.
func (s *Store) Put(dir string, d domain.Deployment) error {
	if d.Name == "" || d.Network == "" {
		return zerr.New("deployment record needs a name and a network")
	}
	if err := validateNames(d.Network, d.Name); err != nil {
		return err
	}

	networkDir := filepath.Join(dir, d.Network)
	if err := os.MkdirAll(networkDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create deployments directory"), "path", networkDir)
	}

	lock := flock.New(filepath.Join(networkDir, lockFile))
	if err := lock.Lock(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to lock deployments directory"), "path", networkDir)
	}
	defer lock.Unlock() //nolint:errcheck // Best effort unlock in defer

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal deployment record")
	}
	data = append(data, '\n')

	path := recordPath(dir, d.Network, d.Name)
	tmp := path + ".tmp"
	//nolint:gosec // Path is built from the configured deployments directory
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write deployment record"), "path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace deployment record"), "path", path)
	}

	return nil
}

func recordPath(dir, network, name string) string {
	return filepath.Join(dir, network, name+ext)
}

// validateNames rejects names that would resolve outside their directory.
func validateNames(names ...string) error {
	for _, name := range names {
		if !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) || name == "." {
			return zerr.With(zerr.Wrap(domain.ErrInvalidRecordName, "cannot use name as a record path"), "name", name)
		}
	}
	return nil
}
