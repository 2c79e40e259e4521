// Package artifacts reads compiled contract artifacts from disk.
//
// Both Hardhat artifacts (bytecode as a hex string) and Foundry artifacts
// (bytecode as an object with an "object" field) are understood.
package artifacts

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/zerr"
)

// errFound stops the directory walk once the artifact has been located.
var errFound = errors.New("found")

// Loader implements ports.ArtifactLoader.
type Loader struct{}

// NewLoader creates a new artifact loader.
func NewLoader() *Loader {
	return &Loader{}
}

type artifactFile struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

type foundryBytecode struct {
	Object string `json:"object"`
}

// Load returns the artifact for the named contract found under dir.
func (l *Loader) Load(dir, name string) (*domain.Artifact, error) {
	path, err := find(dir, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is found under the configured artifacts dir
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read artifact"), "path", path)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, invalid(zerr.Wrap(err, "failed to parse artifact"), path)
	}
	if len(file.ABI) == 0 {
		return nil, invalid(zerr.New("artifact has no abi"), path)
	}

	code, err := decodeBytecode(file.Bytecode)
	if err != nil {
		return nil, invalid(err, path)
	}
	if len(code) == 0 {
		// Interfaces and abstract contracts compile to empty bytecode.
		return nil, invalid(zerr.New("artifact has no bytecode"), path)
	}

	contractName := file.ContractName
	if contractName == "" {
		contractName = name
	}

	return &domain.Artifact{
		ContractName: contractName,
		SourceName:   file.SourceName,
		ABI:          file.ABI,
		Bytecode:     code,
	}, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		var obj foundryBytecode
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, zerr.Wrap(err, "unrecognised bytecode field")
		}
		hex = obj.Object
	}
	if hex == "" {
		return nil, nil
	}
	if len(hex) < 2 || hex[:2] != "0x" {
		hex = "0x" + hex
	}

	code, err := hexutil.Decode(hex)
	if err != nil {
		return nil, zerr.Wrap(err, "bytecode is not valid hex")
	}
	return code, nil
}

// find looks for <name>.json directly under dir, then anywhere below it.
func find(dir, name string) (string, error) {
	direct := filepath.Join(dir, name+".json")
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return direct, nil
	}

	target := name + ".json"
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "build-info" {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == target {
			found = path
			return errFound
		}
		return nil
	})
	if found != "" {
		return found, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, "failed to search artifacts"), "dir", dir)
	}

	return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "cannot load artifact"), "contract", name), "dir", dir)
}

func invalid(cause error, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrArtifactInvalid, cause), "cannot load artifact"), "path", path)
}
