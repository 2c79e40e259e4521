package domain

import (
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// DefaultNetworkTimeout bounds how long a deployment waits to be mined when a network sets no timeout.
const DefaultNetworkTimeout = 2 * time.Minute

// Network holds the connection settings for one blockchain network.
type Network struct {
	Name     string
	URL      string
	ChainID  uint64
	Accounts []string
	Timeout  time.Duration
}

// Project is the loaded landdeploy configuration.
type Project struct {
	Version        string
	Root           string
	ArtifactsDir   string
	DeploymentsDir string
	Networks       map[string]Network
}

// Network returns the named network or ErrNetworkNotFound.
func (p *Project) Network(name string) (Network, error) {
	n, ok := p.Networks[name]
	if !ok {
		return Network{}, zerr.With(zerr.With(zerr.Wrap(ErrNetworkNotFound, "unknown network"),
			"network", name), "available", strings.Join(p.NetworkNames(), ","))
	}
	return n, nil
}

// NetworkNames returns the configured network names in sorted order.
func (p *Project) NetworkNames() []string {
	names := make([]string, 0, len(p.Networks))
	for name := range p.Networks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
