package config

// Projectfile represents the structure of the landdeploy.yaml configuration file.
type Projectfile struct {
	Version  string                `yaml:"version"`
	Paths    PathsDTO              `yaml:"paths"`
	Networks map[string]NetworkDTO `yaml:"networks"`
}

// PathsDTO locates the compiled artifacts and the deployment records.
type PathsDTO struct {
	Artifacts   string `yaml:"artifacts"`
	Deployments string `yaml:"deployments"`
}

// NetworkDTO represents a network definition in the configuration.
type NetworkDTO struct {
	URL      string   `yaml:"url"`
	ChainID  uint64   `yaml:"chainId"`
	Timeout  string   `yaml:"timeout"`
	Accounts []string `yaml:"accounts"`
}
