package domain

import "time"

// DeploymentRequest is the transient description of a single contract deployment.
type DeploymentRequest struct {
	ContractName    string
	ConstructorArgs []string
}

// DeployOptions carries the sender and constructor arguments for a deployment.
type DeployOptions struct {
	From string
	Args []string
}

// Options returns the DeployOptions that submit the request from the given address.
func (r DeploymentRequest) Options(from string) DeployOptions {
	return DeployOptions{
		From: from,
		Args: append([]string(nil), r.ConstructorArgs...),
	}
}

// DeploymentResult describes a mined contract creation.
type DeploymentResult struct {
	Name        string
	Address     string
	TxHash      string
	From        string
	Args        []string
	BlockNumber uint64
	GasUsed     uint64
}

// Deployment is the persisted record of a contract deployed to a network.
type Deployment struct {
	Name        string    `json:"name"`
	Network     string    `json:"network"`
	ChainID     uint64    `json:"chain_id,omitzero"`
	Address     string    `json:"address"`
	TxHash      string    `json:"tx_hash,omitzero"`
	From        string    `json:"from,omitzero"`
	Args        []string  `json:"args,omitempty"`
	BlockNumber uint64    `json:"block_number,omitzero"`
	GasUsed     uint64    `json:"gas_used,omitzero"`
	Checksum    string    `json:"checksum,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// Result converts the record into a DeploymentResult.
func (d *Deployment) Result() *DeploymentResult {
	return &DeploymentResult{
		Name:        d.Name,
		Address:     d.Address,
		TxHash:      d.TxHash,
		From:        d.From,
		Args:        d.Args,
		BlockNumber: d.BlockNumber,
		GasUsed:     d.GasUsed,
	}
}
