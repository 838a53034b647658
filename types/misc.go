package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// Network represents the target EVM network
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkSepolia Network = "sepolia"
	NetworkHolesky Network = "holesky"
	NetworkDevnet  Network = "devnet"
)

var (
	// Chain IDs for the supported networks
	NetworkChainIDs = map[Network]*big.Int{
		NetworkMainnet: params.MainnetChainConfig.ChainID,
		NetworkSepolia: params.SepoliaChainConfig.ChainID,
		NetworkHolesky: params.HoleskyChainConfig.ChainID,
		NetworkDevnet:  big.NewInt(1337),
	}
)
