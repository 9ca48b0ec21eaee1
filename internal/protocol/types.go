package protocol

import (
	"context"
	"strings"
)

// ID identifies a supported protocol. The set is closed; unknown input maps
// to the Error sentinel.
type ID string

const (
	Aave     ID = "AAVE"
	Bancor   ID = "BANCOR"
	Compound ID = "COMPOUND"
	Kyber    ID = "KYBER"
	Maker    ID = "MAKER"
	Uniswap  ID = "UNISWAP"

	// Error is the sentinel bucket for unrecognized protocol identifiers.
	Error ID = "ERROR"
)

// Supported lists the supported protocols in canonical order. Error is not a
// supported protocol and is excluded.
func Supported() []ID {
	return []ID{Aave, Bancor, Compound, Kyber, Maker, Uniswap}
}

// ParseID normalizes raw input (case-insensitive) to a protocol ID. Unknown
// identifiers return (Error, false).
func ParseID(raw string) (ID, bool) {
	id := ID(strings.ToUpper(strings.TrimSpace(raw)))
	for _, s := range Supported() {
		if id == s {
			return s, true
		}
	}
	return Error, false
}

// Network identifies a deployment network tier.
type Network string

const (
	Mainnet Network = "MAINNET"
	Ropsten Network = "ROPSTEN"
	Kovan   Network = "KOVAN"

	// AllNetworks is the wildcard meaning "every network the protocol is
	// deployed on".
	AllNetworks Network = "all"
)

// Networks lists the concrete network tiers in canonical order. The wildcard
// is excluded.
func Networks() []Network {
	return []Network{Mainnet, Ropsten, Kovan}
}

// ParseNetwork normalizes raw input (case-insensitive) to a network.
// Unknown identifiers return ("", false).
func ParseNetwork(raw string) (Network, bool) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, string(AllNetworks)) {
		return AllNetworks, true
	}
	net := Network(strings.ToUpper(trimmed))
	for _, n := range Networks() {
		if net == n {
			return n, true
		}
	}
	return "", false
}

// ImportSpec is one user-declared contract-import request. It is immutable
// input: generators must never modify it.
type ImportSpec struct {
	Protocol     string  `mapstructure:"protocol" json:"protocol"`
	Network      Network `mapstructure:"network" json:"network,omitempty"`
	ContractName string  `mapstructure:"contractName" json:"contractName,omitempty"`
	Address      string  `mapstructure:"address" json:"address,omitempty"`
}

// ABIEntry is one opaque serialized interface description. Order-preserving;
// duplicates allowed.
type ABIEntry struct {
	RawABI string
}

// AddressRecord is a single deployed-contract pointer.
type AddressRecord struct {
	ContractName string
	Address      string
	Network      Network
}

// WriterResult is the output contract every generator returns. No-op
// protocols resolve with empty slices and an empty dependency pack rather
// than an error.
type WriterResult struct {
	ABIFragments   []ABIEntry
	AddressRecords []AddressRecord
	DependencyPack string
}

// Generator turns one contract-import request into scaffolding output under
// targetDir. It must not mutate spec.
type Generator func(ctx context.Context, targetDir, solverVersion string, network Network, spec ImportSpec) (*WriterResult, error)
