package writers

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"

	"github.com/defikit-labs/defikit/internal/protocol"
)

//go:embed data/*.yaml
var datasetFS embed.FS

// dataset describes one protocol's scaffolding inputs, parsed from the
// embedded YAML file named after the protocol.
type dataset struct {
	DependencyPack string            `yaml:"dependency_pack"`
	Contracts      []datasetContract `yaml:"contracts"`
}

type datasetContract struct {
	Name      string            `yaml:"name"`
	Interface string            `yaml:"interface"`
	ABI       string            `yaml:"abi"`
	Addresses map[string]string `yaml:"addresses"`
}

var (
	datasetsOnce sync.Once
	datasets     map[protocol.ID]*dataset
	datasetsErr  error
)

// loadDatasets parses every embedded dataset once. A dataset must exist for
// every supported protocol; a missing or malformed file is a programming
// error surfaced at first use.
func loadDatasets() (map[protocol.ID]*dataset, error) {
	datasetsOnce.Do(func() {
		parsed := make(map[protocol.ID]*dataset)
		for _, id := range protocol.Supported() {
			name := "data/" + strings.ToLower(string(id)) + ".yaml"
			raw, err := fs.ReadFile(datasetFS, name)
			if err != nil {
				datasetsErr = fmt.Errorf("missing dataset for %s: %w", id, err)
				return
			}
			var ds dataset
			if err := yaml.Unmarshal(raw, &ds); err != nil {
				datasetsErr = fmt.Errorf("parsing dataset %s: %w", name, err)
				return
			}
			parsed[id] = &ds
		}
		datasets = parsed
	})
	return datasets, datasetsErr
}

// addressesFor returns the contract's address records in canonical network
// order, filtered to net unless net is the wildcard.
func (c *datasetContract) addressesFor(net protocol.Network) []protocol.AddressRecord {
	var records []protocol.AddressRecord
	for _, tier := range protocol.Networks() {
		addr, ok := c.Addresses[string(tier)]
		if !ok {
			continue
		}
		if net != protocol.AllNetworks && net != tier {
			continue
		}
		records = append(records, protocol.AddressRecord{
			ContractName: c.Name,
			Address:      addr,
			Network:      tier,
		})
	}
	return records
}

// Info summarizes one protocol's dataset for display.
type Info struct {
	ID             protocol.ID
	DependencyPack string
	Contracts      []string
}

// Catalog returns a display summary of every supported protocol in canonical
// order.
func Catalog() ([]Info, error) {
	all, err := loadDatasets()
	if err != nil {
		return nil, err
	}
	var infos []Info
	for _, id := range protocol.Supported() {
		ds := all[id]
		info := Info{ID: id, DependencyPack: ds.DependencyPack}
		for _, c := range ds.Contracts {
			info.Contracts = append(info.Contracts, c.Name)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
