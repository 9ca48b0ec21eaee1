package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/defikit-labs/defikit/internal/platform/logger"
	"github.com/defikit-labs/defikit/internal/protocol"
	"github.com/defikit-labs/defikit/internal/protocol/writers"
)

func readArtifact(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestOrchestratorRun(t *testing.T) {
	newOrchestrator := func(t *testing.T) (*Orchestrator, afero.Fs) {
		t.Helper()
		fsys := afero.NewMemMapFs()
		reg, err := writers.NewRegistry(fsys, logger.NewNop())
		if err != nil {
			t.Fatalf("building registry: %v", err)
		}
		return New(fsys, reg, logger.NewNop()), fsys
	}

	t.Run("supported plus unsupported import", func(t *testing.T) {
		orch, fsys := newOrchestrator(t)
		imports := []protocol.ImportSpec{
			{Protocol: "BANCOR", Network: protocol.Mainnet},
			{Protocol: "made_up", Network: protocol.Mainnet},
		}

		packs, err := orch.Run(context.Background(), "proj", imports, "0.8.24", protocol.Mainnet)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if len(packs) != 1 || packs[0] != "@bancor/contracts-solidity" {
			t.Errorf("packs = %v, want the bancor pack only", packs)
		}

		addresses := readArtifact(t, fsys, "proj/contracts/addressRegistry.js")
		if !strings.Contains(addresses, "BANCOR: {") || !strings.Contains(addresses, "MAINNET: {") {
			t.Errorf("address registry missing BANCOR/MAINNET:\n%s", addresses)
		}
		if strings.Contains(addresses, "MADE_UP") || strings.Contains(addresses, "ERROR") {
			t.Errorf("address registry leaks unsupported bucket:\n%s", addresses)
		}

		abis := readArtifact(t, fsys, "proj/contracts/abiRegistry.js")
		if !strings.Contains(abis, "BANCOR_ABI = {") {
			t.Errorf("ABI registry missing BANCOR export:\n%s", abis)
		}

		if ok, _ := afero.Exists(fsys, "proj/contracts/interfaces/bancor/IContractRegistry.sol"); !ok {
			t.Error("bancor interface stub not written")
		}
	})

	t.Run("dependency packs deduplicated", func(t *testing.T) {
		orch, _ := newOrchestrator(t)
		imports := []protocol.ImportSpec{
			{Protocol: "UNISWAP"},
			{Protocol: "UNISWAP"},
			{Protocol: "AAVE"},
		}

		packs, err := orch.Run(context.Background(), "proj", imports, "0.8.24", protocol.Mainnet)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		seen := map[string]int{}
		for _, p := range packs {
			seen[p]++
		}
		if seen["@uniswap/v2-periphery"] != 1 {
			t.Errorf("uniswap pack appears %d times, want exactly once (packs = %v)", seen["@uniswap/v2-periphery"], packs)
		}
		if seen["@aave/protocol-v2"] != 1 {
			t.Errorf("aave pack missing from %v", packs)
		}
	})

	t.Run("no-op imports leave ABI registry empty", func(t *testing.T) {
		orch, fsys := newOrchestrator(t)
		imports := []protocol.ImportSpec{
			{Protocol: "MAKER"},
			{Protocol: "MAKER"},
		}

		packs, err := orch.Run(context.Background(), "proj", imports, "0.8.24", protocol.Mainnet)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if len(packs) != 0 {
			t.Errorf("packs = %v, want none for no-op protocol", packs)
		}

		abis := readArtifact(t, fsys, "proj/contracts/abiRegistry.js")
		if strings.TrimSpace(abis) != "" {
			t.Errorf("ABI registry = %q, want trimmed-empty", abis)
		}
	})

	t.Run("wildcard network records every tier", func(t *testing.T) {
		orch, fsys := newOrchestrator(t)
		imports := []protocol.ImportSpec{{Protocol: "UNISWAP"}}

		if _, err := orch.Run(context.Background(), "proj", imports, "0.8.24", protocol.AllNetworks); err != nil {
			t.Fatalf("Run() error: %v", err)
		}

		addresses := readArtifact(t, fsys, "proj/contracts/addressRegistry.js")
		for _, tier := range []string{"MAINNET", "ROPSTEN", "KOVAN"} {
			if !strings.Contains(addresses, tier+": {") {
				t.Errorf("address registry missing %s tier:\n%s", tier, addresses)
			}
		}
	})

	t.Run("generator failure writes no artifacts", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		boom := errors.New("writer exploded")
		failing := func(ctx context.Context, targetDir, solverVersion string, network protocol.Network, spec protocol.ImportSpec) (*protocol.WriterResult, error) {
			return nil, boom
		}
		reg := protocol.NewRegistry(map[protocol.ID]protocol.Generator{protocol.Compound: failing}, failing)
		orch := New(fsys, reg, logger.NewNop())

		_, err := orch.Run(context.Background(), "proj", []protocol.ImportSpec{{Protocol: "COMPOUND"}}, "0.8.24", protocol.Mainnet)
		if !errors.Is(err, boom) {
			t.Fatalf("Run() error = %v, want %v", err, boom)
		}

		for _, path := range []string{"proj/contracts/abiRegistry.js", "proj/contracts/addressRegistry.js"} {
			if ok, _ := afero.Exists(fsys, path); ok {
				t.Errorf("%s written despite batch failure", path)
			}
		}
	})
}

func TestUniqueStrings(t *testing.T) {
	got := uniqueStrings([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("uniqueStrings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("uniqueStrings()[%d] = %q, want %q (first-occurrence order)", i, got[i], want[i])
		}
	}
}
