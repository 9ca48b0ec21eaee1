package engine

import (
	"strings"
	"testing"

	"github.com/defikit-labs/defikit/internal/protocol"
)

func TestRenderABIRegistry(t *testing.T) {
	t.Run("groups fragments per protocol in canonical order", func(t *testing.T) {
		acc := NewAccumulator()
		// Fold UNISWAP first: canonical order must win over touch order.
		acc.Fold(protocol.Uniswap, &protocol.WriterResult{
			ABIFragments: []protocol.ABIEntry{{RawABI: `{"name":"getPair"}`}},
		})
		acc.Fold(protocol.Bancor, &protocol.WriterResult{
			ABIFragments: []protocol.ABIEntry{{RawABI: `{"name":"addressOf"}`}, {RawABI: `{"name":"rateByPath"}`}},
		})

		want := `BANCOR_ABI = {
  {"name":"addressOf"},
  {"name":"rateByPath"}
}

UNISWAP_ABI = {
  {"name":"getPair"}
}`
		if got := RenderABIRegistry(acc); got != want {
			t.Errorf("RenderABIRegistry() =\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("empty buckets and error bucket omitted", func(t *testing.T) {
		acc := NewAccumulator()
		acc.Fold(protocol.Maker, &protocol.WriterResult{})
		acc.Fold(protocol.Error, &protocol.WriterResult{})

		if got := RenderABIRegistry(acc); got != "" {
			t.Errorf("RenderABIRegistry() = %q, want empty string", got)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		acc := NewAccumulator()
		acc.Fold(protocol.Aave, &protocol.WriterResult{
			ABIFragments: []protocol.ABIEntry{{RawABI: "x"}},
		})
		first := RenderABIRegistry(acc)
		for i := 0; i < 5; i++ {
			if got := RenderABIRegistry(acc); got != first {
				t.Fatalf("call %d produced different output", i)
			}
		}
	})
}

func TestRenderAddressRegistry(t *testing.T) {
	t.Run("nested protocol, network, contract", func(t *testing.T) {
		acc := NewAccumulator()
		acc.Fold(protocol.Bancor, &protocol.WriterResult{
			AddressRecords: []protocol.AddressRecord{
				{ContractName: "ContractRegistry", Address: "0x52Ae12ABe5D8BD778BD5397F99cA900624CfADD4", Network: protocol.Mainnet},
				{ContractName: "ContractRegistry", Address: "0xFD95E724962fCfC269010A0c6700Aa09D5de3074", Network: protocol.Ropsten},
			},
		})

		want := `Addresses = {
  BANCOR: {
    MAINNET: {
      ContractRegistry: "0x52Ae12ABe5D8BD778BD5397F99cA900624CfADD4",
    },
    ROPSTEN: {
      ContractRegistry: "0xFD95E724962fCfC269010A0c6700Aa09D5de3074",
    },
  },
}`
		if got := RenderAddressRegistry(acc); got != want {
			t.Errorf("RenderAddressRegistry() =\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("empty state renders empty object", func(t *testing.T) {
		acc := NewAccumulator()
		if got := RenderAddressRegistry(acc); got != "Addresses = {}" {
			t.Errorf("RenderAddressRegistry() = %q, want empty object", got)
		}
	})

	t.Run("protocols without records omitted", func(t *testing.T) {
		acc := NewAccumulator()
		acc.Fold(protocol.Maker, &protocol.WriterResult{})
		acc.Fold(protocol.Error, &protocol.WriterResult{})
		acc.Fold(protocol.Kyber, &protocol.WriterResult{
			AddressRecords: []protocol.AddressRecord{
				{ContractName: "KyberNetworkProxy", Address: "0x9AAb3f75489902f3a48495025729a0AF77d4b11e", Network: protocol.Mainnet},
			},
		})

		got := RenderAddressRegistry(acc)
		if strings.Contains(got, "MAKER") || strings.Contains(got, "ERROR") {
			t.Errorf("output contains empty buckets:\n%s", got)
		}
		if !strings.Contains(got, "KYBER") {
			t.Errorf("output missing KYBER bucket:\n%s", got)
		}
	})
}
