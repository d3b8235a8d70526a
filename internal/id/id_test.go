package id

import "testing"

func TestParseChainVariants(t *testing.T) {
	chain, err := ParseChain("arbitrum")
	if err != nil {
		t.Fatalf("ParseChain(arbitrum) failed: %v", err)
	}
	if chain.CAIP2 != "eip155:42161" {
		t.Fatalf("unexpected CAIP2: %s", chain.CAIP2)
	}

	chain, err = ParseChain("43114")
	if err != nil {
		t.Fatalf("ParseChain(43114) failed: %v", err)
	}
	if chain.Slug != "avalanche" {
		t.Fatalf("unexpected slug: %s", chain.Slug)
	}

	chain, err = ParseChain("eip155:999999")
	if err != nil {
		t.Fatalf("ParseChain(eip155:999999) failed: %v", err)
	}
	if chain.EVMChainID != 999999 {
		t.Fatalf("unexpected chain ID: %d", chain.EVMChainID)
	}

	if _, err := ParseChain("not a chain"); err == nil {
		t.Fatal("expected error for unknown chain input")
	}
}

func TestSupportedChainsSorted(t *testing.T) {
	chains := SupportedChains()
	if len(chains) != 6 {
		t.Fatalf("expected 6 supported chains, got %d", len(chains))
	}
	for i := 1; i < len(chains); i++ {
		if chains[i-1].EVMChainID >= chains[i].EVMChainID {
			t.Fatalf("chains not sorted: %+v", chains)
		}
	}
}

func TestTokenBySymbolIgnoresCase(t *testing.T) {
	token, ok := TokenBySymbol(ChainArbitrum, "usdc")
	if !ok {
		t.Fatal("expected usdc to resolve on arbitrum")
	}
	if token.Decimals != 6 || !AddressEqual(token.Address, "0xaf88d065e77c8cc2239327c5edb3a432268e5831") {
		t.Fatalf("unexpected token: %+v", token)
	}
	if _, ok := TokenBySymbol(ChainArbitrum, "NOPE"); ok {
		t.Fatal("did not expect unknown symbol to resolve")
	}
	if _, ok := TokenBySymbol(999, "USDC"); ok {
		t.Fatal("did not expect symbol on unknown chain to resolve")
	}
}

func TestConvertToWrapped(t *testing.T) {
	eth, ok := TokenBySymbol(ChainArbitrum, "ETH")
	if !ok || !eth.IsNative {
		t.Fatalf("expected native ETH, got %+v ok=%v", eth, ok)
	}
	got := ConvertToWrapped(ChainArbitrum, eth.Address)
	if got != "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1" {
		t.Fatalf("unexpected wrapped address: %s", got)
	}
	usdc := "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"
	if got := ConvertToWrapped(ChainArbitrum, usdc); got != usdc {
		t.Fatalf("non-native address must be unchanged, got %s", got)
	}
	if got := ConvertToWrapped(1, NativeTokenAddress); got != NativeTokenAddress {
		t.Fatalf("unknown chain must keep native placeholder, got %s", got)
	}
}

func TestIsAddress(t *testing.T) {
	if !IsAddress("0x70d95587d40A2caf56bd97485aB3Eec10Bee6336") {
		t.Fatal("expected checksummed address to be valid")
	}
	if IsAddress("0x70d95587") || IsAddress("not-an-address") {
		t.Fatal("expected malformed address to be rejected")
	}
}
