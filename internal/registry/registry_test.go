package registry

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/id"
)

func TestLookupKnownContract(t *testing.T) {
	got, err := Lookup(id.ChainArbitrum, Router)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got != "0xaBBc5F99639c9B6bCb58544ddf04EFA6802F4064" {
		t.Fatalf("unexpected router address: %s", got)
	}
	if viaContract, err := Contract(id.ChainArbitrum, Router); err != nil || viaContract != got {
		t.Fatalf("Contract disagrees with Lookup: %s %v", viaContract, err)
	}
	if got := MustContract(id.ChainAvalanche, DataStore); got != "0x2F0b22339414ADeD7D5F06f9D604c7fF5b2fe3f6" {
		t.Fatalf("unexpected datastore address: %s", got)
	}
}

func TestLookupUnknownChainIsConfigError(t *testing.T) {
	_, err := Lookup(1, Router)
	if err == nil {
		t.Fatal("expected unknown chain error")
	}
	if !clierr.IsConfig(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if err.Error() != "unknown chain id 1" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestLookupUnknownNameIsConfigError(t *testing.T) {
	_, err := Lookup(id.ChainArbitrum, "Nonexistent")
	if !clierr.IsConfig(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Nonexistent"`) || !strings.Contains(err.Error(), "42161") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestMustContractPanicsOnUnknownName(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !clierr.IsConfig(err) {
			t.Fatalf("expected configuration error panic, got %v", r)
		}
	}()
	MustContract(id.ChainBSC, GlvRouter)
}

func TestZeroAddressSentinel(t *testing.T) {
	got, err := Lookup(id.ChainArbitrumGoerli, "Vault")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if IsDeployed(got) {
		t.Fatalf("expected zero-address sentinel, got %s", got)
	}
	deployed, _ := Lookup(id.ChainArbitrumGoerli, DataStore)
	if !IsDeployed(deployed) {
		t.Fatalf("expected deployed datastore, got %s", deployed)
	}
}

func TestEveryAddressIsWellFormed(t *testing.T) {
	for _, chainID := range Chains() {
		names, err := Names(chainID)
		if err != nil {
			t.Fatalf("Names(%d) failed: %v", chainID, err)
		}
		for _, name := range names {
			addr := MustContract(chainID, name)
			if !common.IsHexAddress(addr) {
				t.Fatalf("chain %d contract %s has malformed address %q", chainID, name, addr)
			}
		}
	}
}

func TestChainsMatchSupportedChains(t *testing.T) {
	chains := Chains()
	supported := id.SupportedChains()
	if len(chains) != len(supported) {
		t.Fatalf("registry covers %d chains, id knows %d", len(chains), len(supported))
	}
	for i, chain := range supported {
		if chains[i] != chain.EVMChainID {
			t.Fatalf("chain mismatch at %d: %d vs %d", i, chains[i], chain.EVMChainID)
		}
		if _, ok := DefaultRPCURL(chain.EVMChainID); !ok {
			t.Fatalf("missing default rpc for chain %d", chain.EVMChainID)
		}
	}
}

func TestNativeTokenMatchesWrappedToken(t *testing.T) {
	for _, chainID := range Chains() {
		wrapped, ok := id.WrappedToken(chainID)
		if !ok {
			t.Fatalf("no wrapped token for chain %d", chainID)
		}
		native := MustContract(chainID, NativeToken)
		if !strings.EqualFold(native, wrapped.Address) {
			t.Fatalf("chain %d NATIVE_TOKEN %s does not match wrapped token %s", chainID, native, wrapped.Address)
		}
	}
}

func TestNamesUnknownChain(t *testing.T) {
	if _, err := Names(999); !clierr.IsConfig(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestABIConstantsParse(t *testing.T) {
	abis := []string{
		ERC20ABI,
		DataStoreABI,
		MulticallABI,
		ExchangeRouterABI,
		GlvRouterABI,
	}
	for _, raw := range abis {
		if _, err := abi.JSON(strings.NewReader(raw)); err != nil {
			t.Fatalf("failed to parse abi json: %v", err)
		}
	}
}

func TestBindersResolveRegistryAddresses(t *testing.T) {
	cases := []struct {
		binder Binder
		name   string
	}{
		{DataStoreContract, DataStore},
		{MulticallContract, Multicall},
		{ExchangeRouterContract, ExchangeRouter},
		{GlvRouterContract, GlvRouter},
	}
	for _, tc := range cases {
		bound, err := tc.binder(id.ChainArbitrum, nil)
		if err != nil {
			t.Fatalf("bind %s: %v", tc.name, err)
		}
		if bound.Address != common.HexToAddress(MustContract(id.ChainArbitrum, tc.name)) {
			t.Fatalf("bound %s at unexpected address %s", tc.name, bound.Address.Hex())
		}
		if bound.Connected() {
			t.Fatalf("expected %s binding without backend to be disconnected", tc.name)
		}
	}
	if _, err := GlvRouterContract(id.ChainBSC, nil); !clierr.IsConfig(err) {
		t.Fatalf("expected configuration error for missing GlvRouter, got %v", err)
	}
}

func TestBindContractWithCustomABI(t *testing.T) {
	bound, err := BindContract(id.ChainAvalanche, GlvReader, ERC20ABI, nil)
	if err != nil {
		t.Fatalf("BindContract failed: %v", err)
	}
	if bound.Name != GlvReader {
		t.Fatalf("unexpected name: %s", bound.Name)
	}
	if _, err := BindContract(id.ChainAvalanche, GlvReader, "not json", nil); err == nil {
		t.Fatal("expected abi parse error")
	}
}

func TestPackCalldata(t *testing.T) {
	bound, err := ExchangeRouterContract(id.ChainArbitrum, nil)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	data, err := bound.Pack("sendWnt", common.HexToAddress("0x00000000000000000000000000000000000000AA"), big.NewInt(1))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(data) != 4+32+32 {
		t.Fatalf("unexpected calldata length %d", len(data))
	}
	if _, err := bound.Pack("noSuchMethod"); err == nil {
		t.Fatal("expected pack error for unknown method")
	}
}

type fakeCaller struct {
	to   common.Address
	resp []byte
	err  error
}

func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if msg.To != nil {
		f.to = *msg.To
	}
	return f.resp, f.err
}

func TestBoundCall(t *testing.T) {
	resp, err := erc20ABI.Methods["totalSupply"].Outputs.Pack(big.NewInt(4242))
	if err != nil {
		t.Fatalf("pack response: %v", err)
	}
	caller := &fakeCaller{resp: resp}
	token := common.HexToAddress("0x528A5bac7E746C9A509A1f4F6dF58A03d44279F9")
	values, err := ERC20At(token, caller).Call(context.Background(), "totalSupply")
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	supply, ok := values[0].(*big.Int)
	if !ok || supply.Int64() != 4242 {
		t.Fatalf("unexpected supply: %#v", values)
	}
	if caller.to != token {
		t.Fatalf("call sent to %s, want %s", caller.to.Hex(), token.Hex())
	}
}

func TestBoundCallErrors(t *testing.T) {
	token := common.HexToAddress("0x528A5bac7E746C9A509A1f4F6dF58A03d44279F9")
	if _, err := ERC20At(token, nil).Call(context.Background(), "totalSupply"); err == nil {
		t.Fatal("expected disconnected error")
	}
	failing := &fakeCaller{err: errors.New("rpc down")}
	_, err := ERC20At(token, failing).Call(context.Background(), "totalSupply")
	cErr, ok := clierr.As(err)
	if !ok || cErr.Code != clierr.CodeUnavailable {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	connected := ZeroAddressContract(nil).Connect(failing)
	if !connected.Connected() || connected.Address != (common.Address{}) {
		t.Fatalf("unexpected zero-address binding: %+v", connected)
	}
}

func TestResolveRPCURL(t *testing.T) {
	override, err := ResolveRPCURL(" https://rpc.example.test ", id.ChainArbitrum)
	if err != nil {
		t.Fatalf("resolve with override: %v", err)
	}
	if override != "https://rpc.example.test" {
		t.Fatalf("unexpected override value: %q", override)
	}
	if rpc, err := ResolveRPCURL("", id.ChainAvalanche); err != nil || rpc == "" {
		t.Fatalf("expected avalanche default rpc, got %q err=%v", rpc, err)
	}
	if _, err := ResolveRPCURL("", 999999); err == nil {
		t.Fatal("expected missing chain default rpc error")
	}
}

func TestIsAllowedSnapshotURL(t *testing.T) {
	if !IsAllowedSnapshotURL("https://snapshots.example.com/arbitrum.json") {
		t.Fatal("expected https endpoint to be allowed")
	}
	if !IsAllowedSnapshotURL("http://127.0.0.1:8080/markets") {
		t.Fatal("expected loopback endpoint to be allowed for tests/dev")
	}
	if IsAllowedSnapshotURL("http://snapshots.example.com/arbitrum.json") {
		t.Fatal("did not expect non-https endpoint to be allowed for non-loopback")
	}
	if IsAllowedSnapshotURL("not-a-url") {
		t.Fatal("did not expect malformed endpoint to be allowed")
	}
}
