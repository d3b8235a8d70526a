package id

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
)

var (
	eip155ChainPattern = regexp.MustCompile(`^eip155:[0-9]+$`)
	evmAddressPattern  = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// NativeTokenAddress is the placeholder address used for a chain's gas token.
const NativeTokenAddress = "0x0000000000000000000000000000000000000000"

const (
	ChainBSC            int64 = 56
	ChainBSCTestnet     int64 = 97
	ChainArbitrum       int64 = 42161
	ChainArbitrumGoerli int64 = 421613
	ChainAvalanche      int64 = 43114
	ChainAvalancheFuji  int64 = 43113
)

type Chain struct {
	Name       string
	Slug       string
	CAIP2      string
	EVMChainID int64
}

type Token struct {
	Symbol    string
	Address   string
	Decimals  int
	IsNative  bool
	IsWrapped bool
}

var chainBySlug = map[string]Chain{
	"arbitrum":        {Name: "Arbitrum", Slug: "arbitrum", CAIP2: "eip155:42161", EVMChainID: ChainArbitrum},
	"arbitrum-goerli": {Name: "Arbitrum Goerli", Slug: "arbitrum-goerli", CAIP2: "eip155:421613", EVMChainID: ChainArbitrumGoerli},
	"avalanche":       {Name: "Avalanche", Slug: "avalanche", CAIP2: "eip155:43114", EVMChainID: ChainAvalanche},
	"avax":            {Name: "Avalanche", Slug: "avalanche", CAIP2: "eip155:43114", EVMChainID: ChainAvalanche},
	"avalanche-fuji":  {Name: "Avalanche Fuji", Slug: "avalanche-fuji", CAIP2: "eip155:43113", EVMChainID: ChainAvalancheFuji},
	"fuji":            {Name: "Avalanche Fuji", Slug: "avalanche-fuji", CAIP2: "eip155:43113", EVMChainID: ChainAvalancheFuji},
	"bsc":             {Name: "BSC", Slug: "bsc", CAIP2: "eip155:56", EVMChainID: ChainBSC},
	"bsc-testnet":     {Name: "BSC Testnet", Slug: "bsc-testnet", CAIP2: "eip155:97", EVMChainID: ChainBSCTestnet},
}

var chainByID = map[int64]Chain{
	ChainBSC:            chainBySlug["bsc"],
	ChainBSCTestnet:     chainBySlug["bsc-testnet"],
	ChainArbitrum:       chainBySlug["arbitrum"],
	ChainArbitrumGoerli: chainBySlug["arbitrum-goerli"],
	ChainAvalanche:      chainBySlug["avalanche"],
	ChainAvalancheFuji:  chainBySlug["avalanche-fuji"],
}

// Bootstrap token list for deep-link symbol resolution. The wrapped entry of
// each chain must match the NATIVE_TOKEN contract in the registry.
var tokenRegistry = map[int64][]Token{
	ChainArbitrum: {
		{Symbol: "ETH", Address: NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "WETH", Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Decimals: 18, IsWrapped: true},
		{Symbol: "BTC", Address: "0x47904963fc8b2340414262125aF798B9655E58Cd", Decimals: 8},
		{Symbol: "WBTC", Address: "0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f", Decimals: 8},
		{Symbol: "USDC", Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Decimals: 6},
		{Symbol: "USDT", Address: "0xFd086bC7CD5C481DCC9C85ebe478A1C0b69FCbb9", Decimals: 6},
		{Symbol: "DAI", Address: "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1", Decimals: 18},
		{Symbol: "ARB", Address: "0x912CE59144191C1204E64559FE8253a0e49E6548", Decimals: 18},
		{Symbol: "LINK", Address: "0xf97f4df75117a78c1A5a0DBb814Af92458539FB4", Decimals: 18},
		{Symbol: "GMX", Address: "0xfc5A1A6EB076a2C7aD06eD22C90d7E710E35ad0a", Decimals: 18},
	},
	ChainArbitrumGoerli: {
		{Symbol: "ETH", Address: NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "WETH", Address: "0xe39Ab88f8A4777030A534146A9Ca3B52bd5D43A3", Decimals: 18, IsWrapped: true},
	},
	ChainAvalanche: {
		{Symbol: "AVAX", Address: NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "WAVAX", Address: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", Decimals: 18, IsWrapped: true},
		{Symbol: "WETH.e", Address: "0x49D5c2BdFfac6CE2BFdB6640F4F80f226bc10bAB", Decimals: 18},
		{Symbol: "BTC.b", Address: "0x152b9d0FdC40C096757F570A51E494bd4b943E50", Decimals: 8},
		{Symbol: "USDC", Address: "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E", Decimals: 6},
		{Symbol: "USDT", Address: "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7", Decimals: 6},
		{Symbol: "GMX", Address: "0x62edc0692BD897D2295872a9FFCac5425011c661", Decimals: 18},
	},
	ChainAvalancheFuji: {
		{Symbol: "AVAX", Address: NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "WAVAX", Address: "0x1D308089a2D1Ced3f1Ce36B1FcaF815b07217be3", Decimals: 18, IsWrapped: true},
	},
	ChainBSC: {
		{Symbol: "BNB", Address: NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "WBNB", Address: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", Decimals: 18, IsWrapped: true},
		{Symbol: "BUSD", Address: "0xe9e7cea3dedca5984780bafc599bd69add087d56", Decimals: 18},
	},
	ChainBSCTestnet: {
		{Symbol: "BNB", Address: NativeTokenAddress, Decimals: 18, IsNative: true},
		{Symbol: "WBNB", Address: "0x612777Eea37a44F7a95E3B101C39e1E2695fa6C2", Decimals: 18, IsWrapped: true},
	},
}

func ParseChain(input string) (Chain, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Chain{}, clierr.New(clierr.CodeUsage, "chain is required")
	}
	norm := strings.ToLower(raw)

	if chain, ok := chainBySlug[norm]; ok {
		return chain, nil
	}

	if eip155ChainPattern.MatchString(norm) {
		parts := strings.Split(norm, ":")
		id, _ := strconv.ParseInt(parts[1], 10, 64)
		return chainFromID(id), nil
	}

	if id, err := strconv.ParseInt(norm, 10, 64); err == nil {
		return chainFromID(id), nil
	}

	return Chain{}, clierr.New(clierr.CodeUsage, fmt.Sprintf("unsupported chain input: %s", input))
}

func chainFromID(id int64) Chain {
	if chain, ok := chainByID[id]; ok {
		return chain
	}
	return Chain{Name: fmt.Sprintf("EVM-%d", id), Slug: fmt.Sprintf("evm-%d", id), CAIP2: fmt.Sprintf("eip155:%d", id), EVMChainID: id}
}

// ChainByID returns the known chain for id.
func ChainByID(id int64) (Chain, bool) {
	chain, ok := chainByID[id]
	return chain, ok
}

// SupportedChains lists known chains ordered by chain id.
func SupportedChains() []Chain {
	out := make([]Chain, 0, len(chainByID))
	for _, chain := range chainByID {
		out = append(out, chain)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EVMChainID < out[j].EVMChainID })
	return out
}

func IsAddress(input string) bool {
	return evmAddressPattern.MatchString(strings.TrimSpace(input))
}

func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func AddressEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// TokenBySymbol resolves a symbol on chainID. Matching ignores case; an
// ambiguous symbol does not resolve.
func TokenBySymbol(chainID int64, symbol string) (Token, bool) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Token{}, false
	}
	var matches []Token
	for _, t := range tokenRegistry[chainID] {
		if strings.EqualFold(t.Symbol, symbol) {
			matches = append(matches, t)
		}
	}
	if len(matches) != 1 {
		return Token{}, false
	}
	return matches[0], true
}

func TokenByAddress(chainID int64, address string) (Token, bool) {
	for _, t := range tokenRegistry[chainID] {
		if AddressEqual(t.Address, address) {
			return t, true
		}
	}
	return Token{}, false
}

func WrappedToken(chainID int64) (Token, bool) {
	for _, t := range tokenRegistry[chainID] {
		if t.IsWrapped {
			return t, true
		}
	}
	return Token{}, false
}

// ConvertToWrapped maps the native placeholder address to the chain's wrapped
// native token. Other addresses are returned unchanged.
func ConvertToWrapped(chainID int64, address string) string {
	if !AddressEqual(address, NativeTokenAddress) {
		return address
	}
	wrapped, ok := WrappedToken(chainID)
	if !ok {
		return address
	}
	return wrapped.Address
}

// Tokens returns the bootstrap token list for chainID.
func Tokens(chainID int64) []Token {
	return append([]Token(nil), tokenRegistry[chainID]...)
}
