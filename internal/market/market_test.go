package market

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func usd(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(USDDecimals), nil))
}

func units(n int64, decimals int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(decimals), nil))
}

var (
	weth = Token{Symbol: "WETH", Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Decimals: 18}
	usdc = Token{Symbol: "USDC", Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Decimals: 6}
	eth  = Token{Symbol: "ETH", Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Decimals: 18}
)

func ethMarket() Market {
	return Market{
		Address:         "0x70d95587d40A2caf56bd97485aB3Eec10Bee6336",
		IndexToken:      eth,
		LongToken:       weth,
		ShortToken:      usdc,
		LongPoolAmount:  units(1500, 18),
		ShortPoolAmount: units(1_000_000, 6),
		LongPoolUSD:     usd(3_000_000),
		ShortPoolUSD:    usd(1_000_000),
	}
}

func TestNames(t *testing.T) {
	gm := ethMarket()
	if got := gm.IndexName(); got != "ETH/USD" {
		t.Fatalf("unexpected index name %q", got)
	}
	if got := gm.PoolName(); got != "WETH-USDC" {
		t.Fatalf("unexpected pool name %q", got)
	}
	if got := gm.DisplayName(); got != "GM: ETH/USD [WETH-USDC]" {
		t.Fatalf("unexpected display name %q", got)
	}

	single := gm
	single.ShortToken = weth
	if got := single.PoolName(); got != "WETH" {
		t.Fatalf("expected single-token pool name, got %q", got)
	}

	spot := gm
	spot.IndexToken = Token{Address: "0x0000000000000000000000000000000000000000"}
	if got := spot.IndexName(); got != "SWAP-ONLY" {
		t.Fatalf("expected swap-only index name, got %q", got)
	}

	glv := Market{Address: "0x528A5bac7E746C9A509A1f4F6dF58A03d44279F9", Glv: true, LongToken: weth, ShortToken: usdc}
	if glv.IndexName() != "" {
		t.Fatalf("expected empty index name for glv, got %q", glv.IndexName())
	}
	if got := glv.GlvDisplayName(); got != "GLV" {
		t.Fatalf("unexpected glv display name %q", got)
	}
	glv.Name = "Blue"
	if got := glv.DisplayName(); got != "GLV: Blue [WETH-USDC]" {
		t.Fatalf("unexpected glv listing name %q", got)
	}
}

func TestBestGlv(t *testing.T) {
	tests := []struct {
		name     string
		markets  []Market
		wantAddr string
		wantOK   bool
	}{
		{
			name:    "no glvs",
			markets: []Market{ethMarket()},
		},
		{
			name: "largest supply wins",
			markets: []Market{
				{Address: "0xA", Glv: true, TotalSupply: big.NewInt(100)},
				ethMarket(),
				{Address: "0xB", Glv: true, TotalSupply: big.NewInt(200)},
			},
			wantAddr: "0xB",
			wantOK:   true,
		},
		{
			name: "first wins ties",
			markets: []Market{
				{Address: "0xA", Glv: true, TotalSupply: big.NewInt(200)},
				{Address: "0xB", Glv: true, TotalSupply: big.NewInt(200)},
			},
			wantAddr: "0xA",
			wantOK:   true,
		},
		{
			name: "missing supply counts as zero",
			markets: []Market{
				{Address: "0xA", Glv: true},
				{Address: "0xB", Glv: true, TotalSupply: big.NewInt(1)},
			},
			wantAddr: "0xB",
			wantOK:   true,
		},
		{
			name: "all missing keeps first",
			markets: []Market{
				{Address: "0xA", Glv: true},
				{Address: "0xB", Glv: true},
			},
			wantAddr: "0xA",
			wantOK:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BestGlv(tc.markets)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if got.Address != tc.wantAddr {
				t.Fatalf("expected %q, got %q", tc.wantAddr, got.Address)
			}
		})
	}
}

func TestFindIgnoresCase(t *testing.T) {
	markets := []Market{ethMarket()}
	got, ok := Find(markets, "0x70D95587D40A2CAF56BD97485AB3EEC10BEE6336")
	if !ok || got.Address != markets[0].Address {
		t.Fatalf("expected case-insensitive match, got %+v ok=%v", got, ok)
	}
	if _, ok := Find(markets, ""); ok {
		t.Fatal("did not expect empty address to match")
	}
	if Contains(markets, "0x0000000000000000000000000000000000000001") {
		t.Fatal("did not expect unknown address to match")
	}
}

func TestGMComposition(t *testing.T) {
	comp := CompositionOf(ethMarket(), nil)
	if comp.Kind != CompositionGM || len(comp.Rows) != 2 {
		t.Fatalf("unexpected composition: %+v", comp)
	}
	long, short := comp.Rows[0], comp.Rows[1]
	if long.Label != "Long: WETH" || short.Label != "Short: USDC" {
		t.Fatalf("unexpected labels %q %q", long.Label, short.Label)
	}
	if !long.Percent.Equal(decimal.NewFromInt(75)) || !short.Percent.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("unexpected shares %s %s", long.Percent, short.Percent)
	}
	if long.Amount != "1.500k" || short.Amount != "1.000m" {
		t.Fatalf("unexpected amounts %q %q", long.Amount, short.Amount)
	}
}

func TestGMCompositionEmptyPool(t *testing.T) {
	m := ethMarket()
	m.LongPoolUSD = nil
	m.ShortPoolUSD = nil
	comp := CompositionOf(m, nil)
	for _, row := range comp.Rows {
		if !row.Percent.IsZero() {
			t.Fatalf("expected zero share for empty pool, got %s", row.Percent)
		}
	}
}

func TestGLVComposition(t *testing.T) {
	gm := ethMarket()
	glv := Market{
		Address: "0x528A5bac7E746C9A509A1f4F6dF58A03d44279F9",
		Glv:     true,
		GlvMarkets: []GlvMarket{
			{Address: gm.Address, BalanceUSD: usd(1_500_000), MaxUSD: usd(5_000_000)},
			{Address: "0x0000000000000000000000000000000000000009", BalanceUSD: usd(500_000), MaxUSD: usd(1_000_000)},
		},
	}
	comp := CompositionOf(glv, []Market{gm, glv})
	if comp.Kind != CompositionGLV {
		t.Fatalf("expected glv composition, got %q", comp.Kind)
	}
	if len(comp.Rows) != 1 {
		t.Fatalf("expected unknown sub-market to be skipped, got %d rows", len(comp.Rows))
	}
	row := comp.Rows[0]
	if row.Label != "ETH/USD" || row.Market != gm.Address {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.TVLUsed != "$1.5m" || row.TVLAvailable != "$5.0m" {
		t.Fatalf("unexpected tvl %q/%q", row.TVLUsed, row.TVLAvailable)
	}
	if !row.Percent.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("unexpected share %s", row.Percent)
	}
}

func TestFilterGroups(t *testing.T) {
	gm := ethMarket()
	btc := Market{Address: "0x47c031236e19d024b42f8AE6780E44A573170703", IndexToken: Token{Symbol: "BTC", Address: "0x47904963fc8b2340414262125aF798B9655E58Cd"}, LongToken: Token{Symbol: "WBTC"}, ShortToken: usdc}
	glv := Market{Address: "0x528A5bac7E746C9A509A1f4F6dF58A03d44279F9", Glv: true, LongToken: weth, ShortToken: usdc}
	groups := Groups([]Market{gm, btc, glv})
	if len(groups) != 2 || len(groups[0].Items) != 2 || len(groups[1].Items) != 1 {
		t.Fatalf("unexpected grouping: %+v", groups)
	}

	selected := map[string]bool{gm.Address: true}
	isSelected := func(address string) bool { return selected[address] }

	filtered := FilterGroups(groups, "eth/usd", isSelected)
	if len(filtered) != 1 {
		t.Fatalf("expected only the GM group to survive, got %+v", filtered)
	}
	fg := filtered[0]
	if fg.GroupName != "GM" || len(fg.Items) != 1 || fg.Items[0].Data != gm.Address {
		t.Fatalf("unexpected filtered group %+v", fg)
	}
	if fg.IsEverythingSelected {
		t.Fatal("did not expect whole group to be selected")
	}
	if !fg.IsEverythingFilteredSelected || !fg.IsSomethingSelected {
		t.Fatalf("unexpected selection flags %+v", fg)
	}

	all := FilterGroups(groups, "", nil)
	if len(all) != 2 || all[0].IsSomethingSelected {
		t.Fatalf("unexpected unfiltered result %+v", all)
	}
}
