package id

import (
	"math/big"
	"testing"
)

func TestParseBaseUnits(t *testing.T) {
	n, err := ParseBaseUnits(" 1000000 ")
	if err != nil {
		t.Fatalf("ParseBaseUnits failed: %v", err)
	}
	if n.Cmp(big.NewInt(1_000_000)) != 0 {
		t.Fatalf("unexpected value: %s", n)
	}
	zero, err := ParseBaseUnits("")
	if err != nil || zero.Sign() != 0 {
		t.Fatalf("expected zero for empty input, got %v err=%v", zero, err)
	}
	if _, err := ParseBaseUnits("-5"); err == nil {
		t.Fatal("expected negative amount error")
	}
	if _, err := ParseBaseUnits("1.5"); err == nil {
		t.Fatal("expected non-integer error")
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(big.NewInt(1_250_000), 6); got != "1.25" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := FormatAmount(nil, 18); got != "0" {
		t.Fatalf("unexpected nil format: %s", got)
	}
}

func TestFormatAmountHuman(t *testing.T) {
	amount := new(big.Int).Mul(big.NewInt(1_500_000), new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil))
	if got := FormatAmountHuman(amount, 30, true, 1); got != "$1.5m" {
		t.Fatalf("unexpected usd format: %s", got)
	}
	if got := FormatAmountHuman(big.NewInt(950_500), 3, false, 3); got != "950.500" {
		t.Fatalf("unexpected small format: %s", got)
	}
}
