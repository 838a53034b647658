package utils

import (
	"math/big"
	"testing"
)

func TestConvertFloatETHtoWei(t *testing.T) {
	wei := ConvertFloatETHtoWei(1.5)
	want := big.NewInt(1_500_000_000_000_000_000)
	if wei.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", wei, want)
	}
}

func TestFormatWeiToETH(t *testing.T) {
	if got := FormatWeiToETH(big.NewInt(1_500_000_000_000_000_000)); got != "1.5" {
		t.Fatalf("got %s, want 1.5", got)
	}
	if got := FormatWeiToETH(nil); got != "0" {
		t.Fatalf("got %s, want 0 for nil", got)
	}
}
