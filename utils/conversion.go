package utils

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/zkAsterDex/zkaster-stealth-sdk/logging"
)

var WeiConstant = decimal.New(1, 18)

// ConvertFloatETHtoWei converts a float64 value in ether to wei.
// panics if the value is negative
func ConvertFloatETHtoWei(value float64) *big.Int {
	valueETH := decimal.NewFromFloat(value)
	resultInDecimal := valueETH.Mul(WeiConstant)
	if resultInDecimal.IsNegative() {
		err := errors.New("value was converted to negative value")
		logging.L.Panic().
			Err(err).Float64("value", value).
			Msg("value was converted to negative value")
	}

	return resultInDecimal.BigInt()
}

// FormatWeiToETH renders a wei amount as a decimal ether string,
// trailing zeros trimmed.
func FormatWeiToETH(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, 0).Div(WeiConstant).String()
}
