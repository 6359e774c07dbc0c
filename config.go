package zainetto

// Config carries the jurisdiction and precision parameters shared by all
// engines. It is immutable and passed explicitly into every entry point, so
// two configurations can be exercised side by side in tests.
type Config struct {
	// Currency is the reporting currency for every monetary value.
	Currency string
	// TaxRate is the flat rate applied to the yearly taxable base.
	TaxRate float64
	// CarryforwardYears bounds the loss basket: a loss realized in year Y can
	// offset gains in years Y+1 through Y+CarryforwardYears inclusive.
	CarryforwardYears int
	// StockPrecision is the number of decimals kept on stock and ETF share
	// quantities before any comparison or subtraction.
	StockPrecision int32
	// CryptoPrecision is the number of decimals kept on coin quantities.
	CryptoPrecision int32
	// Epsilon is the quantity below which a position counts as closed.
	Epsilon float64
	// KeepEmptyAfter governs the purge rule for stocks: a stock ticker whose
	// lot queue empties on a sell dated on or after this date stays visible
	// with a zero quantity. Crypto tickers are always purged.
	KeepEmptyAfter Date
}

// DefaultConfig returns the configuration modeling the Italian capital gains
// regime: 26% flat rate and a four year loss carryforward window.
func DefaultConfig() Config {
	return Config{
		Currency:          "EUR",
		TaxRate:           0.26,
		CarryforwardYears: 4,
		StockPrecision:    5,
		CryptoPrecision:   8,
		Epsilon:           1e-8,
	}
}

// precision returns the share quantity precision for an asset class.
func (c Config) precision(class AssetClass) int32 {
	if class == Crypto {
		return c.CryptoPrecision
	}
	return c.StockPrecision
}
