package zainetto

import (
	"fmt"
	"strings"
)

// AssetClass partitions tickers by tax treatment and quantity precision.
type AssetClass int

const (
	Stock AssetClass = iota
	ETF
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case Stock:
		return "stock"
	case ETF:
		return "etf"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock", "stocks", "azioni":
		return Stock, nil
	case "etf", "etfs":
		return ETF, nil
	case "crypto", "cryptos", "cripto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// Compensable reports whether realized gains of this class can be offset by
// the loss basket. ETF gains are "redditi di capitale" in the modeled
// jurisdiction and are always taxed in full.
func (c AssetClass) Compensable() bool { return c != ETF }

// Action is the closed set of canonical trade actions. Raw rows carry free
// text ("BUY", "Staking Reward", "drip", ...); ParseAction is the only place
// where that fuzziness is resolved.
type Action int

const (
	Buy Action = iota
	Sell
	Dividend
	Deposit
	Withdraw
	Split
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Dividend:
		return "dividend"
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// acquisitionSynonyms are the action labels that create new lots besides a
// plain buy: dividend reinvestments and the crypto accrual family.
var acquisitionSynonyms = []string{"DRIP", "REWARD", "STAKING", "MINING", "MINT"}

// ParseAction classifies a raw action label into a canonical Action.
// Matching is case-insensitive and tolerant of decorated labels such as
// "Limit Buy" or "Staking Reward". Unrecognized labels are an error so the
// caller can decide to skip the row.
func ParseAction(s string) (Action, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case u == "":
		return 0, fmt.Errorf("empty action")
	case strings.Contains(u, "BUY"):
		return Buy, nil
	case strings.Contains(u, "SELL"):
		return Sell, nil
	case strings.Contains(u, "DIVIDEND") || u == "DIV":
		return Dividend, nil
	case strings.Contains(u, "DEPOSIT"):
		return Deposit, nil
	case strings.Contains(u, "WITHDRAW"):
		return Withdraw, nil
	case strings.Contains(u, "SPLIT"):
		return Split, nil
	}
	for _, syn := range acquisitionSynonyms {
		if strings.Contains(u, syn) {
			return Buy, nil
		}
	}
	return 0, fmt.Errorf("unknown action: %q", s)
}

// Trade is the canonical, immutable record every engine consumes. Quantity is
// never negative; the direction is carried by the Action.
type Trade struct {
	Date      Date       `json:"date"`
	Ticker    string     `json:"ticker"`
	Action    Action     `json:"action"`
	Quantity  Quantity   `json:"quantity"`
	UnitPrice Money      `json:"unitPrice"`
	Amount    Money      `json:"amount"` // total traded amount, derived from quantity and price when possible.
	Class     AssetClass `json:"assetClass"`
}

// Acquires reports whether the trade adds a new lot to its ticker's queue.
func (t Trade) Acquires() bool { return t.Action == Buy }
