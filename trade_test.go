package zainetto

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"Buy", Buy},
		{"Limit Buy", Buy},
		{"DRIP", Buy},
		{"Staking Reward", Buy},
		{"mining income", Buy},
		{"Sell", Sell},
		{"LIMIT SELL", Sell},
		{"Dividend", Dividend},
		{"div", Dividend},
		{"Deposit", Deposit},
		{"Withdrawal", Withdraw},
		{"2:1 Split", Split},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if err != nil {
			t.Errorf("ParseAction(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "gift", "transfer"} {
		if _, err := ParseAction(in); err == nil {
			t.Errorf("ParseAction(%q) should fail", in)
		}
	}
}

func TestParseAssetClass(t *testing.T) {
	tests := []struct {
		in   string
		want AssetClass
	}{
		{"stock", Stock},
		{"Stocks", Stock},
		{"azioni", Stock},
		{"ETF", ETF},
		{"crypto", Crypto},
		{"cripto", Crypto},
	}
	for _, tt := range tests {
		got, err := ParseAssetClass(tt.in)
		if err != nil {
			t.Errorf("ParseAssetClass(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAssetClass(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTradeAcquires(t *testing.T) {
	if !buy("2024-01-02", "AAPL", Stock, 10, 100).Acquires() {
		t.Error("a buy should acquire a lot")
	}
	for _, tr := range []Trade{
		sell("2024-01-02", "AAPL", Stock, 10, 100),
		dividend("2024-01-02", "AAPL", Stock, 30),
		split("2024-01-02", "AAPL", Stock, 2),
	} {
		if tr.Acquires() {
			t.Errorf("%s should not acquire a lot", tr.Action)
		}
	}
}

func TestCompensable(t *testing.T) {
	if !Stock.Compensable() {
		t.Error("stock gains should be compensable")
	}
	if !Crypto.Compensable() {
		t.Error("crypto gains should be compensable")
	}
	if ETF.Compensable() {
		t.Error("etf gains should not be compensable")
	}
}
