package zainetto

// Builders shared by the engine tests. All monetary values are in EUR, the
// default reporting currency.

func eur(v float64) Money { return M(v, "EUR") }

func trade(date, ticker string, action Action, class AssetClass, qty, price float64) Trade {
	q := Q(qty)
	p := eur(price)
	return Trade{
		Date:      MustParse(date),
		Ticker:    ticker,
		Action:    action,
		Quantity:  q,
		UnitPrice: p,
		Amount:    p.Mul(q),
		Class:     class,
	}
}

func buy(date, ticker string, class AssetClass, qty, price float64) Trade {
	return trade(date, ticker, Buy, class, qty, price)
}

func sell(date, ticker string, class AssetClass, qty, price float64) Trade {
	return trade(date, ticker, Sell, class, qty, price)
}

func dividend(date, ticker string, class AssetClass, amount float64) Trade {
	return Trade{
		Date:      MustParse(date),
		Ticker:    ticker,
		Action:    Dividend,
		Quantity:  Q(0),
		UnitPrice: eur(0),
		Amount:    eur(amount),
		Class:     class,
	}
}

func split(date, ticker string, class AssetClass, factor float64) Trade {
	return Trade{
		Date:      MustParse(date),
		Ticker:    ticker,
		Action:    Split,
		Quantity:  Q(factor),
		UnitPrice: eur(0),
		Amount:    eur(0),
		Class:     class,
	}
}
