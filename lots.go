package zainetto

// lot represents a single acquisition of a security, used for cost basis
// calculations.
type lot struct {
	Acquired Date
	Shares   Quantity // remaining shares, kept at the asset class precision
	Price    Money    // unit cost
}

// lots is a FIFO queue of open lots for one ticker: head is the oldest.
type lots []lot

// consumption records how many shares a sale took from one lot.
type consumption struct {
	lot    lot
	shares Quantity
}

// push appends a new lot at the tail of the queue.
func (l lots) push(acquired Date, shares Quantity, price Money) lots {
	return append(l, lot{Acquired: acquired, Shares: shares, Price: price})
}

// sell consumes shares from the head of the queue, oldest lot first, and
// returns the remaining queue plus one consumption per touched lot. All share
// arithmetic is rounded to the given precision before comparison or
// subtraction. Selling more than the queue holds consumes everything and
// silently drops the excess.
func (l lots) sell(quantity Quantity, precision int32) (lots, []consumption) {
	quantity = quantity.Round(precision)
	var remaining lots
	var consumed []consumption

	for _, current := range l {
		if quantity.IsZero() || quantity.IsNegative() {
			remaining = append(remaining, current)
			continue
		}
		if current.Shares.GreaterThan(quantity) {
			// Partial sale from this lot.
			consumed = append(consumed, consumption{lot: current, shares: quantity})
			current.Shares = current.Shares.Sub(quantity).Round(precision)
			quantity = Q(0)
			if !current.Shares.IsZero() {
				remaining = append(remaining, current)
			}
		} else {
			// Full sale of this lot: it disappears from the queue.
			consumed = append(consumed, consumption{lot: current, shares: current.Shares})
			quantity = quantity.Sub(current.Shares).Round(precision)
		}
	}
	return remaining, consumed
}

// split rescales every open lot by the given factor. The invested capital is
// unchanged: quantities grow, unit costs shrink.
func (l lots) split(factor Quantity, precision int32) lots {
	if factor.IsZero() || factor.IsNegative() {
		return l
	}
	out := make(lots, 0, len(l))
	for _, current := range l {
		current.Shares = current.Shares.Mul(factor).Round(precision)
		current.Price = current.Price.Div(factor)
		out = append(out, current)
	}
	return out
}

// shares returns the total number of shares across remaining lots.
func (l lots) shares() Quantity {
	var total Quantity
	for _, current := range l {
		total = total.Add(current.Shares)
	}
	return total
}

// cost returns the book value of the queue, each lot at its own unit cost.
func (l lots) cost(currency string) Money {
	total := M(0, currency)
	for _, current := range l {
		total = total.Add(current.Price.Mul(current.Shares))
	}
	return total
}
