// Package zainetto reconstructs the full accounting state of a personal
// investment portfolio from its raw transaction ledger. It is designed to be
// local-first and auditable: every report is recomputed end-to-end from the
// trade history, so there is no hidden state to corrupt.
//
// The core functionalities include:
//   - Transaction Normalization: turning heterogeneous spreadsheet rows
//     (stocks, ETFs, crypto, each with their own quirks) into a canonical,
//     chronologically sorted sequence of trades.
//   - FIFO Lot Matching: per-ticker queues of open lots consumed in
//     acquisition order on sales, yielding exact realized gains.
//   - Portfolio Statistics: book value, allocation, ROI, break-even and
//     behavioral annotations per ticker.
//   - Fiscal Engine: year-by-year taxable gains with the Italian-style
//     "zainetto fiscale", a loss carryforward basket that expires four years
//     after the loss is realized.
//   - Historical Reconstruction: point-in-time holdings snapshots obtained by
//     replaying the ledger up to any year-end cutoff.
//
// This package serves as the foundational logic for the `zfo` command-line
// tool. All engines are pure functions over the ledger plus an immutable
// Config, so different jurisdictions and precisions can be tested in
// isolation.
package zainetto
