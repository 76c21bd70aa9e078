// Package moneymanager provides the ledger engine for a local-first personal
// finance tracker: accounts, an append-only transaction log, recurring
// monthly obligations (EMIs) and category presets, all held in one state
// document that is also the unit of persistence and backup.
//
// The core functionalities include:
//   - Running balances: an account's current value is always derived on
//     demand from its opening balance and its transaction history, never
//     stored.
//   - Aggregate figures: net worth, spendable balance, investment value,
//     debt and the monthly EMI burden, recomputed from the full document on
//     each call.
//   - Mutations: account, transaction, EMI and preset insertion and removal,
//     with cascade deletion from an account to its dependents, and a compound
//     debt-repayment operation that posts both legs as one unit.
//   - Data Persistence: encoding and decoding the whole document as a single
//     human-readable JSON object, tolerant of older backup revisions.
//
// This package serves as the foundational logic for the `mmg` command-line
// tool; the cmd layer owns file I/O and rendering and persists the document
// whenever an operation marks it dirty.
package moneymanager
