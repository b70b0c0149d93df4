// Package models defines the core domain models for bucketsplit.
//
// A Bucket is a named group of participants sharing expenses. Two kinds
// of transactions exist: an Expense (money one participant paid on
// behalf of the group) and a Credit (money one participant received on
// behalf of the group). Each transaction carries a SplitConfig that
// governs how its amount is divided among the bucket's participants.
//
// Balances, settlements and totals are derived values: they are
// recomputed from the full transaction set on every query and never
// persisted. See the calculator package for the derivation rules.
//
// Participants are identified by an opaque UID that is unique within a
// bucket. Email and display name are display metadata only; no model in
// this package carries behavior.
package models
