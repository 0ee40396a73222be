// Package models defines the core domain models for Splitzee.
//
// # Models
//
//   - Expense: one tracked expense, owned by a user
//   - Category: the fixed set of expense categories
//   - Participant: one person in a bill split, with a computed or entered share
//   - SplitStrategy: how a bill total is divided (equal, percentage, custom)
//   - User: a registered account
//
// Expense JSON field names follow the browser snapshot format
// (id, title, amount, date, category, notes, currency, dueDate, isRecurring),
// so a list exported from the web client decodes directly into []Expense.
//
// # Design Principles
//
//  1. Plain data: models carry no behavior beyond validation helpers
//  2. Relationships by ID string, never by pointer
//  3. Timestamps as Unix seconds, calendar days as date.Date
package models
