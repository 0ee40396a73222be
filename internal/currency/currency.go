// Package currency holds the static exchange-rate table used by the converter.
//
// Rates are fixed approximations, not live market data: no network fetch occurs.
package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// Code is an ISO 4217 currency code such as "USD".
type Code string

// Base is the currency assumed for amounts that carry no explicit code.
const Base Code = "USD"

// Currency describes a supported currency.
type Currency struct {
	Code   Code   `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var supported = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
}

// rates[from][to] is the multiplier converting one unit of from into to.
var rates = map[Code]map[Code]float64{
	"USD": {"EUR": 0.85, "GBP": 0.73, "INR": 83.12, "JPY": 110, "CAD": 1.25, "AUD": 1.35},
	"EUR": {"USD": 1.18, "GBP": 0.86, "INR": 97.88, "JPY": 129.6, "CAD": 1.47, "AUD": 1.59},
	"GBP": {"USD": 1.37, "EUR": 1.16, "INR": 113.87, "JPY": 150.7, "CAD": 1.71, "AUD": 1.85},
	"INR": {"USD": 0.012, "EUR": 0.010, "GBP": 0.0088, "JPY": 1.32, "CAD": 0.015, "AUD": 0.016},
	"JPY": {"USD": 0.0091, "EUR": 0.0077, "GBP": 0.0066, "INR": 0.76, "CAD": 0.011, "AUD": 0.012},
	"CAD": {"USD": 0.80, "EUR": 0.68, "GBP": 0.58, "INR": 66.50, "JPY": 88, "AUD": 1.08},
	"AUD": {"USD": 0.74, "EUR": 0.63, "GBP": 0.54, "INR": 61.57, "JPY": 81.5, "CAD": 0.93},
}

// Normalize upper-cases and trims a user-entered code.
func Normalize(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// Supported returns the supported currencies in display order.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Lookup returns the supported currency with the given code.
func Lookup(code Code) (Currency, bool) {
	for _, c := range supported {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsSupported reports whether code is in the supported set.
func IsSupported(code Code) bool {
	_, ok := Lookup(code)
	return ok
}

// Rate returns the multiplier converting from into to.
// It is 1 when the codes are equal, and 1 as a fallback when the pair is not in the table.
func Rate(from, to Code) float64 {
	if from == to {
		return 1
	}
	if r, ok := rates[from][to]; ok {
		return r
	}
	return 1
}

// Convert converts amount from one currency into another using Rate.
func Convert(amount float64, from, to Code) float64 {
	return amount * Rate(from, to)
}

// Format renders amount for display in the given currency, e.g. "$12.50" for USD.
func Format(amount float64, code Code) string {
	return money.NewFromFloat(amount, string(code)).Display()
}
