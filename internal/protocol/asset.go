package protocol

import (
	"fmt"
	"strings"
)

// Symbol packs an asset's decimal precision (low byte) and ticker (up to 7 ASCII bytes).
type Symbol uint64

// NewSymbol packs a ticker and precision into a Symbol.
func NewSymbol(ticker string, precision uint8) Symbol {
	s := Symbol(precision)

	for i := 0; i < len(ticker) && i < 7; i++ {
		s |= Symbol(ticker[i]) << (8 * (i + 1))
	}

	return s
}

var (
	// SteemSymbol is the liquid core token (3 decimals).
	SteemSymbol = NewSymbol("STEEM", 3)

	// SBDSymbol is the dollar-pegged debt token (3 decimals).
	SBDSymbol = NewSymbol("SBD", 3)
)

// Precision returns the number of decimal places.
func (s Symbol) Precision() uint8 {
	return uint8(s & 0xff)
}

// Ticker returns the ticker string.
func (s Symbol) Ticker() string {
	var b strings.Builder

	for v := uint64(s) >> 8; v != 0; v >>= 8 {
		b.WriteByte(byte(v & 0xff))
	}

	return b.String()
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return s.Ticker()
}

// Asset is an amount of a given symbol, in the symbol's smallest unit.
type Asset struct {
	Amount int64
	Symbol Symbol
}

// Steem returns an amount of the core token.
func Steem(amount int64) Asset {
	return Asset{Amount: amount, Symbol: SteemSymbol}
}

// SBD returns an amount of the dollar token.
func SBD(amount int64) Asset {
	return Asset{Amount: amount, Symbol: SBDSymbol}
}

// String formats the asset as "1.234 STEEM".
func (a Asset) String() string {
	prec := a.Symbol.Precision()
	if prec == 0 {
		return fmt.Sprintf("%d %s", a.Amount, a.Symbol)
	}

	var scale int64 = 1
	for i := uint8(0); i < prec; i++ {
		scale *= 10
	}

	sign := ""
	amount := a.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return fmt.Sprintf("%s%d.%0*d %s", sign, amount/scale, int(prec), amount%scale, a.Symbol)
}
