package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PriceFormat classifies the well-formedness of a raw price string.
type PriceFormat int

const (
	PriceClean PriceFormat = iota
	PriceSuspect
	PriceMalformed
)

// String method for PriceFormat enum
func (p PriceFormat) String() string {
	switch p {
	case PriceClean:
		return "Clean"
	case PriceSuspect:
		return "Suspect"
	case PriceMalformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// NormalizePrice parses a loosely-formatted currency string into a
// decimal amount. All characters except digits, '.' and a sign are
// stripped; a cleaned string with more than one '.' is malformed and
// yields zero. Empty or unparseable input yields zero. The function
// never fails: flagging malformedness is the validator's job, not the
// normalizer's.
func NormalizePrice(raw string) decimal.Decimal {
	cleaned := cleanPrice(raw)
	if cleaned == "" || strings.Count(cleaned, ".") > 1 {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// ClassifyPrice inspects the raw (pre-normalization) price string.
// More than one decimal point is malformed; characters outside
// digits, '$', comma, dot and whitespace are suspect. Corrupted
// import data that NormalizePrice silently zeroed surfaces here.
func ClassifyPrice(raw string) PriceFormat {
	if strings.Count(raw, ".") > 1 {
		return PriceMalformed
	}
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
		case r == '$' || r == ',' || r == '.':
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			return PriceSuspect
		}
	}
	return PriceClean
}

// cleanPrice strips everything except digits, '.' and a leading sign.
// A sign is only kept before the first digit so "1-2" cannot parse as
// a negative number.
func cleanPrice(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case (r == '-' || r == '+') && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
