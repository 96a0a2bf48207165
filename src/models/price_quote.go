package models

import "fmt"

// PriceQuote holds the four discounted option-price estimates produced by a
// single simulation batch.
type PriceQuote struct {
	EuropeanCall float64
	EuropeanPut  float64
	AsianCall    float64
	AsianPut     float64
}

// QuoteKind selects one of the four estimates of a PriceQuote.
type QuoteKind int

const (
	EuropeanCallQuote QuoteKind = iota
	EuropeanPutQuote
	AsianCallQuote
	AsianPutQuote
)

var QuoteKinds = []QuoteKind{EuropeanCallQuote, EuropeanPutQuote, AsianCallQuote, AsianPutQuote}

func (k QuoteKind) String() string {
	switch k {
	case EuropeanCallQuote:
		return "european call"
	case EuropeanPutQuote:
		return "european put"
	case AsianCallQuote:
		return "asian call"
	case AsianPutQuote:
		return "asian put"
	default:
		return fmt.Sprintf("unknown quote kind (%d)", int(k))
	}
}

func (q PriceQuote) Estimate(kind QuoteKind) float64 {
	switch kind {
	case EuropeanCallQuote:
		return q.EuropeanCall
	case EuropeanPutQuote:
		return q.EuropeanPut
	case AsianCallQuote:
		return q.AsianCall
	case AsianPutQuote:
		return q.AsianPut
	default:
		return 0
	}
}
