package model

import "github.com/shopspring/decimal"

type LineKind string

const LINE_PRICED LineKind = "priced"
const LINE_INCLUDED LineKind = "included"
const LINE_NOTE LineKind = "note"
const LINE_WARNING LineKind = "warning"
const LINE_INFO LineKind = "info"

// Counted reports whether a line of this kind contributes to the total.
func (k LineKind) Counted() bool {
	return k == LINE_PRICED || k == LINE_INCLUDED
}

type LineItem struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Kind   LineKind        `json:"kind"`
}

type Quote struct {
	Currency string          `json:"currency"`
	Lines    []LineItem      `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

func (q *Quote) Included() []LineItem {
	var out []LineItem
	for _, l := range q.Lines {
		if l.Kind == LINE_INCLUDED {
			out = append(out, l)
		}
	}
	return out
}

func (q *Quote) Line(key string) (LineItem, bool) {
	for _, l := range q.Lines {
		if l.Key == key {
			return l, true
		}
	}
	return LineItem{}, false
}
