package booking

// Totals is the three-line billing summary. Platform fee and GST are
// currently zero, but the three-term structure is kept so a future fee
// policy only touches NewTotals. Every summary renders all three lines
// even at zero.
type Totals struct {
	Base     int
	Platform int
	GST      int
}

func NewTotals(base int) Totals {
	return Totals{Base: base, Platform: 0, GST: 0}
}

func (t Totals) Total() int {
	return t.Base + t.Platform + t.GST
}
