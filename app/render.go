package app

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func rupees(amount int) string {
	return fmt.Sprintf("Rs %d", amount)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
