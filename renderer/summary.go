package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/navlog"
)

// Summary prints one line per fund of the batch, e.g.
//
//	F1 → 9876円（基準日: 2024-07-01）
func Summary(w io.Writer, b *navlog.Batch) {
	for o := range b.Observations() {
		fmt.Fprintf(w, "%s → %s円（基準日: %s）\n", o.ID, o.Price, o.AsOf)
	}
}
