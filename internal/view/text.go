package view

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// 端末にカートを描く
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) RenderCounter(vm CounterViewModel) {
	if !vm.Visible {
		fmt.Fprintln(r.w, "Cart")
		return
	}
	fmt.Fprintf(r.w, "Cart (%d)\n", vm.Count)
}

func (r *TextRenderer) RenderCartPage(vm CartPageViewModel) {
	if vm.Empty {
		fmt.Fprintln(r.w, vm.EmptyMessage)
		return
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tITEM\tPRICE\tQTY\tTOTAL")
	for _, row := range vm.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", row.Index, row.Title, row.FormattedUnitPrice, row.Quantity, row.FormattedLineTotal)
	}
	_ = tw.Flush()

	if vm.FooterVisible {
		fmt.Fprintf(r.w, "Subtotal: %s\n", vm.FormattedSubtotal)
	}
}
