// Package report renders analysis results for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wonny/momentum/internal/contracts"
)

// Printer writes a recommendation report to an output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print renders the full report: run metadata, buy list, sell list
// and a disclaimer footer.
func (p *Printer) Print(recs *contracts.Recommendations) {
	p.line(strings.Repeat("=", 80))
	p.line("STOCK MOMENTUM ANALYSIS - RECOMMENDATIONS")
	p.line(strings.Repeat("=", 80))
	p.linef("Analysis Date:   %s", recs.GeneratedAt.Format("2006-01-02 15:04:05"))
	p.linef("Data Period:     %s", recs.Period)
	p.linef("Stocks Analyzed: %d", recs.TickersAnalyzed)

	if recs.Empty() {
		p.line("")
		p.line("No data available for analysis.")
		return
	}

	p.section(fmt.Sprintf("TOP %d BUY RECOMMENDATIONS", len(recs.Buys)), recs.Buys)
	p.section(fmt.Sprintf("TOP %d SELL RECOMMENDATIONS", len(recs.Sells)), recs.Sells)

	p.line("")
	p.line("DISCLAIMER")
	p.line(strings.Repeat("-", 30))
	p.line("This analysis is for educational purposes only.")
	p.line("Past performance does not guarantee future results.")
	p.line("Always do your own research before making investment decisions.")
}

func (p *Printer) section(title string, stocks []contracts.ScoredStock) {
	p.line("")
	p.line(title)
	p.line(strings.Repeat("-", 50))

	for i, s := range stocks {
		p.linef("%d. %s", i+1, s.Ticker)
		p.linef("   Price:          $%.2f", s.CurrentPrice)
		p.linef("   Momentum Score: %.1f", s.MomentumScore)
		p.linef("   1W Return:      %.1f%%", s.Returns1W)
		p.linef("   1M Return:      %.1f%%", s.Returns1M)
		p.linef("   3M Return:      %.1f%%", s.Returns3M)
		p.linef("   RSI:            %.1f", s.RSI)
		p.linef("   Volume Ratio:   %.1fx", s.VolumeRatio)
		p.line("")
	}
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *Printer) linef(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
