// Package report renders the aggregated size tables for humans: the
// per-file breakdown, per-region utilization, and per-region section
// shares.
package report

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/mgutz/ansi"

	"github.com/zsdotkr/picomap/mapfile"
)

var (
	bannerColor = ansi.ColorFunc("cyan+b")
	noteColor   = ansi.ColorFunc("black+h")
)

const fileHeader = " Total   code rodata   data    bss  other FILE"

type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(color func(string) string, s string) string {
	if p.color {
		return color(s)
	}
	return s
}

func (p *Printer) banner(title string) {
	fmt.Fprintln(p.w, p.paint(bannerColor, "********** "+title+" **********"))
}

// All prints the three tables in report order.
func (p *Printer) All(m *mapfile.MapFile, key SortKey) {
	p.Files(m, key)
	fmt.Fprintln(p.w)
	p.Regions(m)
	fmt.Fprintln(p.w)
	p.Sections(m)
}

// Files prints one row per contributing object, sorted ascending by the
// selected category, followed by a SUMMARY row of column sums.
func (p *Printer) Files(m *mapfile.MapFile, key SortKey) {
	p.banner("File")
	fmt.Fprintln(p.w, fileHeader)
	for _, source := range SortedSources(m.Accounts, key) {
		a := m.Accounts.Account(source)
		fmt.Fprintf(p.w, "%6d %6d %6d %6d %6d %6d %s\n",
			a.Total(), a.Code, a.ROData, a.Data, a.BSS, a.Other, source)
	}
	sum := m.Accounts.Sum()
	fmt.Fprintf(p.w, "%6d %6d %6d %6d %6d %6d SUMMARY\n",
		sum.Total(), sum.Code, sum.ROData, sum.Data, sum.BSS, sum.Other)
	fmt.Fprintln(p.w, fileHeader)
	fmt.Fprintln(p.w, p.paint(noteColor,
		"*) totals can drift slightly when the linker misreports *fill* sizes"))
}

// Regions prints one row per declared memory region with its utilization.
func (p *Printer) Regions(m *mapfile.MapFile) {
	p.banner("Memory")
	for _, reg := range m.Regions.Regions() {
		fmt.Fprintf(p.w, "%s  %08xh ~ %08xh  Total %8s  Used %6dB  Ratio %5.1f%%\n",
			pad(reg.Name, 10), reg.Start, reg.End, kb(reg.Capacity), reg.Used, reg.Utilization())
	}
}

// Sections prints, per region, each placed section with its share of the
// region's used bytes.
func (p *Printer) Sections(m *mapfile.MapFile) {
	p.banner("Sector")
	for _, reg := range m.Regions.Regions() {
		for _, name := range reg.Sections() {
			pl, ok := reg.Placement(name)
			if !ok {
				continue
			}
			share := 0.0
			if reg.Used > 0 {
				share = float64(pl.Size) * 100 / float64(reg.Used)
			}
			fmt.Fprintf(p.w, "%s : %s %08xh ~ %08xh Size %8s (%6dB)  %6.2f%%\n",
				pad(reg.Name, 10), pad(name, 15), pl.Start, pl.Start+pl.Size-1,
				kb(pl.Size), pl.Size, share)
		}
	}
}

// pad right-aligns by display width; object and section names are not
// guaranteed ASCII.
func pad(s string, w int) string {
	return runewidth.FillLeft(s, w)
}

// kb formats a byte count as kilobytes, dropping the decimal for whole
// values.
func kb(size uint64) string {
	if size%1024 == 0 {
		return fmt.Sprintf("%6dKB", size/1024)
	}
	return fmt.Sprintf("%6.1fKB", float64(size)/1024)
}
