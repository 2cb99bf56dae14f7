package report

import (
	"github.com/zsdotkr/picomap/cmd"
	"github.com/zsdotkr/picomap/mapfile"
	"github.com/zsdotkr/picomap/report"
)

func Main(args []string) {
	c := cmd.NewPicomapCmd()
	var total, code, rodata, data, bss *bool
	c.SetupFlags = func() error {
		total = c.Flags.Bool("total", false, "sort by total size (default)")
		code = c.Flags.Bool("code", false, "sort by code size")
		rodata = c.Flags.Bool("rodata", false, "sort by read-only data size")
		data = c.Flags.Bool("data", false, "sort by initialized data size")
		bss = c.Flags.Bool("bss", false, "sort by uninitialized data size")
		return nil
	}
	c.RunMap = func(m *mapfile.MapFile) error {
		key := report.SortTotal
		switch {
		case *code:
			key = report.SortCode
		case *bss:
			key = report.SortBSS
		case *rodata:
			key = report.SortROData
		case *data:
			key = report.SortData
		case *total:
			// the default
		}
		report.NewPrinter(c.Config.Output, c.Config.Color).All(m, key)
		return nil
	}
	c.Run(args)
}

func init() { cmd.Register("report", "print the size breakdown tables", Main) }
