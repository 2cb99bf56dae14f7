package mapfile

import (
	"bufio"
	"strings"
	"testing"

	"github.com/zsdotkr/picomap/models"
)

func TestMemoryConfig(t *testing.T) {
	input := `some preamble the linker wrote

Memory Configuration

Name             Origin             Length             Attributes
FLASH            0x0000000010000000 0x0000000000200000 xr
RAM              0x0000000020000000 0x0000000000042000 xrw
SCRATCH_X        0x0000000020040000 0x0000000000001000 xrw
*default*        0x0000000000000000 0xffffffffffffffff

Linker script and memory map

.text           0x0000000010000000      0x130
`
	m := &MapFile{
		Regions:  models.NewRegionTable(),
		Accounts: models.NewAccountTable(nil),
	}
	s := bufio.NewScanner(strings.NewReader(input))
	m.parseMemoryConfig(s)

	regs := m.Regions.Regions()
	if len(regs) != 3 {
		t.Fatalf("got %d regions, want 3", len(regs))
	}
	flash := regs[0]
	if flash.Name != "FLASH" || flash.Start != 0x10000000 ||
		flash.End != 0x101fffff || flash.Capacity != 0x200000 {
		t.Fatalf("FLASH = %+v", *flash)
	}
	if regs[1].Name != "RAM" || regs[2].Name != "SCRATCH_X" {
		t.Fatal("regions out of file order")
	}
	if m.Regions.Find("*default*") != nil {
		t.Fatal("catch-all region must be excluded")
	}

	// the scanner is left positioned inside the map body; a blank
	// separator line follows the header
	line := ""
	for s.Scan() {
		line = s.Text()
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	if !strings.HasPrefix(line, ".text") {
		t.Fatalf("next line = %q", line)
	}
}

func TestMemoryConfigNoise(t *testing.T) {
	input := `Memory Configuration

Name Origin Length Attributes

not hex at all here
ONLYTWO 0x1000
OK               0x0000000000001000 0x0000000000000100 rw

Linker script and memory map
`
	m := &MapFile{
		Regions:  models.NewRegionTable(),
		Accounts: models.NewAccountTable(nil),
	}
	m.parseMemoryConfig(bufio.NewScanner(strings.NewReader(input)))
	regs := m.Regions.Regions()
	if len(regs) != 1 || regs[0].Name != "OK" {
		t.Fatalf("regions = %v", regs)
	}
}

func TestMemoryConfigMissing(t *testing.T) {
	m := &MapFile{
		Regions:  models.NewRegionTable(),
		Accounts: models.NewAccountTable(nil),
	}
	m.parseMemoryConfig(bufio.NewScanner(strings.NewReader("no config here\n")))
	if len(m.Regions.Regions()) != 0 {
		t.Fatal("expected no regions")
	}
}
