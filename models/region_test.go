package models

import "testing"

func testRegions() *RegionTable {
	t := NewRegionTable()
	t.Add(NewMemRegion("FLASH", 0x10000000, 0x1000))
	t.Add(NewMemRegion("RAM", 0x20000000, 0x1000))
	return t
}

func TestAttribute(t *testing.T) {
	regs := testRegions()
	if !regs.Attribute(".text", 0x10000000, 0x20) {
		t.Fatal("range inside FLASH was not attributed")
	}
	flash := regs.Find("FLASH")
	pl, ok := flash.Placement(".text")
	if !ok {
		t.Fatal("no .text placement in FLASH")
	}
	if pl.Start != 0x10000000 || pl.Size != 0x20 {
		t.Fatalf("unexpected placement %+v", pl)
	}
	if flash.Used != 0x20 {
		t.Fatalf("FLASH used = %#x, want 0x20", flash.Used)
	}
}

func TestAttributeAccumulates(t *testing.T) {
	regs := testRegions()
	regs.Attribute(".text", 0x10000000, 0x20)
	regs.Attribute(".text", 0x10000100, 0x10)
	pl, _ := regs.Find("FLASH").Placement(".text")
	if pl.Size != 0x30 {
		t.Fatalf("size = %#x, want 0x30", pl.Size)
	}
	// start address tracks the last seen allocation
	if pl.Start != 0x10000100 {
		t.Fatalf("start = %#x, want 0x10000100", pl.Start)
	}
}

func TestAttributeDropsOutsideRanges(t *testing.T) {
	regs := testRegions()
	// fully outside any region
	if regs.Attribute(".debug_info", 0, 0x100) {
		t.Fatal("debug range should not be attributed")
	}
	// straddling the end of FLASH
	if regs.Attribute(".text", 0x10000ff0, 0x20) {
		t.Fatal("straddling range should not be attributed")
	}
	if used := regs.Find("FLASH").Used; used != 0 {
		t.Fatalf("FLASH used = %#x, want 0", used)
	}
}

func TestAttributeFirstRegionWins(t *testing.T) {
	regs := NewRegionTable()
	regs.Add(NewMemRegion("A", 0x1000, 0x1000))
	regs.Add(NewMemRegion("B", 0x1000, 0x2000))
	regs.Attribute(".text", 0x1800, 0x10)
	if regs.Find("A").Used != 0x10 || regs.Find("B").Used != 0 {
		t.Fatal("attribution did not go to the first containing region")
	}
}

func TestZeroSpanUtilization(t *testing.T) {
	regs := NewRegionTable()
	regs.Add(NewMemRegion("TINY", 0x100, 1))
	regs.Attribute(".x", 0x100, 1)
	tiny := regs.Find("TINY")
	if tiny.Start != tiny.End {
		t.Fatalf("span = [%#x, %#x], want zero span", tiny.Start, tiny.End)
	}
	if r := tiny.Utilization(); r != 0 {
		t.Fatalf("utilization = %f, want 0", r)
	}
}

func TestZeroLengthRegionContainsNothing(t *testing.T) {
	regs := NewRegionTable()
	regs.Add(NewMemRegion("NULLREG", 0x0, 0))
	regs.Add(NewMemRegion("FLASH", 0x10000000, 0x1000))

	null := regs.Find("NULLREG")
	if null.Start > null.End {
		t.Fatalf("span = [%#x, %#x], wrapped around", null.Start, null.End)
	}
	if !regs.Attribute(".text", 0x10000000, 0x20) {
		t.Fatal("range inside FLASH was not attributed")
	}
	if null.Used != 0 {
		t.Fatalf("NULLREG stole %#x bytes", null.Used)
	}
	if used := regs.Find("FLASH").Used; used != 0x20 {
		t.Fatalf("FLASH used = %#x, want 0x20", used)
	}
}

func TestSectionsOrder(t *testing.T) {
	regs := testRegions()
	regs.Attribute(".text", 0x10000000, 0x20)
	regs.Attribute(".rodata", 0x10000020, 0x10)
	regs.Attribute(".text", 0x10000030, 0x10)
	got := regs.Find("FLASH").Sections()
	want := []string{".text", ".rodata"}
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sections = %v, want %v", got, want)
		}
	}
}
