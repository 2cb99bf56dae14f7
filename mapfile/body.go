package mapfile

import (
	"bufio"
	"strings"
)

// continuation lines of a wrapped allocation record are indented this far
const continuationPad = "                " // 16 spaces

// parseBody walks the "Linker script and memory map" block to the end of
// input. Two pieces of state cross lines: the most recently opened
// section (allocation rows name a subsection but are classified under the
// section that opened them) and a pending fragment awaiting its
// continuation when the linker wrapped a long object path onto the next
// line.
func (m *MapFile) parseBody(s *bufio.Scanner) {
	var curSec string
	var pending string
	for s.Scan() {
		line := s.Text()

		// Section header rows carry the authoritative start/size for
		// region attribution. This happens on the raw line, before and
		// independent of any per-object accounting.
		if strings.HasPrefix(line, ".") {
			m.attributeSection(line)
		}

		if pending != "" {
			if strings.HasPrefix(line, continuationPad) {
				line = pending + line
			} else {
				warn.Printf("discarding split line %q", pending)
			}
			pending = ""
		}

		switch l := classifyBody(line); l.kind {
		case lineSection:
			curSec = l.fields[0]
		case lineFragment:
			pending = line
		case lineFill:
			// the linker sometimes reports a fill size that disagrees
			// with the surrounding addresses; accept it as written
			size, err := parseHex(l.fields[len(l.fields)-1])
			if err != nil {
				warn.Printf("unparseable *fill* size in %q, counting zero", line)
			}
			m.Accounts.Add(fillMarker, curSec, size)
		case lineAllocation:
			n := len(l.fields)
			size, err := parseHex(l.fields[n-2])
			if err != nil {
				break
			}
			m.Accounts.Add(l.fields[n-1], curSec, size)
		}
	}
}

func (m *MapFile) attributeSection(line string) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return
	}
	start, err := parseHex(fields[1])
	if err != nil {
		return
	}
	size, err := parseHex(fields[2])
	if err != nil || size == 0 {
		return
	}
	m.Regions.Attribute(fields[0], start, size)
}

// reconcileImage accounts for the ROM copy of initialized data. The map
// report places .data only in RAM; its FLASH-resident initial image never
// shows up as a section of its own. When both a RAM .data placement and a
// FLASH region exist, a synthetic ".data(image)" placement of the same
// size is appended right after FLASH's used bytes. Targets without a
// RAM/FLASH split skip this.
func (m *MapFile) reconcileImage() {
	ram := m.Regions.Find("RAM")
	flash := m.Regions.Find("FLASH")
	if ram == nil || flash == nil {
		return
	}
	data, ok := ram.Placement(".data")
	if !ok {
		return
	}
	m.Regions.Attribute(imageSection, flash.Start+flash.Used, data.Size)
}
