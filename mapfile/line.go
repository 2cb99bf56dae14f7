package mapfile

import "strings"

// The map body interleaves section headers, allocation rows, symbol
// definitions and linker diagnostics. Every line is tagged here before
// any field extraction, so the state machine in parseBody only deals
// with recognized shapes.
type lineKind int

const (
	lineIgnored lineKind = iota
	// ".text  0x10000000  0x130" - opens a section, sizes the region
	lineSection
	// " .text.main  0x100000e0  0x40 main.o" - one object's allocation
	lineAllocation
	// " *fill*  0x10000120  0x10" - linker padding
	lineFill
	// " .rodata.str1.1" alone - record wrapped onto the next line
	lineFragment
)

type bodyLine struct {
	kind   lineKind
	fields []string
}

// classifyBody tags one physical (or reassembled) line of the map body.
// Rows containing "=" or "before" are symbol assignments and diagnostic
// notes, never allocations.
func classifyBody(line string) bodyLine {
	if strings.HasPrefix(line, ".") {
		return bodyLine{lineSection, strings.Fields(line)}
	}
	if !strings.HasPrefix(line, " .") && !strings.HasPrefix(line, " "+fillMarker) {
		return bodyLine{kind: lineIgnored}
	}
	fields := strings.Fields(line)
	switch {
	case len(fields) == 1 && len(line) > 14:
		return bodyLine{lineFragment, fields}
	case len(fields) >= 3 && !hasToken(fields, "=") && !hasToken(fields, "before"):
		if fields[0] == fillMarker {
			return bodyLine{lineFill, fields}
		}
		return bodyLine{lineAllocation, fields}
	}
	return bodyLine{kind: lineIgnored}
}

func hasToken(fields []string, tok string) bool {
	for _, f := range fields {
		if f == tok {
			return true
		}
	}
	return false
}
