package mapfile

import (
	"bufio"
	"strings"

	"github.com/zsdotkr/picomap/models"
)

// parseMemoryConfig skips ahead to the "Memory Configuration" block and
// registers one region per "<name> <hex-start> <hex-length> ..." row,
// stopping at the "Linker script and memory map" header. The block's
// exact layout varies by toolchain version, so anything that does not
// parse as a region row (headers, blanks, attribute text) is skipped.
// The linker's catch-all "*default*" region is excluded.
func (m *MapFile) parseMemoryConfig(s *bufio.Scanner) {
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == memoryConfigHeader {
			break
		}
	}
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == mapBodyHeader {
			return
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		start, err := parseHex(fields[1])
		if err != nil {
			continue
		}
		length, err := parseHex(fields[2])
		if err != nil {
			continue
		}
		if strings.HasPrefix(fields[0], "*") {
			continue
		}
		m.Regions.Add(models.NewMemRegion(fields[0], start, length))
	}
}
