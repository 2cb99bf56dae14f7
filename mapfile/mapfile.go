// Package mapfile parses the memory map report emitted by GNU ld when
// linking with -M/--print-map, and aggregates the emitted code and data
// blocks two ways: by contributing source object and by physical memory
// region. The format is whitespace-sensitive, varies across toolchain
// versions and mixes size-carrying rows with headers, symbol definitions
// and diagnostics, so anything the parser does not recognize is skipped
// rather than treated as an error.
package mapfile

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"

	"github.com/zsdotkr/picomap/models"
)

var warn = log.New(os.Stderr, ansi.Color("picomap:", "red+b")+" ", 0)

const (
	memoryConfigHeader = "Memory Configuration"
	mapBodyHeader      = "Linker script and memory map"

	fillMarker = "*fill*"
	// initial image of initialized data, synthesized into FLASH after the
	// body pass since the report never lists it as its own section
	imageSection = ".data(image)"
)

// MapFile is the result of parsing one map report: the same allocation
// events grouped by memory region and by source object.
type MapFile struct {
	Regions  *models.RegionTable
	Accounts *models.AccountTable
}

// ParseFile parses the map report at path.
func ParseFile(path string, rules models.Rules) (*MapFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	return Parse(f, rules)
}

// ParseString parses a map report held in s.
func ParseString(s string, rules models.Rules) (*MapFile, error) {
	return Parse(strings.NewReader(s), rules)
}

// Parse consumes the whole report from r: the "Memory Configuration"
// block first, then the "Linker script and memory map" block, then the
// initialized-data image reconciliation. A nil rules uses
// models.DefaultRules.
func Parse(r io.Reader, rules models.Rules) (*MapFile, error) {
	m := &MapFile{
		Regions:  models.NewRegionTable(),
		Accounts: models.NewAccountTable(rules),
	}
	s := bufio.NewScanner(r)
	// object paths can make lines long enough to outgrow the default
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	m.parseMemoryConfig(s)
	m.parseBody(s)
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading map report")
	}
	m.reconcileImage()
	return m, nil
}

func parseHex(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}
