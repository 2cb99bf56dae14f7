package report

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/zsdotkr/picomap/models"
)

// SortKey selects which category orders the per-file table.
type SortKey int

const (
	SortTotal SortKey = iota
	SortCode
	SortROData
	SortData
	SortBSS
)

var keyNames = []string{"total", "code", "rodata", "data", "bss"}

func (k SortKey) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "total"
}

// ParseSortKey resolves a category name to its sort key.
func ParseSortKey(name string) (SortKey, error) {
	for i, n := range keyNames {
		if n == name {
			return SortKey(i), nil
		}
	}
	return SortTotal, errors.Errorf("unknown sort category %q", name)
}

func keyValue(a *models.SourceAccount, key SortKey) uint64 {
	switch key {
	case SortCode:
		return a.Code
	case SortROData:
		return a.ROData
	case SortData:
		return a.Data
	case SortBSS:
		return a.BSS
	}
	return a.Total()
}

// SortedSources orders the contributing objects ascending by the selected
// category, ties keeping first-appearance order.
func SortedSources(t *models.AccountTable, key SortKey) []string {
	sources := t.Sources()
	sort.SliceStable(sources, func(i, j int) bool {
		return keyValue(t.Account(sources[i]), key) < keyValue(t.Account(sources[j]), key)
	})
	return sources
}
