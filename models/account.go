package models

// SourceAccount accumulates the bytes one contributing object (a file
// path, an archive member, or the linker's *fill* marker) placed in each
// section class.
type SourceAccount struct {
	Code   uint64
	ROData uint64
	Data   uint64
	BSS    uint64
	Other  uint64
}

func (a *SourceAccount) Total() uint64 {
	return a.Code + a.ROData + a.Data + a.BSS + a.Other
}

func (a *SourceAccount) add(class Class, size uint64) {
	switch class {
	case ClassCode:
		a.Code += size
	case ClassROData:
		a.ROData += size
	case ClassData:
		a.Data += size
	case ClassBSS:
		a.BSS += size
	case ClassOther:
		a.Other += size
	}
}

// ByClass returns the counter for a single class. Ignored reads as zero.
func (a *SourceAccount) ByClass(class Class) uint64 {
	switch class {
	case ClassCode:
		return a.Code
	case ClassROData:
		return a.ROData
	case ClassData:
		return a.Data
	case ClassBSS:
		return a.BSS
	case ClassOther:
		return a.Other
	}
	return 0
}

// AccountTable keys SourceAccounts by contributing object, preserving
// first-appearance order for reporting.
type AccountTable struct {
	rules    Rules
	accounts map[string]*SourceAccount
	order    []string
}

func NewAccountTable(rules Rules) *AccountTable {
	if rules == nil {
		rules = DefaultRules
	}
	return &AccountTable{
		rules:    rules,
		accounts: make(map[string]*SourceAccount),
	}
}

// Add classifies section under the table's rules and adds size bytes to
// the matching counter of source's account. The account is created on
// first reference even when the section class is ignored.
func (t *AccountTable) Add(source, section string, size uint64) {
	a, ok := t.accounts[source]
	if !ok {
		a = &SourceAccount{}
		t.accounts[source] = a
		t.order = append(t.order, source)
	}
	a.add(t.rules.Classify(section), size)
}

// Account returns the account for source, or nil if it never appeared.
func (t *AccountTable) Account(source string) *SourceAccount {
	return t.accounts[source]
}

// Sources returns the contributing objects in first-appearance order.
func (t *AccountTable) Sources() []string {
	return append([]string(nil), t.order...)
}

func (t *AccountTable) Len() int {
	return len(t.order)
}

// Sum returns the column totals across every account.
func (t *AccountTable) Sum() SourceAccount {
	var sum SourceAccount
	for _, a := range t.accounts {
		sum.Code += a.Code
		sum.ROData += a.ROData
		sum.Data += a.Data
		sum.BSS += a.BSS
		sum.Other += a.Other
	}
	return sum
}
