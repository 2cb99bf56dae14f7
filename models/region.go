package models

// Placement tracks where a section landed inside one memory region: the
// last seen start address of any allocation for that section, and the sum
// of all allocation sizes attributed to it.
type Placement struct {
	Start uint64
	Size  uint64
}

// MemRegion is one row of the map report's "Memory Configuration" block.
// End is inclusive (Start + length - 1).
type MemRegion struct {
	Name     string
	Start    uint64
	End      uint64
	Capacity uint64
	Used     uint64

	sections map[string]*Placement
	order    []string
}

func NewMemRegion(name string, start, length uint64) *MemRegion {
	end := start
	if length > 0 {
		// keep Start <= End; a zero-length row must not wrap around
		end = start + length - 1
	}
	return &MemRegion{
		Name:     name,
		Start:    start,
		End:      end,
		Capacity: length,
		sections: make(map[string]*Placement),
	}
}

func (m *MemRegion) contains(start, size uint64) bool {
	if m.Capacity == 0 {
		return false
	}
	return start >= m.Start && start+size-1 <= m.End
}

func (m *MemRegion) add(section string, start, size uint64) {
	p, ok := m.sections[section]
	if !ok {
		p = &Placement{}
		m.sections[section] = p
		m.order = append(m.order, section)
	}
	p.Start = start
	p.Size += size
	m.Used += size
}

// Placement looks up the accumulated placement for a section name.
func (m *MemRegion) Placement(section string) (Placement, bool) {
	p, ok := m.sections[section]
	if !ok {
		return Placement{}, false
	}
	return *p, true
}

// Sections returns the section names placed in this region, in the order
// they first appeared.
func (m *MemRegion) Sections() []string {
	return append([]string(nil), m.order...)
}

// Utilization returns Used as a percentage of the region's address span.
// A zero-span region (length 1) reports zero instead of dividing by zero.
func (m *MemRegion) Utilization() float64 {
	span := m.End - m.Start
	if span == 0 {
		return 0
	}
	return float64(m.Used) * 100 / float64(span)
}

// RegionTable holds the declared memory regions in file order.
type RegionTable struct {
	regions []*MemRegion
}

func NewRegionTable() *RegionTable {
	return &RegionTable{}
}

func (t *RegionTable) Add(m *MemRegion) {
	t.regions = append(t.regions, m)
}

func (t *RegionTable) Find(name string) *MemRegion {
	for _, m := range t.regions {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (t *RegionTable) Regions() []*MemRegion {
	return append([]*MemRegion(nil), t.regions...)
}

// Attribute hands [start, start+size-1] to the first region that contains
// the whole range. Ranges outside every region (debug sections and the
// like) are dropped; the return value reports whether a region took it.
func (t *RegionTable) Attribute(section string, start, size uint64) bool {
	if size == 0 {
		return false
	}
	for _, m := range t.regions {
		if m.contains(start, size) {
			m.add(section, start, size)
			return true
		}
	}
	return false
}
