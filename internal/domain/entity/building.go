package entity

import "sort"

// Building aggregates the readings of one named building.
// It owns its readings exclusively and is never mutated after
// the aggregation stage starts.
type Building struct {
	Name     string    `json:"name"`
	Readings []Reading `json:"readings"`
}

// Total returns the sum of kWh over the building's readings.
func (b *Building) Total() float64 {
	var total float64
	for _, r := range b.Readings {
		total += r.KWh
	}
	return total
}

// Average returns the mean kWh per reading. A building with zero
// readings yields 0 (the text reporter renders it as "N/A").
func (b *Building) Average() float64 {
	if len(b.Readings) == 0 {
		return 0
	}
	return b.Total() / float64(len(b.Readings))
}

// Count returns the number of readings held by the building.
func (b *Building) Count() int {
	return len(b.Readings)
}

// Peak returns the highest single reading of the building and whether
// the building has any readings at all. Ties keep the earliest timestamp.
func (b *Building) Peak() (Reading, bool) {
	if len(b.Readings) == 0 {
		return Reading{}, false
	}
	peak := b.Readings[0]
	for _, r := range b.Readings[1:] {
		if r.KWh > peak.KWh {
			peak = r
		}
	}
	return peak, true
}

// BuildingManager owns the collection of buildings keyed by name.
// É construído uma única vez a partir da tabela combinada (NewBuildingManager)
// e tratado como somente leitura depois disso.
type BuildingManager struct {
	buildings map[string]*Building
}

// NewBuildingManager groups the combined reading table into per-building
// aggregates. The object model is derived from the canonical table, not
// populated by a second ingestion pass.
func NewBuildingManager(readings []Reading) *BuildingManager {
	m := &BuildingManager{buildings: make(map[string]*Building)}
	for _, r := range readings {
		b, ok := m.buildings[r.Building]
		if !ok {
			b = &Building{Name: r.Building}
			m.buildings[r.Building] = b
		}
		b.Readings = append(b.Readings, r)
	}
	return m
}

// Get returns the building with the given name, or nil.
func (m *BuildingManager) Get(name string) *Building {
	return m.buildings[name]
}

// Names returns all building names in ascending order.
func (m *BuildingManager) Names() []string {
	names := make([]string, 0, len(m.buildings))
	for name := range m.buildings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of buildings.
func (m *BuildingManager) Len() int {
	return len(m.buildings)
}

// Rank returns the buildings ordered by descending total consumption.
// Empates são resolvidos pelo nome em ordem ascendente, garantindo um
// ranking determinístico independente da ordem de entrada.
func (m *BuildingManager) Rank() []*Building {
	ranked := make([]*Building, 0, len(m.buildings))
	for _, name := range m.Names() {
		ranked = append(ranked, m.buildings[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total() > ranked[j].Total()
	})
	return ranked
}

// CampusTotal sums the totals of every building.
func (m *BuildingManager) CampusTotal() float64 {
	var total float64
	for _, b := range m.buildings {
		total += b.Total()
	}
	return total
}

// TopBuilding returns the highest-consuming building, or nil when the
// manager is empty. Ties go to the lexicographically smaller name.
func (m *BuildingManager) TopBuilding() *Building {
	ranked := m.Rank()
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}

// Peak returns the single highest instantaneous reading across the whole
// campus. Ties are broken by earlier timestamp, then by building name.
func (m *BuildingManager) Peak() (Reading, bool) {
	var peak Reading
	found := false
	for _, name := range m.Names() {
		r, ok := m.buildings[name].Peak()
		if !ok {
			continue
		}
		if !found || r.KWh > peak.KWh ||
			(r.KWh == peak.KWh && r.Timestamp.Before(peak.Timestamp)) {
			peak = r
			found = true
		}
	}
	return peak, found
}
