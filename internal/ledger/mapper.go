package ledger

import (
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

// InstrumentMapper is a bidirectional index between a base instrument and the
// option legs derived from it. Multi-leg strategies use it to exit every leg
// of a spread together.
type InstrumentMapper struct {
	children map[string][]types.Instrument
	base     map[string]types.Instrument
}

// NewInstrumentMapper creates an empty mapper.
func NewInstrumentMapper() *InstrumentMapper {
	return &InstrumentMapper{
		children: make(map[string][]types.Instrument),
		base:     make(map[string]types.Instrument),
	}
}

// AddMapping registers a child leg under its base instrument. Re-adding the
// same child is a no-op.
func (m *InstrumentMapper) AddMapping(base, child types.Instrument) {
	if _, exists := m.base[child.Key()]; exists {
		return
	}

	m.base[child.Key()] = base
	m.children[base.Key()] = append(m.children[base.Key()], child)
}

// BaseOf returns the base instrument a child leg belongs to.
func (m *InstrumentMapper) BaseOf(child types.Instrument) (types.Instrument, bool) {
	base, ok := m.base[child.Key()]

	return base, ok
}

// ChildrenOf returns the legs registered under a base instrument, in
// registration order.
func (m *InstrumentMapper) ChildrenOf(base types.Instrument) []types.Instrument {
	return m.children[base.Key()]
}

// IsChild reports whether an instrument is a registered leg.
func (m *InstrumentMapper) IsChild(instrument types.Instrument) bool {
	_, ok := m.base[instrument.Key()]

	return ok
}

// RemoveMappings drops all legs of a base instrument, typically after the
// whole spread has been exited.
func (m *InstrumentMapper) RemoveMappings(base types.Instrument) {
	for _, child := range m.children[base.Key()] {
		delete(m.base, child.Key())
	}

	delete(m.children, base.Key())
}
