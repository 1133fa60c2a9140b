package navlog

import (
	"iter"
	"slices"

	"github.com/etnz/navlog/date"
)

// Observation is the price of a fund as published on its page for a given day.
type Observation struct {
	ID    ID
	Price Price
	AsOf  date.Date
}

// Batch is the result of one fetch cycle: observations keyed by fund, in registry order.
type Batch struct {
	ids []ID
	obs map[ID]Observation
}

// NewBatch returns a batch holding the given observations.
func NewBatch(observations ...Observation) *Batch {
	b := &Batch{obs: make(map[ID]Observation)}
	for _, o := range observations {
		b.Add(o)
	}
	return b
}

// Add records an observation. An observation for a fund already in the batch replaces it
// and keeps its position.
func (b *Batch) Add(o Observation) {
	if b.obs == nil {
		b.obs = make(map[ID]Observation)
	}
	if _, exists := b.obs[o.ID]; !exists {
		b.ids = append(b.ids, o.ID)
	}
	b.obs[o.ID] = o
}

// Get returns the observation for id.
func (b *Batch) Get(id ID) (Observation, bool) {
	o, ok := b.obs[id]
	return o, ok
}

// Len returns the number of funds in the batch.
func (b *Batch) Len() int { return len(b.ids) }

// IDs returns the funds of the batch in order.
func (b *Batch) IDs() []ID { return slices.Clone(b.ids) }

// Observations iterates over the batch in order.
func (b *Batch) Observations() iter.Seq[Observation] {
	return func(yield func(Observation) bool) {
		for _, id := range b.ids {
			if !yield(b.obs[id]) {
				return
			}
		}
	}
}
