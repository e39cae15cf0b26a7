package ui

import (
	"sync"

	"goeda/domain/core"
	"goeda/domain/table"
)

// datasetState is the session's current dataset plus its derived column
// classification. Immutable once stored; a new upload replaces the whole
// value, so readers never observe a partial update.
type datasetState struct {
	ID             core.DatasetID
	Name           string
	Table          *table.Table
	Classification table.Classification
	UploadedAt     core.Timestamp
}

// datasetHolder guards the current dataset. Analysis handlers only take
// the read lock; concurrent analyses over the same dataset are safe since
// the table is immutable.
type datasetHolder struct {
	mu      sync.RWMutex
	current *datasetState
}

// replace swaps in a freshly loaded dataset and returns its state
func (h *datasetHolder) replace(name string, t *table.Table) *datasetState {
	ds := &datasetState{
		ID:             core.NewDatasetID(),
		Name:           name,
		Table:          t,
		Classification: table.Classify(t),
		UploadedAt:     core.Now(),
	}

	h.mu.Lock()
	h.current = ds
	h.mu.Unlock()

	return ds
}

// get returns the current dataset, or ok=false before the first upload
func (h *datasetHolder) get() (*datasetState, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil, false
	}
	return h.current, true
}
