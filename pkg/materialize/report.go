package materialize

// EntryResult is the outcome of one catalog entry, in catalog order.
type EntryResult struct {
	// Path is the entry's relative path as given in the catalog.
	Path string
	// ResolvedPath is the absolute target path. Empty when resolution
	// itself failed (path escape, invalid path).
	ResolvedPath string
	// Err is nil on success, otherwise a coded error describing why the
	// entry was not written.
	Err error
}

// OK reports whether the entry was written.
func (r EntryResult) OK() bool {
	return r.Err == nil
}

// Report captures one materialization run. It is produced fresh per run and
// has no lifecycle beyond it.
type Report struct {
	// Results holds one entry per catalog entry, in catalog order.
	Results []EntryResult
	// Warnings lists catalog integrity warnings, currently duplicate
	// normalized paths. Warnings never fail a run.
	Warnings []string
}

// Total returns the number of entries processed. Always equals the catalog
// size: no entry is skipped before reaching the materializer.
func (r *Report) Total() int {
	return len(r.Results)
}

// Successes returns the number of entries written.
func (r *Report) Successes() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failures returns the number of entries that errored.
func (r *Report) Failures() int {
	return r.Total() - r.Successes()
}

// Failed reports whether any entry errored. Warnings do not count.
func (r *Report) Failed() bool {
	return r.Failures() > 0
}
