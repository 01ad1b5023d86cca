package reserve

import "sync/atomic"

// Stats counts how envelopes were resolved since start.
type Stats struct {
	processed  atomic.Int64
	duplicates atomic.Int64
	rejected   atomic.Int64
}

type StatsSnapshot struct {
	Processed     int64   `json:"processed"`
	Duplicates    int64   `json:"duplicates"`
	Rejected      int64   `json:"rejected"`
	DuplicateRate float64 `json:"duplicate_rate"`
}

func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Processed:  s.processed.Load(),
		Duplicates: s.duplicates.Load(),
		Rejected:   s.rejected.Load(),
	}

	if total := snap.Processed + snap.Duplicates + snap.Rejected; total > 0 {
		snap.DuplicateRate = float64(snap.Duplicates) / float64(total)
	}

	return snap
}
