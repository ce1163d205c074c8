package pipeline

// RunStats tracks aggregate counters across a rename run.
type RunStats struct {
	Total   int   // Photos planned for renaming.
	Renamed int   // Renames completed.
	Bytes   int64 // Total size of the renamed photos.
}

// Remaining returns how many planned renames did not happen.
func (s *RunStats) Remaining() int {
	return s.Total - s.Renamed
}
