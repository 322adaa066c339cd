package grid

// Monitor receives coarse progress updates from long-running
// operations. Implementations must be cheap: algorithms call them from
// inner scan loops at most once per pass or per row band. Monitors are
// advisory only and cannot cancel the operation that reports to them.
type Monitor interface {
	// Progress reports that current of total units are complete.
	// total is fixed for the lifetime of one operation; current is
	// non-decreasing within an operation.
	Progress(current, total int)

	// Status reports a short human-readable phase description, such
	// as "forward pass" or "flooding".
	Status(message string)
}

// NopMonitor discards all updates. Operations use it when the caller
// passes a nil Monitor, so algorithm code never nil-checks.
type NopMonitor struct{}

func (NopMonitor) Progress(current, total int) {}
func (NopMonitor) Status(message string)       {}

// EnsureMonitor returns m, or a NopMonitor when m is nil.
func EnsureMonitor(m Monitor) Monitor {
	if m == nil {
		return NopMonitor{}
	}
	return m
}
