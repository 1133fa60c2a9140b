package navlog

// ID identifies a fund, it is the fund_id column of the registry and the
// column prefix in the history file.
type ID string

// Status of an instrument in the registry.
type Status string

// Active is the only status that gets fetched.
const Active Status = "active"

// Instrument is a fund tracked by the registry.
type Instrument struct {
	ID     ID
	URL    string
	Status Status
}

// IsActive reports whether the instrument should be fetched.
func (i Instrument) IsActive() bool { return i.Status == Active }
