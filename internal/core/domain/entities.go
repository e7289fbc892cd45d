package domain

// Status represents the lifecycle state shared by staff registrations
// and payment records
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}
