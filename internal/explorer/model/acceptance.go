package model

import "fmt"

// Acceptance describes whether a transaction was accepted by the virtual selected chain.
// BlueScore and Timestamp stay nil when the accepting block could not be found.
type Acceptance struct {
	TransactionID string
	Accepted      bool
	BlockHash     string
	BlueScore     *uint64
	Timestamp     *int64
}

// AcceptanceFilter restricts results by acceptance state.
type AcceptanceFilter string

const (
	AcceptanceAny      AcceptanceFilter = ""
	AcceptanceAccepted AcceptanceFilter = "accepted"
	AcceptanceRejected AcceptanceFilter = "rejected"
)

func ParseAcceptanceFilter(value string) (AcceptanceFilter, error) {
	switch AcceptanceFilter(value) {
	case AcceptanceAny, AcceptanceAccepted, AcceptanceRejected:
		return AcceptanceFilter(value), nil
	default:
		return "", fmt.Errorf("%w: unknown acceptance filter %q", ErrInvalidRequest, value)
	}
}

// Match reports whether an acceptance passes the filter.
func (f AcceptanceFilter) Match(acceptance Acceptance) bool {
	switch f {
	case AcceptanceAccepted:
		return acceptance.Accepted
	case AcceptanceRejected:
		return !acceptance.Accepted
	default:
		return true
	}
}
