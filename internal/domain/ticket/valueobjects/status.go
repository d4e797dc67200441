package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "New"
	StatusInProgress TicketStatus = "InProgress"
	StatusDone       TicketStatus = "Done"
)

// statusOrder is the storage ordinal; sorting by status follows it.
var statusOrder = []TicketStatus{
	StatusNew,
	StatusInProgress,
	StatusDone,
}

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusDone:       true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsDone() bool {
	return ts == StatusDone
}

// Ordinal returns the stored integer form, or -1 for an unknown status.
func (ts TicketStatus) Ordinal() int {
	for i, s := range statusOrder {
		if s == ts {
			return i
		}
	}
	return -1
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

func TicketStatusFromOrdinal(n int) (TicketStatus, error) {
	if n < 0 || n >= len(statusOrder) {
		return "", fmt.Errorf("invalid ticket status ordinal: %d", n)
	}
	return statusOrder[n], nil
}
