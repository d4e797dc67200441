package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var priorityOrder = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// Ordinal returns the stored integer form (Low < Medium < High), or -1.
func (p Priority) Ordinal() int {
	for i, v := range priorityOrder {
		if v == p {
			return i
		}
	}
	return -1
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func PriorityFromOrdinal(n int) (Priority, error) {
	if n < 0 || n >= len(priorityOrder) {
		return "", fmt.Errorf("invalid priority ordinal: %d", n)
	}
	return priorityOrder[n], nil
}
