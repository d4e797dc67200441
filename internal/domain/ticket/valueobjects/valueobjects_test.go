package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{name: "new", input: "New", want: StatusNew},
		{name: "in progress", input: "InProgress", want: StatusInProgress},
		{name: "done", input: "Done", want: StatusDone},
		{name: "lowercase rejected", input: "done", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTicketStatusOrdinal_RoundTrip(t *testing.T) {
	for i, s := range []TicketStatus{StatusNew, StatusInProgress, StatusDone} {
		assert.Equal(t, i, s.Ordinal())
		back, err := TicketStatusFromOrdinal(i)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}

	assert.Equal(t, -1, TicketStatus("Closed").Ordinal())
	_, err := TicketStatusFromOrdinal(3)
	assert.Error(t, err)
}

func TestPriorityOrdinal_Ordering(t *testing.T) {
	assert.Less(t, PriorityLow.Ordinal(), PriorityMedium.Ordinal())
	assert.Less(t, PriorityMedium.Ordinal(), PriorityHigh.Ordinal())

	_, err := PriorityFromOrdinal(-1)
	assert.Error(t, err)

	p, err := NewPriority("High")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = NewPriority("Urgent")
	assert.Error(t, err)
}

func TestRelationType(t *testing.T) {
	all := AllRelationTypes()
	require.Len(t, all, 8)

	for i, rt := range all {
		assert.True(t, rt.IsValid())
		back, err := RelationTypeFromOrdinal(i)
		require.NoError(t, err)
		assert.Equal(t, rt, back)
	}

	_, err := NewRelationType("Parent")
	assert.Error(t, err)

	all[0] = "mutated"
	assert.Equal(t, RelationRelatedTo, AllRelationTypes()[0])
}
