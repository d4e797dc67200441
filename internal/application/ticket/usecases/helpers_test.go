package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/testdb"
	"github.com/tracklet-io/tracklet/internal/infrastructure/repository"
	"github.com/tracklet-io/tracklet/internal/shared/biztime"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }

// fixture wires the use cases to the real repositories over in-memory SQLite.
type fixture struct {
	tickets   *repository.TicketRepository
	relations *repository.TicketRelationRepository
	txMgr     *db.TransactionManager
	log       logger.Interface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time {
		current = current.Add(time.Second)
		return current
	})
	t.Cleanup(restore)

	gdb := testdb.New(t)
	log := logger.NewNopLogger()
	return &fixture{
		tickets:   repository.NewTicketRepository(gdb, log),
		relations: repository.NewTicketRelationRepository(gdb, log),
		txMgr:     db.NewTransactionManager(gdb),
		log:       log,
	}
}

func (f *fixture) createTicket(t *testing.T, title string, parentID *uint) uint {
	t.Helper()
	tk, err := ticket.NewTicket(vo.PriorityMedium, title, "", "admin", "", parentID)
	require.NoError(t, err)
	require.NoError(t, f.tickets.Create(context.Background(), tk))
	return tk.ID()
}

func (f *fixture) load(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	tk, err := f.tickets.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, tk)
	return tk
}

func (f *fixture) relate(t *testing.T, from, to uint, rt vo.RelationType) {
	t.Helper()
	rel, err := ticket.NewRelation(from, to, rt)
	require.NoError(t, err)
	require.NoError(t, f.relations.Create(context.Background(), rel))
}

func (f *fixture) hasRelation(t *testing.T, from, to uint, rt vo.RelationType) bool {
	t.Helper()
	ok, err := f.relations.Exists(context.Background(), ticket.RelationKey{FromTicketID: from, ToTicketID: to, Type: rt})
	require.NoError(t, err)
	return ok
}

// requireNotFound asserts err is NotFound for the given ticket id.
func requireNotFound(t *testing.T, err error, id uint) {
	t.Helper()
	require.Error(t, err)
	got, ok := ticket.NotFoundID(err)
	require.True(t, ok, "expected not found error, got %v", err)
	require.Equal(t, id, got)
}
