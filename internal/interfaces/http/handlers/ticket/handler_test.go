package ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/tracklet-io/tracklet/internal/application/ticket/dto"
	"github.com/tracklet-io/tracklet/internal/application/ticket/usecases"
	domainticket "github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/interfaces/http/handlers/testutil"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	cmd    usecases.CreateTicketCommand
	result *usecases.CreateTicketResult
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	cmd usecases.UpdateTicketCommand
	err error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) error {
	m.cmd = cmd
	return m.err
}

type mockUpdateTitleUC struct {
	cmd usecases.UpdateTicketTitleCommand
	err error
}

func (m *mockUpdateTitleUC) Execute(_ context.Context, cmd usecases.UpdateTicketTitleCommand) error {
	m.cmd = cmd
	return m.err
}

type mockUpdateDescriptionUC struct {
	cmd usecases.UpdateTicketDescriptionCommand
	err error
}

func (m *mockUpdateDescriptionUC) Execute(_ context.Context, cmd usecases.UpdateTicketDescriptionCommand) error {
	m.cmd = cmd
	return m.err
}

type mockUpdateAuthorUC struct {
	cmd usecases.UpdateTicketAuthorCommand
	err error
}

func (m *mockUpdateAuthorUC) Execute(_ context.Context, cmd usecases.UpdateTicketAuthorCommand) error {
	m.cmd = cmd
	return m.err
}

type mockUpdateAssigneeUC struct {
	cmd usecases.UpdateTicketAssigneeCommand
	err error
}

func (m *mockUpdateAssigneeUC) Execute(_ context.Context, cmd usecases.UpdateTicketAssigneeCommand) error {
	m.cmd = cmd
	return m.err
}

type mockUpdatePriorityUC struct {
	cmd usecases.UpdateTicketPriorityCommand
	err error
}

func (m *mockUpdatePriorityUC) Execute(_ context.Context, cmd usecases.UpdateTicketPriorityCommand) error {
	m.cmd = cmd
	return m.err
}

type mockUpdateStatusUC struct {
	cmd usecases.UpdateTicketStatusCommand
	err error
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateTicketStatusCommand) error {
	m.cmd = cmd
	return m.err
}

type mockUpdateParentUC struct {
	cmd usecases.UpdateTicketParentCommand
	err error
}

func (m *mockUpdateParentUC) Execute(_ context.Context, cmd usecases.UpdateTicketParentCommand) error {
	m.cmd = cmd
	return m.err
}

type mockDeleteTicketUC struct {
	cmd usecases.DeleteTicketCommand
	err error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) error {
	m.cmd = cmd
	return m.err
}

type mockAddRelationsUC struct {
	cmd usecases.AddRelationsCommand
	err error
}

func (m *mockAddRelationsUC) Execute(_ context.Context, cmd usecases.AddRelationsCommand) (*usecases.AddRelationsResult, error) {
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &usecases.AddRelationsResult{Added: len(cmd.ToTicketIDs)}, nil
}

type mockDeleteRelationsUC struct {
	cmd usecases.DeleteRelationsCommand
	err error
}

func (m *mockDeleteRelationsUC) Execute(_ context.Context, cmd usecases.DeleteRelationsCommand) (*usecases.DeleteRelationsResult, error) {
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &usecases.DeleteRelationsResult{Deleted: int64(len(cmd.RelatedTicketIDs))}, nil
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	query  usecases.ListTicketsQuery
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.query = query
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type handlerMocks struct {
	create          *mockCreateTicketUC
	update          *mockUpdateTicketUC
	title           *mockUpdateTitleUC
	description     *mockUpdateDescriptionUC
	author          *mockUpdateAuthorUC
	assignee        *mockUpdateAssigneeUC
	priority        *mockUpdatePriorityUC
	status          *mockUpdateStatusUC
	parent          *mockUpdateParentUC
	deleteTicket    *mockDeleteTicketUC
	addRelations    *mockAddRelationsUC
	deleteRelations *mockDeleteRelationsUC
	get             *mockGetTicketUC
	list            *mockListTicketsUC
}

func newTestHandler() (*TicketHandler, *handlerMocks) {
	m := &handlerMocks{
		create:          &mockCreateTicketUC{},
		update:          &mockUpdateTicketUC{},
		title:           &mockUpdateTitleUC{},
		description:     &mockUpdateDescriptionUC{},
		author:          &mockUpdateAuthorUC{},
		assignee:        &mockUpdateAssigneeUC{},
		priority:        &mockUpdatePriorityUC{},
		status:          &mockUpdateStatusUC{},
		parent:          &mockUpdateParentUC{},
		deleteTicket:    &mockDeleteTicketUC{},
		addRelations:    &mockAddRelationsUC{},
		deleteRelations: &mockDeleteRelationsUC{},
		get:             &mockGetTicketUC{},
		list:            &mockListTicketsUC{},
	}
	h := NewTicketHandler(
		m.create, m.update, m.title, m.description, m.author, m.assignee,
		m.priority, m.status, m.parent, m.deleteTicket, m.addRelations,
		m.deleteRelations, m.get, m.list, logger.NewNopLogger(),
	)
	return h, m
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }

func decodeResponse(t *testing.T, w interface{ Bytes() []byte }) testutil.APIResponse {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(w.Bytes(), &resp))
	return resp
}

// =====================================================================
// GetTicket
// =====================================================================

func TestTicketHandler_GetTicket(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, m := newTestHandler()
		m.get.result = &ticketdto.TicketDTO{ID: 3, Title: "Bug", Status: "New", Priority: "High"}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/ticket/3", nil)
		testutil.SetURLParam(c, "id", "3")
		h.GetTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body)
		assert.True(t, resp.Success)

		var got ticketdto.TicketDTO
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.Equal(t, uint(3), got.ID)
		assert.Equal(t, "Bug", got.Title)
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newTestHandler()
		m.get.err = domainticket.NewTicketNotFoundError(42)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/ticket/42", nil)
		testutil.SetURLParam(c, "id", "42")
		h.GetTicket(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w.Body)
		assert.Equal(t, "not_found", resp.Error.Type)
		assert.Equal(t, "ticket with id 42 not found", resp.Error.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-1"} {
			h, _ := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/ticket/"+raw, nil)
			testutil.SetURLParam(c, "id", raw)
			h.GetTicket(c)
			assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", raw)
		}
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		h, m := newTestHandler()
		m.get.err = fmt.Errorf("dial tcp: connection refused")

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/ticket/1", nil)
		testutil.SetURLParam(c, "id", "1")
		h.GetTicket(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

// =====================================================================
// ListTickets
// =====================================================================

func TestTicketHandler_ListTickets(t *testing.T) {
	t.Run("passes filters and defaults sort", func(t *testing.T) {
		h, m := newTestHandler()
		m.list.result = &usecases.ListTicketsResult{
			Tickets:  []ticketdto.TicketListItemDTO{{ID: 1}, {ID: 2}},
			Total:    7,
			Page:     2,
			PageSize: 2,
		}

		body := map[string]interface{}{
			"page":       2,
			"page_size":  5,
			"statuses":   []string{"New", "Done"},
			"priorities": []string{"High"},
			"authors":    []string{"alice"},
			"search":     "crash",
		}
		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/ticket/filter", body)
		h.ListTickets(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"New", "Done"}, m.list.query.Statuses)
		assert.Equal(t, []string{"High"}, m.list.query.Priorities)
		assert.Equal(t, []string{"alice"}, m.list.query.Authors)
		assert.Equal(t, "crash", m.list.query.Search)
		assert.Equal(t, "CreatedAt", m.list.query.SortBy)
		assert.Equal(t, 2, m.list.query.Page)
		assert.Equal(t, 5, m.list.query.PageSize)

		resp := decodeResponse(t, w.Body)
		var page struct {
			Items    []ticketdto.TicketListItemDTO `json:"items"`
			Total    int64                         `json:"total"`
			Page     int                           `json:"page"`
			PageSize int                           `json:"page_size"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &page))
		assert.Len(t, page.Items, 2)
		assert.Equal(t, int64(7), page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.PageSize)
	})

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"page zero", map[string]interface{}{"page": 0, "page_size": 10}},
		{"page size too large", map[string]interface{}{"page": 1, "page_size": 101}},
		{"page size zero", map[string]interface{}{"page": 1, "page_size": 0}},
		{"unknown sort key", map[string]interface{}{"page": 1, "page_size": 10, "sort_by": "Title"}},
		{"unknown sort order", map[string]interface{}{"page": 1, "page_size": 10, "sort_order": "Sideways"}},
		{"unknown status", map[string]interface{}{"page": 1, "page_size": 10, "statuses": []string{"Closed"}}},
		{"blank author", map[string]interface{}{"page": 1, "page_size": 10, "authors": []string{" "}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/ticket/filter", tt.body)
			h.ListTickets(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, string(errors.ErrorTypeValidation), decodeResponse(t, w.Body).Error.Type)
		})
	}
}

// =====================================================================
// CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newTestHandler()
		m.create.result = &usecases.CreateTicketResult{TicketID: 11, CreatedAt: time.Now()}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/ticket/create", map[string]interface{}{
			"priority":    "High",
			"title":       "Login broken",
			"description": "500 on submit",
			"author":      "alice",
			"assignee":    "bob",
			"parent":      4,
		})
		h.CreateTicket(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/v1/ticket/11", w.Header().Get("Location"))
		assert.Equal(t, "High", m.create.cmd.Priority)
		assert.Equal(t, uintPtr(4), m.create.cmd.ParentID)

		resp := decodeResponse(t, w.Body)
		assert.JSONEq(t, `{"id":11}`, string(resp.Data))
	})

	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", `{"title":`},
		{"missing title", map[string]interface{}{"priority": "Low", "author": "alice"}},
		{"blank title", map[string]interface{}{"priority": "Low", "author": "alice", "title": "   "}},
		{"missing author", map[string]interface{}{"priority": "Low", "title": "x"}},
		{"unknown priority", map[string]interface{}{"priority": "Urgent", "author": "alice", "title": "x"}},
		{"zero parent", map[string]interface{}{"priority": "Low", "author": "alice", "title": "x", "parent": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/ticket/create", tt.body)
			h.CreateTicket(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	t.Run("missing parent", func(t *testing.T) {
		h, m := newTestHandler()
		m.create.err = domainticket.NewTicketNotFoundError(99)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/ticket/create", map[string]interface{}{
			"priority": "Low", "author": "alice", "title": "x", "parent": 99,
		})
		h.CreateTicket(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =====================================================================
// Updates
// =====================================================================

func TestTicketHandler_UpdateTicket(t *testing.T) {
	t.Run("present fields only", func(t *testing.T) {
		h, m := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/5", map[string]interface{}{
			"title":  "New title",
			"parent": 2,
		})
		testutil.SetURLParam(c, "id", "5")
		h.UpdateTicket(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, uint(5), m.update.cmd.TicketID)
		assert.Equal(t, strPtr("New title"), m.update.cmd.Title)
		assert.Nil(t, m.update.cmd.Description)
		assert.Nil(t, m.update.cmd.Author)
		assert.Equal(t, uintPtr(2), m.update.cmd.ParentID)
	})

	t.Run("omitted parent clears", func(t *testing.T) {
		h, m := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/5", map[string]interface{}{"assignee": "carol"})
		testutil.SetURLParam(c, "id", "5")
		h.UpdateTicket(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Nil(t, m.update.cmd.ParentID)
		assert.Equal(t, strPtr("carol"), m.update.cmd.Assignee)
	})

	t.Run("blank author rejected", func(t *testing.T) {
		h, _ := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/5", map[string]interface{}{"author": ""})
		testutil.SetURLParam(c, "id", "5")
		h.UpdateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_FieldUpdates(t *testing.T) {
	tests := []struct {
		name   string
		call   func(h *TicketHandler, c *gin.Context)
		body   map[string]interface{}
		verify func(t *testing.T, m *handlerMocks)
	}{
		{
			name: "status",
			call: (*TicketHandler).UpdateTicketStatus,
			body: map[string]interface{}{"status": "InProgress"},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Equal(t, usecases.UpdateTicketStatusCommand{TicketID: 8, Status: "InProgress"}, m.status.cmd)
			},
		},
		{
			name: "priority",
			call: (*TicketHandler).UpdateTicketPriority,
			body: map[string]interface{}{"priority": "Medium"},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Equal(t, usecases.UpdateTicketPriorityCommand{TicketID: 8, Priority: "Medium"}, m.priority.cmd)
			},
		},
		{
			name: "assignee",
			call: (*TicketHandler).UpdateTicketAssignee,
			body: map[string]interface{}{"assignee": "dave"},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Equal(t, usecases.UpdateTicketAssigneeCommand{TicketID: 8, Assignee: "dave"}, m.assignee.cmd)
			},
		},
		{
			name: "author",
			call: (*TicketHandler).UpdateTicketAuthor,
			body: map[string]interface{}{"author": "erin"},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Equal(t, usecases.UpdateTicketAuthorCommand{TicketID: 8, Author: "erin"}, m.author.cmd)
			},
		},
		{
			name: "title",
			call: (*TicketHandler).UpdateTicketTitle,
			body: map[string]interface{}{"title": "Renamed"},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Equal(t, usecases.UpdateTicketTitleCommand{TicketID: 8, Title: "Renamed"}, m.title.cmd)
			},
		},
		{
			name: "description",
			call: (*TicketHandler).UpdateTicketDescription,
			body: map[string]interface{}{"description": "**details**"},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Equal(t, usecases.UpdateTicketDescriptionCommand{TicketID: 8, Description: "**details**"}, m.description.cmd)
			},
		},
		{
			name: "parent set",
			call: (*TicketHandler).UpdateTicketParent,
			body: map[string]interface{}{"parent": 3},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Equal(t, uint(8), m.parent.cmd.TicketID)
				assert.Equal(t, uintPtr(3), m.parent.cmd.ParentID)
			},
		},
		{
			name: "parent cleared",
			call: (*TicketHandler).UpdateTicketParent,
			body: map[string]interface{}{"parent": nil},
			verify: func(t *testing.T, m *handlerMocks) {
				assert.Nil(t, m.parent.cmd.ParentID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/x/8", tt.body)
			testutil.SetURLParam(c, "id", "8")

			tt.call(h, c)

			assert.Equal(t, http.StatusNoContent, w.Code)
			tt.verify(t, m)
		})
	}
}

func TestTicketHandler_FieldUpdateRejections(t *testing.T) {
	tests := []struct {
		name string
		call func(h *TicketHandler, c *gin.Context)
		body map[string]interface{}
	}{
		{"unknown status", (*TicketHandler).UpdateTicketStatus, map[string]interface{}{"status": "Closed"}},
		{"lowercase priority", (*TicketHandler).UpdateTicketPriority, map[string]interface{}{"priority": "high"}},
		{"blank assignee", (*TicketHandler).UpdateTicketAssignee, map[string]interface{}{"assignee": " "}},
		{"missing author", (*TicketHandler).UpdateTicketAuthor, map[string]interface{}{}},
		{"empty title", (*TicketHandler).UpdateTicketTitle, map[string]interface{}{"title": ""}},
		{"zero parent", (*TicketHandler).UpdateTicketParent, map[string]interface{}{"parent": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/x/8", tt.body)
			testutil.SetURLParam(c, "id", "8")

			tt.call(h, c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTicketHandler_UpdateErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domainticket.NewTicketNotFoundError(8), http.StatusNotFound},
		{"domain validation", errors.NewValidationError("title must not be empty"), http.StatusBadRequest},
		{"canceled", errors.NewCanceledError("request canceled"), 499},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.status.err = tt.err

			c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/status/8", map[string]interface{}{"status": "Done"})
			testutil.SetURLParam(c, "id", "8")
			h.UpdateTicketStatus(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

// =====================================================================
// Relations
// =====================================================================

func TestTicketHandler_AddRelations(t *testing.T) {
	t.Run("batch", func(t *testing.T) {
		h, m := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/relates-to/add/1", map[string]interface{}{
			"relates_to":    []uint{2, 3},
			"relation_type": "Blocks",
		})
		testutil.SetURLParam(c, "id", "1")
		h.AddRelations(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, usecases.AddRelationsCommand{FromTicketID: 1, ToTicketIDs: []uint{2, 3}, RelationType: "Blocks"}, m.addRelations.cmd)
	})

	t.Run("error kinds", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
			kind   string
		}{
			{"self relation", domainticket.NewSelfRelationError(1), http.StatusBadRequest, "self_relation"},
			{"duplicate", domainticket.NewRelationExistsError(1, 2), http.StatusConflict, "conflict"},
			{"missing target", domainticket.NewTicketNotFoundError(2), http.StatusNotFound, "not_found"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h, m := newTestHandler()
				m.addRelations.err = tt.err

				c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/relates-to/add/1", map[string]interface{}{
					"relates_to":    []uint{2},
					"relation_type": "RelatedTo",
				})
				testutil.SetURLParam(c, "id", "1")
				h.AddRelations(c)

				assert.Equal(t, tt.status, w.Code)
				assert.Equal(t, tt.kind, decodeResponse(t, w.Body).Error.Type)
			})
		}
	})

	t.Run("invalid bodies", func(t *testing.T) {
		bodies := []map[string]interface{}{
			{"relation_type": "Blocks"},
			{"relates_to": []uint{}, "relation_type": "Blocks"},
			{"relates_to": []uint{0}, "relation_type": "Blocks"},
			{"relates_to": []uint{2}, "relation_type": "Parent"},
			{"relates_to": []uint{2}},
		}
		for _, body := range bodies {
			h, _ := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/relates-to/add/1", body)
			testutil.SetURLParam(c, "id", "1")
			h.AddRelations(c)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
		}
	})
}

func TestTicketHandler_DeleteRelations(t *testing.T) {
	h, m := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/ticket/relates-to/delete/1", map[string]interface{}{
		"relates_to": []uint{2, 5},
	})
	testutil.SetURLParam(c, "id", "1")
	h.DeleteRelations(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(1), m.deleteRelations.cmd.TicketID)
	assert.Equal(t, []uint{2, 5}, m.deleteRelations.cmd.RelatedTicketIDs)
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	h, m := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/ticket/9", nil)
	testutil.SetURLParam(c, "id", "9")
	h.DeleteTicket(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(9), m.deleteTicket.cmd.TicketID)

	m.deleteTicket.err = domainticket.NewTicketNotFoundError(9)
	c, w = testutil.NewTestContext(http.MethodDelete, "/api/v1/ticket/9", nil)
	testutil.SetURLParam(c, "id", "9")
	h.DeleteTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
