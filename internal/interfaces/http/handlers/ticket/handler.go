package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracklet-io/tracklet/internal/application/ticket/usecases"
	"github.com/tracklet-io/tracklet/internal/shared/constants"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
	"github.com/tracklet-io/tracklet/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	updateTitleUC       usecases.UpdateTicketTitleExecutor
	updateDescriptionUC usecases.UpdateTicketDescriptionExecutor
	updateAuthorUC      usecases.UpdateTicketAuthorExecutor
	updateAssigneeUC    usecases.UpdateTicketAssigneeExecutor
	updatePriorityUC    usecases.UpdateTicketPriorityExecutor
	updateStatusUC      usecases.UpdateTicketStatusExecutor
	updateParentUC      usecases.UpdateTicketParentExecutor
	deleteTicketUC      usecases.DeleteTicketExecutor
	addRelationsUC      usecases.AddRelationsExecutor
	deleteRelationsUC   usecases.DeleteRelationsExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	updateTitleUC usecases.UpdateTicketTitleExecutor,
	updateDescriptionUC usecases.UpdateTicketDescriptionExecutor,
	updateAuthorUC usecases.UpdateTicketAuthorExecutor,
	updateAssigneeUC usecases.UpdateTicketAssigneeExecutor,
	updatePriorityUC usecases.UpdateTicketPriorityExecutor,
	updateStatusUC usecases.UpdateTicketStatusExecutor,
	updateParentUC usecases.UpdateTicketParentExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	addRelationsUC usecases.AddRelationsExecutor,
	deleteRelationsUC usecases.DeleteRelationsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		updateTicketUC:      updateTicketUC,
		updateTitleUC:       updateTitleUC,
		updateDescriptionUC: updateDescriptionUC,
		updateAuthorUC:      updateAuthorUC,
		updateAssigneeUC:    updateAssigneeUC,
		updatePriorityUC:    updatePriorityUC,
		updateStatusUC:      updateStatusUC,
		updateParentUC:      updateParentUC,
		deleteTicketUC:      deleteTicketUC,
		addRelationsUC:      addRelationsUC,
		deleteRelationsUC:   deleteRelationsUC,
		getTicketUC:         getTicketUC,
		listTicketsUC:       listTicketsUC,
		logger:              logger,
	}
}

// GetTicket handles GET /ticket/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles POST /ticket/filter
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var req ListTicketsRequest
	if err := h.bind(c, &req, "list tickets"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// CreateTicket handles POST /ticket/create
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := h.bind(c, &req, "create ticket"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/ticket/%d", constants.APIVersionPrefix, result.TicketID))
	utils.CreatedResponse(c, CreateTicketResponse{ID: result.TicketID}, "Ticket created successfully")
}

// UpdateTicket handles PUT /ticket/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := h.bind(c, &req, "update ticket"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID)))
}

// UpdateTicketStatus handles PUT /ticket/status/:id
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketStatusRequest
	if err := h.bind(c, &req, "update ticket status"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	}))
}

// UpdateTicketPriority handles PUT /ticket/priority/:id
func (h *TicketHandler) UpdateTicketPriority(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketPriorityRequest
	if err := h.bind(c, &req, "update ticket priority"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updatePriorityUC.Execute(c.Request.Context(), usecases.UpdateTicketPriorityCommand{
		TicketID: ticketID,
		Priority: req.Priority,
	}))
}

// UpdateTicketAssignee handles PUT /ticket/executor/:id
func (h *TicketHandler) UpdateTicketAssignee(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketAssigneeRequest
	if err := h.bind(c, &req, "update ticket assignee"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updateAssigneeUC.Execute(c.Request.Context(), usecases.UpdateTicketAssigneeCommand{
		TicketID: ticketID,
		Assignee: req.Assignee,
	}))
}

// UpdateTicketAuthor handles PUT /ticket/author/:id
func (h *TicketHandler) UpdateTicketAuthor(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketAuthorRequest
	if err := h.bind(c, &req, "update ticket author"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updateAuthorUC.Execute(c.Request.Context(), usecases.UpdateTicketAuthorCommand{
		TicketID: ticketID,
		Author:   req.Author,
	}))
}

// UpdateTicketTitle handles PUT /ticket/header/:id
func (h *TicketHandler) UpdateTicketTitle(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketTitleRequest
	if err := h.bind(c, &req, "update ticket title"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updateTitleUC.Execute(c.Request.Context(), usecases.UpdateTicketTitleCommand{
		TicketID: ticketID,
		Title:    req.Title,
	}))
}

// UpdateTicketDescription handles PUT /ticket/description/:id
func (h *TicketHandler) UpdateTicketDescription(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketDescriptionRequest
	if err := h.bind(c, &req, "update ticket description"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updateDescriptionUC.Execute(c.Request.Context(), usecases.UpdateTicketDescriptionCommand{
		TicketID:    ticketID,
		Description: req.Description,
	}))
}

// UpdateTicketParent handles PUT /ticket/parent/:id
func (h *TicketHandler) UpdateTicketParent(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketParentRequest
	if err := h.bind(c, &req, "update ticket parent"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.updateParentUC.Execute(c.Request.Context(), usecases.UpdateTicketParentCommand{
		TicketID: ticketID,
		ParentID: req.Parent,
	}))
}

// AddRelations handles PUT /ticket/relates-to/add/:id
func (h *TicketHandler) AddRelations(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddRelationsRequest
	if err := h.bind(c, &req, "add relations"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	_, err = h.addRelationsUC.Execute(c.Request.Context(), usecases.AddRelationsCommand{
		FromTicketID: ticketID,
		ToTicketIDs:  req.RelatesTo,
		RelationType: req.RelationType,
	})
	h.respond(c, err)
}

// DeleteRelations handles PUT /ticket/relates-to/delete/:id
func (h *TicketHandler) DeleteRelations(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeleteRelationsRequest
	if err := h.bind(c, &req, "delete relations"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	_, err = h.deleteRelationsUC.Execute(c.Request.Context(), usecases.DeleteRelationsCommand{
		TicketID:         ticketID,
		RelatedTicketIDs: req.RelatesTo,
	})
	h.respond(c, err)
}

// DeleteTicket handles DELETE /ticket/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respond(c, h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID}))
}

func (h *TicketHandler) bind(c *gin.Context, req interface{}, action string) error {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warnw("invalid request body", "action", action, "error", err)
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return utils.ValidateStruct(req)
}

func (h *TicketHandler) respond(c *gin.Context, err error) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
