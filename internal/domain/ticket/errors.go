package ticket

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tracklet-io/tracklet/internal/shared/errors"
)

// NewTicketNotFoundError reports a ticket id that does not resolve. Details
// carries the id so callers can tell which side of a relation was missing.
func NewTicketNotFoundError(id uint) *errors.AppError {
	return errors.NewNotFoundError(
		fmt.Sprintf("ticket with id %d not found", id),
		strconv.FormatUint(uint64(id), 10),
	)
}

// ErrorTypeSelfRelation marks an attempt to relate a ticket to itself.
const ErrorTypeSelfRelation errors.ErrorType = "self_relation"

func NewSelfRelationError(id uint) *errors.AppError {
	return &errors.AppError{
		Type:    ErrorTypeSelfRelation,
		Message: fmt.Sprintf("relation to itself is not allowed for ticket with id %d", id),
		Code:    http.StatusBadRequest,
		Details: strconv.FormatUint(uint64(id), 10),
	}
}

func IsSelfRelationError(err error) bool {
	appErr := errors.GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeSelfRelation
}

func NewRelationExistsError(from, to uint) *errors.AppError {
	return errors.NewConflictError(
		fmt.Sprintf("relation between %d and %d already exists", from, to),
		fmt.Sprintf("%d,%d", from, to),
	)
}

// NotFoundID extracts the ticket id from an error built by NewTicketNotFoundError.
func NotFoundID(err error) (uint, bool) {
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Type != errors.ErrorTypeNotFound {
		return 0, false
	}
	id, parseErr := strconv.ParseUint(appErr.Details, 10, 64)
	if parseErr != nil {
		return 0, false
	}
	return uint(id), true
}
