package http

import (
	"errors"
	"net/http"

	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/portalsdk"
	"github.com/klantsync/klantsync/pkg/slogx"
)

// writeServiceError maps service-layer errors to the API error envelope.
// Storage conflicts never reach this point; anything unrecognized is a 500
// with a generic body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		violations := make([]portalsdk.Violation, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			violations = append(violations, portalsdk.Violation{Field: v.Field, Message: v.Message})
		}
		e := &portalsdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        portalsdk.ErrorCodeValidationFailed,
			Description: "one or more fields failed validation",
			Violations:  violations,
		}
		e.WriteError(w)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		portalsdk.NewAPIError(http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCredential,
			"invalid email or password").WriteError(w)

	case errors.Is(err, service.ErrInviteNotFound):
		portalsdk.NewAPIError(http.StatusNotFound, portalsdk.ErrorCodeNotFound,
			"invite not found").WriteError(w)

	case errors.Is(err, service.ErrInviteExpired):
		portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInviteExpired,
			"this invite has expired, ask for a new one").WriteError(w)

	case errors.Is(err, service.ErrInviteAlreadyUsed):
		portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInviteUsed,
			"this invite has already been accepted").WriteError(w)

	case errors.Is(err, service.ErrEmailMismatch):
		portalsdk.NewAPIError(http.StatusForbidden, portalsdk.ErrorCodeEmailMismatch,
			"this invite was issued for a different email address").WriteError(w)

	case errors.Is(err, service.ErrNotClientAccount):
		portalsdk.NewAPIError(http.StatusForbidden, portalsdk.ErrorCodeForbidden,
			"only client accounts can accept invites").WriteError(w)

	case errors.Is(err, service.ErrEmailIsFreelancer):
		portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
			"this email belongs to a freelancer account and cannot be invited").WriteError(w)

	case errors.Is(err, service.ErrNotLinkedClient):
		portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
			"the selected client is not linked to your account").WriteError(w)

	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrUserNotFound):
		portalsdk.NewAPIError(http.StatusNotFound, portalsdk.ErrorCodeNotFound,
			"not found").WriteError(w)

	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotProjectOwner),
		errors.Is(err, service.ErrFreelancerOnly):
		portalsdk.NewAPIError(http.StatusForbidden, portalsdk.ErrorCodeForbidden,
			"you do not have access to this resource").WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		portalsdk.NewAPIError(http.StatusInternalServerError, portalsdk.ErrorCodeServerError,
			"internal server error").WriteError(w)
	}
}

func writeInvalidJSON(w http.ResponseWriter) {
	portalsdk.NewAPIError(http.StatusBadRequest, portalsdk.ErrorCodeInvalidRequest,
		"invalid JSON body").WriteError(w)
}
