package http

import (
	"errors"
	"net/http"

	"yard/internal/core/application/usecases/commands"
	"yard/internal/core/application/usecases/queries"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorKind pairs an HTTP status with the stable code clients branch on.
type errorKind struct {
	status int
	code   string
}

func classifyError(err error) errorKind {
	switch {
	case errors.Is(err, yard.ErrPositionOccupied):
		return errorKind{http.StatusConflict, "PositionOccupied"}
	case errors.Is(err, yard.ErrContainerAlreadyPlaced):
		return errorKind{http.StatusConflict, "AlreadyPlaced"}
	case errors.Is(err, yard.ErrPositionSupportsOthers):
		return errorKind{http.StatusConflict, "PositionSupportsOthers"}
	case errors.Is(err, services.ErrNoSupport):
		return errorKind{http.StatusUnprocessableEntity, "NoSupport"}
	case errors.Is(err, services.ErrSizeIncompatibility):
		return errorKind{http.StatusUnprocessableEntity, "SizeIncompatibility"}
	case errors.Is(err, services.ErrWeightDistributionViolation):
		return errorKind{http.StatusUnprocessableEntity, "WeightDistributionViolation"}
	case errors.Is(err, services.ErrNoAvailablePositions):
		return errorKind{http.StatusConflict, "NoAvailablePositions"}
	case errors.Is(err, services.ErrVehicleInactive):
		return errorKind{http.StatusConflict, "VehicleInactive"}
	case errors.Is(err, commands.ErrContainerNotFound), errors.Is(err, queries.ErrContainerNotFound):
		return errorKind{http.StatusNotFound, "ContainerNotFound"}
	case errors.Is(err, commands.ErrPositionNotFound):
		return errorKind{http.StatusNotFound, "PositionNotFound"}
	case errors.Is(err, commands.ErrWorkOrderNotFound):
		return errorKind{http.StatusNotFound, "WorkOrderNotFound"}
	case errors.Is(err, commands.ErrVehicleNotFound):
		return errorKind{http.StatusNotFound, "VehicleNotFound"}
	case errors.Is(err, kernel.ErrInvalidZone):
		return errorKind{http.StatusBadRequest, "InvalidZone"}
	case errors.Is(err, kernel.ErrInvalidRow):
		return errorKind{http.StatusBadRequest, "InvalidRow"}
	case errors.Is(err, kernel.ErrInvalidBay):
		return errorKind{http.StatusBadRequest, "InvalidBay"}
	case errors.Is(err, kernel.ErrInvalidTier):
		return errorKind{http.StatusBadRequest, "InvalidTier"}
	case errors.Is(err, kernel.ErrInvalidSubSlot):
		return errorKind{http.StatusBadRequest, "InvalidSubSlot"}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorKind{http.StatusBadRequest, "InvalidRequest"}
	default:
		return errorKind{http.StatusInternalServerError, "InternalError"}
	}
}

// respondError writes the error envelope for a failed operation.
// Unrecognized errors come back as InternalError with a generic message so
// storage details never leak to clients.
func respondError(ctx echo.Context, err error) error {
	kind := classifyError(err)

	message := err.Error()
	if kind.status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(kind.status, Error{
		Code:    kind.code,
		Message: message,
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    "InvalidRequest",
		Message: message,
	})
}
