package http

import (
	"net/http"
	"strconv"

	"yard/internal/core/application/usecases/commands"
	"yard/internal/core/application/usecases/queries"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"

	"github.com/labstack/echo/v4"
)

// Server exposes the placement and work order use cases over HTTP.
// It translates between the JSON surface and the application layer; all
// domain decisions stay in the command and query handlers.
type Server struct {
	// Command handlers
	assignPositionHandler    commands.AssignPositionCommandHandler
	movePositionHandler      commands.MovePositionCommandHandler
	removePositionHandler    commands.RemovePositionCommandHandler
	createWorkOrderHandler   commands.CreateWorkOrderCommandHandler
	assignVehicleHandler     commands.AssignVehicleCommandHandler
	completeWorkOrderHandler commands.CompleteWorkOrderCommandHandler
	cancelWorkOrderHandler   commands.CancelWorkOrderCommandHandler

	// Query handlers
	getLayoutHandler             queries.GetLayoutQueryHandler
	suggestPositionHandler       queries.SuggestPositionQueryHandler
	getAvailablePositionsHandler queries.GetAvailablePositionsQueryHandler
	getUnplacedContainersHandler queries.GetUnplacedContainersQueryHandler
	getWorkOrdersHandler         queries.GetWorkOrdersQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	assignPositionHandler commands.AssignPositionCommandHandler,
	movePositionHandler commands.MovePositionCommandHandler,
	removePositionHandler commands.RemovePositionCommandHandler,
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	completeWorkOrderHandler commands.CompleteWorkOrderCommandHandler,
	cancelWorkOrderHandler commands.CancelWorkOrderCommandHandler,
	getLayoutHandler queries.GetLayoutQueryHandler,
	suggestPositionHandler queries.SuggestPositionQueryHandler,
	getAvailablePositionsHandler queries.GetAvailablePositionsQueryHandler,
	getUnplacedContainersHandler queries.GetUnplacedContainersQueryHandler,
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
) *Server {
	return &Server{
		assignPositionHandler:        assignPositionHandler,
		movePositionHandler:          movePositionHandler,
		removePositionHandler:        removePositionHandler,
		createWorkOrderHandler:       createWorkOrderHandler,
		assignVehicleHandler:         assignVehicleHandler,
		completeWorkOrderHandler:     completeWorkOrderHandler,
		cancelWorkOrderHandler:       cancelWorkOrderHandler,
		getLayoutHandler:             getLayoutHandler,
		suggestPositionHandler:       suggestPositionHandler,
		getAvailablePositionsHandler: getAvailablePositionsHandler,
		getUnplacedContainersHandler: getUnplacedContainersHandler,
		getWorkOrdersHandler:         getWorkOrdersHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/yard/layout", s.GetLayout)
	api.POST("/yard/suggest", s.SuggestPosition)
	api.POST("/yard/positions", s.AssignPosition)
	api.PATCH("/yard/positions/:id/move", s.MovePosition)
	api.DELETE("/yard/positions/:id", s.RemovePosition)
	api.GET("/yard/available", s.GetAvailablePositions)
	api.GET("/yard/unplaced", s.GetUnplacedContainers)

	api.POST("/work-orders", s.CreateWorkOrder)
	api.GET("/work-orders", s.GetWorkOrders)
	api.GET("/work-orders/pending", s.GetPendingWorkOrders)
	api.POST("/work-orders/:id/assign", s.AssignVehicle)
	api.POST("/work-orders/:id/complete", s.CompleteWorkOrder)
	api.POST("/work-orders/:id/cancel", s.CancelWorkOrder)
}

// GetLayout handles GET /api/v1/yard/layout.
func (s *Server) GetLayout(ctx echo.Context) error {
	layout, err := s.getLayoutHandler.Handle(ctx.Request().Context(), queries.NewGetLayoutQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := Layout{
		Capacity:      layout.Capacity,
		OccupiedSlots: make([]LayoutSlot, 0, len(layout.OccupiedSlots)),
		ZoneCounts:    make(map[string]int, len(layout.ZoneCounts)),
		LadenCount:    layout.LadenCount,
		EmptyCount:    layout.EmptyCount,
	}

	for zone, count := range layout.ZoneCounts {
		response.ZoneCounts[string(zone)] = count
	}

	for _, slot := range layout.OccupiedSlots {
		response.OccupiedSlots = append(response.OccupiedSlots, LayoutSlot{
			PositionID:      slot.PositionID.String(),
			Coordinate:      slot.Coordinate.String(),
			ContainerID:     slot.ContainerID.String(),
			ContainerNumber: slot.ContainerNumber,
			Size:            slot.Size.String(),
			LoadState:       slot.LoadState.String(),
			AutoAssigned:    slot.AutoAssigned,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SuggestPosition handles POST /api/v1/yard/suggest.
func (s *Server) SuggestPosition(ctx echo.Context) error {
	var request SuggestPositionRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	containerID, err := kernel.UUIDFromString(request.ContainerID)
	if err != nil {
		return respondError(ctx, err)
	}

	var zonePreference *kernel.Zone
	if request.ZonePreference != nil {
		zone := kernel.Zone(*request.ZonePreference)
		zonePreference = &zone
	}

	query, err := queries.NewSuggestPositionQuery(containerID, zonePreference)
	if err != nil {
		return respondError(ctx, err)
	}

	suggestion, err := s.suggestPositionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuggestionResponse{
		Primary:      suggestion.Primary.String(),
		Alternatives: coordinateStrings(suggestion.Alternatives),
		Reason:       suggestion.Reason,
	})
}

// AssignPosition handles POST /api/v1/yard/positions.
func (s *Server) AssignPosition(ctx echo.Context) error {
	var request AssignPositionRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	containerID, err := kernel.UUIDFromString(request.ContainerID)
	if err != nil {
		return respondError(ctx, err)
	}

	coordinate, err := kernel.ParseCoordinate(request.Coordinate)
	if err != nil {
		return respondError(ctx, err)
	}

	positionID := kernel.NewUUID()
	cmd, err := commands.NewAssignPositionCommand(positionID, containerID, coordinate, false)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignPositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: positionID.String()})
}

// MovePosition handles PATCH /api/v1/yard/positions/:id/move.
func (s *Server) MovePosition(ctx echo.Context) error {
	positionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request MovePositionRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	coordinate, err := kernel.ParseCoordinate(request.Coordinate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMovePositionCommand(positionID, coordinate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.movePositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemovePosition handles DELETE /api/v1/yard/positions/:id.
func (s *Server) RemovePosition(ctx echo.Context) error {
	positionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemovePositionCommand(positionID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removePositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailablePositions handles GET /api/v1/yard/available.
func (s *Server) GetAvailablePositions(ctx echo.Context) error {
	var zone *kernel.Zone
	if raw := ctx.QueryParam("zone"); raw != "" {
		z := kernel.Zone(raw)
		zone = &z
	}

	var tier *kernel.Tier
	if raw := ctx.QueryParam("tier"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "tier must be a number")
		}
		t, err := kernel.TierFromInt(value)
		if err != nil {
			return respondError(ctx, err)
		}
		tier = &t
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "limit must be a number")
		}
		limit = value
	}

	query, err := queries.NewGetAvailablePositionsQuery(zone, tier, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	available, err := s.getAvailablePositionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AvailablePositions{
		Coordinates: coordinateStrings(available.Coordinates),
	})
}

// GetUnplacedContainers handles GET /api/v1/yard/unplaced.
func (s *Server) GetUnplacedContainers(ctx echo.Context) error {
	containers, err := s.getUnplacedContainersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnplacedContainersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UnplacedContainer, len(containers))
	for i, cont := range containers {
		response[i] = UnplacedContainer{
			ID:        cont.ID.String(),
			Number:    cont.Number,
			OwnerID:   cont.OwnerID.String(),
			Size:      cont.Size.String(),
			LoadState: cont.LoadState.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var request CreateWorkOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	containerID, err := kernel.UUIDFromString(request.ContainerID)
	if err != nil {
		return respondError(ctx, err)
	}

	priority, err := workorder.PriorityFromString(request.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	var coordinate *kernel.Coordinate
	if request.Coordinate != nil {
		parsed, parseErr := kernel.ParseCoordinate(*request.Coordinate)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		coordinate = &parsed
	}

	var vehicleID *kernel.UUID
	if request.VehicleID != nil {
		parsed, parseErr := kernel.UUIDFromString(*request.VehicleID)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		vehicleID = &parsed
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(orderID, containerID, coordinate, priority, vehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createWorkOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetWorkOrders handles GET /api/v1/work-orders.
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	var status *workorder.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := workorder.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	return s.listWorkOrders(ctx, status)
}

// GetPendingWorkOrders handles GET /api/v1/work-orders/pending.
func (s *Server) GetPendingWorkOrders(ctx echo.Context) error {
	status := workorder.Pending
	return s.listWorkOrders(ctx, &status)
}

func (s *Server) listWorkOrders(ctx echo.Context, status *workorder.Status) error {
	query, err := queries.NewGetWorkOrdersQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WorkOrder, len(orders))
	for i, order := range orders {
		response[i] = workOrderFromResponse(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignVehicle handles POST /api/v1/work-orders/:id/assign.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request AssignVehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignVehicleCommand(orderID, vehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteWorkOrder handles POST /api/v1/work-orders/:id/complete.
func (s *Server) CompleteWorkOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteWorkOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeWorkOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelWorkOrder handles POST /api/v1/work-orders/:id/cancel.
func (s *Server) CancelWorkOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelWorkOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelWorkOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
