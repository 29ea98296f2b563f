package http

import (
	"time"

	"yard/internal/core/application/usecases/queries"
	"yard/internal/core/domain/model/kernel"
)

// Error is the response envelope for all failures. Code carries the stable
// kind name that clients branch on; Message is human-readable detail.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AssignPositionRequest is the body of POST /yard/positions.
type AssignPositionRequest struct {
	ContainerID string `json:"containerId"`
	Coordinate  string `json:"coordinate"`
}

// MovePositionRequest is the body of PATCH /yard/positions/:id/move.
type MovePositionRequest struct {
	Coordinate string `json:"coordinate"`
}

// SuggestPositionRequest is the body of POST /yard/suggest.
type SuggestPositionRequest struct {
	ContainerID    string  `json:"containerId"`
	ZonePreference *string `json:"zonePreference,omitempty"`
}

// SuggestionResponse is the placement recommendation for a container.
type SuggestionResponse struct {
	Primary      string   `json:"primary"`
	Alternatives []string `json:"alternatives"`
	Reason       string   `json:"reason"`
}

// CreateWorkOrderRequest is the body of POST /work-orders.
// Coordinate omitted means the suggestion engine picks the slot; vehicleId
// omitted leaves the order pending for the dispatch job.
type CreateWorkOrderRequest struct {
	ContainerID string  `json:"containerId"`
	Coordinate  *string `json:"coordinate,omitempty"`
	Priority    string  `json:"priority"`
	VehicleID   *string `json:"vehicleId,omitempty"`
}

// AssignVehicleRequest is the body of POST /work-orders/:id/assign.
type AssignVehicleRequest struct {
	VehicleID string `json:"vehicleId"`
}

// WorkOrder is one work order in listing responses.
type WorkOrder struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	ContainerID string     `json:"containerId"`
	VehicleID   *string    `json:"vehicleId,omitempty"`
	Coordinate  string     `json:"coordinate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// LayoutSlot is one occupied slot in the layout response.
type LayoutSlot struct {
	PositionID      string `json:"positionId"`
	Coordinate      string `json:"coordinate"`
	ContainerID     string `json:"containerId"`
	ContainerNumber string `json:"containerNumber"`
	Size            string `json:"size"`
	LoadState       string `json:"loadState"`
	AutoAssigned    bool   `json:"autoAssigned"`
}

// Layout is the occupancy snapshot with aggregate statistics.
type Layout struct {
	Capacity      int            `json:"capacity"`
	OccupiedSlots []LayoutSlot   `json:"occupiedSlots"`
	ZoneCounts    map[string]int `json:"zoneCounts"`
	LadenCount    int            `json:"ladenCount"`
	EmptyCount    int            `json:"emptyCount"`
}

// AvailablePositions lists vacant coordinates.
type AvailablePositions struct {
	Coordinates []string `json:"coordinates"`
}

// UnplacedContainer is one container awaiting placement.
type UnplacedContainer struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	OwnerID   string `json:"ownerId"`
	Size      string `json:"size"`
	LoadState string `json:"loadState"`
}

func workOrderFromResponse(order queries.GetWorkOrdersQueryResponse) WorkOrder {
	var vehicleID *string
	if order.VehicleID != nil {
		id := order.VehicleID.String()
		vehicleID = &id
	}

	return WorkOrder{
		ID:          order.ID.String(),
		Number:      order.Number,
		ContainerID: order.ContainerID.String(),
		VehicleID:   vehicleID,
		Coordinate:  order.Coordinate.String(),
		Priority:    order.Priority.String(),
		Status:      order.Status.String(),
		CreatedAt:   order.CreatedAt,
		CompletedAt: order.CompletedAt,
	}
}

func coordinateStrings(coordinates []kernel.Coordinate) []string {
	raw := make([]string, len(coordinates))
	for i, coordinate := range coordinates {
		raw[i] = coordinate.String()
	}
	return raw
}
