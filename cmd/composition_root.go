package cmd

import (
	"context"
	"fmt"

	"yard/internal/adapters/out/postgres"
	"yard/internal/core/application/usecases/commands"
	"yard/internal/core/application/usecases/queries"
	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/yard"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	grid       *yard.Grid
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires the application object graph and rebuilds the
// in-memory occupancy grid from the positions stored in the database.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	root := CompositionRoot{
		gormDB:     gormDB,
		grid:       yard.NewGrid(),
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	if err := root.seedGrid(context.Background()); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to seed occupancy grid: %w", err)
	}

	return root, nil
}

// seedGrid replays persisted positions into the fresh grid. Stored records
// already passed stacking validation when they were written, so binding
// skips revalidation here to stay independent of replay order.
func (c *CompositionRoot) seedGrid(ctx context.Context) error {
	uow := c.uowFactory.Create()

	positions, err := uow.PositionRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	containers, err := uow.ContainerRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	containersByID := make(map[string]*container.Container, len(containers))
	for _, cont := range containers {
		containersByID[cont.ID().String()] = cont
	}

	for _, position := range positions {
		cont, ok := containersByID[position.ContainerID().String()]
		if !ok {
			return fmt.Errorf("position %s references unknown container %s",
				position.ID(), position.ContainerID())
		}

		if err := c.grid.Bind(position, cont, nil); err != nil {
			return err
		}
	}

	return nil
}

func (c *CompositionRoot) Grid() *yard.Grid {
	return c.grid
}

func (c *CompositionRoot) CreateAssignPositionCommandHandler() commands.AssignPositionCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPositionCommandHandler(f, c.grid)
}

func (c *CompositionRoot) CreateMovePositionCommandHandler() commands.MovePositionCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMovePositionCommandHandler(f, c.grid)
}

func (c *CompositionRoot) CreateRemovePositionCommandHandler() commands.RemovePositionCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemovePositionCommandHandler(f, c.grid)
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f, c.grid)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteWorkOrderCommandHandler() commands.CompleteWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteWorkOrderCommandHandler(f, c.grid)
}

func (c *CompositionRoot) CreateCancelWorkOrderCommandHandler() commands.CancelWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchVehicleCommandHandler() commands.DispatchVehicleCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateGetLayoutQueryHandler() queries.GetLayoutQueryHandler {
	return queries.NewGetLayoutQueryHandler(c.grid)
}

func (c *CompositionRoot) CreateSuggestPositionQueryHandler() queries.SuggestPositionQueryHandler {
	return queries.NewSuggestPositionQueryHandler(c.gormDB, c.grid)
}

func (c *CompositionRoot) CreateGetAvailablePositionsQueryHandler() queries.GetAvailablePositionsQueryHandler {
	return queries.NewGetAvailablePositionsQueryHandler(c.grid)
}

func (c *CompositionRoot) CreateGetUnplacedContainersQueryHandler() queries.GetUnplacedContainersQueryHandler {
	return queries.NewGetUnplacedContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.gormDB)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
