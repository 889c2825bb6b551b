package cmd

import (
	"backoffice/internal/adapters/out/clock"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/userrepo"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.SystemClock
}

func NewCompositionRoot(gormDB *gorm.DB, systemClock clock.SystemClock) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemClock,
	}
}

func (c *CompositionRoot) Clock() ports.Clock {
	return c.clock
}

// CreateUserRepository returns a repository for reads outside a
// transaction, used by the login endpoint.
func (c *CompositionRoot) CreateUserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateBillsCommandHandler() commands.CreateBillsCommandHandler {
	var f commands.BillUoWFactory = FuncBillUoWFactory(func() commands.BillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBillsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateExchangeBillCommandHandler() commands.ExchangeBillCommandHandler {
	var f commands.BillUoWFactory = FuncBillUoWFactory(func() commands.BillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExchangeBillCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkTransferCommandHandler() commands.MarkTransferCommandHandler {
	var f commands.BillUoWFactory = FuncBillUoWFactory(func() commands.BillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkTransferCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitRequestCommandHandler() commands.SubmitRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRequestCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateResolveRequestCommandHandler() commands.ResolveRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveRequestCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateShipperCommandHandler() commands.CreateShipperCommandHandler {
	var f commands.ShipperUoWFactory = FuncShipperUoWFactory(func() commands.ShipperUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipperCommandHandler(f)
}

func (c *CompositionRoot) CreateSearchBillsQueryHandler() queries.SearchBillsQueryHandler {
	return queries.NewSearchBillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipperBillsQueryHandler() queries.ListShipperBillsQueryHandler {
	return queries.NewListShipperBillsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRequestsQueryHandler() queries.ListRequestsQueryHandler {
	return queries.NewListRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRequestsForDateQueryHandler() queries.ListRequestsForDateQueryHandler {
	return queries.NewListRequestsForDateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

type FuncBillUoWFactory func() commands.BillUoW

func (f FuncBillUoWFactory) Create() commands.BillUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncShipperUoWFactory func() commands.ShipperUoW

func (f FuncShipperUoWFactory) Create() commands.ShipperUoW {
	return f()
}
