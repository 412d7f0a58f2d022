package cmd

import (
	"time"

	"appcenar/internal/adapters/out/postgres"
	"appcenar/internal/adapters/out/redis/cartstore"
	"appcenar/internal/core/application/usecases/commands"
	"appcenar/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  *cartstore.Store
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	cartTTL, err := time.ParseDuration(config.CartTTL)
	if err != nil {
		cartTTL = cartstore.DefaultTTL
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartstore.NewStore(redisClient, cartTTL),
	}
}

func (c *CompositionRoot) CreateSaveCartCommandHandler() commands.SaveCartCommandHandler {
	return commands.NewSaveCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCreationUoWFactory = FuncOrderCreationUoWFactory(func() commands.OrderCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.cartStore)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMerchantCatalogQueryHandler() queries.GetMerchantCatalogQueryHandler {
	return queries.NewGetMerchantCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

type FuncOrderCreationUoWFactory func() commands.OrderCreationUoW

func (f FuncOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
