package cmd

import (
	"saddleoms/internal/adapters/out/postgres"
	"saddleoms/internal/core/application/usecases/commands"
	"saddleoms/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignFitterCommandHandler() commands.AssignFitterCommandHandler {
	return commands.NewAssignFitterCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignFactoryCommandHandler() commands.AssignFactoryCommandHandler {
	return commands.NewAssignFactoryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderPriorityCommandHandler() commands.UpdateOrderPriorityCommandHandler {
	return commands.NewUpdateOrderPriorityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordDepositPaymentCommandHandler() commands.RecordDepositPaymentCommandHandler {
	return commands.NewRecordDepositPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMeasurementsCommandHandler() commands.UpdateMeasurementsCommandHandler {
	return commands.NewUpdateMeasurementsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryDateCommandHandler() commands.UpdateDeliveryDateCommandHandler {
	return commands.NewUpdateDeliveryDateCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderSuggestionsQueryHandler() queries.OrderSuggestionsQueryHandler {
	return queries.NewOrderSuggestionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderStatsQueryHandler() queries.OrderStatsQueryHandler {
	return queries.NewOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
