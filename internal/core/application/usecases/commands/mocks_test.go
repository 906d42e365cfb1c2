package commands_test

import (
	"context"

	"produzione/internal/core/application/usecases/commands"
	"produzione/internal/core/domain/model/kernel"
	"produzione/internal/core/domain/model/order"
	"produzione/internal/core/domain/model/planning"
	"produzione/internal/core/domain/model/processing"
	"produzione/internal/core/domain/model/sequence"
	"produzione/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByProductionNumber(ctx context.Context, productionNumber string) (*order.Order, error) {
	args := m.Called(ctx, productionNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetHighestProductionSuffix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

type MockPlanningRepository struct{ mock.Mock }

func (m *MockPlanningRepository) AddAllocation(ctx context.Context, cell *planning.Allocation) error {
	args := m.Called(ctx, cell)
	return args.Error(0)
}

func (m *MockPlanningRepository) UpdateAllocation(ctx context.Context, cell *planning.Allocation) error {
	args := m.Called(ctx, cell)
	return args.Error(0)
}

func (m *MockPlanningRepository) GetAllocationsByOrder(
	ctx context.Context, orderID kernel.UUID, includeRemoved bool,
) ([]*planning.Allocation, error) {
	args := m.Called(ctx, orderID, includeRemoved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Allocation), args.Error(1)
}

func (m *MockPlanningRepository) GetAllocationsByDateRange(
	ctx context.Context, from, to kernel.Date, includeRemoved bool,
) ([]*planning.Allocation, error) {
	args := m.Called(ctx, from, to, includeRemoved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Allocation), args.Error(1)
}

func (m *MockPlanningRepository) GetAllocationsBySlot(
	ctx context.Context, date kernel.Date, workLineID kernel.UUID,
) ([]*planning.Allocation, error) {
	args := m.Called(ctx, date, workLineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Allocation), args.Error(1)
}

func (m *MockPlanningRepository) ReplaceSummaries(ctx context.Context, summaries []*planning.Summary) error {
	args := m.Called(ctx, summaries)
	return args.Error(0)
}

func (m *MockPlanningRepository) GetSummariesByDateRange(
	ctx context.Context, from, to kernel.Date,
) ([]*planning.Summary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planning.Summary), args.Error(1)
}

type MockProcessingRepository struct{ mock.Mock }

func (m *MockProcessingRepository) Add(ctx context.Context, event *processing.Processing) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockProcessingRepository) Update(ctx context.Context, event *processing.Processing) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockProcessingRepository) Get(ctx context.Context, id kernel.UUID) (*processing.Processing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processing.Processing), args.Error(1)
}

func (m *MockProcessingRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID, includeRemoved bool,
) ([]*processing.Processing, error) {
	args := m.Called(ctx, orderID, includeRemoved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*processing.Processing), args.Error(1)
}

func (m *MockProcessingRepository) ReconciledQuantity(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) NextCode(ctx context.Context, ns sequence.Namespace) (string, error) {
	args := m.Called(ctx, ns)
	return args.String(0), args.Error(1)
}

type MockReferenceDataGateway struct{ mock.Mock }

func (m *MockReferenceDataGateway) GetWorkLine(ctx context.Context, id kernel.UUID) (ports.WorkLine, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.WorkLine), args.Error(1)
}

func (m *MockReferenceDataGateway) GetAllWorkLines(ctx context.Context) ([]ports.WorkLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.WorkLine), args.Error(1)
}

func (m *MockReferenceDataGateway) GetArticle(ctx context.Context, id kernel.UUID) (ports.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Article), args.Error(1)
}

func (m *MockReferenceDataGateway) GetEmployee(ctx context.Context, id kernel.UUID) (ports.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Employee), args.Error(1)
}

// RecordingNotifier captures invalidations instead of mocking each call;
// the sweep tests assert on the recorded set.
type RecordingNotifier struct {
	Invalidated []string
}

func (n *RecordingNotifier) Invalidate(_ context.Context, scope ports.CacheScope, bucket ports.CacheBucket) {
	n.Invalidated = append(n.Invalidated, string(scope)+"/"+string(bucket))
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) SequenceGenerator() ports.SequenceGenerator {
	args := m.Called()
	return args.Get(0).(ports.SequenceGenerator)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProcessingUoW struct{ mock.Mock }

func (m *MockProcessingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcessingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcessingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProcessingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockProcessingUoW) ProcessingRepository() ports.ProcessingRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessingRepository)
}

type MockProcessingUoWFactory struct{ mock.Mock }

func (m *MockProcessingUoWFactory) Create() commands.ProcessingUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessingUoW)
}

type MockPlanningUoW struct{ mock.Mock }

func (m *MockPlanningUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanningUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanningUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanningUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPlanningUoW) PlanningRepository() ports.PlanningRepository {
	args := m.Called()
	return args.Get(0).(ports.PlanningRepository)
}

type MockPlanningUoWFactory struct{ mock.Mock }

func (m *MockPlanningUoWFactory) Create() commands.PlanningUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanningUoW)
}
