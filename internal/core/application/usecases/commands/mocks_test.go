package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"purchase/internal/core/application/usecases/commands"
	"purchase/internal/core/domain/model/course"
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/notification"
	"purchase/internal/core/domain/model/order"
	"purchase/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AddAll(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
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

func (m *MockOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCourseRepository struct{ mock.Mock }

func (m *MockCourseRepository) LookupPrices(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]float64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]float64), args.Error(1)
}

func (m *MockCourseRepository) Add(_ context.Context, _ *course.Course) error {
	return errors.New("not implemented in mock")
}

func (m *MockCourseRepository) Get(_ context.Context, _ kernel.UUID) (*course.Course, error) {
	return nil, errors.New("not implemented in mock")
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetAllForOrder(_ context.Context, _ kernel.UUID) ([]*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockNotificationRepository) GetAllInPendingStatus(ctx context.Context) ([]*notification.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockPurchaseUoW struct{ mock.Mock }

func (m *MockPurchaseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPurchaseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPurchaseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPurchaseUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPurchaseUoW) CourseRepository() ports.CourseRepository {
	args := m.Called()
	return args.Get(0).(ports.CourseRepository)
}

func (m *MockPurchaseUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockPurchaseUoWFactory struct{ mock.Mock }

func (m *MockPurchaseUoWFactory) Create() commands.PurchaseUoW {
	args := m.Called()
	return args.Get(0).(commands.PurchaseUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}
