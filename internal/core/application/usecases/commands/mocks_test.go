package commands_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"customs/internal/core/application/usecases/commands"
	"customs/internal/core/domain/model/importer"
	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	receivedAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fixedNow   = time.Date(2026, 3, 5, 16, 45, 0, 0, time.UTC)
)

func clock() time.Time { return fixedNow }

// detachedCtx matches the context post-commit side effects run on: it can
// never be canceled, whatever happens to the caller's.
var detachedCtx = mock.MatchedBy(func(ctx context.Context) bool { return ctx.Done() == nil })

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *shipment.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *shipment.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAllSyncPending(ctx context.Context, limit int) ([]*shipment.Package, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Package), args.Error(1)
}

type MockImporterRepository struct{ mock.Mock }

func (m *MockImporterRepository) Get(ctx context.Context, id kernel.UUID) (*importer.Importer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importer.Importer), args.Error(1)
}

type MockActivityLog struct{ mock.Mock }

func (m *MockActivityLog) Append(ctx context.Context, packageID kernel.UUID, action string) error {
	args := m.Called(ctx, packageID, action)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, pkg shipment.Snapshot, n shipment.NotificationType) error {
	args := m.Called(ctx, pkg, n)
	return args.Error(0)
}

type MockSheetSyncer struct{ mock.Mock }

func (m *MockSheetSyncer) Sync(ctx context.Context, pkg shipment.Snapshot) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

type MockSyncStateRecorder struct{ mock.Mock }

func (m *MockSyncStateRecorder) SetSyncPending(ctx context.Context, id kernel.UUID, pending bool) error {
	args := m.Called(ctx, id, pending)
	return args.Error(0)
}

type MockPackageLocker struct{ mock.Mock }

func (m *MockPackageLocker) Lock(ctx context.Context, packageID kernel.UUID) (ports.ReleaseFunc, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.ReleaseFunc), args.Error(1)
}

type MockPackageUoW struct{ mock.Mock }

func (m *MockPackageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockUoW struct{ MockPackageUoW }

func (m *MockUoW) ImporterRepository() ports.ImporterRepository {
	args := m.Called()
	return args.Get(0).(ports.ImporterRepository)
}

func (m *MockUoW) ActivityLog() ports.ActivityLog {
	args := m.Called()
	return args.Get(0).(ports.ActivityLog)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// releaseSpy counts lock releases.
type releaseSpy struct{ calls atomic.Int32 }

func (s *releaseSpy) release(context.Context) error {
	s.calls.Add(1)
	return nil
}

func storedPackage(t *testing.T, mutate func(s *shipment.Snapshot)) *shipment.Package {
	t.Helper()

	customer, err := shipment.NewCustomer("Ana Ruiz", "+50688887777", "")
	require.NoError(t, err)
	value, err := kernel.MoneyFromCents(2000)
	require.NoError(t, err)
	item, err := shipment.NewItem("Sneakers", 1, value, "6404")
	require.NoError(t, err)
	duty, _ := kernel.MoneyFromCents(200)
	vat, _ := kernel.MoneyFromCents(286)

	fresh, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), shipment.Details{
		TrackingNumber: "1Z999AA10123456784",
		Customer:       customer,
		Items:          []shipment.Item{item},
		DeclaredValue:  value,
	}, shipment.NewFees(duty, vat), receivedAt)
	require.NoError(t, err)

	s := fresh.Snapshot()
	s.Version = 2
	if mutate != nil {
		mutate(&s)
	}

	p, err := shipment.RestorePackage(s)
	require.NoError(t, err)
	return p
}
