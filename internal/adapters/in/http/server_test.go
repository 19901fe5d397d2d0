package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"customs/api"
	"customs/internal/core/application/usecases/commands"
	"customs/internal/core/application/usecases/queries"
	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/generated/servers"
	"customs/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCreatePackageHandler struct{ mock.Mock }

func (m *MockCreatePackageHandler) Handle(ctx context.Context, cmd commands.CreatePackageCommand) (shipment.Snapshot, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(shipment.Snapshot), args.Error(1)
}

type MockTransitionPackageHandler struct{ mock.Mock }

func (m *MockTransitionPackageHandler) Handle(ctx context.Context, cmd commands.TransitionPackageCommand) (commands.TransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionResult), args.Error(1)
}

type MockSetPaymentStatusHandler struct{ mock.Mock }

func (m *MockSetPaymentStatusHandler) Handle(ctx context.Context, cmd commands.SetPaymentStatusCommand) (commands.Result, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.Result), args.Error(1)
}

type MockGetPackageHandler struct{ mock.Mock }

func (m *MockGetPackageHandler) Handle(ctx context.Context, query queries.GetPackageQuery) (queries.PackageView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PackageView), args.Error(1)
}

type MockListPackagesHandler struct{ mock.Mock }

func (m *MockListPackagesHandler) Handle(ctx context.Context, query queries.ListPackagesQuery) ([]queries.PackageView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.PackageView), args.Error(1)
}

type MockGetPackageActivityHandler struct{ mock.Mock }

func (m *MockGetPackageActivityHandler) Handle(ctx context.Context, query queries.GetPackageActivityQuery) ([]queries.ActivityView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.ActivityView), args.Error(1)
}

type fixture struct {
	echo       *echo.Echo
	create     *MockCreatePackageHandler
	transition *MockTransitionPackageHandler
	payment    *MockSetPaymentStatusHandler
	get        *MockGetPackageHandler
	list       *MockListPackagesHandler
	activity   *MockGetPackageActivityHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		echo:       echo.New(),
		create:     new(MockCreatePackageHandler),
		transition: new(MockTransitionPackageHandler),
		payment:    new(MockSetPaymentStatusHandler),
		get:        new(MockGetPackageHandler),
		list:       new(MockListPackagesHandler),
		activity:   new(MockGetPackageActivityHandler),
	}

	doc, err := api.Load()
	require.NoError(t, err)
	validator, err := NewRequestValidator(doc)
	require.NoError(t, err)
	f.echo.Use(validator)

	server := NewServer(Handlers{
		CreatePackage:      f.create,
		TransitionPackage:  f.transition,
		SetPaymentStatus:   f.payment,
		GetPackage:         f.get,
		ListPackages:       f.list,
		GetPackageActivity: f.activity,
	}, zap.NewNop())
	servers.RegisterHandlers(f.echo, server)

	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func testSnapshot(t *testing.T) shipment.Snapshot {
	t.Helper()

	customer, err := shipment.NewCustomer("Ana Ruiz", "+50688887777", "ana@example.com")
	require.NoError(t, err)
	value, _ := kernel.MoneyFromCents(2000)
	item, err := shipment.NewItem("Sneakers", 1, value, "6404")
	require.NoError(t, err)
	duty, _ := kernel.MoneyFromCents(200)
	vat, _ := kernel.MoneyFromCents(286)

	p, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), shipment.Details{
		TrackingNumber: "1Z999AA10123456784",
		Customer:       customer,
		Items:          []shipment.Item{item},
		DeclaredValue:  value,
	}, shipment.NewFees(duty, vat), time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p.Snapshot()
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestServer_GetHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_CreatePackage(t *testing.T) {
	t.Run("should create package with computed fees", func(t *testing.T) {
		f := newFixture(t)
		snapshot := testSnapshot(t)
		f.create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreatePackageCommand) bool {
			return cmd.ImporterID().IsEqual(snapshot.ImporterID) && cmd.Details().TrackingNumber == "1Z999AA10123456784"
		})).Return(snapshot, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/importers/"+snapshot.ImporterID.String()+"/packages", `{
			"trackingNumber": "1Z999AA10123456784",
			"customer": {"name": "Ana Ruiz", "phone": "+506 8888-7777"},
			"items": [{"description": "Sneakers", "quantity": 1, "unitValue": 20, "hsCode": "6404"}],
			"declaredValue": 20
		}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decode[servers.Package](t, rec)
		assert.Equal(t, snapshot.ID.String(), body.Id.String())
		assert.Equal(t, servers.Received, body.Status)
		assert.Equal(t, servers.Pending, body.PaymentStatus)
		assert.InDelta(t, 2.0, body.CustomsDuty, 0.001)
		assert.InDelta(t, 2.86, body.Vat, 0.001)
		assert.InDelta(t, 4.86, body.TotalFees, 0.001)
		f.create.AssertExpectations(t)
	})

	t.Run("should reject invalid customer phone", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/importers/"+kernel.NewUUID().String()+"/packages", `{
			"trackingNumber": "1Z999AA10123456784",
			"customer": {"name": "Ana Ruiz", "phone": "call me"},
			"declaredValue": 20
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject body missing required fields", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/importers/"+kernel.NewUUID().String()+"/packages", `{"declaredValue": 20}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should return 404 for unknown importer", func(t *testing.T) {
		f := newFixture(t)
		importerID := kernel.NewUUID()
		f.create.On("Handle", mock.Anything, mock.Anything).
			Return(shipment.Snapshot{}, errs.NewObjectNotFoundError("importer", importerID.String())).Once()

		rec := f.do(http.MethodPost, "/api/v1/importers/"+importerID.String()+"/packages", `{
			"trackingNumber": "1Z999AA10123456784",
			"customer": {"name": "Ana Ruiz", "phone": "+50688887777"},
			"declaredValue": 20
		}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ChangePackageStatus(t *testing.T) {
	t.Run("should report degraded side effects with 200", func(t *testing.T) {
		f := newFixture(t)
		snapshot := testSnapshot(t)
		snapshot.Status = shipment.CustomsCleared
		cleared := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
		snapshot.CustomsClearedDate = &cleared
		snapshot.SyncPending = true

		f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionPackageCommand) bool {
			return cmd.PackageID().IsEqual(snapshot.ID) && cmd.Target() == shipment.CustomsCleared
		})).Return(commands.TransitionResult{
			Result: commands.Result{
				Package: snapshot,
				SideEffects: []commands.SideEffectOutcome{
					{Step: commands.StepActivityLog},
					{Step: commands.StepNotification, Err: errors.New("gateway timeout")},
					{Step: commands.StepSheetSync, Skipped: true},
				},
			},
			Transition: shipment.TransitionOutcome{
				From:         shipment.Received,
				To:           shipment.CustomsCleared,
				Notification: shipment.NotificationCustomsCleared,
			},
		}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/packages/"+snapshot.ID.String()+"/status", `{"status":"customs-cleared"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[servers.TransitionResult](t, rec)
		assert.Equal(t, servers.CustomsCleared, body.Package.Status)
		assert.Equal(t, servers.Received, body.PreviousStatus)
		assert.Equal(t, servers.TransitionResultNotificationCustomsCleared, body.Notification)
		assert.True(t, body.Package.SyncPending)
		require.Len(t, body.SideEffects, 3)
		assert.Equal(t, servers.Succeeded, body.SideEffects[0].Outcome)
		assert.Equal(t, servers.Failed, body.SideEffects[1].Outcome)
		require.NotNil(t, body.SideEffects[1].Error)
		assert.Equal(t, "gateway timeout", *body.SideEffects[1].Error)
		assert.Equal(t, servers.Skipped, body.SideEffects[2].Outcome)
	})

	t.Run("should reject unknown status before reaching the engine", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/packages/"+kernel.NewUUID().String()+"/status", `{"status":"lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	errorCases := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: errs.NewObjectNotFoundError("package", "x"), code: http.StatusNotFound},
		{name: "version conflict", err: commands.NewPersistenceError("update", errs.NewVersionIsInvalidError("package", nil)), code: http.StatusConflict},
		{name: "store down", err: commands.NewPersistenceError("commit", errors.New("connection reset")), code: http.StatusInternalServerError},
		{name: "invalid transition", err: errors.Join(shipment.ErrInvalidTransition, errs.NewValueIsInvalidError("status")), code: http.StatusBadRequest},
	}
	for _, tc := range errorCases {
		t.Run("should map "+tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.transition.On("Handle", mock.Anything, mock.Anything).Return(commands.TransitionResult{}, tc.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/packages/"+kernel.NewUUID().String()+"/status", `{"status":"delivered"}`)

			assert.Equal(t, tc.code, rec.Code)
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestServer_SetPaymentStatus(t *testing.T) {
	f := newFixture(t)
	snapshot := testSnapshot(t)
	snapshot.PaymentStatus = shipment.PaymentPaid
	f.payment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetPaymentStatusCommand) bool {
		return cmd.PaymentStatus() == shipment.PaymentPaid
	})).Return(commands.Result{
		Package:     snapshot,
		SideEffects: []commands.SideEffectOutcome{{Step: commands.StepActivityLog}},
	}, nil).Once()

	rec := f.do(http.MethodPut, "/api/v1/packages/"+snapshot.ID.String()+"/payment", `{"paid":true}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[servers.PaymentResult](t, rec)
	assert.Equal(t, servers.Paid, body.Package.PaymentStatus)
	require.Len(t, body.SideEffects, 1)
	assert.Equal(t, servers.ActivityLog, body.SideEffects[0].Step)
}

func TestServer_ListPackages(t *testing.T) {
	t.Run("should pass status filter", func(t *testing.T) {
		f := newFixture(t)
		importerID := kernel.NewUUID()
		view := queries.PackageViewFromSnapshot(testSnapshot(t))
		f.list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListPackagesQuery) bool {
			status, ok := q.Status()
			return ok && status == shipment.Received && q.ImporterID().IsEqual(importerID)
		})).Return([]queries.PackageView{view}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/importers/"+importerID.String()+"/packages?status=received", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[[]servers.Package](t, rec)
		require.Len(t, body, 1)
		assert.Equal(t, view.TrackingNumber, body[0].TrackingNumber)
		require.NotNil(t, body[0].Customer.Email)
		assert.Equal(t, "ana@example.com", *body[0].Customer.Email)
	})

	t.Run("should reject unknown status filter", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/importers/"+kernel.NewUUID().String()+"/packages?status=lost", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return empty array", func(t *testing.T) {
		f := newFixture(t)
		f.list.On("Handle", mock.Anything, mock.Anything).Return([]queries.PackageView{}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/importers/"+kernel.NewUUID().String()+"/packages", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestServer_GetPackage(t *testing.T) {
	f := newFixture(t)
	f.get.On("Handle", mock.Anything, mock.Anything).
		Return(queries.PackageView{}, errs.NewObjectNotFoundError("package", "x")).Once()

	rec := f.do(http.MethodGet, "/api/v1/packages/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetPackageActivity(t *testing.T) {
	f := newFixture(t)
	packageID := kernel.NewUUID()
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	f.activity.On("Handle", mock.Anything, mock.Anything).Return([]queries.ActivityView{
		{ID: kernel.NewUUID(), Action: "Package received", CreatedAt: at},
		{ID: kernel.NewUUID(), Action: "Status changed to Customs Cleared", CreatedAt: at.Add(time.Hour)},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/packages/"+packageID.String()+"/activity", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]servers.ActivityEntry](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, "Package received", body[0].Action)
	assert.True(t, body[1].CreatedAt.Equal(at.Add(time.Hour)))
}

func TestRequestValidator_PassesUndocumentedRoutes(t *testing.T) {
	f := newFixture(t)
	f.echo.GET("/swagger/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "ui")
	})

	rec := f.do(http.MethodGet, "/swagger/index.html", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
