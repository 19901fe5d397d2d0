package shipment_test

import (
	"testing"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	receivedAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clearedAt  = time.Date(2026, 3, 4, 14, 30, 0, 0, time.UTC)
	laterAt    = time.Date(2026, 3, 6, 11, 0, 0, 0, time.UTC)
)

func money(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func newDetails(t *testing.T) shipment.Details {
	t.Helper()
	customer, err := shipment.NewCustomer("Ana Ruiz", "+506 8888-7777", "ana@example.com")
	require.NoError(t, err)
	item, err := shipment.NewItem("Sneakers", 2, money(t, 1000), "6404.11")
	require.NoError(t, err)

	return shipment.Details{
		TrackingNumber: "1Z999AA10123456784",
		Customer:       customer,
		Origin:         "Miami",
		Carrier:        "UPS",
		Items:          []shipment.Item{item},
		DeclaredValue:  money(t, 2000),
		Notes:          "fragile",
	}
}

func newPackage(t *testing.T) *shipment.Package {
	t.Helper()
	fees := shipment.NewFees(money(t, 200), money(t, 286))
	p, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), newDetails(t), fees, receivedAt)
	require.NoError(t, err)
	return p
}

func TestNewPackage(t *testing.T) {
	t.Run("should create received package with pending payment", func(t *testing.T) {
		p := newPackage(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, shipment.Received, p.Status())
		assert.Equal(t, shipment.PaymentPending, p.PaymentStatus())
		assert.Equal(t, receivedAt, p.ReceivedDate())
		assert.Nil(t, p.CustomsClearedDate())
		assert.Nil(t, p.DeliveredDate())
		assert.Equal(t, int64(486), p.Fees().Total().Cents())
		assert.Equal(t, "+50688887777", p.Customer().Phone())
		assert.Len(t, p.Items(), 1)
		assert.Equal(t, 0, p.Version())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		details := newDetails(t)
		details.TrackingNumber = "  "

		p, err := shipment.NewPackage(kernel.UUID{}, kernel.NewUUID(), details, shipment.Fees{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "tracking number")
		assert.Contains(t, err.Error(), "received date")
	})

	t.Run("zero value package is not constructed", func(t *testing.T) {
		var p shipment.Package
		require.ErrorIs(t, p.Validate(), shipment.ErrPackageIsNotConstructed)

		_, err := p.Transition(shipment.Delivered, laterAt)
		require.ErrorIs(t, err, shipment.ErrPackageIsNotConstructed)
	})
}

func TestPackage_Transition(t *testing.T) {
	t.Run("customs-cleared stamps the clearance date and keeps payment pending", func(t *testing.T) {
		p := newPackage(t)
		_, err := p.Transition(shipment.CustomsPending, receivedAt)
		require.NoError(t, err)

		outcome, err := p.Transition(shipment.CustomsCleared, clearedAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.CustomsPending, outcome.From)
		assert.Equal(t, shipment.CustomsCleared, outcome.To)
		assert.Equal(t, shipment.NotificationCustomsCleared, outcome.Notification)
		require.NotNil(t, p.CustomsClearedDate())
		assert.Equal(t, clearedAt, *p.CustomsClearedDate())
		assert.Equal(t, shipment.PaymentPending, p.PaymentStatus())
		assert.Nil(t, p.DeliveredDate())
	})

	t.Run("repeating customs-cleared keeps the first date", func(t *testing.T) {
		p := newPackage(t)
		_, err := p.Transition(shipment.CustomsCleared, clearedAt)
		require.NoError(t, err)

		_, err = p.Transition(shipment.CustomsCleared, laterAt)

		require.NoError(t, err)
		assert.Equal(t, clearedAt, *p.CustomsClearedDate())
	})

	t.Run("delivered stamps delivery and forces payment", func(t *testing.T) {
		p := newPackage(t)
		_, err := p.Transition(shipment.CustomsCleared, clearedAt)
		require.NoError(t, err)

		outcome, err := p.Transition(shipment.Delivered, laterAt)

		require.NoError(t, err)
		assert.True(t, outcome.PaymentForced)
		assert.Equal(t, shipment.NotificationDelivered, outcome.Notification)
		assert.Equal(t, shipment.PaymentPaid, p.PaymentStatus())
		require.NotNil(t, p.DeliveredDate())
		assert.Equal(t, laterAt, *p.DeliveredDate())
		assert.Equal(t, clearedAt, *p.CustomsClearedDate())
	})

	t.Run("delivered when already paid does not report forced payment", func(t *testing.T) {
		p := newPackage(t)
		require.NoError(t, p.SetPaymentStatus(shipment.PaymentPaid))

		outcome, err := p.Transition(shipment.Delivered, laterAt)

		require.NoError(t, err)
		assert.False(t, outcome.PaymentForced)
		assert.Equal(t, shipment.PaymentPaid, p.PaymentStatus())
	})

	t.Run("skipping clearance still stamps the clearance date", func(t *testing.T) {
		p := newPackage(t)

		_, err := p.Transition(shipment.ReadyPickup, laterAt)

		require.NoError(t, err)
		assert.Equal(t, laterAt, *p.CustomsClearedDate())
		assert.Nil(t, p.DeliveredDate())
	})

	t.Run("moving backward is allowed and clears dates past the target", func(t *testing.T) {
		p := newPackage(t)
		_, err := p.Transition(shipment.Delivered, laterAt)
		require.NoError(t, err)

		outcome, err := p.Transition(shipment.Received, laterAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.NotificationNone, outcome.Notification)
		assert.Equal(t, shipment.Received, p.Status())
		assert.Nil(t, p.DeliveredDate())
		assert.Nil(t, p.CustomsClearedDate())
		assert.Equal(t, shipment.PaymentPaid, p.PaymentStatus())
	})

	t.Run("on-hold keeps clearance date and leaves payment untouched", func(t *testing.T) {
		p := newPackage(t)
		_, err := p.Transition(shipment.CustomsCleared, clearedAt)
		require.NoError(t, err)

		outcome, err := p.Transition(shipment.OnHold, laterAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.NotificationNone, outcome.Notification)
		assert.Equal(t, clearedAt, *p.CustomsClearedDate())
		assert.Equal(t, shipment.PaymentPending, p.PaymentStatus())
	})

	t.Run("invalid target is rejected without changes", func(t *testing.T) {
		p := newPackage(t)

		_, err := p.Transition(shipment.Status(99), laterAt)

		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Received, p.Status())
	})

	t.Run("fees are untouched by every transition", func(t *testing.T) {
		p := newPackage(t)
		for _, status := range shipment.AllStatuses() {
			_, err := p.Transition(status, laterAt)
			require.NoError(t, err)
			fees := p.Fees()
			assert.Equal(t, fees.CustomsDuty().Add(fees.VAT()), fees.Total())
		}
	})
}

func TestPackage_SetPaymentStatus(t *testing.T) {
	p := newPackage(t)

	require.NoError(t, p.SetPaymentStatus(shipment.PaymentPaid))
	assert.Equal(t, shipment.PaymentPaid, p.PaymentStatus())
	assert.Equal(t, shipment.Received, p.Status())

	require.NoError(t, p.SetPaymentStatus(shipment.PaymentPending))
	assert.Equal(t, shipment.PaymentPending, p.PaymentStatus())

	require.Error(t, p.SetPaymentStatus(shipment.PaymentUnknown))
	assert.Equal(t, shipment.PaymentPending, p.PaymentStatus())
}

func TestRestorePackage(t *testing.T) {
	t.Run("round trips a snapshot", func(t *testing.T) {
		original := newPackage(t)
		_, err := original.Transition(shipment.Delivered, laterAt)
		require.NoError(t, err)

		restored, err := shipment.RestorePackage(original.Snapshot())

		require.NoError(t, err)
		assert.Equal(t, original.Snapshot(), restored.Snapshot())
	})

	t.Run("snapshot is detached from the aggregate", func(t *testing.T) {
		p := newPackage(t)
		s := p.Snapshot()
		s.Details.Items[0] = shipment.Item{}

		assert.Equal(t, "Sneakers", p.Items()[0].Description())
	})

	t.Run("rejects broken date invariants", func(t *testing.T) {
		testCases := []struct {
			name    string
			mutate  func(s *shipment.Snapshot)
			message string
		}{
			{
				name: "delivered without delivered date",
				mutate: func(s *shipment.Snapshot) {
					s.Status = shipment.Delivered
					s.CustomsClearedDate = &clearedAt
				},
				message: "delivered date",
			},
			{
				name: "delivered date on non delivered package",
				mutate: func(s *shipment.Snapshot) {
					s.Status = shipment.ReadyPickup
					s.CustomsClearedDate = &clearedAt
					s.DeliveredDate = &laterAt
				},
				message: "delivered date",
			},
			{
				name: "cleared status without clearance date",
				mutate: func(s *shipment.Snapshot) {
					s.Status = shipment.CustomsCleared
				},
				message: "customs cleared date",
			},
			{
				name: "pending status with clearance date",
				mutate: func(s *shipment.Snapshot) {
					s.Status = shipment.CustomsPending
					s.CustomsClearedDate = &clearedAt
				},
				message: "customs cleared date",
			},
			{
				name: "unknown status",
				mutate: func(s *shipment.Snapshot) {
					s.Status = shipment.Unknown
				},
				message: "status",
			},
			{
				name: "negative version",
				mutate: func(s *shipment.Snapshot) {
					s.Version = -1
				},
				message: "version",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				s := newPackage(t).Snapshot()
				tc.mutate(&s)

				_, err := shipment.RestorePackage(s)

				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.message)
			})
		}
	})

	t.Run("on-hold may carry a clearance date", func(t *testing.T) {
		s := newPackage(t).Snapshot()
		s.Status = shipment.OnHold
		s.CustomsClearedDate = &clearedAt
		s.SyncPending = true
		s.Version = 3

		p, err := shipment.RestorePackage(s)

		require.NoError(t, err)
		assert.True(t, p.SyncPending())
		assert.Equal(t, 3, p.Version())
	})
}

func TestPackage_Version(t *testing.T) {
	s := newPackage(t).Snapshot()
	s.Version = 4
	p, err := shipment.RestorePackage(s)
	require.NoError(t, err)

	t.Run("should bump version once per loaded state", func(t *testing.T) {
		_, err := p.Transition(shipment.CustomsPending, time.Now())
		require.NoError(t, err)
		require.NoError(t, p.SetPaymentStatus(shipment.PaymentPaid))

		assert.Equal(t, 5, p.Version())
		assert.Equal(t, 4, p.PersistedVersion())
		assert.Equal(t, 5, p.Snapshot().Version)
	})
}
