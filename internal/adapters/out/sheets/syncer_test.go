package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"customs/internal/adapters/out/httpclient"
	"customs/internal/core/domain/model/importer"
	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"
	"customs/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSpreadsheet = "sheet-1"
	testToken       = "ya29.token"
)

type importerStub map[kernel.UUID]*importer.Importer

func (s importerStub) Get(_ context.Context, id kernel.UUID) (*importer.Importer, error) {
	if imp, ok := s[id]; ok {
		return imp, nil
	}
	return nil, errs.NewObjectNotFoundError("importer", id.String())
}

// fakeSheet is an in-memory stand-in for one tab of the Sheets values API.
type fakeSheet struct {
	mu       sync.Mutex
	rows     [][]string
	requests []string
}

func (f *fakeSheet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+testToken {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	rng := strings.TrimPrefix(r.URL.Path, "/spreadsheets/"+testSpreadsheet+"/values/")
	f.requests = append(f.requests, r.Method+" "+rng)

	switch {
	case r.Method == http.MethodGet && rng == "'Packages'!A:A":
		resp := valueRange{Range: rng}
		for _, row := range f.rows {
			resp.Values = append(resp.Values, []string{row[0]})
		}
		_ = json.NewEncoder(w).Encode(resp)
	case r.Method == http.MethodPut:
		var n int
		if _, err := fmt.Sscanf(rng, "'Packages'!A%d:", &n); err != nil || n < 1 || n > len(f.rows) {
			http.Error(w, "bad range", http.StatusBadRequest)
			return
		}
		var body valueRange
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.rows[n-1] = body.Values[0]
		_, _ = w.Write([]byte(`{}`))
	case r.Method == http.MethodPost && rng == "'Packages'!A:P:append":
		var body valueRange
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.rows = append(f.rows, body.Values...)
		_, _ = w.Write([]byte(`{}`))
	default:
		http.Error(w, "unexpected request", http.StatusNotFound)
	}
}

func sheetImporter(t *testing.T, enabled bool) *importer.Importer {
	t.Helper()
	imp, err := importer.RestoreImporter(kernel.NewUUID(), "Casillero CR", importer.SMSSettings{},
		importer.SheetSettings{Enabled: enabled, SpreadsheetID: testSpreadsheet, AccessToken: testToken})
	require.NoError(t, err)
	return imp
}

func testPackage(t *testing.T, importerID kernel.UUID) *shipment.Package {
	t.Helper()

	customer, err := shipment.NewCustomer("Ana Ruiz", "+50688887777", "")
	require.NoError(t, err)
	value, _ := kernel.MoneyFromCents(2000)
	duty, _ := kernel.MoneyFromCents(200)
	vat, _ := kernel.MoneyFromCents(286)

	p, err := shipment.NewPackage(kernel.NewUUID(), importerID, shipment.Details{
		TrackingNumber: "1Z999AA10123456784",
		Customer:       customer,
		Origin:         "US",
		Carrier:        "UPS",
		DeclaredValue:  value,
	}, shipment.NewFees(duty, vat), time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func newTestSyncer(baseURL string, importers ports.ImporterRepository) *Syncer {
	client := httpclient.New(time.Second, zap.NewNop()).WithRetry(2, time.Millisecond)
	return NewSyncer(baseURL, client, importers, zap.NewNop())
}

func TestSyncer_Sync_AppendsThenUpdatesInPlace(t *testing.T) {
	sheet := &fakeSheet{}
	server := httptest.NewServer(sheet)
	defer server.Close()

	imp := sheetImporter(t, true)
	syncer := newTestSyncer(server.URL, importerStub{imp.ID(): imp})
	pkg := testPackage(t, imp.ID())

	require.NoError(t, syncer.Sync(context.Background(), pkg.Snapshot()))
	require.Len(t, sheet.rows, 2)
	assert.Equal(t, Header, sheet.rows[0])
	assert.Equal(t, Row(pkg.Snapshot()), sheet.rows[1])

	_, err := pkg.Transition(shipment.CustomsCleared, time.Date(2026, 3, 3, 14, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, syncer.Sync(context.Background(), pkg.Snapshot()))
	require.Len(t, sheet.rows, 2)
	assert.Equal(t, "Customs Cleared", sheet.rows[1][10])
	assert.Equal(t, "2026-03-03 14:30", sheet.rows[1][13])
	assert.Equal(t, "PUT 'Packages'!A2:P2", sheet.requests[len(sheet.requests)-1])
}

func TestSyncer_Sync_IsIdempotent(t *testing.T) {
	sheet := &fakeSheet{}
	server := httptest.NewServer(sheet)
	defer server.Close()

	imp := sheetImporter(t, true)
	syncer := newTestSyncer(server.URL, importerStub{imp.ID(): imp})
	other := testPackage(t, imp.ID())
	pkg := testPackage(t, imp.ID())

	require.NoError(t, syncer.Sync(context.Background(), other.Snapshot()))
	require.NoError(t, syncer.Sync(context.Background(), pkg.Snapshot()))
	before := append([][]string(nil), sheet.rows...)

	require.NoError(t, syncer.Sync(context.Background(), pkg.Snapshot()))

	assert.Equal(t, before, sheet.rows)
	assert.Len(t, sheet.rows, 3)
}

func TestSyncer_Sync_SkipsUnlinkedImporter(t *testing.T) {
	sheet := &fakeSheet{}
	server := httptest.NewServer(sheet)
	defer server.Close()

	imp := sheetImporter(t, false)
	syncer := newTestSyncer(server.URL, importerStub{imp.ID(): imp})

	err := syncer.Sync(context.Background(), testPackage(t, imp.ID()).Snapshot())

	require.ErrorIs(t, err, ports.ErrSideEffectSkipped)
	assert.Empty(t, sheet.requests)
}

func TestSyncer_Sync_ReportsRejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	imp := sheetImporter(t, true)
	syncer := newTestSyncer(server.URL, importerStub{imp.ID(): imp})

	err := syncer.Sync(context.Background(), testPackage(t, imp.ID()).Snapshot())

	var statusErr *httpclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.NotErrorIs(t, err, ports.ErrSideEffectSkipped)
}

func TestRow(t *testing.T) {
	pkg := testPackage(t, kernel.NewUUID()).Snapshot()

	row := Row(pkg)

	require.Len(t, row, len(Header))
	assert.Equal(t, pkg.ID.String(), row[0])
	assert.Equal(t, "20.00", row[6])
	assert.Equal(t, "4.86", row[9])
	assert.Equal(t, "Received", row[10])
	assert.Equal(t, "pending", row[11])
	assert.Equal(t, "2026-03-02 09:00", row[12])
	assert.Empty(t, row[13])
	assert.Empty(t, row[14])
}

func TestA1(t *testing.T) {
	assert.Equal(t, "'Q1 Packages'!A:A", a1("Q1 Packages", "A:A"))
	assert.Equal(t, "'Ana''s'!A2:P2", a1("Ana's", "A2:P2"))
}
