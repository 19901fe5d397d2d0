// Package sheets mirrors packages into the importer's Google spreadsheet,
// one row per package keyed by package ID.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"customs/internal/adapters/out/httpclient"
	"customs/internal/core/domain/model/importer"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://sheets.googleapis.com/v4"

// Syncer implements ports.SheetSyncer against the Sheets values API.
type Syncer struct {
	baseURL   string
	client    *httpclient.Client
	importers ports.ImporterRepository
	logger    *zap.Logger
}

func NewSyncer(baseURL string, client *httpclient.Client, importers ports.ImporterRepository, logger *zap.Logger) *Syncer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Syncer{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    client,
		importers: importers,
		logger:    logger.With(zap.String("component", "sheet_syncer")),
	}
}

type valueRange struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension string     `json:"majorDimension,omitempty"`
	Values         [][]string `json:"values"`
}

// Sync writes the package row, updating it in place when column A already
// holds the package ID and appending it otherwise. An empty sheet gets the
// header row first.
func (s *Syncer) Sync(ctx context.Context, pkg shipment.Snapshot) error {
	imp, err := s.importers.Get(ctx, pkg.ImporterID)
	if err != nil {
		return fmt.Errorf("load importer: %w", err)
	}
	if !imp.CanSync() {
		return fmt.Errorf("%w: no spreadsheet linked for importer %s", ports.ErrSideEffectSkipped, imp.ID())
	}
	sheet := imp.Sheet()

	keys, err := s.readKeys(ctx, sheet)
	if err != nil {
		return fmt.Errorf("read sheet keys: %w", err)
	}

	row := Row(pkg)
	if rowNumber := findRow(keys, pkg.ID.String()); rowNumber > 0 {
		if err := s.update(ctx, sheet, rowNumber, row); err != nil {
			return fmt.Errorf("update row %d: %w", rowNumber, err)
		}
		s.logger.Debug("sheet row updated", zap.String("package_id", pkg.ID.String()), zap.Int("row", rowNumber))
		return nil
	}

	values := [][]string{row}
	if len(keys) == 0 {
		values = [][]string{Header, row}
	}
	if err := s.append(ctx, sheet, values); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	s.logger.Debug("sheet row appended", zap.String("package_id", pkg.ID.String()))
	return nil
}

func (s *Syncer) readKeys(ctx context.Context, sheet importer.SheetSettings) ([]string, error) {
	endpoint := s.valuesURL(sheet, a1(sheet.SheetName, "A:A"), "")

	resp, err := s.client.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		return s.newRequest(ctx, http.MethodGet, endpoint, sheet.AccessToken, nil)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}

	keys := make([]string, len(vr.Values))
	for i, cells := range vr.Values {
		if len(cells) > 0 {
			keys[i] = cells[0]
		}
	}
	return keys, nil
}

func (s *Syncer) update(ctx context.Context, sheet importer.SheetSettings, rowNumber int, row []string) error {
	rng := a1(sheet.SheetName, fmt.Sprintf("A%d:%s%d", rowNumber, lastColumn, rowNumber))
	query := url.Values{"valueInputOption": {"RAW"}}
	return s.write(ctx, http.MethodPut, s.valuesURL(sheet, rng, "")+"?"+query.Encode(), sheet.AccessToken,
		valueRange{Range: rng, MajorDimension: "ROWS", Values: [][]string{row}})
}

func (s *Syncer) append(ctx context.Context, sheet importer.SheetSettings, values [][]string) error {
	rng := a1(sheet.SheetName, "A:"+lastColumn)
	query := url.Values{"valueInputOption": {"RAW"}, "insertDataOption": {"INSERT_ROWS"}}
	return s.write(ctx, http.MethodPost, s.valuesURL(sheet, rng, ":append")+"?"+query.Encode(), sheet.AccessToken,
		valueRange{MajorDimension: "ROWS", Values: values})
}

func (s *Syncer) write(ctx context.Context, method, endpoint, token string, body valueRange) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}

	resp, err := s.client.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		return s.newRequest(ctx, method, endpoint, token, payload)
	})
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (s *Syncer) newRequest(ctx context.Context, method, endpoint, token string, payload []byte) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (s *Syncer) valuesURL(sheet importer.SheetSettings, rng, suffix string) string {
	return fmt.Sprintf("%s/spreadsheets/%s/values/%s%s",
		s.baseURL, url.PathEscape(sheet.SpreadsheetID), url.PathEscape(rng), suffix)
}

// a1 builds an A1 range on a quoted sheet name, e.g. 'Q1 Packages'!A:A.
func a1(sheetName, cells string) string {
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'!" + cells
}

// findRow returns the 1-based sheet row whose key matches id, or 0.
func findRow(keys []string, id string) int {
	for i, key := range keys {
		if key == id {
			return i + 1
		}
	}
	return 0
}
