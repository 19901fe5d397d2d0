// Package importer provides the read model of a client organization and the
// notification and sync settings it owns. Importer management itself lives
// outside this service.
package importer

import (
	"errors"
	"strings"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/pkg/errs"
)

var ErrImporterIsNotConstructed = errors.New("Importer must be created via RestoreImporter constructor")

// SMSSettings configures customer notifications.
type SMSSettings struct {
	Enabled bool
	// Sender is the originating number or alphanumeric sender ID.
	Sender string
}

// SheetSettings configures the external spreadsheet mirror.
type SheetSettings struct {
	Enabled       bool
	SpreadsheetID string
	// SheetName is the tab holding one row per package.
	SheetName string
	// AccessToken is the OAuth bearer token obtained when the importer linked
	// its account.
	AccessToken string
}

// Importer is a client organization owning packages.
type Importer struct {
	id    kernel.UUID
	name  string
	sms   SMSSettings
	sheet SheetSettings

	isConstructed bool
}

// RestoreImporter rebuilds an importer from persisted state.
// A missing sheet name defaults to "Packages".
func RestoreImporter(id kernel.UUID, name string, sms SMSSettings, sheet SheetSettings) (*Importer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("importer name")
	}

	if sheet.SheetName == "" {
		sheet.SheetName = "Packages"
	}

	return &Importer{
		id:            id,
		name:          name,
		sms:           sms,
		sheet:         sheet,
		isConstructed: true,
	}, nil
}

func (i *Importer) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrImporterIsNotConstructed
	}
	return nil
}

func (i *Importer) ID() kernel.UUID {
	return i.id
}

func (i *Importer) Name() string {
	return i.name
}

func (i *Importer) SMS() SMSSettings {
	return i.sms
}

func (i *Importer) Sheet() SheetSettings {
	return i.sheet
}

// CanNotify reports whether SMS notifications are enabled and configured.
func (i *Importer) CanNotify() bool {
	return i.sms.Enabled && i.sms.Sender != ""
}

// CanSync reports whether a spreadsheet is linked.
func (i *Importer) CanSync() bool {
	return i.sheet.Enabled && i.sheet.SpreadsheetID != "" && i.sheet.AccessToken != ""
}
