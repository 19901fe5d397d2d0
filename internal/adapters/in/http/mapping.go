package http

import (
	"errors"

	"customs/internal/core/application/usecases/commands"
	"customs/internal/core/application/usecases/queries"
	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/generated/servers"
)

func toKernelUUID(id servers.PackageId) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toDetails(body servers.NewPackage) (shipment.Details, error) {
	email := ""
	if body.Customer.Email != nil {
		email = *body.Customer.Email
	}
	customer, customerErr := shipment.NewCustomer(body.Customer.Name, body.Customer.Phone, email)

	declared, declaredErr := kernel.MoneyFromFloat(body.DeclaredValue)

	var items []shipment.Item
	var itemErrs []error
	if body.Items != nil {
		items = make([]shipment.Item, 0, len(*body.Items))
		for _, in := range *body.Items {
			item, err := toItem(in)
			if err != nil {
				itemErrs = append(itemErrs, err)
				continue
			}
			items = append(items, item)
		}
	}

	if err := errors.Join(customerErr, declaredErr, errors.Join(itemErrs...)); err != nil {
		return shipment.Details{}, err
	}

	return shipment.Details{
		TrackingNumber: body.TrackingNumber,
		Customer:       customer,
		Origin:         deref(body.Origin),
		Carrier:        deref(body.Carrier),
		Items:          items,
		DeclaredValue:  declared,
		Notes:          deref(body.Notes),
	}, nil
}

func toItem(in servers.Item) (shipment.Item, error) {
	unitValue, err := kernel.MoneyFromFloat(in.UnitValue)
	if err != nil {
		return shipment.Item{}, err
	}
	return shipment.NewItem(in.Description, in.Quantity, unitValue, deref(in.HsCode))
}

func toPackage(v queries.PackageView) servers.Package {
	items := make([]servers.Item, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.Item{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitValue:   item.UnitValue.Float64(),
			HsCode:      optional(item.HSCode),
		}
	}

	return servers.Package{
		Id:             v.ID.Bytes(),
		ImporterId:     v.ImporterID.Bytes(),
		TrackingNumber: v.TrackingNumber,
		Customer: servers.Customer{
			Name:  v.CustomerName,
			Phone: v.CustomerPhone,
			Email: optional(v.CustomerEmail),
		},
		Origin:             optional(v.Origin),
		Carrier:            optional(v.Carrier),
		Notes:              optional(v.Notes),
		Items:              items,
		DeclaredValue:      v.DeclaredValue.Float64(),
		CustomsDuty:        v.CustomsDuty.Float64(),
		Vat:                v.VAT.Float64(),
		TotalFees:          v.TotalFees.Float64(),
		Status:             servers.PackageStatus(v.Status.String()),
		PaymentStatus:      servers.PaymentStatus(v.PaymentStatus.String()),
		ReceivedDate:       v.ReceivedDate,
		CustomsClearedDate: v.CustomsClearedDate,
		DeliveredDate:      v.DeliveredDate,
		SyncPending:        v.SyncPending,
		Version:            v.Version,
	}
}

func toSideEffects(outcomes []commands.SideEffectOutcome) []servers.SideEffectOutcome {
	response := make([]servers.SideEffectOutcome, len(outcomes))
	for i, o := range outcomes {
		out := servers.SideEffectOutcome{
			Step:    servers.SideEffectOutcomeStep(o.Step),
			Outcome: servers.Succeeded,
		}
		switch {
		case o.Failed():
			out.Outcome = servers.Failed
		case o.Skipped:
			out.Outcome = servers.Skipped
		}
		if o.Err != nil {
			msg := o.Err.Error()
			out.Error = &msg
		}
		response[i] = out
	}
	return response
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
