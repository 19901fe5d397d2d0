// Package shipment provides the Package aggregate tracked through customs
// clearance for an importer.
//
// The package includes:
//   - Package: the aggregate root holding customer, items, fees, lifecycle dates and payment state
//   - Status: the clearance pipeline received -> customs-pending -> customs-cleared -> ready-pickup -> delivered,
//     with on-hold as a side branch
//   - PaymentStatus: pending or paid
//   - TransitionRule: the single table mapping a target status to its derived fields and notification
//
// Key business rules:
//   - totalFees is always customsDuty + vat
//   - deliveredDate is set if and only if status is delivered
//   - customsClearedDate is set once the package has reached customs-cleared or later
//   - reaching delivered forces payment to paid
//   - any status may be requested from any status (manual correction is allowed)
package shipment
