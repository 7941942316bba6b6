package repository

import (
	ucAppointment "github.com/clinicstack/clinic-manager/internal/usecase/appointment"
	ucBilling "github.com/clinicstack/clinic-manager/internal/usecase/billing"
	ucPatient "github.com/clinicstack/clinic-manager/internal/usecase/patient"
	ucPrescription "github.com/clinicstack/clinic-manager/internal/usecase/prescription"
	ucSettings "github.com/clinicstack/clinic-manager/internal/usecase/settings"
	ucVisit "github.com/clinicstack/clinic-manager/internal/usecase/visit"
)

// Compile-time checks
var (
	_ ucPatient.Repository         = (*GormStore)(nil)
	_ ucPatient.TimelineRepository = (*GormStore)(nil)
	_ ucAppointment.Repository     = (*GormStore)(nil)
	_ ucVisit.Repository           = (*GormStore)(nil)
	_ ucPrescription.Repository    = (*GormStore)(nil)
	_ ucBilling.Repository         = (*GormStore)(nil)
	_ ucBilling.MarkPaidRepository = (*GormStore)(nil)
	_ ucSettings.Repository        = (*GormStore)(nil)
)
