package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Scheduling errors
	ErrNoScheduleConfigured  = errors.New("no schedule configured")
	ErrOutsideWorkingHours   = errors.New("outside working hours")
	ErrInvalidSlot           = errors.New("invalid slot")
	ErrSlotNoLongerAvailable = errors.New("slot no longer available")

	// Appointment errors
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// Catalog / configuration errors
	ErrProviderNotFound    = errors.New("provider not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrServiceInactive     = errors.New("service inactive")
	ErrServiceNotOwned     = errors.New("service not owned by caller")
	ErrInvalidWorkingHours = errors.New("invalid working hours")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrTransientStore          = errors.New("transient store error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
