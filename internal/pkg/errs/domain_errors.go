package errs

import "errors"

// Business-rule sentinels shared by the command and query layers. These are
// validation rejections returned to the caller for direct messaging; they are
// never retried.
var (
	// Lot errors
	ErrLotNotFound = errors.New("lot not found")

	// Assignment errors
	ErrAssignmentNotFound        = errors.New("assignment not found")
	ErrDuplicateActiveAssignment = errors.New("vehicle already has an active assignment in this lot")
	ErrAlreadyCompleted          = errors.New("assignment already completed")
	ErrInvalidInterval           = errors.New("invalid billing interval")

	// Vehicle errors
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidPlate    = errors.New("invalid plate")
	ErrDuplicatePlate  = errors.New("plate already registered")

	// Inventory errors
	ErrProductNotFound   = errors.New("product not found")
	ErrProductHasSales   = errors.New("product has recorded sales")
	ErrStockNotFound     = errors.New("stock not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Loyalty errors
	ErrPrizeNotFound     = errors.New("prize not found")
	ErrInsufficientScore = errors.New("insufficient score")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
