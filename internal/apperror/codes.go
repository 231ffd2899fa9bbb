package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Asset creation error codes
const (
	// Registry of existing assets
	CodeRegistryLoadFailed Code = "REGISTRY_LOAD_FAILED"
	CodeDuplicateAssetID   Code = "DUPLICATE_ASSET_ID"
	CodeInvalidAssetID     Code = "INVALID_ASSET_ID"

	// Widget input
	CodeInvalidAmount  Code = "INVALID_AMOUNT"
	CodeInvalidNumber  Code = "INVALID_NUMBER"
	CodeTooManyDigits  Code = "TOO_MANY_DECIMAL_DIGITS"
	CodeNumberTooLarge Code = "NUMBER_TOO_LARGE"

	// Form
	CodeFormIncomplete Code = "FORM_INCOMPLETE"

	// Reporting
	CodeOutputWriteFailed Code = "OUTPUT_WRITE_FAILED"
)
