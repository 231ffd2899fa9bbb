package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	CodeConfigurationError: "Configuration error",

	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	CodeRegistryLoadFailed: "Failed to load the registry of existing assets",
	CodeDuplicateAssetID:   "Asset id is already registered",
	CodeInvalidAssetID:     "Asset id must be a positive integer",

	CodeInvalidAmount:  "Invalid amount",
	CodeInvalidNumber:  "Invalid number",
	CodeTooManyDigits:  "Too many decimal digits for the asset",
	CodeNumberTooLarge: "Number exceeds the allowed bit length",

	CodeFormIncomplete: "Asset details are incomplete or invalid",

	CodeOutputWriteFailed: "Failed to write the asset details",
}
