package metadata

import "fmt"

// ErrorType represents a generic category of error used as descriptor
// to clarify the nature of a failure that occurred during metadata resolution
// or in one of its collaborators.
type ErrorType struct {
	s string
}

var (
	ErrorTypeConfigurationFailure = ErrorType{"configuration-failure"}
	ErrorTypeNotFound             = ErrorType{"not-found"}
	ErrorTypeIncorrectInput       = ErrorType{"incorrect-input"}
	ErrorTypeProviderFailure      = ErrorType{"provider-failure"}
	ErrorTypeAuthorization        = ErrorType{"authorization"}
	ErrorTypeUnknown              = ErrorType{"unknown"}
)

// Error defines a generic application-layer error that should be translated
// into a specific response format for the requester.
//
// The error includes a err source message, a type indicating the category
// of the failure, and a slug string representing the error message content
// to be returned to the requester. The error type is used during translation
// process in the error-handling implementation.
//
// The source error message may contain internal details, so it is not recommended
// to include it in the final response to avoid exposing sensitive information.
// Instead, it is highly recommended to use the slug string, which is intended
// for the response, ensuring no sensitive data is leaked to the requester.
type Error struct {
	err       string
	slug      string
	errorType ErrorType
}

func (e Error) Slug() string         { return e.slug }
func (e Error) IsZero() bool         { return e == Error{} }
func (e Error) Error() string        { return e.err }
func (e Error) ErrorType() ErrorType { return e.errorType }

// NewConfigurationFailureError returns an error that handles missing or
// malformed configuration resources. Rendering cannot sensibly continue
// without valid metadata configuration, so this error is expected to be
// propagated rather than recovered locally.
func NewConfigurationFailureError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeConfigurationFailure,
	}
}

// NewNotFoundError returns an error that handles lookups of entries that are
// expected to exist, such as an explicitly selected metadata key that is
// absent from the loaded table.
func NewNotFoundError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeNotFound,
	}
}

// NewIncorrectInputError returns an error that handles invalid input data,
// typically caused by inappropriate data formats or other issues related
// to incorrect input.
func NewIncorrectInputError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeIncorrectInput,
	}
}

// NewProviderFailureError returns an error that handles collaborator failures,
// internal processing issues, unavailability, connection problems, or other
// issues that should not be exposed to the requester.
func NewProviderFailureError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeProviderFailure,
	}
}

// NewAuthorizationError returns an error that handles authorization failures,
// such as missing or invalid credentials when attempting to access a restricted resource.
func NewAuthorizationError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeAuthorization,
	}
}

// NewUnknownError returns an error that represents an unexpected or unclassified
// issue that doesn't fall into predefined error categories. Useful as a fallback
// when the exact nature of the error is unclear.
func NewUnknownError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeUnknown,
	}
}

// NewTemplateNotFoundError returns an error indicating that the metadata key
// recorded for the current request has no entry in the loaded table. The key
// is expected to have been pre-validated by configuration authorship, so a
// miss points at a configuration/caller mismatch and is not silently swallowed.
func NewTemplateNotFoundError(key string) Error {
	return NewNotFoundError(
		fmt.Sprintf("No metadata template is declared for key: %q. Please check the metadata configuration for further diagnostics.", key),
		"Unable to resolve page metadata for the requested resource.",
	)
}

// NewMissingDefaultEntryError returns an error indicating that a loaded
// metadata table lacks the required default entry.
func NewMissingDefaultEntryError(resource string) Error {
	return NewConfigurationFailureError(
		fmt.Sprintf("Metadata table %q has no %q entry. Every table must declare a fallback template.", resource, DefaultKey),
		"Unable to resolve page metadata due to a configuration issue. Please contact the support team.",
	)
}

// NewTableResourceError wraps a failure to read or decode a metadata table
// resource into a configuration failure error.
func NewTableResourceError(resource string, err error) Error {
	return NewConfigurationFailureError(
		fmt.Sprintf("Metadata table resource %q cannot be loaded: %v.", resource, err),
		"Unable to resolve page metadata due to a configuration issue. Please contact the support team.",
	)
}
