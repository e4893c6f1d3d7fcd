package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeEmptyInput  = "EMPTY_INPUT"
	CodeUpstream    = "UPSTREAM_UNAVAILABLE"
	CodeParse       = "PARSE_FAILURE"
	CodeSchema      = "SCHEMA_VIOLATION"
	CodeGeneration  = "GENERATION_ERROR"
	CodePersistence = "PERSISTENCE_ERROR"
	CodeCache       = "CACHE_ERROR"
	CodeService     = "SERVICE_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
)

type AnalysisError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

func NewAnalysisError(message, code string, statusCode int, context map[string]any) *AnalysisError {
	return &AnalysisError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AnalysisError) WithCause(cause error) *AnalysisError {
	e.Cause = cause
	return e
}

func (e *AnalysisError) base() *AnalysisError { return e }

type hasBase interface {
	base() *AnalysisError
}

// AsAnalysisError walks the error chain and returns the first AnalysisError
// it finds, including the ones embedded in the typed wrappers.
func AsAnalysisError(err error) (*AnalysisError, bool) {
	for err != nil {
		if b, ok := err.(hasBase); ok {
			return b.base(), true
		}
		err = stderrors.Unwrap(err)
	}
	return nil, false
}

// EmptyInputError rejects a submission before any external call is made.
type EmptyInputError struct {
	*AnalysisError
}

func NewEmptyInputError() *EmptyInputError {
	return &EmptyInputError{
		AnalysisError: &AnalysisError{
			Message:    "텍스트가 누락되었습니다.",
			Code:       CodeEmptyInput,
			StatusCode: 400,
		},
	}
}

// UpstreamError covers network, auth, quota and timeout failures talking to
// the external text-generation service.
type UpstreamError struct {
	*AnalysisError
	Service string
}

func NewUpstreamError(service string, cause error) *UpstreamError {
	return &UpstreamError{
		AnalysisError: &AnalysisError{
			Message:    fmt.Sprintf("%s upstream unavailable", service),
			Code:       CodeUpstream,
			StatusCode: 503,
			Context: map[string]any{
				"service": service,
			},
			Cause: cause,
		},
		Service: service,
	}
}

// ParseError carries the offending raw text of a response that was not
// valid JSON.
type ParseError struct {
	*AnalysisError
	Raw string
}

func NewParseError(raw string, cause error) *ParseError {
	return &ParseError{
		AnalysisError: &AnalysisError{
			Message:    "response is not valid JSON",
			Code:       CodeParse,
			StatusCode: 502,
			Context: map[string]any{
				"raw_length": len(raw),
			},
			Cause: cause,
		},
		Raw: raw,
	}
}

// SchemaError identifies the first field of a decoded payload that violates
// its shape constraint.
type SchemaError struct {
	*AnalysisError
	Shape  string
	Field  string
	Reason string
}

func NewSchemaError(shape, field, reason string) *SchemaError {
	return &SchemaError{
		AnalysisError: &AnalysisError{
			Message:    fmt.Sprintf("schema %s: field %q %s", shape, field, reason),
			Code:       CodeSchema,
			StatusCode: 502,
			Context: map[string]any{
				"shape": shape,
				"field": field,
			},
		},
		Shape:  shape,
		Field:  field,
		Reason: reason,
	}
}

// GenerationError attributes a failed generation step to its pipeline stage
// so the orchestrator can surface the detail verbatim.
type GenerationError struct {
	*AnalysisError
	Stage string
}

func NewGenerationError(stage string, cause error) *GenerationError {
	return &GenerationError{
		AnalysisError: &AnalysisError{
			Message:    fmt.Sprintf("%s generation failed", stage),
			Code:       CodeGeneration,
			StatusCode: 400,
			Context: map[string]any{
				"stage": stage,
			},
			Cause: cause,
		},
		Stage: stage,
	}
}

// PersistenceError marks a failure after successful generation; the generated
// content is discarded and never regenerated automatically.
type PersistenceError struct {
	*AnalysisError
	Operation string
}

func NewPersistenceError(message, operation string, cause error) *PersistenceError {
	return &PersistenceError{
		AnalysisError: &AnalysisError{
			Message:    message,
			Code:       CodePersistence,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
			},
			Cause: cause,
		},
		Operation: operation,
	}
}

type CacheError struct {
	*AnalysisError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AnalysisError: &AnalysisError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ServiceError struct {
	*AnalysisError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		AnalysisError: &AnalysisError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 503,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}
