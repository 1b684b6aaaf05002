package errors

import (
	"errors"
	"fmt"

	"payout-gateway/domain/constants"
)

// Kinds of malformed gateway responses. Match them with errors.Is.
var (
	ErrMissingField     = errors.New("success body missing field")
	ErrTimestampParse   = errors.New("failed to parse timestamp")
	ErrStatusNotInt     = errors.New("status is not integer")
	ErrBankCodeNotInt   = errors.New("bank code is not integer")
	ErrUnknownBank      = errors.New("unknown bank code")
	ErrAmountNotDecimal = errors.New("amount is not a decimal number")
)

// ValidationError reports caller input rejected before anything is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GatewayError is a non-success status reported by the gateway. It is a
// business outcome; branch on Status rather than treating it as a fault.
type GatewayError struct {
	Status  constants.ApiError
	Message string
}

// Error uses the documented description; for undocumented codes the
// gateway's own message is kept since it is the only explanation there is.
func (e *GatewayError) Error() string {
	if !e.Status.IsKnown() && e.Message != "" {
		return fmt.Sprintf("gateway returned status %d: %s (%s)", e.Status.Code(), e.Status.Describe(), e.Message)
	}
	return fmt.Sprintf("gateway returned status %d: %s", e.Status.Code(), e.Status.Describe())
}

// MalformedResponseError means the gateway broke its own success contract.
type MalformedResponseError struct {
	Kind  error
	Field string
	Value string
	// Code is set for ErrUnknownBank.
	Code uint32
	Err  error
}

func (e *MalformedResponseError) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg += ": " + e.Field
	}
	switch {
	case errors.Is(e.Kind, ErrUnknownBank):
		msg += fmt.Sprintf(" %d", e.Code)
	case e.Value != "" || !errors.Is(e.Kind, ErrMissingField):
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Err != nil {
		msg += ". Error: " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewMissingField(field string) *MalformedResponseError {
	return &MalformedResponseError{Kind: ErrMissingField, Field: field}
}

func NewTimestampParse(field, value string, err error) *MalformedResponseError {
	return &MalformedResponseError{Kind: ErrTimestampParse, Field: field, Value: value, Err: err}
}

func NewUnknownBank(code uint32) *MalformedResponseError {
	return &MalformedResponseError{Kind: ErrUnknownBank, Field: "bankcode", Code: code}
}

// TransportError wraps anything that went wrong moving bytes to or from the gateway.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsGatewayStatus reports whether err carries a gateway status and returns it.
func IsGatewayStatus(err error) (constants.ApiError, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Status, true
	}
	return 0, false
}
