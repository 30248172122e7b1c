package rpcerr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Goden-Gun/rpcerr-lib/pkg/codes"
)

// Kind is the stable symbolic identifier of one documented error condition.
type Kind string

// KindUnknown is assigned to reports whose code is absent from the catalog.
const KindUnknown Kind = "UNKNOWN_ERROR"

// Report is the raw, untyped error returned by the remote service.
type Report struct {
	Code    int32
	Message string
}

// String renders the report as "[code message]".
func (r Report) String() string {
	return "[" + strconv.FormatInt(int64(r.Code), 10) + " " + r.Message + "]"
}

// Error is a classified RPC error.
type Error struct {
	Kind Kind
	// ID is the catalog template the report matched, or the code family
	// symbol for fallback classifications.
	ID   string
	Code int32
	// Param is the numeric parameter extracted from the message. It is only
	// set on exact template matches.
	Param *int64
	// X is the value substituted into Message: the parameter text on exact
	// matches, the raw report rendered as "[code message]" otherwise.
	X string
	// RPC labels the outbound call that produced the failure.
	RPC string
	// Unknown marks approximate classifications.
	Unknown bool
	// Message is the human readable template; "{x}" is replaced by X.
	Message string
}

// Unknown builds the error for a report whose code the catalog does not know.
func Unknown(report Report, rpc string) *Error {
	return &Error{
		Kind:    KindUnknown,
		ID:      string(KindUnknown),
		Code:    codes.Unknown.Numeric,
		X:       report.String(),
		RPC:     rpc,
		Unknown: true,
		Message: "{x}",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strconv.FormatInt(int64(e.Code), 10))
	b.WriteString(" ")
	b.WriteString(e.ID)
	b.WriteString("]: ")
	b.WriteString(e.Text())
	if e.RPC != "" {
		b.WriteString(fmt.Sprintf(" (caused by %q)", e.RPC))
	}
	return b.String()
}

// Text returns Message with the placeholder filled in.
func (e *Error) Text() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = "{x}"
	}
	return strings.ReplaceAll(msg, "{x}", e.X)
}

// Is matches another *Error of the same kind, so a zero value carrying only
// a Kind works as a sentinel:
//
//	errors.Is(err, &rpcerr.Error{Kind: "FLOOD_WAIT"})
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind != "" && t.Kind == e.Kind
}

// ParamValue returns the extracted parameter and whether one was present.
func (e *Error) ParamValue() (int64, bool) {
	if e == nil || e.Param == nil {
		return 0, false
	}
	return *e.Param, true
}

// As extracts a classified error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err's chain holds a classified error of kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// IsUnknown reports whether err's chain holds an approximate classification.
func IsUnknown(err error) bool {
	e, ok := As(err)
	return ok && e.Unknown
}
