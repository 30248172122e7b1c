package codes

import (
	"sort"

	grpccodes "google.golang.org/grpc/codes"
)

// ErrorCode describes one numeric status family returned by the remote service.
type ErrorCode struct {
	Numeric int32
	Symbol  string
	Message string
	// GRPC is the status code used when an error of this family crosses a gRPC hop.
	GRPC grpccodes.Code
}

var (
	// SeeOther indicates the request must be repeated against another data center.
	SeeOther = ErrorCode{Numeric: 303, Symbol: "SEE_OTHER", Message: "the request must be repeated, but directed to a different data center", GRPC: grpccodes.Unavailable}
	// BadRequest indicates malformed query arguments.
	BadRequest = ErrorCode{Numeric: 400, Symbol: "BAD_REQUEST", Message: "the query contains errors", GRPC: grpccodes.InvalidArgument}
	// Unauthorized indicates a missing or invalid authorization.
	Unauthorized = ErrorCode{Numeric: 401, Symbol: "UNAUTHORIZED", Message: "the method requires authorization", GRPC: grpccodes.Unauthenticated}
	// Forbidden indicates a privacy or permission violation.
	Forbidden = ErrorCode{Numeric: 403, Symbol: "FORBIDDEN", Message: "privacy violation", GRPC: grpccodes.PermissionDenied}
	// NotAcceptable indicates the request cannot be processed in the current state.
	NotAcceptable = ErrorCode{Numeric: 406, Symbol: "NOT_ACCEPTABLE", Message: "the request cannot be processed in the current state", GRPC: grpccodes.FailedPrecondition}
	// Flood indicates rate limiting.
	Flood = ErrorCode{Numeric: 420, Symbol: "FLOOD", Message: "the maximum allowed number of attempts has been exceeded", GRPC: grpccodes.ResourceExhausted}
	// Internal indicates a server side failure.
	Internal = ErrorCode{Numeric: 500, Symbol: "INTERNAL", Message: "an internal server error occurred", GRPC: grpccodes.Internal}
	// Unknown is the sentinel family for reports whose code is not in the catalog.
	Unknown = ErrorCode{Numeric: 520, Symbol: "UNKNOWN", Message: "unknown error", GRPC: grpccodes.Unknown}
)

// Registry exposes a static list for validation or docs.
var Registry = []ErrorCode{
	SeeOther,
	BadRequest,
	Unauthorized,
	Forbidden,
	NotAcceptable,
	Flood,
	Internal,
	Unknown,
}

var (
	byNumeric = make(map[int32]ErrorCode, len(Registry))
	byGRPC    = make(map[grpccodes.Code]ErrorCode, len(Registry))
)

func init() {
	for _, c := range Registry {
		byNumeric[c.Numeric] = c
		if _, ok := byGRPC[c.GRPC]; !ok {
			byGRPC[c.GRPC] = c
		}
	}
}

// ByNumeric returns the family registered under the numeric code.
func ByNumeric(n int32) (ErrorCode, bool) {
	c, ok := byNumeric[n]
	return c, ok
}

// ByGRPC returns the family a gRPC status code maps back to.
func ByGRPC(c grpccodes.Code) (ErrorCode, bool) {
	ec, ok := byGRPC[c]
	return ec, ok
}

// GRPCFor returns the gRPC code for a numeric code, falling back to Unknown.
func GRPCFor(n int32) grpccodes.Code {
	if c, ok := byNumeric[n]; ok {
		return c.GRPC
	}
	return grpccodes.Unknown
}

// Numerics returns the registered numeric codes in ascending order.
func Numerics() []int32 {
	out := make([]int32, 0, len(Registry))
	for _, c := range Registry {
		out = append(out, c.Numeric)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
