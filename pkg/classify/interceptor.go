package classify

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/Goden-Gun/rpcerr-lib/pkg/codes"
	"github.com/Goden-Gun/rpcerr-lib/pkg/metrics"
	"github.com/Goden-Gun/rpcerr-lib/pkg/rpcerr"
	"github.com/Goden-Gun/rpcerr-lib/pkg/tracing"
)

// Trailer keys a server may set to pass the raw report through unchanged.
const (
	TrailerCode    = "x-rpc-error-code"
	TrailerMessage = "x-rpc-error-message"
)

// UnaryClientInterceptor classifies status errors returned by unary calls.
//
// The numeric code is taken from the TrailerCode trailer, then from a
// classification detail attached by rpcerr.Error.GRPCStatus, then from the
// gRPC code family. Statuses with neither trailer nor detail whose gRPC code
// has no family (Canceled, DeadlineExceeded) or that signal a transport
// failure (Unavailable) are returned untouched, as are errors that carry no
// gRPC status.
func UnaryClientInterceptor(c *Classifier) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		ctx = metadata.NewOutgoingContext(ctx, tracing.InjectMetadata(ctx, md.Copy()))

		var trailer metadata.MD
		opts = append(opts, grpc.Trailer(&trailer))
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		st, ok := status.FromError(err)
		if !ok {
			return err
		}
		if e, ok := c.fromStatus(ctx, st, trailer, RPCName(method)); ok {
			return e
		}
		return err
	}
}

func (c *Classifier) fromStatus(ctx context.Context, st *status.Status, trailer metadata.MD, rpc string) (*rpcerr.Error, bool) {
	message := st.Message()
	if v := trailer.Get(TrailerMessage); len(v) > 0 {
		message = v[0]
	}

	if v := trailer.Get(TrailerCode); len(v) > 0 {
		if code, err := strconv.ParseInt(strings.TrimSpace(v[0]), 10, 32); err == nil {
			return c.Classify(ctx, rpcerr.Report{Code: int32(code), Message: message}, rpc), true
		}
	}

	if e, ok := rpcerr.FromStatus(st); ok {
		if e.RPC == "" {
			e.RPC = rpc
		}
		c.observe(ctx, rpcerr.Report{Code: e.Code, Message: message}, e, tierOf(e))
		return e, true
	}

	if st.Code() == grpccodes.Unavailable {
		return nil, false
	}
	family, ok := codes.ByGRPC(st.Code())
	if !ok {
		return nil, false
	}
	return c.Classify(ctx, rpcerr.Report{Code: family.Numeric, Message: message}, rpc), true
}

// tierOf infers the tier an already classified error was resolved at.
func tierOf(e *rpcerr.Error) string {
	switch {
	case e.Kind == rpcerr.KindUnknown:
		return metrics.TierUnknown
	case e.Unknown:
		return metrics.TierCodeDefault
	default:
		return metrics.TierExact
	}
}

// RPCName turns a full gRPC method ("/pkg.Service/Method") into the dotted
// label carried on classified errors ("pkg.Service.Method").
func RPCName(method string) string {
	return strings.ReplaceAll(strings.TrimPrefix(method, "/"), "/", ".")
}
