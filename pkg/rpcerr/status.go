package rpcerr

import (
	"strconv"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Goden-Gun/rpcerr-lib/pkg/codes"
)

// detail field names carried in the structpb status detail.
const (
	fieldKind    = "kind"
	fieldID      = "id"
	fieldCode    = "code"
	fieldParam   = "param"
	fieldX       = "x"
	fieldRPC     = "rpc"
	fieldUnknown = "unknown"
	fieldMessage = "message"
)

// GRPCStatus lets status.FromError convert a classified error. The numeric
// code family picks the gRPC code; the full classification rides along as a
// structpb detail so FromStatus can restore it on the other side of the hop.
func (e *Error) GRPCStatus() *status.Status {
	if e == nil {
		return nil
	}
	st := status.New(codes.GRPCFor(e.Code), e.Error())
	fields := map[string]any{
		fieldKind:    string(e.Kind),
		fieldID:      e.ID,
		fieldCode:    strconv.FormatInt(int64(e.Code), 10),
		fieldX:       e.X,
		fieldRPC:     e.RPC,
		fieldUnknown: e.Unknown,
		fieldMessage: e.Message,
	}
	if e.Param != nil {
		fields[fieldParam] = strconv.FormatInt(*e.Param, 10)
	}
	detail, err := structpb.NewStruct(fields)
	if err != nil {
		return st
	}
	withDetail, err := st.WithDetails(detail)
	if err != nil {
		return st
	}
	return withDetail
}

// FromStatus restores a classified error from a status produced by
// GRPCStatus. ok is false when st carries no classification detail.
func FromStatus(st *status.Status) (*Error, bool) {
	if st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		s, isStruct := d.(*structpb.Struct)
		if !isStruct {
			continue
		}
		f := s.GetFields()
		kind := f[fieldKind].GetStringValue()
		if kind == "" {
			continue
		}
		code, err := strconv.ParseInt(f[fieldCode].GetStringValue(), 10, 32)
		if err != nil {
			continue
		}
		e := &Error{
			Kind:    Kind(kind),
			ID:      f[fieldID].GetStringValue(),
			Code:    int32(code),
			X:       f[fieldX].GetStringValue(),
			RPC:     f[fieldRPC].GetStringValue(),
			Unknown: f[fieldUnknown].GetBoolValue(),
			Message: f[fieldMessage].GetStringValue(),
		}
		if raw := f[fieldParam].GetStringValue(); raw != "" {
			if p, err := strconv.ParseInt(raw, 10, 64); err == nil {
				e.Param = &p
			}
		}
		return e, true
	}
	return nil, false
}
