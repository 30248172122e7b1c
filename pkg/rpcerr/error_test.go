package rpcerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func int64p(v int64) *int64 { return &v }

func floodWait() *Error {
	return &Error{
		Kind:    "FLOOD_WAIT",
		ID:      "FLOOD_WAIT_X",
		Code:    420,
		Param:   int64p(5),
		X:       "5",
		RPC:     "messages.SendMessage",
		Message: "A wait of {x} seconds is required",
	}
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, `[420 FLOOD_WAIT_X]: A wait of 5 seconds is required (caused by "messages.SendMessage")`, floodWait().Error())

	noRPC := floodWait()
	noRPC.RPC = ""
	assert.Equal(t, "[420 FLOOD_WAIT_X]: A wait of 5 seconds is required", noRPC.Error())
}

func TestUnknown(t *testing.T) {
	err := Unknown(Report{Code: 999, Message: "SOMETHING_ODD"}, "help.GetConfig")

	assert.Equal(t, KindUnknown, err.Kind)
	assert.Equal(t, int32(520), err.Code)
	assert.True(t, err.Unknown)
	assert.Nil(t, err.Param)
	assert.Equal(t, "[999 SOMETHING_ODD]", err.X)
	assert.Equal(t, `[520 UNKNOWN_ERROR]: [999 SOMETHING_ODD] (caused by "help.GetConfig")`, err.Error())
}

func TestError_Is(t *testing.T) {
	wrapped := fmt.Errorf("send: %w", floodWait())

	assert.True(t, errors.Is(wrapped, &Error{Kind: "FLOOD_WAIT"}))
	assert.False(t, errors.Is(wrapped, &Error{Kind: "PEER_ID_INVALID"}))
	assert.False(t, errors.Is(wrapped, &Error{}))
	assert.True(t, IsKind(wrapped, "FLOOD_WAIT"))
	assert.False(t, IsUnknown(wrapped))
}

func TestError_NilReceiver(t *testing.T) {
	var e *Error
	assert.Equal(t, "", e.Error())
	assert.Nil(t, e.GRPCStatus())
	_, ok := e.ParamValue()
	assert.False(t, ok)
}

func TestAs(t *testing.T) {
	_, ok := As(errors.New("plain"))
	assert.False(t, ok)

	e, ok := As(fmt.Errorf("wrap: %w", floodWait()))
	require.True(t, ok)
	p, ok := e.ParamValue()
	require.True(t, ok)
	assert.Equal(t, int64(5), p)
}

func TestGRPCStatus_RoundTrip(t *testing.T) {
	original := floodWait()

	st, ok := status.FromError(fmt.Errorf("call: %w", original))
	require.True(t, ok)
	assert.Equal(t, grpccodes.ResourceExhausted, st.Code())
	assert.Contains(t, st.Message(), original.Error())

	restored, ok := FromStatus(st)
	require.True(t, ok)
	assert.Equal(t, original, restored)
}

func TestGRPCStatus_UnknownCodeFamily(t *testing.T) {
	e := &Error{Kind: "ODD", ID: "ODD", Code: 418, X: "x", Unknown: true}
	st := e.GRPCStatus()
	assert.Equal(t, grpccodes.Unknown, st.Code())

	restored, ok := FromStatus(st)
	require.True(t, ok)
	assert.Nil(t, restored.Param)
	assert.True(t, restored.Unknown)
}

func TestFromStatus_NoDetail(t *testing.T) {
	_, ok := FromStatus(status.New(grpccodes.Internal, "boom"))
	assert.False(t, ok)
	_, ok = FromStatus(nil)
	assert.False(t, ok)
}

func TestUserAndDebugString(t *testing.T) {
	err := fmt.Errorf("send: %w", floodWait())

	assert.Equal(t, "A wait of 5 seconds is required", UserString(err))
	assert.Equal(t, "plain", UserString(errors.New("plain")))
	assert.Equal(t, "", UserString(nil))

	debug := DebugString(err)
	assert.Contains(t, debug, "1: *fmt.wrapError")
	assert.Contains(t, debug, "2: *rpcerr.Error")
	assert.Contains(t, debug, "kind=FLOOD_WAIT | code=420 | param=5")
	assert.Contains(t, debug, `rpc="messages.SendMessage"`)
}
