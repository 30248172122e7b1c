package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	grpccodes "google.golang.org/grpc/codes"
)

func TestByNumeric(t *testing.T) {
	c, ok := ByNumeric(420)
	assert.True(t, ok)
	assert.Equal(t, "FLOOD", c.Symbol)

	_, ok = ByNumeric(999)
	assert.False(t, ok)
}

func TestGRPCMapping(t *testing.T) {
	for _, c := range Registry {
		back, ok := ByGRPC(GRPCFor(c.Numeric))
		assert.True(t, ok, c.Symbol)
		assert.Equal(t, c, back)
	}
	assert.Equal(t, grpccodes.Unknown, GRPCFor(999))

	_, ok := ByGRPC(grpccodes.NotFound)
	assert.False(t, ok)
}

func TestNumerics(t *testing.T) {
	assert.Equal(t, []int32{303, 400, 401, 403, 406, 420, 500, 520}, Numerics())
}
