package fallible_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pure-Company/fallible"
)

func TestFunc_Bind(t *testing.T) {
	atoi := fallible.Func[string, int](strconv.Atoi)

	v, err := atoi.Bind("5").Produce()
	assert.NoError(t, err)
	assert.Equal(t, 5, v)

	assert.Equal(t, -1, fallible.WrapProducer(atoi.Bind("x")).OrElse(-1))
}

func TestSupplier(t *testing.T) {
	assert.Equal(t, "v", fallible.Value("v").Get())

	var s fallible.Supplier[int]
	assert.Equal(t, 0, s.Get())
}

func TestHandler_NilHandle(t *testing.T) {
	var h fallible.Handler
	assert.NotPanics(t, func() {
		h.Handle(errBoom)
	})
}
