package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/orders"
)

func TestFallbackNumber(t *testing.T) {
	cases := []struct {
		current int
		want    string
	}{
		{0, "1001"},     // tabla vacía: el primer número es 1001
		{500, "1001"},   // por debajo del piso también
		{1001, "1002"},  // incremento normal
		{1005, "1006"},  // el máximo manda aunque haya huecos
		{9999, "10000"}, // a partir de 5 dígitos no se recorta
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, orders.FallbackNumber(tc.current),
			"FallbackNumber(%d)", tc.current)
	}
}

func TestNumberGenerator_UsaLaSecuenciaSiFunciona(t *testing.T) {
	gen := orders.NewNumberGenerator(testLogger())
	seq := &fakeSeqRepo{nextCustomer: 1041, nextOrder: 2000}
	customers := newFakeCustomerRepo()
	ordersRepo := newFakeOrderRepo()

	code, err := gen.CustomerCode(context.Background(), seq, customers)
	require.NoError(t, err)
	assert.Equal(t, "1042", code)

	number, err := gen.OrderNumber(context.Background(), seq, ordersRepo)
	require.NoError(t, err)
	assert.Equal(t, "2001", number)
}

func TestNumberGenerator_FallbackCuandoLaSecuenciaFalla(t *testing.T) {
	gen := orders.NewNumberGenerator(testLogger())
	seq := &fakeSeqRepo{fail: true}

	customers := newFakeCustomerRepo()
	customers.maxCode = 1005
	code, err := gen.CustomerCode(context.Background(), seq, customers)
	require.NoError(t, err)
	assert.Equal(t, "1006", code, "el fallback escanea el máximo existente")

	ordersRepo := newFakeOrderRepo()
	number, err := gen.OrderNumber(context.Background(), seq, ordersRepo)
	require.NoError(t, err)
	assert.Equal(t, "1001", number, "sin pedidos el fallback arranca en 1001")
}
