package whatsapp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/infrastructure/whatsapp"
)

func newBuilder() *whatsapp.DeepLinkBuilder {
	return whatsapp.NewDeepLinkBuilder("https://wa.me/", "972")
}

func TestNormalizePhone(t *testing.T) {
	b := newBuilder()

	cases := []struct {
		name  string
		phone string
		want  string
	}{
		{"local con guion y espacio", "050-123 4567", "972501234567"},
		{"local sin separadores", "0501234567", "972501234567"},
		{"ya internacional", "972501234567", "972501234567"},
		{"internacional con +", "+972501234567", "972501234567"},
		{"con parentesis", "(050) 123-4567", "972501234567"},
		{"vacio", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.NormalizePhone(tc.phone))
		})
	}
}

func TestBuildLink_MensajeEscapado(t *testing.T) {
	b := newBuilder()

	link, err := b.BuildLink("050-1234567", "Hola María, pedido nº 1001 & listo")
	require.NoError(t, err)

	assert.Equal(t,
		"https://wa.me/972501234567?text=Hola+Mar%C3%ADa%2C+pedido+n%C2%BA+1001+%26+listo",
		link)
}

func TestBuildLink_SinMensaje(t *testing.T) {
	b := newBuilder()

	link, err := b.BuildLink("0501234567", "")
	require.NoError(t, err)

	assert.Equal(t, "https://wa.me/972501234567", link)
}

func TestBuildLink_TelefonoVacio(t *testing.T) {
	b := newBuilder()

	_, err := b.BuildLink("  - ", "hola")

	assert.Error(t, err)
}
