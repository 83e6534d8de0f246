// Package whatsapp construye deep-links click-to-chat (wa.me).
// Emitir el enlace no garantiza nada: la entrega depende de que el usuario
// lo abra y envíe el mensaje desde su propio WhatsApp.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tu-usuario/gestion-pro/internal/application/orders"
)

var _ orders.MessageLinkBuilder = (*DeepLinkBuilder)(nil)

// DeepLinkBuilder implementa orders.MessageLinkBuilder.
type DeepLinkBuilder struct {
	baseURL     string // normalmente https://wa.me
	countryCode string // prefijo de país sin "+", ej. "972"
}

// NewDeepLinkBuilder construye el builder con la configuración de la app.
func NewDeepLinkBuilder(baseURL, countryCode string) *DeepLinkBuilder {
	return &DeepLinkBuilder{baseURL: strings.TrimRight(baseURL, "/"), countryCode: countryCode}
}

// BuildLink normaliza el teléfono y devuelve la URL wa.me con el mensaje escapado.
// Normalización: quitar guiones y espacios, quitar el 0 inicial de números
// locales y anteponer el prefijo de país si no lo lleva ya.
func (b *DeepLinkBuilder) BuildLink(phone, message string) (string, error) {
	normalized := b.NormalizePhone(phone)
	if normalized == "" {
		return "", fmt.Errorf("teléfono vacío tras normalizar %q", phone)
	}
	link := fmt.Sprintf("%s/%s", b.baseURL, normalized)
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link, nil
}

// NormalizePhone convierte un teléfono local en formato internacional sin "+".
// "050-123 4567" con prefijo 972 produce "972501234567". Un número que ya
// empieza por el prefijo de país se deja como está.
func (b *DeepLinkBuilder) NormalizePhone(phone string) string {
	cleaned := strings.NewReplacer("-", "", " ", "", "+", "", "(", "", ")", "").Replace(phone)
	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, b.countryCode) {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "0")
	return b.countryCode + cleaned
}
