// Package printdoc genera la vista imprimible del pedido: un documento HTML
// autónomo con dirección RTL pensado para el diálogo de impresión del navegador.
package printdoc

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

var printer = message.NewPrinter(language.Hebrew)

// formatAmount formatea un importe con separadores de miles según el locale.
func formatAmount(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2), number.MinFractionDigits(2)))
}

// formatWhole formatea sin decimales (cantidades, porcentaje de IVA).
func formatWhole(d decimal.Decimal) string {
	return d.StringFixed(0)
}

var docTemplate = template.Must(template.New("order").Funcs(template.FuncMap{
	"amount": formatAmount,
	"whole":  formatWhole,
}).Parse(`<!DOCTYPE html>
<html lang="he" dir="rtl">
<head>
<meta charset="utf-8">
<title>הזמנה {{.Order.OrderNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 2rem; color: #111; }
  h1 { font-size: 1.4rem; margin-bottom: 0; }
  .meta { color: #555; margin-bottom: 1.5rem; }
  table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
  th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: right; }
  th { background: #f3f4f6; }
  .totals { margin-top: 1rem; width: 40%; margin-inline-start: auto; }
  .totals td { border: none; }
  .grand { font-weight: bold; font-size: 1.1rem; }
  @media print { body { margin: 0.5rem; } }
</style>
</head>
<body onload="window.print()">
<h1>הזמנה מס' {{.Order.OrderNumber}}</h1>
<div class="meta">
  <div>{{.Customer.Name}} ({{.Customer.CustomerCode}})</div>
  <div>{{.Customer.Phone}}</div>
  {{if .Customer.Address}}<div>{{.Customer.Address}} {{.Customer.City}}</div>{{end}}
  <div>{{.Order.OrderDate.Format "02/01/2006"}}</div>
</div>
<table>
  <thead>
    <tr><th>כמות</th><th>תיאור</th><th>מחיר יחידה</th><th>סה"כ</th></tr>
  </thead>
  <tbody>
  {{range .Order.Items}}
    <tr>
      <td>{{whole .Quantity}}</td>
      <td>{{.Description}}</td>
      <td>{{amount .UnitPrice}}</td>
      <td>{{amount .TotalPrice}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
<table class="totals">
  <tr><td>סכום ביניים</td><td>{{amount .Order.TotalAmount}}</td></tr>
  <tr><td>מע"מ {{whole .Order.TaxPercent}}%</td><td>{{amount .Order.TaxAmount}}</td></tr>
  <tr class="grand"><td>סה"כ לתשלום</td><td>{{amount .Order.FinalAmount}}</td></tr>
</table>
</body>
</html>`))

// Renderer produce el HTML imprimible de un pedido.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// RenderOrder devuelve el documento HTML del pedido con su cliente.
func (r *Renderer) RenderOrder(order *entity.Order, customer *entity.Customer) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Order    *entity.Order
		Customer *entity.Customer
	}{order, customer}
	if err := docTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("printdoc: render pedido: %w", err)
	}
	return buf.Bytes(), nil
}
