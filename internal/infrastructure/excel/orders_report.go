// Package excel genera el informe de pedidos en formato XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

var reportHeaders = []interface{}{
	"N° Pedido", "Fecha", "Código cliente", "Cliente", "Teléfono",
	"Subtotal", "IVA", "Total", "Estado",
}

// OrdersReport produce el listado de pedidos como hoja de cálculo.
type OrdersReport struct{}

// NewOrdersReport construye el generador.
func NewOrdersReport() *OrdersReport { return &OrdersReport{} }

// Generate devuelve los bytes del XLSX con una fila por pedido.
// Cada pedido debe venir con su cliente cargado.
func (g *OrdersReport) Generate(orders []*entity.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Pedidos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, o := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := orderRow(o)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 14)
	f.SetColWidth(sheet, "D", "D", 30)
	f.SetColWidth(sheet, "E", "E", 18)
	f.SetColWidth(sheet, "F", "H", 12)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir informe: %w", err)
	}
	return buf.Bytes(), nil
}

func orderRow(o *entity.Order) []interface{} {
	code, name, phone := "", "", ""
	if o.Customer != nil {
		code, name, phone = o.Customer.CustomerCode, o.Customer.Name, o.Customer.Phone
	}
	return []interface{}{
		o.OrderNumber, o.OrderDate.Format("02/01/2006"), code, name, phone,
		o.TotalAmount.InexactFloat64(), o.TaxAmount.InexactFloat64(), o.FinalAmount.InexactFloat64(),
		o.Status,
	}
}
