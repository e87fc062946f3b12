package pdf

import (
	"bytes"
	"fmt"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/utils"
	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "02/01/2006"

// Document bundles everything the renderer needs for one invoice.
type Document struct {
	Invoice domain.Invoice
	Client  domain.Client
	Sender  domain.User
}

// Filename returns the suggested download name for an invoice document.
func Filename(invoiceNumber string) string {
	return "factura-" + invoiceNumber + ".pdf"
}

// formatted holds every monetary figure pre-rendered as text. Formatting
// happens before any drawing so an unsupported currency fails the whole
// render instead of producing a partial document.
type formatted struct {
	unitPrices     []string
	itemSubtotals  []string
	subtotal       string
	taxAmount      string
	discountAmount string
	total          string
}

func formatFigures(inv domain.Invoice) (*formatted, error) {
	f := &formatted{
		unitPrices:    make([]string, len(inv.Items)),
		itemSubtotals: make([]string, len(inv.Items)),
	}
	var err error
	for i, item := range inv.Items {
		if f.unitPrices[i], err = utils.FormatCurrency(item.UnitPrice, inv.Currency); err != nil {
			return nil, err
		}
		if f.itemSubtotals[i], err = utils.FormatCurrency(item.Subtotal, inv.Currency); err != nil {
			return nil, err
		}
	}
	if f.subtotal, err = utils.FormatCurrency(inv.Subtotal, inv.Currency); err != nil {
		return nil, err
	}
	if f.taxAmount, err = utils.FormatCurrency(inv.TaxAmount, inv.Currency); err != nil {
		return nil, err
	}
	if f.discountAmount, err = utils.FormatCurrency(inv.DiscountAmount, inv.Currency); err != nil {
		return nil, err
	}
	if f.total, err = utils.FormatCurrency(inv.Total, inv.Currency); err != nil {
		return nil, err
	}
	return f, nil
}

// RenderInvoice produces the printable A4 document for an invoice. The
// returned bytes are a complete PDF; on any error no output is produced.
func RenderInvoice(doc Document) ([]byte, error) {
	inv := doc.Invoice
	if len(inv.Items) == 0 {
		return nil, fmt.Errorf("%w: invoice %s has no items", apperrors.ErrRender, inv.InvoiceID)
	}
	figures, err := formatFigures(inv)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	// Column layout: description, quantity, unit price, line subtotal.
	const (
		colDesc  = 90.0
		colQty   = 20.0
		colPrice = 30.0
		colSub   = 34.0
	)

	// Header, right aligned
	pdf.SetTextColor(68, 68, 68)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "FACTURA", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Factura #: "+inv.InvoiceNumber), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, tr("Fecha: "+inv.IssueDate.Format(dateLayout)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, tr("Vencimiento: "+inv.DueDate.Format(dateLayout)), "", 1, "R", false, 0, "")

	// Sender block
	pdf.SetY(18)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(100, 6, tr(doc.Sender.SenderName()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if doc.Sender.Address != "" {
		pdf.CellFormat(100, 5, tr(doc.Sender.Address), "", 1, "L", false, 0, "")
	}
	if doc.Sender.City != "" || doc.Sender.State != "" || doc.Sender.ZipCode != "" {
		pdf.CellFormat(100, 5, tr(fmt.Sprintf("%s, %s %s", doc.Sender.City, doc.Sender.State, doc.Sender.ZipCode)), "", 1, "L", false, 0, "")
	}
	if doc.Sender.TaxID != "" {
		pdf.CellFormat(100, 5, tr("RFC/ID: "+doc.Sender.TaxID), "", 1, "L", false, 0, "")
	}

	// Client block
	pdf.SetY(56)
	pdf.SetFont("Helvetica", "BU", 10)
	pdf.CellFormat(100, 5, tr("FACTURAR A:"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(100, 6, tr(doc.Client.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if doc.Client.Address != "" {
		pdf.CellFormat(100, 5, tr(doc.Client.Address), "", 1, "L", false, 0, "")
	}
	if doc.Client.City != "" || doc.Client.State != "" {
		pdf.CellFormat(100, 5, tr(fmt.Sprintf("%s, %s", doc.Client.City, doc.Client.State)), "", 1, "L", false, 0, "")
	}
	if doc.Client.Email != "" {
		pdf.CellFormat(100, 5, tr(doc.Client.Email), "", 1, "L", false, 0, "")
	}

	// Item table
	pdf.SetY(95)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colDesc, 7, tr("Descripción"), "", 0, "L", false, 0, "")
	pdf.CellFormat(colQty, 7, tr("Cant."), "", 0, "R", false, 0, "")
	pdf.CellFormat(colPrice, 7, tr("Precio"), "", 0, "R", false, 0, "")
	pdf.CellFormat(colSub, 7, tr("Subtotal"), "", 1, "R", false, 0, "")
	pdf.SetDrawColor(170, 170, 170)
	pdf.Line(18, pdf.GetY(), 192, pdf.GetY())

	pdf.SetFont("Helvetica", "", 10)
	for i, item := range inv.Items {
		pdf.CellFormat(colDesc, 7, tr(item.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 7, item.Quantity.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(colPrice, 7, figures.unitPrices[i], "", 0, "R", false, 0, "")
		pdf.CellFormat(colSub, 7, figures.itemSubtotals[i], "", 1, "R", false, 0, "")
	}
	pdf.Line(18, pdf.GetY(), 192, pdf.GetY())

	// Totals, right aligned against the last two columns
	totalsRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(colDesc+colQty, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(colPrice, 7, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(colSub, 7, value, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
	totalsRow("Subtotal", figures.subtotal, false)
	totalsRow(fmt.Sprintf("Impuestos (%s%%)", inv.TaxRate.String()), figures.taxAmount, false)
	if inv.DiscountAmount.IsPositive() {
		totalsRow("Descuento", "-"+figures.discountAmount, false)
	}
	totalsRow("TOTAL", figures.total, true)

	// Notes and terms
	if inv.Notes != "" || inv.Terms != "" {
		pdf.Ln(10)
		if inv.Notes != "" {
			pdf.SetFont("Helvetica", "U", 10)
			pdf.CellFormat(0, 5, tr("Notas:"), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.MultiCell(0, 5, tr(inv.Notes), "", "L", false)
			pdf.Ln(3)
		}
		if inv.Terms != "" {
			pdf.SetFont("Helvetica", "U", 10)
			pdf.CellFormat(0, 5, tr("Términos y Condiciones:"), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.MultiCell(0, 5, tr(inv.Terms), "", "L", false)
		}
	}

	// Diagonal watermark on drafts
	if inv.Status == domain.StatusDraft {
		pdf.SetAlpha(0.1, "Normal")
		pdf.SetFont("Helvetica", "B", 100)
		pdf.SetTextColor(255, 0, 0)
		pdf.TransformBegin()
		pdf.TransformRotate(45, 105, 160)
		pdf.Text(25, 175, "BORRADOR")
		pdf.TransformEnd()
		pdf.SetAlpha(1, "Normal")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRender, err)
	}
	return buf.Bytes(), nil
}
