package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/idrisalani/knlLogistics/internal/entity"
)

// PDF renders invoice snapshots into A4 documents. It only formats what the
// snapshot carries; totals arrive precomputed.
type PDF struct {
	companyName    string
	companyAddress string
	companyPhone   string
	companyEmail   string
	bankDetails    string
}

func NewPDF(companyName, companyAddress, companyPhone, companyEmail, bankDetails string) *PDF {
	return &PDF{
		companyName:    companyName,
		companyAddress: companyAddress,
		companyPhone:   companyPhone,
		companyEmail:   companyEmail,
		bankDetails:    bankDetails,
	}
}

func (p *PDF) RenderInvoice(snapshot entity.InvoiceSnapshot) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	p.header(doc, snapshot)
	p.parties(doc, snapshot)
	p.itemsTable(doc, snapshot)
	p.totalsBlock(doc, snapshot)
	p.footer(doc, snapshot)

	var buf bytes.Buffer

	err := doc.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("render pdf for invoice %q: %w", snapshot.Number, err)
	}

	return buf.Bytes(), nil
}

func (p *PDF) header(doc *fpdf.Fpdf, s entity.InvoiceSnapshot) {
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(120, 10, p.companyName)

	title := "INVOICE"
	if s.Kind == entity.InvoiceKindManifest {
		title = "MANIFEST INVOICE"
	}

	doc.Cell(60, 10, title)
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 9)
	doc.Cell(120, 5, p.companyAddress)
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(60, 5, s.Number)
	doc.Ln(5)

	doc.SetFont("Helvetica", "", 9)
	doc.Cell(120, 5, fmt.Sprintf("%s  %s", p.companyPhone, p.companyEmail))
	doc.Cell(60, 5, string(s.Status))
	doc.Ln(12)
}

func (p *PDF) parties(doc *fpdf.Fpdf, s entity.InvoiceSnapshot) {
	doc.SetFont("Helvetica", "B", 10)
	doc.Cell(95, 5, "Bill To:")
	doc.Cell(95, 5, "Details:")
	doc.Ln(5)

	doc.SetFont("Helvetica", "", 9)

	billTo := "-"
	if s.Client != nil {
		parts := []string{s.Client.Name}
		if s.Client.AddressLine != "" {
			parts = append(parts, s.Client.AddressLine)
		}

		if s.Client.State != "" {
			parts = append(parts, s.Client.State)
		}

		billTo = strings.Join(parts, ", ")
	}

	details := fmt.Sprintf("Issued: %s", s.IssueDate.Format("2 Jan 2006"))
	if s.DueDate != nil {
		details += fmt.Sprintf("   Due: %s (%s)", s.DueDate.Format("2 Jan 2006"), s.PaymentTerms)
	}

	doc.Cell(95, 5, billTo)
	doc.Cell(95, 5, details)
	doc.Ln(12)
}

func (p *PDF) itemsTable(doc *fpdf.Fpdf, s entity.InvoiceSnapshot) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(90, 7, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(25, 7, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 7, "Unit Price", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 9)

	for _, item := range s.Items {
		doc.CellFormat(90, 7, item.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(25, 7, item.Quantity.String(), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, money(item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, money(item.Total), "1", 1, "R", false, 0, "")
	}

	doc.Ln(4)
}

func (p *PDF) totalsBlock(doc *fpdf.Fpdf, s entity.InvoiceSnapshot) {
	rows := []struct {
		label string
		value decimal.Decimal
		bold  bool
	}{
		{"Subtotal", s.Subtotal, false},
		{fmt.Sprintf("VAT (%s%%)", s.TaxRatePercent), s.TaxAmount, false},
		{"Total", s.Total, true},
		{"Amount Paid", s.AmountPaid, false},
		{"Balance Due", s.Outstanding, true},
	}

	for _, row := range rows {
		style := ""
		if row.bold {
			style = "B"
		}

		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(150, 6, row.label, "", 0, "R", false, 0, "")
		doc.CellFormat(40, 6, money(row.value), "", 1, "R", false, 0, "")
	}

	doc.Ln(6)
}

func (p *PDF) footer(doc *fpdf.Fpdf, s entity.InvoiceSnapshot) {
	if p.bankDetails != "" {
		doc.SetFont("Helvetica", "B", 9)
		doc.Cell(190, 5, "Payment Details")
		doc.Ln(5)
		doc.SetFont("Helvetica", "", 9)
		doc.MultiCell(190, 5, p.bankDetails, "", "L", false)
		doc.Ln(4)
	}

	if s.Notes != "" {
		doc.SetFont("Helvetica", "I", 9)
		doc.MultiCell(190, 5, s.Notes, "", "L", false)
	}
}

// money renders an amount with an ASCII currency code: the core PDF fonts have
// no naira glyph.
func money(d decimal.Decimal) string {
	return strings.Replace(entity.FormatNaira(d), "₦", "NGN ", 1)
}
