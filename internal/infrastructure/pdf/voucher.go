package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/format"
	"github.com/phpdave11/gofpdf"
)

// VoucherRenderer - PDF ваучер бронирования
type VoucherRenderer struct {
	companyName string
	publicURL   string
}

func NewVoucherRenderer(companyName, publicURL string) *VoucherRenderer {
	return &VoucherRenderer{
		companyName: companyName,
		publicURL:   publicURL,
	}
}

// Render возвращает PDF (A4) с кодом, маршрутом, датой, автомобилем, пассажирами и суммой
func (r *VoucherRenderer) Render(detail *domain.ReservationDetail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Voucher "+detail.Code, true)
	pdf.SetAuthor(r.companyName, true)
	pdf.AddPage()

	// шапка
	pdf.SetFillColor(13, 71, 161)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 14, tr(r.companyName+" - Transfer Voucher"), "", 1, "C", true, 0, "")
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Reservation code: "+detail.Code), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Status: "+string(detail.Status)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Customer", detail.CustomerName},
		{"E-mail", detail.CustomerEmail},
		{"Phone", detail.CustomerPhone},
		{"From", locationName(detail.PickupLocation)},
		{"To", locationName(detail.DropoffLocation)},
		{"Date", format.FormatDateTime(detail.TransferDate)},
		{"Transfer type", string(detail.TransferType)},
		{"Vehicle", vehicleName(detail.Vehicle)},
		{"Passengers", strconv.Itoa(detail.PassengerCount)},
	}
	if detail.FlightNumber != nil && *detail.FlightNumber != "" {
		rows = append(rows, [2]string{"Flight", *detail.FlightNumber})
	}
	for _, e := range detail.Extras {
		rows = append(rows, [2]string{"Extra", fmt.Sprintf("%s (%s)", e.Name, format.FormatCurrency(e.Price, detail.Currency))})
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(243, 246, 250)
	for i, row := range rows {
		fill := i%2 == 0
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, tr(row[0]), "1", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(row[1]), "1", 1, "L", fill, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Total: "+format.FormatCurrency(detail.TotalPrice, detail.Currency)), "", 1, "R", false, 0, "")

	if detail.Notes != nil && *detail.Notes != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr("Notes: "+*detail.Notes), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Please show this voucher to your driver. Reservation details: "+
		r.publicURL+"/reservation?code="+detail.Code), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render voucher: %w", err)
	}
	return buf.Bytes(), nil
}

func locationName(l *domain.Location) string {
	if l == nil {
		return "-"
	}
	if l.Address != nil && *l.Address != "" {
		return l.Name + ", " + *l.Address
	}
	return l.Name
}

func vehicleName(v *domain.Vehicle) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s, %d seats)", v.Name, v.Type, v.Capacity)
}
