package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// ReservationVoucherPDF builds the printable voucher the client shows
// at the meeting point. Returns the PDF bytes and a filename.
func ReservationVoucherPDF(r models.Reservation) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bono de reserva", false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("BONO DE RESERVA"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reserva        : %s", safe(r.ID, "-")),
		fmt.Sprintf("Cliente        : %s", safe(r.ClientName, "-")),
		fmt.Sprintf("Excursión      : %s", safe(r.ExcursionName, "-")),
		fmt.Sprintf("Fecha / Hora   : %s %s", safe(r.Date, "-"), safe(r.Time, "-")),
		fmt.Sprintf("Adultos        : %d", r.Adults),
		fmt.Sprintf("Niños          : %d", r.Children),
		fmt.Sprintf("Importe total  : %s", utils.FormatEuro(r.TotalPrice)),
		fmt.Sprintf("Estado         : %s", safe(r.Status, "-")),
		fmt.Sprintf("Punto encuentro: %s", safe(r.MeetingPoint, "-")),
		fmt.Sprintf("Contacto       : %s / %s", safe(r.Email, "-"), safe(r.Phone, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	if strings.TrimSpace(r.Comments) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr("Comentarios: "+r.Comments), "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Presente este bono al guía en el punto de encuentro. Llegue 15 minutos antes de la hora indicada."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("bono_%s.pdf", safeFilenamePart(r.ID))
	return buf.Bytes(), name, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "reserva"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_")
	return replacer.Replace(s)
}
