package export

import (
	"bytes"
	"html/template"
	"strconv"

	"backoffice/internal/catalog"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// Printable HTML documents, opened in a new window for printing. Styles
// stay inline so the document is self-contained.

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; border-bottom: 2px solid #2a6; padding-bottom: .4rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #bbb; padding: .35rem .6rem; font-size: .85rem; text-align: left; }
th { background: #eef7f1; }
.meta { color: #666; font-size: .8rem; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generado el {{.GeneratedAt}}</p>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
</table>
</body>
</html>
`))

type reportData struct {
	Title       string
	GeneratedAt string
	Columns     []string
	Rows        [][]string
}

func renderReport(data reportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ClientRosterHTML is the printable client roster.
func ClientRosterHTML(clients []models.Client) ([]byte, error) {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		vip := ""
		if c.VIP {
			vip = "VIP"
		}
		rows = append(rows, []string{c.Name, c.Email, c.Phone, c.Status, vip})
	}
	return renderReport(reportData{
		Title:       "Listado de clientes",
		GeneratedAt: utils.Today(),
		Columns:     []string{"Nombre", "Email", "Teléfono", "Estado", ""},
		Rows:        rows,
	})
}

// DaySheetHTML is the printable sheet of one day's reservations, the
// document guides take to the meeting point.
func DaySheetHTML(date string, reservations []models.Reservation) ([]byte, error) {
	days := catalog.GroupByDate(reservations)
	var dayRes []models.Reservation
	for _, d := range days {
		if d.Date == date {
			dayRes = d.Reservations
			break
		}
	}

	rows := make([][]string, 0, len(dayRes))
	for _, r := range dayRes {
		rows = append(rows, []string{
			r.Time,
			r.ExcursionName,
			r.ClientName,
			r.Phone,
			strconv.Itoa(r.Adults) + " + " + strconv.Itoa(r.Children),
			utils.FormatEuro(r.TotalPrice),
			r.Status,
			r.MeetingPoint,
		})
	}
	return renderReport(reportData{
		Title:       "Reservas del " + date,
		GeneratedAt: utils.Today(),
		Columns:     []string{"Hora", "Excursión", "Cliente", "Teléfono", "Adultos + Niños", "Importe", "Estado", "Punto de encuentro"},
		Rows:        rows,
	})
}
