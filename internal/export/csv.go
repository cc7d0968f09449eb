// Package export builds the downloadable artifacts the dashboard
// offers: a CSV of the client list, printable HTML report documents and
// a PDF voucher per reservation. Everything is assembled in memory from
// the lists the stores already hold.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// ClientsCSV renders the client list as CSV and returns the bytes plus
// a dated filename.
func ClientsCSV(clients []models.Client) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"ID", "Nombre", "Email", "Teléfono", "Dirección",
		"Fecha registro", "Estado", "VIP", "Reservas", "Última reserva",
		"Categorías preferidas", "Notas",
	}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, c := range clients {
		vip := "No"
		if c.VIP {
			vip = "Sí"
		}
		row := []string{
			c.ID,
			c.Name,
			c.Email,
			c.Phone,
			c.Address,
			c.RegisteredAt,
			c.Status,
			vip,
			strconv.Itoa(c.ReservationCount),
			c.LastReservation,
			strings.Join(c.PreferredCategories, "; "),
			c.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "clientes_" + utils.Today() + ".csv", nil
}
