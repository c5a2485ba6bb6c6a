package report

import (
	"time"

	"github.com/jhoicas/comercio-api/internal/domain"
)

// Paginate recorta el resultado YA agregado y ordenado. El conteo reportado de
// un reporte es siempre el total pre-paginación; este helper solo corta.
// limit <= 0 significa sin límite.
func Paginate[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

// ParseWindow interpreta la ventana de fechas de un reporte. Ambas cotas son
// opcionales e inclusivas: end cubre hasta el final de ese día. Una fecha
// malformada es error de validación y nunca llega al almacén.
func ParseWindow(start, end string) (from, to *time.Time, err error) {
	if start != "" {
		t, perr := time.ParseInLocation("2006-01-02", start, time.UTC)
		if perr != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		from = &t
	}
	if end != "" {
		t, perr := time.ParseInLocation("2006-01-02", end, time.UTC)
		if perr != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		to = &t
	}
	return from, to, nil
}
