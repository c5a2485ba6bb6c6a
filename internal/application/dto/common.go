package dto

// StatusResponse cuerpo estándar {status, message} para errores y confirmaciones.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ReportEnvelope respuesta JSON estándar de un reporte: las filas paginadas
// más el total pre-paginación.
type ReportEnvelope struct {
	Report any `json:"report"`
	Count  int `json:"count"`
}

// ReportQuery parámetros compartidos por los reportes: ventana de fechas
// inclusiva, paginación y formato de salida.
// EndDate cubre hasta las 23:59:59 de ese día, no hasta la medianoche.
type ReportQuery struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD, opcional
	EndDate   string `query:"end_date"`   // YYYY-MM-DD, opcional
	Format    string `query:"format"`     // json (default) | csv
	Limit     int    `query:"limit"`      // 0 = sin límite
	Offset    int    `query:"offset"`
}
