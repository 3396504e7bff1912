package domain

import "time"

// Freshness clasificación de frescura de un producto según su fecha de
// vencimiento. Es un helper de vista: el backend no la conoce.
type Freshness string

const (
	FreshnessUnknown  Freshness = "—"
	FreshnessFresh    Freshness = "FRESH"
	FreshnessExpiring Freshness = "EXPIRING"
	FreshnessExpired  Freshness = "EXPIRED"
)

// expiringWindowDays días calendario de anticipación con los que un producto
// se considera próximo a vencer.
const expiringWindowDays = 7

// ClassifyExpiry clasifica una fecha de vencimiento en formato YYYY-MM-DD
// relativa a now. Fecha vacía o ilegible clasifica como desconocida: la vista
// muestra un guion, nunca un error.
func ClassifyExpiry(expiryDate string, now time.Time) Freshness {
	if expiryDate == "" {
		return FreshnessUnknown
	}
	expiry, err := time.ParseInLocation("2006-01-02", expiryDate, now.Location())
	if err != nil {
		return FreshnessUnknown
	}
	// El producto vence al final de su día; la ventana de aviso se cuenta en
	// días calendario: a 7 días está por vencer, a 8 sigue fresco.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case expiry.Add(24*time.Hour - time.Nanosecond).Before(now):
		return FreshnessExpired
	case !expiry.After(today.AddDate(0, 0, expiringWindowDays)):
		return FreshnessExpiring
	default:
		return FreshnessFresh
	}
}
