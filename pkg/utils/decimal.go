package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal convierte una cadena a decimal. Una cadena vacía cuenta como
// cero: los formularios de cuadre mandan campos en blanco cuando el
// concepto no aplica al turno.
func ParseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(value)
}
