// Package format renders amounts, percentages and dates the way es-CO readers
// expect them.
package format

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const (
	groupSeparator   = "."
	decimalSeparator = ","
)

var weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatAmount renders value with two decimals and thousands grouping,
// e.g. 4100.5 -> "4.100,50".
func FormatAmount(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return sign + group(intPart) + decimalSeparator + fracPart
}

// FormatPercent renders a percentage with two decimals, e.g. "1,23%".
func FormatPercent(value decimal.Decimal) string {
	return FormatAmount(value) + "%"
}

// FormatDate renders the long form, e.g. "martes, 2 de enero de 2024".
func FormatDate(d civil.Date) string {
	wd := d.In(time.UTC).Weekday()
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[wd], d.Day, months[d.Month-1], d.Year)
}

// FormatShortDate renders DD/MM/YYYY.
func FormatShortDate(d civil.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
