package format

import (
	"fmt"
	"strings"

	"trm/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	zeroPhrase    = "Cero"
	thousandWord  = "Mil"
	connectorWord = "y"
	centsJoiner   = "Con"

	unitSingular  = "Peso"
	unitPlural    = "Pesos"
	centsSingular = "Centavo"
	centsPlural   = "Centavos"
)

var maxWordsValue = decimal.NewFromInt(1_000_000)

var (
	unitWords    = [...]string{"", "Un", "Dos", "Tres", "Cuatro", "Cinco", "Seis", "Siete", "Ocho", "Nueve"}
	tensWords    = [...]string{"", "Diez", "Veinte", "Treinta", "Cuarenta", "Cincuenta", "Sesenta", "Setenta", "Ochenta", "Noventa"}
	hundredWords = [...]string{"", "Ciento", "Doscientos", "Trescientos", "Cuatrocientos", "Quinientos", "Seiscientos", "Setecientos", "Ochocientos", "Novecientos"}
)

// irregularBlocks hold every three-digit block whose wording is not built
// from the unit, tens and hundreds tables.
var irregularBlocks = map[int64]string{
	11: "Once", 12: "Doce", 13: "Trece", 14: "Catorce", 15: "Quince",
	16: "Dieciséis", 17: "Diecisiete", 18: "Dieciocho", 19: "Diecinueve",
	21: "Veintiún", 22: "Veintidós", 23: "Veintitrés", 24: "Veinticuatro", 25: "Veinticinco",
	26: "Veintiséis", 27: "Veintisiete", 28: "Veintiocho", 29: "Veintinueve",
	100: "Cien",
}

// thousandsMultipliers holds the irregular thousands phrases; other
// multipliers render as "<block> Mil".
var thousandsMultipliers = map[int64]string{
	1: thousandWord,
}

// NumberToWords spells a non-negative amount of pesos in Spanish, e.g.
// 4100.25 -> "Cuatro Mil Cien Pesos Con Veinticinco Centavos". The amount is
// rounded to cents first. Amounts of a million or more are rejected.
func NumberToWords(value decimal.Decimal) (string, error) {
	if value.IsNegative() {
		return "", fmt.Errorf("amount %s is negative: %w", value, domain.ErrInvalidInput)
	}
	rounded := value.Round(2)
	if rounded.GreaterThanOrEqual(maxWordsValue) {
		return "", fmt.Errorf("amount %s exceeds %s: %w", value, maxWordsValue, domain.ErrInvalidInput)
	}
	if rounded.IsZero() {
		return zeroPhrase, nil
	}

	whole := rounded.Truncate(0)
	units := whole.IntPart()
	cents := rounded.Sub(whole).Shift(2).IntPart()

	phrase := []string{integerWords(units), plural(units, unitSingular, unitPlural)}
	if cents > 0 {
		phrase = append(phrase, centsJoiner, blockWords(cents), plural(cents, centsSingular, centsPlural))
	}
	return strings.Join(phrase, " "), nil
}

func integerWords(n int64) string {
	if n == 0 {
		return zeroPhrase
	}
	thousands, rest := n/1000, n%1000

	var parts []string
	if thousands > 0 {
		if w, ok := thousandsMultipliers[thousands]; ok {
			parts = append(parts, w)
		} else {
			parts = append(parts, blockWords(thousands), thousandWord)
		}
	}
	if rest > 0 {
		parts = append(parts, blockWords(rest))
	}
	return strings.Join(parts, " ")
}

// blockWords spells 1..999.
func blockWords(n int64) string {
	if w, ok := irregularBlocks[n]; ok {
		return w
	}

	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundredWords[h])
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if w, ok := irregularBlocks[n]; ok {
		return w
	}
	tens, unit := n/10, n%10
	switch {
	case tens == 0:
		return unitWords[unit]
	case unit == 0:
		return tensWords[tens]
	default:
		return tensWords[tens] + " " + connectorWord + " " + unitWords[unit]
	}
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
