package helpers

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jakehl/goid"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var bangkok = time.FixedZone("ICT", 7*60*60)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

// LocationThailand is fixed at UTC+7; Thailand has no daylight saving.
func LocationThailand() *time.Location {
	return bangkok
}

// FormatTHB renders an amount like "฿100,001.00".
func FormatTHB(amount decimal.Decimal) string {
	ac := accounting.Accounting{Symbol: "฿", Precision: 2, Thousand: ",", Decimal: "."}
	return ac.FormatMoneyDecimal(amount)
}

// FormatTime renders t in Thai local time with a relative hint, e.g.
// "02-03-2022 20:30:04 (3 hours ago)".
func FormatTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", t.In(LocationThailand()).Format("02-01-2006 15:04:05"), humanize.RelTime(t, now, "ago", "from now"))
}
