package response

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoAmount is rendered where an estimate carries no amount.
const NoAmount = "—"

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatYen renders 1234 as "¥1,234".
func FormatYen(amount int64) string {
	return yenPrinter.Sprintf("¥%d", amount)
}

func FormatAmount(amount *int64) string {
	if amount == nil {
		return NoAmount
	}
	return FormatYen(*amount)
}

func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(locOrUTC(loc)).Format("2006/01/02")
}

func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(locOrUTC(loc)).Format("2006/01/02 15:04")
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
