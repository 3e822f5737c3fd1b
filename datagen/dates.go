package datagen

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinYear is the earliest year produced by [Generator.Date].
const MinYear = 1900

// DateFormat is one of the supported date templates.
type DateFormat int

const (
	YearMonthDay          DateFormat = iota // yyyy-MM-dd
	YearMonthDaySlash                       // yyyy/MM/dd
	YearMonthAbbrDay                        // yyyy-MMM-dd
	YearMonthAbbrDaySlash                   // yyyy/MMM/dd
	DayMonthYear                            // dd-MM-yyyy
	DayMonthYearSlash                       // dd/MM/yyyy
	DayMonthAbbrYear                        // dd-MMM-yyyy
	DayMonthAbbrYearSlash                   // dd/MMM/yyyy
	MonthDayYearSlash                       // MM/dd/yyyy
)

var dateLayouts = [...]string{
	YearMonthDay:          "yyyy-MM-dd",
	YearMonthDaySlash:     "yyyy/MM/dd",
	YearMonthAbbrDay:      "yyyy-MMM-dd",
	YearMonthAbbrDaySlash: "yyyy/MMM/dd",
	DayMonthYear:          "dd-MM-yyyy",
	DayMonthYearSlash:     "dd/MM/yyyy",
	DayMonthAbbrYear:      "dd-MMM-yyyy",
	DayMonthAbbrYearSlash: "dd/MMM/yyyy",
	MonthDayYearSlash:     "MM/dd/yyyy",
}

var monthAbbreviations = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Longest first, so "yyyy" is never read as two "yy".
var dateTokens = []string{"yyyy", "YYYY", "MMM", "yy", "MM", "dd", "DD"}

// Layout returns the template for the format, or an empty string if the format is unknown.
func (f DateFormat) Layout() string {
	if !f.Valid() {
		return ""
	}
	return dateLayouts[f]
}

// Valid reports whether f is one of the declared formats.
func (f DateFormat) Valid() bool {
	return f >= 0 && int(f) < len(dateLayouts)
}

func (f DateFormat) String() string {
	if !f.Valid() {
		return "DateFormat(" + strconv.Itoa(int(f)) + ")"
	}
	return dateLayouts[f]
}

// DateFormats lists every supported format.
func DateFormats() []DateFormat {
	formats := make([]DateFormat, len(dateLayouts))
	for i := range formats {
		formats[i] = DateFormat(i)
	}
	return formats
}

// ParseDateFormat finds the format with the given layout, like "yyyy-MM-dd".
func ParseDateFormat(layout string) (DateFormat, error) {
	for i, l := range dateLayouts {
		if l == layout {
			return DateFormat(i), nil
		}
	}
	return -1, fmt.Errorf("%w: date format %q", ErrUnsupportedValue, layout)
}

// MaxDays returns the number of days in month for the given year, using Gregorian leap year rules.
// An out of range month returns 0.
func MaxDays(month time.Month, year int) int {
	switch month {
	case time.February:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	default:
		return 0
	}
}

// MonthAbbreviation returns the three letter English abbreviation for month.
func MonthAbbreviation(month time.Month) (string, error) {
	if month < time.January || month > time.December {
		return "", fmt.Errorf("%w: month %d is out of range", ErrInvalidArgument, int(month))
	}
	return monthAbbreviations[month-1], nil
}

type calendarDate struct {
	year  int
	month time.Month
	day   int
}

func (d calendarDate) token(tok string) string {
	switch tok {
	case "yyyy", "YYYY":
		return fmt.Sprintf("%04d", d.year)
	case "yy":
		return fmt.Sprintf("%02d", d.year%100)
	case "MMM":
		return monthAbbreviations[d.month-1]
	case "MM":
		return fmt.Sprintf("%02d", int(d.month))
	default:
		return fmt.Sprintf("%02d", d.day)
	}
}

func (d calendarDate) render(template string) string {
	var buf strings.Builder
	for i := 0; i < len(template); {
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(template[i:], tok) {
				buf.WriteString(d.token(tok))
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			buf.WriteByte(template[i])
			i++
		}
	}
	return buf.String()
}

func (g *Generator) calendarDate() calendarDate {
	maxYear := g.now().Year()
	if maxYear < MinYear {
		maxYear = MinYear
	}
	year := int(g.int64Range(MinYear, int64(maxYear)))
	month := time.Month(g.int64Range(1, 12))
	return calendarDate{
		year:  year,
		month: month,
		day:   int(g.int64Range(1, int64(MaxDays(month, year)))),
	}
}

// Date generates a valid calendar date between [MinYear] and the current year, rendered in the given format.
func (g *Generator) Date(format DateFormat) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, format)
	}
	return g.calendarDate().render(dateLayouts[format]), nil
}

// DateLayout renders a generated date into an arbitrary template.
// The tokens yyyy, YYYY, yy, MMM, MM, dd, and DD are replaced, everything else is copied as-is.
func (g *Generator) DateLayout(template string) string {
	return g.calendarDate().render(template)
}

// TimeOfDay generates a time formatted as HH:mm:ss.
func (g *Generator) TimeOfDay() string {
	return fmt.Sprintf("%02d:%02d:%02d", g.rng.IntN(24), g.rng.IntN(60), g.rng.IntN(60))
}

const timestampWindow = 1_000_000_000

// Timestamp generates an ISO-8601 timestamp with millisecond precision, up to 1e9 milliseconds before now.
func (g *Generator) Timestamp() string {
	offset := time.Duration(g.rng.Int64N(timestampWindow+1)) * time.Millisecond
	return g.now().Add(-offset).Format("2006-01-02T15:04:05.000Z07:00")
}

// UnixTimestamp generates seconds since the Unix epoch, up to 1e9 seconds before now.
func (g *Generator) UnixTimestamp() int64 {
	return g.now().Unix() - g.rng.Int64N(timestampWindow+1)
}
