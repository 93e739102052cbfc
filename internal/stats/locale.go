package stats

import (
	"fmt"
	"strings"
	"time"
)

// Locale holds the user-facing labels the engine and navigator produce.
type Locale struct {
	Code       string
	Today      string
	Yesterday  string
	Last30Days string
	DayPrefix  string
	NoData     string
	Weekdays   [7]string  // short names indexed by time.Weekday
	Months     [12]string // full names, January first
	MonthsAbbr [12]string
}

// Spanish is the default locale.
var Spanish = Locale{
	Code:       "es",
	Today:      "Hoy",
	Yesterday:  "Ayer",
	Last30Days: "Últimos 30 días",
	DayPrefix:  "Día",
	NoData:     "Sin registros",
	Weekdays:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	Months: [12]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	MonthsAbbr: [12]string{"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic"},
}

// English is selected with LOCALE=en.
var English = Locale{
	Code:       "en",
	Today:      "Today",
	Yesterday:  "Yesterday",
	Last30Days: "Last 30 days",
	DayPrefix:  "Day",
	NoData:     "No records",
	Weekdays:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	MonthsAbbr: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// LocaleFor returns the locale for a language code such as "es" or "en-US".
func LocaleFor(code string) (Locale, error) {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(code)), "-")
	switch lang {
	case "es", "":
		return Spanish, nil
	case "en":
		return English, nil
	}
	return Locale{}, fmt.Errorf("unsupported locale %q", code)
}

// MonthName returns the full month name.
func (l Locale) MonthName(m time.Month) string {
	return l.Months[m-1]
}

// MonthAbbr returns the abbreviated month name.
func (l Locale) MonthAbbr(m time.Month) string {
	return l.MonthsAbbr[m-1]
}

// Weekday returns the abbreviated weekday name.
func (l Locale) Weekday(d time.Weekday) string {
	return l.Weekdays[d]
}

// DayLabel returns the breadcrumb label for a day of the month.
func (l Locale) DayLabel(day int) string {
	return fmt.Sprintf("%s %d", l.DayPrefix, day)
}
