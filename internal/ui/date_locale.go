package ui

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type userDateFormat struct {
	DisplayLayout string
	Hint          string
}

func detectUserDateFormat() userDateFormat {
	tag := detectLocaleTag()
	if tag == language.Und {
		return dateFormatDMY()
	}

	region, _ := tag.Region()
	switch region.String() {
	case "US":
		return dateFormatMDY()
	case "CA", "CN", "JP", "KR", "HU", "LT":
		return dateFormatYMD()
	default:
		return dateFormatDMY()
	}
}

func detectLocaleTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		raw = normalizeLocale(raw)
		if raw == "" {
			continue
		}
		if tag, err := language.Parse(raw); err == nil {
			return tag
		}
	}
	return language.Und
}

func normalizeLocale(raw string) string {
	locale := raw
	if idx := strings.Index(locale, "."); idx >= 0 {
		locale = locale[:idx]
	}
	if idx := strings.Index(locale, "@"); idx >= 0 {
		locale = locale[:idx]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.TrimSpace(locale)
}

func dateFormatMDY() userDateFormat {
	return userDateFormat{DisplayLayout: "01/02/2006", Hint: "MM/DD/YYYY"}
}

func dateFormatDMY() userDateFormat {
	return userDateFormat{DisplayLayout: "02/01/2006", Hint: "DD/MM/YYYY"}
}

func dateFormatYMD() userDateFormat {
	return userDateFormat{DisplayLayout: "2006-01-02", Hint: "YYYY-MM-DD"}
}

func (m Model) formatDate(ts time.Time) string {
	if m.date.DisplayLayout == "" {
		return ts.UTC().Format("2006-01-02")
	}
	return ts.UTC().Format(m.date.DisplayLayout)
}

func (m Model) formatDateTime(ts time.Time) string {
	dateLayout := m.date.DisplayLayout
	if dateLayout == "" {
		dateLayout = "2006-01-02"
	}
	// Timestamps are moments in time, so render in local time with HH:mm.
	return ts.In(time.Local).Format(dateLayout + " 15:04")
}
