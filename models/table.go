package models

import (
	"fmt"
	"strings"
	"time"
)

// List is a named collection of records of one entity type.
type List struct {
	Name    string
	Records []*Record
}

// NewList wraps parsed records for tabular projection.
func NewList(name string, recs []*Record) *List {
	return &List{Name: name, Records: recs}
}

// Len returns the number of records.
func (l *List) Len() int { return len(l.Records) }

// Rows returns the display maps of every record, in input order. Used by
// the filter layer and by JSON output.
func (l *List) Rows() []map[string]any {
	rows := make([]map[string]any, len(l.Records))
	for i, rec := range l.Records {
		rows[i] = rec.Display()
	}
	return rows
}

// Table is a rendered tabular projection: one header per requested
// column, one row per record.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ToTable projects the list onto the requested columns. Each column is an
// internal field name or a dotted path into nested entities; values that
// do not resolve render as empty cells. Row order matches input order.
func (l *List) ToTable(columns []string) *Table {
	t := &Table{Headers: make([]string, len(columns))}
	for i, col := range columns {
		t.Headers[i] = HeaderFor(col)
	}
	for _, rec := range l.Records {
		row := make([]string, len(columns))
		for i, col := range columns {
			v, ok := rec.Get(col)
			if !ok {
				continue
			}
			row[i] = formatCell(v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// headerOverrides maps column paths to headers where plain title-casing
// reads badly. Keyed by full dotted path.
var headerOverrides = map[string]string{
	"name":                          "Class Name",
	"otf_class.name":                "Class Name",
	"is_home_studio":                "Home Studio",
	"is_booked":                     "Booked",
	"starts_at_local":               "Starts At",
	"ends_at_local":                 "Ends At",
	"otf_class.starts_at_local":     "Class Time",
	"studio.studio_name":            "Studio Name",
	"otf_class.studio.studio_name":  "Studio Name",
	"coach.name":                    "Coach",
	"otf_class.coach.name":          "Coach",
	"details.calories_burned":       "Calories",
	"details.splat_points":          "Splat Points",
	"details.zone_time_minutes.orange": "Orange Minutes",
	"details.heart_rate.avg_hr":     "Avg HR",
	"purchase_date_time":            "Purchased",
}

// HeaderFor maps a column path to a human-readable header: per-field
// overrides first, otherwise every path segment and underscore-separated
// word is title-cased ("studio.name" -> "Studio Name").
func HeaderFor(path string) string {
	if h, ok := headerOverrides[path]; ok {
		return h
	}
	words := strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == '_'
	})
	for i, w := range words {
		switch strings.ToLower(w) {
		case "uuid":
			words[i] = "UUID"
		case "id":
			words[i] = "ID"
		case "hr":
			words[i] = "HR"
		default:
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
	}
	return strings.Join(words, " ")
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02 15:04")
	case string:
		return val
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", val), "0"), ".")
	default:
		return fmt.Sprint(v)
	}
}
