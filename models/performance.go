package models

// Schemas for the performance-summary API (io host). This API speaks
// snake_case on the wire, unlike the booking API.

var zoneTimeSchema = &Schema{
	Name: "zone_time_minutes",
	Fields: []Field{
		{Name: "gray", Alias: "gray", Kind: KindInt, Required: true},
		{Name: "blue", Alias: "blue", Kind: KindInt, Required: true},
		{Name: "green", Alias: "green", Kind: KindInt, Required: true},
		{Name: "orange", Alias: "orange", Kind: KindInt, Required: true},
		{Name: "red", Alias: "red", Kind: KindInt, Required: true},
	},
}

var heartRateSchema = &Schema{
	Name: "heart_rate",
	Fields: []Field{
		{Name: "max_hr", Alias: "max_hr", Kind: KindInt},
		{Name: "peak_hr", Alias: "peak_hr", Kind: KindInt},
		{Name: "peak_hr_percent", Alias: "peak_hr_percent", Kind: KindInt},
		{Name: "avg_hr", Alias: "avg_hr", Kind: KindInt},
		{Name: "avg_hr_percent", Alias: "avg_hr_percent", Kind: KindInt},
	},
}

var perfDetailsSchema = &Schema{
	Name: "details",
	Fields: []Field{
		{Name: "calories_burned", Alias: "calories_burned", Kind: KindInt},
		{Name: "splat_points", Alias: "splat_points", Kind: KindInt},
		{Name: "step_count", Alias: "step_count", Kind: KindInt},
		{Name: "active_time_seconds", Alias: "active_time_seconds", Kind: KindInt},
		{Name: "zone_time_minutes", Alias: "zone_time_minutes", Kind: KindNested, Schema: zoneTimeSchema},
		{Name: "heart_rate", Alias: "heart_rate", Kind: KindNested, Schema: heartRateSchema},
	},
}

var perfClassSchema = &Schema{
	Name: "otf_class",
	Fields: []Field{
		{Name: "starts_at_local", Alias: "starts_at_local", Kind: KindTime},
		{Name: "name", Alias: "name", Kind: KindString},
		{Name: "type", Alias: "type", Kind: KindString},
	},
}

// PerformanceSummarySchema describes one workout summary.
var PerformanceSummarySchema = &Schema{
	Name: "performance_summary",
	Fields: []Field{
		{Name: "id", Alias: "id", Kind: KindString, Required: true},
		{Name: "details", Alias: "details", Kind: KindNested, Schema: perfDetailsSchema, Required: true},
		{Name: "ratable", Alias: "ratable", Kind: KindBool},
		{Name: "otf_class", Alias: "class", Kind: KindNested, Schema: perfClassSchema},
	},
}

// PerformanceSummary is a typed view over a workout summary record.
type PerformanceSummary struct {
	*Record
}

// ParsePerformanceSummary validates a workout summary payload.
func ParsePerformanceSummary(raw map[string]any) (PerformanceSummary, error) {
	rec, err := PerformanceSummarySchema.Parse(raw)
	if err != nil {
		return PerformanceSummary{}, err
	}
	return PerformanceSummary{rec}, nil
}

func (p PerformanceSummary) ID() string         { return p.String("id") }
func (p PerformanceSummary) SplatPoints() int64 { return p.Int("details.splat_points") }
func (p PerformanceSummary) Calories() int64    { return p.Int("details.calories_burned") }

// PerformanceColumns is the default table projection for workout summaries.
func PerformanceColumns() []string {
	return []string{
		"otf_class.starts_at_local",
		"otf_class.name",
		"details.calories_burned",
		"details.splat_points",
		"details.zone_time_minutes.orange",
		"details.heart_rate.avg_hr",
	}
}
