package models

// Schemas for the telemetry (DNA) API.

var maxHRSchema = &Schema{
	Name: "max_hr",
	Fields: []Field{
		{Name: "type", Alias: "type", Kind: KindString, Required: true},
		{Name: "value", Alias: "value", Kind: KindInt, Required: true},
	},
}

// TelemetryMaxHRSchema describes the member max heart rate payload.
var TelemetryMaxHRSchema = &Schema{
	Name: "telemetry_max_hr",
	Fields: []Field{
		{Name: "member_uuid", Alias: "memberUuid", Kind: KindString, Required: true},
		{Name: "max_hr", Alias: "maxHr", Kind: KindNested, Schema: maxHRSchema, Required: true},
	},
}

// TelemetryMaxHR is a typed view over the max HR record.
type TelemetryMaxHR struct {
	*Record
}

// ParseTelemetryMaxHR validates a max HR payload.
func ParseTelemetryMaxHR(raw map[string]any) (TelemetryMaxHR, error) {
	rec, err := TelemetryMaxHRSchema.Parse(raw)
	if err != nil {
		return TelemetryMaxHR{}, err
	}
	return TelemetryMaxHR{rec}, nil
}

func (t TelemetryMaxHR) MemberUUID() string { return t.String("member_uuid") }
func (t TelemetryMaxHR) Value() int64       { return t.Int("max_hr.value") }

var telemetryEntrySchema = &Schema{
	Name: "telemetry_entry",
	Fields: []Field{
		{Name: "relative_timestamp", Alias: "relativeTimestamp", Kind: KindInt, Required: true},
		{Name: "hr", Alias: "hr", Kind: KindInt},
		{Name: "tread_speed", Alias: "treadSpeed", Kind: KindFloat},
		{Name: "tread_incline", Alias: "treadIncline", Kind: KindFloat},
		{Name: "row_speed", Alias: "rowSpeed", Kind: KindFloat},
		{Name: "row_pace", Alias: "rowPace", Kind: KindFloat},
	},
}

// TelemetrySchema describes the per-class telemetry payload: class
// metadata plus a series of sampled data points.
var TelemetrySchema = &Schema{
	Name: "telemetry",
	Fields: []Field{
		{Name: "member_uuid", Alias: "memberUuid", Kind: KindString, Required: true},
		{Name: "class_history_uuid", Alias: "classHistoryUuid", Kind: KindString, Required: true},
		{Name: "class_start_time", Alias: "classStartTime", Kind: KindTime},
		{Name: "max_hr", Alias: "maxHr", Kind: KindInt},
		{Name: "window_size", Alias: "windowSize", Kind: KindInt},
		{Name: "telemetry", Alias: "telemetry", Kind: KindNestedList, Schema: telemetryEntrySchema},
	},
}
