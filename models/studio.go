package models

// StudioDetailSchema describes the standalone studio detail payload, a
// superset of the studio block embedded in classes.
var StudioDetailSchema = &Schema{
	Name: "studio_detail",
	Fields: []Field{
		{Name: "studio_uuid", Alias: "studioUUId", Kind: KindString, Required: true},
		{Name: "studio_name", Alias: "studioName", Kind: KindString, Required: true},
		{Name: "studio_id", Alias: "studioId", Kind: KindInt, Required: true},
		{Name: "description", Alias: "description", Kind: KindString},
		{Name: "status", Alias: "studioStatus", Kind: KindEnum, Enum: StudioStatuses, Required: true},
		{Name: "time_zone", Alias: "timeZone", Kind: KindString, Required: true},
		{Name: "contact_email", Alias: "contactEmail", Kind: KindString, Exclude: true},
		{Name: "distance", Alias: "distance", Kind: KindFloat},
		{Name: "accepts_visitors", Alias: "acceptsVisitors", Kind: KindBool},
		{Name: "allows_cr_waitlist", Alias: "allowsCRWaitlist", Kind: KindBool},
		{Name: "mbo_studio_id", Alias: "mboStudioId", Kind: KindInt, Exclude: true},
		{Name: "studio_location", Alias: "studioLocation", Kind: KindNested, Schema: StudioLocationSchema},
	},
}

// StudioDetail is a typed view over a studio detail record.
type StudioDetail struct {
	*Record
}

// ParseStudioDetail validates a studio detail payload.
func ParseStudioDetail(raw map[string]any) (StudioDetail, error) {
	rec, err := StudioDetailSchema.Parse(raw)
	if err != nil {
		return StudioDetail{}, err
	}
	return StudioDetail{rec}, nil
}

func (s StudioDetail) UUID() string         { return s.String("studio_uuid") }
func (s StudioDetail) Name() string         { return s.String("studio_name") }
func (s StudioDetail) TimeZone() string     { return s.String("time_zone") }
func (s StudioDetail) Status() StudioStatus { return StudioStatus(s.String("status")) }

// StudioColumns is the default table projection for studio listings.
func StudioColumns() []string {
	return []string{"studio_name", "status", "time_zone", "distance"}
}
