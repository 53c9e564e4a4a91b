package models

// Schemas for the booking payloads. Field aliases mirror the wire format
// of the booking API exactly; internal names are the normalized snake_case
// forms exposed to callers and to table projections.

// LocationSchema describes the free-form class location block.
var LocationSchema = &Schema{
	Name: "location",
	Fields: []Field{
		{Name: "address_one", Alias: "address1", Kind: KindString, Required: true},
		{Name: "address_two", Alias: "address2", Kind: KindString},
		{Name: "city", Alias: "city", Kind: KindString, Required: true},
		{Name: "country", Alias: "country", Kind: KindString},
		{Name: "distance", Alias: "distance", Kind: KindFloat},
		{Name: "latitude", Alias: "latitude", Kind: KindFloat, Required: true},
		{Name: "location_name", Alias: "locationName", Kind: KindString},
		{Name: "longitude", Alias: "longitude", Kind: KindFloat, Required: true},
		{Name: "phone_number", Alias: "phone", Kind: KindString, Required: true},
		{Name: "postal_code", Alias: "postalCode", Kind: KindString},
		{Name: "state", Alias: "state", Kind: KindString},
	},
}

// CoachSchema describes the coach block attached to a class.
var CoachSchema = &Schema{
	Name: "coach",
	Fields: []Field{
		{Name: "coach_uuid", Alias: "coachUUId", Kind: KindString, Required: true},
		{Name: "name", Alias: "name", Kind: KindString, Required: true},
		{Name: "first_name", Alias: "firstName", Kind: KindString, Required: true},
		{Name: "last_name", Alias: "lastName", Kind: KindString, Required: true},
		{Name: "image_url", Alias: "imageUrl", Kind: KindString, Exclude: true},
		{Name: "profile_picture_url", Alias: "profilePictureUrl", Kind: KindString, Exclude: true},
	},
}

var currencySchema = &Schema{
	Name: "currency",
	Fields: []Field{
		{Name: "currency_alphabetic_code", Alias: "currencyAlphabeticCode", Kind: KindString, Required: true},
	},
}

var defaultCurrencySchema = &Schema{
	Name: "default_currency",
	Fields: []Field{
		{Name: "currency_id", Alias: "currencyId", Kind: KindInt, Required: true},
		{Name: "currency", Alias: "currency", Kind: KindNested, Schema: currencySchema, Required: true},
	},
}

var studioLocationCountrySchema = &Schema{
	Name: "studio_location_country",
	Fields: []Field{
		{Name: "country_currency_code", Alias: "countryCurrencyCode", Kind: KindString, Required: true},
		{Name: "default_currency", Alias: "defaultCurrency", Kind: KindNested, Schema: defaultCurrencySchema, Required: true},
	},
}

// StudioLocationSchema describes the physical address block of a studio.
var StudioLocationSchema = &Schema{
	Name: "studio_location",
	Fields: []Field{
		{Name: "latitude", Alias: "latitude", Kind: KindFloat, Required: true},
		{Name: "longitude", Alias: "longitude", Kind: KindFloat, Required: true},
		{Name: "phone_number", Alias: "phoneNumber", Kind: KindString, Required: true},
		{Name: "physical_city", Alias: "physicalCity", Kind: KindString, Required: true},
		{Name: "physical_address", Alias: "physicalAddress", Kind: KindString, Required: true},
		{Name: "physical_address2", Alias: "physicalAddress2", Kind: KindString},
		{Name: "physical_state", Alias: "physicalState", Kind: KindString, Required: true},
		{Name: "physical_postal_code", Alias: "physicalPostalCode", Kind: KindString, Required: true},
		{Name: "physical_region", Alias: "physicalRegion", Kind: KindString, Exclude: true},
		{Name: "physical_country_id", Alias: "physicalCountryId", Kind: KindInt, Exclude: true},
		{Name: "physical_country", Alias: "physicalCountry", Kind: KindString, Required: true},
		{Name: "country", Alias: "country", Kind: KindNested, Schema: studioLocationCountrySchema, Exclude: true},
	},
}

// StudioSchema describes the studio block embedded in a class.
var StudioSchema = &Schema{
	Name: "studio",
	Fields: []Field{
		{Name: "studio_uuid", Alias: "studioUUId", Kind: KindString, Required: true},
		{Name: "studio_name", Alias: "studioName", Kind: KindString, Required: true},
		{Name: "description", Alias: "description", Kind: KindString},
		{Name: "contact_email", Alias: "contactEmail", Kind: KindString, Exclude: true},
		{Name: "status", Alias: "status", Kind: KindEnum, Enum: StudioStatuses, Required: true},
		{Name: "logo_url", Alias: "logoUrl", Kind: KindString, Exclude: true},
		{Name: "time_zone", Alias: "timeZone", Kind: KindString, Required: true},
		{Name: "mbo_studio_id", Alias: "mboStudioId", Kind: KindInt, Exclude: true},
		{Name: "studio_id", Alias: "studioId", Kind: KindInt, Required: true},
		{Name: "allows_cr_waitlist", Alias: "allowsCRWaitlist", Kind: KindBool},
		{Name: "cr_waitlist_flag_last_updated", Alias: "crWaitlistFlagLastUpdated", Kind: KindTime, Exclude: true},
		{Name: "studio_location", Alias: "studioLocation", Kind: KindNested, Schema: StudioLocationSchema, Exclude: true},
	},
}

// ClassSchema describes one scheduled class.
var ClassSchema = &Schema{
	Name: "otf_class",
	Fields: []Field{
		{Name: "class_uuid", Alias: "classUUId", Kind: KindString, Required: true},
		{Name: "name", Alias: "name", Kind: KindString, Required: true},
		{Name: "description", Alias: "description", Kind: KindString, Exclude: true},
		{Name: "starts_at_local", Alias: "startDateTime", Kind: KindTime, Required: true},
		{Name: "ends_at_local", Alias: "endDateTime", Kind: KindTime, Required: true},
		{Name: "is_available", Alias: "isAvailable", Kind: KindBool, Required: true},
		{Name: "is_cancelled", Alias: "isCancelled", Kind: KindBool, Required: true},
		{Name: "program_name", Alias: "programName", Kind: KindString, Required: true},
		{Name: "coach_id", Alias: "coachId", Kind: KindInt, Required: true},
		{Name: "studio", Alias: "studio", Kind: KindNested, Schema: StudioSchema, Required: true},
		{Name: "coach", Alias: "coach", Kind: KindNested, Schema: CoachSchema, Required: true},
		{Name: "location", Alias: "location", Kind: KindNested, Schema: LocationSchema, Required: true},
		{Name: "virtual_class", Alias: "virtualClass", Kind: KindBool},
	},
}

// bookingMemberSchema is the trimmed member block embedded in a booking.
var bookingMemberSchema = &Schema{
	Name: "member",
	Fields: []Field{
		{Name: "member_uuid", Alias: "memberUUId", Kind: KindString, Required: true},
		{Name: "first_name", Alias: "firstName", Kind: KindString, Required: true},
		{Name: "last_name", Alias: "lastName", Kind: KindString, Required: true},
		{Name: "email", Alias: "email", Kind: KindString, Required: true},
		{Name: "phone_number", Alias: "phoneNumber", Kind: KindString, Required: true},
		{Name: "gender", Alias: "gender", Kind: KindString, Required: true},
		{Name: "cc_last_4", Alias: "ccLast4", Kind: KindString, Exclude: true},
	},
}

// BookingSchema describes one class booking. MBO sync fields are parsed
// but excluded from display.
var BookingSchema = &Schema{
	Name: "booking",
	Fields: []Field{
		{Name: "class_booking_id", Alias: "classBookingId", Kind: KindInt, Required: true},
		{Name: "class_booking_uuid", Alias: "classBookingUUId", Kind: KindString, Required: true},
		{Name: "studio_id", Alias: "studioId", Kind: KindInt, Required: true},
		{Name: "class_id", Alias: "classId", Kind: KindInt, Required: true},
		{Name: "is_intro", Alias: "isIntro", Kind: KindBool, Required: true},
		{Name: "member_id", Alias: "memberId", Kind: KindInt, Required: true},
		{Name: "mbo_member_id", Alias: "mboMemberId", Kind: KindString, Exclude: true},
		{Name: "mbo_class_id", Alias: "mboClassId", Kind: KindInt, Exclude: true},
		{Name: "mbo_visit_id", Alias: "mboVisitId", Kind: KindInt, Exclude: true},
		{Name: "mbo_waitlist_entry_id", Alias: "mboWaitlistEntryId", Kind: KindInt, Exclude: true},
		{Name: "mbo_sync_message", Alias: "mboSyncMessage", Kind: KindString, Exclude: true},
		{Name: "status", Alias: "status", Kind: KindEnum, Enum: BookingStatuses, Required: true},
		{Name: "booked_date", Alias: "bookedDate", Kind: KindTime},
		{Name: "checked_in_date", Alias: "checkedInDate", Kind: KindTime},
		{Name: "cancelled_date", Alias: "cancelledDate", Kind: KindTime},
		{Name: "created_by", Alias: "createdBy", Kind: KindString, Exclude: true},
		{Name: "created_date", Alias: "createdDate", Kind: KindTime, Required: true},
		{Name: "updated_by", Alias: "updatedBy", Kind: KindString, Exclude: true},
		{Name: "updated_date", Alias: "updatedDate", Kind: KindTime, Required: true},
		{Name: "is_deleted", Alias: "isDeleted", Kind: KindBool, Required: true},
		{Name: "member", Alias: "member", Kind: KindNested, Schema: bookingMemberSchema, Exclude: true},
		{Name: "waitlist_position", Alias: "waitlistPosition", Kind: KindInt},
		{Name: "otf_class", Alias: "class", Kind: KindNested, Schema: ClassSchema, Required: true},
	},
}

// Booking is a typed view over a parsed booking record.
type Booking struct {
	*Record
}

// ParseBooking validates one booking payload.
func ParseBooking(raw map[string]any) (Booking, error) {
	rec, err := BookingSchema.Parse(raw)
	if err != nil {
		return Booking{}, err
	}
	return Booking{rec}, nil
}

func (b Booking) UUID() string          { return b.String("class_booking_uuid") }
func (b Booking) Status() BookingStatus { return BookingStatus(b.String("status")) }
func (b Booking) Class() Class          { return Class{b.Record.Record("otf_class")} }

// IsHomeStudio reports the derived home-studio flag; false until the
// enrichment step has run.
func (b Booking) IsHomeStudio() bool { return b.Bool("is_home_studio") }

// Class is a typed view over a parsed class record.
type Class struct {
	*Record
}

// ParseClass validates one class payload.
func ParseClass(raw map[string]any) (Class, error) {
	rec, err := ClassSchema.Parse(raw)
	if err != nil {
		return Class{}, err
	}
	return Class{rec}, nil
}

func (c Class) UUID() string       { return c.String("class_uuid") }
func (c Class) Name() string       { return c.String("name") }
func (c Class) StudioUUID() string { return c.String("studio.studio_uuid") }

// BookingColumns is the default table projection for bookings, matching
// the order the CLI has always shown.
func BookingColumns() []string {
	return []string{
		"otf_class.starts_at_local",
		"otf_class.name",
		"status",
		"otf_class.studio.studio_name",
		"otf_class.coach.name",
		"is_home_studio",
	}
}

// ClassColumns is the default table projection for classes.
func ClassColumns() []string {
	return []string{
		"starts_at_local",
		"ends_at_local",
		"name",
		"program_name",
		"studio.studio_name",
		"coach.name",
		"is_available",
	}
}
