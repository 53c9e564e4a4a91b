package models

// homeStudioSchema is the studio stub embedded in a member detail payload.
var homeStudioSchema = &Schema{
	Name: "home_studio",
	Fields: []Field{
		{Name: "studio_uuid", Alias: "studioUUId", Kind: KindString, Required: true},
		{Name: "studio_name", Alias: "studioName", Kind: KindString},
		{Name: "time_zone", Alias: "timeZone", Kind: KindString},
	},
}

// MemberDetailSchema describes the account detail payload.
var MemberDetailSchema = &Schema{
	Name: "member_detail",
	Fields: []Field{
		{Name: "member_id", Alias: "memberId", Kind: KindInt, Required: true},
		{Name: "member_uuid", Alias: "memberUUId", Kind: KindString, Required: true},
		{Name: "cognito_id", Alias: "cognitoId", Kind: KindString, Exclude: true},
		{Name: "first_name", Alias: "firstName", Kind: KindString, Required: true},
		{Name: "last_name", Alias: "lastName", Kind: KindString, Required: true},
		{Name: "user_name", Alias: "userName", Kind: KindString, Exclude: true},
		{Name: "email", Alias: "email", Kind: KindString, Required: true},
		{Name: "phone_number", Alias: "phoneNumber", Kind: KindString},
		{Name: "gender", Alias: "gender", Kind: KindString},
		{Name: "birth_day", Alias: "birthDay", Kind: KindTime, Exclude: true},
		{Name: "cc_last_4", Alias: "ccLast4", Kind: KindString, Exclude: true},
		{Name: "mbo_id", Alias: "mboId", Kind: KindString, Exclude: true},
		{Name: "max_hr", Alias: "maxHr", Kind: KindInt},
		{Name: "home_studio", Alias: "homeStudio", Kind: KindNested, Schema: homeStudioSchema, Required: true},
	},
}

// MemberDetail is a typed view over the account detail record.
type MemberDetail struct {
	*Record
}

// ParseMemberDetail validates a member detail payload.
func ParseMemberDetail(raw map[string]any) (MemberDetail, error) {
	rec, err := MemberDetailSchema.Parse(raw)
	if err != nil {
		return MemberDetail{}, err
	}
	return MemberDetail{rec}, nil
}

func (m MemberDetail) UUID() string           { return m.String("member_uuid") }
func (m MemberDetail) HomeStudioUUID() string { return m.String("home_studio.studio_uuid") }
func (m MemberDetail) Email() string          { return m.String("email") }

// MemberMembershipSchema describes the membership payload.
var MemberMembershipSchema = &Schema{
	Name: "member_membership",
	Fields: []Field{
		{Name: "member_membership_id", Alias: "memberMembershipId", Kind: KindInt, Required: true},
		{Name: "member_membership_uuid", Alias: "memberMembershipUUId", Kind: KindString, Required: true},
		{Name: "name", Alias: "name", Kind: KindString, Required: true},
		{Name: "status", Alias: "status", Kind: KindString, Required: true},
		{Name: "start_date", Alias: "startDate", Kind: KindTime},
		{Name: "end_date", Alias: "endDate", Kind: KindTime},
		{Name: "count", Alias: "count", Kind: KindInt},
		{Name: "remaining", Alias: "remaining", Kind: KindInt},
		{Name: "mbo_membership_id", Alias: "mboMembershipId", Kind: KindString, Exclude: true},
	},
}

// MemberPurchaseSchema describes one item in the purchase history.
var MemberPurchaseSchema = &Schema{
	Name: "member_purchase",
	Fields: []Field{
		{Name: "member_purchase_uuid", Alias: "memberPurchaseUUId", Kind: KindString, Required: true},
		{Name: "name", Alias: "name", Kind: KindString, Required: true},
		{Name: "price", Alias: "price", Kind: KindString, Required: true},
		{Name: "purchase_date_time", Alias: "purchaseDateTime", Kind: KindTime, Required: true},
		{Name: "type", Alias: "type", Kind: KindString},
		{Name: "quantity", Alias: "quantity", Kind: KindInt},
		{Name: "studio", Alias: "studio", Kind: KindNested, Schema: homeStudioSchema},
		{Name: "mbo_sale_id", Alias: "mboSaleId", Kind: KindString, Exclude: true},
	},
}

// TotalClassesSchema describes the attendance counters payload.
var TotalClassesSchema = &Schema{
	Name: "total_classes",
	Fields: []Field{
		{Name: "total_in_studio_classes_attended", Alias: "totalInStudioClassesAttended", Kind: KindInt, Required: true},
		{Name: "total_otlive_classes_attended", Alias: "totalOtLiveClassesAttended", Kind: KindInt, Required: true},
	},
}

// PurchaseColumns is the default table projection for purchases.
func PurchaseColumns() []string {
	return []string{"purchase_date_time", "name", "price", "studio.studio_name"}
}
