package consts

const (
	// Mongo collection holding canonical credit reports
	CreditReportCollection = "creditreports"

	// Redis key and TTL for the cached cross-report summary
	SummaryCacheKey        = "credit_reports:summary"
	SummaryCacheTTLSeconds = 60

	// Country code written when the source address omits one
	DefaultCountryCode = "IB"
)

// Gender codes as they appear in the source document
const (
	GenderCodeMale   = "1"
	GenderCodeFemale = "2"

	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Experian INProfile markers checked by the structural gate
const (
	TagINProfileResponse   = "<INProfileResponse"
	TagCreditProfileHeader = "<CreditProfileHeader"
	TagCurrentApplication  = "<Current_Application"
	TagCAISAccount         = "<CAIS_Account"
)
