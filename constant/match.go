package constant

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusDeclined MatchStatus = "declined"
	MatchStatusReferred MatchStatus = "referred"
	MatchStatusExpired  MatchStatus = "expired"
)

// ResponseStatusMap maps the response tokens accepted on the respond
// endpoint to the status they store. Tokens outside this map are rejected.
var ResponseStatusMap = map[string]MatchStatus{
	"yes":      MatchStatusAccepted,
	"no":       MatchStatusDeclined,
	"declined": MatchStatusDeclined,
	"referred": MatchStatusReferred,
}

// Placeholders used when optional values are absent. The archive fallbacks
// are part of the wire contract expected by existing clients.
const (
	DefaultUserName       = "User"
	FallbackAskTitle      = "Opportunity"
	FallbackRequesterName = "Someone"
)
