package constants

type RoleEnum string

const (
	RoleUser  RoleEnum = "user"
	RoleAdmin RoleEnum = "admin"
)

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// IsValidStatus reports whether s is one of the three complaint statuses.
func IsValidStatus(s string) bool {
	switch ComplaintStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type ComplaintCategory string

const (
	CategoryRoads        ComplaintCategory = "roads"
	CategorySanitation   ComplaintCategory = "sanitation"
	CategoryElectricity  ComplaintCategory = "electricity"
	CategoryWater        ComplaintCategory = "water"
	CategoryPublicSafety ComplaintCategory = "public_safety"
	CategoryHealthcare   ComplaintCategory = "healthcare"
	CategoryEducation    ComplaintCategory = "education"
	CategoryEnvironment  ComplaintCategory = "environment"
	CategoryOthers       ComplaintCategory = "others"
)

func IsValidCategory(c string) bool {
	switch ComplaintCategory(c) {
	case CategoryRoads, CategorySanitation, CategoryElectricity, CategoryWater,
		CategoryPublicSafety, CategoryHealthcare, CategoryEducation,
		CategoryEnvironment, CategoryOthers:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func IsValidSeverity(s string) bool {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

func IsValidVoteType(v string) bool {
	switch VoteType(v) {
	case VoteUp, VoteDown:
		return true
	}
	return false
}
