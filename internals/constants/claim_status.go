package constants

// Claim lifecycle statuses. The API boundary only accepts values from
// this set; anything else is rejected with 400 before it reaches the DB.
const (
	ClaimStatusPending    = "pending"
	ClaimStatusApproved   = "approved"
	ClaimStatusRejected   = "rejected"
	ClaimStatusIncomplete = "incomplete"
)

var ClaimStatuses = []string{
	ClaimStatusPending,
	ClaimStatusApproved,
	ClaimStatusRejected,
	ClaimStatusIncomplete,
}

func IsValidClaimStatus(s string) bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected, ClaimStatusIncomplete:
		return true
	}
	return false
}

// Timeline step types (append-only audit log).
const (
	StepTypeCorrected = "corrected"
)
