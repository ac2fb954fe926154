package seeds

import (
	"gorm.io/gorm"

	policySeeds "claimku_backend/internals/seeds/policies"
	userSeeds "claimku_backend/internals/seeds/users"
)

// RunAllSeeds loads the dev bootstrap data (RUN_SEEDS=true).
// Seeders are idempotent - existing rows are skipped.
func RunAllSeeds(db *gorm.DB) {
	userSeeds.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	policySeeds.SeedPoliciesFromJSON(db, "internals/seeds/policies/data_policies.json")
}
