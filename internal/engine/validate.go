// FILE: internal/engine/validate.go
package engine

import (
	"github.com/google/uuid"

	"plan-migration-be/internal/entity"
)

// ValidateAccount rejects malformed accounts before ranking. Reported per
// record so one bad account never aborts a batch.
func ValidateAccount(account *entity.Account) error {
	if account.Id == uuid.Nil {
		return &InputError{Record: "account", Key: account.ExternalKey, Reason: "missing account id"}
	}
	return nil
}

// ValidatePlan rejects plans whose add-on catalog declares the same add-on
// twice; duplicate ids would make selection tie-breaks ambiguous.
func ValidatePlan(plan *entity.Plan) error {
	seen := make(map[uuid.UUID]struct{}, len(plan.AddOns))
	for _, a := range plan.AddOns {
		if _, dup := seen[a.Id]; dup {
			return &InputError{Record: "plan", Key: plan.Name, Reason: "duplicate add-on id " + a.Id.String()}
		}
		seen[a.Id] = struct{}{}
	}
	return nil
}

// ValidateCatalog validates every plan, collecting one error per bad plan.
func ValidateCatalog(plans []entity.Plan) []error {
	var errs []error
	for i := range plans {
		if err := ValidatePlan(&plans[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
