package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plan-migration-be/internal/entity"
)

func TestValidateAccountRejectsMissingId(t *testing.T) {
	account := &entity.Account{ExternalKey: "acct-42"}

	err := ValidateAccount(account)

	assert.True(t, IsInputError(err))
	assert.Contains(t, err.Error(), "acct-42")
}

func TestValidateAccountAcceptsMinimalAccount(t *testing.T) {
	assert.NoError(t, ValidateAccount(&entity.Account{Id: uuid.New()}))
}

func TestValidatePlanRejectsDuplicateAddOnIds(t *testing.T) {
	dup := testAddOn("dup", 1, "a")
	plan := testPlan("P", 5, "x")
	plan.AddOns = []entity.AddOn{dup, testAddOn("other", 2, "b"), dup}

	err := ValidatePlan(&plan)

	assert.True(t, IsInputError(err))
}

func TestValidateCatalogCollectsPerPlanErrors(t *testing.T) {
	dup := testAddOn("dup", 1, "a")
	bad := testPlan("Bad", 5)
	bad.AddOns = []entity.AddOn{dup, dup}
	good := withAddOns(testPlan("Good", 5), testAddOn("fine", 1, "a"))

	errs := ValidateCatalog([]entity.Plan{bad, good})

	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Bad")
}
