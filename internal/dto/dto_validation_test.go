package dto_test

import (
	"testing"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
)

func TestInstallOverrideRequestValidation(t *testing.T) {
	validPlan := dto.OverridePlanRequest{
		Name:         "Standard",
		Slug:         "standard",
		BaseFeatures: []string{"storage"},
		BaseCost:     10,
		AddOns: []dto.OverrideAddOnRequest{
			{Name: "API Access", Covers: []string{"api"}, Cost: 3},
		},
	}

	tests := []struct {
		name    string
		req     dto.InstallOverrideRequest
		wantErr bool
	}{
		{
			name:    "valid override",
			req:     dto.InstallOverrideRequest{SuppliedBy: "ops@example.com", Plans: []dto.OverridePlanRequest{validPlan}},
			wantErr: false,
		},
		{
			name:    "missing supplied_by",
			req:     dto.InstallOverrideRequest{Plans: []dto.OverridePlanRequest{validPlan}},
			wantErr: true,
		},
		{
			name:    "empty plan list",
			req:     dto.InstallOverrideRequest{SuppliedBy: "ops@example.com", Plans: []dto.OverridePlanRequest{}},
			wantErr: true,
		},
		{
			name: "plan without slug",
			req: dto.InstallOverrideRequest{
				SuppliedBy: "ops@example.com",
				Plans:      []dto.OverridePlanRequest{{Name: "Standard", BaseCost: 10}},
			},
			wantErr: true,
		},
		{
			name: "negative plan cost",
			req: dto.InstallOverrideRequest{
				SuppliedBy: "ops@example.com",
				Plans:      []dto.OverridePlanRequest{{Name: "Standard", Slug: "standard", BaseCost: -1}},
			},
			wantErr: true,
		},
		{
			name: "nested add-on without name",
			req: dto.InstallOverrideRequest{
				SuppliedBy: "ops@example.com",
				Plans: []dto.OverridePlanRequest{{
					Name:     "Standard",
					Slug:     "standard",
					BaseCost: 10,
					AddOns:   []dto.OverrideAddOnRequest{{Covers: []string{"api"}, Cost: 3}},
				}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := serverutils.ValidateRequest(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpsertAccountRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.UpsertAccountRequest
		wantErr bool
	}{
		{
			name:    "valid account",
			req:     dto.UpsertAccountRequest{ExternalKey: "acct-1@crm", Name: "Acme", RequiredFeatures: []string{"storage"}},
			wantErr: false,
		},
		{
			name:    "missing external key",
			req:     dto.UpsertAccountRequest{Name: "Acme"},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     dto.UpsertAccountRequest{ExternalKey: "acct-1@crm"},
			wantErr: true,
		},
		{
			name:    "empty feature list is allowed",
			req:     dto.UpsertAccountRequest{ExternalKey: "acct-1@crm", Name: "Acme"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := serverutils.ValidateRequest(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApproveRequestValidation(t *testing.T) {
	assert.Error(t, serverutils.ValidateRequest(&dto.ApproveRequest{}))
	assert.NoError(t, serverutils.ValidateRequest(&dto.ApproveRequest{ApprovedBy: "reviewer@example.com"}))
}
