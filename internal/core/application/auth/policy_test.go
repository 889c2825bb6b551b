package auth_test

import (
	"testing"

	"backoffice/internal/core/application/auth"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	assert.NoError(t, auth.RoleShipper.Validate())
	assert.NoError(t, auth.RoleManager.Validate())
	assert.NoError(t, auth.RoleAdmin.Validate())
	assert.Error(t, auth.Role("INTERN").Validate())
	assert.Error(t, auth.Role("").Validate())
}

func TestPolicy_Authorize_MissingIdentity(t *testing.T) {
	policy := auth.DefaultPolicy()

	err := policy.Authorize(auth.Identity{}, auth.OpListRequests)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestPolicy_Authorize_UnknownRole(t *testing.T) {
	policy := auth.DefaultPolicy()

	err := policy.Authorize(auth.Identity{UserID: 7, Role: "INTERN"}, auth.OpListRequests)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestPolicy_Authorize_UnknownOperation(t *testing.T) {
	policy := auth.DefaultPolicy()

	err := policy.Authorize(auth.Identity{UserID: 7, Role: auth.RoleAdmin}, auth.Operation("bills.purge"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestPolicy_Authorize_ManagerOrAdmin(t *testing.T) {
	policy := auth.DefaultPolicy()

	testCases := []struct {
		name    string
		role    auth.Role
		wantErr bool
	}{
		{name: "manager allowed", role: auth.RoleManager, wantErr: false},
		{name: "admin allowed", role: auth.RoleAdmin, wantErr: false},
		{name: "shipper denied", role: auth.RoleShipper, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.Authorize(auth.Identity{UserID: 1, Role: tc.role}, auth.OpCreateBills)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicy_Authorize_ShipperScopedOperations(t *testing.T) {
	policy := auth.DefaultPolicy()
	identity := auth.Identity{UserID: 42, Role: auth.RoleShipper}

	assert.NoError(t, policy.Authorize(identity, auth.OpSubmitRequest))
	assert.NoError(t, policy.Authorize(identity, auth.OpMarkTransfer))
	assert.NoError(t, policy.Authorize(identity, auth.OpListShipperBills))
}

func TestPolicy_Authorize_RequestListingIsStaffOnly(t *testing.T) {
	policy := auth.DefaultPolicy()

	shipper := auth.Identity{UserID: 42, Role: auth.RoleShipper}
	manager := auth.Identity{UserID: 9, Role: auth.RoleManager}
	admin := auth.Identity{UserID: 3, Role: auth.RoleAdmin}

	err := policy.Authorize(shipper, auth.OpListRequests)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	assert.NoError(t, policy.Authorize(manager, auth.OpListRequests))
	assert.NoError(t, policy.Authorize(admin, auth.OpListRequests))
}

func TestPolicy_Authorize_CustomTable(t *testing.T) {
	// A deployment can reopen request listing to shippers.
	policy := auth.Policy{
		auth.OpListRequests: auth.Authenticated,
	}

	shipper := auth.Identity{UserID: 42, Role: auth.RoleShipper}

	assert.NoError(t, policy.Authorize(shipper, auth.OpListRequests))

	// Operations missing from the custom table are denied.
	assert.Error(t, policy.Authorize(shipper, auth.OpCreateBills))
}
