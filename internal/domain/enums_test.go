package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		status Status
		code   int16
		token  string
	}{
		{StatusRequested, 1, "REQUESTED"},
		{StatusCancelled, 2, "CANCELLED"},
		{StatusConfirmed, 3, "CONFIRMED"},
		{StatusDenied, 4, "DENIED"},
		{StatusPaymentCompleted, 5, "PAYMENT_COMPLETED"},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.status.Code())
			assert.Equal(t, tc.token, tc.status.String())

			fromCode, err := StatusFromCode(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.status, fromCode)

			parsed, err := ParseStatus(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		})
	}

	_, err := StatusFromCode(0)
	assert.Error(t, err)
	_, err = StatusFromCode(6)
	assert.Error(t, err)
	_, err = ParseStatus("requested")
	assert.Error(t, err)
}

func TestStatusJSON(t *testing.T) {
	data, err := json.Marshal(StatusPaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, `"PAYMENT_COMPLETED"`, string(data))

	var status Status
	require.NoError(t, json.Unmarshal([]byte(`"CONFIRMED"`), &status))
	assert.Equal(t, StatusConfirmed, status)

	assert.Error(t, json.Unmarshal([]byte(`"PAID"`), &status))
	assert.Error(t, json.Unmarshal([]byte(`3`), &status))

	_, err = json.Marshal(Status(99))
	assert.Error(t, err)
}

func TestRoleCodes(t *testing.T) {
	cases := []struct {
		role  Role
		code  int16
		token string
	}{
		{RoleInitiator, 1, "INITIATOR"},
		{RolePurchasingManager, 2, "PURCHASING_MANAGER"},
		{RoleAccountingManager, 3, "ACCOUNTING_MANAGER"},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.role.Code())
			assert.Equal(t, tc.token, tc.role.String())

			fromCode, err := RoleFromCode(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.role, fromCode)

			parsed, err := ParseRole(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.role, parsed)
		})
	}

	_, err := RoleFromCode(0)
	assert.Error(t, err)
	_, err = RoleFromCode(4)
	assert.Error(t, err)
	_, err = ParseRole("ADMIN")
	assert.Error(t, err)
}

func TestRoleJSON(t *testing.T) {
	data, err := json.Marshal(RolePurchasingManager)
	require.NoError(t, err)
	assert.Equal(t, `"PURCHASING_MANAGER"`, string(data))

	var role Role
	require.NoError(t, json.Unmarshal([]byte(`"INITIATOR"`), &role))
	assert.Equal(t, RoleInitiator, role)

	assert.Error(t, json.Unmarshal([]byte(`"initiator"`), &role))
}
