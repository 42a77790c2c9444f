package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.NoError(t, CheckPassword(hash, "Sup3rSecret"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Passw0rd", false},
		{"too short", "Pw0rd", true},
		{"no lower case", "PASSW0RD", true},
		{"no upper case", "passw0rd", true},
		{"no digit", "Password", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *InputValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "password", vErr.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmailAddress(t *testing.T) {
	assert.NoError(t, ValidateEmailAddress("seller@example.com"))
	assert.Error(t, ValidateEmailAddress("not-an-email"))
	assert.Error(t, ValidateEmailAddress(""))
}
