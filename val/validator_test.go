package val

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateOTPCode(t *testing.T) {
	testCases := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{
			name:    "Valid code",
			code:    "123456",
			wantErr: false,
		},
		{
			name:    "Too short",
			code:    "12345",
			wantErr: true,
		},
		{
			name:    "Too long",
			code:    "1234567",
			wantErr: true,
		},
		{
			name:    "Contains letters",
			code:    "12a456",
			wantErr: true,
		},
		{
			name:    "Empty string",
			code:    "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOTPCode(tc.code)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePickupCode(t *testing.T) {
	require.NoError(t, ValidatePickupCode("AB23CD"))
	require.NoError(t, ValidatePickupCode("999999"))
	require.Error(t, ValidatePickupCode("ab23cd")) // 小写不接受
	require.Error(t, ValidatePickupCode("AB23C"))
	require.Error(t, ValidatePickupCode("AB23C!"))
}

func TestValidateCoordinate(t *testing.T) {
	require.NoError(t, ValidateCoordinate(32.7767, -96.797))
	require.NoError(t, ValidateCoordinate(-90, 180))
	require.Error(t, ValidateCoordinate(91, 0))
	require.Error(t, ValidateCoordinate(0, -181))
}
