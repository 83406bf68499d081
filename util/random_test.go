package util

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomPickupCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := RandomPickupCode()
		require.Len(t, code, 6)
		require.Equal(t, strings.ToUpper(code), code)
		// 不应包含易混淆字符
		require.NotContains(t, code, "0")
		require.NotContains(t, code, "O")
		require.NotContains(t, code, "1")
		require.NotContains(t, code, "I")
		require.NotContains(t, code, "L")
	}
}

func TestRandomOTPCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := RandomOTPCode()
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestRandomInt(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := RandomInt(5, 10)
		require.GreaterOrEqual(t, n, int64(5))
		require.LessOrEqual(t, n, int64(10))
	}
}
