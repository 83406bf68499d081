package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// 取件码字符集：去掉易混淆的 0/O、1/I/L
const pickupAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomPickupCode generates a 6-character upper-case pickup code
func RandomPickupCode() string {
	var sb strings.Builder
	k := len(pickupAlphabet)

	for i := 0; i < 6; i++ {
		sb.WriteByte(pickupAlphabet[rand.Intn(k)])
	}

	return sb.String()
}

// RandomOTPCode generates a 6-digit numeric one-time code (100000-999999)
func RandomOTPCode() string {
	return fmt.Sprintf("%06d", RandomInt(100000, 999999))
}

// RandomPhone generates a random US-format phone number for fixtures
func RandomPhone() string {
	return fmt.Sprintf("+1%d", RandomInt(2000000000, 9999999999))
}
