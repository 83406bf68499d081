package val

import (
	"fmt"
)

// ValidateCoordinate 校验经纬度是否在合法范围内
func ValidateCoordinate(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %f", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %f", longitude)
	}
	return nil
}

// ValidateOTPCode 校验 OTP 验证码格式（6位纯数字）
func ValidateOTPCode(code string) error {
	if len(code) != 6 {
		return fmt.Errorf("otp code must be exactly 6 digits")
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("otp code must contain only digits")
		}
	}
	return nil
}

// ValidatePickupCode 校验取件码格式（6位大写字母或数字）
func ValidatePickupCode(code string) error {
	if len(code) != 6 {
		return fmt.Errorf("pickup code must be exactly 6 characters")
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		isDigit := c >= '0' && c <= '9'
		isUpper := c >= 'A' && c <= 'Z'
		if !isDigit && !isUpper {
			return fmt.Errorf("pickup code must contain only upper-case letters and digits")
		}
	}
	return nil
}
