package util

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment       string   `mapstructure:"ENVIRONMENT"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
	DBSource          string   `mapstructure:"DB_SOURCE"`
	MigrationURL      string   `mapstructure:"MIGRATION_URL"`
	RedisAddress      string   `mapstructure:"REDIS_ADDRESS"`
	RedisPassword     string   `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress string   `mapstructure:"HTTP_SERVER_ADDRESS"`

	// 取件柜配置
	PickupExpiryDuration time.Duration `mapstructure:"PICKUP_EXPIRY_DURATION"` // 取件有效期（默认 48h，部分门店使用 168h）
	OtpValidityDuration  time.Duration `mapstructure:"OTP_VALIDITY_DURATION"`  // OTP 验证码有效期（默认 10m）

	// 短信通知配置
	SMSGatewayURL        string        `mapstructure:"SMS_GATEWAY_URL"`        // 短信网关地址，为空时使用日志发送器
	SMSGatewayToken      string        `mapstructure:"SMS_GATEWAY_TOKEN"`      // 短信网关鉴权 token
	SMSHTTPTimeout       time.Duration `mapstructure:"SMS_HTTP_TIMEOUT"`       // 单次请求超时时间
	SMSOverrideRecipient string        `mapstructure:"SMS_OVERRIDE_RECIPIENT"` // 测试环境收件人覆盖，为空时发给客户真实手机号

	// 路线规划配置
	RouteBatchSize int32 `mapstructure:"ROUTE_BATCH_SIZE"` // 单次捆绑的最大待配送订单数
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Normalize common quoted values from .env (e.g. REDIS_PASSWORD="...")
	config.RedisPassword = trimOptionalQuotes(config.RedisPassword)

	// 缺省值兜底，避免配置文件漏项导致取件单永不过期
	if config.PickupExpiryDuration <= 0 {
		config.PickupExpiryDuration = 48 * time.Hour
	}
	if config.OtpValidityDuration <= 0 {
		config.OtpValidityDuration = 10 * time.Minute
	}
	if config.RouteBatchSize <= 0 {
		config.RouteBatchSize = 50
	}
	return
}

func trimOptionalQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\"")
	s = strings.TrimSuffix(s, "\"")
	s = strings.TrimPrefix(s, "'")
	s = strings.TrimSuffix(s, "'")
	return s
}
