package config

// Jwt 令牌配置，access/refresh 使用不同密钥
type Jwt struct {
	Secret         string `json:"secret" yaml:"secret"`
	RefreshSecret  string `json:"refresh_secret" yaml:"refresh_secret"`
	ExpireSeconds  int    `json:"expire_seconds" yaml:"expire_seconds"`
	RefreshSeconds int    `json:"refresh_seconds" yaml:"refresh_seconds"`
}
