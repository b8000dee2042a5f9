package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	PublicHost      string `json:"public_host" yaml:"public_host"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
