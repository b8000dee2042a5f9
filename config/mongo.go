package config

// Mongo 行为日志使用的文档库配置
type Mongo struct {
	Uri      string `json:"uri" yaml:"uri"`
	Database string `json:"database" yaml:"database"`
}
