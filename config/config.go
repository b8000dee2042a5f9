package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App             `json:"app" yaml:"app"`
	Redis     *Redis           `json:"redis" yaml:"redis"`
	MySQL     *MySQL           `json:"mysql" yaml:"mysql"`
	Mongo     *Mongo           `json:"mongo" yaml:"mongo"`
	Jwt       *Jwt             `json:"jwt" yaml:"jwt"`
	Oss       *OssConfig       `json:"oss" yaml:"oss"`
	Assistant *AssistantConfig `json:"assistant" yaml:"assistant"`
	Server    *Server          `json:"server" yaml:"server"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse config yaml: %v", err))
	}

	conf.applyEnv()
	return &conf
}

// applyEnv 环境变量优先于配置文件
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Http = port
		}
	}
	if v := os.Getenv("APP_NAME"); v != "" {
		c.App.Name = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("JWT_REFRESH_SECRET"); v != "" {
		c.Jwt.RefreshSecret = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		c.Mongo.Uri = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
