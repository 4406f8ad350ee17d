package global

import (
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config 全局配置实例
var Config *config

type server struct {
	RunMode        string        `yaml:"run-mode" default:"release"`
	HttpPort       string        `yaml:"http-port" default:"8080"`
	ReadTimeout    time.Duration `yaml:"read-timeout" default:"60s"`
	WriteTimeout   time.Duration `yaml:"write-timeout" default:"60s"`
	ContextTimeout time.Duration `yaml:"context-timeout" default:"30s"`
}

type app struct {
	DefaultLang     string `yaml:"default-lang" default:"en"`
	DefaultOwnerID  string `yaml:"default-owner-id" default:"user-123"`
	DefaultUsername string `yaml:"default-username" default:"learner"`
	TraceHeader     string `yaml:"trace-header" default:"X-Trace-Id"`
}

type log struct {
	Level      string `yaml:"level" default:"info"`
	File       string `yaml:"file" default:"storage/logs/sillo.log"`
	Production bool   `yaml:"production" default:"false"`
}

// Database 数据库配置
type Database struct {
	Type         string `yaml:"type" default:"sqlite"`
	Path         string `yaml:"path" default:"storage/database/vault.db"`
	UserName     string `yaml:"username"`
	Password     string `yaml:"password"`
	Host         string `yaml:"host"`
	Name         string `yaml:"name"`
	Charset      string `yaml:"charset" default:"utf8mb4"`
	ParseTime    bool   `yaml:"parse-time" default:"true"`
	TablePrefix  string `yaml:"table-prefix" default:"sl_"`
	MaxIdleConns int    `yaml:"max-idle-conns" default:"10"`
	MaxOpenConns int    `yaml:"max-open-conns" default:"30"`
}

type noembed struct {
	BaseURL string        `yaml:"base-url" default:"https://noembed.com"`
	Timeout time.Duration `yaml:"timeout" default:"8s"`
}

type youtube struct {
	APIKey  string        `yaml:"api-key"`
	BaseURL string        `yaml:"base-url" default:"https://www.googleapis.com/youtube/v3"`
	Timeout time.Duration `yaml:"timeout" default:"10s"`
}

type assistant struct {
	APIKey  string        `yaml:"api-key"`
	Model   string        `yaml:"model" default:"gemini-2.0-flash-exp"`
	BaseURL string        `yaml:"base-url" default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `yaml:"timeout" default:"30s"`
}

type providers struct {
	Noembed   noembed   `yaml:"noembed"`
	YouTube   youtube   `yaml:"youtube"`
	Assistant assistant `yaml:"assistant"`
}

type tracer struct {
	Enable bool   `yaml:"enable" default:"false"`
	Host   string `yaml:"host" default:"127.0.0.1:6831"`
}

type cron struct {
	Enable          bool   `yaml:"enable" default:"true"`
	OrphanSweepSpec string `yaml:"orphan-sweep-spec" default:"0 30 3 * * *"`
}

type config struct {
	Server    server    `yaml:"server"`
	App       app       `yaml:"app"`
	Log       log       `yaml:"log"`
	Database  Database  `yaml:"database"`
	Providers providers `yaml:"providers"`
	Tracer    tracer    `yaml:"tracer"`
	Cron      cron      `yaml:"cron"`

	File string `yaml:"-"`
}

// ConfigLoad 从 path 加载配置文件, 缺省字段用默认值补齐
func ConfigLoad(path string) (*config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	c := &config{}
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "set config defaults")
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}

	c.File, _ = filepath.Abs(path)
	Config = c
	return c, nil
}

// Save 将当前配置写回加载时的文件
func (c *config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.File, data, 0644)
}
