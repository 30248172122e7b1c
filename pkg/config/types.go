package config

import (
	"github.com/Goden-Gun/rpcerr-lib/pkg/kafka"
)

// ==================== 基础配置 ====================

// LogConfig 日志配置
type LogConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	Level        string `yaml:"level" mapstructure:"level"`
	ReportCaller bool   `yaml:"report_caller" mapstructure:"report_caller"`
}

// ==================== 基础设施配置 ====================

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Db       int    `yaml:"db" mapstructure:"db"`
}

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	Enabled       bool     `yaml:"enabled" mapstructure:"enabled"`
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`
	RequiredAcks  string   `yaml:"required_acks" mapstructure:"required_acks"`
	MaxAttempts   int      `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// PublisherConfig 转换为 kafka.Publisher 配置
func (k KafkaConfig) PublisherConfig() kafka.Config {
	return kafka.Config{
		Brokers:       k.Brokers,
		Topic:         k.Topic,
		ClientID:      k.ClientID,
		Username:      k.Username,
		Password:      k.Password,
		SASLMechanism: k.SASLMechanism,
		TLSEnabled:    k.TLSEnabled,
		RequiredAcks:  k.RequiredAcks,
		MaxAttempts:   k.MaxAttempts,
	}
}

// ==================== 错误分类配置 ====================

// CatalogConfig 错误目录配置，Path 为空时使用内置目录
type CatalogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// FileReporterConfig 未知错误文件输出配置
type FileReporterConfig struct {
	Disabled     bool     `yaml:"disabled" mapstructure:"disabled"`
	Path         string   `yaml:"path" mapstructure:"path"`                   // 不轮转时的文件路径
	Rotate       bool     `yaml:"rotate" mapstructure:"rotate"`               // 按时间轮转
	Dir          string   `yaml:"dir" mapstructure:"dir"`                     // 轮转文件目录
	Filename     string   `yaml:"filename" mapstructure:"filename"`           // 轮转文件前缀
	MaxAge       Duration `yaml:"max_age" mapstructure:"max_age"`             // 轮转文件保留时长
	RotationTime Duration `yaml:"rotation_time" mapstructure:"rotation_time"` // 轮转间隔
}

// RedisReporterConfig 未知错误 Redis 列表输出配置
type RedisReporterConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Key     string `yaml:"key" mapstructure:"key"`
	MaxLen  int64  `yaml:"max_len" mapstructure:"max_len"`
}

// KafkaReporterConfig 未知错误 Kafka 输出配置
type KafkaReporterConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Topic   string `yaml:"topic" mapstructure:"topic"`
}

// ReporterConfig 未知错误记录配置
type ReporterConfig struct {
	File  FileReporterConfig  `yaml:"file" mapstructure:"file"`
	Redis RedisReporterConfig `yaml:"redis" mapstructure:"redis"`
	Kafka KafkaReporterConfig `yaml:"kafka" mapstructure:"kafka"`
}

// ClassifierConfig 分类器完整配置，由 bootstrap.InitClassifier 使用
type ClassifierConfig struct {
	Catalog  CatalogConfig  `yaml:"catalog" mapstructure:"catalog"`
	Reporter ReporterConfig `yaml:"reporter" mapstructure:"reporter"`
	Redis    RedisConfig    `yaml:"redis" mapstructure:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka" mapstructure:"kafka"`
}

// ==================== 可观测性配置 ====================

// TracingConfig 分布式追踪配置
type TracingConfig struct {
	Exporter     string            `yaml:"exporter" mapstructure:"exporter"`
	Endpoint     string            `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string            `yaml:"service_name" mapstructure:"service_name"`
	Insecure     bool              `yaml:"insecure" mapstructure:"insecure"`
	Headers      map[string]string `yaml:"headers" mapstructure:"headers"`
	SampleRatio  float64           `yaml:"sample_ratio" mapstructure:"sample_ratio"`
	ResourceTags map[string]string `yaml:"resource_tags" mapstructure:"resource_tags"`
}
