package config

import (
	"github.com/Goden-Gun/rpcerr-lib/pkg/reporter"
)

// DefaultKafkaTopic 未知错误记录默认 topic
const DefaultKafkaTopic = "rpcerr.unknown"

// ==================== LogConfig 默认值 ====================

// ApplyDefaults 应用日志配置默认值
func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "json"
	}
	if l.Level == "" {
		l.Level = "info"
	}
}

// ==================== ReporterConfig 默认值 ====================

// ApplyDefaults 应用文件输出默认值
func (f *FileReporterConfig) ApplyDefaults() {
	if f.Path == "" {
		f.Path = reporter.DefaultPath
	}
	if f.Dir == "" {
		f.Dir = "./logs"
	}
	if f.Filename == "" {
		f.Filename = "unknown_errors"
	}
	if f.MaxAge <= 0 {
		f.MaxAge = 7 * 24 * 3600
	}
	if f.RotationTime <= 0 {
		f.RotationTime = 24 * 3600
	}
}

// ApplyDefaults 应用 Redis 输出默认值
func (r *RedisReporterConfig) ApplyDefaults() {
	if r.Key == "" {
		r.Key = reporter.DefaultRedisKey
	}
	if r.MaxLen <= 0 {
		r.MaxLen = 10000
	}
}

// ApplyDefaults 应用 Kafka 输出默认值
func (k *KafkaReporterConfig) ApplyDefaults() {
	if k.Topic == "" {
		k.Topic = DefaultKafkaTopic
	}
}

// ApplyDefaults 应用 Reporter 配置默认值
func (r *ReporterConfig) ApplyDefaults() {
	r.File.ApplyDefaults()
	r.Redis.ApplyDefaults()
	r.Kafka.ApplyDefaults()
}

// ==================== KafkaConfig 默认值 ====================

// ApplyDefaults 应用 Kafka 配置默认值
func (k *KafkaConfig) ApplyDefaults() {
	if k.Topic == "" {
		k.Topic = DefaultKafkaTopic
	}
	if k.RequiredAcks == "" {
		k.RequiredAcks = "all"
	}
	if k.MaxAttempts <= 0 {
		k.MaxAttempts = 3
	}
}

// ==================== ClassifierConfig 默认值 ====================

// ApplyDefaults 应用分类器配置默认值
func (c *ClassifierConfig) ApplyDefaults() {
	c.Reporter.ApplyDefaults()
	c.Kafka.ApplyDefaults()
	if c.Reporter.Kafka.Topic == DefaultKafkaTopic && c.Kafka.Topic != "" {
		c.Reporter.Kafka.Topic = c.Kafka.Topic
	}
}

// ==================== TracingConfig 默认值 ====================

// ApplyDefaults 应用 Tracing 配置默认值
func (t *TracingConfig) ApplyDefaults() {
	if t.Exporter == "" {
		t.Exporter = "stdout"
	}
	if t.SampleRatio <= 0 {
		t.SampleRatio = 1.0
	}
}
