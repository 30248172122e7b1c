package config

import (
	"os"
	"strings"
)

// 敏感信息名称
const (
	SecretRedisPassword = "REDIS_PASSWORD"
	SecretKafkaPassword = "KAFKA_PASSWORD"
)

// GetSecretOrEnv 从 Docker Secret 文件或环境变量读取敏感信息
// 优先级: {NAME}_FILE 指定的文件 > {NAME} 环境变量 > 默认值
//
// 示例:
//
//	password := GetSecretOrEnv("REDIS_PASSWORD", "")
//	// 如果 REDIS_PASSWORD_FILE=/run/secrets/redis-password 存在，读取文件内容
//	// 否则读取 REDIS_PASSWORD 环境变量
//	// 都不存在则返回默认值
func GetSecretOrEnv(name string, defaultValue string) string {
	// 检查 {NAME}_FILE 环境变量
	filePath := os.Getenv(name + "_FILE")
	if filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	// 回退到环境变量
	if value := os.Getenv(name); value != "" {
		return value
	}

	return defaultValue
}

// LoadConfigWithSecrets 加载配置并注入 Secrets
// 这是 LoadConfig 的增强版本，支持 Docker Secrets
//
// 示例:
//
//	cfg := &Config{}
//	if err := LoadConfigWithSecrets(cfg, ClassifierSecrets(&cfg.Classifier)); err != nil {
//	    log.Fatal(err)
//	}
func LoadConfigWithSecrets(cfg interface{}, secrets []SecretDefinition, opts ...LoadOptions) error {
	// 先加载 YAML 配置
	if err := LoadConfig(cfg, opts...); err != nil {
		return err
	}

	// 然后注入 Secrets
	for _, s := range secrets {
		value := GetSecretOrEnv(s.Name, s.Default)
		if s.Required && value == "" {
			return &SecretNotFoundError{Name: s.Name}
		}
		if s.Target != nil && value != "" {
			*s.Target = value
		}
	}

	return nil
}

// ClassifierSecrets 返回分类器所需的 Secret 定义
// Redis / Kafka 密码均为可选，未设置时保留配置文件中的值
func ClassifierSecrets(cfg *ClassifierConfig) []SecretDefinition {
	return []SecretDefinition{
		{Name: SecretRedisPassword, Target: &cfg.Redis.Password},
		{Name: SecretKafkaPassword, Target: &cfg.Kafka.Password},
	}
}

// SecretDefinition Secret 定义
type SecretDefinition struct {
	Name     string  // Secret 名称 (如 REDIS_PASSWORD)
	Target   *string // 目标字段指针
	Default  string  // 默认值
	Required bool    // 是否必需
}

// SecretNotFoundError Secret 未找到错误
type SecretNotFoundError struct {
	Name string
}

func (e *SecretNotFoundError) Error() string {
	return "required secret not found: " + e.Name
}
