package bootstrap

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/rpcerr-lib/pkg/config"
)

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled      bool            `yaml:"enabled" mapstructure:"enabled"`
	Dir          string          `yaml:"dir" mapstructure:"dir"`
	Filename     string          `yaml:"filename" mapstructure:"filename"`
	MaxAge       config.Duration `yaml:"max_age" mapstructure:"max_age"`
	RotationTime config.Duration `yaml:"rotation_time" mapstructure:"rotation_time"`
}

// LoggerOptions 日志初始化选项
type LoggerOptions struct {
	// ServiceName 服务名称，用于日志文件命名和 service 字段
	ServiceName string
	// FileConfig 日志文件配置，nil 则不输出到文件
	FileConfig *LogFileConfig
	// AddContainerHook 是否添加容器ID钩子
	AddContainerHook bool
	// Output 控制台输出，默认 os.Stdout
	Output io.Writer
}

// fieldsHook 为每条日志添加固定字段
type fieldsHook struct {
	fields log.Fields
}

func (h *fieldsHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *fieldsHook) Fire(entry *log.Entry) error {
	for k, v := range h.fields {
		if _, exists := entry.Data[k]; !exists {
			entry.Data[k] = v
		}
	}
	return nil
}

// detectContainerID 检测容器ID
func detectContainerID() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}

	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		hostname := strings.TrimSpace(string(data))
		if hostname != "" {
			return hostname
		}
	}

	return "unknown"
}

// InitLogger 初始化日志，仅设置格式和级别，不输出到文件
func InitLogger(cfg config.LogConfig) error {
	return InitLoggerWithOptions(cfg, LoggerOptions{})
}

// InitLoggerWithFile 初始化日志并输出到按天轮转的文件
func InitLoggerWithFile(cfg config.LogConfig, serviceName string) error {
	return InitLoggerWithOptions(cfg, LoggerOptions{
		ServiceName:      serviceName,
		FileConfig:       &LogFileConfig{Enabled: true},
		AddContainerHook: true,
	})
}

// InitLoggerWithOptions 使用完整选项初始化日志
func InitLoggerWithOptions(cfg config.LogConfig, opts LoggerOptions) error {
	cfg.ApplyDefaults()

	// 设置日志格式
	switch cfg.Format {
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}

	// 设置日志级别
	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	// 设置打印调用信息
	log.SetReportCaller(cfg.ReportCaller)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)

	// 设置文件输出
	if opts.FileConfig != nil && opts.FileConfig.Enabled {
		writer, err := openLogFile(opts.FileConfig, opts.ServiceName)
		if err != nil {
			return err
		}
		log.SetOutput(io.MultiWriter(out, writer))
	}

	// 添加固定字段钩子
	fields := log.Fields{}
	if opts.ServiceName != "" {
		fields["service"] = opts.ServiceName
	}
	if opts.AddContainerHook {
		fields["container_id"] = detectContainerID()
	}
	if len(fields) > 0 {
		log.AddHook(&fieldsHook{fields: fields})
	}

	return nil
}

// openLogFile 打开按时间轮转的日志文件
func openLogFile(fileCfg *LogFileConfig, serviceName string) (*rotatelogs.RotateLogs, error) {
	logDir := fileCfg.Dir
	if logDir == "" {
		logDir = "./logs"
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Errorf("创建日志目录失败: %v", err)
		return nil, err
	}

	filename := fileCfg.Filename
	if filename == "" {
		filename = serviceName
	}
	if filename == "" {
		filename = "app"
	}

	maxAge := fileCfg.MaxAge.Duration()
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}

	rotationTime := fileCfg.RotationTime.Duration()
	if rotationTime <= 0 {
		rotationTime = 24 * time.Hour
	}

	writer, err := rotatelogs.New(
		filepath.Join(logDir, filename+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(logDir, filename+".log")),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
	)
	if err != nil {
		log.Errorf("设置日志输出失败: %v", err)
		return nil, err
	}
	return writer, nil
}
