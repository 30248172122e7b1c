package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/rpcerr-lib/pkg/catalog"
	"github.com/Goden-Gun/rpcerr-lib/pkg/classify"
	"github.com/Goden-Gun/rpcerr-lib/pkg/config"
	"github.com/Goden-Gun/rpcerr-lib/pkg/reporter"
)

// ClassifierStack 分类器及其依赖资源
type ClassifierStack struct {
	Classifier *classify.Classifier
	Reporter   *reporter.Reporter
	Catalog    *catalog.Catalog
	Redis      *redis.Client
}

// Close 关闭所有 sink 及 Redis 连接
func (s *ClassifierStack) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.Reporter != nil {
		errs = append(errs, s.Reporter.Close())
	}
	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}
	return errors.Join(errs...)
}

// InitClassifier 按配置组装目录、未知错误 sink、reporter 与分类器
func InitClassifier(ctx context.Context, cfg config.ClassifierConfig, opts ...classify.Option) (*ClassifierStack, error) {
	cfg.ApplyDefaults()

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	stack := &ClassifierStack{Catalog: cat}
	var sinks []reporter.Sink
	fail := func(err error) (*ClassifierStack, error) {
		for _, sink := range sinks {
			if c, ok := sink.(interface{ Close() error }); ok {
				_ = c.Close()
			}
		}
		if stack.Redis != nil {
			_ = stack.Redis.Close()
		}
		return nil, err
	}

	if !cfg.Reporter.File.Disabled {
		sink, err := openFileSink(cfg.Reporter.File)
		if err != nil {
			return fail(fmt.Errorf("open unknown error file: %w", err))
		}
		sinks = append(sinks, sink)
	}

	if cfg.Reporter.Redis.Enabled {
		client, err := InitRedis(ctx, cfg.Redis)
		if err != nil {
			return fail(fmt.Errorf("init redis sink: %w", err))
		}
		stack.Redis = client
		sinks = append(sinks, reporter.NewRedisSink(client, cfg.Reporter.Redis.Key, cfg.Reporter.Redis.MaxLen))
	}

	if cfg.Reporter.Kafka.Enabled {
		publisher, err := InitKafka(cfg.Kafka)
		if err != nil {
			return fail(fmt.Errorf("init kafka sink: %w", err))
		}
		sinks = append(sinks, reporter.NewKafkaSink(publisher, cfg.Reporter.Kafka.Topic))
	}

	stack.Reporter = reporter.New(sinks)
	stack.Classifier = classify.New(cat, append([]classify.Option{classify.WithRecorder(stack.Reporter)}, opts...)...)

	names := make([]string, 0, len(sinks))
	for _, sink := range sinks {
		names = append(names, sink.Name())
	}
	log.WithFields(log.Fields{
		"catalog_version": cat.Version(),
		"codes":           len(cat.Codes()),
		"kinds":           cat.Len(),
		"sinks":           names,
	}).Info("rpc error classifier initialized")

	return stack, nil
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(cfg.Path)
	if err != nil {
		log.Errorf("目录加载失败: %v", err)
		return nil, err
	}
	return cat, nil
}

func openFileSink(cfg config.FileReporterConfig) (*reporter.WriterSink, error) {
	if !cfg.Rotate {
		return reporter.OpenFileSink(cfg.Path)
	}
	return reporter.OpenRotatingFileSink(cfg.Dir, cfg.Filename, reporter.RotationOptions{
		MaxAge:       cfg.MaxAge.Duration(),
		RotationTime: cfg.RotationTime.Duration(),
	})
}
