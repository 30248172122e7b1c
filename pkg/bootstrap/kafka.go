package bootstrap

import (
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/rpcerr-lib/pkg/config"
	"github.com/Goden-Gun/rpcerr-lib/pkg/kafka"
)

// InitKafka 初始化未知错误记录使用的 Kafka publisher
func InitKafka(cfg config.KafkaConfig) (*kafka.Publisher, error) {
	cfg.ApplyDefaults()
	publisher, err := kafka.NewPublisher(cfg.PublisherConfig())
	if err != nil {
		log.Errorf("kafka初始化失败: %v", err)
		return nil, err
	}
	log.WithField("topic", publisher.Topic()).Info("kafka publisher initialized")
	return publisher, nil
}
