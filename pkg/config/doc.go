// Package config provides the configuration types and loader for services
// embedding the RPC error classifier.
//
// Usage:
//
//	import "github.com/Goden-Gun/rpcerr-lib/pkg/config"
//
//	type MyConfig struct {
//	    Log        config.LogConfig        `yaml:"log" mapstructure:"log"`
//	    Classifier config.ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
//	    // ... service-specific configs
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    secrets := config.ClassifierSecrets(&cfg.Classifier)
//	    if err := config.LoadConfigWithSecrets(cfg, secrets); err != nil {
//	        return nil, err
//	    }
//	    cfg.Classifier.ApplyDefaults()
//	    return cfg, nil
//	}
package config
