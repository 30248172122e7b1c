// Package bootstrap wires the classifier and its supporting infrastructure
// from configuration.
//
// It consolidates the initialization every embedding service repeats:
//   - Logger setup with file rotation
//   - Redis and Kafka connections for the unknown-error sinks
//   - OpenTelemetry tracing initialization
//   - Catalog, reporter and classifier assembly
//
// Example usage:
//
//	func main() {
//	    cfg := &Config{}
//	    if err := config.LoadConfigWithSecrets(cfg, config.ClassifierSecrets(&cfg.Classifier)); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := bootstrap.InitLogger(cfg.Log); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
//	    if err != nil {
//	        log.Warn(err)
//	    }
//	    defer shutdown(ctx)
//
//	    stack, err := bootstrap.InitClassifier(ctx, cfg.Classifier)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer stack.Close()
//
//	    conn, err := grpc.NewClient(addr,
//	        grpc.WithUnaryInterceptor(classify.UnaryClientInterceptor(stack.Classifier)))
//	}
package bootstrap
