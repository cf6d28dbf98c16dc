// Package redis connects to Redis with go-redis/v9 and exposes a readiness
// check. The client backs the shared rate-limit store when more than one
// instance serves traffic.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//
//		store, err := ratelimit.NewRedisStore(client)
//		...
//	}
package redis
