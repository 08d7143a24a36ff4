// Package redis provides helpers for connecting to Redis with go-redis.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Connect retries until the server answers a PING or the attempts run out.
// Healthcheck returns a probe for the HTTP readiness endpoint. Errors wrap
// the package sentinels with errors.Join, so errors.Is works on them.
package redis
