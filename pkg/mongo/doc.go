// Package mongo provides MongoDB connection management.
//
// Configuration is read from the environment through Config:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Client().Disconnect(context.Background())
//
// New retries the initial connection (useful while a container is still
// starting) and pings the server before returning. Storages call
// EnsureIndexes on start to declare their unique and TTL indexes, and
// Healthcheck plugs into the HTTP readiness probe.
package mongo
