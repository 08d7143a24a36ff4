// Package session implements server-side sessions for authenticated users.
//
// A session binds a random 256-bit token to exactly one user id. The token
// travels to the client in an encrypted HTTP-only cookie (CookieTransport);
// everything else stays on the server in a Store.
//
// # Stores
//
// MemoryStore keeps sessions in process memory. MongoStore uses the token
// as document _id with a TTL index on expires_at. RedisStore keeps one JSON
// value per session with a matching key TTL. Stores return sessions as they
// are; the Manager decides whether one is expired.
//
// # Lifetime
//
// A session expires after Config.IdleTimeout of inactivity, but never lives
// longer than Config.MaxLifetime. Resolve extends the idle deadline at most
// once per Config.ActivityUpdateThreshold. A zero IdleTimeout gives every
// session a fixed lifetime of MaxLifetime.
//
// # Usage
//
//	mgr := session.NewFromConfig(cfg,
//		session.WithStore(session.NewMongoStore(db)),
//		session.WithCookieManager(cookies),
//		session.WithLogger(log),
//	)
//	mgr.StartCleanup(ctx)
//
//	// login
//	if _, err := mgr.Issue(ctx, w, r, user.ID); err != nil { ... }
//
//	// protected routes
//	r.With(mgr.RequireAuth).Get("/me", me)
//
//	// inside a handler
//	userID, _ := session.UserIDFromContext(r.Context())
package session
