// Package auth implements email and password accounts.
//
// Service.Register normalizes and validates input, hashes the password with
// a Hasher (bcrypt by default) and stores the user. Service.Authenticate
// checks credentials and returns ErrInvalidCredentials for both unknown
// emails and wrong passwords, spending a bcrypt comparison in either case.
//
// Two Storage implementations are provided: MemoryStorage for tests and
// MongoStorage, which relies on a unique index on email.
//
//	users := auth.NewMongoStorage(db)
//	if err := users.EnsureIndexes(ctx); err != nil {
//		return err
//	}
//	svc := auth.NewFromConfig(cfg, users, auth.WithLogger(log))
//
//	user, err := svc.Authenticate(ctx, email, password)
//	if errors.Is(err, auth.ErrInvalidCredentials) {
//		// 401
//	}
package auth
