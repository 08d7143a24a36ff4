// Package account exposes credential registration, login, logout and the
// current-user endpoint over JSON.
//
// Successful register and login calls issue a session through
// session.Manager, which sets the session cookie on the response:
//
//	accountSvc := account.NewService(authSvc, sessionMgr,
//		account.WithErrorHandler(handler.NewErrorHandler(log)),
//	)
//	r.Mount("/api/auth", accountSvc.Handle())
//
// Login failures for an unknown email and for a wrong password produce the
// same 401 invalid_credentials response.
package account
