// Package todos exposes owner-scoped CRUD for to-do items over JSON.
//
// Every route reads the caller from session.UserIDFromContext, so the
// router must be mounted behind session.Manager.RequireAuth. A todo that
// belongs to another user, a missing todo and a malformed id all produce
// the same 404 response.
package todos
