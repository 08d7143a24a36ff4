// Package todo implements per-user to-do items.
//
// Every operation takes the owner id explicitly and every storage query
// filters on it. A todo that exists but belongs to someone else is
// reported exactly like a missing one, with ErrNotFound.
package todo
