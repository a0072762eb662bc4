// Package models defines the core domain models for the volleyball group app.
//
// # Stored models
//
// Three collections are persisted, always in normalized form:
//   - User: a registered member of the group
//   - Event: a scheduled game (never stores its participants)
//   - AttendanceRecord: one user's status for one event, keyed by (eventID, userID)
//
// # Derived models
//
// The following are assembled on read and never persisted:
//   - Participant: an attendance record joined with its user
//   - VolleyballEvent: an event hydrated with its participant list
//   - DebtItem: money a user owes for one overdue, unpaid event
//
// # Design principles
//
// 1. Relationships use ID strings, not pointers, to avoid circular references
// 2. Stored and derived models are kept strictly separate; hydrated views are
//    owned by the caller that requested them
// 3. Models carry both json and bson tags so the same types serve the local
//    blob store and the Mongo backend
package models
