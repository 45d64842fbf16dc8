// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package models

import "time"

// SessionRecord is the durable marker of "who is currently logged in". At
// most one instance is persisted at a time, in a file separate from the user
// list.
//
// The identity fields are a snapshot taken at login time, not a live
// reference: a later edit to the user record (e.g. a full-name change) does
// not retroactively update an already-persisted session.
type SessionRecord struct {
	// ID mirrors the authenticated user's record ID.
	ID string `json:"id"`

	// Username mirrors the display-form username at login time.
	Username string `json:"username"`

	// FullName mirrors the display name at login time.
	FullName string `json:"full_name"`

	// LoginTime is the moment the session was established.
	LoginTime time.Time `json:"login_time"`
}

// SnapshotSession builds a [SessionRecord] from the authenticated user at the
// given login time.
func SnapshotSession(user UserRecord, loginTime time.Time) SessionRecord {
	return SessionRecord{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		LoginTime: loginTime,
	}
}
