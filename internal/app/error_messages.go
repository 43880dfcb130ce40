// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message strings used by the
// dealwatch displays (terminal UI and headless output).
//
// Keeping them in one place ensures consistent wording across displays.
package app

const (
	// MsgNoDeals is shown when the server returned an empty deals list.
	MsgNoDeals = "no deals yet"

	// MsgWaitingForDeals is shown until the first refresh has rendered.
	MsgWaitingForDeals = "waiting for the next deals refresh"

	// MsgNoteDeleted is shown after a successful delete and navigation.
	MsgNoteDeleted = "note deleted"

	// MsgDeleteFailed prefixes the error of a failed delete.
	MsgDeleteFailed = "delete failed"

	// MsgRefreshFailed prefixes the error of a failed manual refresh.
	MsgRefreshFailed = "refresh failed"

	// MsgEnterNoteID is the prompt of the note deletion input.
	MsgEnterNoteID = "note id to delete"
)
