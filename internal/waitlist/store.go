// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package waitlist

import "context"

// Repository is the persistence boundary for waitlist signups.
type Repository interface {
	// Create inserts a signup. A duplicate patient email surfaces as the
	// distinguished ALREADY_ON_WAITLIST conflict, not a generic error.
	Create(context context.Context, entry *Entry) error

	// List returns one page of signups, newest first, plus the total count
	// matching the filter.
	List(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error)

	// Count returns the total number of signups across both audiences.
	Count(context context.Context) (int, error)

	Delete(context context.Context, id string) error
}
