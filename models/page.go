// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page is one page of a paginated listing.
type Page[T any] struct {
	// Items holds the records of the requested page. It is never nil so that
	// an empty page serializes as [].
	Items []T `json:"items"`

	// Count is the total number of records matching the filters
	// across all pages.
	Count int64 `json:"count"`

	// Page is the 1-based number of the returned page.
	Page int `json:"page"`

	// PageSize is the maximum number of items per page.
	PageSize int `json:"page_size"`
}
