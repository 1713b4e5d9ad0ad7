// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collection

import (
	"errors"
	"fmt"
)

// Sentinel errors for collection API calls.
var (
	// ErrSearchFailed indicates the keyword search could not be completed.
	// It is fatal for a search run.
	ErrSearchFailed = errors.New("collection search failed")

	// ErrFetchFailed indicates a single object record could not be fetched.
	// Callers skip the object and continue.
	ErrFetchFailed = errors.New("object fetch failed")
)

// SearchError wraps the cause of a failed keyword search.
type SearchError struct {
	Keyword string
	Err     error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("searching for %q: %v", e.Keyword, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSearchFailed) true for any *SearchError.
func (e *SearchError) Is(target error) bool { return target == ErrSearchFailed }

// FetchError wraps the cause of a failed object fetch.
type FetchError struct {
	ObjectID int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching object %d: %v", e.ObjectID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFetchFailed) true for any *FetchError.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }
