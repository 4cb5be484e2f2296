package errcodes

import "errors"

var (
	ErrMissingDataset       = errors.New("dataset is missing")
	ErrDatasetIsDir         = errors.New("dataset path is a directory")
	ErrDatasetMalformed     = errors.New("dataset is not valid search result JSON")
	ErrDatasetQueryFailed   = errors.New("dataset contains a failed query")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrInvalidReferenceTime = errors.New("reference time must be in RFC 3339 format")
	ErrInvalidSortOrder     = errors.New("sort order is unknown, expected (none, created)")
	ErrInvalidInterval      = errors.New("interval must be a positive duration")
	ErrNoActivities         = errors.New("no activities to choose from")
)
