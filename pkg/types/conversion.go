// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the number of documents attempted.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// OK reports whether at least one document was attempted and all converted.
func (r BatchResult) OK() bool {
	return r.Total() > 0 && r.Failed == 0
}
