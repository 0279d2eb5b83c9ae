package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBasics(t *testing.T) {
	err := Newf("frame count %d below minimum", 200).
		Component("runs").
		Category(CategoryValidation).
		Context("frames", 200).
		FileContext("/data/ts.nii").
		Build()

	assert.Equal(t, "frame count 200 below minimum", err.Error())
	assert.Equal(t, "runs", err.GetComponent())
	assert.Equal(t, string(CategoryValidation), err.GetCategory())

	ctx := err.GetContext()
	assert.Equal(t, 200, ctx["frames"])
	assert.Equal(t, "/data/ts.nii", ctx["file"])
	assert.False(t, err.GetTimestamp().IsZero())
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := NewStd("underlying")
	err := New(fmt.Errorf("context: %w", cause)).Category(CategoryFileIO).Build()

	assert.True(t, Is(err, cause))
	assert.Equal(t, "context: underlying", err.Error())
}

// Category sentinels: two enhanced errors with the same category satisfy
// errors.Is regardless of message or cause.
func TestIsMatchesOnCategory(t *testing.T) {
	sentinel := Newf("output file already exists").
		Category(CategoryOutputExists).
		Build()

	err := Newf("output file already exists: /data/out.tsv").
		Category(CategoryOutputExists).
		FileContext("/data/out.tsv").
		Build()

	assert.True(t, Is(err, sentinel))

	other := Newf("row is malformed").Category(CategoryMalformedRow).Build()
	assert.False(t, Is(other, sentinel))
}

// Wrapping an enhanced error without setting a category keeps the inner
// category, so sentinels survive an extra layer of wrapping.
func TestWrapKeepsCategory(t *testing.T) {
	inner := Newf("row 5: malformed").Category(CategoryMalformedRow).Build()
	outer := New(fmt.Errorf("reading motion file: %w", inner)).Build()

	assert.Equal(t, CategoryMalformedRow, outer.Category)
	assert.True(t, IsCategory(outer, CategoryMalformedRow))
}

func TestIsCategory(t *testing.T) {
	err := Newf("timeseries missing").Category(CategoryMissingTimeseries).Build()

	assert.True(t, IsCategory(err, CategoryMissingTimeseries))
	assert.False(t, IsCategory(err, CategoryMissingInput))
	assert.False(t, IsCategory(NewStd("plain"), CategoryMissingTimeseries))

	// works through standard wrapping too
	wrapped := fmt.Errorf("session failed: %w", err)
	assert.True(t, IsCategory(wrapped, CategoryMissingTimeseries))
}

func TestIsNotFound(t *testing.T) {
	err := Newf("func directory does not exist").Category(CategoryNotFound).Build()
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(NewStd("nope")))
}

func TestValidationErrorHelper(t *testing.T) {
	err := ValidationError("labels must be specified")
	require.NotNil(t, err)
	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, "labels must be specified", err.Error())
}

func TestFileErrorHelper(t *testing.T) {
	err := FileError(NewStd("permission denied"), "/data/bids/sub-01")
	assert.Equal(t, CategoryFileIO, err.Category)
	assert.Equal(t, "/data/bids/sub-01", err.GetContext()["file"])
}

func TestDetectCategoryFallback(t *testing.T) {
	err := New(NewStd("failed to open file")).Build()
	assert.Equal(t, CategoryFileIO, err.Category)

	err = New(NewStd("invalid dimension count")).Build()
	assert.Equal(t, CategoryValidation, err.Category)

	err = New(NewStd("something else entirely")).Build()
	assert.Equal(t, CategoryGeneric, err.Category)
}
