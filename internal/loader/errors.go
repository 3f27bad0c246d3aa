package loader

import (
	"errors"
	"fmt"
)

// ErrRenderFailed is the single failure kind of a render attempt; every RenderError matches it.
var ErrRenderFailed = errors.New("render failed")

var (
	// ErrUpstreamStatus means the endpoint answered with a non 2xx HTTP status code.
	ErrUpstreamStatus = errors.New("endpoint returned non 2xx HTTP status code")
	// ErrInvalidJSON means the response body is not a JSON document.
	ErrInvalidJSON = errors.New("response body is not valid JSON")
)

// Stage names the step of a render attempt that failed.
type Stage string

const (
	StageFetch   Stage = "fetch"
	StageStatus  Stage = "status"
	StageDecode  Stage = "decode"
	StageMap     Stage = "map"
	StageSurface Stage = "surface"
	StageDraw    Stage = "draw"
)

// RenderError describes a failed render attempt.
type RenderError struct {
	Endpoint  string
	SurfaceID string
	Stage     Stage
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed for surface %q from %s (%s): %v", e.SurfaceID, e.Endpoint, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrRenderFailed, e.Err}
}

func newRenderError(endpoint, surfaceID string, stage Stage, err error) *RenderError {
	return &RenderError{
		Endpoint:  endpoint,
		SurfaceID: surfaceID,
		Stage:     stage,
		Err:       err,
	}
}
