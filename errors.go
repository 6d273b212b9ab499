package scope

import "errors"

// Error taxonomy. Configuration and compile failures are fatal for the
// back-end that hit them; a transient lack of a drawable target is not an
// error at all and is retried silently by the paint loop.
var (
	// ErrConfiguration is returned when the surface configuration cannot
	// satisfy the requested pixel format or capabilities.
	ErrConfiguration = errors.New("scope: surface configuration failed")

	// ErrCompile is returned when a shader fails to compile or link. A
	// painter holding an invalid program must refuse to draw.
	ErrCompile = errors.New("scope: shader compilation failed")

	// ErrInvalidSampleOrder is returned by Append only when strict
	// ordering is enabled and a sample's time precedes the previous
	// sample's. The default behavior is permissive: out-of-order samples
	// produce a rendering artifact, not an error.
	ErrInvalidSampleOrder = errors.New("scope: sample time precedes previous sample")
)
