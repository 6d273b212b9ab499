// Package scope renders a continuously-growing time-amplitude signal on a
// bounded visible window, redrawing as new samples arrive.
//
// # Overview
//
// The package holds the algorithmic core shared by both painter back-ends:
// an append-only sample store, a sliding-window selector that decides which
// samples are on screen, a coordinate transformer that maps samples to
// device and clip-space coordinates, and a primitive builder that rebuilds
// the drawable polyline on every update. The render subpackage provides the
// two painters (CPU pixmap and GPU line strip) and the self-driven paint
// loop; the surface subpackage defines the host surface contract.
//
// # Quick Start
//
//	osc := scope.New(scope.WithTimeScale(4), scope.WithSize(800, 600))
//	osc.SetActive(true)
//	osc.Append(scope.Sample{Time: 0.1, Amp: 0.7})
//
//	p := render.NewSoftwarePainter()
//	target := render.NewPixmapTarget(800, 600)
//	p.Paint(target, osc.Frame())
//
// # Concurrency
//
// An Oscilloscope owns all mutable core state behind a single mutex.
// Append, SetActive, the configuration setters and Frame are safe to call
// from any goroutine; painters consume immutable Frame snapshots.
//
// # Logging
//
// By default the package produces no log output. Call SetLogger to enable
// structured logging via log/slog.
package scope
