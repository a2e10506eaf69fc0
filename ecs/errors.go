package ecs

import "errors"

// Configuration errors. They are returned when a run is created and never
// while it is ticking.
var (
	ErrSpawnTable    = errors.New("ecs: invalid spawn table")
	ErrSpawnInterval = errors.New("ecs: invalid spawn interval")
	ErrRunLength     = errors.New("ecs: invalid run length")
	ErrKindSpec      = errors.New("ecs: invalid kind spec")
	ErrCatalog       = errors.New("ecs: empty message catalog")
	ErrWorld         = errors.New("ecs: invalid world bounds")
	ErrSpeedCurve    = errors.New("ecs: invalid speed curve")
)
