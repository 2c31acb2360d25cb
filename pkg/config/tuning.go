// pkg/config/tuning.go
package config

import "time"

// Flight tuning. These are fixed for every build and are not
// part of GameConfig.
const (
	DartRadius      = 16.0   // px, also the wall and ceiling inset
	MaxPull         = 110.0  // px, longest effective drag
	PowerScale      = 18.0   // launch speed per px of pull
	Gravity         = 1800.0 // px/s²
	HitRadius       = 40.0   // px around a target center
	MinFireDistance = 12.0   // px, shorter drags are taps
	PreviewDeadZone = 8.0    // px, shorter drags show no preview

	PreviewSteps    = 12
	PreviewStepTime = 0.06 // s between preview samples

	FloorMargin    = 30.0 // px between floor level and the bottom edge (after the radius)
	FloorClearance = 8.0  // px, floor never rises above DartRadius+FloorClearance
	RestRotation   = -45.0
	GrabRadius     = 2 * DartRadius

	MaxFlightDuration = 3 * time.Second
	MissResetDelay    = 400 * time.Millisecond
	HitResetDelay     = 600 * time.Millisecond
	HighlightDuration = 1200 * time.Millisecond
	ToastLifetime     = 1600 * time.Millisecond
)
