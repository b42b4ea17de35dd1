// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Lunar apsides, maximum elongation, Venus peak magnitude search
// 0.2.0 - Rise/set and hour angle searches, seasons, moon quarters, TUI dashboard
// 0.1.0 - Initial release: VSOP87/lunar-theory ephemeris, time scales, frames
