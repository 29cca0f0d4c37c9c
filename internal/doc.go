// Package meterseed implements an interactive seeder for synthetic
// power-meter telemetry.
//
// # Architecture
//
// The tool is structured into several key packages:
//   - simulator: synthetic telemetry series generation
//   - storage: MongoDB persistence behind a repository interface
//   - prompt: interactive mode and action selection
//   - app: dispatch of the insert and delete actions
//   - config: YAML + environment configuration
//   - models: shared data structures
//
// Key Behavior
//
//   - Series Generation:
//     One record per calendar day over a trailing two-month range
//     (configurable), with monotonically increasing cumulative energy
//     and per-record randomized electrical quantities.
//
//   - Modes:
//     Normal mode accumulates household-scale energy (+0.003/day);
//     greater mode simulates a heavy consumer (+0.5/day).
//
//   - Storage:
//     Records are inserted wholesale with a single bulk write, or the
//     collection is cleared with a single delete. One attempt is made;
//     the connection is always released on the way out.
//
// For more information about specific packages, see their respective
// documentation.
package meterseed
