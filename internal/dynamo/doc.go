// Package dynamo provides the shared value types of the airbag simulation.
//
// The package defines the per-frame state owned by each component:
//
//   - [AnimatorState]: progress angle, terminal flag and status of one scenario
//   - [AirbagState]: deployment progress of the protected fall
//   - [DashboardState]: elapsed time, battery, summary and alert flags
//   - [GPSFix]: the constant position reported by the alert panel
//
// All values are plain data. Mutation happens only inside the owning
// component in packages scenario and dashboard.
package dynamo
