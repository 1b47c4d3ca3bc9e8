// Package sim provides the shared data model for the memory-management simulators.
//
// # Reading Guide
//
// The engines live in sub-packages; start with:
//   - sim/allocation/: contiguous allocation strategies (first, best, worst, next fit)
//     and the strategy comparison score
//   - sim/paging/: FIFO page replacement with per-step frame snapshots
//
// Supporting packages:
//   - sim/trace/: optional decision trace recording (candidate blocks, evictions)
//   - sim/scenario/: YAML scenario files, named presets, seeded generation
//   - sim/report/: text and JSON rendering of engine results
//
// # Engine Contract
//
// Every engine entry point is a pure function of its inputs. Working state
// (block occupancy, frame queue, next-fit cursor) is local to one call, so
// runs may be repeated or executed in parallel without coordination.
// Precondition failures are reported before any work is done and are
// marked with ErrInvalidInput.
//
// This package holds only what both engines share: ErrInvalidInput and the
// validation helpers, small numeric helpers, and the PartitionedRNG used by
// the scenario generator.
package sim
