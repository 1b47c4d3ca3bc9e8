// Package allocation simulates fixed-partition contiguous memory allocation.
//
// Each block hosts at most one process for the whole run; the unused remainder
// of a block is internal fragmentation and is never handed to another process.
// Processes are placed strictly in input order.
package allocation
