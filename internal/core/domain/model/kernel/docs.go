// Package kernel holds shared value objects used across aggregates.
package kernel
