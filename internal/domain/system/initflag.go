// Package system holds small operational records that do not belong to any
// business context, currently just the one-shot catalog seed flag.
package system

import "context"

// InitFlagRepository tracks whether the catalog seed has already run. The
// flag survives restarts like every other record.
type InitFlagRepository interface {
	IsInitialized(ctx context.Context) (bool, error)
	MarkInitialized(ctx context.Context) error
}
