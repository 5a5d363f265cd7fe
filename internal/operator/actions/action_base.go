package actions

import (
	"context"

	"github.com/weverton790458597/DashBoard/internal/storage"
)

// IAction is a state mutation run by the operator inside a storage writer.
// Returning an error rolls the writer back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
	Name() string
}
