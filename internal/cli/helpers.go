package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// commandContext returns the cobra-provided context, falling back to
// context.Background for direct invocations.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
