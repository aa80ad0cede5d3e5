// Command ffiutil inspects and exercises the FFI boundary toolkit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Phasix-ESD/FFI-Utils/pkg/capi"
	"github.com/Phasix-ESD/FFI-Utils/pkg/logging"
)

func main() {
	root := &cobra.Command{
		Use:           "ffiutil",
		Short:         "Inspection helpers for the FFI boundary toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(versionCmd(), selfcheckCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the toolkit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), capi.ToolkitVersion())
		},
	}
}

func selfcheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Exercise the boundary conversions in-process",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(nil)
			if quiet {
				logger = logging.Nop()
			}
			return selfcheck(cmd.Context(), logger)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress logging")
	return cmd
}

func selfcheck(ctx context.Context, logger logging.Logger) error {
	baseline := capi.LiveHandles()

	ptr := capi.Own(42)
	v, err := capi.Reclaim[int](ptr)
	if err != nil || v != 42 {
		return fmt.Errorf("own/reclaim round-trip failed: got %d, %v", v, err)
	}
	logger.Info(ctx, "own/reclaim round-trip ok")

	sptr := capi.StringToPtr("selfcheck", "hello boundary")
	s, err := capi.ReclaimString(sptr)
	if err != nil || s != "hello boundary" {
		return fmt.Errorf("string round-trip failed: got %q, %v", s, err)
	}
	logger.Info(ctx, "string round-trip ok")

	if p := capi.ResultToPtr("selfcheck", "", errors.New("boom")); p != nil {
		return errors.New("failure funnel returned a non-nil pointer")
	}
	if msg := capi.LastError(); msg != "Error selfcheck: boom" {
		return fmt.Errorf("failure funnel recorded %q", msg)
	}
	logger.Info(ctx, "failure funnel ok", "last_error", capi.LastError())

	if live := capi.LiveHandles(); live != baseline {
		return fmt.Errorf("handle leak: %d live handles, baseline %d", live, baseline)
	}
	logger.Info(ctx, "no leaked handles", "live", capi.LiveHandles())
	return nil
}
