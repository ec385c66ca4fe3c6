package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hbkit"
)

func newWatchCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "watch <page>",
		Short: "Re-render a page to a file whenever templates or messages change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, cmd, f, args[0])
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("out")
	cmd.Flags().Duration(keyWatchDebounce, 100*time.Millisecond, "wait for changes to settle before re-rendering")
	_ = a.v.BindPFlag(keyWatchDebounce, cmd.Flags().Lookup(keyWatchDebounce))
	return cmd
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, f *renderFlags, page string) error {
	log := a.logger(cmd)

	write := func(kit *hbkit.Kit) {
		out, err := f.render(kit, page)
		if err != nil {
			log.Error("render failed", slog.String("page", page), slog.String("error", err.Error()))
			return
		}
		if err := writeOutput(cmd.OutOrStdout(), f.out, out); err != nil {
			log.Error("write failed", slog.String("out", f.out), slog.String("error", err.Error()))
			return
		}
		log.Info("rendered", slog.String("page", page), slog.String("out", f.out))
	}

	kit, err := a.newKit(cmd, hbkit.WithOnReload(write))
	if err != nil {
		return err
	}
	write(kit)
	return kit.Watch(ctx)
}
