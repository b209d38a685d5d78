// Command planctl drives the planning core from the shell: plan a task,
// print its wire envelope, watch the runtime event stream, or query the
// journal index.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mindcraftce.ai/internal/config"
	"mindcraftce.ai/internal/envelope"
	"mindcraftce.ai/internal/journal"
	"mindcraftce.ai/internal/plan"
	"mindcraftce.ai/internal/planner"
	"mindcraftce.ai/internal/runtime"
	"mindcraftce.ai/internal/task"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "planctl",
		Short:         "Task planner for the mindcraftce NPC runtime",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to planner.yaml")

	rootCmd.AddCommand(planCmd(&configPath))
	rootCmd.AddCommand(envelopeCmd(&configPath))
	rootCmd.AddCommand(actionsCmd())
	rootCmd.AddCommand(watchCmd(&configPath))
	rootCmd.AddCommand(journalCmd(&configPath))

	return rootCmd.Execute()
}

func planCmd(configPath *string) *cobra.Command {
	var taskFile, ctxFile string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a task and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			req, err := readTask(taskFile)
			if err != nil {
				return err
			}
			ctx := &task.Context{}
			if ctxFile != "" {
				if err := readJSON(ctxFile, ctx); err != nil {
					return err
				}
			}
			p := planner.PlanTask(req, ctx)
			if p == nil {
				return fmt.Errorf("no planner for action %q", req.Action)
			}
			j, err := openJournal(cfg)
			if err != nil {
				return err
			}
			if j != nil {
				defer func() { _ = j.Close() }()
				_ = j.RecordPlan(*p)
			}
			return printJSON(cmd, p)
		},
	}
	cmd.Flags().StringVarP(&taskFile, "file", "f", "", "Task request JSON file (required)")
	cmd.Flags().StringVarP(&ctxFile, "context", "c", "", "World/agent context JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func envelopeCmd(configPath *string) *cobra.Command {
	var taskFile string
	var raw bool
	cmd := &cobra.Command{
		Use:   "envelope",
		Short: "Print the wire command for a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			req, err := readTask(taskFile)
			if err != nil {
				return err
			}
			a := envelope.NewAdapter(envelope.WithPrefix(cfg.Prefix))
			env := a.Build(req)
			if raw {
				return printJSON(cmd, env)
			}
			wire, err := a.WireCommand(env)
			if err != nil {
				return err
			}
			j, err := openJournal(cfg)
			if err != nil {
				return err
			}
			if j != nil {
				defer func() { _ = j.Close() }()
				_ = j.RecordEnvelope(env, wire)
			}
			fmt.Fprintln(cmd.OutOrStdout(), wire)
			return nil
		},
	}
	cmd.Flags().StringVarP(&taskFile, "file", "f", "", "Task request JSON file (required)")
	cmd.Flags().BoolVar(&raw, "json", false, "Print the envelope JSON instead of the wire command")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func actionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List registered action kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range planner.Default.Actions() {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}
}

func watchCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Subscribe to the runtime event stream and print events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.EventsURL == "" {
				return fmt.Errorf("no events url: set events_url or %s", runtime.EnvEventsURL)
			}

			j, err := openJournal(cfg)
			if err != nil {
				return err
			}
			if j != nil {
				defer func() { _ = j.Close() }()
			}

			d := runtime.NewDispatcher(nil, nil)
			d.Events().OnAny(func(ev runtime.Event) {
				b, _ := json.Marshal(ev)
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				if j != nil {
					_ = j.RecordEvent(ev)
				}
			})
			d.OnPlan(func(p plan.Plan) {
				b, _ := json.Marshal(p)
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			})

			s := runtime.NewStream(runtime.StreamConfig{URL: cfg.EventsURL, Reconnect: cfg.Reconnect()}, d, nil)
			if err := s.Start(); err != nil {
				return err
			}
			defer s.Close()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			return nil
		},
	}
	return cmd
}

func journalCmd(configPath *string) *cobra.Command {
	var limit int
	var envelopeID string
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query the journal index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.JournalDir == "" {
				return fmt.Errorf("journal_dir is not configured")
			}
			j, err := journal.Open(cfg.JournalDir)
			if err != nil {
				return err
			}
			defer func() { _ = j.Close() }()
			idx := j.Index()

			if envelopeID != "" {
				events, err := idx.EventsFor(envelopeID, limit)
				if err != nil {
					return err
				}
				for _, ev := range events {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-14s %s\n", ev.At, ev.Type, ev.EnvelopeID)
				}
				return nil
			}

			envs, err := idx.RecentEnvelopes(limit)
			if err != nil {
				return err
			}
			for _, e := range envs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %-8s %s\n", e.At, e.Action, e.Priority, e.ID)
			}
			plans, err := idx.RecentPlans(limit)
			if err != nil {
				return err
			}
			for _, p := range plans {
				status := p.Status
				if status == "" {
					status = "ok"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %-8s %dms  %s\n", p.At, p.Action, status, p.Duration, p.Summary)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rows per section")
	cmd.Flags().StringVar(&envelopeID, "envelope", "", "Show events for one envelope id")
	return cmd
}

func openJournal(cfg config.Config) (*journal.Journal, error) {
	if cfg.JournalDir == "" {
		return nil, nil
	}
	return journal.Open(cfg.JournalDir)
}

func readTask(path string) (*task.Request, error) {
	req := &task.Request{}
	if err := readJSON(path, req); err != nil {
		return nil, err
	}
	if req.Action == "" {
		return nil, fmt.Errorf("%s: task has no action", path)
	}
	return req, nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
