package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/desktop"
	"github.com/username/holiday-calendar/internal/server"
	"github.com/username/holiday-calendar/pkg/dateutil"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func showCmd() *cobra.Command {
	var prev, next bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [YYYY-MM]",
		Short: "Show a month with holidays and makeup workdays",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.Today()
			year, month := today.Year(), today.Month()

			if len(args) == 1 {
				t, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
				}
				year, month = t.Year(), t.Month()
			}
			if prev && next {
				return fmt.Errorf("--prev and --next are mutually exclusive")
			}
			if prev {
				year, month = calendar.PrevMonth(year, month)
			}
			if next {
				year, month = calendar.NextMonth(year, month)
			}

			a, err := initializeApp(false)
			if err != nil {
				return err
			}

			c := a.resolver.Resolve(cmd.Context(), year)
			view := calendar.BuildMonth(year, month, c, today)

			color := !noColor && term.IsTerminal(int(os.Stdout.Fd()))
			renderMonth(os.Stdout, view, color)
			return nil
		},
	}

	cmd.Flags().BoolVar(&prev, "prev", false, "Show the month before")
	cmd.Flags().BoolVar(&next, "next", false, "Show the month after")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	return cmd
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Classify a single date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dateutil.Today()
			if len(args) == 1 {
				parsed, err := dateutil.ParseDate(args[0])
				if err != nil {
					return err
				}
				d = parsed
			}

			a, err := initializeApp(false)
			if err != nil {
				return err
			}

			c := a.resolver.Resolve(cmd.Context(), d.Year())
			status := calendar.Classify(d, c)

			fmt.Printf("%s (%s): %s\n", dateutil.FormatDate(d), d.Weekday(), status)
			return nil
		},
	}
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <year>...",
		Short: "Resolve years ahead of time and populate the cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years := make([]int, 0, len(args))
			for _, arg := range args {
				year, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", arg, err)
				}
				years = append(years, year)
			}

			a, err := initializeApp(true)
			if err != nil {
				return err
			}

			fmt.Println("📅 Holiday data")
			fmt.Println("═══════════════════════════════════════════════════════")
			for _, year := range years {
				if !a.resolver.InRange(year) {
					fmt.Printf("  %d: outside fetchable range, skipped unless cached\n", year)
				}
				c := a.resolver.Resolve(cmd.Context(), year)
				fmt.Printf("  %d: %d holidays, %d makeup workdays\n",
					year, len(c.Holidays), len(c.MakeupWorkdays))
			}
			fmt.Printf("\nCache directory: %s\n", a.cfg.Cache.Dir)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the holiday lookup HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(true)
			if err != nil {
				return err
			}
			a.registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			handler := server.NewHandler(a.resolver, logger)
			router := server.NewRouter(handler, a.registry, a.metrics, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, addr, router.SetupRoutes(), a.cfg.Server.GetShutdownTimeout(), logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func trayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Run as a system tray application (Windows only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp(false)
			if err != nil {
				return err
			}

			app, err := desktop.NewTrayApp(a.resolver, logger)
			if err != nil {
				return err
			}

			// Warm the current year so the first tooltip does not block on the network
			go a.resolver.Resolve(context.Background(), dateutil.Today().Year())

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				sig := <-sigChan
				logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
				app.Stop()
			}()

			app.Run()
			return nil
		},
	}
}
