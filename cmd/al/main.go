package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"accesslint/internal/catalog"
	"accesslint/internal/checks"
	"accesslint/internal/config"
	"accesslint/internal/db"
	"accesslint/internal/migrate"
	"accesslint/internal/report"
	"accesslint/internal/server"
	"accesslint/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "al",
	Short: "Accesslint CLI",
	Long: `Accesslint evaluates described page properties against WCAG 2.1 success
criteria and produces human and machine-readable reports. Checks are pure
and stateless; the CLI and server wrap them with auditing and transport.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("ACCESSLINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("title", "", "report title")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("title", rootCmd.PersistentFlags().Lookup("title"))
}

func registerCommands() {
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(criteriaCmd())
	rootCmd.AddCommand(auditCmd())
	rootCmd.AddCommand(keyCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(serveCmd())
}

// --- check commands ---

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run accessibility checks",
		Long: `Run one topic's checks against inputs supplied as flags (contrast) or a
JSON document on stdin or --file (everything else).`,
	}
	cmd.AddCommand(checkContrastCmd())
	cmd.AddCommand(topicCmd("text", "Run the text checks", catalog.CategoryText, checks.ValidateText))
	cmd.AddCommand(topicCmd("structure", "Run the structure checks", catalog.CategoryStructure, checks.ValidateStructure))
	cmd.AddCommand(topicCmd("keyboard", "Run the keyboard checks", catalog.CategoryKeyboard, checks.ValidateKeyboard))
	cmd.AddCommand(topicCmd("aria", "Run the ARIA checks", catalog.CategoryARIA, checks.ValidateAria))
	cmd.AddCommand(topicCmd("forms", "Run the forms checks", catalog.CategoryForms, checks.ValidateForms))
	cmd.AddCommand(topicCmd("media", "Run the media checks", catalog.CategoryMedia, checks.ValidateMedia))
	return cmd
}

func checkContrastCmd() *cobra.Command {
	var fg, bg string
	var size float64
	var bold bool
	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Check text color contrast",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fg == "" || bg == "" {
				return fmt.Errorf("--foreground and --background required")
			}
			in := checks.ContrastInput{Foreground: fg, Background: bg}
			if cmd.Flags().Changed("font-size") {
				in.FontSizePx = &size
			}
			if cmd.Flags().Changed("bold") {
				in.Bold = &bold
			}
			return emitReport("check-contrast", catalog.CategoryText, checks.CheckContrast(in))
		},
	}
	cmd.Flags().StringVar(&fg, "foreground", "", "foreground color")
	cmd.Flags().StringVar(&bg, "background", "", "background color")
	cmd.Flags().Float64Var(&size, "font-size", 16, "font size in CSS pixels")
	cmd.Flags().BoolVar(&bold, "bold", false, "bold text")
	_ = cmd.MarkFlagRequired("foreground")
	_ = cmd.MarkFlagRequired("background")
	return cmd
}

// topicCmd builds a subcommand running one orchestrator over a JSON input
// document.
func topicCmd[I any](name, short string, category catalog.Category, run func(I) []checks.Verdict) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in I
			if err := readJSONInput(file, &in); err != nil {
				return err
			}
			return emitReport("validate-"+name, category, run(in))
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON input file (default stdin)")
	return cmd
}

func readJSONInput(file string, v any) error {
	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid input document: %w", err)
	}
	return nil
}

// emitReport renders and prints the report and records an audit when the
// workspace database is reachable.
func emitReport(operation string, category catalog.Category, verdicts []checks.Verdict) error {
	title := viper.GetString("title")
	if title == "" {
		title = "Accessibility Report"
	}
	rep := report.Build(verdicts, title, category)
	now := time.Now()
	if viper.GetBool("json") {
		if err := printJSON(rep.Machine(now)); err != nil {
			return err
		}
	} else {
		text, err := rep.FormatResponse(now)
		if err != nil {
			return err
		}
		fmt.Print(text)
	}
	return recordAudit(operation, category, now, rep)
}

func recordAudit(operation string, category catalog.Category, now time.Time, rep report.Report) error {
	cfg, err := config.LoadOptional(viper.GetString("workspace"))
	if err != nil {
		return err
	}
	if cfg != nil && !cfg.Audit.Enabled {
		return nil
	}
	return withStore(context.Background(), func(ctx context.Context, s store.Store) error {
		raw, err := json.Marshal(rep.Machine(now))
		if err != nil {
			return err
		}
		a := store.Audit{
			ID:         uuid.NewString(),
			CreatedAt:  now.UTC().Format(time.RFC3339Nano),
			Operation:  operation,
			Category:   string(category),
			Actor:      "cli",
			Total:      rep.Summary.Total,
			Passed:     rep.Summary.Passed,
			Failed:     rep.Summary.Failed,
			Warnings:   rep.Summary.Warnings,
			Info:       rep.Summary.Info,
			ReportJSON: string(raw),
		}
		if err := s.InsertAudit(ctx, a); err != nil {
			return err
		}
		if cfg != nil {
			return s.PruneAudits(ctx, cfg.Audit.Keep)
		}
		return nil
	})
}

// --- criteria commands ---

func criteriaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "criteria",
		Short: "Browse the success criteria catalog",
	}
	cmd.AddCommand(criteriaListCmd())
	cmd.AddCommand(criteriaShowCmd())
	return cmd
}

func criteriaListCmd() *cobra.Command {
	var category, level string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List success criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := catalog.All()
			if category != "" {
				items = catalog.ByCategory(catalog.Category(category))
			}
			if level != "" {
				var filtered []catalog.Criterion
				for _, c := range items {
					if c.Level == catalog.Level(level) {
						filtered = append(filtered, c)
					}
				}
				items = filtered
			}
			if viper.GetBool("json") {
				return printJSON(items)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Level", "Category"})
			for _, c := range items {
				tw.AppendRow(table.Row{c.ID, c.Name, c.Level, c.Category})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category filter")
	cmd.Flags().StringVar(&level, "level", "", "level filter (A, AA, AAA)")
	return cmd
}

func criteriaShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one success criterion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown criterion %s", args[0])
			}
			if viper.GetBool("json") {
				return printJSON(c)
			}
			fmt.Printf("%s %s (Level %s, %s)\n\n%s\n\n%s\n", c.ID, c.Name, c.Level, c.Category, c.Description, c.URL)
			return nil
		},
	}
	return cmd
}

// --- audit commands ---

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Evaluation audit log",
	}
	cmd.AddCommand(auditTailCmd())
	cmd.AddCommand(auditShowCmd())
	return cmd
}

func auditTailCmd() *cobra.Command {
	var n int
	var operation string
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show recent evaluation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, s store.Store) error {
				audits, err := s.LatestAudits(ctx, operation, n)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(audits)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "When", "Operation", "Total", "Passed", "Failed", "Warnings"})
				for _, a := range audits {
					tw.AppendRow(table.Row{a.ID, a.CreatedAt, a.Operation, a.Total, a.Passed, a.Failed, a.Warnings})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of records")
	cmd.Flags().StringVar(&operation, "operation", "", "operation filter")
	return cmd
}

func auditShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one audit record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, s store.Store) error {
				a, err := s.GetAudit(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(a)
			})
		},
	}
	return cmd
}

// --- api key commands ---

func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage API keys for the server",
	}
	cmd.AddCommand(keyCreateCmd())
	cmd.AddCommand(keyListCmd())
	cmd.AddCommand(keyRevokeCmd())
	return cmd
}

func keyCreateCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key (printed once)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			return withStore(cmd.Context(), func(ctx context.Context, s store.Store) error {
				secret := uuid.NewString()
				key := store.APIKey{
					ID:      uuid.NewString(),
					Name:    name,
					KeyHash: store.HashAPIKey(secret),
				}
				if err := s.InsertAPIKey(ctx, key); err != nil {
					return err
				}
				fmt.Printf("Created key %s (%s)\nSecret (save it now, it is not stored): %s\n", key.ID, name, secret)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "key name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func keyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, s store.Store) error {
				keys, err := s.ListAPIKeys(ctx)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(keys)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Created", "Revoked"})
				for _, k := range keys {
					revoked := ""
					if k.RevokedAt != nil {
						revoked = *k.RevokedAt
					}
					tw.AppendRow(table.Row{k.ID, k.Name, k.CreatedAt, revoked})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func keyRevokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke <id>",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, s store.Store) error {
				return s.RevokeAPIKey(ctx, args[0])
			})
		},
	}
	return cmd
}

// --- config commands ---

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage workspace configuration",
	}
	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configShowCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default accesslint.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(viper.GetString("workspace"))
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}
			if err := os.WriteFile(path, []byte(config.GenerateDefault()), 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config")
	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			if cfg == nil {
				cfg = config.Default()
			}
			return printJSON(cfg)
		},
	}
	return cmd
}

// --- serve ---

func serveCmd() *cobra.Command {
	var addr, basePath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.Verify(); err != nil {
				return err
			}
			workspace := viper.GetString("workspace")
			cfg, err := config.LoadOptional(workspace)
			if err != nil {
				return err
			}
			if cfg == nil {
				cfg = config.Default()
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if basePath == "" {
				basePath = cfg.Server.BasePath
			}
			secret := os.Getenv("ACCESSLINT_JWT_SECRET")
			if secret == "" {
				secret = cfg.Auth.JWTSecret
			}
			if secret == "" && !cfg.Auth.AllowAnonymous {
				return fmt.Errorf("ACCESSLINT_JWT_SECRET is required unless auth.allow_anonymous is set")
			}

			var st *store.Store
			if cfg.Audit.Enabled {
				conn, err := db.Open(db.Config{Workspace: workspace})
				if err != nil {
					return err
				}
				defer conn.Close()
				if err := migrate.Migrate(conn); err != nil {
					return err
				}
				st = &store.Store{DB: conn}
			}

			handler, err := server.New(server.Config{
				Store:        st,
				BasePath:     basePath,
				Auth:         server.AuthConfig{JWTSecret: secret, AllowAnonymous: cfg.Auth.AllowAnonymous},
				DefaultTitle: cfg.Report.DefaultTitle,
				AuditKeep:    cfg.Audit.Keep,
			})
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			fmt.Printf("Serving Accesslint API on http://%s%s (OpenAPI at %s/openapi.json)\n", addr, basePath, basePath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "", "API base path")
	return cmd
}

// --- helpers ---

func withStore(ctx context.Context, fn func(context.Context, store.Store) error) error {
	workspace := viper.GetString("workspace")
	conn, err := db.Open(db.Config{Workspace: workspace})
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := migrate.Migrate(conn); err != nil {
		return err
	}
	return fn(ctx, store.Store{DB: conn})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
