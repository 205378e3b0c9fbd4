package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pthm/icondata/catalog"
	"github.com/pthm/icondata/lib/generator"
	"github.com/pthm/icondata/lib/shorthand"
)

const version = "0.1.0"

func newRootCmd(cfg config) *cobra.Command {
	root := &cobra.Command{
		Use:   "icondata",
		Short: "Icon set generator and shorthand expander",
		Long: `icondata builds the gated icon set packages from SVG corpora and expands
the icon(XyFoo) shorthand in directive files.

Environment:
  ICONDATA_MANIFEST    manifest path (default icondata.yaml)
  ICONDATA_ROOT        module root receiving generated sets (default .)
  ICONDATA_LOG_LEVEL   debug, info, warn or error (default info)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			generator.SetLogger(newLogger(cmd.ErrOrStderr(), level))
			return nil
		},
	}

	root.AddCommand(
		newGenerateCmd(&cfg),
		newExpandCmd(),
		newCleanCmd(&cfg),
		newCatalogCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "icondata version %s\n", version)
			},
		},
	)
	return root
}

func newGenerateCmd(cfg *config) *cobra.Command {
	var dryRun bool
	var only []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate set packages from the manifest",
		Example: `  icondata generate
  icondata generate --only Ai,Lu --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := generator.LoadManifest(cfg.Manifest)
			if err != nil {
				return err
			}
			gen := generator.New(generator.Options{DryRun: dryRun, Root: cfg.Root, Only: only})
			return gen.Generate(cmd.Context(), m)
		},
	}
	cmd.Flags().StringVarP(&cfg.Manifest, "manifest", "m", cfg.Manifest, "manifest path")
	cmd.Flags().StringVar(&cfg.Root, "root", cfg.Root, "module root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be generated without writing files")
	cmd.Flags().StringSliceVar(&only, "only", nil, "restrict to these set prefixes")
	return cmd
}

func newExpandCmd() *cobra.Command {
	var dryRun bool
	var expr string

	cmd := &cobra.Command{
		Use:   "expand [packages]",
		Short: "Expand icon(XyFoo) shorthands in directive files",
		Long: `expand rewrites every file constrained by //go:build icondata_shorthand
into a generated *_icons.go sibling where each icon(XyFoo) call becomes
icondata.Icon(icondata.XyFoo).`,
		Example: `  icondata expand ./...
  icondata expand --expr AiFileImageTwotone`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expr != "" {
				out, err := shorthand.Expand(expr)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			r := shorthand.NewRewriter(shorthand.Options{DryRun: dryRun, Logger: generator.Logger()})
			results, err := r.Rewrite(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if dryRun {
				for _, res := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", res.Output, res.Code)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print generated code instead of writing it")
	cmd.Flags().StringVar(&expr, "expr", "", "expand a single identifier and print the result")
	return cmd
}

func newCleanCmd(cfg *config) *cobra.Command {
	var dryRun bool
	var sets bool

	cmd := &cobra.Command{
		Use:   "clean [packages]",
		Short: "Remove generated shorthand files, and set packages with --sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := shorthand.NewRewriter(shorthand.Options{DryRun: dryRun, Logger: generator.Logger()})
			if err := r.Clean(args...); err != nil {
				return err
			}
			if !sets {
				return nil
			}
			m, err := generator.LoadManifest(cfg.Manifest)
			if err != nil {
				return err
			}
			return generator.New(generator.Options{DryRun: dryRun, Root: cfg.Root}).Clean(m)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be removed")
	cmd.Flags().BoolVar(&sets, "sets", false, "also remove the generated set packages")
	cmd.Flags().StringVarP(&cfg.Manifest, "manifest", "m", cfg.Manifest, "manifest path")
	cmd.Flags().StringVar(&cfg.Root, "root", cfg.Root, "module root")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Write a markdown catalog of the sets compiled into this binary",
		Long: `catalog lists the sets enabled in this build. Build the tool with
-tags icondata_all to catalog every set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := catalog.Markdown()
			if out == "" || out == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}
			generator.Logger().Info("writing catalog", "path", out)
			return os.WriteFile(out, []byte(doc), 0644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
