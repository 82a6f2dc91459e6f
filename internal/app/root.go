package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tobyv/fanbookctl/internal/config"
	"github.com/tobyv/fanbookctl/internal/fanatical"
	"github.com/tobyv/fanbookctl/internal/util"
)

var (
	cfg    *config.Config
	client *fanatical.Client

	flagToken   string
	flagConfig  string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "fanbookctl",
	Short: "Catalog and download the digital books in your Fanatical orders",
	Long: `fanbookctl enumerates your Fanatical purchase orders, extracts the
downloadable books and comics into a local JSON catalog, and streams
the files to disk through the storefront's signed download URLs.

The catalog remembers which bundles were already downloaded, so
repeated runs only fetch what is missing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (overrides env and token file)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/fanbookctl/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// version and init work without credentials.
		if cmd.Name() == "version" || cmd.Name() == "init" {
			return nil
		}

		token, err := cfg.ResolveToken(flagToken)
		if err != nil {
			return err
		}
		client = fanatical.New(token, cfg.API.Base)
		return nil
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newOrdersCmd(),
		newDetailsCmd(),
		newBooksCmd(),
		newDownloadCmd(),
		newRefreshCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
