package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobyv/fanbookctl/internal/catalog"
	"github.com/tobyv/fanbookctl/internal/download"
)

func newDownloadCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the next pending bundles",
		Long: `Downloads the files of the first not-yet-downloaded bundles in the
catalog. Files already on disk are never re-downloaded. Each bundle is
marked downloaded and the catalog persisted once all its files have
been attempted, so an interrupted run resumes where it left off.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Load(cfg.Paths.Catalog)
			if len(cat.Bundles) == 0 {
				warn("catalog %s is empty — run 'fanbookctl books' first", cfg.Paths.Catalog)
				return nil
			}

			pending := download.SelectPending(&cat, count)
			if len(pending) == 0 {
				fmt.Println("No bundles to download.")
				return nil
			}

			drv := download.New(client, cfg.Paths.DownloadDir, logf, warn)
			for _, b := range pending {
				header("Bundle: %s", b.Name)
				drv.DownloadBundle(b)
				if err := catalog.Save(cfg.Paths.Catalog, &cat); err != nil {
					return fmt.Errorf("saving catalog: %w", err)
				}
				ok("Marked bundle %q as downloaded", b.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of pending bundles to download")
	return cmd
}

func logf(format string, a ...interface{}) {
	fmt.Printf(format+"\n", a...)
}
