package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobyv/fanbookctl/internal/catalog"
	"github.com/tobyv/fanbookctl/internal/download"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-resolve every signed download URL in the catalog",
		Long: `Signed URLs are time-limited and go stale. This re-resolves the
signed URL and expiration of every file across every bundle, whether
downloaded or not, and persists the catalog once at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Load(cfg.Paths.Catalog)
			if len(cat.Bundles) == 0 {
				warn("catalog %s is empty — run 'fanbookctl books' first", cfg.Paths.Catalog)
				return nil
			}

			drv := download.New(client, cfg.Paths.DownloadDir, logf, warn)
			refreshed := drv.RefreshAll(&cat)
			if err := catalog.Save(cfg.Paths.Catalog, &cat); err != nil {
				return fmt.Errorf("saving catalog: %w", err)
			}
			ok("Refreshed signed URLs for %d files in %s", refreshed, cfg.Paths.Catalog)
			return nil
		},
	}
}
