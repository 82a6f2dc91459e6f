package download

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tobyv/fanbookctl/internal/catalog"
	"github.com/tobyv/fanbookctl/internal/fanatical"
	"github.com/tobyv/fanbookctl/internal/util"
)

// Driver streams the files of pending bundles to disk and keeps their
// signed download URLs fresh.
type Driver struct {
	client *fanatical.Client
	dir    string
	logf   func(format string, a ...interface{})
	warnf  func(format string, a ...interface{})
}

// New creates a Driver writing under dir. logf and warnf receive
// progress and per-file failure diagnostics; either may be nil.
func New(client *fanatical.Client, dir string, logf, warnf func(string, ...interface{})) *Driver {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	if warnf == nil {
		warnf = func(string, ...interface{}) {}
	}
	return &Driver{client: client, dir: dir, logf: logf, warnf: warnf}
}

// SelectPending returns pointers to the not-yet-downloaded bundles in
// catalog order, truncated to limit. A limit of zero or less means no
// truncation. Calling it repeatedly without an intervening download
// yields the same sequence.
func SelectPending(cat *catalog.Catalog, limit int) []*catalog.Bundle {
	var pending []*catalog.Bundle
	for i := range cat.Bundles {
		if cat.Bundles[i].Downloaded {
			continue
		}
		pending = append(pending, &cat.Bundles[i])
		if limit > 0 && len(pending) == limit {
			break
		}
	}
	return pending
}

// DownloadBundle fetches every file of every book in the bundle.
// Files already present on disk are skipped, and per-file failures are
// reported through warnf and do not stop the rest. The bundle is
// marked downloaded once all files have been attempted; persisting
// that is the caller's job.
func (d *Driver) DownloadBundle(b *catalog.Bundle) {
	bundleDir := filepath.Join(d.dir, BundleDirName(b))
	for bi := range b.Books {
		book := &b.Books[bi]
		bookDir := filepath.Join(bundleDir, util.SafeName(book.Name))
		for fi := range book.Files {
			f := &book.Files[fi]
			dest := filepath.Join(bookDir, FileName(f))
			if _, err := os.Stat(dest); err == nil {
				d.logf("Already exists: %s", dest)
				continue
			}
			if err := d.fetchFile(f, dest); err != nil {
				d.warnf("download %s: %v", f.APIDownload, err)
			}
		}
	}
	b.Downloaded = true
}

// fetchFile resolves the file's signed URL, records it on the entry,
// and streams the resource to dest via a temp file and rename.
func (d *Driver) fetchFile(f *catalog.File, dest string) error {
	signed, err := d.client.SignedURL(f.APIDownload)
	if err != nil {
		return err
	}
	f.SignedURL = signed
	f.ExpirationDate = ExpirationFrom(signed)

	if err := util.EnsureDir(filepath.Dir(dest)); err != nil {
		return err
	}

	body, _, err := d.client.Stream(signed)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	d.logf("Downloading %s", dest)
	if err := writeFile(dest, body); err != nil {
		return err
	}

	// The storefront publishes per-file md5s; a mismatch is worth a
	// warning but the file stays on disk.
	if f.MD5 != "" {
		got, err := util.MD5File(dest)
		if err == nil && got != f.MD5 {
			d.warnf("md5 mismatch for %s: expected %s, got %s", dest, f.MD5, got)
		}
	}
	return nil
}

// RefreshAll re-resolves the signed URL and expiration of every file
// across every bundle, regardless of download state. Failures are
// logged and skipped. Returns the number of files refreshed;
// persisting the catalog is the caller's job.
func (d *Driver) RefreshAll(cat *catalog.Catalog) int {
	refreshed := 0
	for i := range cat.Bundles {
		for j := range cat.Bundles[i].Books {
			files := cat.Bundles[i].Books[j].Files
			for k := range files {
				f := &files[k]
				if f.APIDownload == "" {
					continue
				}
				signed, err := d.client.SignedURL(f.APIDownload)
				if err != nil {
					d.warnf("refresh %s: %v", f.APIDownload, err)
					continue
				}
				f.SignedURL = signed
				f.ExpirationDate = ExpirationFrom(signed)
				refreshed++
			}
		}
	}
	return refreshed
}

func writeFile(dest string, r io.Reader) error {
	tmpPath := dest + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("streaming to disk: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
