// Command fetch-drivers downloads the binaries the WebDriver scripts
// need: chromedriver, the latest geckodriver release and a Chromium
// snapshot. Files already present with the right checksum are skipped.
//
// Run with -logtostderr to see progress.
package main

import (
	"context"
	"flag"

	"github.com/golang/glog"

	"github.com/scrapeworks/toscrape/internal/download"
)

var dir = flag.String("dir", "", "directory to download into (default: current directory)")

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := download.DownloadAll(context.Background(), *dir); err != nil {
		glog.Exitf("Download failed: %v", err)
	}
	glog.Info("All driver binaries are in place.")
}
