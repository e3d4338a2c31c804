// Command chromedp-screenshot captures a full-page screenshot of the
// practice site at a fixed viewport and writes it out as a PNG.
// Lowering -quality below 100 switches the capture to JPEG, and the
// output name follows suit.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/scrapeworks/toscrape/internal/browser"
	"github.com/scrapeworks/toscrape/internal/quotes"
)

var (
	headless = flag.Bool("headless", true, "run Chrome without a window")
	timeout  = flag.Duration("timeout", 30*time.Second, "overall deadline for the run")
	out      = flag.String("out", "quotes.png", "where to write the screenshot")
	width    = flag.Int64("width", 1280, "viewport width in pixels")
	height   = flag.Int64("height", 900, "viewport height in pixels")
	quality  = flag.Int("quality", 100, "screenshot quality; 100 captures PNG, lower values JPEG")
)

func main() {
	flag.Parse()

	ctx, release := browser.NewChromedp(context.Background(), *headless, *timeout)
	defer release()

	var shot []byte
	err := chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(*width, *height, 1, false).Do(ctx)
		}),
		chromedp.Navigate(quotes.BaseURL),
		chromedp.WaitVisible(quotes.QuoteSelector, chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, *quality),
	)
	if err != nil {
		log.Fatalf("Failed to capture %s: %v", quotes.BaseURL, err)
	}

	name := outputName(*out, *quality)
	if err := os.WriteFile(name, shot, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", name, err)
	}
	log.Printf("Wrote %s (%d bytes)", name, len(shot))
}

// outputName matches the file extension to the bytes FullScreenshot
// produces: PNG at quality 100, JPEG at anything lower.
func outputName(out string, quality int) string {
	ext := strings.ToLower(filepath.Ext(out))
	if quality == 100 {
		if ext == ".jpg" || ext == ".jpeg" {
			return strings.TrimSuffix(out, filepath.Ext(out)) + ".png"
		}
		return out
	}
	if ext == ".jpg" || ext == ".jpeg" {
		return out
	}
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".jpg"
}
