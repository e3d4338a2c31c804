// Command chromedp-scroll walks the infinite-scroll feed: scroll to the
// bottom, wait for the next batch to render, collect what is visible,
// and stop once a few cycles in a row bring nothing new (or a hard cap
// is reached).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/scrapeworks/toscrape/internal/browser"
	"github.com/scrapeworks/toscrape/internal/quotes"
)

var (
	headless   = flag.Bool("headless", true, "run Chrome without a window")
	timeout    = flag.Duration("timeout", 2*time.Minute, "overall deadline for the run")
	maxScrolls = flag.Int("max-scrolls", 25, "hard cap on scroll cycles")
	settle     = flag.Duration("settle", 750*time.Millisecond, "how long to wait after each scroll for new quotes to render")
	stagnant   = flag.Int("stagnant", 3, "stop after this many consecutive cycles with no new quotes")
)

const collectJS = `[...document.querySelectorAll('div.quote span.text')].map(e => e.textContent)`

func main() {
	flag.Parse()

	ctx, release := browser.NewChromedp(context.Background(), *headless, *timeout)
	defer release()

	scrollURL := quotes.BaseURL + "/scroll"
	err := chromedp.Run(ctx,
		chromedp.Navigate(scrollURL),
		chromedp.WaitVisible(quotes.QuoteSelector, chromedp.ByQuery),
	)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", scrollURL, err)
	}

	collector := quotes.NewCollector()
	stop := &quotes.Stagnation{Limit: *stagnant, Cap: *maxScrolls}
	for {
		var visible []string
		err := chromedp.Run(ctx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(*settle),
			chromedp.Evaluate(collectJS, &visible),
		)
		if err != nil {
			log.Fatalf("Scroll cycle %d failed: %v", stop.Cycles()+1, err)
		}

		added := collector.AddAll(visible)
		log.Printf("cycle %d: %d visible, %d new, %d total", stop.Cycles()+1, len(visible), added, collector.Len())

		if !stop.Next(added) {
			break
		}
	}

	for _, text := range collector.Texts() {
		fmt.Println(text)
	}
	fmt.Printf("\n%d distinct quotes collected\n", collector.Len())
}
