// Command chromedp-quotes extracts the first page of quotes over the
// DevTools protocol: no driver binary, Chrome is launched and spoken to
// directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"github.com/scrapeworks/toscrape/internal/browser"
	"github.com/scrapeworks/toscrape/internal/quotes"
)

var (
	headless = flag.Bool("headless", true, "run Chrome without a window")
	timeout  = flag.Duration("timeout", 30*time.Second, "overall deadline for the run")
)

func main() {
	flag.Parse()

	ctx, release := browser.NewChromedp(context.Background(), *headless, *timeout)
	defer release()

	var nodes []*cdp.Node
	var tagsPerQuote [][]string
	err := chromedp.Run(ctx,
		chromedp.Navigate(quotes.BaseURL),
		chromedp.WaitVisible(quotes.QuoteSelector, chromedp.ByQuery),
		chromedp.Nodes(quotes.QuoteSelector, &nodes, chromedp.ByQueryAll),
		chromedp.Evaluate(
			`[...document.querySelectorAll('div.quote')].map(q => [...q.querySelectorAll('div.tags a.tag')].map(t => t.textContent))`,
			&tagsPerQuote),
	)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", quotes.BaseURL, err)
	}

	for i, node := range nodes {
		q := quotes.Quote{}
		err := chromedp.Run(ctx,
			chromedp.Text(quotes.TextSelector, &q.Text, chromedp.ByQuery, chromedp.FromNode(node)),
			chromedp.Text(quotes.AuthorSelector, &q.Author, chromedp.ByQuery, chromedp.FromNode(node)),
		)
		if err != nil {
			log.Fatalf("Failed to read quote %d: %v", i, err)
		}
		if i < len(tagsPerQuote) {
			q.Tags = tagsPerQuote[i]
		}
		fmt.Println(q)
	}
	fmt.Printf("\n%d quotes on the first page\n", len(nodes))
}
