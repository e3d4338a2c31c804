// Command static-quotes scrapes every paginated page of the practice
// site with a plain HTTP client, no browser involved. The site renders
// its quotes server-side, so goquery over the raw HTML sees exactly
// what the automated browsers see — a useful contrast with the other
// scripts.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/scrapeworks/toscrape/internal/quotes"
)

var timeout = flag.Duration("timeout", 15*time.Second, "per-request timeout")

func main() {
	flag.Parse()

	client := resty.New().
		SetBaseURL(quotes.BaseURL).
		SetTimeout(*timeout)

	total := 0
	page := "/"
	for {
		resp, err := client.R().Get(page)
		if err != nil {
			log.Fatalf("Failed to fetch %s: %v", page, err)
		}
		if resp.IsError() {
			log.Fatalf("Failed to fetch %s: status %s", page, resp.Status())
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", page, err)
		}

		for _, q := range quotes.FromDocument(doc) {
			fmt.Println(q)
			total++
		}

		next, ok := quotes.NextPage(doc)
		if !ok {
			break
		}
		page = next
	}

	fmt.Printf("\n%d quotes across all pages\n", total)
}
