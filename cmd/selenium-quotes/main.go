// Command selenium-quotes drives Chrome through chromedriver, opens the
// practice site and prints every quote on the first page.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tebeka/selenium"

	"github.com/scrapeworks/toscrape/internal/browser"
	"github.com/scrapeworks/toscrape/internal/quotes"
)

var (
	driverPath = flag.String("driver", "chromedriver", "path to the chromedriver binary")
	port       = flag.Int("port", 9515, "port for the chromedriver service")
	headless   = flag.Bool("headless", true, "run Chrome without a window")
)

func main() {
	flag.Parse()

	wd, release, err := browser.StartChrome(browser.ChromeOptions{
		DriverPath: *driverPath,
		Port:       *port,
		Headless:   *headless,
	})
	if err != nil {
		log.Fatalf("Failed to start Chrome: %v", err)
	}
	defer release()

	if err := wd.Get(quotes.BaseURL); err != nil {
		log.Fatalf("Failed to open %s: %v", quotes.BaseURL, err)
	}

	elems, err := wd.FindElements(selenium.ByCSSSelector, quotes.QuoteSelector)
	if err != nil {
		log.Fatalf("Failed to locate quotes: %v", err)
	}

	for _, elem := range elems {
		q, err := extract(elem)
		if err != nil {
			log.Fatalf("Failed to extract quote: %v", err)
		}
		fmt.Println(q)
	}
	fmt.Printf("\n%d quotes on the first page\n", len(elems))
}

func extract(elem selenium.WebElement) (quotes.Quote, error) {
	var q quotes.Quote

	textElem, err := elem.FindElement(selenium.ByCSSSelector, quotes.TextSelector)
	if err != nil {
		return q, err
	}
	if q.Text, err = textElem.Text(); err != nil {
		return q, err
	}

	authorElem, err := elem.FindElement(selenium.ByCSSSelector, quotes.AuthorSelector)
	if err != nil {
		return q, err
	}
	if q.Author, err = authorElem.Text(); err != nil {
		return q, err
	}

	tagElems, err := elem.FindElements(selenium.ByCSSSelector, quotes.TagSelector)
	if err != nil {
		return q, err
	}
	for _, tagElem := range tagElems {
		tag, err := tagElem.Text()
		if err != nil {
			return q, err
		}
		q.Tags = append(q.Tags, tag)
	}
	return q, nil
}
