// Command selenium-search drives the dependent dropdowns on the
// practice site's search page: picking an author repopulates the tag
// list, so the script selects the author, waits for the tags to load,
// selects one and submits.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tebeka/selenium"

	"github.com/scrapeworks/toscrape/internal/browser"
	"github.com/scrapeworks/toscrape/internal/quotes"
)

var (
	driverPath = flag.String("driver", "chromedriver", "path to the chromedriver binary")
	port       = flag.Int("port", 9515, "port for the chromedriver service")
	headless   = flag.Bool("headless", true, "run Chrome without a window")
	author     = flag.String("author", "Albert Einstein", "author to filter by")
	tag        = flag.String("tag", "inspirational", "tag to filter by")
	timeout    = flag.Duration("timeout", 10*time.Second, "how long to wait for the tag list to load")
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

	searchURL := quotes.BaseURL + "/search.aspx"
	if err := wd.Get(searchURL); err != nil {
		log.Fatalf("Failed to open %s: %v", searchURL, err)
	}

	if err := selectOption(wd, "select#author", *author); err != nil {
		log.Fatalf("Failed to select author %q: %v", *author, err)
	}

	// Choosing an author reloads the tag dropdown; wait until it offers
	// the tag we want instead of the placeholder entry.
	tagOption := fmt.Sprintf("select#tag option[value=%q]", *tag)
	err = wd.WaitWithTimeout(func(wd selenium.WebDriver) (bool, error) {
		if _, err := wd.FindElement(selenium.ByCSSSelector, tagOption); err != nil {
			return false, nil
		}
		return true, nil
	}, *timeout)
	if err != nil {
		log.Fatalf("Tag %q never appeared for author %q: %v", *tag, *author, err)
	}

	if err := selectOption(wd, "select#tag", *tag); err != nil {
		log.Fatalf("Failed to select tag %q: %v", *tag, err)
	}

	submit, err := wd.FindElement(selenium.ByCSSSelector, "input[type='submit']")
	if err != nil {
		log.Fatalf("Failed to locate the search button: %v", err)
	}
	if err := submit.Click(); err != nil {
		log.Fatalf("Failed to submit the search: %v", err)
	}

	results, err := wd.FindElements(selenium.ByCSSSelector, quotes.QuoteSelector)
	if err != nil {
		log.Fatalf("Failed to locate results: %v", err)
	}
	if len(results) == 0 {
		fmt.Printf("No quotes by %q tagged %q\n", *author, *tag)
		return
	}

	fmt.Printf("Quotes by %q tagged %q:\n\n", *author, *tag)
	for _, result := range results {
		text, err := result.Text()
		if err != nil {
			log.Fatalf("Failed to read a result: %v", err)
		}
		fmt.Println(text)
		fmt.Println()
	}
}

// selectOption picks the option with the given value from a <select>
// element by clicking it, which also fires the change handler the page
// relies on.
func selectOption(wd selenium.WebDriver, selectCSS, value string) error {
	option := fmt.Sprintf("%s option[value=%q]", selectCSS, value)
	elem, err := wd.FindElement(selenium.ByCSSSelector, option)
	if err != nil {
		return err
	}
	return elem.Click()
}
