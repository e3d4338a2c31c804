// Command selenium-login fills in the practice site's login form,
// submits it and verifies the session by looking for the logout link.
// The site accepts any username/password pair.
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
	username   = flag.String("username", "student", "username to type into the form")
	password   = flag.String("password", "secret", "password to type into the form")
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

	loginURL := quotes.BaseURL + "/login"
	if err := wd.Get(loginURL); err != nil {
		log.Fatalf("Failed to open %s: %v", loginURL, err)
	}

	if err := typeInto(wd, "#username", *username); err != nil {
		log.Fatalf("Failed to fill username: %v", err)
	}
	if err := typeInto(wd, "#password", *password); err != nil {
		log.Fatalf("Failed to fill password: %v", err)
	}

	submit, err := wd.FindElement(selenium.ByCSSSelector, "input[type='submit']")
	if err != nil {
		log.Fatalf("Failed to locate the submit button: %v", err)
	}
	if err := submit.Click(); err != nil {
		log.Fatalf("Failed to submit the form: %v", err)
	}

	// A successful login redirects to the home page, which now carries
	// a logout link in the header.
	logout, err := wd.FindElement(selenium.ByCSSSelector, `a[href="/logout"]`)
	if err != nil {
		log.Fatalf("No logout link after submitting; login failed: %v", err)
	}
	label, err := logout.Text()
	if err != nil {
		log.Fatalf("Failed to read the logout link: %v", err)
	}

	url, err := wd.CurrentURL()
	if err != nil {
		log.Fatalf("Failed to read the current URL: %v", err)
	}
	fmt.Printf("Logged in as %q, now at %s (header shows %q)\n", *username, url, label)
}

func typeInto(wd selenium.WebDriver, selector, text string) error {
	elem, err := wd.FindElement(selenium.ByCSSSelector, selector)
	if err != nil {
		return err
	}
	if err := elem.Clear(); err != nil {
		return err
	}
	return elem.SendKeys(text)
}
