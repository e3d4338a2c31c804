// Package browser handles acquiring and releasing browser sessions for
// the demonstration scripts. Each helper returns the session handle
// together with a release func so the scripts can defer the cleanup and
// stay a straight line of automation calls.
package browser

import (
	"fmt"
	"os"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// ChromeOptions configures the WebDriver-driven Chrome sessions.
type ChromeOptions struct {
	// DriverPath is the chromedriver binary. Defaults to "chromedriver"
	// on $PATH.
	DriverPath string
	// Port for the chromedriver service.
	Port int
	// Headless runs Chrome without a display.
	Headless bool
	// SOCKSProxy, if non-empty, routes browser traffic through the
	// given SOCKS5 host:port.
	SOCKSProxy string
	// Debug echoes chromedriver output to stderr.
	Debug bool
}

// ChromeCapabilities builds the desired capabilities for a Chrome
// session from the given options.
func ChromeCapabilities(opts ChromeOptions) selenium.Capabilities {
	caps := selenium.Capabilities{"browserName": "chrome"}

	chrCaps := chrome.Capabilities{
		Args: []string{
			// Chrome's sandbox needs a setuid helper that is often absent in
			// containers; the practice site is trusted enough to go without.
			"--no-sandbox",
			"--disable-gpu",
		},
	}
	if opts.Headless {
		chrCaps.Args = append(chrCaps.Args, "--headless=new")
	}
	caps.AddChrome(chrCaps)

	if opts.SOCKSProxy != "" {
		caps.AddProxy(selenium.Proxy{
			Type:         selenium.Manual,
			SOCKS:        opts.SOCKSProxy,
			SOCKSVersion: 5,
		})
	}
	return caps
}

// StartChrome starts a chromedriver service and opens a session against
// it. The returned release func quits the session and stops the
// service; callers must invoke it even when later steps fail.
func StartChrome(opts ChromeOptions) (selenium.WebDriver, func(), error) {
	if opts.DriverPath == "" {
		opts.DriverPath = "chromedriver"
	}
	if opts.Port == 0 {
		opts.Port = 9515
	}

	var svcOpts []selenium.ServiceOption
	if opts.Debug {
		svcOpts = append(svcOpts, selenium.Output(os.Stderr))
	}
	service, err := selenium.NewChromeDriverService(opts.DriverPath, opts.Port, svcOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error starting chromedriver at %q: %v", opts.DriverPath, err)
	}

	wd, err := selenium.NewRemote(ChromeCapabilities(opts), fmt.Sprintf("http://localhost:%d/wd/hub", opts.Port))
	if err != nil {
		service.Stop()
		return nil, nil, fmt.Errorf("error opening session: %v", err)
	}

	release := func() {
		wd.Quit()
		service.Stop()
	}
	return wd, release, nil
}
