package browser

import (
	"net"
	"testing"

	socks5 "github.com/armon/go-socks5"
	"github.com/chromedp/chromedp"
	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

func chromeArgs(t *testing.T, caps selenium.Capabilities) []string {
	t.Helper()
	raw, ok := caps[chrome.CapabilitiesKey]
	if !ok {
		t.Fatalf("capabilities missing key %q: %+v", chrome.CapabilitiesKey, caps)
	}
	chrCaps, ok := raw.(chrome.Capabilities)
	if !ok {
		t.Fatalf("capabilities[%q] has type %T, want chrome.Capabilities", chrome.CapabilitiesKey, raw)
	}
	return chrCaps.Args
}

func TestChromeCapabilities(t *testing.T) {
	caps := ChromeCapabilities(ChromeOptions{})

	if got, want := caps["browserName"], "chrome"; got != want {
		t.Errorf("caps[browserName] = %v, want %q", got, want)
	}
	want := []string{"--no-sandbox", "--disable-gpu"}
	if diff := cmp.Diff(want, chromeArgs(t, caps)); diff != "" {
		t.Errorf("chrome args returned diff (-want +got):\n%s", diff)
	}
	if _, ok := caps["proxy"]; ok {
		t.Error("caps includes a proxy entry, want none without SOCKSProxy set")
	}
}

func TestChromeCapabilitiesHeadless(t *testing.T) {
	caps := ChromeCapabilities(ChromeOptions{Headless: true})
	args := chromeArgs(t, caps)

	found := false
	for _, a := range args {
		if a == "--headless=new" {
			found = true
		}
	}
	if !found {
		t.Errorf("chrome args = %v, want --headless=new present", args)
	}
}

func TestChromeCapabilitiesSOCKSProxy(t *testing.T) {
	// Run a real SOCKS5 listener so the capabilities point at a live
	// endpoint, the same way a script would wire a local proxy.
	socks, err := socks5.New(&socks5.Config{})
	if err != nil {
		t.Fatalf("socks5.New(_) returned error: %v", err)
	}
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen(_, _) returned error: %v", err)
	}
	done := make(chan struct{})
	go func() {
		err := socks.Serve(l)
		select {
		case <-done:
			return
		default:
		}
		if err != nil {
			t.Errorf("socks.Serve(_) returned error: %v", err)
		}
	}()
	defer func() {
		close(done)
		l.Close()
	}()

	caps := ChromeCapabilities(ChromeOptions{SOCKSProxy: l.Addr().String()})
	raw, ok := caps["proxy"]
	if !ok {
		t.Fatalf("capabilities missing proxy entry: %+v", caps)
	}
	proxy, ok := raw.(selenium.Proxy)
	if !ok {
		t.Fatalf("caps[proxy] has type %T, want selenium.Proxy", raw)
	}
	if proxy.Type != selenium.Manual {
		t.Errorf("proxy.Type = %q, want %q", proxy.Type, selenium.Manual)
	}
	if proxy.SOCKS != l.Addr().String() {
		t.Errorf("proxy.SOCKS = %q, want %q", proxy.SOCKS, l.Addr().String())
	}
	if proxy.SOCKSVersion != 5 {
		t.Errorf("proxy.SOCKSVersion = %d, want 5", proxy.SOCKSVersion)
	}
}

func TestAllocatorOptions(t *testing.T) {
	// The option funcs are opaque, but the set must be the chromedp
	// defaults plus the headless, no-sandbox and disable-gpu entries.
	want := len(chromedp.DefaultExecAllocatorOptions) + 3
	for _, headless := range []bool{false, true} {
		if got := len(AllocatorOptions(headless)); got != want {
			t.Errorf("AllocatorOptions(%t) returned %d options, want %d", headless, got, want)
		}
	}
}
