// Package quotes extracts quote entries from quotes.toscrape.com markup.
//
// Every page of the practice site, including the infinite-scroll feed,
// renders quotes with the same structure: a div.quote containing a
// span.text, a small.author and a div.tags with a.tag children. The
// helpers here parse that structure out of raw HTML so that the scripts
// only deal with ready-made values.
package quotes

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BaseURL is the root of the practice site all scripts run against.
const BaseURL = "http://quotes.toscrape.com"

// CSS selectors shared by the scripts. The site serves the same markup
// whether the page is static, paginated or fed by the scroll endpoint.
const (
	QuoteSelector  = "div.quote"
	TextSelector   = "span.text"
	AuthorSelector = "small.author"
	TagSelector    = "div.tags a.tag"
	NextSelector   = "li.next > a"
)

// Quote is a single extracted entry.
type Quote struct {
	Text   string
	Author string
	Tags   []string
}

func (q Quote) String() string {
	if len(q.Tags) == 0 {
		return fmt.Sprintf("%s - %s", q.Text, q.Author)
	}
	return fmt.Sprintf("%s - %s [%s]", q.Text, q.Author, strings.Join(q.Tags, ", "))
}

// Parse extracts all quotes from an HTML document.
func Parse(r io.Reader) ([]Quote, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing document: %v", err)
	}
	return FromDocument(doc), nil
}

// FromDocument extracts all quotes from an already-parsed document.
func FromDocument(doc *goquery.Document) []Quote {
	var out []Quote
	doc.Find(QuoteSelector).Each(func(_ int, sel *goquery.Selection) {
		out = append(out, fromSelection(sel))
	})
	return out
}

// NextPage returns the relative URL of the following page, if the
// document has a pagination "Next" link.
func NextPage(doc *goquery.Document) (string, bool) {
	return doc.Find(NextSelector).Attr("href")
}

func fromSelection(sel *goquery.Selection) Quote {
	q := Quote{
		Text:   strings.TrimSpace(sel.Find(TextSelector).Text()),
		Author: strings.TrimSpace(sel.Find(AuthorSelector).Text()),
	}
	sel.Find(TagSelector).Each(func(_ int, tag *goquery.Selection) {
		q.Tags = append(q.Tags, strings.TrimSpace(tag.Text()))
	})
	return q
}
