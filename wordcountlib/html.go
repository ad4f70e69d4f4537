package wordcountlib

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jackdanger/collectlinks"
	"jaytaylor.com/html2text"

	"goWordCount/configlib"
	"goWordCount/freqtablelib"
)

func isHTML(mode, path string) bool {
	switch mode {
	case configlib.HTMLOn:
		return true
	case configlib.HTMLOff:
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// htmlToText gets plain text content out of an HTML document
func htmlToText(raw string) (string, error) {
	return html2text.FromString(raw, html2text.Options{PrettyTables: false})
}

var reWWW = regexp.MustCompile(`^www\.(.*)$`)

// getDomain finds out main domain, ignoring www. subdomains. Relative links have none.
func getDomain(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}

	return reWWW.ReplaceAllString(strings.ToLower(u.Hostname()), `$1`)
}

// countLinkDomains counts the domains of the absolute links of an HTML document
func countLinkDomains(raw string, table *freqtablelib.Table) int {
	links := collectlinks.All(strings.NewReader(raw))
	for _, link := range links {
		if domain := getDomain(link); domain != "" {
			table.Add(domain)
		}
	}

	return len(links)
}
