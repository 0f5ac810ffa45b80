package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

var allowedTags = map[string]struct{}{
	"img":  {},
	"p":    {},
	"span": {},
}

// SanitizeHTML keeps img, p and span elements with their attributes. Any
// other element is dropped along with its text; allowed elements nested in
// it are kept in its place.
func SanitizeHTML(content string) string {
	if content == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		log.Warnf("Failed to parse description HTML: %v", err)
		return ""
	}

	body := doc.Find("body")
	for _, node := range body.Nodes {
		stripDisallowed(node)
	}

	out, err := body.Html()
	if err != nil {
		log.Warnf("Failed to render description HTML: %v", err)
		return ""
	}
	return out
}

func stripDisallowed(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			stripDisallowed(c)
			if !isAllowed(c) {
				hoistElements(n, c)
				n.RemoveChild(c)
			}
		}
		c = next
	}
}

// hoistElements moves the element children of c in front of c. Children of
// an already stripped node are all allowed elements.
func hoistElements(parent, c *html.Node) {
	for gc := c.FirstChild; gc != nil; {
		next := gc.NextSibling
		if gc.Type == html.ElementNode {
			c.RemoveChild(gc)
			parent.InsertBefore(gc, c)
		}
		gc = next
	}
}

func isAllowed(n *html.Node) bool {
	if n.Namespace != "" {
		return false
	}
	_, ok := allowedTags[n.Data]
	return ok
}
