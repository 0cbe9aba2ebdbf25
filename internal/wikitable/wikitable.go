package wikitable

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/hyperifyio/tablefeed/internal/normalize"
)

// CaptionMarker identifies the finals table among the page's wikitables.
const CaptionMarker = "List of FIFA World Cup finals"

// The slice is positional, not content-driven: the first body row is assumed
// to be a header and skipped, the next ten are taken regardless of content.
// This is brittle against upstream page edits on purpose; generalizing the
// selection is out of scope for this tool.
const (
	skipHeaderRows = 1
	dataRowCount   = 10
)

var (
	ErrTableNotFound = errors.New("wikitable: no wikitable with matching caption; page structure may have changed")
	ErrNotEnoughRows = errors.New("wikitable: fewer body rows than expected; page structure may have changed")
)

// Row is one extracted final. All fields stay display text, including Year.
type Row struct {
	Year      string
	Winner    string
	Score     string
	RunnersUp string
}

// Header returns the fixed first row of the values grid.
func Header() []string {
	return []string{"year", "winner", "score", "runners_up"}
}

var scoreShape = regexp.MustCompile(`\d+\s*[–-]\s*\d+`)

// Extract locates the finals table by caption and returns body rows 2 through
// 11 as structured rows. Cell mapping is by fixed position: the first
// th-or-td child is the year, the first three td children are winner, score
// and runners-up. A score that does not look like "digits dash digits" only
// logs a warning; the row is kept verbatim.
func Extract(doc *goquery.Document) ([]Row, error) {
	table := findTable(doc)
	if table == nil {
		return nil, ErrTableNotFound
	}
	trs := table.Find("tbody > tr")
	if trs.Length() < skipHeaderRows+dataRowCount {
		return nil, fmt.Errorf("%w: need %d body rows, got %d", ErrNotEnoughRows, skipHeaderRows+dataRowCount, trs.Length())
	}

	rows := make([]Row, 0, dataRowCount)
	trs.Slice(skipHeaderRows, skipHeaderRows+dataRowCount).Each(func(_ int, tr *goquery.Selection) {
		row := Row{
			Year:      cellText(tr.ChildrenFiltered("th, td").First()),
			Winner:    cellText(tr.ChildrenFiltered("td").Eq(0)),
			Score:     cellText(tr.ChildrenFiltered("td").Eq(1)),
			RunnersUp: cellText(tr.ChildrenFiltered("td").Eq(2)),
		}
		if !scoreShape.MatchString(row.Score) {
			log.Warn().Str("year", row.Year).Str("score", row.Score).Msg("score looks odd")
		}
		rows = append(rows, row)
	})
	return rows, nil
}

// Grid renders the header plus the data rows as the 2-D values payload.
func Grid(rows []Row) [][]string {
	values := make([][]string, 0, len(rows)+1)
	values = append(values, Header())
	for _, r := range rows {
		values = append(values, []string{r.Year, r.Winner, r.Score, r.RunnersUp})
	}
	return values
}

func findTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table.wikitable").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if strings.Contains(t.Find("caption").Text(), CaptionMarker) {
			found = t
			return false
		}
		return true
	})
	return found
}

// cellText concatenates every descendant text node of the cell before
// normalization, the same text a browser would render for mixed inline markup.
func cellText(cell *goquery.Selection) string {
	var buf bytes.Buffer
	for _, n := range cell.Nodes {
		collectText(n, &buf)
	}
	return normalize.Clean(buf.String())
}

func collectText(n *html.Node, buf *bytes.Buffer) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
}
