package notice

import (
	"io"
	"strconv"
	"strings"

	"ajou-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const unknownWriter = "알 수 없음"

// CleanTitle strips the board's redundant decorations out of a title:
// the bracketed writer name duplicated into it, the trailing "see more"
// hint, and the re-notice marker.
func CleanTitle(title, writer string) string {
	dup := "[" + writer + "]"
	if strings.Contains(title, dup) {
		title = strings.ReplaceAll(title, dup, "")
	}
	title = strings.ReplaceAll(title, " 자세히 보기", "")
	title = strings.ReplaceAll(title, "(재공지)", "")
	return strings.TrimSpace(title)
}

// Parse normalizes a board listing page into notices, oldest first.
// The board renders rows as parallel column fragments, one selection
// per column, aligned by index. A row with a missing required cell is
// dropped rather than aborting the batch.
func Parse(r io.Reader, baseLink string) ([]Notice, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	ids := doc.Find("td.b-num-box")
	categories := doc.Find("span.b-cate")
	titles := doc.Find("div.b-title-box")
	dates := doc.Find("span.b-date")
	writers := doc.Find("span.b-writer")

	var notices []Notice
	ids.Each(func(i int, idCell *goquery.Selection) {
		id, err := strconv.Atoi(strings.TrimSpace(idCell.Text()))
		if err != nil {
			// pinned rows carry a marker instead of a number
			return
		}

		date := htmlutil.CleanText(dates.Eq(i).Text())
		if date == "" {
			return
		}
		category := htmlutil.CleanText(categories.Eq(i).Text())
		if category == "" {
			return
		}
		writer := htmlutil.CleanText(writers.Eq(i).Text())
		if writer == "" {
			writer = unknownWriter
		}

		anchor := titles.Eq(i).Find("a").First()
		title, hasTitle := anchor.Attr("title")
		href, hasHref := anchor.Attr("href")
		if !hasTitle || !hasHref {
			return
		}

		notices = append(notices, Notice{
			Id:       id,
			Category: category,
			Title:    CleanTitle(title, writer),
			Date:     date,
			Link:     baseLink + href,
			Writer:   writer,
		})
	})

	// the page lists newest first, storage wants ascending ids
	for l, r := 0, len(notices)-1; l < r; l, r = l+1, r-1 {
		notices[l], notices[r] = notices[r], notices[l]
	}

	return notices, nil
}
