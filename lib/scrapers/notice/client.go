package notice

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"ajou-backend/lib/restyutil"
	"ajou-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36"

// DefaultQuery selects the unfiltered board listing.
const DefaultQuery = "ajou"

const DefaultLimit = 7

type Client struct {
	Http *resty.Client

	baseLink string
}

// NewClient builds a client for the public notice board at `baseLink`
// (the notice.do url without a query string).
func NewClient(baseLink string) *Client {
	client := resty.New()
	client.SetTransport(&http.Transport{
		DialContext: (&net.Dialer{Timeout: time.Second * 5}).DialContext,
	})
	client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	// requests without a browser-looking agent get a 404
	client.SetHeader("user-agent", UserAgent)

	telemetry.InstrumentResty(client, "ajou.lib.scrapers.notice.http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Client{
		Http:     client,
		baseLink: baseLink,
	}
}

func listQuery(queryOption string) string {
	if queryOption == DefaultQuery {
		return "?mode=list&article.offset=0&articleLimit="
	}
	return fmt.Sprintf(
		"?mode=list&srSearchKey=&srSearchVal=%s&article.offset=0&articleLimit=",
		queryOption,
	)
}

// Fetch pulls and normalizes up to `limit` notices for the given query
// facet. Results come back oldest first.
func (c *Client) Fetch(ctx context.Context, queryOption string, limit int) ([]Notice, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()

	if limit <= 0 {
		limit = DefaultLimit
	}
	url := c.baseLink + listQuery(queryOption) + strconv.Itoa(limit)

	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.SetStatus(codes.Error, "board fetch failed")
		return nil, err
	}

	notices, err := Parse(bytes.NewReader(res.Body()), c.baseLink)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "board page did not parse")
		return nil, err
	}
	return notices, nil
}
