package mhaksa

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"ajou-backend/lib/restyutil"
	"ajou-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// the portal 404s requests without a browser-looking agent
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36"

const courseActionPath = "uni/uni/cour/lssn/findCourLecturePlanDocumentReg.action"

// ErrUnavailable tags a fetch whose response could not be decoded. The
// portal serves an HTML error page instead of json once a session goes
// stale, callers decide whether to skip or abort.
var ErrUnavailable = fmt.Errorf("course source unavailable")

type Client struct {
	Http *resty.Client

	endpoint string
	year     string
	term     string
}

type ClientOptions struct {
	// the findCourLecturePlanDocumentReg gateway url
	Endpoint string
	Year     string
	// term code, e.g. U0002001 for spring
	Term string
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.SetTimeout(time.Second * 10)
	// the portal serves a misconfigured certificate chain on its
	// non-standard port, verification has to be turned off to reach it
	client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	client.SetHeader("user-agent", UserAgent)
	client.SetHeader("content-type", "application/json")

	telemetry.InstrumentResty(client, "ajou.lib.scrapers.mhaksa.http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Client{
		Http:     client,
		endpoint: opts.Endpoint,
		year:     opts.Year,
		term:     opts.Term,
	}
}

// FetchCourses pulls the full lecture plan dataset for one category
// using an already-acquired session token.
func (c *Client) FetchCourses(ctx context.Context, category Category, session string) ([]Course, error) {
	ctx, span := tracer.Start(ctx, "client:FetchCourses")
	defer span.End()

	payload := map[string]any{
		"url": courseActionPath,
		"param": map[string]string{
			"strYy":           c.year,
			"strShtmCd":       c.term,
			"strSubmattFg":    category.Code,
			"strSustcd":       "",
			"strMjCd":         "",
			"strSubmattFldFg": "",
			"strCoopOpenYn":   "공동개설",
		},
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Cookie", fmt.Sprintf("JSESSIONID=%s;", session)).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		span.SetStatus(codes.Error, "course fetch request failed")
		return nil, err
	}

	var decoded courseResponse
	err = json.Unmarshal(res.Body(), &decoded)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "course response is not json")
		return nil, fmt.Errorf("%w: category %s: %s", ErrUnavailable, category.Code, err)
	}
	if decoded.VariableList.ErrorCode != "" && decoded.VariableList.ErrorCode != "0" {
		span.SetStatus(codes.Error, "portal reported an error")
		return nil, fmt.Errorf(
			"%w: category %s: portal error %s: %s",
			ErrUnavailable, category.Code,
			decoded.VariableList.ErrorCode, decoded.VariableList.ErrorMsg,
		)
	}

	return decoded.DatasetList.Courses, nil
}
