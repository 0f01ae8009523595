package datacommons

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SaiNageswarS/go-collection-boot/async"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultBaseURL = "https://datacommons.org"

// Client queries the Data Commons natural-language endpoint for tabular
// statistics.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	idx        string // retrieval index variant
	tableMode  bool   // fetch full tables instead of single points
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) { c.apiKey = apiKey }
}

func WithIndex(idx string) ClientOption {
	return func(c *Client) { c.idx = idx }
}

// WithTableMode selects whole-table answers over single points.
func WithTableMode(table bool) ClientOption {
	return func(c *Client) { c.tableMode = table }
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    defaultBaseURL,
		tableMode:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calln looks up every question concurrently and returns a question keyed
// map. Questions the backend has no charts for still get a Response, with a
// nil Table. Any transport failure fails the whole batch; the caller decides
// whether to recover.
func (c *Client) Calln(ctx context.Context, questions []string) (map[string]*Response, error) {
	tasks := make([]<-chan async.Result[*Response], 0, len(questions))
	for _, q := range questions {
		if q == "" {
			continue
		}
		tasks = append(tasks, c.fetch(ctx, q))
	}

	results, err := async.AwaitAll(tasks...)
	if err != nil {
		return nil, err
	}

	q2resp := make(map[string]*Response, len(results))
	for _, resp := range results {
		if resp == nil {
			continue
		}
		q2resp[resp.Query] = resp
	}
	return q2resp, nil
}

func (c *Client) fetch(ctx context.Context, question string) <-chan async.Result[*Response] {
	return async.Go(func() (*Response, error) {
		params := url.Values{}
		params.Set("q", question)
		params.Set("client", "statgemma")
		if c.idx != "" {
			params.Set("idx", c.idx)
		}
		if c.tableMode {
			params.Set("mode", "table")
		} else {
			params.Set("mode", "point")
		}
		if c.apiKey != "" {
			params.Set("apikey", c.apiKey)
		}

		reqURL := c.baseURL + "/nodejs/query?" + params.Encode()
		req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "build request: %v", err)
		}

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, status.Errorf(codes.Unavailable, "datacommons request: %v", err)
		}
		defer httpResp.Body.Close()

		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "read response: %v", err)
		}

		if httpResp.StatusCode != http.StatusOK {
			return nil, status.Errorf(codes.Internal, "datacommons returned status %d: %s", httpResp.StatusCode, string(body))
		}

		var payload nlQueryResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, status.Errorf(codes.Internal, "decode response: %v", err)
		}

		return buildResponse(question, &payload), nil
	})
}

// buildResponse keeps the first chart that actually carries data points.
func buildResponse(question string, payload *nlQueryResponse) *Response {
	for _, chart := range payload.Charts {
		if len(chart.Data) == 0 {
			continue
		}

		table := &Table{
			Unit:    chart.Unit,
			Columns: []string{"name", "date", "value"},
			Rows:    make([][]string, 0, len(chart.Data)),
		}
		for _, point := range chart.Data {
			table.Rows = append(table.Rows, []string{
				point.Name,
				point.Date,
				strconv.FormatFloat(point.Value, 'f', -1, 64),
			})
		}
		if len(chart.Srcs) > 0 {
			table.Source = chart.Srcs[0].Name
		}

		return &Response{
			Query: question,
			Title: chart.Title,
			Table: table,
		}
	}

	// no charts with data; the flow still counts this response
	return &Response{Query: question}
}

type nlQueryResponse struct {
	Charts []chartPayload `json:"charts"`
}

type chartPayload struct {
	Title string        `json:"title"`
	Unit  string        `json:"unit"`
	Data  []chartPoint  `json:"data"`
	Srcs  []chartSource `json:"srcs"`
}

type chartPoint struct {
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type chartSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
