package airtable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dealdesk/internal/config"
	"dealdesk/internal/domain"
	"dealdesk/pkg/errcodes"
	"dealdesk/pkg/httpx"
	"dealdesk/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const requestTimeout = 15 * time.Second

// Client — типизированный REST-клиент Airtable-базы. Сервис держит ровно один
// такой клиент на процесс, все табличные сторы делят его между собой.
type Client struct {
	baseURL    string
	baseID     string
	httpClient *http.Client
}

// staticToken удовлетворяет аутентификатору AuthBearerRoundTripper:
// токен Airtable постоянный, повторная аутентификация не нужна.
type staticToken string

func (staticToken) Authenticate(context.Context) error { return nil }
func (t staticToken) BearerToken() string              { return string(t) }

func NewClient(cfg config.Airtable) *Client {
	var rt http.RoundTripper = http.DefaultTransport

	if cfg.DebugHTTP {
		rt = httpx.NewLoggingRoundTripper(rt,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
		)
	}

	rt = httpx.NewAuthBearerRoundTripper(rt, staticToken(cfg.Token))

	return &Client{
		baseURL:    cfg.BaseURL,
		baseID:     cfg.BaseID,
		httpClient: &http.Client{Transport: rt, Timeout: requestTimeout},
	}
}

// Record — сырая запись стора: непрозрачный id плюс поля по именам.
// Типизацию поверх неё дают табличные сторы и константы полей из fields.go.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type recordList struct {
	Records []Record `json:"records"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) createRecord(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	var record Record

	payload := map[string]any{"fields": fields, "typecast": true}

	if err := c.do(ctx, http.MethodPost, c.tableURL(table), payload, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (c *Client) getRecord(ctx context.Context, table, recordID string) (*Record, error) {
	var record Record

	if err := c.do(ctx, http.MethodGet, c.tableURL(table)+"/"+url.PathEscape(recordID), nil, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (c *Client) updateRecord(ctx context.Context, table, recordID string, fields map[string]any) error {
	payload := map[string]any{"fields": fields, "typecast": true}

	return c.do(ctx, http.MethodPatch, c.tableURL(table)+"/"+url.PathEscape(recordID), payload, nil)
}

func (c *Client) listRecords(ctx context.Context, table, filterFormula string, maxRecords int) ([]Record, error) {
	query := url.Values{}
	if filterFormula != "" {
		query.Set("filterByFormula", filterFormula)
	}

	if maxRecords > 0 {
		query.Set("maxRecords", strconv.Itoa(maxRecords))
	}

	var list recordList

	if err := c.do(ctx, http.MethodGet, c.tableURL(table)+"?"+query.Encode(), nil, &list); err != nil {
		return nil, err
	}

	return list.Records, nil
}

func (c *Client) tableURL(table string) string {
	return c.baseURL + "/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(table)
}

func (c *Client) do(ctx context.Context, method, requestURL string, payload, dest any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(err, errcodes.StoreUnavailable, "record store request failed")
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.NewError(errcodes.NotFound, "record not found")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		return domain.NewError(errcodes.StoreUnavailable,
			fmt.Sprintf("record store responded %d: %s", resp.StatusCode, apiErr.Error.Message))
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return domain.WrapError(err, errcodes.StoreUnavailable, "failed to decode store response")
		}
	}

	return nil
}

func stringField(r Record, name string) string {
	v, _ := r.Fields[name].(string)
	return v
}

func floatField(r Record, name string) float64 {
	switch v := r.Fields[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func boolField(r Record, name string) bool {
	v, _ := r.Fields[name].(bool)
	return v
}

// linkField — первая ссылка из linked-record поля (Airtable отдаёт массив id).
func linkField(r Record, name string) string {
	links, ok := r.Fields[name].([]any)
	if !ok || len(links) == 0 {
		return ""
	}

	link, _ := links[0].(string)

	return link
}
