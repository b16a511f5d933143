// Package apperdb implements the repository interfaces against the hosted
// Apper record store. The store is opaque: every entity is a table
// accessed through fetch/create/update/delete operations with JSON
// envelopes that report failure as success=false rather than an HTTP
// error, so callers must handle both failure modes.
package apperdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/juntaeschool/backend/core"
)

const (
	opFetch  = "fetch"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"

	sortAsc  = "ASC"
	sortDesc = "DESC"
)

type Client struct {
	baseURL    string
	projectID  string
	apiKey     string
	httpClient *http.Client
	log        core.Logger
}

func NewClient(conf *core.Config, logger core.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(conf.Apper.BaseURL, "/"),
		projectID:  conf.Apper.ProjectID,
		apiKey:     conf.Apper.APIKey,
		httpClient: &http.Client{Timeout: conf.Apper.Timeout},
		log:        logger,
	}
}

type (
	whereClause struct {
		FieldName string        `json:"FieldName"`
		Operator  string        `json:"Operator"`
		Values    []interface{} `json:"Values"`
	}

	orderBy struct {
		FieldName string `json:"FieldName"`
		SortType  string `json:"SortType"`
	}

	pagingInfo struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}

	fetchParams struct {
		Fields     []string      `json:"fields"`
		Where      []whereClause `json:"where"`
		OrderBy    []orderBy     `json:"orderBy"`
		PagingInfo *pagingInfo   `json:"pagingInfo,omitempty"`
	}

	fetchEnvelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message,omitempty"`
	}

	recordsPayload struct {
		Records []interface{} `json:"records"`
	}

	deletePayload struct {
		RecordIDs []interface{} `json:"RecordIds"`
	}

	recordResult struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data,omitempty"`
		Message string          `json:"message,omitempty"`
		Errors  []recordError   `json:"errors,omitempty"`
	}

	recordError struct {
		FieldLabel string `json:"fieldLabel"`
		Message    string `json:"message"`
	}

	mutateEnvelope struct {
		Success bool           `json:"success"`
		Message string         `json:"message,omitempty"`
		Results []recordResult `json:"results"`
	}
)

func (c *Client) url(table, op string) string {
	return fmt.Sprintf("%s/api/v1/projects/%s/tables/%s/%s", c.baseURL, c.projectID, table, op)
}

func (c *Client) post(ctx context.Context, url string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshaling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "doing request")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("remote store returned %s", resp.Status)
	}
	if err = json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "unmarshaling response")
	}
	return nil
}

// fetchRecords runs a table query and decodes the data array into out
// (a pointer to a slice). A success=false response and a transport error
// are both returned as errors; list callers degrade them to an empty
// result, detail callers surface them.
func (c *Client) fetchRecords(ctx context.Context, table string, params fetchParams, out interface{}) error {
	var env fetchEnvelope
	if err := c.post(ctx, c.url(table, opFetch), params, &env); err != nil {
		return core.NewRemoteError("", err)
	}
	if !env.Success {
		return core.NewRemoteError(env.Message, nil)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return core.NewRemoteError("", errors.Wrap(err, "unmarshaling records"))
	}
	return nil
}

// mutateRecords runs a create or update and decodes the first result
// record into out (may be nil). Per-record failures surface with the
// remote's message.
func (c *Client) mutateRecords(ctx context.Context, table, op string, record, out interface{}) error {
	var env mutateEnvelope
	if err := c.post(ctx, c.url(table, op), recordsPayload{Records: []interface{}{record}}, &env); err != nil {
		return core.NewRemoteError("", err)
	}
	res, err := firstResult(env)
	if err != nil {
		return err
	}
	if out != nil && len(res.Data) > 0 {
		if err := json.Unmarshal(res.Data, out); err != nil {
			return core.NewRemoteError("", errors.Wrap(err, "unmarshaling record"))
		}
	}
	return nil
}

func (c *Client) deleteRecords(ctx context.Context, table string, ids ...interface{}) error {
	var env mutateEnvelope
	if err := c.post(ctx, c.url(table, opDelete), deletePayload{RecordIDs: ids}, &env); err != nil {
		return core.NewRemoteError("", err)
	}
	_, err := firstResult(env)
	return err
}

func firstResult(env mutateEnvelope) (recordResult, error) {
	if !env.Success {
		return recordResult{}, core.NewRemoteError(env.Message, nil)
	}
	if len(env.Results) == 0 {
		return recordResult{}, core.NewRemoteError("", errors.New("remote store returned no results"))
	}
	res := env.Results[0]
	if !res.Success {
		msg := res.Message
		if msg == "" && len(res.Errors) > 0 {
			msg = res.Errors[0].FieldLabel + ": " + res.Errors[0].Message
		}
		return recordResult{}, core.NewRemoteError(msg, nil)
	}
	return res, nil
}

// degradeList logs a failed list fetch and swallows it; the caller
// renders an empty collection instead of crashing the page.
func (c *Client) degradeList(table string, err error) {
	c.log.Warn(fmt.Sprintf("apper: %s fetch degraded to empty result: %v", table, err))
}

// apperTime decodes the store's timestamp strings leniently: malformed or
// missing values become the zero time (which sorts as epoch minimum) and
// never fail decoding.
type apperTime struct {
	time.Time
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (t *apperTime) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

func (t apperTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
