package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/ent"
	"github.com/ayumu/kotoba/ent/llmrequestevent"
)

// LLMRequestEventData captures the data for a single generative request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted generative request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageRow is an aggregate of token usage grouped by one dimension.
type LLMUsageRow struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the generative request log.
type EventRepo interface {
	// AppendLLMRequest records a generative API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	// limit <= 0 means all.
	QueryLLMEvents(ctx context.Context, limit int) ([]*LLMEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// UsageByPurpose aggregates token usage grouped by purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsageRow, error)

	// UsageByModel aggregates token usage grouped by model ID.
	UsageByModel(ctx context.Context) ([]LLMUsageRow, error)
}

type eventRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]*LLMEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	out := make([]*LLMEventRecord, len(rows))
	for i, e := range rows {
		out[i] = entLLMEvent(e)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	return entLLMEvent(e), nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]LLMUsageRow, error) {
	return r.usage(ctx, "purpose")
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]LLMUsageRow, error) {
	return r.usage(ctx, "model")
}

// usage runs the grouped aggregate with raw SQL; ent's aggregation API
// does not cover AVG over a grouped query cleanly.
func (r *eventRepo) usage(ctx context.Context, groupBy string) ([]LLMUsageRow, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		FROM llm_request_events
		GROUP BY %s
		ORDER BY SUM(input_tokens) + SUM(output_tokens) DESC`, groupBy, groupBy)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by %s: %w", groupBy, err)
	}
	defer rows.Close()

	var out []LLMUsageRow
	for rows.Next() {
		var row LLMUsageRow
		var key string
		if err := rows.Scan(&key, &row.Calls, &row.InputTokens, &row.OutputTokens, &row.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		if groupBy == "purpose" {
			row.Purpose = key
		} else {
			row.Model = key
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func entLLMEvent(e *ent.LLMRequestEvent) *LLMEventRecord {
	return &LLMEventRecord{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
