package services

import (
	"context"
	"log/slog"
	"time"

	"household-ledger/internal/models"
)

type contextKey string

// TraceIDKey carries the request trace ID on a context.Context.
const TraceIDKey contextKey = "trace_id"

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerLogger{
		logger: logger,
	}
}

func (l *LedgerLogger) LogTransactionCreated(ctx context.Context, transaction *models.Transaction) {
	l.logger.InfoContext(ctx, "transaction created",
		slog.String("event_type", "transaction_created"),
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("user_id", transaction.UserID),
		slog.String("type", transaction.Type),
		slog.String("category", transaction.Category),
		slog.String("date", transaction.Date.Format(time.DateOnly)),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogRangeQueried(ctx context.Context, query models.RangeQuery, resultCount int, duration time.Duration) {
	l.logger.DebugContext(ctx, "transactions queried",
		slog.String("event_type", "transactions_queried"),
		slog.String("user_id", query.UserID),
		slog.Time("start", query.Start),
		slog.Time("end", query.End),
		slog.Int("result_count", resultCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogSummaryGenerated(ctx context.Context, userID string, year, month int, duration time.Duration) {
	attrs := []any{
		slog.String("event_type", "summary_generated"),
		slog.String("user_id", userID),
		slog.Int("year", year),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", getTraceID(ctx)),
	}
	if month > 0 {
		attrs = append(attrs, slog.Int("month", month))
	}
	l.logger.InfoContext(ctx, "summary generated", attrs...)
}

func (l *LedgerLogger) LogStoreFailure(ctx context.Context, operation, userID string, err error) {
	l.logger.ErrorContext(ctx, "store failure",
		slog.String("event_type", "store_failure"),
		slog.String("operation", operation),
		slog.String("user_id", userID),
		slog.String("error", err.Error()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (l *LedgerLogger) LogAnonymousSummary(ctx context.Context, year int) {
	l.logger.WarnContext(ctx, "summary requested without a user",
		slog.String("event_type", "anonymous_summary"),
		slog.Int("year", year),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}

	return ""
}
