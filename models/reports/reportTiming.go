package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/mmdatafocus/pizza_sales/utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("pizza-sales/reports")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "reports."+name)
}

func logSlowReport(ctx context.Context, name string, started time.Time, extra logrus.Fields) {
	d := time.Since(started)
	if d.Milliseconds() < config.ReportSlowMs() {
		return
	}
	sid, _ := utils.GetSessionIdFromContext(ctx)
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	fields := logrus.Fields{
		"field":          "slow_report",
		"name":           name,
		"ms":             d.Milliseconds(),
		"session_id":     sid,
		"correlation_id": cid,
	}
	for k, v := range extra {
		fields[k] = v
	}
	config.GetLogger().WithFields(fields).Warn("slow report")
}
