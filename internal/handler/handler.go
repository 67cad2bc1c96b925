package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"faraid-engine/internal/engine"
	"faraid-engine/internal/faraid"
	"faraid-engine/internal/model"
)

const (
	calculatePath = "/api/faraid/calculate"
	healthPath    = "/healthz"
)

type Handler struct {
	calc faraid.Calculator
	log  *zap.Logger
}

func New(calc faraid.Calculator, log *zap.Logger) *Handler {
	return &Handler{calc: calc, log: log}
}

// Handle is a fasthttp.RequestHandler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case calculatePath:
		h.handleCalculation(ctx)
	case healthPath:
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set("Allow", fasthttp.MethodPost)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.log.Debug("rejecting malformed request", zap.Error(err))
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(&req, h.calc)

	fields := []zap.Field{
		zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
		zap.String("tenant_id", req.TenantID),
		zap.String("outcome", resp.CalculationMetadata.CalculationOutcome),
		zap.Int64("duration_ms", resp.CalculationMetadata.CalculationDurationMs),
	}
	if d := resp.CalculationResult.Distribution; d != nil {
		fields = append(fields, zap.Int("heirs", len(d.Heirs)), zap.String("adjustment", d.Adjustment))
	} else if msgs := resp.CalculationResult.Messages; len(msgs) > 0 {
		fields = append(fields, zap.String("code", msgs[0].Code))
	}
	h.log.Info("calculation processed", fields...)

	body, err := json.Marshal(resp)
	if err != nil {
		h.log.Error("encoding response", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
