// Package engine orchestrates routing, extraction and normalization of a single
// utterance into the response returned to callers.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/lifeone/internal/clarify"
	"github.com/Veraticus/lifeone/internal/common"
	"github.com/Veraticus/lifeone/internal/entity"
	"github.com/Veraticus/lifeone/internal/fallback"
	"github.com/Veraticus/lifeone/internal/llm"
	"github.com/Veraticus/lifeone/internal/model"
	"github.com/Veraticus/lifeone/internal/normalize"
	"github.com/Veraticus/lifeone/internal/routing"
	"github.com/Veraticus/lifeone/internal/rules"
	"github.com/Veraticus/lifeone/internal/service"
	"github.com/Veraticus/lifeone/internal/temporal"
)

// Names reported in usedModel.
const (
	RemoteModel   = "remote-fallback-required"
	FallbackModel = "rule-fallback"
	DefaultModel  = "lifeone-local"
)

const parseResultLimit = 200

// Engine turns utterances into extraction responses.
type Engine struct {
	rules      *rules.Rules
	policy     *routing.Policy
	dates      *temporal.Resolver
	extractor  *fallback.Extractor
	normalizer *normalize.Normalizer
	generator  Generator
	history    service.HistoryStore
	now        func() time.Time
	modelName  string
}

// Config holds the engine's collaborators. Rules defaults to rules.Default();
// Generator and History are optional.
type Config struct {
	Rules     *rules.Rules
	Generator Generator
	History   service.HistoryStore
	Clock     func() time.Time
	ModelName string
}

// New creates an engine from cfg.
func New(cfg Config) *Engine {
	r := cfg.Rules
	if r == nil {
		r = rules.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	name := cfg.ModelName
	if name == "" {
		name = DefaultModel
	}

	dates := temporal.NewResolver(r)
	items := entity.New(r)

	return &Engine{
		rules:      r,
		policy:     routing.New(r),
		dates:      dates,
		extractor:  fallback.New(r, dates, items),
		normalizer: normalize.New(r, items),
		generator:  cfg.Generator,
		history:    cfg.History,
		now:        clock,
		modelName:  name,
	}
}

// ModelName is the name reported when the generator produced the result.
func (e *Engine) ModelName() string {
	return e.modelName
}

// Route reports whether text can be handled locally.
func (e *Engine) Route(text string) model.RoutingDecision {
	return e.policy.Route(rules.NormalizeText(text))
}

// Policy exposes the routing decision table.
func (e *Engine) Policy() *routing.Policy {
	return e.policy
}

// ResolveDate resolves a date expression against the engine clock.
func (e *Engine) ResolveDate(text string) (temporal.Date, bool) {
	return e.dates.Resolve(rules.NormalizeText(text), temporal.NewAnchor(e.now()))
}

// Process routes, extracts and normalizes one utterance.
func (e *Engine) Process(ctx context.Context, req model.ProcessRequest) (resp model.ProcessResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered panic while processing", "panic", r, "stack", string(debug.Stack()))
			resp = model.ProcessResponse{}
			err = fmt.Errorf("%w: %v", common.ErrInternal, r)
		}
	}()

	text := rules.NormalizeText(req.Text)
	if text == "" {
		return model.ProcessResponse{}, common.NewUserError("텍스트를 입력해주세요.", common.ErrInvalidRequest)
	}

	anchor := temporal.NewAnchor(e.now())
	decision := e.policy.Route(text)
	slog.Debug("Routed utterance", "reason", decision.Reason, "can_handle", decision.CanHandle)

	if !decision.CanHandle {
		resp = delegated(decision.Reason.Message())
		e.record(ctx, text, decision.Reason, resp)
		return resp, nil
	}

	snap := model.Snapshot{}
	if req.ContextData != nil {
		snap = *req.ContextData
	}

	raw, result, usedModel := e.extract(ctx, text, anchor, snap)
	normalized, clar := e.normalizer.Normalize(text, result)

	resp = model.ProcessResponse{
		DataExtraction: normalized,
		UsedModel:      usedModel,
		ParseResult:    raw,
		Clarification:  clar,
	}

	switch {
	case normalized.Empty():
		resp.DataExtraction = model.NewExtractionResult()
		resp.ProcessingDetails = "파싱 실패 - 원격 서비스로 전달"

	case clar.Needed:
		resp.CanHandle = true
		resp.ClarificationNeeded = true
		resp.Answer = clar.Question
		resp.ClarificationOptions = clar.Options
		resp.ProcessingDetails = clarificationDetails(clar)

	default:
		resp.CanHandle = true
		resp.Answer = composeAnswer(normalized)
		resp.ProcessingDetails = processingDetails(usedModel, normalized)
	}

	e.record(ctx, text, decision.Reason, resp)
	return resp, nil
}

// Clarify applies a clarification answer to a pending result.
func (e *Engine) Clarify(req model.ClarifyRequest) (model.ClarifyResponse, error) {
	if req.Pending == nil {
		return model.ClarifyResponse{}, common.NewUserError("확인할 데이터가 없습니다.", common.ErrInvalidRequest)
	}

	out, answer, err := clarify.Apply(*req.Pending, req.Answer)
	if err != nil {
		return model.ClarifyResponse{}, common.NewUserError("알 수 없는 선택입니다: "+req.Answer, err)
	}
	return model.ClarifyResponse{Answer: answer, DataExtraction: out}, nil
}

// extract asks the generator first and falls back to the rule-based extractor when
// there is no generator, it fails, or its continuation does not parse.
func (e *Engine) extract(ctx context.Context, text string, anchor temporal.Anchor, snap model.Snapshot) (*string, model.ExtractionResult, string) {
	if e.generator == nil {
		return nil, e.extractor.Extract(text, anchor, snap), FallbackModel
	}

	raw, err := e.generator.Complete(ctx, llm.BuildPrompt(text, anchor))
	if err != nil {
		slog.Warn("Generator failed, using rule-based extraction", "error", err)
		return nil, e.extractor.Extract(text, anchor, snap), FallbackModel
	}

	head := truncate(raw, parseResultLimit)
	if parsed, ok := llm.ParseExtraction(raw); ok {
		return &head, parsed, e.modelName
	}

	slog.Debug("Continuation did not parse, using rule-based extraction", "continuation", head)
	return &head, e.extractor.Extract(text, anchor, snap), FallbackModel
}

// record writes a history entry. Failures are logged and never surface to the caller.
func (e *Engine) record(ctx context.Context, text string, reason model.Reason, resp model.ProcessResponse) {
	if e.history == nil {
		return
	}

	entry := &model.HistoryEntry{
		CreatedAt:         e.now(),
		Input:             text,
		UsedModel:         resp.UsedModel,
		Reason:            reason,
		Answer:            resp.Answer,
		ProcessingDetails: resp.ProcessingDetails,
		Output:            resp.DataExtraction,
		CanHandle:         resp.CanHandle,
		Clarification:     resp.ClarificationNeeded,
	}
	if err := e.history.SaveHistory(context.WithoutCancel(ctx), entry); err != nil {
		common.LogError(err, "Failed to save history", common.Fields{"input": text})
	}
}

func delegated(details string) model.ProcessResponse {
	return model.ProcessResponse{
		DataExtraction:    model.NewExtractionResult(),
		UsedModel:         RemoteModel,
		ProcessingDetails: details,
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
