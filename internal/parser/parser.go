package parser

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/antoinemeret/recipeparse/internal/logging"
)

// strategy is the uniform capability the cascade iterates over.
type strategy interface {
	Name() Method
	Extract(doc *goquery.Document) (*ParsedRecipe, interface{}, error)
}

// Parser runs the extraction cascade. It holds no per-call state, so a
// single Parser is safe for concurrent use.
type Parser struct {
	log        *logging.Logger
	strategies []strategy
}

// New creates a parser with the full strategy cascade. A nil logger
// disables process-level logging; per-call diagnostics are always kept.
func New(log *logging.Logger) *Parser {
	if log == nil {
		log = logging.NewNop()
	}
	return &Parser{
		log: log,
		strategies: []strategy{
			newJSONLDStrategy(),
			newMicrodataStrategy(),
			newHTMLStrategy(),
		},
	}
}

// Parse extracts a recipe from an HTML document. The source URL is used
// only as diagnostic context and is never dereferenced. Strategies run in
// a fixed order and the first meaningful result wins; when none is
// meaningful on its own, their partial results are merged field-wise as a
// last resort. Strategy failures never escape: the worst case is a failed
// result aggregating every attempt's error.
func (p *Parser) Parse(ctx context.Context, htmlStr, sourceURL string) *ParseResult {
	start := time.Now()
	callID := uuid.NewString()
	diag := newDiagnostics(start)
	log := p.log.With(zap.String("call_id", callID), zap.String("url", sourceURL))

	if perr := ValidateHTML(htmlStr); perr != nil {
		log.Warn("rejected input before parsing", zap.String("reason", perr.Message))
		diag.errorf("invalid input: %s", perr.Message)
		return p.failed(start, diag, callID, nil, []*ParseError{perr})
	}

	doc, err := LoadHTML(htmlStr)
	if err != nil {
		log.Error("document load failed", zap.Error(err))
		perr := &ParseError{Code: ErrCodeParsingFailed, Message: err.Error()}
		diag.errorf("document load failed: %v", err)
		return p.failed(start, diag, callID, nil, []*ParseError{perr})
	}

	var attempted []Method
	var errs []*ParseError
	var partials []*ParsedRecipe

	for _, strat := range p.strategies {
		if ctx.Err() != nil {
			errs = append(errs, &ParseError{Code: ErrCodeUnknown, Message: ctx.Err().Error()})
			break
		}

		method := strat.Name()
		attempted = append(attempted, method)
		diag.debugf("attempting %s extraction", method)

		stageStart := time.Now()
		recipe, raw, err := runStrategy(strat, doc)
		elapsed := time.Since(stageStart)

		if err != nil {
			diag.warnf("%s failed after %dms: %v", method, elapsed.Milliseconds(), err)
			log.Debug("strategy failed",
				zap.String("method", string(method)),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
			errs = append(errs, classify(err))
			continue
		}

		if recipe != nil {
			partials = append(partials, recipe)
		}

		if IsMeaningful(recipe) {
			diag.infof("%s produced a meaningful recipe in %dms", method, elapsed.Milliseconds())
			log.Info("extraction succeeded",
				zap.String("method", string(method)),
				zap.Duration("elapsed", elapsed),
			)
			return &ParseResult{
				Success:        true,
				Recipe:         recipe,
				ProcessingTime: time.Since(start).Milliseconds(),
				Method:         method,
				RawData: map[string]interface{}{
					"callId":           callID,
					"source":           raw,
					"attemptedMethods": attempted,
					"logs":             diag.entries,
				},
			}
		}

		diag.warnf("%s result was not meaningful", method)
		errs = append(errs, &ParseError{
			Code:    ErrCodeParsingFailed,
			Message: fmt.Sprintf("%s did not produce meaningful recipe data", method),
		})
	}

	// Last resort: combine whatever the stages managed to extract
	attempted = append(attempted, MethodHybrid)
	diag.debugf("attempting hybrid merge over %d partial recipes", len(partials))

	if merged := mergeRecipes(partials); IsMeaningful(merged) {
		diag.infof("hybrid merge produced a meaningful recipe from %d partials", len(partials))
		log.Info("extraction succeeded",
			zap.String("method", string(MethodHybrid)),
			zap.Int("partials", len(partials)),
		)
		return &ParseResult{
			Success:        true,
			Recipe:         merged,
			ProcessingTime: time.Since(start).Milliseconds(),
			Method:         MethodHybrid,
			RawData: map[string]interface{}{
				"callId":           callID,
				"sourceCount":      len(partials),
				"attemptedMethods": attempted,
				"logs":             diag.entries,
			},
		}
	}

	diag.errorf("hybrid parsing did not produce meaningful recipe data")
	errs = append(errs, &ParseError{
		Code:    ErrCodeParsingFailed,
		Message: "hybrid parsing did not produce meaningful recipe data",
	})

	log.Warn("all extraction strategies failed", zap.Int("errors", len(errs)))
	return p.failed(start, diag, callID, attempted, errs)
}

func (p *Parser) failed(start time.Time, diag *diagnostics, callID string, attempted []Method, errs []*ParseError) *ParseResult {
	message := "all parsing strategies failed"
	if len(errs) == 1 {
		message = errs[0].Message
	}
	return &ParseResult{
		Success:        false,
		Recipe:         nil,
		Error:          message,
		ProcessingTime: time.Since(start).Milliseconds(),
		Method:         MethodFailed,
		RawData: map[string]interface{}{
			"callId":           callID,
			"attemptedMethods": attempted,
			"errors":           errs,
			"logs":             diag.entries,
		},
	}
}

// runStrategy isolates one stage, converting panics into errors so a
// single misbehaving strategy can never take down the whole call.
func runStrategy(strat strategy, doc *goquery.Document) (recipe *ParsedRecipe, raw interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			recipe, raw = nil, nil
			err = fmt.Errorf("%s panicked: %v", strat.Name(), r)
		}
	}()
	return strat.Extract(doc)
}

// classify wraps a stage error with its taxonomy code.
func classify(err error) *ParseError {
	if perr, ok := err.(*ParseError); ok {
		return perr
	}
	return &ParseError{Code: ErrCodeParsingFailed, Message: err.Error()}
}

// logEntry is one line of per-call diagnostics, stamped with the offset
// from call start.
type logEntry struct {
	OffsetMs int64  `json:"offsetMs"`
	Level    string `json:"level"`
	Message  string `json:"message"`
}

// diagnostics accumulates log entries for one call. Each call gets its own
// instance, so concurrent calls never share state.
type diagnostics struct {
	start   time.Time
	entries []logEntry
}

func newDiagnostics(start time.Time) *diagnostics {
	return &diagnostics{start: start}
}

func (d *diagnostics) add(level, format string, args ...interface{}) {
	d.entries = append(d.entries, logEntry{
		OffsetMs: time.Since(d.start).Milliseconds(),
		Level:    level,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (d *diagnostics) debugf(format string, args ...interface{}) { d.add("debug", format, args...) }
func (d *diagnostics) infof(format string, args ...interface{})  { d.add("info", format, args...) }
func (d *diagnostics) warnf(format string, args ...interface{})  { d.add("warn", format, args...) }
func (d *diagnostics) errorf(format string, args ...interface{}) { d.add("error", format, args...) }
