package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

const (
	// MaxHTMLSize limits HTML input to 10MB to prevent memory exhaustion
	MaxHTMLSize = 10 * 1024 * 1024

	// maxServings bounds serving counts to a plausible range
	maxServings = 100
)

// Method identifies which strategy produced a result.
type Method string

const (
	MethodJSONLD    Method = "json-ld"
	MethodMicrodata Method = "microdata"
	MethodHTML      Method = "html-parsing"
	MethodHybrid    Method = "hybrid"
	MethodFailed    Method = "failed"
)

// ErrorCode classifies parse failures. TIMEOUT and NETWORK_ERROR are
// reserved for the fetch layer and never produced here.
type ErrorCode string

const (
	ErrCodeInvalidInput  ErrorCode = "INVALID_URL"
	ErrCodeParsingFailed ErrorCode = "PARSING_FAILED"
	ErrCodeTimeout       ErrorCode = "TIMEOUT"
	ErrCodeNetwork       ErrorCode = "NETWORK_ERROR"
	ErrCodeUnknown       ErrorCode = "UNKNOWN_ERROR"
)

// ParseError carries a classified extraction failure.
type ParseError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParsedRecipe is the normalized output unit. Zero values mean the field
// was not found: empty string, zero int, nil slice. Tags always serializes
// as a sequence, empty when nothing was extracted.
type ParsedRecipe struct {
	Title        string   `json:"title,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	CookingTime  int      `json:"cookingTime,omitempty"` // minutes
	Servings     int      `json:"servings,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	Tags         []string `json:"tags"`
}

// ParseResult is returned by every strategy attempt and by the cascade.
type ParseResult struct {
	Success        bool                   `json:"success"`
	Recipe         *ParsedRecipe          `json:"recipe"`
	Error          string                 `json:"error,omitempty"`
	ProcessingTime int64                  `json:"processingTime"` // milliseconds
	Method         Method                 `json:"parsingMethod"`
	RawData        map[string]interface{} `json:"extractedRawData,omitempty"`
}

// ValidateHTML checks HTML presence and size before any parsing starts.
func ValidateHTML(htmlStr string) *ParseError {
	if strings.TrimSpace(htmlStr) == "" {
		return &ParseError{Code: ErrCodeInvalidInput, Message: "empty HTML content"}
	}
	if len(htmlStr) > MaxHTMLSize {
		return &ParseError{
			Code:    ErrCodeInvalidInput,
			Message: fmt.Sprintf("html exceeds maximum size of %d bytes", MaxHTMLSize),
		}
	}
	return nil
}

// DetectCharset detects and returns charset from HTML bytes.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadHTML parses an HTML document with automatic charset detection.
func LoadHTML(htmlStr string) (*goquery.Document, error) {
	if perr := ValidateHTML(htmlStr); perr != nil {
		return nil, perr
	}

	data := []byte(htmlStr)
	detectedCharset := DetectCharset(data)

	utf8Reader, err := charset.NewReader(bytes.NewReader(data), detectedCharset)
	if err != nil {
		// Fallback to direct parsing
		return goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	}

	return goquery.NewDocumentFromReader(utf8Reader)
}

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dedupeFold removes duplicates case-insensitively while preserving the
// casing and order of each first occurrence.
func dedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if !seen[key] {
			seen[key] = true
			result = append(result, item)
		}
	}
	return result
}

// plausibleServings bounds serving counts at strategy call sites.
func plausibleServings(n int) int {
	if n <= 0 || n >= maxServings {
		return 0
	}
	return n
}
