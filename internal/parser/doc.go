// Package parser turns raw HTML documents into normalized recipe records
// without any network access or model inference.
//
// Extraction runs as a fixed cascade of strategies, each tried in order
// until one produces a meaningful recipe:
//   - jsonld: schema.org Recipe objects in application/ld+json script blocks
//   - microdata: inline itemscope/itemtype/itemprop annotations
//   - heuristic: CSS selector ladders and free-text regexes for sites with
//     no structured markup at all
//   - hybrid: field-wise merge of the partial recipes the earlier stages
//     produced, used only when none of them was meaningful on its own
//
// Built on specialized libraries:
//   - goquery: jQuery-like CSS selectors
//   - htmlquery: XPath lookups for microdata step nodes
//   - sonic: fast JSON decoding of linked-data blocks
//   - bluemonday: strips markup from instruction text
//   - chardet: charset detection before DOM parsing
//
// Example Usage:
//
//	p := parser.New(logger)
//	result := p.Parse(ctx, htmlString, sourceURL)
//	if result.Success && parser.IsMeaningful(result.Recipe) {
//		// use result.Recipe
//	}
package parser
