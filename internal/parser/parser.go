// Package parser extracts transaction candidates from bank notification text.
package parser

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"spendflow/internal/model"
)

// payload is the notification body delivered by the listener: a short and a
// long rendering of the same message. Either may carry the signal.
type payload struct {
	BigText string `json:"bigText"`
	Text    string `json:"text"`
}

// extractor is a single extraction strategy: a pattern plus the field it
// resolves on the candidate.
type extractor struct {
	re    *regexp.Regexp
	apply func(c *model.Candidate, groups []string)
}

var (
	// A run of masking characters followed by exactly four digits, e.g.
	// "AXXXXXX1234"; only the digits are kept.
	accountRe = regexp.MustCompile(`(?i)[X*]+(\d{4})`)
	// Whole-word transaction direction.
	directionRe = regexp.MustCompile(`(?i)\b(credited|debited)\b`)
	// Amount in either ordering: "debited Rs. 1,250.50" or
	// "Rs. 1,250.50 debited".
	amountRe = regexp.MustCompile(`(?i)(?:\b(?:credited|debited)\b\s*RS\.?\s*([\d,]+(?:\.\d{1,2})?)|RS\.?\s*([\d,]+(?:\.\d{1,2})?)\s*\b(?:credited|debited)\b)`)
)

// Parser turns raw notification payloads into transaction candidates. It is
// pure and safe for concurrent use.
type Parser struct {
	extractors []extractor
}

// New creates a parser with the standard extraction strategies. The order of
// the list is the order fields are resolved; each strategy tries the short
// text first and falls back to the long one.
func New() *Parser {
	return &Parser{extractors: []extractor{
		{
			re: accountRe,
			apply: func(c *model.Candidate, groups []string) {
				c.AccountSuffix = groups[1]
			},
		},
		{
			re: directionRe,
			apply: func(c *model.Candidate, groups []string) {
				c.Direction = strings.ToLower(groups[1])
			},
		},
		{
			re: amountRe,
			apply: func(c *model.Candidate, groups []string) {
				raw := groups[1]
				if raw == "" {
					raw = groups[2]
				}
				raw = strings.ReplaceAll(raw, ",", "")
				amount, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return
				}
				c.Amount = &amount
			},
		},
	}}
}

// Parse extracts whatever fields it can from the payload. Absence of a match
// leaves the corresponding field unset; malformed or empty input yields an
// empty candidate, never an error.
func (p *Parser) Parse(raw string) model.Candidate {
	var body payload
	// Malformed JSON behaves exactly like a notification with empty text.
	_ = json.Unmarshal([]byte(raw), &body)

	sources := [2]string{body.Text, body.BigText}

	var candidate model.Candidate
	for _, ex := range p.extractors {
		for _, src := range sources {
			if groups := ex.re.FindStringSubmatch(src); groups != nil {
				ex.apply(&candidate, groups)
				break
			}
		}
	}
	return candidate
}
