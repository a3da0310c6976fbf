// Package heuristic provides a detector.Client that scores URLs by keyword
// matching. It is used when no remote detection service is configured.
package heuristic

import (
	"context"
	"strings"

	"scanguard/pkg/detector"
)

const (
	// BaseScore is returned when no heuristic matches.
	BaseScore = 0.05
	// KeywordScore is returned when the URL mentions a giveaway or airdrop.
	KeywordScore = 0.7

	FlagGiveawayKeyword = "contains_giveaway_keyword"
)

var keywords = []string{"giveaway", "airdrop"} //nolint: gochecknoglobals

type Detector struct{}

var _ detector.Client = Detector{}

func New() Detector {
	return Detector{}
}

func (Detector) Detect(ctx context.Context, URL string, _ string) (detector.Result, error) {
	if err := ctx.Err(); err != nil {
		return detector.Result{}, err //nolint: wrapcheck
	}

	lower := strings.ToLower(URL)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return detector.Result{Score: KeywordScore, Flags: []string{FlagGiveawayKeyword}}, nil
		}
	}

	return detector.Result{Score: BaseScore, Flags: []string{}}, nil
}
