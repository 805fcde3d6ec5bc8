package suggest

import (
	"math"
	"strings"

	"github.com/bastiangx/toolsuggest/pkg/tokenizer"
)

// intentWindow is a transient, per-query slice of the utterance: all but
// the trailing token ("complete" terms) plus the trailing token itself
// ("last prefix"), with a count of how many tokens in the window belong to
// the catalog's anchor vocabulary.
type intentWindow struct {
	completeTerms []string
	lastPrefix    string
	anchorHits    int
}

// intentWindows segments text into intent windows per spec.md section 4.4's
// "Intent-window segmentation" algorithm: tokenize without dropping
// stopwords, detect separator/punctuation boundaries, split into segments,
// then expand each segment's anchors (or the whole segment, if anchor-less)
// into windows of radius windowRadius tokens.
func (e *Engine) intentWindows(text string) []intentWindow {
	stream := tokenizer.TokensWithSpans(text, tokenizer.Options{
		DropStopwords: false,
		Locales:       e.cfg.Locales,
		RemoveNoise:   true,
	})
	if len(stream) == 0 {
		return nil
	}

	normalized := tokenizer.Normalize(text)

	n := len(stream)
	toks := make([]string, n)
	isStop := make([]bool, n)
	isAnchor := make([]bool, n)
	isSeparator := make([]bool, n)

	for i, tok := range stream {
		toks[i] = tok.Text
		isStop[i] = e.cfg.DropStopwords && e.isStopword(tok.Text)
		isAnchor[i] = e.isAnchor(tok.Text)
		isSeparator[i] = e.isSeparator(tok.Text)
	}

	punctuationBoundary := make([]bool, n)
	prevEnd := 0
	for i, tok := range stream {
		gap := normalized[prevEnd:tok.Span.Start]
		if strings.ContainsAny(gap, ",;") {
			punctuationBoundary[i] = true
		}
		prevEnd = tok.Span.End
	}

	type segment struct{ start, end int }
	var segments []segment
	start := 0
	for i := 0; i < n; i++ {
		if isSeparator[i] {
			if start < i {
				segments = append(segments, segment{start, i})
			}
			start = i + 1
			continue
		}
		if punctuationBoundary[i] && start < i {
			segments = append(segments, segment{start, i})
			start = i
		}
	}
	if start < n {
		segments = append(segments, segment{start, n})
	}
	if len(segments) == 0 {
		segments = []segment{{0, n}}
	}

	type winRange struct{ start, end int }
	var windows []intentWindow

	for _, seg := range segments {
		var anchorIdx []int
		for i := seg.start; i < seg.end; i++ {
			if isAnchor[i] {
				anchorIdx = append(anchorIdx, i)
			}
		}

		var ranges []winRange
		if len(anchorIdx) > 0 {
			for _, a := range anchorIdx {
				ws := max(seg.start, a-e.cfg.WindowRadius)
				we := min(seg.end, a+e.cfg.WindowRadius+1)
				if len(ranges) > 0 && ws <= ranges[len(ranges)-1].end {
					last := &ranges[len(ranges)-1]
					if we > last.end {
						last.end = we
					}
				} else {
					ranges = append(ranges, winRange{ws, we})
				}
			}
		} else {
			ranges = append(ranges, winRange{seg.start, seg.end})
		}

		for _, r := range ranges {
			var scoped []string
			anchorHits := 0
			for i := r.start; i < r.end; i++ {
				if isAnchor[i] {
					anchorHits++
				}
				if e.cfg.DropStopwords && isStop[i] {
					continue
				}
				scoped = append(scoped, toks[i])
			}
			if len(scoped) == 0 {
				continue
			}
			windows = append(windows, intentWindow{
				completeTerms: scoped[:len(scoped)-1],
				lastPrefix:    scoped[len(scoped)-1],
				anchorHits:    anchorHits,
			})
		}
	}

	if len(windows) == 0 {
		return nil
	}

	var anchored, fallback []intentWindow
	for _, w := range windows {
		if w.anchorHits > 0 {
			anchored = append(anchored, w)
		} else {
			fallback = append(fallback, w)
		}
	}
	var ordered []intentWindow
	if len(anchored) > 0 {
		ordered = append(append([]intentWindow{}, anchored...), fallback...)
	} else {
		ordered = fallback
	}
	if len(ordered) > e.cfg.MaxIntents {
		ordered = ordered[:e.cfg.MaxIntents]
	}
	return ordered
}

// minCompleteHits derives the completion threshold for a window per
// spec.md's "Completion-threshold selection per window": no threshold when
// there are no complete terms, anchor_alpha-scaled when the window has
// anchor hits, alpha-scaled otherwise.
func (e *Engine) minCompleteHits(anchorHits int, completeTerms []string) *int {
	if len(completeTerms) == 0 {
		return nil
	}
	var required int
	if anchorHits > 0 {
		required = int(math.Ceil(float64(anchorHits) * math.Max(0, e.cfg.AnchorAlpha)))
	} else {
		alpha := math.Max(0, math.Min(1, e.cfg.Alpha))
		required = int(math.Ceil(float64(len(completeTerms)) * alpha))
	}
	if required < 1 {
		required = 1
	}
	return &required
}
