package service

import (
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/clock"
)

// NotFoundCacheTTL is the cache lifetime in seconds of a missing transaction.
const NotFoundCacheTTL = 3

const maxCacheTTL = 600

// cacheTiers map a record age in seconds to a cache lifetime in seconds.
var cacheTiers = []struct {
	below float64
	ttl   int
}{
	{below: 20, ttl: 2},
	{below: 60, ttl: 10},
	{below: 600, ttl: 60},
}

// TipCachePolicy ages records by blue score distance to the chain tip and falls back to
// wall-clock age when the tip or the blue score is unknown.
type TipCachePolicy struct {
	tip   TipProvider
	bps   uint64
	clock clock.Clock
}

func NewTipCachePolicy(tip TipProvider, bps uint64, c clock.Clock) *TipCachePolicy {
	if bps == 0 {
		bps = 1
	}
	return &TipCachePolicy{tip: tip, bps: bps, clock: c}
}

func (p *TipCachePolicy) TTL(blueScore *uint64, timestampMs *int64) (int, bool) {
	age, ok := p.age(blueScore, timestampMs)
	if !ok {
		return 0, false
	}
	for _, tier := range cacheTiers {
		if age < tier.below {
			return tier.ttl, true
		}
	}
	return maxCacheTTL, true
}

func (p *TipCachePolicy) age(blueScore *uint64, timestampMs *int64) (float64, bool) {
	if blueScore != nil && *blueScore > 0 && p.tip != nil {
		if tip := p.tip.BlueScore(); tip > 0 {
			distance := tip - *blueScore
			if *blueScore > tip {
				distance = *blueScore - tip
			}
			return float64(distance) / float64(p.bps), true
		}
	}
	if timestampMs != nil && *timestampMs > 0 {
		return float64(p.clock.Now().UnixMilli()-*timestampMs) / 1000, true
	}
	return 0, false
}
