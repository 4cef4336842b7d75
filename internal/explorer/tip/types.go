package tip

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"
)

type (
	// BlueScoreSource reports the blue score of the current virtual chain tip.
	BlueScoreSource interface {
		GetSinkBlueScore(ctx context.Context) (uint64, error)
	}
	Metrics interface {
		ObserveRefresh(err error, blueScore uint64, started time.Time)
	}
)
