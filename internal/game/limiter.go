package game

import (
	"time"

	"golang.org/x/time/rate"
)

// newFrameLimiter allows one frame per 1/fps seconds with no burst.
// fps <= 0 removes the cap.
func newFrameLimiter(fps int) *rate.Limiter {
	if fps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Second/time.Duration(fps)), 1)
}
