package utils

import (
	"math"
	"time"
)

// Korea Standard Time (+09:00)
var kstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

// RoundHours keeps two decimals, the precision the API reports travel and
// stay hours with.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

func FormatDisplayKST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format("2006-01-02 15:04:05 -0700 MST")
}
