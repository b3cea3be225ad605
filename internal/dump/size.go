package dump

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// ParseSize parses sizes such as "4096", "64KiB", "2GB" or "1.5 MiB".
// SI suffixes (KB, MB, GB) are powers of 1000, IEC suffixes (KiB, MiB,
// GiB) powers of 1024. Sizes beyond an int64 are rejected.
func ParseSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("invalid size %q: too large", s)
	}
	return int64(n), nil
}
