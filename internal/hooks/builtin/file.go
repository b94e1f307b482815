package builtin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/raphi011/hooked/internal/hooks"
)

// DefaultMaxSize is the limit used by MaxFileSize without options.
const DefaultMaxSize = "5M"

// MaxFileSize fails if a staged file exceeds a size limit.
//
// Options:
//   - max-size: limit with optional unit B, K, M or G (default "5M")
//   - exclude: glob patterns of files to ignore
func MaxFileSize(ctx context.Context, hc *hooks.Context, opts hooks.Options) error {
	limit, err := ParseSize(opts.String("max-size", DefaultMaxSize))
	if err != nil {
		return err
	}
	exclude := opts.Strings("exclude")

	files, err := hc.Repo.StagedFiles(ctx)
	if err != nil {
		return err
	}

	var tooBig []string
	for _, f := range files {
		if matchAny(exclude, f) {
			continue
		}
		info, err := os.Stat(filepath.Join(hc.Repo.Dir(), f))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		if info.Size() > limit {
			tooBig = append(tooBig, fmt.Sprintf("%s (%s)", f, FormatSize(info.Size())))
		}
	}
	if len(tooBig) > 0 {
		return fmt.Errorf("files exceed %s:\n  %s", FormatSize(limit), strings.Join(tooBig, "\n  "))
	}
	return nil
}

var sizeRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([BKMG]?)(?:I?B)?$`)

var sizeFactors = map[string]int64{"": 1, "B": 1, "K": 1 << 10, "M": 1 << 20, "G": 1 << 30}

// ParseSize parses sizes like "512", "100K", "5M", "5MB" or "1.5G".
// Units are powers of 1024.
func ParseSize(s string) (int64, error) {
	m := sizeRegex.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return int64(n * float64(sizeFactors[m[2]])), nil
}

// FormatSize renders a byte count with the largest fitting unit.
func FormatSize(n int64) string {
	for _, unit := range []string{"G", "M", "K"} {
		if f := sizeFactors[unit]; n >= f {
			v := strconv.FormatFloat(float64(n)/float64(f), 'f', 1, 64)
			return strings.TrimSuffix(v, ".0") + unit
		}
	}
	return strconv.FormatInt(n, 10) + "B"
}
