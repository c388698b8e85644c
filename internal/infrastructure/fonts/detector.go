// Package fonts detects locally installed font families through fontconfig.
package fonts

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/logging"
)

// familyList is one successful fc-list run.
type familyList struct {
	names []string            // sorted
	keys  map[string]struct{} // normalized names
}

// Detector implements port.SystemFontDetector. The first successful fc-list
// run is cached; concurrent first calls share one run.
type Detector struct {
	group singleflight.Group

	mu     sync.RWMutex
	cached *familyList

	lookPath func(string) (string, error)
	query    func(ctx context.Context) ([]byte, error)
}

// NewDetector creates a detector running fc-list from PATH.
func NewDetector() *Detector {
	return &Detector{
		lookPath: exec.LookPath,
		query: func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, "fc-list", ":", "family").Output()
		},
	}
}

// IsAvailable reports whether fc-list is installed.
func (d *Detector) IsAvailable(_ context.Context) bool {
	_, err := d.lookPath("fc-list")
	return err == nil
}

// GetAvailableFonts returns the sorted installed family names.
func (d *Detector) GetAvailableFonts(ctx context.Context) ([]string, error) {
	list, err := d.families(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(list.names), nil
}

// IsInstalled reports whether family renders locally. Generic CSS families
// always do; when detection fails every family is assumed present.
func (d *Detector) IsInstalled(ctx context.Context, family string) bool {
	if entity.IsGenericFamily(family) {
		return true
	}
	list, err := d.families(ctx)
	if err != nil {
		return true
	}
	_, ok := list.keys[entity.NormalizeFontName(family)]
	return ok
}

func (d *Detector) families(ctx context.Context) (*familyList, error) {
	d.mu.RLock()
	list := d.cached
	d.mu.RUnlock()
	if list != nil {
		return list, nil
	}

	v, err, _ := d.group.Do("fc-list", func() (any, error) {
		output, err := d.query(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query system fonts: %w", err)
		}
		names, err := parseFamilies(output)
		if err != nil {
			return nil, err
		}

		list := &familyList{names: names, keys: make(map[string]struct{}, len(names))}
		for _, name := range names {
			list.keys[entity.NormalizeFontName(name)] = struct{}{}
		}
		d.mu.Lock()
		d.cached = list
		d.mu.Unlock()

		logging.FromContext(ctx).Debug().Int("count", len(names)).Msg("cached system fonts")
		return list, nil
	})
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("system font detection failed")
		return nil, err
	}
	return v.(*familyList), nil
}

// parseFamilies splits fc-list lines, which list aliases comma-separated
// ("DejaVu Sans,DejaVu Sans Light"), into sorted unique names.
func parseFamilies(output []byte) ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		for _, family := range strings.Split(scanner.Text(), ",") {
			family = strings.TrimSpace(family)
			if _, dup := seen[family]; family == "" || dup {
				continue
			}
			seen[family] = struct{}{}
			names = append(names, family)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fc-list output: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

var _ port.SystemFontDetector = (*Detector)(nil)
