package httpapi

import (
	"sync"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// reportCache holds the last validation report keyed by data revision.
// A single entry suffices: a new revision invalidates the old one.
type reportCache struct {
	mu       sync.Mutex
	revision string
	report   *entities.ValidationReport
}

func (c *reportCache) get(revision string) (*entities.ValidationReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.report == nil || c.revision != revision {
		return nil, false
	}
	return c.report, true
}

func (c *reportCache) put(revision string, report *entities.ValidationReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revision = revision
	c.report = report
}
