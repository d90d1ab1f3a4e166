package testlog

import (
	"sync"
	"testing"

	"ghost-fighter/internal/observability"

	"github.com/rs/zerolog/log"
)

var once sync.Once

// Start configures the test logger once per binary and tags the test name.
func Start(t *testing.T) {
	t.Helper()
	once.Do(func() {
		observability.Configure("test", nil, observability.ProfileTest)
	})
	log.Debug().Str("test", t.Name()).Msg("start")
}
