// Package identity provisions the stable device identifier used in
// every signed request. Identifiers are canonical UUIDv4 strings: an
// externally injected id (build-time or config) takes precedence but is
// still normalized, legacy prefixed formats migrate in place, and
// anything unrecognizable is replaced by a freshly generated identity —
// the relay then treats the device as first contact.
package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/launcherlock/answer-relay/internal/logger"
)

// prefsKeyDeviceID is the key the identifier is persisted under in the
// agent's preferences store.
const prefsKeyDeviceID = "device_id"

// legacyPrefixes are identifier prefixes emitted by earlier agent
// revisions. A prefixed id whose remainder parses as a UUID keeps its
// UUID part; the migrated form is written back in place.
var legacyPrefixes = []string{"device-", "android-"}

// Prefs is the durable string key/value store the provider persists the
// generated identifier in.
type Prefs interface {
	Get(key string) (string, error)
	Set(key string, value string) error
}

// Provider resolves and persists the device identifier.
type Provider struct {
	prefs    Prefs
	override string
	logger   *logger.Logger
}

// NewProvider constructs a Provider. override is the externally injected
// identifier (empty when none is configured); it wins over the persisted
// value but is normalized like any other id.
func NewProvider(prefs Prefs, override string, logger *logger.Logger) *Provider {
	return &Provider{prefs: prefs, override: override, logger: logger}
}

// DeviceID returns the stable, normalized device identifier, generating
// and persisting a fresh one on first call (or when the stored value is
// unrecognizable).
func (p *Provider) DeviceID() (string, error) {
	if raw := strings.TrimSpace(p.override); raw != "" {
		if id, ok := Normalize(raw); ok {
			return id, nil
		}
		p.logger.Warn().Str("override", raw).Msg("unrecognized device id override, generating fresh identity")
	}

	stored, err := p.prefs.Get(prefsKeyDeviceID)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}

	if stored != "" {
		id, ok := Normalize(stored)
		if ok {
			if id != stored {
				// legacy format: migrate the canonical form in place
				if err = p.prefs.Set(prefsKeyDeviceID, id); err != nil {
					return "", fmt.Errorf("migrate device id: %w", err)
				}
				p.logger.Info().Str("from", stored).Str("to", id).Msg("migrated legacy device id")
			}
			return id, nil
		}
		p.logger.Warn().Str("stored", stored).Msg("unrecognized stored device id, regenerating")
	}

	id := uuid.NewString()
	if err = p.prefs.Set(prefsKeyDeviceID, id); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}
	p.logger.Info().Str("device_id", id).Msg("generated device identity")

	return id, nil
}

// Normalize maps raw to canonical UUIDv4 form. It trims whitespace,
// lowercases, and strips known legacy prefixes before parsing. The
// second return value is false when raw has no recognizable UUID, in
// which case the caller must regenerate the identity.
func Normalize(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))

	for _, prefix := range legacyPrefixes {
		if rest, found := strings.CutPrefix(s, prefix); found {
			s = rest
			break
		}
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}

	return id.String(), true
}
