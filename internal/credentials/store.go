// Package credentials reads the vendor API token and the network id from local files.
// Both files are rewritten out of band (re-authorization, network change). The token is
// re-read on every Load; the other files are re-read when their modification time or
// size changes.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// TimestampSuffix is appended to the token path to find the token issue time.
const TimestampSuffix = ".timestamp"

var ErrNoToken = errors.New("no api token available")

// Credentials is what a device fetch needs.
type Credentials struct {
	Token     string
	NetworkID string
	// IssuedAt is zero when the token timestamp file is missing or unreadable.
	IssuedAt time.Time
}

// Age returns how long ago the token was issued and whether that is known.
func (c Credentials) Age(now time.Time) (time.Duration, bool) {
	if c.IssuedAt.IsZero() {
		return 0, false
	}
	return now.Sub(c.IssuedAt), true
}

// Expired reports whether the token is older than maxAge. A token without a known
// issue time counts as expired.
func (c Credentials) Expired(now time.Time, maxAge time.Duration) bool {
	age, ok := c.Age(now)
	if !ok {
		return true
	}
	return age > maxAge
}

// Options configures a Store.
type Options struct {
	TokenPath  string
	ConfigPath string
	// DefaultNetworkID is used when the config file is missing or has no network_id.
	DefaultNetworkID string
	Logger           zerolog.Logger
}

type cachedFile struct {
	modTime time.Time
	size    int64
	loaded  bool
}

func (c *cachedFile) stale(info os.FileInfo) bool {
	return !c.loaded || !info.ModTime().Equal(c.modTime) || info.Size() != c.size
}

func (c *cachedFile) mark(info os.FileInfo) {
	c.modTime = info.ModTime()
	c.size = info.Size()
	c.loaded = true
}

// Store caches the timestamp and network config until the files change on disk.
type Store struct {
	opts Options
	log  zerolog.Logger

	mu        sync.Mutex
	token     string
	tsFile    cachedFile
	issuedAt  time.Time
	cfgFile   cachedFile
	networkID string
}

func NewStore(opts Options) *Store {
	return &Store{opts: opts, log: opts.Logger}
}

// Load returns the current credentials. A missing token is reported as an error
// alongside whatever else could be read; callers may still use the result.
func (s *Store) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := s.reloadToken(); err != nil {
		errs = append(errs, err)
	}
	s.reloadTimestamp()
	if err := s.reloadNetworkConfig(); err != nil {
		errs = append(errs, err)
	}

	networkID := s.networkID
	if networkID == "" {
		networkID = s.opts.DefaultNetworkID
	}
	creds := Credentials{Token: s.token, NetworkID: networkID, IssuedAt: s.issuedAt}
	if creds.Token == "" && len(errs) == 0 {
		errs = append(errs, ErrNoToken)
	}
	return creds, errors.Join(errs...)
}

// reloadToken reads the token file unconditionally. A rewrite may keep both
// size and mtime, so the contents are the only reliable change signal.
func (s *Store) reloadToken() error {
	data, err := os.ReadFile(s.opts.TokenPath)
	if err != nil {
		s.token = ""
		return fmt.Errorf("read token file: %w", errors.Join(ErrNoToken, err))
	}
	token := strings.TrimSpace(string(data))
	if token != s.token {
		s.token = token
		s.log.Info().Str("token", redact(s.token)).Msg("Loaded API token")
	}
	return nil
}

func (s *Store) reloadTimestamp() {
	path := s.opts.TokenPath + TimestampSuffix
	info, err := os.Stat(path)
	if err != nil {
		s.issuedAt = time.Time{}
		s.tsFile = cachedFile{}
		return
	}
	if !s.tsFile.stale(info) {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to read token timestamp")
		return
	}
	s.tsFile.mark(info)
	ts, err := ParseTimestamp(strings.TrimSpace(string(data)))
	if err != nil {
		s.log.Warn().Err(err).Msg("Unparseable token timestamp")
		s.issuedAt = time.Time{}
		return
	}
	s.issuedAt = ts
}

func (s *Store) reloadNetworkConfig() error {
	if s.opts.ConfigPath == "" {
		return nil
	}
	info, err := os.Stat(s.opts.ConfigPath)
	if err != nil {
		s.networkID = ""
		s.cfgFile = cachedFile{}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat network config: %w", err)
	}
	if !s.cfgFile.stale(info) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(s.opts.ConfigPath)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		s.networkID = ""
		return fmt.Errorf("read network config: %w", err)
	}
	s.cfgFile.mark(info)
	if id := v.GetString("network_id"); id != s.networkID {
		s.log.Info().Str("network_id", id).Msg("Network config loaded")
		s.networkID = id
	}
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses ISO-8601 timestamps with or without a zone. Zoneless values
// are read in local time.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func redact(token string) string {
	if len(token) <= 10 {
		return strings.Repeat("*", len(token))
	}
	return token[:10] + "..."
}
