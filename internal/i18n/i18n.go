// Package i18n localizes operator-facing strings.
//
// Message catalogs are TOML files embedded at build time, one per language,
// with dotted keys mirroring the action catalog ("action.view.tasks") plus
// server and monitor strings. Lookups fall back from the active language to
// the fallback language and finally to the raw key, so an incomplete
// translation never blanks a label.
package i18n

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/quarterdeckhq/quarterdeck/internal/application/port"
	"github.com/quarterdeckhq/quarterdeck/internal/cache"
	"github.com/quarterdeckhq/quarterdeck/internal/config"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

//go:embed locales/*.toml
var localeFS embed.FS

// matchCacheSize bounds the Accept-Language memoization cache. Headers repeat
// heavily across requests from the same clients, so a small cache suffices.
const matchCacheSize = 256

// Provider resolves message keys against the embedded catalogs and tracks the
// active language. It implements port.LanguageProvider and
// port.LanguageSwitcher; language changes persist through the config manager
// when one is attached.
type Provider struct {
	mu       sync.RWMutex
	active   string
	fallback string

	catalogs map[string]map[string]string
	tagNames []string // sorted, parallel to tags
	tags     []language.Tag
	matcher  language.Matcher
	matches  *cache.LRU[string, string]
	mgr      *config.Manager
}

// New builds a Provider from the embedded catalogs. The manager is optional;
// without one, language changes apply in memory only.
func New(mgr *config.Manager) (*Provider, error) {
	catalogs, err := loadCatalogs()
	if err != nil {
		return nil, err
	}

	tagNames := make([]string, 0, len(catalogs))
	for tag := range catalogs {
		tagNames = append(tagNames, tag)
	}
	sort.Strings(tagNames)

	tags := make([]language.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid locale file name %q: %w", name, err)
		}
		tags = append(tags, tag)
	}

	defaults := config.DefaultConfig()
	p := &Provider{
		active:   defaults.I18n.Language,
		fallback: defaults.I18n.Fallback,
		catalogs: catalogs,
		tagNames: tagNames,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		matches:  cache.NewLRU[string, string](matchCacheSize),
		mgr:      mgr,
	}
	if mgr != nil {
		p.SyncFromConfig(mgr.Get())
	}
	return p, nil
}

// SyncFromConfig adopts the language settings from cfg without persisting.
// Wire it to the config manager's change notifications so edits to the config
// file take effect on a running daemon. Tags without an embedded catalog are
// ignored and the previous selection stays active.
func (p *Provider) SyncFromConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.catalogs[cfg.I18n.Fallback]; ok {
		p.fallback = cfg.I18n.Fallback
	}
	if _, ok := p.catalogs[cfg.I18n.Language]; ok {
		p.active = cfg.I18n.Language
	}
}

// Language returns the active language tag.
func (p *Provider) Language(ctx context.Context) string {
	return p.current()
}

// Languages lists the available languages in tag order, each with its
// self-described display name.
func (p *Provider) Languages(ctx context.Context) []port.LanguageInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()

	infos := make([]port.LanguageInfo, 0, len(p.tagNames))
	for _, tag := range p.tagNames {
		name := p.catalogs[tag]["meta.name"]
		if name == "" {
			name = tag
		}
		infos = append(infos, port.LanguageInfo{Tag: tag, Name: name})
	}
	return infos
}

// SetLanguage switches the active language. The tag must name an embedded
// catalog; the choice persists through the config manager when one is
// attached.
func (p *Provider) SetLanguage(ctx context.Context, tag string) error {
	log := logging.FromContext(ctx)
	tag = strings.ToLower(strings.TrimSpace(tag))

	p.mu.RLock()
	_, ok := p.catalogs[tag]
	p.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unsupported language: %s", tag)
	}

	if p.mgr != nil {
		if err := p.mgr.Update(func(c *config.Config) {
			c.I18n.Language = tag
		}); err != nil {
			return fmt.Errorf("persist language: %w", err)
		}
	}

	p.mu.Lock()
	p.active = tag
	p.mu.Unlock()

	log.Info().Str("language", tag).Msg("console language changed")
	return nil
}

// Cycle advances to the next available language in tag order, wrapping at the
// end. It backs the language.cycle action and returns the newly active tag.
func (p *Provider) Cycle(ctx context.Context) (string, error) {
	p.mu.RLock()
	idx := 0
	for i, tag := range p.tagNames {
		if tag == p.active {
			idx = i
			break
		}
	}
	next := p.tagNames[(idx+1)%len(p.tagNames)]
	p.mu.RUnlock()

	if err := p.SetLanguage(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// T resolves key in the active language, falling back to the fallback
// language and finally to the key itself. Args are applied with fmt.Sprintf
// when present.
func (p *Provider) T(key string, args ...any) string {
	return p.TIn(p.current(), key, args...)
}

// TIn resolves key in the given language instead of the active one. Sessions
// carry their own locale, so server messages translate per connection.
func (p *Provider) TIn(tag, key string, args ...any) string {
	p.mu.RLock()
	msg, ok := p.catalogs[tag][key]
	if !ok {
		msg, ok = p.catalogs[p.fallback][key]
	}
	p.mu.RUnlock()

	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// MatchAccept resolves an Accept-Language header against the available
// catalogs and returns the best matching tag, or the active language when
// nothing matches. Confident matches are memoized per header value; misses
// are not cached because their answer follows the active language.
func (p *Provider) MatchAccept(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return p.current()
	}
	if tag, ok := p.matches.Get(header); ok {
		return tag
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return p.current()
	}
	_, idx, conf := p.matcher.Match(desired...)
	if conf == language.No {
		return p.current()
	}

	tag := p.tagNames[idx]
	p.matches.Set(header, tag)
	return tag
}

func (p *Provider) current() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.active
}

func loadCatalogs() (map[string]map[string]string, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}

	catalogs := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".toml") {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}
		messages := make(map[string]string)
		flattenMessages("", raw, messages)
		catalogs[strings.TrimSuffix(name, ".toml")] = messages
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no locale catalogs embedded")
	}
	return catalogs, nil
}

// flattenMessages joins nested table keys with dots, mirroring the action
// naming convention. Non-string leaves are skipped.
func flattenMessages(prefix string, value map[string]interface{}, out map[string]string) {
	for key, v := range value {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch typed := v.(type) {
		case string:
			out[full] = typed
		case map[string]interface{}:
			flattenMessages(full, typed, out)
		}
	}
}
