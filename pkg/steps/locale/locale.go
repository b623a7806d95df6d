// Package locale translates step titles and the short status strings a host
// shows around them.
//
// Message files use the go-i18n formats (TOML, YAML or JSON) and take their
// language from the file name, e.g. "active.es.toml".
package locale

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Message IDs for built-in strings.
const (
	MsgProgress = "progress"
	MsgLoading  = "loading"
	MsgRejected = "rejected"
	MsgUnknown  = "unknown_step"
)

var defaultMessages = []*i18n.Message{
	{ID: MsgProgress, Other: "Step {{.Index}} of {{.Total}}"},
	{ID: MsgLoading, Other: "Checking…"},
	{ID: MsgRejected, Other: "Cannot leave {{.Step}} yet"},
	{ID: MsgUnknown, Other: "Unknown step {{.Step}}"},
}

// Catalog holds translations for one preferred language, falling back to
// English.
type Catalog struct {
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	tag       language.Tag
	localizer *i18n.Localizer
}

// New creates a Catalog for lang, a BCP 47 tag such as "en" or "pt-BR".
// An empty lang selects English.
func New(lang string) (*Catalog, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", lang, err)
		}
		tag = parsed
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	if err := bundle.AddMessages(language.English, defaultMessages...); err != nil {
		return nil, fmt.Errorf("add default messages: %w", err)
	}

	return &Catalog{
		bundle:    bundle,
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Language returns the preferred language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// LoadFile loads a message file from disk.
func (c *Catalog) LoadFile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("load messages %s: %w", path, err)
	}
	return nil
}

// LoadBytes loads message file content. path is used only to determine the
// format and language.
func (c *Catalog) LoadBytes(data []byte, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.bundle.ParseMessageFileBytes(data, path); err != nil {
		return fmt.Errorf("parse messages %s: %w", path, err)
	}
	return nil
}

// Title returns the translated title for a step. When messageID is empty
// or untranslated, the step name is returned.
func (c *Catalog) Title(step, messageID string) string {
	if messageID == "" {
		return step
	}
	return c.localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID, Other: step},
	}, step)
}

// Progress returns the "Step n of m" line for a one-based index.
func (c *Catalog) Progress(index, total int) string {
	return c.Text(MsgProgress, map[string]any{"Index": index, "Total": total})
}

// Text localizes a message by ID with optional template data. Unknown IDs
// are returned unchanged.
func (c *Catalog) Text(messageID string, data map[string]any) string {
	return c.localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	}, messageID)
}

func (c *Catalog) localize(cfg *i18n.LocalizeConfig, fallback string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, err := c.localizer.Localize(cfg)
	if err != nil && s == "" {
		return fallback
	}
	return s
}
