// Package classifier maps business names to spending categories.
//
// It owns two persisted documents: the ordered list of category names, and
// the learned business -> category mapping. Every mapped category must be in
// the list, checked on load and after each change. Businesses it doesn't know
// are handed to a Resolver, whose answer can be remembered.
//
// A Classifier is not safe for concurrent use.
package classifier

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/voidshard/spendmap/pkg/store"
)

type Option func(*Classifier)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Classifier) {
		c.log = log.With().Str("component", "classifier").Logger()
	}
}

type Classifier struct {
	categoriesDoc store.Document
	mappingDoc    store.Document
	resolver      Resolver
	log           zerolog.Logger

	categories []string
	known      map[string]bool
	mapping    map[string]string
}

// New loads both documents and verifies them. A document that doesn't exist
// yet is treated as empty. resolver may be nil if CategoryFor is never asked
// to prompt.
func New(categories, mapping store.Document, resolver Resolver, opts ...Option) (*Classifier, error) {
	c := &Classifier{
		categoriesDoc: categories,
		mappingDoc:    mapping,
		resolver:      resolver,
		log:           zerolog.Nop(),
		categories:    []string{},
		known:         map[string]bool{},
		mapping:       map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}

	loaded := []string{}
	if err := load(categories, &loaded); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	for _, name := range loaded {
		if c.known[name] {
			continue
		}
		c.known[name] = true
		c.categories = append(c.categories, name)
	}

	if err := load(mapping, &c.mapping); err != nil {
		return nil, fmt.Errorf("load category mapping: %w", err)
	}
	if c.mapping == nil {
		// a document holding null
		c.mapping = map[string]string{}
	}

	if err := c.VerifyConsistency(); err != nil {
		return nil, err
	}

	c.log.Debug().Int("categories", len(c.categories)).Int("businesses", len(c.mapping)).Msg("classifier loaded")
	return c, nil
}

func load(doc store.Document, v interface{}) error {
	err := doc.Load(v)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// VerifyConsistency returns ErrInconsistent if any business maps to a
// category that isn't known.
func (c *Classifier) VerifyConsistency() error {
	for business, category := range c.mapping {
		if !c.known[category] {
			return fmt.Errorf("%w: %q maps to unknown category %q", ErrInconsistent, business, category)
		}
	}
	return nil
}

// Categories returns the known categories in order.
func (c *Classifier) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Mapping returns a copy of the learned business -> category mapping.
func (c *Classifier) Mapping() map[string]string {
	out := make(map[string]string, len(c.mapping))
	for k, v := range c.mapping {
		out[k] = v
	}
	return out
}

// CategoryFor returns the category of business. An unmapped business is
// ErrNotFound unless prompt is set, in which case the resolver decides.
func (c *Classifier) CategoryFor(business string, prompt bool) (string, error) {
	if category, ok := c.mapping[business]; ok {
		return category, nil
	}
	if !prompt {
		return "", fmt.Errorf("%w: %q", ErrNotFound, business)
	}
	if c.resolver == nil {
		return "", fmt.Errorf("%w: %q: no resolver", ErrUnresolved, business)
	}

	category, remember, err := c.resolver.Resolve(business, c.Categories())
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnresolved, business, err)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return "", fmt.Errorf("%w: %q: empty answer", ErrUnresolved, business)
	}

	c.log.Debug().Str("business", business).Str("category", category).Bool("remember", remember).Msg("resolved")

	if remember {
		err = c.Assign(business, category)
	} else {
		err = c.AddCategories(category)
	}
	if err != nil {
		return "", err
	}
	return category, nil
}

// AddCategories appends the names not already known. The category document
// is written only if something was added.
func (c *Classifier) AddCategories(names ...string) error {
	return c.apply(names, "", "")
}

// Assign maps business to category, adding the category if it's new.
// Overwrites any previous mapping for business.
func (c *Classifier) Assign(business, category string) error {
	if business == "" {
		return fmt.Errorf("empty business name")
	}
	return c.apply([]string{category}, business, category)
}

// apply works out the new state, saves whatever changed and only then takes
// it on, so a failed save leaves the classifier as it was.
func (c *Classifier) apply(names []string, business, category string) error {
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("empty category name")
		}
	}

	categories := c.categories
	added := []string{}
	pending := map[string]bool{}
	for _, name := range names {
		if c.known[name] || pending[name] {
			continue
		}
		pending[name] = true
		added = append(added, name)
	}
	if len(added) > 0 {
		categories = make([]string, 0, len(c.categories)+len(added))
		categories = append(categories, c.categories...)
		categories = append(categories, added...)
	}

	mapping := c.mapping
	mapped := false
	if business != "" {
		if prev, ok := c.mapping[business]; !ok || prev != category {
			mapping = make(map[string]string, len(c.mapping)+1)
			for k, v := range c.mapping {
				mapping[k] = v
			}
			mapping[business] = category
			mapped = true
		}
	}

	if len(added) == 0 && !mapped {
		return nil
	}

	for b, cat := range mapping {
		if !c.known[cat] && !pending[cat] {
			return fmt.Errorf("%w: %q maps to unknown category %q", ErrInconsistent, b, cat)
		}
	}

	if len(added) > 0 {
		if err := c.categoriesDoc.Save(categories); err != nil {
			return fmt.Errorf("save categories: %w", err)
		}
		c.categories = categories
		for _, name := range added {
			c.known[name] = true
		}
		c.log.Info().Strs("added", added).Msg("categories added")
	}
	if mapped {
		if err := c.mappingDoc.Save(mapping); err != nil {
			return fmt.Errorf("save category mapping: %w", err)
		}
		c.mapping = mapping
		c.log.Info().Str("business", business).Str("category", category).Msg("business assigned")
	}
	return nil
}
