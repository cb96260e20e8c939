/*Category documents, archive stores and the resolver*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/voidshard/spendmap/pkg/classifier"
	"github.com/voidshard/spendmap/pkg/prompt"
	"github.com/voidshard/spendmap/pkg/store"
)

func getStore(out string, log zerolog.Logger) (store.Store, error) {
	bits := strings.SplitN(out, ":", 2)
	if len(bits) != 2 || bits[1] == "" {
		return nil, fmt.Errorf("invalid archive, expected [jsonfile:/path/to/file.json] or [sqlite:/path/to/file.db]")
	}

	if bits[0] == "sqlite" {
		return store.NewSQLite(bits[1], log)
	}

	return store.NewJSONFile(bits[1]), nil
}

func closeStore(s store.Store) {
	if c, ok := s.(io.Closer); ok {
		c.Close()
	}
}

// getClassifier opens the category documents. Batch runs file unknown
// businesses under the default category without remembering them, otherwise
// the user is asked on the terminal.
func getClassifier(ctx *context, batch bool) (*classifier.Classifier, error) {
	var (
		resolver classifier.Resolver
		console  *prompt.Console
	)
	if batch {
		resolver = &classifier.Static{Category: ctx.conf.DefaultCategory}
	} else {
		console = &prompt.Console{In: os.Stdin, Out: os.Stdout}
		resolver = console
	}

	c, err := classifier.New(
		store.NewJSONFile(ctx.conf.CategoriesFile),
		store.NewJSONFile(ctx.conf.MappingFile),
		resolver,
		classifier.WithLogger(ctx.log),
	)
	if err != nil {
		return nil, err
	}

	if console != nil {
		console.Hints = c
	}
	return c, nil
}
