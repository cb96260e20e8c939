/*Category maintenance*/
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
)

type categoriesCmd struct {
	List    listCategoriesCmd `cmd:"" default:"1" help:"List categories and how many businesses map to each."`
	Add     addCategoriesCmd  `cmd:"" help:"Add categories."`
	Assign  assignCmd         `cmd:"" help:"Map a business to a category, adding the category if needed."`
	Similar similarCmd        `cmd:"" help:"Show known businesses that look like the given one."`
}

type listCategoriesCmd struct {
	Businesses bool `short:"b" help:"Also list the businesses of each category."`
}

func (c *listCategoriesCmd) Run(ctx *context) error {
	cls, err := getClassifier(ctx, true)
	if err != nil {
		return err
	}

	byCategory := map[string][]string{}
	for business, category := range cls.Mapping() {
		byCategory[category] = append(byCategory[category], business)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, category := range cls.Categories() {
		businesses := byCategory[category]
		sort.Strings(businesses)

		fmt.Fprintf(w, "%d.\t%s\t%d\n", i+1, category, len(businesses))
		if c.Businesses {
			for _, b := range businesses {
				fmt.Fprintf(w, "\t\t%s\n", b)
			}
		}
	}
	return w.Flush()
}

type addCategoriesCmd struct {
	Names []string `arg:"" help:"Category names."`
}

func (c *addCategoriesCmd) Run(ctx *context) error {
	cls, err := getClassifier(ctx, true)
	if err != nil {
		return err
	}
	return cls.AddCategories(c.Names...)
}

type assignCmd struct {
	Business string `arg:"" help:"Business name, exactly as on the statement."`
	Category string `arg:"" help:"Category to file it under."`
}

func (c *assignCmd) Run(ctx *context) error {
	cls, err := getClassifier(ctx, true)
	if err != nil {
		return err
	}
	return cls.Assign(c.Business, c.Category)
}

type similarCmd struct {
	Business string `arg:"" help:"Business name to look for."`
	Limit    int    `short:"n" default:"5" help:"How many to show."`
}

func (c *similarCmd) Run(ctx *context) error {
	cls, err := getClassifier(ctx, true)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range cls.Similar(c.Business, c.Limit) {
		fmt.Fprintf(w, "%s\t%s\t%d\n", m.Business, m.Category, m.Distance)
	}
	return w.Flush()
}
