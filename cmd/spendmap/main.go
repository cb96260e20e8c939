/*Basic command structure*/
package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/voidshard/spendmap/pkg/config"
	"github.com/voidshard/spendmap/pkg/logger"
)

// context holds global options
type context struct {
	Config   string `help:"Config file to read (toml)." type:"path" env:"SPENDMAP_CONFIG"`
	LogLevel string `name:"log-level" help:"Override the configured log level [debug info warn error disabled]."`

	conf *config.Config
	log  zerolog.Logger
}

// setup loads configuration and builds the logger shared by all commands.
func (c *context) setup() error {
	config.LoadEnvFile()

	conf, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.LogLevel != "" {
		conf.Log.Level = c.LogLevel
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	c.conf = conf
	c.log = logger.WithRun(logger.New(conf.Log.Level, conf.Log.JSON))
	return nil
}

// cli commands / args available
var cli struct {
	Ctx context `embed:""`

	Report     reportCmd     `cmd:"" help:"Parse a directory of statements and merge them into the summary workbook."`
	Parse      parseCmd      `cmd:"" help:"Parse one statement and print it as JSON."`
	Categories categoriesCmd `cmd:"" help:"Show or edit categories and the business mapping."`
	Totals     totalsCmd     `cmd:"" help:"Print month x category totals from a sqlite archive."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("spendmap"),
		kong.Description("Credit card statements, summed by month and category."),
	)
	ctx.FatalIfErrorf(cli.Ctx.setup())

	err := ctx.Run(&cli.Ctx)
	ctx.FatalIfErrorf(err)
}
