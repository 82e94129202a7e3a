package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/moneykit/money"
	"github.com/moneykit/money/id"
)

const (
	success = 0
	failure = 1
)

// invocation marks the identifier of a single run in the log output.
type invocation struct{}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	runID := id.Unique[invocation]()
	log := zerolog.New(stderr).With().Timestamp().Str("run", runID.String()).Logger()

	// Environment defaults.
	cfg, err := parseConfig()
	if err != nil {
		log.Error().Err(err).Msg("could not read environment")
		return failure
	}

	// Command line parameter initialization.
	var (
		flagAmount   string
		flagCurrency string
		flagLevel    string
		flagList     bool
		flagLocale   string
		flagMax      int
		flagOptional bool
	)

	flags := pflag.NewFlagSet("money-demo", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&flagAmount, "amount", "a", "", "decimal amount to format, demo amounts if empty")
	flags.StringVarP(&flagCurrency, "currency", "c", "EUR", "currency code of the amount")
	flags.StringVarP(&flagLevel, "level", "l", cfg.Level, "log output level")
	flags.BoolVar(&flagList, "list", false, "list common currencies with their names and symbols")
	flags.StringVarP(&flagLocale, "locale", "L", cfg.locale(), "BCP 47 locale used for formatting")
	flags.IntVarP(&flagMax, "max-decimals", "m", -1, "maximum number of decimals, negative for the currency default")
	flags.BoolVarP(&flagOptional, "optional-decimals", "o", false, "omit decimals of whole amounts")

	err = flags.Parse(args)
	if err != nil {
		return failure
	}

	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	tag, err := language.Parse(flagLocale)
	if err != nil {
		log.Error().Str("locale", flagLocale).Err(err).Msg("could not parse locale")
		return failure
	}
	loc := money.NewLocale(tag)
	log.Debug().Str("locale", tag.String()).Str("region", loc.Region().String()).Msg("locale selected")

	if flagList {
		for _, c := range money.Common() {
			fmt.Fprintf(stdout, "%s\t%s\t%s\n", c, c.Symbol(loc), c.LocalizedName(loc))
		}
		return success
	}

	if flagAmount == "" {
		eur := money.MustParseAmount("EUR", "1.14").Neg()
		usd := money.MustParseAmount("USD", "5")
		fmt.Fprintln(stdout, loc.Format(eur))
		fmt.Fprintln(stdout, loc.FormatOptionalDecimals(usd))
		return success
	}

	amount, err := money.ParseAmount(flagCurrency, flagAmount)
	if err != nil {
		log.Error().Str("amount", flagAmount).Err(err).Msg("could not parse amount")
		return failure
	}
	log.Debug().Str("amount", amount.String()).Int("decimal_digits", amount.DecimalDigits()).Msg("amount parsed")

	switch {
	case flagMax >= 0:
		fmt.Fprintln(stdout, loc.FormatMaxDecimals(amount, flagMax))
	case flagOptional:
		fmt.Fprintln(stdout, loc.FormatOptionalDecimals(amount))
	default:
		fmt.Fprintln(stdout, loc.Format(amount))
	}

	return success
}
