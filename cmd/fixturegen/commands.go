package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saylorsolutions/testkit/datagen"
	"github.com/saylorsolutions/testkit/internal/cli"
	"github.com/saylorsolutions/testkit/internal/config"
	"github.com/saylorsolutions/testkit/internal/logx"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
)

type app struct {
	settings config.Settings
	printer  *cli.Printer
	gen      *datagen.Generator
	count    int
	log      *slog.Logger
}

func newCommandSet(settings config.Settings) *cli.CommandSet {
	set := cli.NewCommandSet("fixturegen")
	a := &app{settings: settings, printer: set.Printer()}

	flags := set.Flags()
	flags.Uint64("seed", settings.Seed, "Seed for reproducible output, defaults to $"+config.EnvSeed+" or a random seed")
	flags.IntP("count", "n", 1, "Number of values to generate")
	flags.Int("max-attempts", settings.MaxAttempts, "Candidates a phone pattern may reject before failing")
	set.BeforeExec(a.configure)

	phone := set.AddCommand("phone", "Generates phone numbers for a country or pattern", "tel").
		Usage("[--country CODE | --pattern PATTERN]").
		Does(a.phone)
	phone.Flags().StringP("country", "c", "US", "ISO 3166 alpha-2 country code, see 'countries'")
	phone.Flags().StringP("pattern", "p", "", `Pattern using \d, \d{n}, escapes, and literals. Overrides --country`)

	set.AddCommand("countries", "Lists supported country codes and their phone patterns").Does(a.countries)

	email := set.AddCommand("email", "Generates email addresses").Does(a.email)
	email.Flags().StringP("domain", "d", datagen.DefaultDomain, "Domain of the address")
	email.Flags().IntP("length", "l", datagen.DefaultEmailUsernameLength, "Length of the username")

	set.AddCommand("name", "Generates realistic full names").Does(a.simple(func(g *datagen.Generator) any {
		return g.FullName()
	}))

	date := set.AddCommand("date", "Generates calendar dates").Does(a.date)
	date.Flags().StringP("format", "f", datagen.YearMonthDay.Layout(), "One of: "+dateLayouts())
	date.Flags().StringP("template", "t", "", "Free form template using yyyy, yy, MMM, MM, and dd. Overrides --format")

	uuidCmd := set.AddCommand("uuid", "Generates UUIDs").Does(a.uuid)
	uuidCmd.Flags().StringP("version", "v", string(datagen.UUIDv4), "UUID version: v1, v3, v4, v5, v6, or v7")

	set.AddCommand("card", "Generates credit card numbers with a valid Luhn check digit").Does(a.simple(func(g *datagen.Generator) any {
		return g.CreditCardNumber()
	}))
	set.AddCommand("iban", "Generates German format IBANs with valid check digits").Does(a.simple(func(g *datagen.Generator) any {
		return g.IBAN()
	}))
	set.AddCommand("ip", "Generates IPv4 addresses", "ipv4").Does(a.simple(func(g *datagen.Generator) any {
		return g.IPv4()
	}))
	set.AddCommand("mac", "Generates MAC addresses").Does(a.simple(func(g *datagen.Generator) any {
		return g.MACAddress()
	}))
	set.AddCommand("color", "Generates hex colors", "colour").Does(a.simple(func(g *datagen.Generator) any {
		return g.HexColor()
	}))

	intCmd := set.AddCommand("int", "Generates integers in an inclusive range").Does(a.integer)
	intCmd.Flags().Int("min", 0, "Minimum value")
	intCmd.Flags().Int("max", 100, "Maximum value")

	amount := set.AddCommand("amount", "Generates monetary amounts in an inclusive range").Does(a.amount)
	amount.Flags().String("min", "0", "Minimum amount")
	amount.Flags().String("max", "1000", "Maximum amount")
	amount.Flags().Int32("places", 2, "Digits after the decimal point")

	seq := set.AddCommand("seq", "Generates sequences of distinct integers").Does(a.sequence)
	seq.Flags().Int("min", 1, "Minimum value")
	seq.Flags().Int("max", 100, "Maximum value")
	seq.Flags().IntP("length", "l", 10, "Values per sequence")

	set.AddCommand("regex", "Generates strings matching a regular expression").
		Usage("PATTERN").
		Does(a.regex)

	return set
}

func dateLayouts() string {
	formats := datagen.DateFormats()
	layouts := make([]string, len(formats))
	for i, f := range formats {
		layouts[i] = f.Layout()
	}
	return strings.Join(layouts, ", ")
}

func (a *app) configure(flags *flag.FlagSet) error {
	a.count = cli.MustGet(flags.GetInt("count"))
	if a.count < 1 {
		return cli.NewUsageError("--count must be at least 1, got %d", a.count)
	}
	a.log = logx.New(a.printer.Diagnostics(), a.settings.LogLevel)
	opts := []datagen.Option{
		datagen.WithMaxAttempts(cli.MustGet(flags.GetInt("max-attempts"))),
		datagen.WithLogger(a.log),
	}
	if flags.Changed("seed") || a.settings.Seeded {
		seed := cli.MustGet(flags.GetUint64("seed"))
		opts = append(opts, datagen.WithSeed(seed))
		a.log = a.log.With("seed", seed)
	}
	a.gen = datagen.New(opts...)
	a.log.Debug("Configured generator", "count", a.count)
	return nil
}

// repeat emits count values, stopping early if ctx is cancelled.
// Invalid arguments from the generator are the user's doing, so they're reported as usage errors.
func (a *app) repeat(ctx context.Context, generate func() (any, error)) error {
	for i := 0; i < a.count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		val, err := generate()
		if err != nil {
			if errors.Is(err, datagen.ErrInvalidArgument) {
				return cli.NewUsageError("%w", err)
			}
			return err
		}
		a.printer.Result(val)
	}
	return nil
}

func (a *app) simple(generate func(g *datagen.Generator) any) cli.CommandFunc {
	return func(ctx context.Context, _ *flag.FlagSet, _ *cli.Printer) error {
		return a.repeat(ctx, func() (any, error) {
			return generate(a.gen), nil
		})
	}
}

func (a *app) phone(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	pattern := cli.MustGet(flags.GetString("pattern"))
	if len(pattern) == 0 {
		country := cli.MustGet(flags.GetString("country"))
		var ok bool
		pattern, ok = datagen.PhonePattern(country)
		if !ok {
			return cli.NewUsageError("%w: unknown country code %q", datagen.ErrInvalidArgument, country)
		}
	}
	a.log.Debug("Generating phone numbers", "pattern", pattern)
	return a.repeat(ctx, func() (any, error) {
		return a.gen.PhoneNumberFromPatternContext(ctx, pattern)
	})
}

func (a *app) countries(_ context.Context, _ *flag.FlagSet, p *cli.Printer) error {
	for _, code := range datagen.CountryCodes() {
		pattern, _ := datagen.PhonePattern(code)
		p.Result(code + "\t" + pattern)
	}
	return nil
}

func (a *app) email(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	domain := cli.MustGet(flags.GetString("domain"))
	length := cli.MustGet(flags.GetInt("length"))
	return a.repeat(ctx, func() (any, error) {
		return a.gen.EmailWith(domain, length)
	})
}

func (a *app) date(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	if template := cli.MustGet(flags.GetString("template")); len(template) > 0 {
		return a.repeat(ctx, func() (any, error) {
			return a.gen.DateLayout(template), nil
		})
	}
	format, err := datagen.ParseDateFormat(cli.MustGet(flags.GetString("format")))
	if err != nil {
		return cli.NewUsageError("%w", err)
	}
	return a.repeat(ctx, func() (any, error) {
		return a.gen.Date(format)
	})
}

func (a *app) uuid(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	version := datagen.UUIDVersion(cli.MustGet(flags.GetString("version")))
	return a.repeat(ctx, func() (any, error) {
		return a.gen.UUID(version)
	})
}

func (a *app) integer(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	lo, hi := cli.MustGet(flags.GetInt("min")), cli.MustGet(flags.GetInt("max"))
	return a.repeat(ctx, func() (any, error) {
		return a.gen.Int(lo, hi)
	})
}

func (a *app) amount(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	lo, err := decimal.NewFromString(cli.MustGet(flags.GetString("min")))
	if err != nil {
		return cli.NewUsageError("invalid --min: %w", err)
	}
	hi, err := decimal.NewFromString(cli.MustGet(flags.GetString("max")))
	if err != nil {
		return cli.NewUsageError("invalid --max: %w", err)
	}
	places := cli.MustGet(flags.GetInt32("places"))
	return a.repeat(ctx, func() (any, error) {
		amount, err := a.gen.Amount(lo, hi, places)
		if err != nil {
			return nil, err
		}
		return amount.StringFixed(places), nil
	})
}

func (a *app) sequence(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	lo, hi := cli.MustGet(flags.GetInt("min")), cli.MustGet(flags.GetInt("max"))
	length := cli.MustGet(flags.GetInt("length"))
	return a.repeat(ctx, func() (any, error) {
		seq, err := a.gen.UniqueSequence(lo, hi, length)
		if err != nil {
			return nil, err
		}
		return strings.Trim(fmt.Sprint(seq), "[]"), nil
	})
}

func (a *app) regex(ctx context.Context, flags *flag.FlagSet, _ *cli.Printer) error {
	var pattern string
	if err := cli.MapArgs(flags.Args(), 1, &pattern); err != nil {
		return err
	}
	return a.repeat(ctx, func() (any, error) {
		return a.gen.Regex(pattern)
	})
}
