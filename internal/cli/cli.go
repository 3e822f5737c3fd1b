package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

var (
	ErrUnknownCommand = errors.New("unknown command")

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
// Positional arguments are available with flags.Args().
type CommandFunc = func(ctx context.Context, flags *flag.FlagSet, printer *Printer) error

// PreExec runs after the [CommandSet] flags are parsed and before the selected [Command] is executed.
type PreExec func(flags *flag.FlagSet) error

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	return fs
}

// Command is a leaf of a [CommandSet] that generates output.
type Command struct {
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	path       string
	shortUsage string
	longUsage  string
	aliases    []string
	printer    *Printer
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc != nil {
		c.exec = commandFunc
	}
	return c
}

// Flags returns the [flag.FlagSet] for this [Command], so command specific flags can be defined.
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Usage sets a longer description that is printed with -h or --help, before the flag usages.
func (c *Command) Usage(format string, args ...any) *Command {
	c.longUsage = fmt.Sprintf(format, args...)
	return c
}

// PrintUsage prints the usage text for this [Command] to the [Printer].
func (c *Command) PrintUsage() {
	var buf strings.Builder
	buf.WriteString(c.shortUsage + "\n")
	if len(c.longUsage) > 0 {
		buf.WriteString("\nUSAGE:\n" + c.path + " " + strings.TrimSuffix(c.longUsage, "\n") + "\n")
	}
	if usages := c.flags.FlagUsages(); len(usages) > 0 {
		buf.WriteString("\nFLAGS\n" + usages)
	}
	c.printer.Print(buf.String())
}

func (c *Command) run(ctx context.Context, args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return &UsageError{command: c.path, wrapped: err}
	}
	if MustGet(c.flags.GetBool("help")) {
		c.PrintUsage()
		return nil
	}
	if c.exec == nil {
		c.PrintUsage()
		return nil
	}
	err := c.exec(ctx, c.flags, c.printer)
	var usageErr *UsageError
	if errors.As(err, &usageErr) && len(usageErr.command) == 0 {
		usageErr.command = c.path
	}
	return err
}

// CommandSet is the root of a CLI, holding flags that apply to every [Command] and dispatching to them by key or alias.
//
// Invocation always follows this form:
//
//	NAME [SET FLAGS...] COMMAND [COMMAND FLAGS...] [ARGS...]
type CommandSet struct {
	name     string
	flags    *flag.FlagSet
	commands map[string]*Command
	aliases  map[string]*Command
	preExec  []PreExec
	printer  *Printer
}

// NewCommandSet creates a [CommandSet] for a CLI with the given name.
func NewCommandSet(name string) *CommandSet {
	return &CommandSet{
		name:     name,
		flags:    newFlagSet(name),
		commands: map[string]*Command{},
		aliases:  map[string]*Command{},
		printer:  NewPrinter(),
	}
}

// Flags returns the flags parsed before the command key.
func (s *CommandSet) Flags() *flag.FlagSet {
	return s.flags
}

// Printer returns the [Printer] shared with every [Command] in this set.
func (s *CommandSet) Printer() *Printer {
	return s.printer
}

// BeforeExec registers a function to run right before a [Command] executes.
// If a [PreExec] returns an error, then the command is not executed and the error is returned from [CommandSet.Exec].
//
// Passing a nil [PreExec] will panic.
func (s *CommandSet) BeforeExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	s.preExec = append(s.preExec, fn)
}

// AddCommand adds a [Command] to this set.
// The key is cleansed to remove spaces and normalized to lower-case, and aliases are treated the same way.
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	cmd := &Command{
		flags:      newFlagSet(key),
		key:        key,
		path:       s.name + " " + key,
		shortUsage: shortUsage,
		printer:    s.printer,
	}
	s.commands[key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

// Lookup finds a [Command] by key or alias.
func (s *CommandSet) Lookup(key string) (*Command, bool) {
	key = strings.ToLower(key)
	if cmd, ok := s.commands[key]; ok {
		return cmd, true
	}
	cmd, ok := s.aliases[key]
	return cmd, ok
}

// Exec parses the set's flags from args, then executes the [Command] named by the first remaining argument.
// Usage is printed when no command is given, or when help is requested before the command.
// A [UsageError] is printed along with the relevant usage text before being returned.
func (s *CommandSet) Exec(ctx context.Context, args []string) error {
	if err := s.flags.Parse(args); err != nil {
		return s.usageFailure(&UsageError{command: s.name, wrapped: err}, s.PrintUsage)
	}
	rest := s.flags.Args()
	if MustGet(s.flags.GetBool("help")) || len(rest) == 0 {
		s.PrintUsage()
		return nil
	}
	cmd, ok := s.Lookup(rest[0])
	if !ok {
		return s.usageFailure(&UsageError{command: s.name, wrapped: fmt.Errorf("%w: %s", ErrUnknownCommand, rest[0])}, s.PrintUsage)
	}
	for _, fn := range s.preExec {
		if err := fn(s.flags); err != nil {
			var usageErr *UsageError
			if errors.As(err, &usageErr) && len(usageErr.command) == 0 {
				usageErr.command = s.name
			}
			return s.usageFailure(err, s.PrintUsage)
		}
	}
	if err := cmd.run(ctx, rest[1:]); err != nil {
		return s.usageFailure(err, cmd.PrintUsage)
	}
	return nil
}

func (s *CommandSet) usageFailure(err error, printUsage func()) error {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		s.printer.Printf("%s\n\n", err)
		printUsage()
	}
	return err
}

// PrintUsage prints the flags and commands of this set to the [Printer].
func (s *CommandSet) PrintUsage() {
	var buf strings.Builder
	buf.WriteString("USAGE:\n" + s.name + " [FLAGS] COMMAND [COMMAND FLAGS] [ARGS]\n")
	buf.WriteString("\nFLAGS\n" + s.flags.FlagUsages())
	buf.WriteString("\nCOMMANDS\n" + s.CommandUsages())
	s.printer.Print(buf.String())
}

// CommandUsages returns one line per [Command] with its aliases and short usage, sorted by key.
func (s *CommandSet) CommandUsages() string {
	keys := make([]string, 0, len(s.commands))
	for key := range s.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	names := make([]string, len(keys))
	maxLen := 0
	for i, key := range keys {
		names[i] = strings.Join(append([]string{key}, s.commands[key].aliases...), ", ")
		maxLen = max(maxLen, len(names[i]))
	}
	var buf strings.Builder
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for i, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, names[i], s.commands[key].shortUsage))
	}
	return buf.String()
}
