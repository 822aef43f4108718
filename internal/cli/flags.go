package cli

import (
	"flag"
	"strconv"
	"strings"
)

// listFlag is a flag that may be given alone or followed by any number of words,
// e.g. "--stats", "--stats count 6" or "-ss 4 6 8".
type listFlag struct {
	set    bool
	values []string
}

func (l *listFlag) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(l.values, " ")
}

// IsBoolFlag lets the flag appear without a value
func (l *listFlag) IsBoolFlag() bool {
	return true
}

func (l *listFlag) Set(value string) error {
	l.set = true
	if value != "true" {
		l.values = append(l.values, value)
	}
	return nil
}

func (l *listFlag) append(value string) {
	l.values = append(l.values, value)
}

// int64Flag records whether it was set
type int64Flag struct {
	value *int64
}

func (f *int64Flag) String() string {
	if f == nil || f.value == nil {
		return ""
	}
	return strconv.FormatInt(*f.value, 10)
}

func (f *int64Flag) Set(value string) error {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	f.value = &n
	return nil
}

// parseFlags parses args with fs, handing the words that follow a list flag to it.
// Words run until the next token that looks like a flag; integers, including
// negative ones, are always treated as words.
func parseFlags(fs *flag.FlagSet, lists map[string]*listFlag, args []string) error {
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}

		rest := fs.Args()
		if len(rest) == 0 {
			return nil
		}

		stop := len(args) - len(rest)
		list := listBefore(args, stop, lists)
		if list == nil {
			return &unexpectedArgumentError{arg: rest[0]}
		}

		n := 0
		for n < len(rest) && isWord(rest[n]) {
			list.append(rest[n])
			n++
		}
		args = rest[n:]
	}
}

// listBefore returns the list flag named by the token just before position stop
func listBefore(args []string, stop int, lists map[string]*listFlag) *listFlag {
	if stop == 0 || stop > len(args) {
		return nil
	}

	token := args[stop-1]
	if !strings.HasPrefix(token, "-") || isInt(token) {
		return nil
	}

	name := strings.TrimLeft(token, "-")
	if i := strings.Index(name, "="); i >= 0 {
		name = name[:i]
	}
	return lists[name]
}

func isWord(token string) bool {
	return !strings.HasPrefix(token, "-") || isInt(token)
}

func isInt(token string) bool {
	_, err := strconv.Atoi(token)
	return err == nil
}

type unexpectedArgumentError struct {
	arg string
}

func (e *unexpectedArgumentError) Error() string {
	return ErrUnexpectedArgument.Error() + ": " + e.arg
}

func (e *unexpectedArgumentError) Unwrap() error {
	return ErrUnexpectedArgument
}
