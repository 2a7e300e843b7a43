// Copyright (c) 2024 the ircproto authors
// released under the MIT license

// Package irccmd describes the argument shapes of client-to-server
// commands. It knows how many arguments a command takes and which are
// required; it says nothing about what the arguments mean.
package irccmd

import (
	"fmt"
	"strings"
)

// Argument is one argument slot of a command signature.
type Argument struct {
	Name     string
	Required bool
}

// ParseArgument parses a single slot from its conventional help-text
// form: "<name>" for required, "[name]" for optional.
func ParseArgument(text string) (arg Argument, err error) {
	if len(text) < 2 {
		return arg, fmt.Errorf("irccmd: unable to parse argument %q", text)
	}
	switch {
	case text[0] == '<' && text[len(text)-1] == '>':
		return Argument{Name: text[1 : len(text)-1], Required: true}, nil
	case text[0] == '[' && text[len(text)-1] == ']':
		return Argument{Name: text[1 : len(text)-1], Required: false}, nil
	}
	return arg, fmt.Errorf("irccmd: unable to parse argument %q", text)
}

// ParseArguments parses a space-separated signature like
// "<target> [message]".
func ParseArguments(spec string) ([]Argument, error) {
	fields := strings.Fields(spec)
	args := make([]Argument, 0, len(fields))
	for _, field := range fields {
		arg, err := ParseArgument(field)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// Command is the signature of a single client command.
type Command struct {
	Name string
	Args []Argument
}

// MinArgs returns the number of required arguments.
func (c Command) MinArgs() int {
	var n int
	for _, arg := range c.Args {
		if arg.Required {
			n++
		}
	}
	return n
}

// MaxArgs returns the total number of argument slots.
func (c Command) MaxArgs() int {
	return len(c.Args)
}

// AcceptsArgs reports whether n arguments satisfy the signature.
func (c Command) AcceptsArgs(n int) bool {
	return c.MinArgs() <= n && n <= c.MaxArgs()
}

func mustCommand(name, spec string) Command {
	args, err := ParseArguments(spec)
	if err != nil {
		panic(err)
	}
	return Command{Name: name, Args: args}
}

var clientCommands = []Command{
	mustCommand("PRIVMSG", "<target> <content>"),
	mustCommand("NOTICE", "<target> <content>"),
}

// LookupClient finds a client command signature by name,
// case-insensitively.
func LookupClient(name string) (c Command, ok bool) {
	for _, cmd := range clientCommands {
		if strings.EqualFold(cmd.Name, name) {
			return cmd, true
		}
	}
	return
}
