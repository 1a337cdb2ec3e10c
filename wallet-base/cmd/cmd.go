package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Command struct {
	cmd *cobra.Command
}

func New(use, short, example string, run func(*Command, []string) error) *Command {
	var c *Command
	c = &Command{
		cmd: &cobra.Command{
			Use:          use,
			Short:        short,
			Example:      example,
			SilenceUsage: true,
		},
	}
	if run != nil {
		c.cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return run(c, args)
		}
	}
	return c
}

func (c *Command) CobraCmd() *cobra.Command {
	return c.cmd
}

// Flags returns the flags inherited by sub commands.
func (c *Command) Flags() *pflag.FlagSet {
	return c.cmd.PersistentFlags()
}

// LocalFlags returns the flags of this command only.
func (c *Command) LocalFlags() *pflag.FlagSet {
	return c.cmd.Flags()
}

func (c *Command) AddCommand(subs ...*Command) {
	for _, sub := range subs {
		c.cmd.AddCommand(sub.cmd)
	}
}

// MarkRequired marks local flags as required.
func (c *Command) MarkRequired(names ...string) error {
	for _, name := range names {
		if err := c.cmd.MarkFlagRequired(name); err != nil {
			return err
		}
	}
	return nil
}

// PreRun sets a hook run before this command and its sub commands.
func (c *Command) PreRun(fn func(*Command) error) {
	c.cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return fn(c)
	}
}

func (c *Command) SetArgs(args []string) {
	c.cmd.SetArgs(args)
}

func (c *Command) Execute() error {
	return c.cmd.Execute()
}
