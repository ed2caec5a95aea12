package cli

import "github.com/spf13/cobra"

// BoolFlag defines a boolean flag for a command.
type BoolFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   bool
}

// StringFlag defines a string flag for a command.
type StringFlag struct {
	Name      string
	Shorthand string
	Usage     string
	Default   string
}

// StringSliceFlag defines a repeatable string flag for a command.
type StringSliceFlag struct {
	Name      string
	Shorthand string
	Usage     string
}

// LeafCommand defines a command that executes logic.
// Every leaf command file must declare one of these and call Build().
type LeafCommand struct {
	Use        string
	Aliases    []string
	Short      string
	Example    string
	Args       cobra.PositionalArgs
	BoolFlags  []BoolFlag
	StrFlags   []StringFlag
	SliceFlags []StringSliceFlag
	RunE       func(cmd *cobra.Command, args []string) error

	// ValidArgsFunction completes positional arguments dynamically.
	ValidArgsFunction func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)
}

// Build creates a cobra.Command with all flags registered.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:     lc.Use,
		Aliases: lc.Aliases,
		Short:   lc.Short,
		Example: lc.Example,
		Args:    lc.Args,
		RunE:    lc.RunE,

		ValidArgsFunction: lc.ValidArgsFunction,
	}
	for _, f := range lc.BoolFlags {
		cmd.Flags().BoolP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().StringP(f.Name, f.Shorthand, f.Default, f.Usage)
	}
	for _, f := range lc.SliceFlags {
		cmd.Flags().StringSliceP(f.Name, f.Shorthand, nil, f.Usage)
	}
	return cmd
}

// GroupCommand defines a command that only holds subcommands.
type GroupCommand struct {
	Use         string
	Short       string
	Subcommands []*cobra.Command
}

// Build creates a cobra.Command with all subcommands registered.
func (gc GroupCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   gc.Use,
		Short: gc.Short,
	}
	for _, sub := range gc.Subcommands {
		cmd.AddCommand(sub)
	}
	return cmd
}
