package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/streamfront/streamfront/filesystem"
	"github.com/streamfront/streamfront/inline"
	"github.com/streamfront/streamfront/util"
	"github.com/streamfront/streamfront/source"
)

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	classifyCmd.Flags().StringP("kind", "k", "", "Only show links of these kinds (comma separated)")
	lo.Must0(classifyCmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(source.Kinds(), func(k source.Kind, _ int) string {
			return k.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	classifyCmd.Flags().StringP("output", "o", "", "Write the output to a file")
}

var classifyCmd = &cobra.Command{
	Use:     "classify [url...]",
	Short:   "Show how links would be played without playing them",
	Args:    cobra.MinimumNArgs(1),
	Example: "  streamfront classify --json https://youtu.be/dQw4w9WgXcQ",
	Run: func(cmd *cobra.Command, args []string) {
		options := &inline.Options{
			Out:    cmd.OutOrStdout(),
			URLs:   args,
			Json:   lo.Must(cmd.Flags().GetBool("json")),
			Filter: mo.None[inline.KindFilter](),
		}

		if kinds := lo.Must(cmd.Flags().GetString("kind")); kinds != "" {
			filter, err := inline.ParseKindFilter(kinds)
			handleErr(err)
			options.Filter = mo.Some(filter)
		}

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			options.Out = file
		}

		handleErr(inline.Classify(options))
	},
}

func init() {
	classifyCmd.AddCommand(classifySchemaCmd)
}

var classifySchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of classify --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "inline." + t.Name()
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
