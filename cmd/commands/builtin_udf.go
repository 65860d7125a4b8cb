package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udflow/udflow-go/pkg/builtin"
	"github.com/udflow/udflow-go/pkg/shared/logging"
)

func NewBuiltinUDFCommand() *cobra.Command {
	var (
		name      string
		cmdArgs   []string
		cmdKWArgs map[string]string
	)

	command := &cobra.Command{
		Use:   "builtin-udf",
		Short: "Starts a builtin udf function",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(name) == 0 {
				cmd.HelpFunc()(cmd, args)
				return fmt.Errorf("function name missing, use '--name' to specify a builtin function")
			}
			var decodedArgs []string
			for _, arg := range cmdArgs {
				decodeArg, err := base64.StdEncoding.DecodeString(arg)
				if err != nil {
					return err
				}
				decodedArgs = append(decodedArgs, string(decodeArg))
			}
			decodedKWArgs := make(map[string]string, len(cmdKWArgs))
			for k, v := range cmdKWArgs {
				decodeArg, err := base64.StdEncoding.DecodeString(v)
				if err != nil {
					return err
				}
				decodedKWArgs[k] = string(decodeArg)
			}

			b := &builtin.Builtin{
				Name:   name,
				Args:   decodedArgs,
				KWArgs: decodedKWArgs,
			}
			log := logging.NewLogger().Named("builtin-udf")
			return b.Start(logging.WithLogger(cmd.Context(), log))
		},
	}
	command.Flags().StringVarP(&name, "name", "n", "", "Name of the builtin function")
	command.Flags().StringSliceVarP(&cmdArgs, "args", "a", nil, "Base64 encoded args of the builtin function")
	command.Flags().StringToStringVarP(&cmdKWArgs, "kwargs", "k", nil, "Base64 encoded key-value args of the builtin function")
	return command
}
