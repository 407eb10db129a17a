package cli

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/listcord/listcord-go/internal/config"
	"github.com/listcord/listcord-go/internal/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Run the vote webhook listener as an AWS Lambda",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger = logger.With("mode", "lambda")

			listener, err := newListener(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to setup lambda")
			}
			listener.OnVote(logVote)

			rt := runtime.NewRuntime(listener,
				runtime.WithPayloadType(config.Lambda.PayloadType),
				runtime.WithLogger(logger.With("component", "runtime")))

			logger.Info("lambda starting...")
			lambda.StartWithOptions(rt.HandleEvent,
				lambda.WithContext(cmd.Context()))
			return nil
		},
	}

	bindEnvMap(cmd, lambdaEnvMapString)

	return cmd
}
