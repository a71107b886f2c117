package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rs/zerolog/log"
)

type parameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ResolveSecrets fills the anon key from AWS SSM Parameter Store when the key is
// unset and a parameter name is configured. Otherwise it does nothing.
func ResolveSecrets(ctx context.Context, c *Config) error {
	if !needsParameter(c) {
		return nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return errs.NewConfigError("aws credentials", err)
	}
	return resolveWith(ctx, c, ssm.NewFromConfig(awsCfg))
}

func needsParameter(c *Config) bool {
	return c.SupabaseAnonKeyParam != "" && c.SupabaseAnonKey == ""
}

func resolveWith(ctx context.Context, c *Config, getter parameterGetter) error {
	if !needsParameter(c) {
		return nil
	}
	out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(c.SupabaseAnonKeyParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return errs.NewConfigError(c.SupabaseAnonKeyParam, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil || *out.Parameter.Value == "" {
		return errs.NewEnvironmentVariableError("SUPABASE_ANON_KEY_SSM_PARAM")
	}
	c.SupabaseAnonKey = *out.Parameter.Value
	log.Info().Str("parameter", c.SupabaseAnonKeyParam).Msg("Resolved Supabase anon key from SSM")
	return nil
}
