package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rxdeskhq/pharmaclient"
	"github.com/rxdeskhq/pharmaclient/internal/config"
	"github.com/rxdeskhq/pharmaclient/internal/observability"
	"github.com/rxdeskhq/pharmaclient/session"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "pharmactl",
	Short:         "pharmactl talks to the pharmacy backend from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.pharmactl/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "backend origin, overrides api.base_url")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newMedicinesCmd())
	rootCmd.AddCommand(newSalesCmd())
	rootCmd.AddCommand(newSuppliersCmd())
}

// loadConfig reads defaults, the config file, environment, and flags, in
// ascending precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home + "/.pharmactl")
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PHARMACTL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from
		// defaults, environment, and flags.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		v.Set("api.base_url", baseURL)
	}

	return config.Load(v)
}

// newComponents builds the logger, session adapter, and API client for a
// command invocation. The returned func flushes and closes everything.
func newComponents(cmd *cobra.Command) (*pharmaclient.Client, *zap.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := observability.NewLogger(cfg.Logger)

	adapter, err := newSessionAdapter(cfg.Session)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}

	client, err := pharmaclient.New().
		WithBaseURL(cfg.API.BaseURL).
		WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}).
		WithSessionAdapter(adapter).
		WithLogger(logger).
		WithSessionExpiredHandler(func() {
			fmt.Fprintln(os.Stderr, "Session expired; run `pharmactl login` again.")
		}).
		Build()
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}

	cleanup := func() {
		client.Close()
		_ = logger.Sync()
	}
	return client, logger, cleanup, nil
}

func newSessionAdapter(cfg config.SessionConfig) (session.Adapter, error) {
	if cfg.RedisURL == "" {
		return session.NewFileAdapter(cfg.File), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse session.redis_url: %w", err)
	}
	return session.NewRedisAdapter(redis.NewClient(opts), cfg.RedisKey, cfg.RedisTTL)
}
