// Copyright © 2022 Provenant Labs, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/engine"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "provenant",
	Short: "Provenant is a supply chain tracking and certification ledger",
	Long: `Provenant tracks shipments and certification applications as append-only
event sequences, derives their state deterministically, and anchors
selected checkpoints to an external ledger for independent verification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

var newEngine = engine.NewEngine

func run() error {

	// Engine must be constructed before config read, so all plugin config
	// keys are known
	eng := newEngine()

	// Read the configuration
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	ctx = log.WithLogger(ctx, logrus.WithField("pid", os.Getpid()))
	config.SetupLogging(ctx)
	log.L(ctx).Infof("Provenant")
	log.L(ctx).Infof("© Copyright 2022 Provenant Labs, Inc.")

	// Deferred error return from reading config
	if err != nil {
		cancelCtx()
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, cfgFile)
	}

	// Setup signal handling to cancel the context, which shuts down the engine
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGKILL)
	go func() {
		sig := <-sigs
		log.L(ctx).Infof("Shutting down due to %s", sig.String())
		cancelCtx()
	}()

	defer eng.WaitStop()
	if err = eng.Init(ctx); err != nil {
		cancelCtx()
		return err
	}
	if err = eng.Start(); err != nil {
		cancelCtx()
		return err
	}

	// Run until the context is cancelled
	<-ctx.Done()
	return nil
}
