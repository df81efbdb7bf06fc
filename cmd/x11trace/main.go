/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Command x11trace listens on a local endpoint, pairs every client with a
// connection to the real X display, and traces every core protocol message
// flowing through.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"
)

const envPrefix = "X11TRACE"

var (
	flagListen  string
	flagDisplay string
	flagOutput  string
	flagConfig  string
	flagLevel   string
)

func main() {
	cmd := &cobra.Command{
		Use:   "x11trace",
		Short: "intercepting, logging proxy for the X11 core protocol",
		Long: "x11trace accepts X11 clients on a local endpoint, relays every byte to" +
			" the real display, and writes a readable trace of every request, reply," +
			" event and error.",
		RunE: run,
	}

	cmd.Flags().StringVarP(&flagListen, "listen", "l", "unix:/tmp/.X11-proxy/X9", "listening endpoint (unix:<path> or tcp:<host:port>)")
	cmd.Flags().StringVarP(&flagDisplay, "display", "d", "", "display to connect to (defaults to $DISPLAY)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "trace destination file (defaults to stdout)")
	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "config file with formatter options")
	cmd.Flags().StringVar(&flagLevel, "log-level", "info", "diagnostic log level")
	cmd.Flags().Bool("verbose", false, "emit field widths, opcode prefixes and hidden counters")
	cmd.Flags().Bool("multiline", false, "pretty-print records with per-member indentation")
	cmd.Flags().Bool("relative-timestamps", false, "render TIMESTAMP fields as wall-clock UTC")
	cmd.Flags().Bool("deny-all-extensions", false, "rewrite QueryExtension replies to hide all extensions")
	cmd.Flags().Bool("color", false, "colorize trace record prefixes")

	for _, k := range []string{"verbose", "multiline", "relative-timestamps", "deny-all-extensions", "color"} {
		_ = viper.BindPFlag(k, cmd.Flags().Lookup(k))
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("startup failed")
	}
}

func loadOptions() libprs.Options {
	opt := libprs.Options{
		Verbose:            viper.GetBool("verbose"),
		Multiline:          viper.GetBool("multiline"),
		RelativeTimestamps: viper.GetBool("relative-timestamps"),
		RefTimestamp:       viper.GetUint32("ref-timestamp"),
		RefUnixTime:        viper.GetInt64("ref-unix-time"),
		DenyAllExtensions:  viper.GetBool("deny-all-extensions"),
		Color:              viper.GetBool("color"),
	}

	// a config file overrides the flag/env values through the struct tags
	if viper.ConfigFileUsed() != "" {
		_ = viper.Unmarshal(&opt, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)))
	}

	return opt
}

func run(cmd *cobra.Command, _ []string) error {
	lvl, err := logrus.ParseLevel(flagLevel)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)

	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
		if err = viper.ReadInConfig(); err != nil {
			return err
		}
	}

	var sink io.Writer = os.Stdout
	if flagOutput != "" {
		f, e := os.OpenFile(flagOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if e != nil {
			return e
		}
		defer func() {
			_ = f.Close()
		}()
		sink = f
	}

	prs, perr := libprs.New(sink, loadOptions())
	if perr != nil {
		return perr
	}

	if flagConfig != "" {
		// runtime-tunable knobs follow the config file
		viper.OnConfigChange(func(in fsnotify.Event) {
			log.WithField("file", in.Name).Info("config reloaded")
			prs.SetOptions(loadOptions())
		})
		viper.WatchConfig()
	}

	lst, err := listen(flagListen)
	if err != nil {
		return err
	}

	dial, err := displayDialer(flagDisplay)
	if err != nil {
		return err
	}

	srv := libses.New(lst, dial, prs)
	srv.RegisterFuncError(func(id uint64, e error) {
		log.WithField("connection", id).WithError(e).Error("session failure")
	})
	srv.RegisterFuncInfo(func(id uint64, msg string) {
		log.WithField("connection", id).Info(msg)
	})

	ctx, cnl := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnl()

	log.WithFields(logrus.Fields{
		"listen":  flagListen,
		"display": flagDisplay,
	}).Info("proxy started")

	if err = srv.Listen(ctx); err != nil {
		return err
	}

	log.Info("proxy stopped")
	return nil
}
