package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/sim8086/cmd/cpu"
	"github.com/Manu343726/sim8086/cmd/tools"
	"github.com/Manu343726/sim8086/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logCloser io.Closer

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sim8086",
	Short: "A decoder for 8086 register to register mov instructions",
	Long: `sim8086 turns 8086 machine code back into nasm assembly.

Only register to register mov instructions are supported. The output listing
starts with a "bits 16" header and can be assembled back with nasm.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, closer, err := logging.New(os.Stderr, logging.Config{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		})
		if err != nil {
			return err
		}

		logCloser = closer
		slog.SetDefault(logger)

		if used := viper.ConfigFileUsed(); used != "" {
			slog.Debug("using config file", "path", used)
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(cpu.DecodeCmd, cpu.ExplainCmd, cpu.EncodeCmd, cpu.ReplCmd, tools.ToolsCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sim8086.yaml)")
	RootCmd.PersistentFlags().String("log-level", "warn", "Minimum level of log messages: debug, info, warn, error")
	RootCmd.PersistentFlags().String("log-file", "", "Also write log messages to this file, as JSON lines")
	RootCmd.PersistentFlags().String("color", "auto", "Color assembly output: auto, always, never")

	cobra.CheckErr(viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", RootCmd.PersistentFlags().Lookup("log-file")))
	cobra.CheckErr(viper.BindPFlag("color", RootCmd.PersistentFlags().Lookup("color")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sim8086" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sim8086")
	}

	viper.SetEnvPrefix("SIM8086")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
			os.Exit(1)
		}
	}
}
