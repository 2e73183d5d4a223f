package cmd

import (
	"log/slog"
	"os"

	"github.com/Matthias-Fauconneau/spirv-gen/cmd/gen"
	"github.com/Matthias-Fauconneau/spirv-gen/cmd/tools"
	"github.com/fatih/color"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spirv-gen",
	Short: "Generates Go definitions from the machine-readable SPIR-V grammar",
	Long: `spirv-gen turns the Khronos machine-readable SPIR-V grammar files into
strongly-typed Go source definitions: header constants, operand kind
enumerations, bit-flag enumerations and opcode tables, with numeric and string
conversion functions derived from the grammar.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(gen.HeaderCmd, gen.ExtInstCmd, tools.ToolsCmd)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spirv-gen.yaml)")
	RootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	cobra.OnInitialize(initConfig, initLogging)
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

		// Search config in home directory with name ".spirv-gen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spirv-gen")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// initLogging installs the default slog logger: always a text handler on
// stderr, fanned out to a JSON file handler when "logfile" is configured.
func initLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if logFile := viper.GetString("logfile"); logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			color.New(color.FgYellow).Fprintf(os.Stderr, "cannot open log file %v: %v\n", logFile, err)
		} else {
			handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		}
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}
