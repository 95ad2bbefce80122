package main

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	// Shared generator parameter flags
	seed    uint64
	modulus uint64
	mult    uint64
	incr    uint64
	discard int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "revlcg",
	Short: "Reversible LCG utilities.",
	Long: `Reversible LCG utilities.
Generate pseudo-random sequences that can be walked forwards and backwards, For example:
  revlcg gen --seed=42 --count=5
  revlcg gen --seed=42 --count=5 --direction=backward
  revlcg scan --modulus=65536 --mult=5 --incr=3`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.revlcg.yaml)")
	flags.Uint64VarP(&seed, "seed", "s", 0, "generator seed")
	flags.Uint64VarP(&modulus, "modulus", "m", 1<<63, "modulus, a power of two")
	flags.Uint64VarP(&mult, "mult", "a", 6364136223846793005, "multiplier, must be odd")
	flags.Uint64VarP(&incr, "incr", "c", 1442695040888963407, "increment")
	flags.IntVarP(&discard, "discard", "d", 32, "low-order state bits discarded from outputs")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".revlcg" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".revlcg")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}

	// Feed config file and environment values into the flag set.
	// Flags given explicitly on the command line win.
	flags := rootCmd.PersistentFlags()
	if err := viper.BindPFlags(flags); err != nil {
		log.Println(err)
		os.Exit(1)
	}
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			if err := flags.Set(f.Name, viper.GetString(f.Name)); err != nil {
				log.Println(err)
				os.Exit(1)
			}
		}
	})
}
