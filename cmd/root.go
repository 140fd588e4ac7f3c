package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/liamg/netmap/config"
	"github.com/liamg/netmap/scan"
	"github.com/liamg/netmap/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool
var versionRequested bool
var configPath string
var envFile = ".env"
var protocol string
var outputFormat = "text"
var timeoutMS int

func init() {
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "", envFile, "Dotenv file with NETMAP_* overrides")
	rootCmd.PersistentFlags().StringVarP(&protocol, "protocol", "", protocol, "Probe protocol. Must be one of tcp, http, https")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", outputFormat, "Output format. Must be one of text, json, yaml")
	rootCmd.PersistentFlags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Probe timeout in MS")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(sweepCmd)
}

var rootCmd = &cobra.Command{
	Use:   "netmap",
	Short: "Netmap is a timing based host/port scanner",
	Long:  `A host/port scanner that classifies hosts and ports by how long a probe takes to settle.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Printf("netmap %s\n", v)
			return
		}
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig merges the config file and environment with any flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {

	c, err := config.Load(configPath, envFile)
	if err != nil {
		return c, err
	}

	if cmd.Flags().Changed("protocol") {
		c.Protocol = protocol
	}
	if cmd.Flags().Changed("timeout-ms") {
		c.Timeout = time.Millisecond * time.Duration(timeoutMS)
		c.PortTimeout = c.Timeout
	}

	log.WithFields(log.Fields{
		"protocol":    c.Protocol,
		"timeout":     c.Timeout,
		"portTimeout": c.PortTimeout,
	}).Debug("Loaded configuration")

	return c, nil
}

func createNetMap(c config.Config) (*scan.NetMap, error) {
	return scan.New(c.ScanConfig())
}

func expandTargets(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("Please specify a target")
	}
	return scan.ExpandTargets(args)
}
