package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/liamg/netmap/scan"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sweepWorkers int
var sweepPort int
var hideUnavailableHosts bool
var lookupDevices bool

func init() {
	sweepCmd.Flags().IntVarP(&sweepWorkers, "workers", "w", scan.DefaultSweepParallel, "Maximum probes in flight")
	sweepCmd.Flags().IntVarP(&sweepPort, "port", "", sweepPort, "Port probed on each host, 0 picks a random high port")
	sweepCmd.Flags().BoolVarP(&hideUnavailableHosts, "up-only", "u", hideUnavailableHosts, "Omit output for hosts which are not up")
	sweepCmd.Flags().BoolVarP(&lookupDevices, "devices", "d", lookupDevices, "Look up MAC, vendor and name of live hosts")
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [targets...]",
	Short: "Classify hosts as up or down by how quickly they answer",
	RunE: func(cmd *cobra.Command, args []string) error {

		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		hosts, err := expandTargets(args)
		if err != nil {
			return err
		}

		workers := c.SweepConnections
		if cmd.Flags().Changed("workers") {
			workers = sweepWorkers
		}

		netmap, err := createNetMap(c)
		if err != nil {
			return err
		}

		opts := []scan.SweepOption{
			scan.WithSweepMaxConnections(workers),
			scan.WithSweepPort(sweepPort),
			scan.WithLivenessTimeout(c.Timeout),
		}
		if lookupDevices {
			opts = append(opts, scan.WithDeviceLookup())
		}

		log.Debugf("Sweeping %d hosts...", len(hosts))

		report, err := netmap.PingSweep(context.Background(), hosts, opts...)
		if err != nil {
			return err
		}

		if hideUnavailableHosts {
			up := []scan.SweepHostResult{}
			for _, host := range report.Hosts {
				if host.Live {
					up = append(up, host)
				}
			}
			report.Hosts = up
		}

		return writeReport(os.Stdout, outputFormat, report, func(w io.Writer) {
			fmt.Fprintf(w, "\nStarting sweep at %s\n\n", report.Meta.StartTime.String())
			for _, host := range report.Hosts {
				fmt.Fprintln(w, host.String())
			}
			fmt.Fprintf(w, "%s.\n", report.Meta.String())
		})
	},
}
