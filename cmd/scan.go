package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/liamg/netmap/scan"
	"github.com/phayes/freeport"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var portSelection string
var scanWorkers int
var controlPort int
var openOnly bool

func init() {
	scanCmd.Flags().StringVarP(&portSelection, "ports", "p", portSelection, "Port to scan. Comma separated, can use hyphens e.g. 22,80,443,8080-8090")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", scan.DefaultMaxConnections, "Maximum probes in flight")
	scanCmd.Flags().IntVarP(&controlPort, "control-port", "", scan.DefaultControlPort, "Presumed closed port used as a timing baseline, 0 picks a free local port")
	scanCmd.Flags().BoolVarP(&openOnly, "open-only", "o", openOnly, "Only list ports classified as open")
}

var scanCmd = &cobra.Command{
	Use:   "scan [targets...]",
	Short: "Classify ports as open or closed against a per-host control port",
	RunE: func(cmd *cobra.Command, args []string) error {

		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		hosts, err := expandTargets(args)
		if err != nil {
			return err
		}

		ports, err := getPorts(portSelection)
		if err != nil {
			return err
		}

		workers := c.MaxConnections
		if cmd.Flags().Changed("workers") {
			workers = scanWorkers
		}

		baseline := c.ControlPort
		if cmd.Flags().Changed("control-port") {
			baseline = controlPort
		}
		if baseline == 0 {
			if baseline, err = freeport.GetFreePort(); err != nil {
				return fmt.Errorf("failed to find a free control port: %w", err)
			}
		}

		netmap, err := createNetMap(c)
		if err != nil {
			return err
		}

		total := len(hosts) * (len(ports) + 1)
		settled := 0

		log.Debugf("Scanning %d ports on %d hosts...", len(ports), len(hosts))

		report, err := netmap.TCPScan(
			context.Background(),
			hosts,
			ports,
			scan.WithMaxConnections(workers),
			scan.WithControlPort(baseline),
			scan.WithPortCallback(func(result scan.ProbeResult) {
				settled++
				log.Debugf("[%d/%d] %s:%d settled in %s", settled, total, result.Host, result.Port, result.Delta)
			}),
		)
		if err != nil {
			return err
		}

		if openOnly {
			for i := range report.Hosts {
				report.Hosts[i].Ports = report.Hosts[i].OpenPorts()
			}
		}

		return writeReport(os.Stdout, outputFormat, report, func(w io.Writer) {
			fmt.Fprintf(w, "\nStarting scan at %s\n\n", report.Meta.StartTime.String())
			for _, host := range report.Hosts {
				fmt.Fprintln(w, host.String())
			}
			fmt.Fprintf(w, "%s.\n", report.Meta.String())
		})
	},
}
