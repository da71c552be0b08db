package main

import (
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imagepipeline",
	Short: "Run the load -> render -> compress image pipeline as a future chain",
	Run:   pipelineCmdHandler,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntP("count", "n", 10, "number of images to load")
	flags.String("marker", "#", "character that replaces each run of four identical characters")
	flags.Duration("latency", 300*time.Millisecond, "simulated latency per stage")
}

func pipelineCmdHandler(cmd *cobra.Command, args []string) {
	var conf PipelineConf
	flags := cmd.Flags()
	conf.count, _ = flags.GetInt("count")
	conf.marker, _ = flags.GetString("marker")
	conf.latency, _ = flags.GetDuration("latency")
	StartPipeline(conf)
}
