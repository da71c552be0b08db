// Command imagepipeline runs a three-stage demo pipeline (load data, render
// each number as an "image", compress runs of four) as a single future
// chain, with a simulated latency per stage so the deferred execution is
// visible in the log timestamps.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	future "github.com/garlicnation/futures"
)

type PipelineConf struct {
	count   int
	marker  string
	latency time.Duration
}

var log *zap.SugaredLogger

func init() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger failed: %s", err)
		os.Exit(1)
	}
	log = logger.Sugar()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// StartPipeline builds the loadData -> loadImages -> processImages chain,
// resolves it, and prints the processed images. Each stage sits behind a
// timer so the chain's strict left-to-right execution shows up as roughly
// one latency of spacing between the stage logs.
func StartPipeline(conf PipelineConf) {
	loadData := func(completion func([]int)) {
		time.AfterFunc(conf.latency, func() {
			data := make([]int, 0, conf.count)
			for i := 1; i <= conf.count; i++ {
				data = append(data, i)
			}
			log.Infof("loaded %d data items", len(data))
			completion(data)
		})
	}
	loadImages := func(data []int, completion func([]string)) {
		time.AfterFunc(conf.latency, func() {
			images := make([]string, 0, len(data))
			for _, n := range data {
				images = append(images, strings.Repeat("*", n))
			}
			log.Infof("rendered %d images", len(images))
			completion(images)
		})
	}
	processImages := func(images []string, completion func([]string)) {
		time.AfterFunc(conf.latency, func() {
			processed := make([]string, 0, len(images))
			for _, image := range images {
				processed = append(processed, strings.ReplaceAll(image, "****", conf.marker))
			}
			log.Infof("processed %d images", len(processed))
			completion(processed)
		})
	}

	chain := future.Then(future.Then(future.New(loadData), loadImages), processImages)

	log.Infof("resolving a %d-image pipeline with %s per stage", conf.count, conf.latency)
	start := time.Now()

	done := make(chan []string, 1)
	chain.Resolve(func(images []string) { done <- images })
	images := <-done

	log.Infof("pipeline finished in %s", time.Since(start))
	for _, image := range images {
		fmt.Println(image)
	}
}
