// Command future_checksum fetches the same websites as callback_checksum and
// prints the same checksum, with the callback pyramid flattened into futures:
// each site becomes one Future, All gathers them, and Map folds the bodies
// into a checksum. The chain is built first and inert; the single Resolve at
// the end runs all of it, with the fetches overlapping.
package main

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"

	future "github.com/garlicnation/futures"
)

var listOfWebsites = []string{
	"https://google.com",
	"https://facebook.com",
	"https://yahoo.com",
	"https://bing.com",
	"https://github.com",
}

// fetchSite wraps the fetch-then-read steps for one website into a Future.
// Nothing starts here; the work runs when the future is resolved.
func fetchSite(url string) future.Future[[]byte] {
	return future.New(func(completion func([]byte)) {
		go func() {
			resp, err := http.Get(url)
			if err != nil {
				panic(errors.Wrapf(err, "fetch %s", url))
			}
			contents, err := ioutil.ReadAll(resp.Body)
			if err != nil {
				panic(errors.Wrapf(err, "read %s", url))
			}
			completion(contents)
		}()
	})
}

func main() {
	// Record the start time of the program so that we can figure out how fast
	// it runs.
	start := time.Now()

	allFetches := []future.Future[[]byte]{}
	for _, website := range listOfWebsites {
		allFetches = append(allFetches, fetchSite(website))
	}

	checksum := future.Map(future.All(allFetches...), func(responses [][]byte) string {
		contents := []byte{}
		for _, response := range responses {
			contents = append(contents, response...)
		}
		sum := sha512.Sum512(contents)
		return hex.EncodeToString(sum[:])
	})

	// The chain above is wiring only; this Resolve starts the fetches.
	done := make(chan string, 1)
	checksum.Resolve(func(sum string) { done <- sum })
	fmt.Println(<-done)

	// Print out the execution time.
	fmt.Printf("took %f seconds\n", time.Since(start).Seconds())
}
