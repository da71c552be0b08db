// Command callback_checksum fetches a list of websites one after another and
// prints a checksum of their combined contents. It is written in the
// nested-callback style the future package exists to flatten: each
// asynchronous step can only continue inside the previous step's completion
// callback, so the program nests one level deeper per site. Compare with
// future_checksum, which is the same program as a chain.
package main

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var listOfWebsites = []string{
	"https://google.com",
	"https://facebook.com",
	"https://yahoo.com",
	"https://bing.com",
	"https://github.com",
}

// fetch retrieves a website's contents on a fresh goroutine and hands them to
// completion. The demos aren't interested in handling errors, so failures
// simply end the program.
func fetch(url string, completion func([]byte)) {
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
}

func main() {
	// Record the start time of the program so that we can figure out how fast
	// it runs.
	start := time.Now()

	done := make(chan struct{})

	// Fetch each website only after the previous one has arrived. Five sites
	// is already a staircase; every further step would push the real work one
	// indent deeper.
	fetch(listOfWebsites[0], func(first []byte) {
		fetch(listOfWebsites[1], func(second []byte) {
			fetch(listOfWebsites[2], func(third []byte) {
				fetch(listOfWebsites[3], func(fourth []byte) {
					fetch(listOfWebsites[4], func(fifth []byte) {
						allContents := []byte{}
						for _, contents := range [][]byte{first, second, third, fourth, fifth} {
							allContents = append(allContents, contents...)
						}
						// Calculate a checksum of the responses.
						checksum := sha512.Sum512(allContents)
						// Print out a human-readable form of the checksum.
						fmt.Println(hex.EncodeToString(checksum[:]))
						// Print out the execution time.
						fmt.Printf("took %f seconds\n", time.Since(start).Seconds())
						close(done)
					})
				})
			})
		})
	})

	<-done
}
