// Command channel_checksum is the plain-Go control for the other checksum
// demos: the same websites, the same checksum, no futures. Goroutines fan the
// fetches out and a channel select fans them back in, which is how a
// production Go program would usually write this.
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

func loadWebsite(url string, contents chan<- []byte, errs chan<- error) {
	resp, err := http.Get(url)
	if err != nil {
		errs <- errors.Wrapf(err, "fetch %s", url)
		return
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		errs <- errors.Wrapf(err, "read %s", url)
		return
	}
	contents <- body
}

func getChecksum(urls []string) (string, error) {
	allContents := []byte{}

	contentChan := make(chan []byte)
	errChan := make(chan error)
	for _, website := range urls {
		go loadWebsite(website, contentChan, errChan)
	}

	// Collect the contents together, stopping at the first failure.
	for range urls {
		select {
		case contents := <-contentChan:
			allContents = append(allContents, contents...)
		case err := <-errChan:
			return "", err
		}
	}

	checksum := sha512.Sum512(allContents)
	return hex.EncodeToString(checksum[:]), nil
}

func main() {
	// Record the start time of the program so that we can figure out how fast
	// it runs.
	start := time.Now()

	checksum, err := getChecksum(listOfWebsites)
	if err != nil {
		panic(err)
	}

	fmt.Println(checksum)
	// Print out the execution time.
	fmt.Printf("took %f seconds\n", time.Since(start).Seconds())
}
