package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// CheckLink probes a submitted URL with a HEAD request. Some hosts refuse
// HEAD, so anything below 400 or a 405 counts as reachable.
func CheckLink(url string) bool {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Head(url)
	if err != nil {
		return false
	}
	code := resp.StatusCode()
	return code < 400 || code == http.StatusMethodNotAllowed
}
