package net

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_sketchpad._tcp"

// Advertise announces the web sketchpad on the local network so it can be
// found without typing an address. Call Shutdown on the result to stop.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, []string{"Sketchpad", "path=/"})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Discover lists the page URLs of sketchpads advertised on the local network,
// waiting at most timeout for answers.
func Discover(timeout time.Duration) ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan []string)
	go func() {
		var urls []string
		for e := range entries {
			if url, ok := entryURL(e); ok {
				urls = append(urls, url)
			}
		}
		done <- urls
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	urls := <-done
	if err != nil {
		return urls, fmt.Errorf("mdns query: %w", err)
	}
	return urls, nil
}

func entryURL(e *mdns.ServiceEntry) (string, bool) {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return "", false
	}
	return pageURL(e.AddrV4, e.Port), true
}
