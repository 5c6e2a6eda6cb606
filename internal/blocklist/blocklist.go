// Package blocklist provides the set of tracking and advertising hostnames
// whose requests are aborted while a profile page loads.
package blocklist

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net"
	"strings"
)

//go:embed blocked_hosts.json
var blockedHostsJSON []byte

// overrides adjusts entries from the embedded list. A true value adds a host,
// false removes one the list would otherwise block.
var overrides = map[string]bool{
	"static.chartbeat.com":  true,
	"www.linkedin.com":      false,
	"platform.linkedin.com": false,
	"static-exp1.licdn.com": false,
}

// Blocklist is an immutable hostname set. Lookups ignore ports.
type Blocklist struct {
	hosts map[string]bool
}

// Load builds the Blocklist from the embedded host list merged with the
// override set.
func Load() (*Blocklist, error) {
	var entries map[string]bool
	if err := json.Unmarshal(blockedHostsJSON, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse embedded host list: %w", err)
	}

	hosts := make(map[string]bool, len(entries)+len(overrides))
	for host, blocked := range entries {
		if blocked {
			hosts[strings.ToLower(host)] = true
		}
	}
	for host, blocked := range overrides {
		if blocked {
			hosts[strings.ToLower(host)] = true
		} else {
			delete(hosts, strings.ToLower(host))
		}
	}

	return &Blocklist{hosts: hosts}, nil
}

// Blocked reports whether the given hostname is on the list. The host may
// carry a port.
func (b *Blocklist) Blocked(host string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return false
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return b.hosts[host]
}

// Len returns the number of blocked hostnames.
func (b *Blocklist) Len() int {
	return len(b.hosts)
}
