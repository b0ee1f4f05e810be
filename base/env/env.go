// Package env exposes the deployment identity injected by the orchestrator.
package env

import "os"

// PodName is the instance name, e.g. auction-keeper-5d8f7c9b4-x2x7q, falling back to the hostname.
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	name, _ := os.Hostname()
	return name
}
