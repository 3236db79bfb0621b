package hostinfo

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// machineIDPaths are tried in order; the first readable one wins.
// /etc/machine-id is systemd, /var/lib/dbus/machine-id covers older
// distros and some containers.
var machineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// Fingerprint returns a stable identifier for this machine, used to tell
// saved report histories from different machines apart. It hashes the OS
// machine-id plus hostname; when no machine-id exists, hostname alone.
func Fingerprint() string {
	var parts []string

	for _, path := range machineIDPaths {
		if data, err := os.ReadFile(path); err == nil {
			if id := strings.TrimSpace(string(data)); id != "" {
				parts = append(parts, id)
				break
			}
		}
	}

	if hostname, err := os.Hostname(); err == nil {
		parts = append(parts, hostname)
	}

	sum := blake2b.Sum256([]byte(strings.Join(parts, "\n")))
	return fmt.Sprintf("%x", sum[:16])
}
