package docker

import (
	"net"
	"os"
)

// LocalIP returns the first non-loopback IPv4 address of this host, trying
// hostname resolution first and the interface list second. It returns ""
// when neither yields an address.
func LocalIP() string {
	if host, err := os.Hostname(); err == nil {
		if addrs, err := net.LookupIP(host); err == nil {
			if ip := firstIPv4(addrs); ip != "" {
				return ip
			}
		}
	}

	ifaceAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	var ips []net.IP
	for _, a := range ifaceAddrs {
		if n, ok := a.(*net.IPNet); ok {
			ips = append(ips, n.IP)
		}
	}
	return firstIPv4(ips)
}

func firstIPv4(ips []net.IP) string {
	for _, ip := range ips {
		if ip.IsLoopback() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}
