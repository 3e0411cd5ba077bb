package net

import (
	"fmt"
	"log"
	"net"
)

// LocalIP picks the LAN address viewers can reach this machine on. The
// route to a public address wins; without one the first non-loopback IPv4
// interface address is used.
func LocalIP() string {
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			return addr.IP.String()
		}
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Printf("[FEED] Listing interfaces: %v", err)
		return "127.0.0.1"
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	log.Println("[FEED] No LAN address found, share link only works locally")
	return "127.0.0.1"
}

// ShareURL is the websocket address viewers open to follow the feed.
func ShareURL(port int) string {
	return fmt.Sprintf("ws://%s:%d/ws", LocalIP(), port)
}
