package datagen

import (
	"fmt"
	"net/netip"
)

// IPv4 generates a dotted quad address. Any address may be produced, including reserved ranges.
func (g *Generator) IPv4() string {
	var octets [4]byte
	_, _ = g.Read(octets[:])
	return netip.AddrFrom4(octets).String()
}

// MACAddress generates six uppercase hex pairs separated by colons.
func (g *Generator) MACAddress() string {
	var b [6]byte
	_, _ = g.Read(b[:])
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}

// HexColor generates a color like "#1A2B3C".
func (g *Generator) HexColor() string {
	return fmt.Sprintf("#%06X", g.rng.IntN(0x1000000))
}
