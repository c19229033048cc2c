// sound_common.go - Sample descriptors, wire encoding and channel allocation

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░


(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/MegaDriveSound
License: GPLv3 or later
*/

package mdsound

import "errors"

// Error kinds surfaced at the public boundary. The underlying protocol has
// no feedback channel, so these cover host-side misuse only; once bytes hit
// the bus the operation is fire and forget.
var (
	ErrInvalidAlignment  = errors.New("mdsound: sample not aligned to driver boundary")
	ErrChannelOutOfRange = errors.New("mdsound: channel index out of range")
	ErrDriverLoadTimeout = errors.New("mdsound: driver did not report ready")
)

// Sample describes a region of read-only sample data in ROM. Address and
// length must be multiples of the driver's boundary (128 bytes for ADPCM,
// 256 bytes for the 8-bit PCM families); the drivers drop the low bits.
type Sample struct {
	Addr uint32
	Len  uint32
}

func (s Sample) alignedTo(shift uint) bool {
	mask := uint32(1)<<shift - 1
	return s.Addr&mask == 0 && s.Len&mask == 0
}

// resolveChannel turns a channel selector into a concrete index. Explicit
// indices pass through untouched; SOUND_PCM_CH_AUTO scans ascending for the
// first channel whose playing bit is clear in the status snapshot and falls
// back to channel 0 when all are busy. The fallback is a fixed convention,
// not LRU.
func resolveChannel(requested uint16, status uint8, numChannels int) int {
	if requested != SOUND_PCM_CH_AUTO {
		return int(requested)
	}
	ch := 0
	for ch < numChannels && status&(Z80_DRV_STAT_PLAYING<<ch) != 0 {
		ch++
	}
	if ch == numChannels {
		ch = 0
	}
	return ch
}

// checkChannel validates an explicit channel index before any bus traffic.
// SOUND_PCM_CH_AUTO is always valid.
func checkChannel(requested uint16, numChannels int) error {
	if requested == SOUND_PCM_CH_AUTO {
		return nil
	}
	if int(requested) >= numChannels {
		return ErrChannelOutOfRange
	}
	return nil
}

// checkExplicitChannel is checkChannel for operations that address one
// concrete channel. SOUND_PCM_CH_AUTO makes no sense for a stop or a
// volume access and is rejected.
func checkExplicitChannel(requested uint16, numChannels int) error {
	if int(requested) >= numChannels {
		return ErrChannelOutOfRange
	}
	return nil
}

// writeSampleParams writes the 4-byte shifted descriptor for one channel:
// [addr_lo, addr_hi, len_lo, len_hi], each byte an 8-bit fragment of the
// value right-shifted by the driver's alignment exponent.
func writeSampleParams(bus Z80Bus, base uint32, s Sample, shift uint) {
	bus.Write8(base+0, uint8(s.Addr>>shift))
	bus.Write8(base+1, uint8(s.Addr>>(shift+8)))
	bus.Write8(base+2, uint8(s.Len>>shift))
	bus.Write8(base+3, uint8(s.Len>>(shift+8)))
}

// setLoopIntent sets or clears the host-owned loop flag for a channel in
// status byte 1. Same bit position as the live playing flag, different
// byte.
func setLoopIntent(bus Z80Bus, ch int, loop bool) {
	flags := bus.Read8(Z80_DRV_STATUS + 1)
	if loop {
		flags |= Z80_DRV_STAT_PLAYING << ch
	} else {
		flags &^= Z80_DRV_STAT_PLAYING << ch
	}
	bus.Write8(Z80_DRV_STATUS+1, flags)
}

// stopChannel points the driver's internal parameter bank at the silent
// sample and clears both status bits for the channel. The protocol defines
// no stop command; stopping is playing silence.
func stopChannel(bus Z80Bus, ch int, null Sample, shift uint) {
	writeSampleParams(bus, Z80_DRV_PARAMS_INTERNAL+uint32(ch)*4, null, shift)

	status := bus.Read8(Z80_DRV_STATUS)
	bus.Write8(Z80_DRV_STATUS, status&^(Z80_DRV_STAT_PLAYING<<ch))
	flags := bus.Read8(Z80_DRV_STATUS + 1)
	bus.Write8(Z80_DRV_STATUS+1, flags&^(Z80_DRV_STAT_PLAYING<<ch))
}
