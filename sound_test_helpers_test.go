// sound_test_helpers_test.go - Shared fakes and helpers for the sound driver tests

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

import "testing"

// busOp is one recorded bus operation. kind is one of "request", "release",
// "read", "write", "reset+", "reset-".
type busOp struct {
	kind string
	addr uint32
	val  uint8
}

// traceBus is a Z80Bus that records every operation in order. It attaches
// no firmware semantics to the bytes; use SimulatedZ80 for those. Not safe
// for concurrent use, tests drive it from one goroutine.
type traceBus struct {
	ram   [Z80_RAM_SIZE]byte
	taken bool
	ops   []busOp
}

func (b *traceBus) Read8(addr uint32) uint8 {
	var v uint8
	if addr >= Z80_RAM_START && addr <= Z80_RAM_END {
		v = b.ram[addr-Z80_RAM_START]
	}
	b.ops = append(b.ops, busOp{"read", addr, v})
	return v
}

func (b *traceBus) Write8(addr uint32, value uint8) {
	if addr >= Z80_RAM_START && addr <= Z80_RAM_END {
		b.ram[addr-Z80_RAM_START] = value
	}
	b.ops = append(b.ops, busOp{"write", addr, value})
}

func (b *traceBus) RequestBus(wait bool) bool {
	b.taken = true
	b.ops = append(b.ops, busOp{kind: "request"})
	return true
}

func (b *traceBus) ReleaseBus() {
	b.taken = false
	b.ops = append(b.ops, busOp{kind: "release"})
}

func (b *traceBus) BusTaken() bool { return b.taken }

func (b *traceBus) StartReset() {
	b.ops = append(b.ops, busOp{kind: "reset+"})
}

func (b *traceBus) EndReset() {
	b.ops = append(b.ops, busOp{kind: "reset-"})
}

// firstOp returns the index of the first operation matching kind and, for
// reads/writes, addr. Returns -1 when absent.
func (b *traceBus) firstOp(kind string, addr uint32) int {
	for i, op := range b.ops {
		if op.kind != kind {
			continue
		}
		if kind == "read" || kind == "write" {
			if op.addr != addr {
				continue
			}
		}
		return i
	}
	return -1
}

// countWrites counts writes to addr.
func (b *traceBus) countWrites(addr uint32) int {
	n := 0
	for _, op := range b.ops {
		if op.kind == "write" && op.addr == addr {
			n++
		}
	}
	return n
}

// stub firmware images, one distinct byte pattern per driver id
func stubImage(driver int) []byte {
	img := make([]byte, 16)
	for i := range img {
		img[i] = byte(driver)
	}
	return img
}

// registerAllDrivers fills the catalog with stub images for every
// personality.
func registerAllDrivers(t *testing.T, z *Z80Ctrl) {
	t.Helper()
	for drv := Z80_DRIVER_PCM; drv < Z80_DRIVER_NUM; drv++ {
		if _, err := z.RegisterDriver(drv, stubImage(drv)); err != nil {
			t.Fatalf("RegisterDriver(%d): %v", drv, err)
		}
	}
}

// newTraceRig returns a Z80Ctrl over a fresh traceBus with all drivers
// registered.
func newTraceRig(t *testing.T) (*Z80Ctrl, *traceBus) {
	t.Helper()
	bus := &traceBus{}
	z := NewZ80Ctrl(bus)
	registerAllDrivers(t, z)
	return z, bus
}

// newSimRig returns a Z80Ctrl over a SimulatedZ80 with all drivers
// registered and the simulator switched to the given personality.
func newSimRig(t *testing.T, driver int) (*Z80Ctrl, *SimulatedZ80) {
	t.Helper()
	sim := NewSimulatedZ80()
	z := NewZ80Ctrl(sim)
	registerAllDrivers(t, z)
	z.LoadDriver(driver, false)
	sim.SetPersonality(driver)
	return z, sim
}
