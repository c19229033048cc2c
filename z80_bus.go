// z80_bus.go - Bus arbitration and shared memory window for the Z80 sound coprocessor

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

/*
z80_bus.go - Z80 Bus for the Mega Drive sound subsystem

This module models the 68000's view of the Z80 sound coprocessor: an 8KB
shared memory window guarded by an exclusive bus lock plus a reset line. The
68000 cannot touch Z80 RAM while the Z80 is running; it must assert BUSREQ,
wait for the bus grant, perform its accesses and release the bus again. The
Z80 is simply held stalled for the duration, there is no mutex on its side.

Core contract:

    RequestBus/ReleaseBus bracket every access to the window. The lock must
    be held for a complete multi-byte sequence: a parameter block combined
    with a premature command-bit write produces a torn sample descriptor on
    the Z80 side.
    Read8/Write8 are only valid between RequestBus and ReleaseBus. Accesses
    outside the bracket are undefined, exactly as on hardware.
    StartReset/EndReset pulse the Z80 reset line. A full cycle reboots the
    resident driver firmware.

MemoryBus is the reference implementation, backed by a plain byte slice and
a mutex. SimulatedZ80 (z80_sim.go) implements the same interface but also
acts on commands the way the real driver firmwares do.
*/

package mdsound

import "sync"

// Z80Bus is the 68000-side access contract for the Z80 memory window.
type Z80Bus interface {
	// Read8 and Write8 access the shared window. Only valid while the
	// bus is taken.
	Read8(addr uint32) uint8
	Write8(addr uint32, value uint8)

	// RequestBus asserts BUSREQ. With wait set it blocks until the bus is
	// granted and always returns true; without it the request is dropped
	// if the bus is unavailable and false is returned.
	RequestBus(wait bool) bool
	ReleaseBus()
	BusTaken() bool

	// StartReset asserts the Z80 reset line, EndReset deasserts it.
	StartReset()
	EndReset()
}

// MemoryBus implements Z80Bus over a plain in-memory window. It enforces
// mutual exclusion between host goroutines but attaches no behaviour to the
// bytes; use SimulatedZ80 when driver firmware semantics are needed.
type MemoryBus struct {
	mu    sync.Mutex
	ram   [Z80_RAM_SIZE]byte
	taken bool

	inReset     bool
	resetCycles int // completed assert/deassert pairs
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

func (b *MemoryBus) Read8(addr uint32) uint8 {
	if addr >= Z80_RAM_START && addr <= Z80_RAM_END {
		return b.ram[addr-Z80_RAM_START]
	}
	if addr == Z80_BUSREQ_PORT {
		// Bit 0 low while the bus is granted to the 68000.
		if b.taken {
			return 0
		}
		return 1
	}
	return 0
}

func (b *MemoryBus) Write8(addr uint32, value uint8) {
	if addr >= Z80_RAM_START && addr <= Z80_RAM_END {
		b.ram[addr-Z80_RAM_START] = value
	}
}

func (b *MemoryBus) RequestBus(wait bool) bool {
	if wait {
		b.mu.Lock()
	} else if !b.mu.TryLock() {
		return false
	}
	b.taken = true
	return true
}

func (b *MemoryBus) ReleaseBus() {
	b.taken = false
	b.mu.Unlock()
}

func (b *MemoryBus) BusTaken() bool {
	return b.taken
}

func (b *MemoryBus) StartReset() {
	b.inReset = true
}

func (b *MemoryBus) EndReset() {
	if b.inReset {
		b.resetCycles++
	}
	b.inReset = false
}

// ResetCycles reports completed reset pulses. Used by tests to observe the
// TFM load sequence.
func (b *MemoryBus) ResetCycles() int {
	return b.resetCycles
}
