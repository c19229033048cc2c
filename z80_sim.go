// z80_sim.go - Simulated Z80 sound coprocessor

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
z80_sim.go - Host-side simulation of the Z80 driver firmwares

SimulatedZ80 implements Z80Bus and, on top of the plain memory window, acts
on the mailbox the way the resident driver firmwares do: command bits are
consumed and turned into playing status, a completed reset cycle raises the
driver ready bit, and an optionally attached sample ROM is mixed down so
the result can be auditioned through an audio backend.

The real firmware knows what it is; the simulator has to be told. Callers
switch its personality with SetPersonality after loading a driver. Only the
PCM-family personalities are simulated — the MVS and TFM trackers are
opaque music firmwares, and their mailboxes already behave correctly as
plain memory (the MVS status byte is its command byte).

The mixdown exists to stand in for the external collaborator during tests
and demos. It is not part of the control layer: nothing here is consulted
by the players, which only ever see the mailbox bytes.
*/

package mdsound

import "sync"

// Mixing rate of the simulated 4 channel drivers.
const SIM_SAMPLE_RATE = 16000

type simChannel struct {
	active bool
	loop   bool
	pos    uint32 // current byte offset in ROM
	start  uint32
	length uint32
}

// SimulatedZ80 is a Z80Bus that also plays the coprocessor's role in the
// command protocol. Status updates happen synchronously on ReleaseBus, so a
// StartPlay followed by IsPlaying observes the channel as playing, which is
// what tests need and a close enough approximation of the sub-frame latency
// of the real driver.
type SimulatedZ80 struct {
	mu    sync.Mutex
	ram   [Z80_RAM_SIZE]byte
	taken bool

	personality int
	inReset     bool
	resetCycles int
	readyOnBoot bool // raise the driver ready bit after a reset cycle

	rom      []byte // attached sample data, indexed by Sample.Addr
	channels [pcm4Channels]simChannel
}

func NewSimulatedZ80() *SimulatedZ80 {
	return &SimulatedZ80{
		personality: Z80_DRIVER_NULL,
		readyOnBoot: true,
	}
}

// SetPersonality tells the simulator which driver semantics to apply.
func (s *SimulatedZ80) SetPersonality(driver int) {
	s.mu.Lock()
	s.personality = driver
	s.channels = [pcm4Channels]simChannel{}
	s.mu.Unlock()
}

// SetReadyOnBoot controls whether a completed reset cycle raises the
// driver ready bit. Disable to exercise load timeout paths.
func (s *SimulatedZ80) SetReadyOnBoot(ready bool) {
	s.mu.Lock()
	s.readyOnBoot = ready
	s.mu.Unlock()
}

// AttachROM attaches sample data addressed by Sample.Addr. Required only
// for the audio mixdown; the protocol simulation works without it.
func (s *SimulatedZ80) AttachROM(rom []byte) {
	s.mu.Lock()
	s.rom = rom
	s.mu.Unlock()
}

// ResetCycles reports completed reset pulses.
func (s *SimulatedZ80) ResetCycles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetCycles
}

func (s *SimulatedZ80) Read8(addr uint32) uint8 {
	if addr >= Z80_RAM_START && addr <= Z80_RAM_END {
		return s.ram[addr-Z80_RAM_START]
	}
	if addr == Z80_BUSREQ_PORT {
		if s.taken {
			return 0
		}
		return 1
	}
	return 0
}

func (s *SimulatedZ80) Write8(addr uint32, value uint8) {
	if addr >= Z80_RAM_START && addr <= Z80_RAM_END {
		s.ram[addr-Z80_RAM_START] = value
	}
}

func (s *SimulatedZ80) RequestBus(wait bool) bool {
	if wait {
		s.mu.Lock()
	} else if !s.mu.TryLock() {
		return false
	}
	s.taken = true
	return true
}

// ReleaseBus hands the bus back and lets the simulated firmware run: any
// pending command bits are consumed before the lock drops.
func (s *SimulatedZ80) ReleaseBus() {
	s.taken = false
	s.consumeCommands()
	s.mu.Unlock()
}

func (s *SimulatedZ80) BusTaken() bool {
	return s.taken
}

func (s *SimulatedZ80) StartReset() {
	s.inReset = true
}

func (s *SimulatedZ80) EndReset() {
	if !s.inReset {
		return
	}
	s.inReset = false
	s.mu.Lock()
	s.resetCycles++
	s.channels = [pcm4Channels]simChannel{}
	// A freshly booted firmware zeroes its mailbox, which is what makes
	// a personality switch destructive. The TFM mailbox is deliberately
	// left alone: its firmware reads the pre-staged address at boot.
	for off := Z80_DRV_COMMAND; off < Z80_DRV_PARAMS_VOLUME+pcm4Channels; off++ {
		s.ram[off-Z80_RAM_START] = 0
	}
	s.ram[MVS_DRV_STATUS-Z80_RAM_START] = 0
	if s.readyOnBoot {
		s.ram[Z80_DRV_STATUS-Z80_RAM_START] |= Z80_DRV_STAT_READY
	}
	s.mu.Unlock()
}

func (s *SimulatedZ80) channelCount() int {
	switch s.personality {
	case Z80_DRIVER_PCM:
		return 1
	case Z80_DRIVER_2ADPCM:
		return adpcm2Channels
	case Z80_DRIVER_4PCM, Z80_DRIVER_4PCM_ENV:
		return pcm4Channels
	default:
		return 0
	}
}

func (s *SimulatedZ80) alignShift() uint {
	if s.personality == Z80_DRIVER_2ADPCM {
		return DRV_ALIGN_SFT_ADPCM
	}
	return DRV_ALIGN_SFT_PCM
}

// consumeCommands applies pending play command bits: latch the channel's
// parameter block, mark the channel playing, clear the command bit. Caller
// holds s.mu.
func (s *SimulatedZ80) consumeCommands() {
	n := s.channelCount()
	if n == 0 {
		return
	}

	cmd := s.ram[Z80_DRV_COMMAND-Z80_RAM_START]
	if cmd == 0 {
		return
	}
	shift := s.alignShift()

	for ch := 0; ch < n; ch++ {
		if cmd&(Z80_DRV_COM_PLAY<<ch) == 0 {
			continue
		}
		base := Z80_DRV_PARAMS - Z80_RAM_START + uint32(ch)*4
		addr := uint32(s.ram[base])<<shift | uint32(s.ram[base+1])<<(shift+8)
		length := uint32(s.ram[base+2])<<shift | uint32(s.ram[base+3])<<(shift+8)

		s.channels[ch] = simChannel{
			active: true,
			loop:   s.ram[Z80_DRV_STATUS+1-Z80_RAM_START]&(Z80_DRV_STAT_PLAYING<<ch) != 0,
			pos:    addr,
			start:  addr,
			length: length,
		}
		s.ram[Z80_DRV_STATUS-Z80_RAM_START] |= Z80_DRV_STAT_PLAYING << ch
		cmd &^= Z80_DRV_COM_PLAY << ch
	}
	s.ram[Z80_DRV_COMMAND-Z80_RAM_START] = cmd
}

// GenerateSample renders one mono sample of the mixdown. Channels that ran
// off the end of their data wrap when the loop intent bit is set for them
// and go silent otherwise, clearing their playing bit like the firmware
// does. Host-side stops are already covered: StopPlay clears the playing
// bit itself.
func (s *SimulatedZ80) GenerateSample() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.channelCount()
	if n == 0 || s.rom == nil {
		return 0
	}

	var mix float32
	for ch := 0; ch < n; ch++ {
		c := &s.channels[ch]
		if !c.active {
			continue
		}
		// Host cleared the playing bit: the channel was stopped.
		if s.ram[Z80_DRV_STATUS-Z80_RAM_START]&(Z80_DRV_STAT_PLAYING<<ch) == 0 {
			c.active = false
			continue
		}
		if c.pos >= c.start+c.length {
			// Loop intent is re-read at the wrap point, like the
			// firmware does when a sample runs out.
			c.loop = s.ram[Z80_DRV_STATUS+1-Z80_RAM_START]&(Z80_DRV_STAT_PLAYING<<ch) != 0
			if !c.loop {
				c.active = false
				s.ram[Z80_DRV_STATUS-Z80_RAM_START] &^= Z80_DRV_STAT_PLAYING << ch
				continue
			}
			c.pos = c.start
		}
		if c.pos < uint32(len(s.rom)) {
			sample := float32(int8(s.rom[c.pos])) / 128.0
			if s.personality == Z80_DRIVER_4PCM_ENV {
				vol := s.ram[Z80_DRV_PARAMS_VOLUME-Z80_RAM_START+uint32(ch)] & PCM4_ENV_VOLUME_MASK
				sample *= float32(vol) / float32(PCM4_ENV_VOLUME_MASK)
			}
			mix += sample
		}
		c.pos++
	}

	mix /= float32(pcm4Channels)
	if mix > 1.0 {
		mix = 1.0
	} else if mix < -1.0 {
		mix = -1.0
	}
	return mix
}
