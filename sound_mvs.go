// sound_mvs.go - MVS track player driver

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

// MVSPlayer drives the MVS music tracker firmware. It has no channel
// concept on this side: the mailbox takes a 24-bit track address plus a
// command code, and a single tri-state status byte reports what the tracker
// is doing. The status byte doubles as the command byte.
type MVSPlayer struct {
	z80 *Z80Ctrl
}

func NewMVSPlayer(z *Z80Ctrl) *MVSPlayer {
	return &MVSPlayer{z80: z}
}

// PlayStatus returns the tracker state: SOUND_MVS_SILENCE, SOUND_MVS_LOOP
// or SOUND_MVS_ONCE.
func (p *MVSPlayer) PlayStatus() uint8 {
	p.z80.LoadDriver(Z80_DRIVER_MVS, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	status := bus.Read8(MVS_DRV_STATUS) & 3
	bus.ReleaseBus()

	return status
}

// IsPlaying reports whether the tracker is producing sound.
func (p *MVSPlayer) IsPlaying() bool {
	return p.PlayStatus() != SOUND_MVS_SILENCE
}

// StartPlay starts the track at songAddr, looping or playing once.
func (p *MVSPlayer) StartPlay(songAddr uint32, loop bool) {
	p.z80.LoadDriver(Z80_DRIVER_MVS, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)

	bus.Write8(MVS_DRV_PARAMS+0, uint8(songAddr))
	bus.Write8(MVS_DRV_PARAMS+1, uint8(songAddr>>8))
	bus.Write8(MVS_DRV_PARAMS+2, uint8(songAddr>>16))
	if loop {
		bus.Write8(MVS_DRV_PARAMS+3, SOUND_MVS_LOOP)
	} else {
		bus.Write8(MVS_DRV_PARAMS+3, SOUND_MVS_ONCE)
	}

	bus.ReleaseBus()
}

// StopPlay silences the tracker.
func (p *MVSPlayer) StopPlay() {
	p.z80.LoadDriver(Z80_DRIVER_MVS, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	bus.Write8(MVS_DRV_STATUS, SOUND_MVS_SILENCE)
	bus.ReleaseBus()
}
