// sound_pcm.go - Single channel 8-bit signed PCM driver

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

// PCMPlayer drives the single channel PCM personality: one 8-bit signed
// sample at a selectable rate from 8 to 32 kHz, with panning. Samples must
// sit on a 256 byte boundary.
type PCMPlayer struct {
	z80 *Z80Ctrl
}

func NewPCMPlayer(z *Z80Ctrl) *PCMPlayer {
	return &PCMPlayer{z80: z}
}

// IsPlaying reports whether a sample is currently playing.
func (p *PCMPlayer) IsPlaying() bool {
	p.z80.LoadDriver(Z80_DRIVER_PCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	playing := bus.Read8(Z80_DRV_STATUS)&Z80_DRV_STAT_PLAYING != 0
	bus.ReleaseBus()

	return playing
}

// StartPlay starts a sample. A sample already playing is superseded; the
// driver switches cleanly on the command-bit retrigger. rate is one of the
// SOUND_RATE_* codes, pan one of SOUND_PAN_*.
func (p *PCMPlayer) StartPlay(sample Sample, rate, pan uint8, loop bool) error {
	if err := p.z80.checkSample(sample, DRV_ALIGN_SFT_PCM); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_PCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)

	writeSampleParams(bus, Z80_DRV_PARAMS, sample, DRV_ALIGN_SFT_PCM)
	bus.Write8(Z80_DRV_PARAMS+4, rate)
	bus.Write8(Z80_DRV_PARAMS+6, pan)

	bus.Write8(Z80_DRV_COMMAND, bus.Read8(Z80_DRV_COMMAND)|Z80_DRV_COM_PLAY)
	setLoopIntent(bus, 0, loop)

	bus.ReleaseBus()
	return nil
}

// StopPlay stops playback by pointing the driver at the silent sample.
// No effect if nothing was playing.
func (p *PCMPlayer) StopPlay() {
	p.z80.LoadDriver(Z80_DRIVER_PCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	stopChannel(bus, 0, p.z80.nullSample(DRV_ALIGN_SFT_PCM), DRV_ALIGN_SFT_PCM)
	bus.ReleaseBus()
}
