// sound_4pcm.go - Four channel 8-bit signed PCM driver

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

// PCM4Player drives the 4 channel PCM personality: up to four 8-bit signed
// samples mixed at a fixed 16 kHz with cutoff. Samples must sit on a 256
// byte boundary.
type PCM4Player struct {
	z80 *Z80Ctrl
}

const pcm4Channels = 4

func NewPCM4Player(z *Z80Ctrl) *PCM4Player {
	return &PCM4Player{z80: z}
}

// IsPlaying returns the subset of mask whose channels are currently
// playing.
func (p *PCM4Player) IsPlaying(mask uint8) uint8 {
	p.z80.LoadDriver(Z80_DRIVER_4PCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	playing := bus.Read8(Z80_DRV_STATUS) & (mask << Z80_DRV_STAT_PLAYING_SFT)
	bus.ReleaseBus()

	return playing
}

// StartPlay starts a sample on the given channel, or on the first free one
// with SOUND_PCM_CH_AUTO. A sample already playing on the resolved channel
// is superseded.
func (p *PCM4Player) StartPlay(sample Sample, channel uint16, loop bool) error {
	if err := p.z80.checkSample(sample, DRV_ALIGN_SFT_PCM); err != nil {
		return err
	}
	if err := checkChannel(channel, pcm4Channels); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_4PCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)

	ch := resolveChannel(channel, bus.Read8(Z80_DRV_STATUS), pcm4Channels)

	writeSampleParams(bus, Z80_DRV_PARAMS+uint32(ch)*4, sample, DRV_ALIGN_SFT_PCM)
	bus.Write8(Z80_DRV_COMMAND, bus.Read8(Z80_DRV_COMMAND)|Z80_DRV_COM_PLAY<<ch)
	setLoopIntent(bus, ch, loop)

	bus.ReleaseBus()
	return nil
}

// StopPlay stops the given channel. No effect if nothing was playing on it.
func (p *PCM4Player) StopPlay(channel uint16) error {
	if err := checkExplicitChannel(channel, pcm4Channels); err != nil {
		return err
	}
	p.z80.LoadDriver(Z80_DRIVER_4PCM, false)

	bus := p.z80.Bus()
	bus.RequestBus(true)
	stopChannel(bus, int(channel), p.z80.nullSample(DRV_ALIGN_SFT_PCM), DRV_ALIGN_SFT_PCM)
	bus.ReleaseBus()
	return nil
}
